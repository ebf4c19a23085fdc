package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/weisyn/bitio/internal/config/log"
	"github.com/weisyn/bitio/internal/config/metrics"
	"github.com/weisyn/bitio/internal/config/network"
	"github.com/weisyn/bitio/pkg/interfaces/config"
	"github.com/weisyn/bitio/pkg/types"
)

// defaultAppName 未配置应用名称时使用的默认值
const defaultAppName = "bitio"

// Provider 实现配置提供者接口
type Provider struct {
	appConfig *types.AppConfig
}

// 编译时校验Provider是否实现了config.Provider接口
var _ config.Provider = (*Provider)(nil)

// NewProvider 创建配置提供者
func NewProvider(appConfig *types.AppConfig) config.Provider {
	if appConfig == nil {
		appConfig = &types.AppConfig{}
	}
	return &Provider{
		appConfig: appConfig,
	}
}

// ParseAppConfig 解析JSON格式的应用配置
// 未出现的字段保持为nil，由各配置包套用默认值
func ParseAppConfig(data []byte) (*types.AppConfig, error) {
	var appConfig types.AppConfig
	if err := json.Unmarshal(data, &appConfig); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	return &appConfig, nil
}

// LoadAppConfig 从配置文件加载应用配置
func LoadAppConfig(path string) (*types.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件 %s 失败: %w", path, err)
	}
	return ParseAppConfig(data)
}

// GetAppName 获取应用名称
func (p *Provider) GetAppName() string {
	if p.appConfig.AppName != nil && *p.appConfig.AppName != "" {
		return *p.appConfig.AppName
	}
	return defaultAppName
}

// GetLog 获取日志配置
func (p *Provider) GetLog() *log.LogOptions {
	// log.New会处理默认值应用和用户配置覆盖
	return log.New(p.appConfig.Log).GetOptions()
}

// GetNetwork 获取网络参数表配置
func (p *Provider) GetNetwork() *network.NetworkOptions {
	return network.New(p.appConfig.Network).GetOptions()
}

// GetMetrics 获取指标配置
func (p *Provider) GetMetrics() *metrics.MetricsOptions {
	return metrics.New(p.appConfig.Metrics).GetOptions()
}

// GetAppConfig 获取原始用户配置
func (p *Provider) GetAppConfig() *types.AppConfig {
	return p.appConfig
}
