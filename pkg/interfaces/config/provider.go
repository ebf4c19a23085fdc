// Package config provides configuration provider interfaces.
package config

import (
	logconfig "github.com/weisyn/bitio/internal/config/log"
	metricsconfig "github.com/weisyn/bitio/internal/config/metrics"
	networkconfig "github.com/weisyn/bitio/internal/config/network"
	"github.com/weisyn/bitio/pkg/types"
)

// Provider 配置提供者接口
//
// 所有 Get 方法都返回已合并默认值的完整配置，调用方无需再处理零值。
type Provider interface {
	// GetAppName 获取应用名称
	GetAppName() string

	// GetLog 获取日志配置
	GetLog() *logconfig.LogOptions

	// GetNetwork 获取地址编解码使用的网络参数表
	GetNetwork() *networkconfig.NetworkOptions

	// GetMetrics 获取编解码指标配置
	GetMetrics() *metricsconfig.MetricsOptions

	// GetAppConfig 获取原始用户配置
	GetAppConfig() *types.AppConfig
}
