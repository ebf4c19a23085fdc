package app

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/weisyn/bitio/pkg/interfaces/config"
	"github.com/weisyn/bitio/pkg/types"
)

// Option 应用程序选项函数类型
type Option func(*options)

// options 应用程序选项
// 实现config.AppOptions接口
type options struct {
	// 配置文件路径
	configFilePath string

	// 嵌入的配置内容（优先级高于configFilePath）
	embeddedConfig []byte

	// 用户配置
	appConfig *types.AppConfig

	// 指标注册表，nil 使用 prometheus.DefaultRegisterer
	registerer prometheus.Registerer
}

// 编译时校验options是否实现了config.AppOptions接口
var _ config.AppOptions = (*options)(nil)

// WithConfigFile 设置配置文件路径
func WithConfigFile(configPath string) Option {
	return func(o *options) {
		o.configFilePath = configPath
	}
}

// WithEmbeddedConfig 设置嵌入的配置内容（优先级高于WithConfigFile）
func WithEmbeddedConfig(configBytes []byte) Option {
	return func(o *options) {
		o.embeddedConfig = configBytes
	}
}

// WithLog 设置日志配置
func WithLog(userLogConfig *types.UserLogConfig) Option {
	return func(o *options) {
		o.appConfig.Log = userLogConfig
	}
}

// WithNetwork 设置网络参数表配置
func WithNetwork(userNetworkConfig *types.UserNetworkConfig) Option {
	return func(o *options) {
		o.appConfig.Network = userNetworkConfig
	}
}

// WithMetrics 设置指标配置
func WithMetrics(userMetricsConfig *types.UserMetricsConfig) Option {
	return func(o *options) {
		o.appConfig.Metrics = userMetricsConfig
	}
}

// WithRegisterer 指定指标注册表
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

// newOptions 创建选项
func newOptions(opts ...Option) *options {
	options := &options{
		// 创建默认的空AppConfig
		appConfig: &types.AppConfig{},
	}

	// 应用自定义选项
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// GetAppConfig 返回应用程序配置
func (o *options) GetAppConfig() *types.AppConfig {
	return o.appConfig
}
