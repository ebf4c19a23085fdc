// Package metrics 提供编解码指标配置
package metrics

import "github.com/weisyn/bitio/pkg/types"

// MetricsOptions 指标配置选项
type MetricsOptions struct {
	Enabled   bool   `json:"enabled"`   // 是否启用编解码指标
	Namespace string `json:"namespace"` // prometheus 命名空间
}

// Config 指标配置实现
type Config struct {
	options *MetricsOptions
}

// New 创建指标配置
func New(userConfig *types.UserMetricsConfig) *Config {
	options := &MetricsOptions{
		Enabled:   defaultEnabled,
		Namespace: defaultNamespace,
	}

	if userConfig != nil {
		if userConfig.Enabled != nil {
			options.Enabled = *userConfig.Enabled
		}
		if userConfig.Namespace != nil && *userConfig.Namespace != "" {
			options.Namespace = *userConfig.Namespace
		}
	}

	return &Config{options: options}
}

// GetOptions 获取指标配置选项
func (c *Config) GetOptions() *MetricsOptions {
	return c.options
}
