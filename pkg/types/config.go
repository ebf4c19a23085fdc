// Package types provides configuration type definitions.
package types

// AppConfig 应用程序根配置
// 只包含JSON配置文件解析所需的结构，不包含任何内部字段
// 默认值和完整配置结构在 internal/config/*/defaults.go 和 internal/config/*/config.go 中定义
type AppConfig struct {
	// 应用程序基本信息
	AppName *string `json:"app_name,omitempty"` // 应用名称

	// 日志配置
	Log *UserLogConfig `json:"log,omitempty"`

	// 网络参数表配置 - 对应配置文件中的 network 字段
	Network *UserNetworkConfig `json:"network,omitempty"`

	// 指标配置
	Metrics *UserMetricsConfig `json:"metrics,omitempty"`
}

// UserLogConfig 用户日志配置
// 只包含JSON配置文件中实际出现的字段
type UserLogConfig struct {
	Level    *string `json:"level,omitempty"`     // 日志级别：debug, info, warn, error, fatal
	FilePath *string `json:"file_path,omitempty"` // 日志文件路径
}

// UserMetricsConfig 用户指标配置
type UserMetricsConfig struct {
	Enabled   *bool   `json:"enabled,omitempty"`   // 是否启用编解码指标
	Namespace *string `json:"namespace,omitempty"` // 指标命名空间
}

// StringPtr 返回字符串指针，便于构造用户配置
func StringPtr(s string) *string {
	return &s
}

// BoolPtr 返回布尔指针，便于构造用户配置
func BoolPtr(b bool) *bool {
	return &b
}
