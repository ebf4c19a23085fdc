package metrics

// 指标配置默认值
const (
	// defaultEnabled 默认启用编解码指标
	defaultEnabled = true

	// defaultNamespace 默认指标命名空间
	defaultNamespace = "weisyn"
)
