package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace 指标默认命名空间
const DefaultNamespace = "weisyn"

const subsystem = "bitio"

// CodecMetrics 位流编解码指标
//
// 所有方法在 nil 接收者上都是空操作，未启用指标时序列可以直接持有 nil。
type CodecMetrics struct {
	// 按格式统计的编码次数与位数
	encodedTotal *prometheus.CounterVec
	encodedBits  *prometheus.CounterVec

	// 按格式统计的失败次数
	encodeFailures *prometheus.CounterVec
	decodeFailures *prometheus.CounterVec

	// 最优文本编码选择结果
	selections *prometheus.CounterVec
}

// NewCodecMetrics 在 reg 上注册编解码指标
//
// 同名指标已注册在 reg 上时复用已有的收集器，同一进程内重复创建应用不会冲突。
//
// 参数：
//   - reg: 注册表，nil 表示不注册（指标仍可读取，用于测试）
//   - namespace: 命名空间，空字符串使用 DefaultNamespace
func NewCodecMetrics(reg prometheus.Registerer, namespace string) (*CodecMetrics, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	newVec := func(name, help, label string) *prometheus.CounterVec {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      name,
			Help:      help,
		}, []string{label})
	}

	m := &CodecMetrics{
		encodedTotal:   newVec("encoded_total", "Total number of fields encoded, by format", "format"),
		encodedBits:    newVec("encoded_bits_total", "Total number of bits written by encoders, by format", "format"),
		encodeFailures: newVec("encode_failures_total", "Total number of rejected encode calls, by format", "format"),
		decodeFailures: newVec("decode_failures_total", "Total number of failed decode calls that rolled back the pointer, by format", "format"),
		selections:     newVec("best_string_selections_total", "Total number of best-fit text selections, by chosen codec", "codec"),
	}
	if reg == nil {
		return m, nil
	}

	for _, vec := range []**prometheus.CounterVec{
		&m.encodedTotal, &m.encodedBits, &m.encodeFailures, &m.decodeFailures, &m.selections,
	} {
		registered, err := register(reg, *vec)
		if err != nil {
			return nil, err
		}
		*vec = registered
	}
	return m, nil
}

// register 注册收集器，已存在时返回已注册的实例
func register(reg prometheus.Registerer, vec *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	err := reg.Register(vec)
	if err == nil {
		return vec, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
			return existing, nil
		}
	}
	return nil, fmt.Errorf("注册编解码指标失败: %w", err)
}

// ObserveEncode 记录一次成功编码
func (m *CodecMetrics) ObserveEncode(format string, bits int) {
	if m == nil {
		return
	}
	m.encodedTotal.WithLabelValues(format).Inc()
	m.encodedBits.WithLabelValues(format).Add(float64(bits))
}

// ObserveEncodeFailure 记录一次被拒绝的编码
func (m *CodecMetrics) ObserveEncodeFailure(format string) {
	if m == nil {
		return
	}
	m.encodeFailures.WithLabelValues(format).Inc()
}

// ObserveDecodeFailure 记录一次失败的解码
func (m *CodecMetrics) ObserveDecodeFailure(format string) {
	if m == nil {
		return
	}
	m.decodeFailures.WithLabelValues(format).Inc()
}

// ObserveSelection 记录最优文本编码选择结果
func (m *CodecMetrics) ObserveSelection(codec string) {
	if m == nil {
		return
	}
	m.selections.WithLabelValues(codec).Inc()
}
