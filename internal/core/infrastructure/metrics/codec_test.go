package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCodecMetrics 测试编解码指标计数
func TestCodecMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewCodecMetrics(reg, "")
	require.NoError(t, err)

	m.ObserveEncode("int", 7)
	m.ObserveEncode("int", 15)
	m.ObserveEncodeFailure("alpha")
	m.ObserveDecodeFailure("address")
	m.ObserveSelection("3B40")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.encodedTotal.WithLabelValues("int")))
	assert.Equal(t, float64(22), testutil.ToFloat64(m.encodedBits.WithLabelValues("int")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.encodeFailures.WithLabelValues("alpha")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.decodeFailures.WithLabelValues("address")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.selections.WithLabelValues("3B40")))

	count, err := testutil.GatherAndCount(reg, "weisyn_bitio_encoded_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

// TestNilCodecMetrics 测试 nil 指标为空操作
func TestNilCodecMetrics(t *testing.T) {
	var m *CodecMetrics
	assert.NotPanics(t, func() {
		m.ObserveEncode("int", 1)
		m.ObserveEncodeFailure("int")
		m.ObserveDecodeFailure("int")
		m.ObserveSelection("Hex")
	})
}

// TestCustomNamespace 测试自定义命名空间
func TestCustomNamespace(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewCodecMetrics(reg, "codec")
	require.NoError(t, err)
	m.ObserveEncode("hex", 4)

	count, err := testutil.GatherAndCount(reg, "codec_bitio_encoded_bits_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

// TestRegisterTwice 测试重复注册时复用已有收集器
func TestRegisterTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewCodecMetrics(reg, "")
	require.NoError(t, err)
	second, err := NewCodecMetrics(reg, "")
	require.NoError(t, err)

	first.ObserveEncode("hex", 8)
	second.ObserveEncode("hex", 8)
	assert.Equal(t, float64(2), testutil.ToFloat64(second.encodedTotal.WithLabelValues("hex")))
	assert.Same(t, first.encodedTotal, second.encodedTotal)
}

// TestRegisterConflict 测试同名但标签不同的指标返回错误
func TestRegisterConflict(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: DefaultNamespace,
		Subsystem: subsystem,
		Name:      "encoded_total",
		Help:      "conflicting counter",
	})))

	_, err := NewCodecMetrics(reg, "")
	assert.Error(t, err)
}

func TestUnregistered(t *testing.T) {
	m, err := NewCodecMetrics(nil, "")
	require.NoError(t, err)
	m.ObserveSelection("Hex")
	assert.Equal(t, float64(1), testutil.ToFloat64(m.selections.WithLabelValues("Hex")))
}
