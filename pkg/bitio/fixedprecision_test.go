package bitio

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFixedPrecision 测试定点精度编码
func TestFixedPrecision(t *testing.T) {
	s := New()
	require.NoError(t, s.InsertFixedPrecision(big.NewInt(5004000)))
	require.NoError(t, s.AppendFixedPrecision(big.NewInt(19)))
	assert.Equal(t, 24, s.Pointer())
	require.NoError(t, s.InsertFixedPrecision(big.NewInt(90000000000)))
	assert.Equal(t, 40, s.Pointer())

	v, err := s.GetFixedPrecision()
	require.NoError(t, err)
	assert.Equal(t, int64(19), v.Int64())

	require.NoError(t, s.SetPointer(0))
	v, err = s.GetFixedPrecision()
	require.NoError(t, err)
	assert.Equal(t, int64(5004000), v.Int64())
	v, err = s.GetFixedPrecision()
	require.NoError(t, err)
	assert.Equal(t, int64(90000000000), v.Int64())

	t.Run("非法输入", func(t *testing.T) {
		assert.ErrorIs(t, s.InsertFixedPrecision(nil), ErrInvalidInput)
		assert.ErrorIs(t, s.InsertFixedPrecision(big.NewInt(-1)), ErrInvalidInput)
		assert.ErrorIs(t, s.InsertFixedPrecision(big.NewInt(19000000000000000)), ErrInvalidInput)
		_, err := MakeFixedPrecisionUint64(MaxFixedPrecision + 1)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

// TestFixedPrecisionLarge 测试已知编码的解码
func TestFixedPrecisionLarge(t *testing.T) {
	s := FromBytes([]byte{0x80, 0x2f, 0xae, 0x67, 0xf0})
	v, err := s.GetFixedPrecision()
	require.NoError(t, err)
	assert.Equal(t, int64(99994878), v.Int64())

	s = New()
	require.NoError(t, s.AppendFixedPrecision(big.NewInt(500000000)))
	v, err = s.GetFixedPrecision()
	require.NoError(t, err)
	assert.Equal(t, int64(500000000), v.Int64())
}

// TestFixedPrecisionRoundTrip 测试往返与编码长度
func TestFixedPrecisionRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		value uint64
		bytes int
	}{
		{0, 1},
		{31, 1},
		{32, 2},
		{19, 1},
		{511, 2},
		{512, 3},
		{5004000, 3},
		{90000000000, 2},
		{99994878, 5},
		{500000000, 2},
		{1e16, 2},
		{4398046511104, 7},
		{33554433000000000, 0},
		{MaxFixedPrecision, 7},
		{123456789000000, 5},
	} {
		b, err := MakeFixedPrecisionUint64(tc.value)
		if tc.bytes == 0 {
			assert.ErrorIs(t, err, ErrInvalidInput, "value %d", tc.value)
			continue
		}
		require.NoError(t, err, "value %d", tc.value)
		assert.Equal(t, tc.bytes*8, b.Len(), "value %d", tc.value)

		s := New()
		s.AppendRun(b)
		got, err := s.GetFixedPrecision()
		require.NoError(t, err)
		assert.Equal(t, tc.value, got.Uint64(), "value %d", tc.value)
		assert.Equal(t, 0, s.Remaining())
	}
}

// TestFixedPrecisionRollback 测试读取失败时游标回退
func TestFixedPrecisionRollback(t *testing.T) {
	s := New()
	require.NoError(t, s.AppendBits("0101"))
	_, err := s.GetFixedPrecision()
	assert.ErrorIs(t, err, ErrInsufficientData)
	assert.Equal(t, 0, s.Pointer())
}
