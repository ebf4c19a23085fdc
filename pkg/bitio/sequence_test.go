package bitio

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seededReader 固定种子的随机源，保证测试可复现
func seededReader(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// TestBits 测试原始位串读写
func TestBits(t *testing.T) {
	s := FromBytes([]byte{0x94})
	bits, err := s.GetBits(6)
	require.NoError(t, err)
	assert.Equal(t, "100101", bits)
	assert.Equal(t, 6, s.Pointer())

	require.NoError(t, s.InsertBits("1001"))
	assert.Equal(t, 10, s.Pointer())
	require.NoError(t, s.AppendBits("1101"))
	assert.Equal(t, 10, s.Pointer())

	bits, err = s.GetBits(3)
	require.NoError(t, err)
	assert.Equal(t, "001", bits)
	assert.Equal(t, 13, s.Pointer())

	require.NoError(t, s.SetPointer(1))
	bits, err = s.GetBits(6)
	require.NoError(t, err)
	assert.Equal(t, "001011", bits)
	assert.Equal(t, 7, s.Pointer())
	assert.True(t, s.CheckBits("001001"))
	assert.False(t, s.CheckBits("001000"))

	t.Run("位数不足", func(t *testing.T) {
		require.NoError(t, s.SetPointer(14))
		_, err := s.GetBits(3)
		assert.ErrorIs(t, err, ErrInsufficientData)
		assert.Equal(t, 14, s.Pointer())
	})

	t.Run("非二进制字符串", func(t *testing.T) {
		assert.ErrorIs(t, s.InsertBits("f6"), ErrInvalidInput)
		assert.Equal(t, 16, s.Len())
	})

	t.Run("插入与追加", func(t *testing.T) {
		s := New()
		require.NoError(t, s.AppendBits("1111"))
		assert.Equal(t, 0, s.Pointer())
		require.NoError(t, s.InsertBits("00"))
		assert.Equal(t, 2, s.Pointer())
		require.NoError(t, s.InsertBits("0", KeepPointer()))
		assert.Equal(t, 2, s.Pointer())
		assert.Equal(t, 7, s.Len())
		require.NoError(t, s.SetPointer(0))
		bits, err := s.GetBits(7)
		require.NoError(t, err)
		assert.Equal(t, "0001111", bits)
	})
}

// TestCheckBits 测试前瞻比较
func TestCheckBits(t *testing.T) {
	s := New()
	require.NoError(t, s.AppendBits("1011"))

	assert.True(t, s.CheckBits("10"))
	assert.True(t, s.CheckBits("1011"))
	assert.False(t, s.CheckBits("11"))
	assert.False(t, s.CheckBits("10110"))
	assert.False(t, s.CheckBits("1x"))
	assert.True(t, s.CheckBits(""))
	assert.Equal(t, 0, s.Pointer())
}

// TestEmptyBits 测试空位串被拒绝且不修改序列
func TestEmptyBits(t *testing.T) {
	_, err := ParseBits("")
	assert.ErrorIs(t, err, ErrInvalidInput)

	s := New()
	require.NoError(t, s.AppendBits("1"))
	assert.ErrorIs(t, s.AppendBits(""), ErrInvalidInput)
	assert.ErrorIs(t, s.InsertBits(""), ErrInvalidInput)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 0, s.Pointer())

	_, err = NewSelector(5, Candidate{Header: "", Codec: CodecHex})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// TestLongUnalignedRuns 测试跨越多个64位分块的非对齐读取与拼接
func TestLongUnalignedRuns(t *testing.T) {
	payload := make([]byte, 40)
	_, err := seededReader(7).Read(payload)
	require.NoError(t, err)

	s := New()
	require.NoError(t, s.AppendBits("101"))
	s.AppendBuffer(payload)
	require.NoError(t, s.AppendBits("01"))
	assert.Equal(t, 3+320+2, s.Len())

	head, err := s.GetBits(3)
	require.NoError(t, err)
	assert.Equal(t, "101", head)

	assert.True(t, s.checkRun(MakeBuffer(payload)))
	got, err := s.GetBuffer(len(payload))
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	tail, err := s.GetRun(2)
	require.NoError(t, err)
	assert.Equal(t, "01", tail.String())

	// 在非对齐位置插入后，原有内容整体右移
	require.NoError(t, s.SetPointer(5))
	require.NoError(t, s.InsertBits("1111111"))
	require.NoError(t, s.SetPointer(0))
	prefix, err := s.GetBits(12)
	require.NoError(t, err)
	assert.Equal(t, "101"+MakeBuffer(payload[:1]).String()[:2]+"1111111", prefix)

	v, err := s.readUint(64)
	require.NoError(t, err)
	want := New()
	want.AppendBuffer(payload)
	require.NoError(t, want.SetPointer(2))
	wantV, err := want.readUint(64)
	require.NoError(t, err)
	assert.Equal(t, wantV, v)
}

// TestUnalignedAppend 测试非字节对齐的追加与中间插入
func TestUnalignedAppend(t *testing.T) {
	s := New()
	require.NoError(t, s.AppendBits("101"))
	s.AppendBuffer([]byte{0xff, 0x00})
	require.NoError(t, s.AppendBits("11111"))
	assert.Equal(t, 24, s.Len())

	out, err := s.ToBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xbf, 0xe0, 0x1f}, out)

	require.NoError(t, s.SetPointer(3))
	s.InsertBuffer([]byte{0x00})
	assert.Equal(t, 11, s.Pointer())
	require.NoError(t, s.SetPointer(0))
	hex, err := s.GetHexRemaining()
	require.NoError(t, err)
	assert.Equal(t, "a01fe01f", hex)
}

// TestPosition 测试游标与填充
func TestPosition(t *testing.T) {
	s := FromBytes([]byte("DigiByte is an amazing coin"), WithRandom(seededReader(1)))
	assert.Equal(t, 0, s.Pointer())
	assert.Equal(t, 216, s.Len())

	require.NoError(t, s.MovePointer(19))
	assert.Equal(t, 19, s.Pointer())

	err := s.MovePointer(-20)
	assert.ErrorIs(t, err, ErrRange)
	assert.Equal(t, 19, s.Pointer())

	require.NoError(t, s.MovePointer(-17))
	assert.Equal(t, 2, s.Pointer())

	hex, err := s.GetHex(1)
	require.NoError(t, err)
	assert.Equal(t, "1", hex)

	require.NoError(t, s.PadRandom(40))
	assert.Equal(t, 246, s.Len())
	assert.Equal(t, 0, s.Remaining()%40)

	require.NoError(t, s.SetPointer(0))
	require.NoError(t, s.PadOne(50))
	assert.Equal(t, 250, s.Len())

	t.Run("越界设置游标", func(t *testing.T) {
		assert.ErrorIs(t, s.SetPointer(251), ErrRange)
		assert.ErrorIs(t, s.SetPointer(-1), ErrRange)
		assert.NoError(t, s.SetPointer(250))
		assert.Equal(t, 0, s.Remaining())
	})
}

// TestPadding 测试填充位的取值
func TestPadding(t *testing.T) {
	t.Run("补0", func(t *testing.T) {
		s := New()
		require.NoError(t, s.AppendBits("1"))
		require.NoError(t, s.PadZero(8))
		out, err := s.ToBytes()
		require.NoError(t, err)
		assert.Equal(t, []byte{0x80}, out)
	})

	t.Run("PadOne 同样补0", func(t *testing.T) {
		s := New()
		require.NoError(t, s.AppendBits("1"))
		require.NoError(t, s.PadOne(8))
		out, err := s.ToBytes()
		require.NoError(t, err)
		assert.Equal(t, []byte{0x80}, out)
	})

	t.Run("已对齐不填充", func(t *testing.T) {
		s := FromBytes([]byte{1, 2})
		require.NoError(t, s.PadZero(8))
		assert.Equal(t, 16, s.Len())
	})

	t.Run("无效倍数", func(t *testing.T) {
		assert.ErrorIs(t, New().PadZero(0), ErrInvalidInput)
	})

	t.Run("随机填充可复现", func(t *testing.T) {
		a := New(WithRandom(seededReader(7)))
		b := New(WithRandom(seededReader(7)))
		require.NoError(t, a.AppendBits("1"))
		require.NoError(t, b.AppendBits("1"))
		require.NoError(t, a.PadRandom(37))
		require.NoError(t, b.PadRandom(37))
		assert.Equal(t, 37, a.Len())
		bitsA, _ := a.GetBits(37)
		bitsB, _ := b.GetBits(37)
		assert.Equal(t, bitsA, bitsB)
	})
}

// TestToBytes 测试字节转换
func TestToBytes(t *testing.T) {
	s := New()
	require.NoError(t, s.AppendBits("1010"))
	_, err := s.ToBytes()
	assert.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, s.AppendBits("0101"))
	out, err := s.ToBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xa5}, out)
}

// TestFactory 测试工厂共享协作组件
func TestFactory(t *testing.T) {
	f := NewFactory(WithRandom(seededReader(3)))
	a := f.New()
	b := f.FromBytes([]byte{0xab})

	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 8, b.Len())
	assert.Same(t, a.settings, b.settings)
}
