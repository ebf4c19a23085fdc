package bitio

import (
	"fmt"
	"math/big"
)

// MaxIntBits 机器整数编解码的最大位宽
const MaxIntBits = 31

// ========================================
// 字节数组
// ========================================

// MakeBuffer 字节数组转位串（每字节8位，高位在前）
func MakeBuffer(data []byte) Bits {
	w := newBitWriter()
	w.writeBytes(data)
	return w.bits()
}

// GetBuffer 读取 length 个字节
func (s *Sequence) GetBuffer(length int) ([]byte, error) {
	return readAs(s, formatBuffer, func() ([]byte, error) {
		return s.readBytes(length)
	})
}

// AppendBuffer 追加字节数组，不移动游标
func (s *Sequence) AppendBuffer(data []byte) {
	_ = s.appendAs(formatBuffer, MakeBuffer(data), nil)
}

// InsertBuffer 在游标处插入字节数组
func (s *Sequence) InsertBuffer(data []byte, opts ...InsertOption) {
	_ = s.insertAs(formatBuffer, MakeBuffer(data), nil, opts)
}

func (s *Sequence) readBytes(length int) ([]byte, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative byte count %d", ErrInvalidInput, length)
	}
	if s.Remaining() < 8*length {
		return nil, fmt.Errorf("%w: need %d bytes, have %d bits", ErrInsufficientData, length, s.Remaining())
	}
	out := make([]byte, length)
	for i := range out {
		v, _ := s.readUint(8)
		out[i] = byte(v)
	}
	return out, nil
}

// ========================================
// 定宽整数
// ========================================

// MakeInt 无符号整数编码为 length 位（高位在前，左侧补零），length 最大 31
func MakeInt(value, length int) (Bits, error) {
	if length < 0 {
		return Bits{}, fmt.Errorf("%w: negative length %d", ErrInvalidInput, length)
	}
	if length > MaxIntBits {
		return Bits{}, fmt.Errorf("%w: %d bits exceeds %d", ErrLengthExceeded, length, MaxIntBits)
	}
	if value < 0 {
		return Bits{}, fmt.Errorf("%w: negative integer %d", ErrInvalidInput, value)
	}
	if value >= 1<<uint(length) {
		return Bits{}, fmt.Errorf("%w: length %d too short to encode %d", ErrLengthExceeded, length, value)
	}
	w := newBitWriter()
	w.writeUint(uint64(value), length)
	return w.bits(), nil
}

// GetInt 读取 length 位无符号整数，length 最大 31
func (s *Sequence) GetInt(length int) (int, error) {
	if length > MaxIntBits {
		return 0, fmt.Errorf("%w: %d bits exceeds %d", ErrLengthExceeded, length, MaxIntBits)
	}
	v, err := s.readUint(length)
	return int(v), err
}

// AppendInt 追加整数，不移动游标
func (s *Sequence) AppendInt(value, length int) error {
	b, err := MakeInt(value, length)
	return s.appendAs(formatInt, b, err)
}

// InsertInt 在游标处插入整数
func (s *Sequence) InsertInt(value, length int, opts ...InsertOption) error {
	b, err := MakeInt(value, length)
	return s.insertAs(formatInt, b, err, opts)
}

// ========================================
// 任意精度整数
// ========================================

// MakeBigInt 任意精度非负整数编码为 length 位，没有 31 位上限
func MakeBigInt(value *big.Int, length int) (Bits, error) {
	if length < 0 {
		return Bits{}, fmt.Errorf("%w: negative length %d", ErrInvalidInput, length)
	}
	if value == nil || value.Sign() < 0 {
		return Bits{}, fmt.Errorf("%w: big integer must be non-negative", ErrInvalidInput)
	}
	if value.BitLen() > length {
		return Bits{}, fmt.Errorf("%w: length %d too short to encode %s", ErrLengthExceeded, length, value)
	}
	w := newBitWriter()
	w.writeBig(value, length)
	return w.bits(), nil
}

// GetBigInt 读取 length 位任意精度无符号整数
func (s *Sequence) GetBigInt(length int) (*big.Int, error) {
	b, err := s.readRun(length)
	if err != nil {
		return nil, err
	}
	return bitsToBig(b), nil
}

// AppendBigInt 追加任意精度整数，不移动游标
func (s *Sequence) AppendBigInt(value *big.Int, length int) error {
	b, err := MakeBigInt(value, length)
	return s.appendAs(formatBigInt, b, err)
}

// InsertBigInt 在游标处插入任意精度整数
func (s *Sequence) InsertBigInt(value *big.Int, length int, opts ...InsertOption) error {
	b, err := MakeBigInt(value, length)
	return s.insertAs(formatBigInt, b, err, opts)
}

// bitsToBig 把位串解释为无符号大整数
func bitsToBig(b Bits) *big.Int {
	v := new(big.Int)
	if b.n == 0 {
		return v
	}
	v.SetBytes(b.data)
	// data 末字节按高位对齐，右移去掉填充位
	if pad := 8*len(b.data) - b.n; pad > 0 {
		v.Rsh(v, uint(pad))
	}
	return v
}
