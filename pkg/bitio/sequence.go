package bitio

import (
	"bytes"
	"fmt"
	"io"
)

// Sequence 可变位序列 + 游标
//
// 存储为字节数组 + 位长度计数：
//   - 追加：均摊 O(1)/位
//   - 中间插入：O(length)，需要整体搬移游标之后的位
//
// 不变量：0 <= pointer <= length；末字节中超出 length 的位恒为0。
type Sequence struct {
	data    []byte
	length  int
	pointer int

	settings *settings
}

// New 创建空序列
func New(opts ...Option) *Sequence {
	return newSequence(newSettings(opts))
}

// FromBytes 从字节数组构造序列（每字节8位，高位在前），游标位于0
func FromBytes(data []byte, opts ...Option) *Sequence {
	s := New(opts...)
	s.appendRun(MakeBuffer(data))
	return s
}

func newSequence(st *settings) *Sequence {
	return &Sequence{settings: st}
}

// ========================================
// 游标
// ========================================

// MovePointer 按 delta 移动游标
func (s *Sequence) MovePointer(delta int) error {
	return s.SetPointer(s.pointer + delta)
}

// Pointer 当前游标位置
func (s *Sequence) Pointer() int {
	return s.pointer
}

// SetPointer 设置游标位置，必须位于 [0, Len()]
func (s *Sequence) SetPointer(location int) error {
	if location < 0 || location > s.length {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrRange, location, s.length)
	}
	s.pointer = location
	return nil
}

// Len 总位数
func (s *Sequence) Len() int {
	return s.length
}

// Remaining 游标之后剩余的位数
func (s *Sequence) Remaining() int {
	return s.length - s.pointer
}

// ========================================
// 原始位串
// ========================================

// GetBits 读取接下来的 n 位并前移游标
func (s *Sequence) GetBits(n int) (string, error) {
	b, err := s.readRun(n)
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// AppendBits 追加位串到末尾，不移动游标
func (s *Sequence) AppendBits(value string) error {
	b, err := ParseBits(value)
	return s.appendAs(formatBits, b, err)
}

// InsertBits 在游标处插入位串
func (s *Sequence) InsertBits(value string, opts ...InsertOption) error {
	b, err := ParseBits(value)
	return s.insertAs(formatBits, b, err, opts)
}

// AppendRun 追加一段已编码的位串，不移动游标
func (s *Sequence) AppendRun(b Bits) {
	s.appendRun(b)
}

// InsertRun 在游标处插入一段已编码的位串
func (s *Sequence) InsertRun(b Bits, opts ...InsertOption) {
	s.insertRun(b, resolveInsert(opts).movePointer)
}

// GetRun 读取接下来的 n 位为 Bits 并前移游标
func (s *Sequence) GetRun(n int) (Bits, error) {
	return s.readRun(n)
}

// CheckBits 前瞻比较接下来的位是否等于 value，不移动游标
// 位数不足或 value 不是二进制串时返回 false；空串总是匹配
func (s *Sequence) CheckBits(value string) bool {
	if value == "" {
		return true
	}
	b, err := ParseBits(value)
	if err != nil {
		return false
	}
	return s.checkRun(b)
}

// checkRun 同 CheckBits，参数为 Bits
func (s *Sequence) checkRun(b Bits) bool {
	if b.n > s.Remaining() {
		return false
	}
	next := s.slice(s.pointer, s.pointer+b.n)
	return bytes.Equal(next.data, b.data)
}

// ========================================
// 填充
// ========================================

// PadZero 在末尾补0，使游标之后的位数为 multiple 的整数倍
func (s *Sequence) PadZero(multiple int) error {
	needed, err := s.padNeeded(multiple)
	if err != nil || needed == 0 {
		return err
	}
	s.appendRun(zeroRun(needed))
	return nil
}

// PadOne 与 PadZero 行为一致：以0填充
//
// 名称暗示以1填充，但已有编码数据依赖当前的补0行为，保持不变。
func (s *Sequence) PadOne(multiple int) error {
	return s.PadZero(multiple)
}

// PadRandom 在末尾补随机位，使游标之后的位数为 multiple 的整数倍
func (s *Sequence) PadRandom(multiple int) error {
	needed, err := s.padNeeded(multiple)
	if err != nil || needed == 0 {
		return err
	}
	raw := make([]byte, (needed+7)/8)
	if _, err := io.ReadFull(s.settings.random, raw); err != nil {
		return fmt.Errorf("read random padding: %w", err)
	}
	s.appendRun(Bits{data: raw, n: needed}.Concat())
	return nil
}

func (s *Sequence) padNeeded(multiple int) (int, error) {
	if multiple <= 0 {
		return 0, fmt.Errorf("%w: pad multiple %d", ErrInvalidInput, multiple)
	}
	needed := multiple - s.Remaining()%multiple
	if needed == multiple {
		return 0, nil
	}
	return needed, nil
}

func zeroRun(n int) Bits {
	return Bits{data: make([]byte, (n+7)/8), n: n}
}

// ========================================
// 字节转换
// ========================================

// ToBytes 按8位一组转换为字节数组，总位数必须是8的倍数
func (s *Sequence) ToBytes() ([]byte, error) {
	if s.length%8 != 0 {
		return nil, fmt.Errorf("%w: must be multiple of 8 bits to convert to bytes, have %d", ErrInvalidInput, s.length)
	}
	out := make([]byte, s.length/8)
	copy(out, s.data)
	return out, nil
}

// ========================================
// 底层读写
// ========================================

// readRun 读取 n 位并前移游标
func (s *Sequence) readRun(n int) (Bits, error) {
	if n < 0 {
		return Bits{}, fmt.Errorf("%w: negative bit count %d", ErrInvalidInput, n)
	}
	if s.Remaining() < n {
		return Bits{}, fmt.Errorf("%w: need %d, have %d", ErrInsufficientData, n, s.Remaining())
	}
	b := s.slice(s.pointer, s.pointer+n)
	s.pointer += n
	return b, nil
}

// readUint 读取 n 位（n <= 64）为无符号整数并前移游标
func (s *Sequence) readUint(n int) (uint64, error) {
	if n > 64 {
		return 0, fmt.Errorf("%w: %d bits do not fit in 64", ErrLengthExceeded, n)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative bit count %d", ErrInvalidInput, n)
	}
	if s.Remaining() < n {
		return 0, fmt.Errorf("%w: need %d, have %d", ErrInsufficientData, n, s.Remaining())
	}
	if n == 0 {
		return 0, nil
	}
	v, err := newBitReader(s.data, s.pointer).ReadBits(uint8(n))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInsufficientData, err)
	}
	s.pointer += n
	return v, nil
}

// appendRun 追加位串，不移动游标
// 只重写末尾不完整的字节，均摊 O(b.Len())
func (s *Sequence) appendRun(b Bits) {
	if b.n == 0 {
		return
	}
	full := s.length / 8
	w := newBitWriter()
	if rest := s.length % 8; rest > 0 {
		w.copyFrom(s.data, 8*full, rest)
	}
	w.writeBits(b)
	s.data = append(s.data[:full], w.bits().data...)
	s.length += b.n
}

// insertRun 在游标处插入位串，O(length)
func (s *Sequence) insertRun(b Bits, movePointer bool) {
	if s.pointer == s.length {
		s.appendRun(b)
	} else {
		tail := s.slice(s.pointer, s.length)
		s.truncate(s.pointer)
		s.appendRun(b)
		s.appendRun(tail)
	}
	if movePointer {
		s.pointer += b.n
	}
}

// slice 复制 [from, to) 的位
func (s *Sequence) slice(from, to int) Bits {
	w := newBitWriter()
	w.copyFrom(s.data, from, to-from)
	return w.bits()
}

// truncate 截断到 n 位并清除末字节的多余位
func (s *Sequence) truncate(n int) {
	s.data = s.data[:(n+7)/8]
	if rest := n % 8; rest > 0 {
		s.data[len(s.data)-1] &= byte(0xff << (8 - uint(rest)))
	}
	s.length = n
}
