package bitio

import "fmt"

// MakeXBitVariableLength 校验变长位串
//
// 编码规则：任意个全零的 x 位分块，后接恰好一个含1的分块（前缀无关码）。
// 位数必须是 x 的倍数，且除最后一块外全部为0；全零值无法解码，同样拒绝。
func MakeXBitVariableLength(value string, x int) (Bits, error) {
	if x <= 0 {
		return Bits{}, fmt.Errorf("%w: chunk width %d", ErrInvalidInput, x)
	}
	if len(value) == 0 || len(value)%x != 0 {
		return Bits{}, fmt.Errorf("%w: length %d is not a positive multiple of %d", ErrInvalidInput, len(value), x)
	}
	b, err := ParseBits(value)
	if err != nil {
		return Bits{}, err
	}
	last := b.n - x
	for i := 0; i < last; i++ {
		if b.At(i) == 1 {
			return Bits{}, fmt.Errorf("%w: non-zero chunk before the final chunk in %q", ErrInvalidInput, value)
		}
	}
	if !b.hasOne() {
		return Bits{}, fmt.Errorf("%w: final chunk of %q has no set bit", ErrInvalidInput, value)
	}
	return b, nil
}

// GetXBitVariableLength 每次读取 x 位，直到已读内容中出现1为止
func (s *Sequence) GetXBitVariableLength(x int) (string, error) {
	if x <= 0 {
		return "", fmt.Errorf("%w: chunk width %d", ErrInvalidInput, x)
	}
	return readAs(s, formatVariableLength, func() (string, error) {
		var out Bits
		for {
			chunk, err := s.readRun(x)
			if err != nil {
				return "", err
			}
			out = out.Concat(chunk)
			if chunk.hasOne() {
				return out.String(), nil
			}
		}
	})
}

// AppendXBitVariableLength 追加变长位串，不移动游标
func (s *Sequence) AppendXBitVariableLength(value string, x int) error {
	b, err := MakeXBitVariableLength(value, x)
	return s.appendAs(formatVariableLength, b, err)
}

// InsertXBitVariableLength 在游标处插入变长位串
func (s *Sequence) InsertXBitVariableLength(value string, x int, opts ...InsertOption) error {
	b, err := MakeXBitVariableLength(value, x)
	return s.insertAs(formatVariableLength, b, err, opts)
}
