package bitio

import (
	"fmt"
	"math/big"
)

// MaxFixedPrecision 定点精度编码可表示的最大值（54位尾数）
const MaxFixedPrecision = 18014398509481983

// 尾数容量
const (
	mantissaMax6Bytes = 4398046511103 // 42位
	mantissaMax5Bytes = 17179869183   // 34位
	mantissaMax4Bytes = 33554431      // 25位
	mantissaMax3Bytes = 131071        // 17位
	mantissaMax2Bytes = 511           // 9位
	maxExponent4Bits  = 15
	maxExponent3Bits  = 7
)

// fixedLayout 按字节长度划分的字段布局
type fixedLayout struct {
	header       uint64
	headerBits   int
	mantissaBits int
	exponentBits int
}

var fixedLayouts = map[int]fixedLayout{
	2: {header: 0b001, headerBits: 3, mantissaBits: 9, exponentBits: 4},
	3: {header: 0b010, headerBits: 3, mantissaBits: 17, exponentBits: 4},
	4: {header: 0b011, headerBits: 3, mantissaBits: 25, exponentBits: 4},
	5: {header: 0b100, headerBits: 3, mantissaBits: 34, exponentBits: 3},
	6: {header: 0b101, headerBits: 3, mantissaBits: 42, exponentBits: 3},
	7: {header: 0b11, headerBits: 2, mantissaBits: 54},
}

// MakeFixedPrecision 以 尾数 × 10^指数 的形式编码非负整数，字节数尽量少
//
// 参数：
//   - value: 取值范围 [0, MaxFixedPrecision]
//
// 返回：
//   - Bits: 1 到 7 字节的位串
//   - error: nil、负数或超出范围时返回 ErrInvalidInput
func MakeFixedPrecision(value *big.Int) (Bits, error) {
	if value == nil || value.Sign() < 0 || !value.IsUint64() || value.Uint64() > MaxFixedPrecision {
		return Bits{}, fmt.Errorf("%w: fixed precision value %v out of range", ErrInvalidInput, value)
	}
	return MakeFixedPrecisionUint64(value.Uint64())
}

// MakeFixedPrecisionUint64 同 MakeFixedPrecision，参数为 uint64
func MakeFixedPrecisionUint64(value uint64) (Bits, error) {
	if value > MaxFixedPrecision {
		return Bits{}, fmt.Errorf("%w: fixed precision value %d out of range", ErrInvalidInput, value)
	}
	w := newBitWriter()
	if value < 32 {
		w.writeUint(value, 8)
		return w.bits(), nil
	}

	mantissa, exponent := value, 0
	for mantissa%10 == 0 {
		mantissa /= 10
		exponent++
	}
	switch {
	case mantissa > mantissaMax6Bytes:
		mantissa, exponent = value, 0
	case mantissa > mantissaMax4Bytes && exponent > maxExponent3Bits:
		mantissa *= pow10(exponent - maxExponent3Bits)
		exponent = maxExponent3Bits
	case exponent > maxExponent4Bits:
		// 仅 10^16 会走到这里
		mantissa *= pow10(exponent - maxExponent4Bits)
		exponent = maxExponent4Bits
	}

	var size int
	switch {
	case mantissa > mantissaMax6Bytes:
		size = 7
	case mantissa > mantissaMax5Bytes:
		size = 6
	case mantissa > mantissaMax4Bytes:
		size = 5
	case mantissa > mantissaMax3Bytes:
		size = 4
	case mantissa > mantissaMax2Bytes:
		size = 3
	default:
		size = 2
	}
	layout := fixedLayouts[size]
	w.writeUint(layout.header, layout.headerBits)
	w.writeUint(mantissa, layout.mantissaBits)
	w.writeUint(uint64(exponent), layout.exponentBits)
	return w.bits(), nil
}

// GetFixedPrecision 读取定点精度编码的整数
//
// 非规范输入（例如25位尾数配合指数15）可能超出 uint64，因此返回 *big.Int。
func (s *Sequence) GetFixedPrecision() (*big.Int, error) {
	return readAs(s, formatFixedPrecision, s.readFixedPrecision)
}

func (s *Sequence) readFixedPrecision() (*big.Int, error) {
	selector, err := s.readUint(3)
	if err != nil {
		return nil, err
	}
	size := int(selector) + 1
	if size >= 7 {
		// 最高位属于7字节尾数
		s.pointer--
		size = 7
	}
	if size == 1 {
		mantissa, err := s.readUint(5)
		if err != nil {
			return nil, err
		}
		return new(big.Int).SetUint64(mantissa), nil
	}
	layout := fixedLayouts[size]
	mantissa, err := s.readUint(layout.mantissaBits)
	if err != nil {
		return nil, err
	}
	exponent, err := s.readUint(layout.exponentBits)
	if err != nil {
		return nil, err
	}
	v := new(big.Int).SetUint64(mantissa)
	scale := new(big.Int).Exp(big.NewInt(10), new(big.Int).SetUint64(exponent), nil)
	return v.Mul(v, scale), nil
}

// AppendFixedPrecision 追加定点精度整数，不移动游标
func (s *Sequence) AppendFixedPrecision(value *big.Int) error {
	b, err := MakeFixedPrecision(value)
	return s.appendAs(formatFixedPrecision, b, err)
}

// InsertFixedPrecision 在游标处插入定点精度整数
func (s *Sequence) InsertFixedPrecision(value *big.Int, opts ...InsertOption) error {
	b, err := MakeFixedPrecision(value)
	return s.insertAs(formatFixedPrecision, b, err, opts)
}

func pow10(n int) uint64 {
	v := uint64(1)
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}
