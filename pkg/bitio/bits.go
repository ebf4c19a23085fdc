package bitio

import (
	"bytes"
	"fmt"
	"math/big"
	"strings"

	"github.com/icza/bitio"
)

// Bits 不可变的位串，高位在前
//
// 末字节中超出长度的位恒为0。
type Bits struct {
	data []byte
	n    int
}

// ParseBits 解析由 '0' 和 '1' 组成的非空位串
func ParseBits(s string) (Bits, error) {
	if s == "" {
		return Bits{}, fmt.Errorf("%w: empty binary string", ErrInvalidInput)
	}
	w := newBitWriter()
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			w.writeUint(0, 1)
		case '1':
			w.writeUint(1, 1)
		default:
			return Bits{}, fmt.Errorf("%w: %q is not a binary string", ErrInvalidInput, s)
		}
	}
	return w.bits(), nil
}

// Len 位数
func (b Bits) Len() int {
	return b.n
}

// At 第 i 位（0 或 1）
func (b Bits) At(i int) byte {
	return bitAt(b.data, i)
}

// String 以 '0'/'1' 字符串形式返回
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := 0; i < b.n; i++ {
		sb.WriteByte('0' + b.At(i))
	}
	return sb.String()
}

// Concat 拼接位串
func (b Bits) Concat(others ...Bits) Bits {
	w := newBitWriter()
	w.writeBits(b)
	for _, o := range others {
		w.writeBits(o)
	}
	return w.bits()
}

// hasOne 是否含有至少一个1
func (b Bits) hasOne() bool {
	for _, c := range b.data {
		if c != 0 {
			return true
		}
	}
	return false
}

func bitAt(data []byte, i int) byte {
	return (data[i>>3] >> (7 - uint(i&7))) & 1
}

// newBitReader 返回定位在第 offset 位的 icza/bitio 读取器
func newBitReader(data []byte, offset int) *bitio.Reader {
	r := bitio.NewReader(bytes.NewReader(data[offset/8:]))
	if skip := offset % 8; skip > 0 {
		_, _ = r.ReadBits(uint8(skip))
	}
	return r
}

// bitWriter 基于 icza/bitio 的高位在前写入器，用于拼装 Make* 的输出和序列拼接
//
// 底层是 bytes.Buffer，写入不会失败。
type bitWriter struct {
	buf bytes.Buffer
	w   *bitio.Writer
	n   int
}

func newBitWriter() *bitWriter {
	bw := &bitWriter{}
	bw.w = bitio.NewWriter(&bw.buf)
	return bw
}

// writeUint 写入 v 的低 n 位（n <= 64）
func (bw *bitWriter) writeUint(v uint64, n int) {
	if n <= 0 {
		return
	}
	_ = bw.w.WriteBits(v, uint8(n))
	bw.n += n
}

func (bw *bitWriter) writeBytes(p []byte) {
	for _, c := range p {
		_ = bw.w.WriteByte(c)
	}
	bw.n += 8 * len(p)
}

func (bw *bitWriter) writeBits(b Bits) {
	full := b.n / 8
	bw.writeBytes(b.data[:full])
	if rest := b.n % 8; rest > 0 {
		bw.writeUint(uint64(b.data[full]>>(8-uint(rest))), rest)
	}
}

// writeBig 写入非负大整数，左侧补零到 n 位；调用方保证 v.BitLen() <= n
func (bw *bitWriter) writeBig(v *big.Int, n int) {
	if n <= 0 {
		return
	}
	raw := v.FillBytes(make([]byte, (n+7)/8))
	if lead := n - 8*(len(raw)-1); lead < 8 {
		bw.writeUint(uint64(raw[0]), lead)
		bw.writeBytes(raw[1:])
		return
	}
	bw.writeBytes(raw)
}

// copyFrom 从 data 的第 offset 位起复制 n 位；调用方保证范围有效
func (bw *bitWriter) copyFrom(data []byte, offset, n int) {
	r := newBitReader(data, offset)
	for n > 0 {
		k := n
		if k > 64 {
			k = 64
		}
		v, _ := r.ReadBits(uint8(k))
		bw.writeUint(v, k)
		n -= k
	}
}

// bits 刷新缓存并返回结果
func (bw *bitWriter) bits() Bits {
	_ = bw.w.Close()
	return Bits{data: bw.buf.Bytes(), n: bw.n}
}
