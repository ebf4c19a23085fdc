package bitio

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// TextCodec 可参与最优编码选择的文本编解码器
type TextCodec int

const (
	CodecAlpha TextCodec = iota + 1
	CodecUTF8
	CodecHex
	Codec3B40
)

var textCodecNames = map[TextCodec]string{
	CodecAlpha: "Alpha",
	CodecUTF8:  "UTF8",
	CodecHex:   "Hex",
	Codec3B40:  "3B40",
}

// String 编解码器名称
func (c TextCodec) String() string {
	if name, ok := textCodecNames[c]; ok {
		return name
	}
	return fmt.Sprintf("TextCodec(%d)", int(c))
}

// ParseTextCodec 按名称解析编解码器：Alpha、UTF8、Hex、3B40
func ParseTextCodec(name string) (TextCodec, error) {
	for c, n := range textCodecNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown text codec %q", ErrInvalidInput, name)
}

// Make 使用该编解码器编码 message
func (c TextCodec) Make(message string) (Bits, error) {
	switch c {
	case CodecAlpha:
		return MakeAlpha(message)
	case CodecUTF8:
		return MakeUTF8(message)
	case CodecHex:
		return MakeHex(message)
	case Codec3B40:
		return Make3B40(message)
	}
	return Bits{}, fmt.Errorf("%w: unknown text codec %d", ErrInvalidInput, int(c))
}

// read 使用该编解码器读取 length 个字符（不回退游标，由调用方负责）
func (c TextCodec) read(s *Sequence, length int) (string, error) {
	switch c {
	case CodecAlpha:
		return s.readAlpha(length)
	case CodecUTF8:
		return s.readUTF8(length)
	case CodecHex:
		if length == 0 {
			return "", nil
		}
		return s.readHex(length)
	case Codec3B40:
		return s.read3B40(length)
	}
	return "", fmt.Errorf("%w: unknown text codec %d", ErrInvalidInput, int(c))
}

// Candidate 候选项：头部位串 + 编解码器
type Candidate struct {
	Header string
	Codec  TextCodec
}

type candidate struct {
	header Bits
	codec  TextCodec
}

// Selector 最优文本编码选择器
//
// 输出格式：header + 长度字段(lengthBits 位，字符数) + 编码内容。
// 候选项按给定顺序尝试，长度相同时先出现者胜出。
type Selector struct {
	lengthBits int
	candidates []candidate

	// 头部互不为前缀时才能解码
	prefixFree bool
}

// NewSelector 创建选择器
//
// 参数：
//   - lengthBits: 长度字段位宽
//   - candidates: 候选项，头部必须是互不相同的二进制串；
//     只有头部互不为前缀的选择器才能用于 GetBestString
//
// 返回：
//   - *Selector: 选择器
//   - error: 头部或编解码器无效时返回 ErrInvalidInput
func NewSelector(lengthBits int, candidates ...Candidate) (*Selector, error) {
	if lengthBits < 0 || lengthBits > MaxIntBits {
		return nil, fmt.Errorf("%w: length field width %d", ErrInvalidInput, lengthBits)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no candidates", ErrInvalidInput)
	}
	sel := &Selector{lengthBits: lengthBits, prefixFree: true}
	for i, c := range candidates {
		if _, ok := textCodecNames[c.Codec]; !ok {
			return nil, fmt.Errorf("%w: unknown text codec %d for header %q", ErrInvalidInput, int(c.Codec), c.Header)
		}
		header, err := ParseBits(c.Header)
		if err != nil {
			return nil, err
		}
		for _, prev := range candidates[:i] {
			if c.Header == prev.Header {
				return nil, fmt.Errorf("%w: duplicate header %q", ErrInvalidInput, c.Header)
			}
			if strings.HasPrefix(c.Header, prev.Header) || strings.HasPrefix(prev.Header, c.Header) {
				sel.prefixFree = false
			}
		}
		sel.candidates = append(sel.candidates, candidate{header: header, codec: c.Codec})
	}
	return sel, nil
}

// Decodable 头部互不为前缀时返回 true
func (sel *Selector) Decodable() bool {
	return sel.prefixFree
}

// LengthBits 长度字段位宽
func (sel *Selector) LengthBits() int {
	return sel.lengthBits
}

// Make 穷举全部候选项，返回最短的编码及所选编解码器
func (sel *Selector) Make(message string) (Bits, TextCodec, error) {
	count := utf8.RuneCountInString(message)
	if count >= 1<<uint(sel.lengthBits) {
		return Bits{}, 0, fmt.Errorf("%w: %d characters do not fit in %d length bits", ErrLengthExceeded, count, sel.lengthBits)
	}
	length, _ := MakeInt(count, sel.lengthBits)

	var (
		best   Bits
		chosen TextCodec
		found  bool
	)
	for _, c := range sel.candidates {
		body, err := c.codec.Make(message)
		if err != nil {
			continue
		}
		total := c.header.Len() + length.Len() + body.Len()
		if !found || total < best.Len() {
			best = c.header.Concat(length, body)
			chosen = c.codec
			found = true
		}
	}
	if !found {
		return Bits{}, 0, fmt.Errorf("%w: no candidate codec accepts the message", ErrInvalidInput)
	}
	return best, chosen, nil
}

// MakeBestString 以给定候选项选出最短编码
func MakeBestString(message string, lengthBits int, candidates ...Candidate) (Bits, error) {
	sel, err := NewSelector(lengthBits, candidates...)
	if err != nil {
		return Bits{}, err
	}
	b, _, err := sel.Make(message)
	return b, err
}

// GetBestString 读取由 sel 编码的字符串：匹配头部、读取长度、按对应编解码器解码
//
// 某个头部是另一个头部的前缀时无法确定边界，返回 ErrInvalidInput。
func (s *Sequence) GetBestString(sel *Selector) (string, error) {
	return readAs(s, formatBestString, func() (string, error) {
		if !sel.prefixFree {
			return "", fmt.Errorf("%w: headers are not prefix-free, cannot decode", ErrInvalidInput)
		}
		c, err := s.matchHeader(sel)
		if err != nil {
			return "", err
		}
		length, err := s.readUint(sel.lengthBits)
		if err != nil {
			return "", err
		}
		return c.codec.read(s, int(length))
	})
}

// matchHeader 匹配游标处的候选项头部并前移游标
// 头部互不为前缀，至多一个候选项匹配
func (s *Sequence) matchHeader(sel *Selector) (candidate, error) {
	shortest := -1
	for _, c := range sel.candidates {
		if s.checkRun(c.header) {
			s.pointer += c.header.Len()
			return c, nil
		}
		if shortest < 0 || c.header.Len() < shortest {
			shortest = c.header.Len()
		}
	}
	if s.Remaining() < shortest {
		return candidate{}, fmt.Errorf("%w: need a %d bit header, %d remaining", ErrInsufficientData, shortest, s.Remaining())
	}
	return candidate{}, fmt.Errorf("%w: no candidate header at bit %d", ErrInvalidInput, s.pointer)
}

// AppendBestString 追加最优编码字符串，不移动游标
func (s *Sequence) AppendBestString(message string, sel *Selector) error {
	b, err := s.selectBest(message, sel)
	return s.appendAs(formatBestString, b, err)
}

// InsertBestString 在游标处插入最优编码字符串
func (s *Sequence) InsertBestString(message string, sel *Selector, opts ...InsertOption) error {
	b, err := s.selectBest(message, sel)
	return s.insertAs(formatBestString, b, err, opts)
}

func (s *Sequence) selectBest(message string, sel *Selector) (Bits, error) {
	b, codec, err := sel.Make(message)
	if err != nil {
		return Bits{}, err
	}
	s.settings.logger.Debugf("最优编码选择: codec=%s bits=%d", codec, b.Len())
	s.settings.metrics.ObserveSelection(codec.String())
	return b, nil
}
