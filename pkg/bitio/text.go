package bitio

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// 字母表
const (
	// CharSetAlpha QR码字母数字编码字母表（小写）
	CharSetAlpha = "0123456789abcdefghijklmnopqrstuvwxyz $%*+-./:"
	// CharSet3B40 文件扩展名字母表，每3个字符对齐到2字节
	CharSet3B40 = "0123456789abcdefghijklmnopqrstuvwxyz#$&."
	// CharSetHex 十六进制字母表（解码输出小写）
	CharSetHex = "0123456789abcdef"
)

// alphabetIndex 查找字符在字母表中的位置
func alphabetIndex(alphabet string, message string, i int) (uint64, error) {
	pos := strings.IndexByte(alphabet, message[i])
	if pos < 0 {
		return 0, fmt.Errorf("%w: character %q not in alphabet", ErrInvalidInput, message[i])
	}
	return uint64(pos), nil
}

// ========================================
// Alpha：2字符 → 11位，剩余1字符 → 6位
// ========================================

// MakeAlpha 使用 QR 码字母数字编码（小写字母表）编码字符串
func MakeAlpha(message string) (Bits, error) {
	w := newBitWriter()
	var val uint64
	for i := 0; i < len(message); i++ {
		pos, err := alphabetIndex(CharSetAlpha, message, i)
		if err != nil {
			return Bits{}, err
		}
		val = val*45 + pos
		if i%2 == 1 {
			w.writeUint(val, 11)
			val = 0
		}
	}
	if len(message)%2 == 1 {
		w.writeUint(val, 6)
	}
	return w.bits(), nil
}

// GetAlpha 读取 length 个字符的 Alpha 字符串
func (s *Sequence) GetAlpha(length int) (string, error) {
	return readAs(s, formatAlpha, func() (string, error) {
		return s.readAlpha(length)
	})
}

func (s *Sequence) readAlpha(length int) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("%w: negative length %d", ErrInvalidInput, length)
	}
	var sb strings.Builder
	for i := 0; i < length/2; i++ {
		chars, err := s.readUint(11)
		if err != nil {
			return "", err
		}
		if chars >= 45*45 {
			return "", fmt.Errorf("%w: alpha pair %d out of range", ErrInvalidInput, chars)
		}
		sb.WriteByte(CharSetAlpha[chars/45])
		sb.WriteByte(CharSetAlpha[chars%45])
	}
	if length%2 == 1 {
		c, err := s.readUint(6)
		if err != nil {
			return "", err
		}
		if c >= 45 {
			return "", fmt.Errorf("%w: alpha character %d out of range", ErrInvalidInput, c)
		}
		sb.WriteByte(CharSetAlpha[c])
	}
	return sb.String(), nil
}

// AppendAlpha 追加 Alpha 字符串，不移动游标
func (s *Sequence) AppendAlpha(message string) error {
	b, err := MakeAlpha(message)
	return s.appendAs(formatAlpha, b, err)
}

// InsertAlpha 在游标处插入 Alpha 字符串
func (s *Sequence) InsertAlpha(message string, opts ...InsertOption) error {
	b, err := MakeAlpha(message)
	return s.insertAs(formatAlpha, b, err, opts)
}

// ========================================
// UTF8（去掉冗余位的修改版）
// ========================================
//
// 头部：
//   0:   后接 7 位    U+0000 - U+007F
//   10:  后接 11 位   U+0080 - U+07FF
//   110: 后接 16 位   U+0800 - U+FFFF
//   111: 后接 21 位   U+10000 - U+10FFFF

// MakeUTF8 使用修改版 UTF8 编码字符串
func MakeUTF8(message string) (Bits, error) {
	if !utf8.ValidString(message) {
		return Bits{}, fmt.Errorf("%w: message is not valid UTF-8", ErrInvalidInput)
	}
	w := newBitWriter()
	for _, r := range message {
		cp := uint64(r)
		switch {
		case cp < 0x80:
			w.writeUint(0b0, 1)
			w.writeUint(cp, 7)
		case cp < 0x800:
			w.writeUint(0b10, 2)
			w.writeUint(cp, 11)
		case cp < 0x10000:
			w.writeUint(0b110, 3)
			w.writeUint(cp, 16)
		default:
			w.writeUint(0b111, 3)
			w.writeUint(cp, 21)
		}
	}
	return w.bits(), nil
}

// GetUTF8 读取 length 个字符（码点）
func (s *Sequence) GetUTF8(length int) (string, error) {
	return readAs(s, formatUTF8, func() (string, error) {
		return s.readUTF8(length)
	})
}

func (s *Sequence) readUTF8(length int) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("%w: negative length %d", ErrInvalidInput, length)
	}
	var sb strings.Builder
	for i := 0; i < length; i++ {
		cp, err := s.readCodePoint()
		if err != nil {
			return "", err
		}
		r := rune(cp)
		if cp > utf8.MaxRune || !utf8.ValidRune(r) {
			return "", fmt.Errorf("%w: code point %#x", ErrInvalidInput, cp)
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}

// readCodePoint 读取一个码点：依次检查头部位，确定负载宽度
func (s *Sequence) readCodePoint() (uint64, error) {
	widths := [...]int{7, 11, 16}
	for _, width := range widths {
		bit, err := s.readUint(1)
		if err != nil {
			return 0, err
		}
		if bit == 0 {
			return s.readUint(width)
		}
	}
	return s.readUint(21)
}

// AppendUTF8 追加 UTF8 字符串，不移动游标
func (s *Sequence) AppendUTF8(message string) error {
	b, err := MakeUTF8(message)
	return s.appendAs(formatUTF8, b, err)
}

// InsertUTF8 在游标处插入 UTF8 字符串
func (s *Sequence) InsertUTF8(message string, opts ...InsertOption) error {
	b, err := MakeUTF8(message)
	return s.insertAs(formatUTF8, b, err, opts)
}

// ========================================
// Hex：1字符 → 4位
// ========================================

// MakeHex 十六进制字符串编码，大小写均可
func MakeHex(value string) (Bits, error) {
	w := newBitWriter()
	for i := 0; i < len(value); i++ {
		pos, err := alphabetIndex(CharSetHex, strings.ToLower(value[i:i+1]), 0)
		if err != nil {
			return Bits{}, err
		}
		w.writeUint(pos, 4)
	}
	return w.bits(), nil
}

// GetHex 读取 length 个十六进制字符（小写）
func (s *Sequence) GetHex(length int) (string, error) {
	return readAs(s, formatHex, func() (string, error) {
		return s.readHex(length)
	})
}

// GetHexRemaining 读取剩余全部完整的半字节
func (s *Sequence) GetHexRemaining() (string, error) {
	return s.GetHex(s.Remaining() / 4)
}

func (s *Sequence) readHex(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("%w: invalid hex length %d", ErrInvalidInput, length)
	}
	var sb strings.Builder
	for i := 0; i < length; i++ {
		v, err := s.readUint(4)
		if err != nil {
			return "", err
		}
		sb.WriteByte(CharSetHex[v])
	}
	return sb.String(), nil
}

// AppendHex 追加十六进制字符串，不移动游标
func (s *Sequence) AppendHex(value string) error {
	b, err := MakeHex(value)
	return s.appendAs(formatHex, b, err)
}

// InsertHex 在游标处插入十六进制字符串
func (s *Sequence) InsertHex(value string, opts ...InsertOption) error {
	b, err := MakeHex(value)
	return s.insertAs(formatHex, b, err, opts)
}

// ========================================
// 3B40：3字符 → 16位，剩余1字符 → 5位，剩余2字符 → 11位
// ========================================

// Make3B40 使用 40 字符字母表编码字符串
func Make3B40(value string) (Bits, error) {
	w := newBitWriter()
	var val uint64
	for i := 0; i < len(value); i++ {
		pos, err := alphabetIndex(CharSet3B40, value, i)
		if err != nil {
			return Bits{}, err
		}
		val = val*40 + pos
		if i%3 == 2 {
			w.writeUint(val, 16)
			val = 0
		}
	}
	switch len(value) % 3 {
	case 1:
		w.writeUint(val, 5)
	case 2:
		w.writeUint(val, 11)
	}
	return w.bits(), nil
}

// Get3B40 读取 length 个字符的 3B40 字符串
func (s *Sequence) Get3B40(length int) (string, error) {
	return readAs(s, format3B40, func() (string, error) {
		return s.read3B40(length)
	})
}

func (s *Sequence) read3B40(length int) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("%w: negative length %d", ErrInvalidInput, length)
	}
	var sb strings.Builder
	for i := 0; i < length/3; i++ {
		chars, err := s.readUint(16)
		if err != nil {
			return "", err
		}
		if chars >= 40*40*40 {
			return "", fmt.Errorf("%w: 3b40 triple %d out of range", ErrInvalidInput, chars)
		}
		sb.WriteByte(CharSet3B40[chars/1600])
		sb.WriteByte(CharSet3B40[chars/40%40])
		sb.WriteByte(CharSet3B40[chars%40])
	}
	switch length % 3 {
	case 1:
		c, err := s.readUint(5)
		if err != nil {
			return "", err
		}
		sb.WriteByte(CharSet3B40[c])
	case 2:
		chars, err := s.readUint(11)
		if err != nil {
			return "", err
		}
		if chars >= 40*40 {
			return "", fmt.Errorf("%w: 3b40 pair %d out of range", ErrInvalidInput, chars)
		}
		sb.WriteByte(CharSet3B40[chars/40])
		sb.WriteByte(CharSet3B40[chars%40])
	}
	return sb.String(), nil
}

// Append3B40 追加 3B40 字符串，不移动游标
func (s *Sequence) Append3B40(value string) error {
	b, err := Make3B40(value)
	return s.appendAs(format3B40, b, err)
}

// Insert3B40 在游标处插入 3B40 字符串
func (s *Sequence) Insert3B40(value string, opts ...InsertOption) error {
	b, err := Make3B40(value)
	return s.insertAs(format3B40, b, err, opts)
}
