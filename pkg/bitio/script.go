package bitio

import (
	"encoding/hex"
	"fmt"
)

// 数据推送操作码
const (
	opPushData1 = 76
	opPushData2 = 77
	opPushData4 = 78
	opSmallBase = 80
	maxDirect   = 75
)

// opCodes 具名操作码表
var opCodes = map[string]byte{
	"OP_0":                   0,
	"OP_FALSE":               0,
	"OP_PUSHDATA1":           76,
	"OP_PUSHDATA2":           77,
	"OP_PUSHDATA4":           78,
	"OP_1NEGATE":             79,
	"OP_1":                   80,
	"OP_TRUE":                81,
	"OP_2":                   82,
	"OP_3":                   83,
	"OP_4":                   84,
	"OP_5":                   85,
	"OP_6":                   86,
	"OP_7":                   87,
	"OP_8":                   88,
	"OP_9":                   89,
	"OP_10":                  90,
	"OP_11":                  91,
	"OP_12":                  92,
	"OP_13":                  93,
	"OP_14":                  94,
	"OP_15":                  95,
	"OP_16":                  96,
	"OP_NOP":                 97,
	"OP_IF":                  99,
	"OP_NOTIF":               100,
	"OP_ELSE":                103,
	"OP_ENDIF":               104,
	"OP_VERIFY":              105,
	"OP_RETURN":              106,
	"OP_TOALTSTACK":          107,
	"OP_FROMALTSTACK":        108,
	"OP_2DROP":               109,
	"OP_2DUP":                110,
	"OP_3DUP":                111,
	"OP_2OVER":               112,
	"OP_2ROT":                113,
	"OP_2SWAP":               114,
	"OP_IFDUP":               115,
	"OP_DEPTH":               116,
	"OP_DROP":                117,
	"OP_DUP":                 118,
	"OP_NIP":                 119,
	"OP_OVER":                120,
	"OP_PICK":                121,
	"OP_ROLL":                122,
	"OP_ROT":                 123,
	"OP_SWAP":                124,
	"OP_TUCK":                125,
	"OP_SIZE":                130,
	"OP_EQUAL":               135,
	"OP_EQUALVERIFY":         136,
	"OP_1ADD":                139,
	"OP_1SUB":                140,
	"OP_NEGATE":              143,
	"OP_ABS":                 144,
	"OP_NOT":                 145,
	"OP_0NOTEQUAL":           146,
	"OP_ADD":                 147,
	"OP_SUB":                 148,
	"OP_BOOLAND":             154,
	"OP_BOOLOR":              155,
	"OP_NUMEQUAL":            156,
	"OP_NUMEQUALVERIFY":      157,
	"OP_NUMNOTEQUAL":         158,
	"OP_LESSTHAN":            159,
	"OP_GREATERTHAN":         160,
	"OP_LESSTHANOREQUAL":     161,
	"OP_GREATERTHANOREQUAL":  162,
	"OP_MIN":                 163,
	"OP_MAX":                 164,
	"OP_WITHIN":              165,
	"OP_RIPEMD160":           166,
	"OP_SHA1":                167,
	"OP_SHA256":              168,
	"OP_HASH160":             169,
	"OP_HASH256":             170,
	"OP_CODESEPARATOR":       171,
	"OP_CHECKSIG":            172,
	"OP_CHECKSIGVERIFY":      173,
	"OP_CHECKMULTISIG":       174,
	"OP_CHECKMULTISIGVERIFY": 175,
	"OP_CHECKLOCKTIMEVERIFY": 177,
	"OP_CHECKSEQUENCEVERIFY": 178,
}

// opNames 反向表，仅覆盖解码时按名称返回的操作码（>96）
var opNames = func() map[byte]string {
	m := make(map[byte]string)
	for name, code := range opCodes {
		if code > opSmallBase+16 {
			m[code] = name
		}
	}
	return m
}()

// ScriptKind 脚本元素类型
type ScriptKind int

const (
	// ScriptNumber 小整数 -1..16（含0/false）
	ScriptNumber ScriptKind = iota
	// ScriptData 字节串推送
	ScriptData
	// ScriptOpCode 具名操作码
	ScriptOpCode
)

// ScriptItem 一个脚本元素：操作码字节 + 负载
type ScriptItem struct {
	Kind   ScriptKind
	Number int
	Data   []byte
	OpCode string
}

// NumberItem 小整数元素
func NumberItem(n int) ScriptItem {
	return ScriptItem{Kind: ScriptNumber, Number: n}
}

// DataItem 字节串推送元素
func DataItem(data []byte) ScriptItem {
	return ScriptItem{Kind: ScriptData, Data: data}
}

// OpCodeItem 具名操作码元素
func OpCodeItem(name string) ScriptItem {
	return ScriptItem{Kind: ScriptOpCode, OpCode: name}
}

// ParseScriptToken 解析文本形式的元素：十六进制串视为字节串推送，否则按操作码名称处理
//
// 十六进制串必须是偶数长度。
func ParseScriptToken(token string) (ScriptItem, error) {
	if isHexString(token) {
		data, err := hex.DecodeString(token)
		if err != nil {
			return ScriptItem{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return DataItem(data), nil
	}
	if _, ok := opCodes[token]; ok {
		return OpCodeItem(token), nil
	}
	return ScriptItem{}, fmt.Errorf("%w: unknown script token %q", ErrInvalidInput, token)
}

func isHexString(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

// MakeScript 编码脚本元素
func MakeScript(item ScriptItem) (Bits, error) {
	w := newBitWriter()
	switch item.Kind {
	case ScriptNumber:
		if item.Number == 0 {
			w.writeUint(0, 8)
			break
		}
		if item.Number < -1 || item.Number > 16 {
			return Bits{}, fmt.Errorf("%w: script number %d not in [-1, 16]", ErrInvalidInput, item.Number)
		}
		w.writeUint(uint64(item.Number+opSmallBase), 8)
	case ScriptData:
		n := len(item.Data)
		switch {
		case uint64(n) > 0xffffffff:
			return Bits{}, fmt.Errorf("%w: %d bytes exceed push limit", ErrLengthExceeded, n)
		case n > 0xffff:
			w.writeUint(opPushData4, 8)
			w.writeUint(uint64(n), 32)
		case n > 0xff:
			w.writeUint(opPushData2, 8)
			w.writeUint(uint64(n), 16)
		case n > maxDirect:
			w.writeUint(opPushData1, 8)
			w.writeUint(uint64(n), 8)
		default:
			w.writeUint(uint64(n), 8)
		}
		w.writeBytes(item.Data)
	case ScriptOpCode:
		code, ok := opCodes[item.OpCode]
		if !ok {
			return Bits{}, fmt.Errorf("%w: unknown op code %q", ErrInvalidInput, item.OpCode)
		}
		w.writeUint(uint64(code), 8)
	default:
		return Bits{}, fmt.Errorf("%w: unknown script item kind %d", ErrInvalidInput, item.Kind)
	}
	return w.bits(), nil
}

// GetScript 读取一个脚本元素
//
// 返回：
//   - ScriptItem: 0 与 79..96 为 ScriptNumber，<=78 为 ScriptData，其余为 ScriptOpCode
//   - error: 操作码为80或不在操作码表中时返回 ErrInvalidOpCode
func (s *Sequence) GetScript() (ScriptItem, error) {
	return readAs(s, formatScript, s.readScript)
}

func (s *Sequence) readScript() (ScriptItem, error) {
	op, err := s.readUint(8)
	if err != nil {
		return ScriptItem{}, err
	}
	switch {
	case op == 0:
		return NumberItem(0), nil
	case op == opSmallBase:
		return ScriptItem{}, fmt.Errorf("%w: %d", ErrInvalidOpCode, op)
	case op >= opSmallBase-1 && op <= opSmallBase+16:
		return NumberItem(int(op) - opSmallBase), nil
	case op <= opPushData4:
		length := op
		switch op {
		case opPushData1:
			length, err = s.readUint(8)
		case opPushData2:
			length, err = s.readUint(16)
		case opPushData4:
			length, err = s.readUint(32)
		}
		if err != nil {
			return ScriptItem{}, err
		}
		data, err := s.readBytes(int(length))
		if err != nil {
			return ScriptItem{}, err
		}
		return DataItem(data), nil
	}
	name, ok := opNames[byte(op)]
	if !ok {
		return ScriptItem{}, fmt.Errorf("%w: %d", ErrInvalidOpCode, op)
	}
	return OpCodeItem(name), nil
}

// AppendScript 追加脚本元素，不移动游标
func (s *Sequence) AppendScript(item ScriptItem) error {
	b, err := MakeScript(item)
	return s.appendAs(formatScript, b, err)
}

// InsertScript 在游标处插入脚本元素
func (s *Sequence) InsertScript(item ScriptItem, opts ...InsertOption) error {
	b, err := MakeScript(item)
	return s.insertAs(formatScript, b, err, opts)
}
