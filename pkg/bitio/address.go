package bitio

import (
	"fmt"
	"strings"

	"github.com/weisyn/bitio/internal/core/infrastructure/crypto/address"
	cryptointf "github.com/weisyn/bitio/pkg/interfaces/infrastructure/crypto"
	"github.com/weisyn/bitio/pkg/types"
)

// 地址类型标签（2位）
const (
	addressTagPubKeyHash = 0b01
	addressTagScriptHash = 0b10
	addressTagSegwit     = 0b11
)

// MakeAddress 地址编码为 2位类型标签 + 160位哈希
//
// 参数：
//   - addr: Base58Check（34字符）或 Bech32 v0 地址
//   - net: 网络参数，nil 表示 DigiByte 主网
//
// 返回：
//   - Bits: 162 位
//   - error: 地址格式、校验和或网络不匹配时返回 ErrInvalidInput
func MakeAddress(addr string, net *types.NetworkParams) (Bits, error) {
	return makeAddress(address.NewChecksumService(), address.NewBech32Service(), addr, net)
}

func makeAddress(checksum cryptointf.ChecksumCodec, bech cryptointf.Bech32Codec, addr string, net *types.NetworkParams) (Bits, error) {
	params := resolveNetwork(net)
	var (
		tag  uint64
		hash []byte
	)
	if len(addr) == address.Base58AddressLength {
		payload, version, err := checksum.CheckDecode(addr)
		if err != nil {
			return Bits{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		switch version {
		case params.PubKeyHash:
			tag = addressTagPubKeyHash
		case params.ScriptHash:
			tag = addressTagScriptHash
		default:
			return Bits{}, fmt.Errorf("%w: version %#x is not a %s address", ErrInvalidInput, version, params.Name)
		}
		hash = payload
	} else {
		hrp, words, err := bech.Decode(addr)
		if err != nil {
			return Bits{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if !strings.EqualFold(hrp, params.Bech32) {
			return Bits{}, fmt.Errorf("%w: prefix %q is not %q", ErrInvalidInput, hrp, params.Bech32)
		}
		if len(words) == 0 || words[0] != 0 {
			return Bits{}, fmt.Errorf("%w: only witness version 0 is supported", ErrInvalidInput)
		}
		program, err := bech.FromWords(words[1:])
		if err != nil {
			return Bits{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		tag = addressTagSegwit
		hash = program
	}
	if len(hash) != address.AddressHashLength {
		return Bits{}, fmt.Errorf("%w: hash is %d bytes, want %d", ErrInvalidInput, len(hash), address.AddressHashLength)
	}
	w := newBitWriter()
	w.writeUint(tag, 2)
	w.writeBytes(hash)
	return w.bits(), nil
}

// GetAddress 读取地址
//
// 参数：
//   - net: 网络参数，nil 表示 DigiByte 主网
func (s *Sequence) GetAddress(net *types.NetworkParams) (string, error) {
	return readAs(s, formatAddress, func() (string, error) {
		return s.readAddress(resolveNetwork(net))
	})
}

func (s *Sequence) readAddress(params types.NetworkParams) (string, error) {
	tag, err := s.readUint(2)
	if err != nil {
		return "", err
	}
	if tag == 0 {
		return "", fmt.Errorf("%w: reserved address tag 00", ErrInvalidInput)
	}
	hash, err := s.readBytes(address.AddressHashLength)
	if err != nil {
		return "", err
	}
	switch tag {
	case addressTagPubKeyHash:
		return s.settings.checksum.CheckEncode(hash, params.PubKeyHash), nil
	case addressTagScriptHash:
		return s.settings.checksum.CheckEncode(hash, params.ScriptHash), nil
	}
	words, err := s.settings.bech32.ToWords(hash)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.settings.bech32.Encode(params.Bech32, append([]byte{0}, words...))
}

// AppendAddress 追加地址，不移动游标
func (s *Sequence) AppendAddress(addr string, net *types.NetworkParams) error {
	b, err := makeAddress(s.settings.checksum, s.settings.bech32, addr, net)
	return s.appendAs(formatAddress, b, err)
}

// InsertAddress 在游标处插入地址
func (s *Sequence) InsertAddress(addr string, net *types.NetworkParams, opts ...InsertOption) error {
	b, err := makeAddress(s.settings.checksum, s.settings.bech32, addr, net)
	return s.insertAs(formatAddress, b, err, opts)
}

func resolveNetwork(net *types.NetworkParams) types.NetworkParams {
	if net == nil {
		return types.DigiByteNetwork()
	}
	return *net
}
