// Package address 提供地址编解码所需的 Base58Check 与 Bech32 适配实现
package address

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"

	cryptointf "github.com/weisyn/bitio/pkg/interfaces/infrastructure/crypto"
)

const (
	// AddressHashLength 地址哈希长度（20字节）
	AddressHashLength = 20
	// Base58AddressLength Base58Check 地址的字符长度（版本1 + 哈希20 + 校验和4）
	Base58AddressLength = 34
)

var (
	// ErrInvalidAddress 无效的地址格式
	ErrInvalidAddress = errors.New("invalid address format")
	// ErrInvalidChecksum 校验和错误
	ErrInvalidChecksum = errors.New("invalid checksum")
)

// ChecksumService Base58Check 编解码服务
type ChecksumService struct{}

// 确保ChecksumService实现了ChecksumCodec接口
var _ cryptointf.ChecksumCodec = (*ChecksumService)(nil)

// NewChecksumService 创建 Base58Check 编解码服务
func NewChecksumService() *ChecksumService {
	return &ChecksumService{}
}

// CheckEncode 编码 版本字节 + 载荷 + 双SHA256校验和
func (s *ChecksumService) CheckEncode(payload []byte, version byte) string {
	return base58.CheckEncode(payload, version)
}

// CheckDecode 解码 Base58Check 字符串
//
// 返回：
//   - []byte: 载荷（不含版本字节）
//   - byte: 版本字节
//   - error: ErrInvalidChecksum 或 ErrInvalidAddress
func (s *ChecksumService) CheckDecode(address string) ([]byte, byte, error) {
	payload, version, err := base58.CheckDecode(address)
	switch {
	case errors.Is(err, base58.ErrChecksum):
		return nil, 0, fmt.Errorf("%w: %s", ErrInvalidChecksum, address)
	case err != nil:
		return nil, 0, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return payload, version, nil
}

// Bech32Service Bech32 编解码服务
type Bech32Service struct{}

// 确保Bech32Service实现了Bech32Codec接口
var _ cryptointf.Bech32Codec = (*Bech32Service)(nil)

// NewBech32Service 创建 Bech32 编解码服务
func NewBech32Service() *Bech32Service {
	return &Bech32Service{}
}

// Encode 生成 Bech32 字符串
func (s *Bech32Service) Encode(hrp string, words []byte) (string, error) {
	encoded, err := bech32.Encode(hrp, words)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return encoded, nil
}

// Decode 解码 Bech32 字符串（校验 bech32 校验和）
func (s *Bech32Service) Decode(address string) (string, []byte, error) {
	hrp, words, err := bech32.Decode(address)
	if err != nil {
		var checksumErr bech32.ErrInvalidChecksum
		if errors.As(err, &checksumErr) {
			return "", nil, fmt.Errorf("%w: %v", ErrInvalidChecksum, err)
		}
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return hrp, words, nil
}

// ToWords 8 位字节转换为 5 位数据组
func (s *Bech32Service) ToWords(data []byte) ([]byte, error) {
	return bech32.ConvertBits(data, 8, 5, true)
}

// FromWords 5 位数据组转换回 8 位字节
func (s *Bech32Service) FromWords(words []byte) ([]byte, error) {
	data, err := bech32.ConvertBits(words, 5, 8, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return data, nil
}
