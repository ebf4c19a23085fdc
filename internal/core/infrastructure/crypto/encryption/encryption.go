package encryption

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/nacl/box"

	cryptointf "github.com/weisyn/bitio/pkg/interfaces/infrastructure/crypto"
)

// 错误定义
var (
	ErrInvalidKeyLength = errors.New("无效的密钥长度")
	ErrKeyGeneration    = errors.New("密钥生成失败")
)

// BoxService 基于 NaCl box（Curve25519 + XSalsa20 + Poly1305）的公钥加密服务
type BoxService struct{}

// 确保BoxService实现了BoxCipher接口
var _ cryptointf.BoxCipher = (*BoxService)(nil)

// NewBoxService 创建新的 box 加密服务
func NewBoxService() *BoxService {
	return &BoxService{}
}

// GenerateKey 从随机源生成一对新的 Curve25519 密钥
func (s *BoxService) GenerateKey(rand io.Reader) (*[cryptointf.BoxKeySize]byte, *[cryptointf.BoxKeySize]byte, error) {
	publicKey, privateKey, err := box.GenerateKey(rand)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrKeyGeneration, err)
	}
	return publicKey, privateKey, nil
}

// PublicKey 由私钥推导公钥（X25519 基点乘法）
func (s *BoxService) PublicKey(privateKey *[cryptointf.BoxKeySize]byte) (*[cryptointf.BoxKeySize]byte, error) {
	if privateKey == nil {
		return nil, ErrInvalidKeyLength
	}
	derived, err := curve25519.X25519(privateKey[:], curve25519.Basepoint)
	if err != nil {
		return nil, fmt.Errorf("推导公钥失败: %w", err)
	}
	if len(derived) != cryptointf.BoxKeySize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidKeyLength, len(derived))
	}

	publicKey := new([cryptointf.BoxKeySize]byte)
	copy(publicKey[:], derived)
	return publicKey, nil
}

// Seal 加密并认证消息，输出长度 = len(message) + BoxOverhead
func (s *BoxService) Seal(message []byte, nonce *[cryptointf.BoxNonceSize]byte, peersPublicKey, privateKey *[cryptointf.BoxKeySize]byte) []byte {
	return box.Seal(nil, message, nonce, peersPublicKey, privateKey)
}

// Open 验证并解密消息
func (s *BoxService) Open(sealed []byte, nonce *[cryptointf.BoxNonceSize]byte, peersPublicKey, privateKey *[cryptointf.BoxKeySize]byte) ([]byte, bool) {
	return box.Open(nil, sealed, nonce, peersPublicKey, privateKey)
}
