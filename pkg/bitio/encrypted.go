package bitio

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/weisyn/bitio/internal/core/infrastructure/crypto/encryption"
	cryptointf "github.com/weisyn/bitio/pkg/interfaces/infrastructure/crypto"
)

// Key box 公钥或私钥
type Key = [cryptointf.BoxKeySize]byte

// ParseKey 解析64字符的十六进制密钥
func ParseKey(s string) (*Key, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if len(raw) != cryptointf.BoxKeySize {
		return nil, fmt.Errorf("%w: key is %d bytes, want %d", ErrInvalidInput, len(raw), cryptointf.BoxKeySize)
	}
	key := new(Key)
	copy(key[:], raw)
	return key, nil
}

// MakeEncrypted 加密并打包数据
//
// 布局：定点精度编码的密文长度 + 32字节发送方公钥 + 24字节 nonce + 密文。
//
// 参数：
//   - data: 明文
//   - recipientPublicKey: 接收方公钥
//   - senderPrivateKey: 发送方私钥，nil 时生成一次性临时密钥对
func MakeEncrypted(data []byte, recipientPublicKey, senderPrivateKey *Key) (Bits, error) {
	return makeEncrypted(encryption.NewBoxService(), rand.Reader, data, recipientPublicKey, senderPrivateKey)
}

func makeEncrypted(cipher cryptointf.BoxCipher, random io.Reader, data []byte, recipientPublicKey, senderPrivateKey *Key) (Bits, error) {
	if recipientPublicKey == nil {
		return Bits{}, fmt.Errorf("%w: missing recipient public key", ErrInvalidInput)
	}
	var (
		senderPublicKey *Key
		err             error
	)
	if senderPrivateKey == nil {
		senderPublicKey, senderPrivateKey, err = cipher.GenerateKey(random)
	} else {
		senderPublicKey, err = cipher.PublicKey(senderPrivateKey)
	}
	if err != nil {
		return Bits{}, err
	}

	nonce := new([cryptointf.BoxNonceSize]byte)
	if _, err := io.ReadFull(random, nonce[:]); err != nil {
		return Bits{}, fmt.Errorf("generate nonce: %w", err)
	}
	sealed := cipher.Seal(data, nonce, recipientPublicKey, senderPrivateKey)

	length, err := MakeFixedPrecisionUint64(uint64(len(sealed)))
	if err != nil {
		return Bits{}, fmt.Errorf("%w: ciphertext of %d bytes", ErrLengthExceeded, len(sealed))
	}
	w := newBitWriter()
	w.writeBits(length)
	w.writeBytes(senderPublicKey[:])
	w.writeBytes(nonce[:])
	w.writeBytes(sealed)
	return w.bits(), nil
}

// GetEncrypted 读取并解密数据
//
// 认证失败时游标恢复到读取前的位置，返回 ErrInvalidKey。
func (s *Sequence) GetEncrypted(recipientPrivateKey *Key) ([]byte, error) {
	return readAs(s, formatEncrypted, func() ([]byte, error) {
		return s.readEncrypted(recipientPrivateKey)
	})
}

func (s *Sequence) readEncrypted(recipientPrivateKey *Key) ([]byte, error) {
	if recipientPrivateKey == nil {
		return nil, fmt.Errorf("%w: missing recipient private key", ErrInvalidInput)
	}
	start := s.pointer
	length, err := s.readFixedPrecision()
	if err != nil {
		return nil, err
	}
	if !length.IsInt64() || length.Int64() > int64(s.Remaining()/8) {
		return nil, fmt.Errorf("%w: ciphertext length %s", ErrInsufficientData, length)
	}
	senderPublicKey := new(Key)
	raw, err := s.readBytes(cryptointf.BoxKeySize)
	if err != nil {
		return nil, err
	}
	copy(senderPublicKey[:], raw)

	nonce := new([cryptointf.BoxNonceSize]byte)
	raw, err = s.readBytes(cryptointf.BoxNonceSize)
	if err != nil {
		return nil, err
	}
	copy(nonce[:], raw)

	sealed, err := s.readBytes(int(length.Int64()))
	if err != nil {
		return nil, err
	}
	message, ok := s.settings.box.Open(sealed, nonce, senderPublicKey, recipientPrivateKey)
	if !ok {
		s.settings.logger.Warnf("加密数据认证失败，游标恢复到 %d", start)
		return nil, ErrInvalidKey
	}
	if message == nil {
		message = []byte{}
	}
	return message, nil
}

// AppendEncrypted 追加加密数据，不移动游标
func (s *Sequence) AppendEncrypted(data []byte, recipientPublicKey, senderPrivateKey *Key) error {
	b, err := makeEncrypted(s.settings.box, s.settings.random, data, recipientPublicKey, senderPrivateKey)
	return s.appendAs(formatEncrypted, b, err)
}

// InsertEncrypted 在游标处插入加密数据
func (s *Sequence) InsertEncrypted(data []byte, recipientPublicKey, senderPrivateKey *Key, opts ...InsertOption) error {
	b, err := makeEncrypted(s.settings.box, s.settings.random, data, recipientPublicKey, senderPrivateKey)
	return s.insertAs(formatEncrypted, b, err, opts)
}
