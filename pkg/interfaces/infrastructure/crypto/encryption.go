package crypto

import "io"

const (
	// BoxKeySize box 公钥/私钥长度（字节）
	BoxKeySize = 32
	// BoxNonceSize box nonce 长度（字节）
	BoxNonceSize = 24
	// BoxOverhead box 密文相对明文的认证开销（字节）
	BoxOverhead = 16
)

// BoxCipher 带认证的公钥加密原语
//
// 语义与 NaCl crypto_box 一致：发送方私钥 + 接收方公钥协商共享密钥，
// 打开失败时不返回任何明文。
type BoxCipher interface {
	// GenerateKey 生成一对新的密钥
	GenerateKey(rand io.Reader) (publicKey, privateKey *[BoxKeySize]byte, err error)

	// PublicKey 由私钥推导公钥
	PublicKey(privateKey *[BoxKeySize]byte) (*[BoxKeySize]byte, error)

	// Seal 加密并认证消息
	Seal(message []byte, nonce *[BoxNonceSize]byte, peersPublicKey, privateKey *[BoxKeySize]byte) []byte

	// Open 验证并解密消息，认证失败返回 false
	Open(box []byte, nonce *[BoxNonceSize]byte, peersPublicKey, privateKey *[BoxKeySize]byte) ([]byte, bool)
}
