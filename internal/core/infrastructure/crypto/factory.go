// Package crypto 提供加密服务工厂实现
package crypto

import (
	"github.com/weisyn/bitio/internal/core/infrastructure/crypto/address"
	"github.com/weisyn/bitio/internal/core/infrastructure/crypto/encryption"
	"github.com/weisyn/bitio/pkg/interfaces/infrastructure/crypto"
	log "github.com/weisyn/bitio/pkg/interfaces/infrastructure/log"
)

// ServiceInput 定义加密服务工厂的输入参数
type ServiceInput struct {
	Logger log.Logger `optional:"true"`
}

// ServiceOutput 定义加密服务工厂的输出结果
type ServiceOutput struct {
	ChecksumCodec crypto.ChecksumCodec
	Bech32Codec   crypto.Bech32Codec
	BoxCipher     crypto.BoxCipher
}

// CreateCryptoServices 创建编解码器依赖的密码学服务
func CreateCryptoServices(input ServiceInput) (ServiceOutput, error) {
	output := ServiceOutput{
		ChecksumCodec: address.NewChecksumService(),
		Bech32Codec:   address.NewBech32Service(),
		BoxCipher:     encryption.NewBoxService(),
	}

	if input.Logger != nil {
		input.Logger.Debug("密码学服务已创建: base58check, bech32, nacl box")
	}
	return output, nil
}
