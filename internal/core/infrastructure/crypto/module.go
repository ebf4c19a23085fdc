package crypto

import (
	"go.uber.org/fx"

	"github.com/weisyn/bitio/pkg/interfaces/infrastructure/crypto"
	log "github.com/weisyn/bitio/pkg/interfaces/infrastructure/log"
)

// CryptoParams 定义加密模块的依赖参数
type CryptoParams struct {
	fx.In

	Logger log.Logger `optional:"true"` // 日志记录器
}

// CryptoOutput 定义加密模块的输出结构
type CryptoOutput struct {
	fx.Out

	ChecksumCodec crypto.ChecksumCodec
	Bech32Codec   crypto.Bech32Codec
	BoxCipher     crypto.BoxCipher
}

// Module 返回加密模块
func Module() fx.Option {
	return fx.Module("crypto",
		// 提供加密服务
		fx.Provide(ProvideCryptoServices),
	)
}

// ProvideCryptoServices 提供加密服务
func ProvideCryptoServices(params CryptoParams) (CryptoOutput, error) {
	serviceOutput, err := CreateCryptoServices(ServiceInput{Logger: params.Logger})
	if err != nil {
		return CryptoOutput{}, err
	}

	return CryptoOutput{
		ChecksumCodec: serviceOutput.ChecksumCodec,
		Bech32Codec:   serviceOutput.Bech32Codec,
		BoxCipher:     serviceOutput.BoxCipher,
	}, nil
}
