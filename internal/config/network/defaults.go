package network

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/chaincfg"

	"github.com/weisyn/bitio/pkg/types"
)

// 网络参数表默认值
const (
	// defaultNetworkName 未指定网络时使用的网络名称
	defaultNetworkName = "digibyte"

	// bitcoinMessagePrefix 比特币系列网络的消息签名前缀
	bitcoinMessagePrefix = "\x18Bitcoin Signed Message:\n"
)

// builtinNetworks 内置网络表
// DigiByte 为地址编解码的默认网络，其余取自 btcd 的链参数
func builtinNetworks() map[string]types.NetworkParams {
	networks := map[string]types.NetworkParams{
		defaultNetworkName: types.DigiByteNetwork(),
	}

	presets := map[string]*chaincfg.Params{
		"bitcoin":  &chaincfg.MainNetParams,
		"testnet3": &chaincfg.TestNet3Params,
		"regtest":  &chaincfg.RegressionNetParams,
		"signet":   &chaincfg.SigNetParams,
	}
	for name, params := range presets {
		networks[name] = FromChainParams(name, params)
	}
	return networks
}

// FromChainParams 将 btcd 链参数转换为地址编解码使用的网络参数
func FromChainParams(name string, params *chaincfg.Params) types.NetworkParams {
	return types.NetworkParams{
		Name:          name,
		MessagePrefix: bitcoinMessagePrefix,
		Bech32:        params.Bech32HRPSegwit,
		BIP32: types.BIP32Versions{
			Public:  binary.BigEndian.Uint32(params.HDPublicKeyID[:]),
			Private: binary.BigEndian.Uint32(params.HDPrivateKeyID[:]),
		},
		PubKeyHash: params.PubKeyHashAddrID,
		ScriptHash: params.ScriptHashAddrID,
		WIF:        params.PrivateKeyID,
	}
}
