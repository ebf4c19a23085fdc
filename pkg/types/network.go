package types

// BIP32Versions BIP32扩展密钥版本字节
type BIP32Versions struct {
	Public  uint32 `json:"public"`  // xpub 版本字节
	Private uint32 `json:"private"` // xprv 版本字节
}

// NetworkParams 网络参数表
//
// 地址编解码所需的网络常量，由调用方按次注入，编解码器只读不写：
//   - Bech32:     隔离见证地址的人类可读前缀（如 "dgb"）
//   - PubKeyHash: P2PKH 地址版本字节
//   - ScriptHash: P2SH 地址版本字节
//
// 其余字段（MessagePrefix/BIP32/WIF）随网络表一并携带，供上层签名与密钥导出使用。
type NetworkParams struct {
	Name          string        `json:"name"`
	MessagePrefix string        `json:"message_prefix"`
	Bech32        string        `json:"bech32"`
	BIP32         BIP32Versions `json:"bip32"`
	PubKeyHash    byte          `json:"pub_key_hash"`
	ScriptHash    byte          `json:"script_hash"`
	WIF           byte          `json:"wif"`
}

// UserNetworkConfig 用户网络表配置
// 只包含JSON配置文件中实际出现的字段
type UserNetworkConfig struct {
	Default  *string             `json:"default,omitempty"`  // 默认网络名称
	Networks []UserNetworkParams `json:"networks,omitempty"` // 自定义网络
}

// UserNetworkParams 用户自定义网络参数
type UserNetworkParams struct {
	Name          string  `json:"name"`
	MessagePrefix *string `json:"message_prefix,omitempty"`
	Bech32        *string `json:"bech32,omitempty"`
	BIP32Public   *uint32 `json:"bip32_public,omitempty"`
	BIP32Private  *uint32 `json:"bip32_private,omitempty"`
	PubKeyHash    *byte   `json:"pub_key_hash,omitempty"`
	ScriptHash    *byte   `json:"script_hash,omitempty"`
	WIF           *byte   `json:"wif,omitempty"`
}

// DigiByteNetwork DigiByte 主网参数（地址编解码的默认网络）
func DigiByteNetwork() NetworkParams {
	return NetworkParams{
		Name:          "digibyte",
		MessagePrefix: "\x19DigiByte Signed Message:\n",
		Bech32:        "dgb",
		BIP32: BIP32Versions{
			Public:  0x049d7cb2,
			Private: 0x049d7878,
		},
		PubKeyHash: 0x1e,
		ScriptHash: 0x3f,
		WIF:        0x80,
	}
}
