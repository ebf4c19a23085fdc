// Package crypto 定义编解码库依赖的外部密码学组件接口
//
// 🔐 **外部协作组件 (External Collaborators)**
//
// 位流编解码器不实现以下算法的内部细节，只调用这里定义的编码/解码/封装/打开操作：
// - ChecksumCodec：带校验和的 Base58 地址编码（Base58Check）
// - Bech32Codec：隔离见证地址使用的 Bech32 编码
// - BoxCipher：带认证的公钥加密原语（box：临时密钥 + nonce）
//
// 🔗 **组件关系**
// - 地址编解码器：依赖 ChecksumCodec 与 Bech32Codec
// - 加密信封：依赖 BoxCipher
package crypto

// ChecksumCodec Base58Check 编解码接口
type ChecksumCodec interface {
	// CheckEncode 编码 版本字节 + 载荷 + 4字节校验和
	// 参数：
	//   - payload: 载荷（不含版本字节）
	//   - version: 版本字节
	// 返回：Base58 字符串
	CheckEncode(payload []byte, version byte) string

	// CheckDecode 解码并校验 Base58Check 字符串
	// 返回：载荷（不含版本字节）、版本字节、错误（格式或校验和错误）
	CheckDecode(address string) (payload []byte, version byte, err error)
}

// Bech32Codec Bech32 编解码接口
//
// words 为 5 位一组的数据（每个字节取值 0-31）。
type Bech32Codec interface {
	// Encode 使用人类可读前缀和 5 位数据组生成 Bech32 字符串
	Encode(hrp string, words []byte) (string, error)

	// Decode 解码 Bech32 字符串，返回人类可读前缀和 5 位数据组
	Decode(address string) (hrp string, words []byte, err error)

	// ToWords 8 位字节转换为 5 位数据组（末尾补零）
	ToWords(data []byte) ([]byte, error)

	// FromWords 5 位数据组转换回 8 位字节（拒绝非零填充）
	FromWords(words []byte) ([]byte, error)
}
