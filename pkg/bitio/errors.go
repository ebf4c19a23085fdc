package bitio

import "errors"

var (
	// ErrRange 游标移动或设置超出 [0, length]
	ErrRange = errors.New("pointer moved out of range")
	// ErrInsufficientData 剩余位数不足
	ErrInsufficientData = errors.New("not enough bits left")
	// ErrInvalidInput 输入不合法（非二进制位串、字符不在字母表内、地址格式错误等）
	ErrInvalidInput = errors.New("invalid input type")
	// ErrLengthExceeded 值超出定长字段或长度字段的容量
	ErrLengthExceeded = errors.New("max length exceeded")
	// ErrInvalidKey 认证解密失败
	ErrInvalidKey = errors.New("invalid key")
	// ErrInvalidOpCode 脚本操作码无效
	ErrInvalidOpCode = errors.New("invalid op code")
)
