// Package bitio 提供按位粒度的二进制编解码器
//
// 📦 **位流编解码 (Bit-granularity Codec)**
//
// 把异构的领域值（标志位、整数、文本、地址、脚本原语、定点金额、加密载荷）
// 紧凑地打包进一段连续的位序列，字段之间不要求字节对齐，
// 用于在区块链交易中嵌入元数据时尽量减少编码体积。
//
// 🎯 **核心概念**
//   - Sequence：可变位序列 + 游标，所有编解码器都建立在它之上
//   - Bits：不可变位串，Make* 纯函数的输出
//   - Get*：从游标处读取并前移游标
//   - Insert*：在游标处插入，默认前移游标（KeepPointer 可保持不动）
//   - Append*：追加到末尾，从不移动游标
//
// 🧱 **编码格式**
//   - 原始位串、字节数组、定宽整数、任意精度整数
//   - 文本：Alpha（45字符）、修改版UTF8、十六进制、3B40（40字符，文件扩展名）
//   - 变长：X位分块，读到含1的分块为止
//   - 领域：地址（类型标记 + 160位哈希）、定点精度、比特币脚本原语、加密信封
//   - 最优文本选择器：在多个文本编码中选出最短的一个
//
// ⚠️ **错误语义**
// 所有校验都在修改之前完成，失败的调用不会改变序列；
// 组合读取（文本、地址、定点、脚本、加密信封）失败时游标恢复到读取前的位置。
// 错误均包装自 ErrRange、ErrInsufficientData、ErrInvalidInput、
// ErrLengthExceeded、ErrInvalidKey、ErrInvalidOpCode，使用 errors.Is 判断。
//
// 序列不是并发安全的，由调用方独占。
package bitio
