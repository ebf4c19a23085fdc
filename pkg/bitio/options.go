package bitio

import (
	"crypto/rand"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/weisyn/bitio/internal/core/infrastructure/crypto/address"
	"github.com/weisyn/bitio/internal/core/infrastructure/crypto/encryption"
	"github.com/weisyn/bitio/internal/core/infrastructure/metrics"
	cryptointf "github.com/weisyn/bitio/pkg/interfaces/infrastructure/crypto"
	log "github.com/weisyn/bitio/pkg/interfaces/infrastructure/log"
)

// settings 序列共享的外部协作组件
type settings struct {
	logger   log.Logger
	random   io.Reader
	checksum cryptointf.ChecksumCodec
	bech32   cryptointf.Bech32Codec
	box      cryptointf.BoxCipher
	metrics  *metrics.CodecMetrics
}

// Option 序列构造选项
type Option func(*settings)

// WithLogger 注入日志记录器
func WithLogger(logger log.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRandom 注入随机源（随机填充、临时密钥、nonce），默认 crypto/rand
func WithRandom(random io.Reader) Option {
	return func(s *settings) {
		if random != nil {
			s.random = random
		}
	}
}

// WithChecksumCodec 注入 Base58Check 编解码器
func WithChecksumCodec(codec cryptointf.ChecksumCodec) Option {
	return func(s *settings) {
		if codec != nil {
			s.checksum = codec
		}
	}
}

// WithBech32Codec 注入 Bech32 编解码器
func WithBech32Codec(codec cryptointf.Bech32Codec) Option {
	return func(s *settings) {
		if codec != nil {
			s.bech32 = codec
		}
	}
}

// WithBoxCipher 注入公钥认证加密原语
func WithBoxCipher(cipher cryptointf.BoxCipher) Option {
	return func(s *settings) {
		if cipher != nil {
			s.box = cipher
		}
	}
}

// WithMetrics 注入编解码指标
func WithMetrics(m *metrics.CodecMetrics) Option {
	return func(s *settings) {
		s.metrics = m
	}
}

func newSettings(opts []Option) *settings {
	s := &settings{
		logger:   noopLogger{},
		random:   rand.Reader,
		checksum: address.NewChecksumService(),
		bech32:   address.NewBech32Service(),
		box:      encryption.NewBoxService(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// InsertOption 插入选项
type InsertOption func(*insertOptions)

type insertOptions struct {
	movePointer bool
}

// KeepPointer 插入后游标保持在原位置
func KeepPointer() InsertOption {
	return func(o *insertOptions) {
		o.movePointer = false
	}
}

func resolveInsert(opts []InsertOption) insertOptions {
	o := insertOptions{movePointer: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Factory 以共享的协作组件批量创建序列
type Factory struct {
	settings *settings
}

// NewFactory 创建序列工厂
func NewFactory(opts ...Option) *Factory {
	return &Factory{settings: newSettings(opts)}
}

// New 创建空序列
func (f *Factory) New() *Sequence {
	return newSequence(f.settings)
}

// FromBytes 从字节数组构造序列
func (f *Factory) FromBytes(data []byte) *Sequence {
	s := f.New()
	s.appendRun(MakeBuffer(data))
	return s
}

// 编码格式名称，用于日志与指标
const (
	formatBits           = "bits"
	formatBuffer         = "buffer"
	formatInt            = "int"
	formatBigInt         = "bigint"
	formatVariableLength = "variable_length"
	formatAlpha          = "alpha"
	formatUTF8           = "utf8"
	formatHex            = "hex"
	format3B40           = "3b40"
	formatBestString     = "best_string"
	formatAddress        = "address"
	formatFixedPrecision = "fixed_precision"
	formatScript         = "script"
	formatEncrypted      = "encrypted"
)

// appendAs 追加编码结果并记录指标
func (s *Sequence) appendAs(format string, b Bits, err error) error {
	if err != nil {
		s.settings.metrics.ObserveEncodeFailure(format)
		return err
	}
	s.appendRun(b)
	s.settings.metrics.ObserveEncode(format, b.Len())
	return nil
}

// insertAs 插入编码结果并记录指标
func (s *Sequence) insertAs(format string, b Bits, err error, opts []InsertOption) error {
	if err != nil {
		s.settings.metrics.ObserveEncodeFailure(format)
		return err
	}
	s.insertRun(b, resolveInsert(opts).movePointer)
	s.settings.metrics.ObserveEncode(format, b.Len())
	return nil
}

// readAs 执行组合读取；失败时游标恢复到读取前的位置
func readAs[T any](s *Sequence, format string, read func() (T, error)) (T, error) {
	start := s.pointer
	v, err := read()
	if err != nil {
		s.pointer = start
		s.settings.metrics.ObserveDecodeFailure(format)
		s.settings.logger.Debugf("%s 解码失败，游标回退到 %d: %v", format, start, err)
		var zero T
		return zero, fmt.Errorf("decode %s: %w", format, err)
	}
	return v, nil
}

// noopLogger 是一个无操作的Logger实现，用于未注入Logger时的回退
type noopLogger struct{}

func (noopLogger) Debug(msg string)                          {}
func (noopLogger) Debugf(format string, args ...interface{}) {}
func (noopLogger) Info(msg string)                           {}
func (noopLogger) Infof(format string, args ...interface{})  {}
func (noopLogger) Warn(msg string)                           {}
func (noopLogger) Warnf(format string, args ...interface{})  {}
func (noopLogger) Error(msg string)                          {}
func (noopLogger) Errorf(format string, args ...interface{}) {}
func (l noopLogger) With(args ...interface{}) log.Logger     { return l }
func (noopLogger) Sync() error                               { return nil }
func (noopLogger) GetZapLogger() *zap.Logger                 { return nil }
