package app

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/weisyn/bitio/internal/app/version"
	config "github.com/weisyn/bitio/internal/config"
	"github.com/weisyn/bitio/internal/config/network"
	"github.com/weisyn/bitio/internal/core/infrastructure/crypto"
	log "github.com/weisyn/bitio/internal/core/infrastructure/log"
	"github.com/weisyn/bitio/internal/core/infrastructure/metrics"
	"github.com/weisyn/bitio/pkg/bitio"
	configintf "github.com/weisyn/bitio/pkg/interfaces/config"
	cryptointf "github.com/weisyn/bitio/pkg/interfaces/infrastructure/crypto"
	logInterface "github.com/weisyn/bitio/pkg/interfaces/infrastructure/log"
)

// Bootstrap 应用引导程序
type Bootstrap struct {
	opts  *options
	fxApp *fx.App

	// 由fx填充的组件
	factory  *bitio.Factory
	networks *network.NetworkOptions
	logger   logInterface.Logger
}

// NewBootstrap 创建引导程序
func NewBootstrap(opts *options) *Bootstrap {
	return &Bootstrap{
		opts: opts,
	}
}

// SetupInfrastructureLayer 设置基础设施层模块
func (b *Bootstrap) SetupInfrastructureLayer() []fx.Option {
	return []fx.Option{
		fx.Provide(func() configintf.AppOptions { return b.opts }),
		fx.Provide(func() prometheus.Registerer { return b.opts.registerer }),

		config.Module(),  // 1. 配置(不依赖其他)
		log.Module(),     // 2. 日志(依赖配置)
		crypto.Module(),  // 3. 密码学(依赖日志)
		metrics.Module(), // 4. 指标(依赖配置和日志)
	}
}

// SetupCodecLayer 设置编解码层模块
func (b *Bootstrap) SetupCodecLayer() []fx.Option {
	return []fx.Option{
		fx.Provide(ProvideFactory),
		fx.Invoke(func(lifecycle fx.Lifecycle, logger logInterface.Logger) {
			lifecycle.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					logger.Infof("%s 已就绪", version.GetBuildInfo())
					return nil
				},
				OnStop: func(ctx context.Context) error {
					// 忽略 stderr 等不支持同步的输出返回的错误
					_ = logger.Sync()
					return nil
				},
			})
		}),
	}
}

// SetupModules 设置所有应用模块
func (b *Bootstrap) SetupModules() []fx.Option {
	var allModules []fx.Option

	// 按照依赖顺序添加各层模块
	allModules = append(allModules, b.SetupInfrastructureLayer()...)
	allModules = append(allModules, b.SetupCodecLayer()...)

	return allModules
}

// CreateFxApp 创建并配置fx应用
func (b *Bootstrap) CreateFxApp() error {
	b.fxApp = fx.New(
		// 加载所有模块
		fx.Options(b.SetupModules()...),
		fx.Populate(&b.factory, &b.networks, &b.logger),

		// 禁用fx内部日志
		fx.NopLogger,
	)
	if err := b.fxApp.Err(); err != nil {
		return fmt.Errorf("装配依赖失败: %w", err)
	}
	return nil
}

// StartApp 启动应用程序
func (b *Bootstrap) StartApp(ctx context.Context) error {
	if err := b.fxApp.Start(ctx); err != nil {
		return fmt.Errorf("启动应用失败: %w", err)
	}
	return nil
}

// StopApp 停止应用程序
func (b *Bootstrap) StopApp(ctx context.Context) error {
	if err := b.fxApp.Stop(ctx); err != nil {
		return fmt.Errorf("停止应用失败: %w", err)
	}
	return nil
}

// Module 返回可嵌入其他 fx 应用的编解码模块
// 只解析显式选项，不读取配置文件
func Module(appOptions ...Option) fx.Option {
	bootstrap := NewBootstrap(newOptions(appOptions...))
	return fx.Module("bitio", bootstrap.SetupModules()...)
}

// FactoryParams 定义序列工厂的依赖参数
type FactoryParams struct {
	fx.In

	Logger        logInterface.Logger      `optional:"true"`
	Metrics       *metrics.CodecMetrics    `optional:"true"`
	ChecksumCodec cryptointf.ChecksumCodec `optional:"true"`
	Bech32Codec   cryptointf.Bech32Codec   `optional:"true"`
	BoxCipher     cryptointf.BoxCipher     `optional:"true"`
}

// ProvideFactory 使用注入的协作组件创建序列工厂
func ProvideFactory(params FactoryParams) *bitio.Factory {
	return bitio.NewFactory(
		bitio.WithLogger(log.NewModuleLogger(params.Logger, "bitio")),
		bitio.WithMetrics(params.Metrics),
		bitio.WithChecksumCodec(params.ChecksumCodec),
		bitio.WithBech32Codec(params.Bech32Codec),
		bitio.WithBoxCipher(params.BoxCipher),
	)
}
