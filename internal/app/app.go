// Package app 装配位流编解码库的运行环境
//
// 按配置组装日志、指标、密码学服务和网络参数表，对外提供共享这些组件的序列工厂。
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	config "github.com/weisyn/bitio/internal/config"
	"github.com/weisyn/bitio/pkg/bitio"
	logInterface "github.com/weisyn/bitio/pkg/interfaces/infrastructure/log"
	"github.com/weisyn/bitio/pkg/types"
)

// 环境变量中的配置文件路径
const configPathEnv = "BITIO_CONFIG_PATH"

// 启动与停止的默认超时
const defaultTimeout = 15 * time.Second

// App 运行中的编解码环境
type App struct {
	bootstrap *Bootstrap
}

// Start 加载配置、装配模块并启动应用
func Start(appOptions ...Option) (*App, error) {
	opts := newOptions(appOptions...)

	if err := resolveAppConfig(opts); err != nil {
		return nil, err
	}

	bootstrap := NewBootstrap(opts)
	if err := bootstrap.CreateFxApp(); err != nil {
		return nil, fmt.Errorf("创建应用失败: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	if err := bootstrap.StartApp(ctx); err != nil {
		return nil, err
	}

	return &App{bootstrap: bootstrap}, nil
}

// Stop 停止应用
func (a *App) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return a.bootstrap.StopApp(ctx)
}

// Factory 返回共享协作组件的序列工厂
func (a *App) Factory() *bitio.Factory {
	return a.bootstrap.factory
}

// Logger 返回应用日志记录器
func (a *App) Logger() logInterface.Logger {
	return a.bootstrap.logger
}

// Network 按名称查找网络参数，空名称返回默认网络
func (a *App) Network(name string) (*types.NetworkParams, error) {
	networks := a.bootstrap.networks
	if name == "" {
		name = networks.Default
	}
	params, err := networks.Lookup(name)
	if err != nil {
		return nil, err
	}
	return &params, nil
}

// resolveAppConfig 合并配置文件与显式选项
// 优先级：嵌入配置 > 配置文件 > 环境变量指定的文件；显式 With* 选项覆盖文件中的同名段
func resolveAppConfig(opts *options) error {
	var (
		fileConfig *types.AppConfig
		err        error
	)

	switch {
	case len(opts.embeddedConfig) > 0:
		fileConfig, err = config.ParseAppConfig(opts.embeddedConfig)
	case opts.configFilePath != "":
		fileConfig, err = config.LoadAppConfig(opts.configFilePath)
	case os.Getenv(configPathEnv) != "":
		fileConfig, err = config.LoadAppConfig(os.Getenv(configPathEnv))
	default:
		return nil
	}
	if err != nil {
		return err
	}

	explicit := opts.appConfig
	if explicit.AppName != nil {
		fileConfig.AppName = explicit.AppName
	}
	if explicit.Log != nil {
		fileConfig.Log = explicit.Log
	}
	if explicit.Network != nil {
		fileConfig.Network = explicit.Network
	}
	if explicit.Metrics != nil {
		fileConfig.Metrics = explicit.Metrics
	}
	opts.appConfig = fileConfig
	return nil
}
