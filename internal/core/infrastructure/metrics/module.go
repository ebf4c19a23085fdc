// Package metrics 提供位流编解码的 prometheus 指标
//
// 本模块提供：
// - CodecMetrics: 按编码格式统计的编码/解码计数器
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/weisyn/bitio/pkg/interfaces/config"
	log "github.com/weisyn/bitio/pkg/interfaces/infrastructure/log"
)

// ModuleParams 定义指标模块的输入依赖
type ModuleParams struct {
	fx.In

	Config     config.Provider
	Logger     log.Logger           `optional:"true"`
	Registerer prometheus.Registerer `optional:"true"`
}

// Module 返回 metrics 模块的 fx.Option
//
// 依赖：
// - config.Provider: 配置提供者
// - prometheus.Registerer: 可选，未提供时注册到 prometheus.DefaultRegisterer
func Module() fx.Option {
	return fx.Module("metrics",
		fx.Provide(ProvideCodecMetrics),
	)
}

// ProvideCodecMetrics 根据配置创建编解码指标
// 指标被禁用时返回nil，CodecMetrics 的所有方法在 nil 上为空操作
func ProvideCodecMetrics(params ModuleParams) (*CodecMetrics, error) {
	options := params.Config.GetMetrics()
	if !options.Enabled {
		if params.Logger != nil {
			params.Logger.Info("编解码指标已禁用")
		}
		return nil, nil
	}

	reg := params.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	if params.Logger != nil {
		params.Logger.Infof("编解码指标已启用，命名空间: %s", options.Namespace)
	}
	return NewCodecMetrics(reg, options.Namespace)
}
