// Package network 管理地址编解码使用的网络参数表
package network

import (
	"fmt"
	"sort"

	"github.com/weisyn/bitio/pkg/types"
)

// NetworkOptions 网络参数表配置选项
type NetworkOptions struct {
	Default  string                         `json:"default"`  // 默认网络名称
	Networks map[string]types.NetworkParams `json:"networks"` // 按名称索引的网络表
}

// Config 网络配置实现
type Config struct {
	options *NetworkOptions
}

// New 创建网络配置实现
//
// 参数：
//   - userConfig: *types.UserNetworkConfig，nil 表示只使用内置网络
func New(userConfig interface{}) *Config {
	options := createDefaultNetworkOptions()

	if cfg, ok := userConfig.(*types.UserNetworkConfig); ok && cfg != nil {
		applyUserNetworkConfig(options, cfg)
	}

	return &Config{options: options}
}

// createDefaultNetworkOptions 创建默认网络配置
func createDefaultNetworkOptions() *NetworkOptions {
	return &NetworkOptions{
		Default:  defaultNetworkName,
		Networks: builtinNetworks(),
	}
}

// applyUserNetworkConfig 合并用户网络
// 与内置网络同名时只覆盖出现的字段
func applyUserNetworkConfig(options *NetworkOptions, cfg *types.UserNetworkConfig) {
	for _, user := range cfg.Networks {
		if user.Name == "" {
			continue
		}
		params, ok := options.Networks[user.Name]
		if !ok {
			params = types.NetworkParams{Name: user.Name}
		}
		if user.MessagePrefix != nil {
			params.MessagePrefix = *user.MessagePrefix
		}
		if user.Bech32 != nil {
			params.Bech32 = *user.Bech32
		}
		if user.BIP32Public != nil {
			params.BIP32.Public = *user.BIP32Public
		}
		if user.BIP32Private != nil {
			params.BIP32.Private = *user.BIP32Private
		}
		if user.PubKeyHash != nil {
			params.PubKeyHash = *user.PubKeyHash
		}
		if user.ScriptHash != nil {
			params.ScriptHash = *user.ScriptHash
		}
		if user.WIF != nil {
			params.WIF = *user.WIF
		}
		options.Networks[user.Name] = params
	}

	if cfg.Default != nil && *cfg.Default != "" {
		options.Default = *cfg.Default
	}
}

// GetOptions 获取网络配置选项
func (c *Config) GetOptions() *NetworkOptions {
	return c.options
}

// Lookup 按名称查找网络参数
func (o *NetworkOptions) Lookup(name string) (types.NetworkParams, error) {
	params, ok := o.Networks[name]
	if !ok {
		return types.NetworkParams{}, fmt.Errorf("未知网络: %q", name)
	}
	return params, nil
}

// DefaultNetwork 返回默认网络参数
func (o *NetworkOptions) DefaultNetwork() (types.NetworkParams, error) {
	return o.Lookup(o.Default)
}

// Names 返回已注册的网络名称（按字典序）
func (o *NetworkOptions) Names() []string {
	names := make([]string, 0, len(o.Networks))
	for name := range o.Networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
