// Package version provides version information for the codec library.
package version

import (
	"fmt"
	"runtime"
)

// 构建时注入的变量，通过ldflags设置
var (
	Version   = "v0.1.0"  // 语义化版本
	BuildTime = "unknown" // 构建时间戳（RFC3339格式）
)

// BuildInfo 构建信息
type BuildInfo struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetVersion 获取版本号
func GetVersion() string {
	return Version
}

// GetBuildInfo 获取完整构建信息
func GetBuildInfo() *BuildInfo {
	return &BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String 单行版本描述，用于启动日志
func (b *BuildInfo) String() string {
	return fmt.Sprintf("bitio %s (built %s, %s, %s)", b.Version, b.BuildTime, b.GoVersion, b.Platform)
}
