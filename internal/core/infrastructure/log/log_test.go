package log

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	logconfig "github.com/weisyn/bitio/internal/config/log"
	"github.com/weisyn/bitio/pkg/types"
)

// TestFileLogger 测试写入日志文件，文件内容为逐行 JSON
func TestFileLogger(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "bitio.log")
	cfg := logconfig.New(&types.UserLogConfig{
		Level:    types.StringPtr("debug"),
		FilePath: types.StringPtr(logPath),
	})

	logger, err := New(cfg)
	require.NoError(t, err)

	logger.With("format", "hex").Infof("encoded %d bits", 24)
	logger.Debug("debug message")
	require.NoError(t, logger.Sync())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 2)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "encoded 24 bits", entry["message"])
	assert.Equal(t, "hex", entry["format"])
	assert.Equal(t, "info", entry["level"])
}

// TestLevelFilter 测试低于配置级别的日志被丢弃
func TestLevelFilter(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "bitio.log")
	cfg := logconfig.New(&types.UserLogConfig{
		Level:    types.StringPtr("warn"),
		FilePath: types.StringPtr(logPath),
	})

	logger, err := New(cfg)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warnf("kept %s", "warning")
	logger.Error("kept error")
	require.NoError(t, logger.Sync())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "dropped")
	assert.Contains(t, string(content), "kept warning")
	assert.Contains(t, string(content), "kept error")
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewFromZap(zap.New(core))

	logger.With("module", "bitio", "bits", 8, "dangling").Info("appended")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "bitio", fields["module"])
	assert.EqualValues(t, 8, fields["bits"])
	assert.NotContains(t, fields, "dangling")
}

func TestToZapFields(t *testing.T) {
	fields := toZapFields("a", 1, 2, "b")
	require.Len(t, fields, 2)
	assert.Equal(t, "a", fields[0].Key)
	assert.Equal(t, "2", fields[1].Key)

	assert.Empty(t, toZapFields())
	assert.Empty(t, toZapFields("only"))
}

// TestGlobalLogger 测试全局日志记录器替换与恢复
func TestGlobalLogger(t *testing.T) {
	previous := GetLogger()
	require.NotNil(t, previous)
	defer SetLogger(previous)

	core, logs := observer.New(zapcore.InfoLevel)
	SetLogger(NewFromZap(zap.New(core)))

	GetLogger().Infof("global %s", "info")
	GetLogger().Debugf("hidden")
	GetLogger().With("k", "v").Warn("scoped")

	assert.Equal(t, 2, logs.Len())
	assert.Equal(t, "global info", logs.All()[0].Message)
	assert.Equal(t, "v", logs.All()[1].ContextMap()["k"])

	// nil 不会覆盖已有记录器
	SetLogger(nil)
	assert.NotNil(t, GetLogger())
}

func TestNewModuleLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := NewFromZap(zap.New(core))

	NewModuleLogger(base, "codec").Info("ready")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "codec", logs.All()[0].ContextMap()["module"])

	assert.Nil(t, NewModuleLogger(nil, "codec"))
}

func TestNilZapLogger(t *testing.T) {
	logger := NewFromZap(nil)
	assert.NotNil(t, logger.GetZapLogger())
	logger.Error("no output")
}
