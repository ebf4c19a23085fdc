package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configpkg "github.com/weisyn/bitio/internal/config"
	"github.com/weisyn/bitio/pkg/types"
)

func TestProvideCodecMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := ProvideCodecMetrics(ModuleParams{
		Config: configpkg.NewProvider(&types.AppConfig{
			Metrics: &types.UserMetricsConfig{Namespace: types.StringPtr("codec")},
		}),
		Registerer: reg,
	})
	require.NoError(t, err)
	require.NotNil(t, m)

	m.ObserveEncode("hex", 8)
	count, err := testutil.GatherAndCount(reg, "codec_bitio_encoded_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestProvideCodecMetricsDisabled(t *testing.T) {
	m, err := ProvideCodecMetrics(ModuleParams{
		Config: configpkg.NewProvider(&types.AppConfig{
			Metrics: &types.UserMetricsConfig{Enabled: types.BoolPtr(false)},
		}),
	})
	require.NoError(t, err)
	assert.Nil(t, m)
	m.ObserveEncode("hex", 8)
}
