package loadgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Requests:  1000,
		MeanBegin: 0,
		MeanEnd:   100000,
		Deviation: 4,
		Seed:      42,
	}

	a, err := Generate(cfg)
	require.NoError(t, err)
	b, err := Generate(cfg)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Len(t, a, cfg.Requests)

	cfg.Seed = 43
	c, err := Generate(cfg)
	require.NoError(t, err)
	require.NotEqual(t, a, c)
}

func TestGenerateStaysInRange(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Requests:  5000,
		MeanBegin: 100,
		MeanEnd:   200,
		Deviation: 50,
		Seed:      7,
	}

	keys, err := Generate(cfg)
	require.NoError(t, err)

	// The mean only walks 100 steps, so the stream is cut short.
	require.LessOrEqual(t, len(keys), 100)
	require.NotEmpty(t, keys)
	for _, k := range keys {
		require.GreaterOrEqual(t, k, cfg.MeanBegin)
		require.LessOrEqual(t, k, cfg.MeanEnd)
	}
}

func TestGenerateZeroDeviationFollowsMean(t *testing.T) {
	t.Parallel()

	keys, err := Generate(Config{Requests: 5, MeanBegin: 10, MeanEnd: 20})
	require.NoError(t, err)
	require.Equal(t, []int{10, 11, 12, 13, 14}, keys)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
	}{
		{"no requests", Config{Requests: 0, MeanEnd: 10}},
		{"empty range", Config{Requests: 1, MeanBegin: 5, MeanEnd: 5}},
		{"negative deviation", Config{Requests: 1, MeanEnd: 10, Deviation: -1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Generate(tc.cfg)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
