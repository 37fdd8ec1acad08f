package linalgbench

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, []int{10, 50, 100, 500, 1000, 5000, 10000}, cfg.Sizes)
	assert.Equal(t, 10, cfg.Runs)
	assert.Equal(t, Float64, cfg.Precision)
	assert.False(t, cfg.IncludeDeterminant)
	assert.False(t, cfg.IsolateCholeskyInput)
	assert.Equal(t, Gonum, cfg.Backend)
	assert.Equal(t, 1, cfg.MaxProcs)
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no sizes", func(c *Config) { c.Sizes = nil }},
		{"zero size", func(c *Config) { c.Sizes = []int{10, 0} }},
		{"negative size", func(c *Config) { c.Sizes = []int{-5} }},
		{"zero runs", func(c *Config) { c.Runs = 0 }},
		{"unknown precision", func(c *Config) { c.Precision = Precision(7) }},
		{"unknown backend", func(c *Config) { c.Backend = Backend(5) }},
		{"negative maxprocs", func(c *Config) { c.MaxProcs = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestPrecisionText(t *testing.T) {
	var p Precision
	require.NoError(t, p.UnmarshalText([]byte("single")))
	assert.Equal(t, Float32, p)
	require.NoError(t, p.UnmarshalText([]byte("float64")))
	assert.Equal(t, Float64, p)

	err := p.UnmarshalText([]byte("float16"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	text, err := Float32.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "float32", string(text))

	_, err = Precision(9).MarshalText()
	assert.ErrorIs(t, err, ErrInvalidConfig)

	assert.Equal(t, 8, Float64.ElementSize())
	assert.Equal(t, 4, Float32.ElementSize())
}

func TestBackendText(t *testing.T) {
	var b Backend
	require.NoError(t, b.UnmarshalText([]byte("lvlath")))
	assert.Equal(t, Lvlath, b)
	require.NoError(t, b.UnmarshalText([]byte("gonum")))
	assert.Equal(t, Gonum, b)

	err := b.UnmarshalText([]byte("faer"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	text, err := Lvlath.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "lvlath", string(text))

	_, err = Backend(3).MarshalText()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
