package simulation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schemaPath = "../../configs/config.schema.json"

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_ShippedFiles(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		cfg, err := LoadConfig("../../configs/config.json", schemaPath)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("toml", func(t *testing.T) {
		cfg, err := LoadConfig("../../configs/config.toml", schemaPath)
		require.NoError(t, err)
		assert.Equal(t, 1280.0, cfg.WorldWidth)
		assert.Equal(t, 720.0, cfg.WorldHeight)
		assert.Equal(t, 1500, cfg.Population)
		assert.False(t, cfg.Limit().IsSet())
		require.NotNil(t, cfg.Seed)
		assert.Equal(t, uint64(2024), *cfg.Seed)
		assert.False(t, cfg.ShowUI)
		assert.Equal(t, 0, cfg.Workers, "missing keys keep their default")
	})
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "partial.json", `{"population": 42, "visionRadius": 60}`)
	cfg, err := LoadConfig(path, schemaPath)
	require.NoError(t, err)

	want := DefaultConfig()
	want.Population = 42
	want.VisionRadius = 60
	assert.Equal(t, want, cfg)
}

func TestLoadConfig_VelocityLimit(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    flock.Limit
	}{
		{"json null", "c.json", `{"velocityLimit": null}`, flock.NoLimit()},
		{"json minus one", "c.json", `{"velocityLimit": -1}`, flock.NoLimit()},
		{"json value", "c.json", `{"velocityLimit": 4.5}`, flock.LimitOf(4.5)},
		{"json zero", "c.json", `{"velocityLimit": 0}`, flock.LimitOf(0)},
		{"toml minus one", "c.toml", "velocityLimit = -1\n", flock.NoLimit()},
		{"toml integer", "c.toml", "velocityLimit = 7\n", flock.LimitOf(7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, tt.file, tt.content), schemaPath)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Limit())
		})
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"negative population", "c.json", `{"population": -5}`},
		{"fractional population", "c.json", `{"population": 2.5}`},
		{"negative limit", "c.json", `{"velocityLimit": -3}`},
		{"unknown key", "c.json", `{"numRedAtStart": 5}`},
		{"zero width", "c.json", `{"worldWidth": 0}`},
		{"wrong type", "c.json", `{"showUI": "yes"}`},
		{"toml wrong type", "c.toml", `population = "many"`},
		{"broken json", "c.json", `{"population": `},
		{"broken toml", "c.toml", `population = = 3`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, tt.file, tt.content), schemaPath)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoadConfig_MissingFiles(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"), schemaPath)
	assert.ErrorContains(t, err, "failed to open config file")

	_, err = LoadConfig("../../configs/config.json", filepath.Join(t.TempDir(), "nope.schema.json"))
	assert.ErrorContains(t, err, "failed to compile schema")
}

func TestConfig_Params(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, flock.DefaultParams(), cfg.Params())

	cfg.SetLimit(flock.NoLimit())
	assert.Nil(t, cfg.VelocityLimit)
	assert.False(t, cfg.Params().VelocityLimit.IsSet())

	cfg.SetLimit(flock.LimitOf(3))
	require.NotNil(t, cfg.VelocityLimit)
	assert.Equal(t, 3.0, *cfg.VelocityLimit)
}

func TestLimitFromFlag(t *testing.T) {
	tests := []struct {
		in   float64
		want flock.Limit
	}{
		{-1, flock.NoLimit()},
		{10, flock.LimitOf(10)},
		{-10, flock.LimitOf(10)},
		{0, flock.LimitOf(0)},
		{-0.5, flock.LimitOf(0.5)},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, LimitFromFlag(tt.in), "LimitFromFlag(%v)", tt.in)
	}
}
