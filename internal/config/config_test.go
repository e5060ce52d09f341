package config_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/pnmscale/internal/config"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), `none.yaml`))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestSaveLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), `sub`, `config.yaml`)
	cfg := config.Default()
	cfg.Kernel = `bilinear`
	cfg.Workers = 3
	cfg.CompareResizers = []string{`xdraw-bilinear`}
	require.NoError(t, cfg.Save(p))

	back, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestLoadJSONAndValidate(t *testing.T) {
	p := filepath.Join(t.TempDir(), `config.json`)
	require.NoError(t, os.WriteFile(p, []byte(`{"kernel": "nearest", "cubic_a": 4, "workers": -2, "preview_mode": "braille"}`), 0o600))
	cfg, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, `nearest`, cfg.Kernel)
	assert.Equal(t, config.Default().CubicA, cfg.CubicA)
	assert.Equal(t, config.Default().Workers, cfg.Workers)
	assert.Equal(t, `ansi`, cfg.PreviewMode)
}

func TestValidateResetsNaN(t *testing.T) {
	cfg := config.Default()
	cfg.CubicA = math.NaN()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.Default().CubicA, cfg.CubicA)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, `bad.yaml`)
	require.NoError(t, os.WriteFile(bad, []byte("kernel: [unclosed"), 0o600))
	_, err := config.Load(bad)
	assert.Error(t, err)

	unknown := filepath.Join(dir, `unknown.yaml`)
	require.NoError(t, os.WriteFile(unknown, []byte("kernel: lanczos\n"), 0o600))
	_, err = config.Load(unknown)
	assert.Error(t, err)
}
