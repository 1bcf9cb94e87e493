// SPDX-License-Identifier: MIT
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "train.yaml")
	require.NoError(t, Default().Save(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/to/train.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("elements: {kind: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestParse_AllInputForms(t *testing.T) {
	cfg, err := Parse([]byte(`
input:
  jones: {ex: [0.6, 0], ey: [0, 0.8]}
elements:
  - {kind: element, angle_deg: 10, retardance_deg: 30, transparency: 0.5}
  - {kind: catalog, name: half_wave_diagonal}
`))
	require.NoError(t, err)
	require.NotNil(t, cfg.Input.Jones)
	assert.Equal(t, []float64{0, 0.8}, cfg.Input.Jones.Ey)
	require.Len(t, cfg.Elements, 2)
	require.NotNil(t, cfg.Elements[0].Transparency)
	assert.Equal(t, 0.5, *cfg.Elements[0].Transparency)
	assert.Equal(t, "half_wave_diagonal", cfg.Elements[1].Name)
	assert.Equal(t, defaultOutput(), cfg.Output, "output defaults kept")
	assert.Empty(t, cfg.Input.State, "input not overlaid on the sample")

	cfg, err = Parse([]byte(`
input:
  ellipse: {e0x: 0.445, e0y: 0.89, phase_deg: 90}
output: {degrees: false}
`))
	require.NoError(t, err)
	assert.Equal(t, &EllipseInput{E0x: 0.445, E0y: 0.89, PhaseDeg: 90}, cfg.Input.Ellipse)
	assert.False(t, cfg.Output.Degrees)
	assert.Equal(t, 1e-9, cfg.Output.Epsilon)
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestInitConfig_KeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "train.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: {state: circular_left}\n"), 0644))

	require.NoError(t, InitConfig(path))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "circular_left", cfg.Input.State)

	fresh := filepath.Join(t.TempDir(), "fresh.yaml")
	require.NoError(t, InitConfig(fresh))
	_, err = os.Stat(fresh)
	assert.NoError(t, err)
}
