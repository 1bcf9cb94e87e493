// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/lvlight/states"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return newLogger(io.Discard, true)
}

func ptr[T any](v T) *T { return &v }

func TestRun_Default(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, Default(), quietLogger()))

	s := out.String()
	assert.Contains(t, s, "polarizer 0°")
	assert.Contains(t, s, "quarter_wave 45°")
	assert.Contains(t, s, "left-handed")
	assert.Contains(t, s, "system mueller matrix:")
	assert.Contains(t, s, "calculi agree (eps=1e-09): true")
}

func TestRun_EveryKindAgrees(t *testing.T) {
	for _, in := range []InputConfig{
		{State: states.CircularRight},
		{Jones: &JonesInput{Ex: []float64{0.6, 0}, Ey: []float64{0, 0.8}}},
		{Stokes: []float64{1, 0.6, 0, 0.8}},
		{Ellipse: &EllipseInput{E0x: 0.445, E0y: 0.89, PhaseDeg: 90}},
	} {
		cfg := &Config{
			Input: in,
			Elements: []ElementConfig{
				{Kind: kindRotator, AngleDeg: 30},
				{Kind: kindRetarder, AngleDeg: 20, RetardanceDeg: 60},
				{Kind: kindHalfWave, AngleDeg: 22.5},
				{Kind: kindElement, AngleDeg: 10, RetardanceDeg: 15, Transparency: ptr(0.5)},
				{Kind: kindCatalog, Name: states.QuarterWaveDiagonal},
				{Kind: kindPolarizer, AngleDeg: 75},
			},
			Output: OutputConfig{Degrees: false},
		}
		var out bytes.Buffer
		require.NoError(t, run(&out, cfg, quietLogger()))
		assert.Contains(t, out.String(), "calculi agree (eps=1e-09): true", "input %+v", in)
		assert.Contains(t, out.String(), "azimuth[rad]")
	}
}

func TestRun_NoElements(t *testing.T) {
	var out bytes.Buffer
	cfg := &Config{Input: InputConfig{State: states.LinearVertical}, Output: defaultOutput()}
	require.NoError(t, run(&out, cfg, quietLogger()))
	assert.NotContains(t, out.String(), "system jones matrix")
	assert.Contains(t, out.String(), "true")
}

func TestRun_Errors(t *testing.T) {
	for _, tc := range []struct {
		name string
		cfg  Config
		want error
	}{
		{"no input", Config{}, errNoInput},
		{"two inputs", Config{Input: InputConfig{State: "linear_vertical", Stokes: []float64{1, 1, 0, 0}}}, errAmbiguousInput},
		{"unknown state", Config{Input: InputConfig{State: "sideways"}}, states.ErrUnknownState},
		{"short stokes", Config{Input: InputConfig{Stokes: []float64{1, 1}}}, errBadComponents},
		{"short jones", Config{Input: InputConfig{Jones: &JonesInput{Ex: []float64{1}, Ey: []float64{0, 0}}}}, errBadComponents},
		{"unknown kind", Config{
			Input:    InputConfig{State: states.LinearHorizontal},
			Elements: []ElementConfig{{Kind: kindPolarizer}, {Kind: "mirror"}},
		}, errUnknownKind},
		{"negative transparency", Config{
			Input:    InputConfig{State: states.LinearHorizontal},
			Elements: []ElementConfig{{Kind: kindElement, Transparency: ptr(-1.0)}},
		}, errBadTransparency},
		{"nan transparency", Config{
			Input:    InputConfig{State: states.LinearHorizontal},
			Elements: []ElementConfig{{Kind: kindElement, Transparency: ptr(math.NaN())}},
		}, errBadTransparency},
		{"nan retardance", Config{
			Input:    InputConfig{State: states.LinearHorizontal},
			Elements: []ElementConfig{{Kind: kindRetarder, RetardanceDeg: math.NaN()}},
		}, errBadAngle},
		{"nan retardance on element", Config{
			Input:    InputConfig{State: states.LinearHorizontal},
			Elements: []ElementConfig{{Kind: kindElement, RetardanceDeg: math.NaN(), Transparency: ptr(1.0)}},
		}, errBadAngle},
		{"infinite angle", Config{
			Input:    InputConfig{State: states.LinearHorizontal},
			Elements: []ElementConfig{{Kind: kindPolarizer, AngleDeg: math.Inf(1)}},
		}, errBadAngle},
		{"nan epsilon", Config{
			Input:  InputConfig{State: states.LinearHorizontal},
			Output: OutputConfig{Epsilon: math.NaN()},
		}, errBadEpsilon},
		{"negative epsilon", Config{
			Input:  InputConfig{State: states.LinearHorizontal},
			Output: OutputConfig{Epsilon: -1e-9},
		}, errBadEpsilon},
		{"nan stokes", Config{Input: InputConfig{Stokes: []float64{1, math.NaN(), 0, 0}}}, errNonFinite},
		{"infinite jones", Config{Input: InputConfig{Jones: &JonesInput{Ex: []float64{math.Inf(-1), 0}, Ey: []float64{0, 0}}}}, errNonFinite},
		{"nan ellipse phase", Config{Input: InputConfig{Ellipse: &EllipseInput{E0x: 1, PhaseDeg: math.NaN()}}}, errNonFinite},
		{"catalog without name", Config{
			Input:    InputConfig{State: states.LinearHorizontal},
			Elements: []ElementConfig{{Kind: kindCatalog}},
		}, errMissingCatalogID},
		{"unknown catalog element", Config{
			Input:    InputConfig{State: states.LinearHorizontal},
			Elements: []ElementConfig{{Kind: kindCatalog, Name: "mirror"}},
		}, states.ErrUnknownElement},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(&out, &tc.cfg, quietLogger())
			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, out.String(), "nothing printed on error")
		})
	}
}

func TestBuildTrain_ReportsIndex(t *testing.T) {
	_, err := buildTrain([]ElementConfig{{Kind: kindRotator}, {Kind: kindRotator}, {Kind: "prism"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "element 2")
	assert.Contains(t, err.Error(), `"prism"`)
}

func TestRun_NonFiniteYAMLIsAnError(t *testing.T) {
	for _, doc := range []string{
		"input: {state: linear_horizontal}\nelements:\n  - {kind: retarder, angle_deg: 10, retardance_deg: .nan}\n",
		"input: {state: linear_horizontal}\nelements:\n  - {kind: rotator, angle_deg: .inf}\n",
		"input: {state: linear_horizontal}\noutput: {epsilon: .nan}\n",
	} {
		cfg, err := Parse([]byte(doc))
		require.NoError(t, err)

		var out bytes.Buffer
		assert.NotPanics(t, func() { err = run(&out, cfg, quietLogger()) }, doc)
		assert.Error(t, err, doc)
	}
}
