// SPDX-License-Identifier: MIT

package states

import (
	"math"
	"slices"
	"sync"

	"github.com/katalvlaran/lvlight/converters"
	"github.com/katalvlaran/lvlight/jones"
	"github.com/katalvlaran/lvlight/mueller"
)

// Element names.
const (
	FreeSpace             = "free_space"
	HorizontalPolarizer   = "horizontal_polarizer"
	VerticalPolarizer     = "vertical_polarizer"
	DiagonalPolarizer     = "diagonal_polarizer"
	AntidiagonalPolarizer = "antidiagonal_polarizer"
	QuarterWaveHorizontal = "quarter_wave_horizontal"
	QuarterWaveVertical   = "quarter_wave_vertical"
	QuarterWaveDiagonal   = "quarter_wave_diagonal"
	HalfWaveHorizontal    = "half_wave_horizontal"
	HalfWaveDiagonal      = "half_wave_diagonal"
)

type elementTable struct {
	jones   map[string]jones.Matrix
	mueller map[string]mueller.Matrix
}

var elementCatalog = sync.OnceValue(func() elementTable {
	j := map[string]jones.Matrix{
		FreeSpace:             jones.Identity(),
		HorizontalPolarizer:   jones.LinearPolarizer(0),
		VerticalPolarizer:     jones.LinearPolarizer(math.Pi / 2),
		DiagonalPolarizer:     jones.LinearPolarizer(math.Pi / 4),
		AntidiagonalPolarizer: jones.LinearPolarizer(-math.Pi / 4),
		QuarterWaveHorizontal: jones.QuarterWavePlate(0),
		QuarterWaveVertical:   jones.QuarterWavePlate(math.Pi / 2),
		QuarterWaveDiagonal:   jones.QuarterWavePlate(math.Pi / 4),
		HalfWaveHorizontal:    jones.HalfWavePlate(0),
		HalfWaveDiagonal:      jones.HalfWavePlate(math.Pi / 4),
	}
	m := make(map[string]mueller.Matrix, len(j))
	for name, e := range j {
		m[name] = converters.MuellerFromJones(e)
	}

	return elementTable{jones: j, mueller: m}
})

// ElementNames returns the catalog's element names in sorted order.
func ElementNames() []string {
	names := make([]string, 0, len(elementCatalog().jones))
	for n := range elementCatalog().jones {
		names = append(names, n)
	}
	slices.Sort(names)

	return names
}

// JonesElement returns the named element as a Jones matrix.
func JonesElement(name string) (jones.Matrix, error) {
	return lookup(elementCatalog().jones, name, ErrUnknownElement)
}

// MuellerElement returns the named element as a Mueller matrix.
func MuellerElement(name string) (mueller.Matrix, error) {
	return lookup(elementCatalog().mueller, name, ErrUnknownElement)
}
