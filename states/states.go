// SPDX-License-Identifier: MIT

package states

import (
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/katalvlaran/lvlight/coherency"
	"github.com/katalvlaran/lvlight/ellipse"
	"github.com/katalvlaran/lvlight/jones"
	"github.com/katalvlaran/lvlight/stokes"
)

// State names.
const (
	LinearHorizontal   = "linear_horizontal"
	LinearVertical     = "linear_vertical"
	LinearDiagonal     = "linear_diagonal"
	LinearAntidiagonal = "linear_antidiagonal"
	CircularRight      = "circular_right"
	CircularLeft       = "circular_left"
)

const r2 = math.Sqrt2 / 2

type stateTable struct {
	ellipses  map[string]ellipse.Ellipse
	jones     map[string]jones.Vector
	stokes    map[string]stokes.Vector
	coherency map[string]coherency.Matrix
}

var stateCatalog = sync.OnceValue(func() stateTable {
	return stateTable{
		ellipses: map[string]ellipse.Ellipse{
			LinearHorizontal:   ellipse.New(1, 0, 0),
			LinearVertical:     ellipse.New(0, 1, 0),
			LinearDiagonal:     ellipse.New(r2, r2, 0),
			LinearAntidiagonal: ellipse.New(r2, r2, math.Pi),
			CircularRight:      ellipse.New(r2, r2, math.Pi/2),
			CircularLeft:       ellipse.New(r2, r2, -math.Pi/2),
		},
		jones: map[string]jones.Vector{
			LinearHorizontal:   jones.NewVector(1, 0),
			LinearVertical:     jones.NewVector(0, 1),
			LinearDiagonal:     jones.NewVector(r2, r2),
			LinearAntidiagonal: jones.NewVector(r2, -r2),
			CircularRight:      jones.NewVector(r2, r2*1i),
			CircularLeft:       jones.NewVector(r2, -r2*1i),
		},
		stokes: map[string]stokes.Vector{
			LinearHorizontal:   stokes.NewVector(1, 1, 0, 0),
			LinearVertical:     stokes.NewVector(1, -1, 0, 0),
			LinearDiagonal:     stokes.NewVector(1, 0, 1, 0),
			LinearAntidiagonal: stokes.NewVector(1, 0, -1, 0),
			CircularRight:      stokes.NewVector(1, 0, 0, 1),
			CircularLeft:       stokes.NewVector(1, 0, 0, -1),
		},
		coherency: map[string]coherency.Matrix{
			LinearHorizontal:   coherency.New(1, 0, 0, 0),
			LinearVertical:     coherency.New(0, 0, 0, 1),
			LinearDiagonal:     coherency.New(0.5, 0.5, 0.5, 0.5),
			LinearAntidiagonal: coherency.New(0.5, -0.5, -0.5, 0.5),
			CircularRight:      coherency.New(0.5, 0.5i, -0.5i, 0.5),
			CircularLeft:       coherency.New(0.5, -0.5i, 0.5i, 0.5),
		},
	}
})

// StateNames returns the catalog's state names in sorted order.
func StateNames() []string {
	names := make([]string, 0, len(stateCatalog().jones))
	for n := range stateCatalog().jones {
		names = append(names, n)
	}
	slices.Sort(names)

	return names
}

func lookup[T any](table map[string]T, name string, notFound error) (T, error) {
	v, ok := table[name]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %q", notFound, name)
	}

	return v, nil
}

// Ellipse returns the named state as a polarization ellipse.
func Ellipse(name string) (ellipse.Ellipse, error) {
	return lookup(stateCatalog().ellipses, name, ErrUnknownState)
}

// Jones returns the named state as a Jones vector.
func Jones(name string) (jones.Vector, error) {
	return lookup(stateCatalog().jones, name, ErrUnknownState)
}

// Stokes returns the named state as a Stokes vector.
func Stokes(name string) (stokes.Vector, error) {
	return lookup(stateCatalog().stokes, name, ErrUnknownState)
}

// Coherency returns the named state as a coherency matrix.
func Coherency(name string) (coherency.Matrix, error) {
	return lookup(stateCatalog().coherency, name, ErrUnknownState)
}
