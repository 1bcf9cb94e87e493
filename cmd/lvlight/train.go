// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/lvlight/converters"
	"github.com/katalvlaran/lvlight/ellipse"
	"github.com/katalvlaran/lvlight/jones"
	"github.com/katalvlaran/lvlight/mueller"
	"github.com/katalvlaran/lvlight/states"
	"github.com/katalvlaran/lvlight/stokes"
)

// Element kinds accepted in ElementConfig.Kind.
const (
	kindPolarizer   = "polarizer"
	kindRetarder    = "retarder"
	kindQuarterWave = "quarter_wave"
	kindHalfWave    = "half_wave"
	kindRotator     = "rotator"
	kindElement     = "element"
	kindCatalog     = "catalog"
)

var (
	errNoInput          = errors.New("lvlight: no input state given")
	errAmbiguousInput   = errors.New("lvlight: more than one input state given")
	errBadComponents    = errors.New("lvlight: wrong number of components")
	errUnknownKind      = errors.New("lvlight: unknown element kind")
	errBadTransparency  = errors.New("lvlight: transparency must be finite and non-negative")
	errBadAngle         = errors.New("lvlight: angle_deg and retardance_deg must be finite")
	errNonFinite        = errors.New("lvlight: input components must be finite")
	errBadEpsilon       = errors.New("lvlight: output epsilon must be finite and non-negative")
	errMissingCatalogID = errors.New("lvlight: catalog element needs a name")
)

// stage is one element of the train in both calculi.
type stage struct {
	label   string
	jones   jones.Matrix
	mueller mueller.Matrix
}

// resolveInput returns the entering state as a Jones vector and as a
// Stokes vector. A partially polarized Stokes input keeps its unpolarized
// part on the Stokes side only.
func resolveInput(in InputConfig) (jones.Vector, stokes.Vector, error) {
	set := 0
	for _, ok := range []bool{in.State != "", in.Jones != nil, in.Stokes != nil, in.Ellipse != nil} {
		if ok {
			set++
		}
	}
	switch {
	case set == 0:
		return jones.Vector{}, stokes.Vector{}, errNoInput
	case set > 1:
		return jones.Vector{}, stokes.Vector{}, errAmbiguousInput
	}

	switch {
	case in.State != "":
		j, err := states.Jones(in.State)
		if err != nil {
			return jones.Vector{}, stokes.Vector{}, fmt.Errorf("input: %w", err)
		}
		s, err := states.Stokes(in.State)
		if err != nil {
			return jones.Vector{}, stokes.Vector{}, fmt.Errorf("input: %w", err)
		}
		return j, s, nil

	case in.Jones != nil:
		if len(in.Jones.Ex) != 2 || len(in.Jones.Ey) != 2 {
			return jones.Vector{}, stokes.Vector{}, fmt.Errorf("input jones: %w: want [re, im]", errBadComponents)
		}
		if !finite(in.Jones.Ex[0], in.Jones.Ex[1], in.Jones.Ey[0], in.Jones.Ey[1]) {
			return jones.Vector{}, stokes.Vector{}, fmt.Errorf("input jones: %w", errNonFinite)
		}
		j := jones.NewVector(complex(in.Jones.Ex[0], in.Jones.Ex[1]), complex(in.Jones.Ey[0], in.Jones.Ey[1]))
		return j, converters.JonesToStokes(j), nil

	case in.Stokes != nil:
		if len(in.Stokes) != 4 {
			return jones.Vector{}, stokes.Vector{}, fmt.Errorf("input stokes: %w: want [I, M, C, S]", errBadComponents)
		}
		if !finite(in.Stokes...) {
			return jones.Vector{}, stokes.Vector{}, fmt.Errorf("input stokes: %w", errNonFinite)
		}
		s := stokes.NewVector(in.Stokes[0], in.Stokes[1], in.Stokes[2], in.Stokes[3])
		return converters.StokesToJones(s), s, nil

	default:
		if !finite(in.Ellipse.E0x, in.Ellipse.E0y, in.Ellipse.PhaseDeg) {
			return jones.Vector{}, stokes.Vector{}, fmt.Errorf("input ellipse: %w", errNonFinite)
		}
		e := ellipse.New(in.Ellipse.E0x, in.Ellipse.E0y, ellipse.ToRadians(in.Ellipse.PhaseDeg))
		j := jones.NewVector(complex(e.E0x(), 0), cmplx.Rect(e.E0y(), e.Phase()))
		return j, converters.JonesToStokes(j), nil
	}
}

// buildStage turns one ElementConfig into its Jones matrix and its
// closed-form Mueller matrix.
func buildStage(ec ElementConfig) (stage, error) {
	if !finite(ec.AngleDeg, ec.RetardanceDeg) {
		return stage{}, fmt.Errorf("%w: angle_deg=%g retardance_deg=%g", errBadAngle, ec.AngleDeg, ec.RetardanceDeg)
	}
	theta := ellipse.ToRadians(ec.AngleDeg)
	delta := ellipse.ToRadians(ec.RetardanceDeg)
	label := fmt.Sprintf("%s %g°", ec.Kind, ec.AngleDeg)

	switch ec.Kind {
	case kindPolarizer:
		return stage{label, jones.LinearPolarizer(theta), mueller.LinearPolarizer(theta)}, nil
	case kindRetarder:
		label = fmt.Sprintf("%s %g° δ=%g°", ec.Kind, ec.AngleDeg, ec.RetardanceDeg)
		return stage{label, jones.Retarder(theta, delta), mueller.Retarder(theta, delta)}, nil
	case kindQuarterWave:
		return stage{label, jones.QuarterWavePlate(theta), mueller.QuarterWavePlate(theta)}, nil
	case kindHalfWave:
		return stage{label, jones.HalfWavePlate(theta), mueller.HalfWavePlate(theta)}, nil
	case kindRotator:
		return stage{label, jones.Rotator(theta), mueller.Rotator(theta)}, nil

	case kindElement:
		t := jones.DefaultTransparency
		if ec.Transparency != nil {
			t = *ec.Transparency
		}
		if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
			return stage{}, fmt.Errorf("%w: %g", errBadTransparency, t)
		}
		j := jones.NewElement(theta, jones.WithRetardance(delta), jones.WithTransparency(t))
		label = fmt.Sprintf("%s %g° δ=%g° t=%g", ec.Kind, ec.AngleDeg, ec.RetardanceDeg, t)
		return stage{label, j, converters.MuellerFromJones(j)}, nil

	case kindCatalog:
		if ec.Name == "" {
			return stage{}, errMissingCatalogID
		}
		j, err := states.JonesElement(ec.Name)
		if err != nil {
			return stage{}, err
		}
		m, err := states.MuellerElement(ec.Name)
		if err != nil {
			return stage{}, err
		}
		return stage{ec.Name, j, m}, nil

	default:
		return stage{}, fmt.Errorf("%w: %q", errUnknownKind, ec.Kind)
	}
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// buildTrain builds every stage, reporting the index of the first bad one.
func buildTrain(elems []ElementConfig) ([]stage, error) {
	train := make([]stage, 0, len(elems))
	for i, ec := range elems {
		st, err := buildStage(ec)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		train = append(train, st)
	}

	return train, nil
}
