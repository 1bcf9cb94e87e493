// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/katalvlaran/lvlight/algebra"
	"github.com/katalvlaran/lvlight/converters"
	"github.com/katalvlaran/lvlight/ellipse"
	"github.com/katalvlaran/lvlight/matrix"
)

// run propagates cfg.Input through cfg.Elements in the Jones and the
// Mueller calculus and writes a report to w.
func run(w io.Writer, cfg *Config, log *slog.Logger) error {
	eps, err := resolveEpsilon(cfg.Output.Epsilon)
	if err != nil {
		return err
	}
	jIn, sIn, err := resolveInput(cfg.Input)
	if err != nil {
		return err
	}
	if dop := sIn.DegreeOfPolarization(); dop < 1-matrix.DefaultEpsilon {
		log.Warn("input is partially polarized; the Jones path carries it as fully polarized", "dop", dop)
	}

	train, err := buildTrain(cfg.Elements)
	if err != nil {
		return err
	}

	jOps := make([]algebra.Operand, len(train))
	mOps := make([]algebra.Operand, len(train))
	for i, st := range train {
		jOps[i] = algebra.JonesOperator(st.jones)
		mOps[i] = algebra.MuellerOperator(st.mueller)
	}

	jSteps, err := algebra.Propagate(algebra.JonesVector(jIn), jOps...)
	if err != nil {
		return fmt.Errorf("jones propagation: %w", err)
	}
	mSteps, err := algebra.Propagate(algebra.StokesVector(sIn), mOps...)
	if err != nil {
		return fmt.Errorf("mueller propagation: %w", err)
	}

	angle := func(rad float64) float64 { return rad }
	unit := "rad"
	if cfg.Output.Degrees {
		angle = ellipse.ToDegrees
		unit = "deg"
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "step\telement\tI\tazimuth[%s]\tellipticity[%s]\thandedness\tstokes\n", unit, unit)
	for k := range jSteps {
		jv, _ := jSteps[k].JonesVector()
		sv, _ := mSteps[k].StokesVector()
		label := "input"
		if k > 0 {
			label = train[k-1].label
		}
		log.Debug("step", "k", k, "element", label, "jones", jv.String(), "stokes", sv.String())
		fmt.Fprintf(tw, "%d\t%s\t%.6g\t%.6g\t%.6g\t%s\t%s\n",
			k, label, sv.I(), angle(sv.Azimuth()), angle(sv.EllipticityAngle()), sv.Handedness(), sv)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	jOut, _ := jSteps[len(jSteps)-1].JonesVector()
	sOut, _ := mSteps[len(mSteps)-1].StokesVector()
	fmt.Fprintf(w, "\njones out:   %s\n", jOut)
	fmt.Fprintf(w, "stokes out:  %s\n", sOut)

	if len(jOps) > 0 {
		system, err := algebra.Chain(jOps...)
		if err != nil {
			return fmt.Errorf("chain: %w", err)
		}
		jm, _ := system.JonesOperator()
		fmt.Fprintf(w, "\nsystem jones matrix:\n%s\n", jm)
		lifted, err := algebra.Lift(system)
		if err != nil {
			return fmt.Errorf("lift: %w", err)
		}
		mm, _ := lifted.MuellerOperator()
		fmt.Fprintf(w, "system mueller matrix:\n%s\n", mm)
	}

	agree := converters.JonesToStokes(jOut).ApproxEqual(sOut, matrix.WithEpsilon(eps))
	fmt.Fprintf(w, "\ncalculi agree (eps=%g): %t\n", eps, agree)
	if !agree {
		log.Warn("jones and mueller results differ", "jones", converters.JonesToStokes(jOut).String(), "mueller", sOut.String())
	}

	return nil
}

// resolveEpsilon maps an unset (zero) tolerance to matrix.DefaultEpsilon and
// rejects negative or non-finite values.
func resolveEpsilon(eps float64) (float64, error) {
	switch {
	case !finite(eps) || eps < 0:
		return 0, fmt.Errorf("%w: %g", errBadEpsilon, eps)
	case eps == 0:
		return matrix.DefaultEpsilon, nil
	default:
		return eps, nil
	}
}
