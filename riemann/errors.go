package riemann

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNonConvergence matches every *NonConvergenceError via errors.Is
	ErrNonConvergence = errors.New("riemann: non-convergence in the Riemann solver")

	// ErrConfiguration matches every *ConfigurationError via errors.Is
	ErrConfiguration = errors.New("riemann: invalid configuration")
)

// ConfigurationError is raised at setup time, never per interface
type ConfigurationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("riemann: invalid %s %q: %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("riemann: unrecognized %s %q", e.Field, e.Value)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

/*
NonConvergenceError carries everything needed to reproduce a failed star
state solve: both (repaired) input states, the floors and tolerances in
effect, and the iterate history when a trace buffer was supplied. Iterations
counts the passes actually made, secant plus bisection.
*/
type NonConvergenceError struct {
	Left, Right      PrimitiveState
	GammaL, GammaR   float64
	Cavg, Csmall     float64
	DensityFloor     float64
	PressureFloor    float64
	Tolerance        float64
	MaxIterations    int
	Iterations       int
	Policy           NonConvergencePolicy
	PStar            float64
	SecantHistory    []float64
	BisectionHistory []float64
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("riemann: non-convergence in the Riemann solver after %d iterations (policy %s, last pstar %g)",
		e.Iterations, e.Policy, e.PStar)
}

func (e *NonConvergenceError) Is(target error) bool {
	return target == ErrNonConvergence
}

// Report is the multi-line dump written when a Fatal policy aborts
func (e *NonConvergenceError) Report() string {
	var (
		sb strings.Builder
	)
	fmt.Fprintf(&sb, "ERROR: non-convergence in the Riemann solver (policy %s)\n", e.Policy)
	sb.WriteString("pstar history:")
	if len(e.SecantHistory) == 0 {
		sb.WriteString(" (trace disabled)")
	}
	for iter, p := range e.SecantHistory {
		fmt.Fprintf(&sb, " %d %.10e", iter, p)
	}
	sb.WriteString("\n")
	if len(e.BisectionHistory) != 0 {
		sb.WriteString("bisection history:")
		for iter, p := range e.BisectionHistory {
			fmt.Fprintf(&sb, " %d %.10e", iter, p)
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "left state  (r,u,p,re,gc): %.10e %.10e %.10e %.10e %.10e\n",
		e.Left.Rho, e.Left.U, e.Left.P, e.Left.RhoE, e.GammaL)
	fmt.Fprintf(&sb, "right state (r,u,p,re,gc): %.10e %.10e %.10e %.10e %.10e\n",
		e.Right.Rho, e.Right.U, e.Right.P, e.Right.RhoE, e.GammaR)
	fmt.Fprintf(&sb, "cavg, smallc: %.10e %.10e\n", e.Cavg, e.Csmall)
	fmt.Fprintf(&sb, "small_dens, small_pres, tol, max_iter: %.10e %.10e %.10e %d\n",
		e.DensityFloor, e.PressureFloor, e.Tolerance, e.MaxIterations)
	return sb.String()
}

func itoa(i int) string {
	return strconv.Itoa(i)
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
