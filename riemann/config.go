package riemann

import (
	"strings"
)

type SolverKind uint8

const (
	Solver_CG   SolverKind = iota // Colella & Glaz secant iteration
	Solver_CGF                    // Colella, Glaz & Ferguson two-shock estimate
	Solver_HLLC                   // Toro HLLC direct flux
)

var (
	SolverNames = map[string]SolverKind{
		"cg":   Solver_CG,
		"cgf":  Solver_CGF,
		"hllc": Solver_HLLC,
	}
	SolverPrintNames = []string{"CG", "CGF", "HLLC"}
)

func (sk SolverKind) String() string {
	if int(sk) < len(SolverPrintNames) {
		return SolverPrintNames[sk]
	}
	return "unknown"
}

func NewSolverKind(label string) (sk SolverKind, err error) {
	var (
		ok bool
	)
	if sk, ok = SolverNames[strings.ToLower(label)]; !ok {
		err = &ConfigurationError{Field: "solver_kind", Value: label}
	}
	return
}

// NonConvergencePolicy chooses what CG does when the secant loop runs out of iterations
type NonConvergencePolicy uint8

const (
	Policy_Fatal NonConvergencePolicy = iota
	Policy_DegradeLinear
	Policy_BisectionRetry
)

var (
	PolicyNames = map[string]NonConvergencePolicy{
		"fatal":          Policy_Fatal,
		"degradelinear":  Policy_DegradeLinear,
		"degrade":        Policy_DegradeLinear,
		"linear":         Policy_DegradeLinear,
		"bisectionretry": Policy_BisectionRetry,
		"bisection":      Policy_BisectionRetry,
	}
	PolicyPrintNames = []string{"Fatal", "DegradeLinear", "BisectionRetry"}
)

func (ncp NonConvergencePolicy) String() string {
	if int(ncp) < len(PolicyPrintNames) {
		return PolicyPrintNames[ncp]
	}
	return "unknown"
}

func NewNonConvergencePolicy(label string) (ncp NonConvergencePolicy, err error) {
	var (
		ok bool
	)
	if ncp, ok = PolicyNames[strings.ReplaceAll(strings.ToLower(label), "_", "")]; !ok {
		err = &ConfigurationError{Field: "non_convergence_policy", Value: label}
	}
	return
}

const (
	// minimum secant iterations needed to seed a bisection bracket
	MinBisectionIterations = 5
	// bisection runs this many times MaxIterations steps
	BisectionFactor = 2
	// capacity of the fixed tail window used to seed the bisection bracket
	MaxBisectionWindow = 16
)

// Config is immutable once handed to NewSolver and is shared by every lane.
type Config struct {
	Solver                 SolverKind
	MaxIterations          int
	Tolerance              float64
	DensityFloor           float64
	PressureFloor          float64
	TemperatureFloor       float64
	VelocityZeroTolerance  float64
	WeakWaveThreshold      float64
	Policy                 NonConvergencePolicy
	UseEOSConsistencyPass  bool
	UseReconstructedGamma1 bool
	ComputeGammas          bool
	BisectionWindow        int
	BracketScale           float64
}

func DefaultConfig() (cfg Config) {
	cfg = Config{
		Solver:                Solver_CG,
		MaxIterations:         12,
		Tolerance:             1.e-5,
		DensityFloor:          1.e-100,
		PressureFloor:         1.e-100,
		TemperatureFloor:      1.e-100,
		VelocityZeroTolerance: 1.e-12,
		WeakWaveThreshold:     1.e-3,
		Policy:                Policy_DegradeLinear,
		BisectionWindow:       6,
		BracketScale:          10.,
	}
	return
}

func (cfg Config) Validate() (err error) {
	switch {
	case int(cfg.Solver) >= len(SolverPrintNames):
		err = &ConfigurationError{Field: "solver_kind", Value: cfg.Solver.String()}
	case int(cfg.Policy) >= len(PolicyPrintNames):
		err = &ConfigurationError{Field: "non_convergence_policy", Value: cfg.Policy.String()}
	case cfg.MaxIterations < 1:
		err = &ConfigurationError{Field: "max_iterations", Value: itoa(cfg.MaxIterations),
			Reason: "must be positive"}
	case !(cfg.Tolerance > 0):
		err = &ConfigurationError{Field: "tolerance", Value: ftoa(cfg.Tolerance),
			Reason: "must be positive"}
	case !(cfg.DensityFloor > 0):
		err = &ConfigurationError{Field: "density_floor", Value: ftoa(cfg.DensityFloor),
			Reason: "must be positive"}
	case !(cfg.PressureFloor > 0):
		err = &ConfigurationError{Field: "pressure_floor", Value: ftoa(cfg.PressureFloor),
			Reason: "must be positive"}
	case cfg.TemperatureFloor < 0:
		err = &ConfigurationError{Field: "temperature_floor", Value: ftoa(cfg.TemperatureFloor),
			Reason: "must not be negative"}
	case cfg.VelocityZeroTolerance < 0:
		err = &ConfigurationError{Field: "velocity_zero_tolerance", Value: ftoa(cfg.VelocityZeroTolerance),
			Reason: "must not be negative"}
	case cfg.WeakWaveThreshold < 0:
		err = &ConfigurationError{Field: "weak_wave_threshold", Value: ftoa(cfg.WeakWaveThreshold),
			Reason: "must not be negative"}
	case cfg.Solver == Solver_CG && cfg.Policy == Policy_BisectionRetry &&
		cfg.MaxIterations < MinBisectionIterations:
		err = &ConfigurationError{Field: "max_iterations", Value: itoa(cfg.MaxIterations),
			Reason: "need max_iterations >= 5 to do a bisection search on secant iteration failure"}
	case cfg.Solver == Solver_CG && cfg.Policy == Policy_BisectionRetry &&
		(cfg.BisectionWindow < 2 || cfg.BisectionWindow > MaxBisectionWindow):
		err = &ConfigurationError{Field: "bisection_window", Value: itoa(cfg.BisectionWindow),
			Reason: "must be within [2, 16]"}
	case cfg.Solver == Solver_CG && cfg.Policy == Policy_BisectionRetry && !(cfg.BracketScale > 1):
		err = &ConfigurationError{Field: "bracket_scale", Value: ftoa(cfg.BracketScale),
			Reason: "must exceed 1"}
	}
	return
}

// secantIterations is the hard bound on the secant loop, which always runs twice
func (cfg *Config) secantIterations() int {
	return max(cfg.MaxIterations, 2)
}

func (cfg *Config) bisectionIterations() int {
	return BisectionFactor * cfg.MaxIterations
}
