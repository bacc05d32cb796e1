package riemann

import (
	"github.com/notargets/riemann/eos"
)

/*
Solver evaluates interface states and fluxes for one configuration and EOS.
It holds no mutable state, so a single Solver is shared by every lane of a
sweep; per-lane scratch lives in the Diagnostics passed to Solve.
*/
type Solver struct {
	cfg Config
	eos eos.EquationOfState
}

func NewSolver(cfg Config, EOS eos.EquationOfState) (s *Solver, err error) {
	if err = cfg.Validate(); err != nil {
		return
	}
	if EOS == nil {
		err = &ConfigurationError{Field: "eos", Value: "nil", Reason: "an equation of state is required"}
		return
	}
	s = &Solver{cfg: cfg, eos: EOS}
	return
}

func (s *Solver) Config() Config { return s.cfg }

func (s *Solver) EOS() eos.EquationOfState { return s.eos }

/*
Solve computes the Riemann problem at one interface. For CG and CGF the
result is the sampled interface state; HLLC additionally fills Result.Flux and
samples the CGF estimate into Result.State. A non-nil error is always a
*NonConvergenceError from CG under the Fatal policy, or from an exhausted
bisection retry; Result.Star still holds the last iterate in that case.
*/
func (s *Solver) Solve(in *Interface, diag *Diagnostics) (res Result, err error) {
	var (
		cfg      = &s.cfg
		suppress = in.Boundary.Suppress()
	)
	diag.trace().reset()

	l := s.guard(Left, &in.Left, in.AuxLeft, diag)
	r := s.guard(Right, &in.Right, in.AuxRight, diag)
	cx := s.newWaveContext(&l, &r)

	res.Kind = cfg.Solver
	switch cfg.Solver {
	case Solver_CG:
		if res.Star, err = s.starCG(&l, &r, &cx, diag); err != nil {
			return
		}
	default:
		res.Star = s.starLinear(&l, &r, &cx)
	}

	res.State, res.Star.GammaStar = s.sample(&l, &r, &cx, res.Star.P, res.Star.U)

	if cfg.Solver == Solver_HLLC {
		var pwall float64
		res.Flux, pwall = s.hllc(&l, &r, &cx)
		if suppress {
			res.Flux = wallFlux(&res.Flux, pwall)
		}
	}
	if suppress {
		res.State.U = 0.
	}
	return
}
