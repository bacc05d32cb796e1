package riemann

import (
	"math"

	"github.com/notargets/riemann/eos"
)

// sideState is the floored, repaired working copy of one input side
type sideState struct {
	rho, u, v1, v2 float64
	p, rhoe        float64
	gamc           float64 // Gamma1
	game           float64 // p/(rho e) + 1
	tau            float64 // 1/rho
	clsq           float64 // Lagrangian sound speed squared, Gamma1*p*rho
	c              float64 // cell sound speed from AuxThermo
	species        []float64
	passive        []float64
}

func (ss *sideState) primitive() (q PrimitiveState) {
	q = PrimitiveState{
		Rho:     ss.rho,
		U:       ss.u,
		V1:      ss.v1,
		V2:      ss.v2,
		P:       ss.p,
		RhoE:    ss.rhoe,
		Gamma1:  ss.gamc,
		Species: ss.species,
		Passive: ss.passive,
	}
	return
}

// Thermo evaluates the EOS at a primitive state, for callers that do not
// carry cell-centered sound speeds alongside their reconstructed states.
func (s *Solver) Thermo(q *PrimitiveState) (aux AuxThermo) {
	var (
		rho = math.Max(q.Rho, s.cfg.DensityFloor)
		th  = s.eos.Evaluate(eos.InputRE, rho, q.RhoE/rho, q.Species)
	)
	aux = AuxThermo{C: th.Cs, Gamma: th.Gamma1}
	return
}

func (s *Solver) gammaFor(q *PrimitiveState, aux AuxThermo) (gamc float64) {
	switch {
	case s.cfg.UseReconstructedGamma1 && q.Gamma1 > 0:
		gamc = q.Gamma1
	case s.cfg.ComputeGammas:
		th := s.eos.Evaluate(eos.InputRP, math.Max(q.Rho, s.cfg.DensityFloor),
			math.Max(q.P, s.cfg.PressureFloor), q.Species)
		gamc = th.Gamma1
	default:
		gamc = aux.Gamma
	}
	return
}

/*
guard floors the density and, when the internal energy is non-positive or
the pressure is below the floor, discards both and re-derives them from the
EOS at the temperature floor. A zero AuxThermo is filled in from the EOS at
the guarded state. It never fails.
*/
func (s *Solver) guard(side Side, q *PrimitiveState, aux AuxThermo, diag *Diagnostics) (ss sideState) {
	var (
		cfg      = &s.cfg
		repaired = !(q.RhoE > 0) || !(q.P >= cfg.PressureFloor)
	)
	ss = sideState{
		rho:     math.Max(q.Rho, cfg.DensityFloor),
		u:       q.U,
		v1:      q.V1,
		v2:      q.V2,
		p:       q.P,
		rhoe:    q.RhoE,
		species: q.Species,
		passive: q.Passive,
	}
	if repaired {
		th := s.eos.Evaluate(eos.InputRT, ss.rho, cfg.TemperatureFloor, q.Species)
		if !(th.P >= cfg.PressureFloor) {
			th = s.eos.Evaluate(eos.InputRP, ss.rho, cfg.PressureFloor, q.Species)
			th.P = cfg.PressureFloor
		}
		ss.p = th.P
		ss.rhoe = ss.rho * th.E
		ss.gamc = th.Gamma1
		if !(ss.rhoe > 0) {
			ss.rhoe = ss.p / math.Max(ss.gamc-1., smlp1)
		}
	}
	if !(aux.Gamma > 0) || !(aux.C > 0) {
		qs := ss.primitive()
		aux = s.Thermo(&qs)
	}
	if !repaired {
		ss.gamc = s.gammaFor(q, aux)
	}
	ss.c = aux.C
	if repaired {
		diag.record(Event{Kind: EventRepair, Side: side, Before: *q, After: ss.primitive()})
	}
	ss.tau = 1. / ss.rho
	ss.game = ss.p/ss.rhoe + 1.
	ss.clsq = ss.gamc * ss.p * ss.rho
	return
}
