package riemann

import (
	"math"

	"github.com/notargets/riemann/utils"
)

/*
hllcState is the HLLC star region conserved state on side k (Toro 10.39).
sgn is -1 on the left and +1 on the right; Sk-uk and Sk-Sc keep that sign
and are floored in magnitude at eps.
*/
func hllcState(q *sideState, Sk, Sc, sgn, eps float64) (U ConservativeState) {
	var (
		dq         = sgn * math.Max(sgn*(Sk-q.u), eps)
		dc         = sgn * math.Max(sgn*(Sk-Sc), eps)
		hllcFactor = q.rho * dq / dc
		e          = q.rhoe / q.rho
		ke         = 0.5 * (q.u*q.u + q.v1*q.v1 + q.v2*q.v2)
	)
	U = ConservativeState{
		Rho:   hllcFactor,
		MomN:  hllcFactor * Sc,
		MomT1: hllcFactor * q.v1,
		MomT2: hllcFactor * q.v2,
		Etot:  hllcFactor * (e + ke + (Sc-q.u)*(Sc+q.p/(q.rho*dq))),
		Eint:  hllcFactor * e,
	}
	U.Species = scaled(q.species, hllcFactor)
	U.Passive = scaled(q.passive, hllcFactor)
	return
}

func (q *sideState) consState() (U ConservativeState) {
	qp := q.primitive()
	U = ConsState(&qp)
	return
}

/*
hllc computes the Toro HLLC flux with Davis wave speed estimates. pwall is
the star pressure implied by the contact speed, which is the only nonzero
flux component when the face is a reflecting wall.

Sound speeds are floored at csmall, so Sl < ul and Sr > ur even when c is
below the round-off of u; the contact speed is clamped to [Sl, Sr].
*/
func (s *Solver) hllc(l, r *sideState, cx *waveContext) (F Flux, pwall float64) {
	var (
		eps = cx.csmall
		cl  = math.Max(eps, math.Sqrt(math.Abs(l.gamc*l.p/l.rho)))
		cr  = math.Max(eps, math.Sqrt(math.Abs(r.gamc*r.p/r.rho)))
		Sl  = math.Min(l.u-cl, r.u-cr)
		Sr  = math.Max(l.u+cl, r.u+cr)
		dl  = math.Min(Sl-l.u, -eps)
		dr  = math.Max(Sr-r.u, eps)
	)
	Sc := (r.p - l.p + l.rho*l.u*dl - r.rho*r.u*dr) / (l.rho*dl - r.rho*dr)
	Sc = utils.Clamp(Sc, Sl, Sr)
	pwall = math.Max(l.p+l.rho*dl*(Sc-l.u), s.cfg.PressureFloor)

	switch {
	case Sr <= 0:
		U := r.consState()
		F = PhysicalFlux(&U, r.p)
	case Sc <= 0:
		U := r.consState()
		F = PhysicalFlux(&U, r.p)
		Uh := hllcState(r, Sr, Sc, 1., eps)
		F.addScaledJump(Sr, &Uh, &U)
	case Sl < 0:
		U := l.consState()
		F = PhysicalFlux(&U, l.p)
		Uh := hllcState(l, Sl, Sc, -1., eps)
		F.addScaledJump(Sl, &Uh, &U)
	default:
		U := l.consState()
		F = PhysicalFlux(&U, l.p)
	}
	return
}
