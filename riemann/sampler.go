package riemann

import (
	"math"

	"github.com/notargets/riemann/eos"
	"github.com/notargets/riemann/utils"
)

/*
sample picks the state seen by the interface (xi = 0) given the star state.
The outer side is the one upwind of the contact; the interface lies in the
outer state, the star state, or inside a rarefaction fan, where the result
is a linear blend weighted by where xi = 0 falls between the head and tail.
*/
func (s *Solver) sample(l, r *sideState, cx *waveContext, pstar, ustar float64) (qint PrimitiveState, gstar float64) {
	var (
		cfg                  = &s.cfg
		ro, uo, po, tauo     float64
		gamco, gameo, v1, v2 float64
		sgnm                 float64
	)
	switch {
	case ustar > 0:
		ro, uo, po, tauo = l.rho, l.u, l.p, l.tau
		gamco, gameo, v1, v2 = l.gamc, l.game, l.v1, l.v2
		sgnm = 1.
	case ustar < 0:
		ro, uo, po, tauo = r.rho, r.u, r.p, r.tau
		gamco, gameo, v1, v2 = r.gamc, r.game, r.v1, r.v2
		sgnm = -1.
	default:
		uo = 0.5 * (l.u + r.u)
		po = 0.5 * (l.p + r.p)
		tauo = 0.5 * (l.tau + r.tau)
		gamco = 0.5 * (l.gamc + r.gamc)
		gameo = 0.5 * (l.game + r.game)
		v1 = 0.5 * (l.v1 + r.v1)
		v2 = 0.5 * (l.v2 + r.v2)
	}
	ro = math.Max(cfg.DensityFloor, 1./tauo)
	tauo = 1. / ro

	co := math.Max(cx.csmall, math.Sqrt(math.Abs(gamco*po*tauo)))
	clsq := (co * ro) * (co * ro)

	var wosq float64
	wosq, gstar = cx.waveSpeedSq(po, tauo, gameo, clsq, pstar)
	wo := math.Sqrt(wosq)
	dpjmp := pstar - po

	// star density from the Hugoniot, with the compression ratio bounded by
	// the strong shock limit
	rstar := ro / math.Max(1.-ro*dpjmp/wosq, (gameo-1.)/(gameo+1.))
	rstar = math.Max(cfg.DensityFloor, rstar)

	cstar := math.Max(cx.csmall, math.Sqrt(math.Abs(gamco*pstar/rstar)))

	spout := co - sgnm*uo
	spin := cstar - sgnm*ustar
	if dpjmp >= 0 {
		ushock := wo*tauo - sgnm*uo
		spin, spout = ushock, ushock
	}

	frac := 0.5 * (1. + (spin+spout)/math.Max(spout-spin, small*cx.cavg))
	frac = utils.Clamp(frac, 0., 1.)

	qint = PrimitiveState{
		Rho:    frac*rstar + (1.-frac)*ro,
		U:      frac*ustar + (1.-frac)*uo,
		V1:     v1,
		V2:     v2,
		P:      frac*pstar + (1.-frac)*po,
		Gamma1: gamco,
	}
	game := frac*gstar + (1.-frac)*gameo
	qint.RhoE = qint.P / math.Max(game-1., smlp1)

	qint.Species = upwind(l.species, r.species, ustar)
	qint.Passive = upwind(l.passive, r.passive, ustar)

	if cfg.UseEOSConsistencyPass {
		th := s.eos.Evaluate(eos.InputRP, qint.Rho, qint.P, qint.Species)
		qint.RhoE = qint.Rho * th.E
		qint.Gamma1 = th.Gamma1
	}
	return
}

// upwind copies the advected scalars from the side upwind of the contact and
// averages them when the contact is stationary.
func upwind(ql, qr []float64, ustar float64) (q []float64) {
	switch {
	case ustar > 0:
		if ql != nil {
			q = append([]float64(nil), ql...)
		}
	case ustar < 0:
		if qr != nil {
			q = append([]float64(nil), qr...)
		}
	default:
		n := min(len(ql), len(qr))
		if n == 0 {
			return
		}
		q = make([]float64, n)
		for i := range q {
			q[i] = 0.5 * (ql[i] + qr[i])
		}
	}
	return
}
