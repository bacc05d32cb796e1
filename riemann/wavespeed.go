package riemann

import (
	"math"

	"github.com/notargets/riemann/utils"
)

const (
	smlp1 = 1.e-10 // relative weak-wave and alpha==0 threshold in the jump relations
	small = 1.e-8  // relative floor on sound speeds and denominators
)

// waveContext holds the per-interface quantities shared by both sides
type waveContext struct {
	gdot       float64 // blend coefficient for predicting gamma_e across a shock
	gmin, gmax float64
	cavg       float64
	csmall     float64
	wsmall     float64
}

func (s *Solver) newWaveContext(l, r *sideState) (cx waveContext) {
	var (
		gameBar = 0.5 * (l.game + r.game)
		gamcBar = 0.5 * (l.gamc + r.gamc)
	)
	cx.csmall = math.Max(small, small*math.Max(l.c, r.c))
	cx.cavg = 0.5 * (l.c + r.c)
	cx.gmin = math.Min(math.Min(l.game, r.game), 1.)
	cx.gmax = math.Max(math.Max(l.game, r.game), 2.)
	cx.gdot = 2. * (1. - gameBar/gamcBar) * (gameBar - 1.)
	cx.wsmall = s.cfg.DensityFloor * cx.csmall
	return
}

/*
waveSpeedSq is the approximate Lagrangian shock speed squared of Colella & Glaz.
A gamma_e is first predicted across the wave from the jump relation, then used
in the Rankine-Hugoniot conditions (CG Eq. 31 and 34):

	gstar = clamp((pstar-p)*gdot/(pstar+p) + gam, gmin, gmax)
	W^2   = (pstar-p) * beta / (tau * alpha)

Near the acoustic limit the frozen Lagrangian sound speed is used instead, and
the result is never below (gam-1)/(2 gam) * csq.
*/
func (cx *waveContext) waveSpeedSq(p, tau, gam, csq, pstar float64) (wsq, gstar float64) {
	gstar = (pstar-p)*cx.gdot/(pstar+p) + gam
	gstar = utils.Clamp(gstar, cx.gmin, cx.gmax)

	alpha := pstar - (gstar-1.)*p/(gam-1.)
	if alpha == 0. {
		alpha = smlp1 * (pstar + p)
	}
	beta := pstar + 0.5*(gstar-1.)*(pstar+p)

	wsq = (pstar - p) * beta / (tau * alpha)

	if math.Abs(pstar-p) < smlp1*(pstar+p) {
		wsq = csq
	}
	wsq = math.Max(wsq, (0.5*(gam-1.)/gam)*csq)
	return
}

// sideWaveSpeedSq evaluates waveSpeedSq for one input side at a trial pressure
func (cx *waveContext) sideWaveSpeedSq(ss *sideState, pstar float64) (wsq float64) {
	wsq, _ = cx.waveSpeedSq(ss.p, ss.tau, ss.game, ss.clsq, pstar)
	return
}
