package riemann

import "math"

// impedances returns the acoustic Lagrangian wave impedances of both sides
func (cx *waveContext) impedances(l, r *sideState) (wl, wr float64) {
	wl = math.Max(cx.wsmall, math.Sqrt(math.Abs(l.clsq)))
	wr = math.Max(cx.wsmall, math.Sqrt(math.Abs(r.clsq)))
	return
}

// twoShockPressure is the closed form star pressure for impedances wl, wr
func (s *Solver) twoShockPressure(l, r *sideState, wl, wr float64) (pstar float64) {
	pstar = ((wr*l.p + wl*r.p) + wl*wr*(l.u-r.u)) / (wl + wr)
	pstar = math.Max(pstar, s.cfg.PressureFloor)
	return
}

// linearStar is the two-shock acoustic estimate of (p*, u*)
func (s *Solver) linearStar(l, r *sideState, wl, wr float64) (pstar, ustar float64) {
	var (
		wwinv = 1. / (wl + wr)
	)
	pstar = ((wr*l.p + wl*r.p) + wl*wr*(l.u-r.u)) * wwinv
	ustar = ((wl*l.u + wr*r.u) + (l.p - r.p)) * wwinv

	pstar = math.Max(pstar, s.cfg.PressureFloor)
	ustar = s.snapVelocity(ustar, l.u, r.u)
	return
}

// snapVelocity zeroes a contact velocity that is round-off relative to the
// side velocities, so mirror-symmetric problems stay symmetric.
func (s *Solver) snapVelocity(ustar, ul, ur float64) float64 {
	if math.Abs(ustar) < s.cfg.VelocityZeroTolerance*0.5*(math.Abs(ul)+math.Abs(ur)) {
		return 0.
	}
	return ustar
}

func (s *Solver) starLinear(l, r *sideState, cx *waveContext) (star StarState) {
	wl, wr := cx.impedances(l, r)
	star.P, star.U = s.linearStar(l, r, wl, wr)
	star.Converged = true
	star.Method = StarLinear
	return
}
