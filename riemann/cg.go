package riemann

import (
	"math"
)

// tailWindow keeps the last MaxBisectionWindow secant iterates on the stack,
// independent of whether an IterationTrace was supplied.
type tailWindow struct {
	vals [MaxBisectionWindow]float64
	n    int
}

const bracketExpansions = 10

func (tw *tailWindow) push(p float64) {
	tw.vals[tw.n%MaxBisectionWindow] = p
	tw.n++
}

// bounds returns the min and max of the last window iterates; with no
// iterates lo > hi.
func (tw *tailWindow) bounds(window int) (lo, hi float64) {
	var (
		cnt = min(window, tw.n, MaxBisectionWindow)
	)
	lo, hi = math.Inf(1), math.Inf(-1)
	for i := 0; i < cnt; i++ {
		p := tw.vals[(tw.n-1-i)%MaxBisectionWindow]
		lo = math.Min(lo, p)
		hi = math.Max(hi, p)
	}
	return
}

// lastStep is the magnitude of the final secant update, zero with fewer than two iterates
func (tw *tailWindow) lastStep() float64 {
	if tw.n < 2 {
		return 0.
	}
	return math.Abs(tw.vals[(tw.n-1)%MaxBisectionWindow] - tw.vals[(tw.n-2)%MaxBisectionWindow])
}

/*
starCG iterates the Colella & Glaz secant method on the star pressure. The
loop always performs at least two passes and at most MaxIterations. When it
does not converge the configured NonConvergencePolicy decides the outcome.
*/
func (s *Solver) starCG(l, r *sideState, cx *waveContext, diag *Diagnostics) (star StarState, err error) {
	var (
		cfg       = &s.cfg
		pfloor    = cfg.PressureFloor
		tr        = diag.trace()
		tail      tailWindow
		converged bool
		iter      int
	)
	// acoustic seed
	wl0, wr0 := cx.impedances(l, r)
	pstar := s.twoShockPressure(l, r, wl0, wr0)

	// one nonlinear update of the seed before the secant loop
	wl := math.Sqrt(cx.sideWaveSpeedSq(l, pstar))
	wr := math.Sqrt(cx.sideWaveSpeedSq(r, pstar))
	pstarOld := pstar
	ustarL := l.u - (pstar-l.p)/wl
	ustarR := r.u + (pstar-r.p)/wr
	pstar = s.twoShockPressure(l, r, wl, wr)

	for (iter < cfg.MaxIterations && !converged) || iter < 2 {
		wlInv := 1. / math.Sqrt(cx.sideWaveSpeedSq(l, pstar))
		wrInv := 1. / math.Sqrt(cx.sideWaveSpeedSq(r, pstar))

		ustarLOld, ustarROld := ustarL, ustarR
		ustarR = r.u - (r.p-pstar)*wrInv
		ustarL = l.u + (l.p-pstar)*wlInv

		dpditer := math.Abs(pstarOld - pstar)

		// zp and zm are dU/dp on each side, falling back to 1/W for weak changes
		zp := math.Abs(ustarL - ustarLOld)
		if zp-cfg.WeakWaveThreshold*cx.cavg <= 0 {
			zp = dpditer * wlInv
		}
		zm := math.Abs(ustarR - ustarROld)
		if zm-cfg.WeakWaveThreshold*cx.cavg <= 0 {
			zm = dpditer * wrInv
		}

		denom := dpditer / math.Max(zp+zm, small*cx.cavg)

		pstarOld = pstar
		pstar = math.Max(pstar-denom*(ustarR-ustarL), pfloor)

		converged = math.Abs(pstar-pstarOld) < cfg.Tolerance*pstar

		tr.addSecant(pstar)
		tail.push(pstar)
		iter++
	}
	star.Iterations = iter

	switch {
	case converged:
		star.Method = StarSecant
		diag.record(Event{Kind: EventConverged, Iterations: iter, PStar: pstar})
	case cfg.Policy == Policy_DegradeLinear:
		star.P, star.U = s.linearStar(l, r, wl0, wr0)
		star.Method = StarDegraded
		star.Converged = true
		diag.record(Event{Kind: EventDegraded, Iterations: iter, PStar: star.P})
		return
	case cfg.Policy == Policy_BisectionRetry:
		pLinear, _ := s.linearStar(l, r, wl0, wr0)
		lo, hi, ok := s.bisectionBracket(l, r, cx, &tail, pLinear)
		if ok {
			var nb int
			pstar, nb, ok = s.bisect(l, r, cx, lo, hi, tr)
			star.Iterations += nb
		}
		if !ok {
			star.P = pstar
			star.Method = StarFailed
			err = s.nonConvergence(l, r, cx, pstar, star.Iterations, tr)
			diag.record(Event{Kind: EventNonConverged, Iterations: star.Iterations, PStar: pstar})
			return
		}
		star.Method = StarBisection
		diag.record(Event{Kind: EventBisection, Iterations: star.Iterations, PStar: pstar})
	default:
		star.P = pstar
		star.Method = StarFailed
		err = s.nonConvergence(l, r, cx, pstar, iter, tr)
		diag.record(Event{Kind: EventNonConverged, Iterations: iter, PStar: pstar})
		return
	}

	star.P = pstar
	star.U = s.snapVelocity(0.5*(s.leftVelocity(l, cx, pstar)+s.rightVelocity(r, cx, pstar)), l.u, r.u)
	star.Converged = true
	return
}

// leftVelocity is u*_l(p) = ul + (pl - p)/Wl(p)
func (s *Solver) leftVelocity(l *sideState, cx *waveContext, p float64) float64 {
	return l.u + (l.p-p)/math.Sqrt(cx.sideWaveSpeedSq(l, p))
}

// rightVelocity is u*_r(p) = ur - (pr - p)/Wr(p)
func (s *Solver) rightVelocity(r *sideState, cx *waveContext, p float64) float64 {
	return r.u - (r.p-p)/math.Sqrt(cx.sideWaveSpeedSq(r, p))
}

// residual is the velocity mismatch across the contact, decreasing in p
func (s *Solver) residual(l, r *sideState, cx *waveContext, p float64) float64 {
	return s.leftVelocity(l, cx, p) - s.rightVelocity(r, cx, p)
}

/*
bisectionBracket starts from the min/max of the tail of the secant history.
When that does not straddle a root it is walked toward the root in doubling
steps, starting from the size of the last secant step. Failing that, the
bracket is [PressureFloor, BracketScale*max(pl, pr, pLinear)].
*/
func (s *Solver) bisectionBracket(l, r *sideState, cx *waveContext, tail *tailWindow,
	pLinear float64) (lo, hi float64, ok bool) {
	var (
		cfg  = &s.cfg
		pmax = cfg.BracketScale * math.Max(math.Max(l.p, r.p), pLinear)
	)
	if lo, hi = tail.bounds(cfg.BisectionWindow); hi >= lo {
		lo = math.Max(lo, cfg.PressureFloor)
		hi = math.Min(math.Max(hi, lo), pmax)
		var (
			w   = math.Max(tail.lastStep(), cfg.Tolerance*hi)
			fLo = s.residual(l, r, cx, lo)
			fHi = s.residual(l, r, cx, hi)
		)
		for k := 0; k < bracketExpansions; k++ {
			if hi > lo && fLo*fHi <= 0 {
				return lo, hi, true
			}
			// the residual decreases with p
			if fHi > 0 {
				lo, fLo = hi, fHi
				hi = math.Min(hi+w, pmax)
				fHi = s.residual(l, r, cx, hi)
			} else {
				hi, fHi = lo, fLo
				lo = math.Max(lo-w, cfg.PressureFloor)
				fLo = s.residual(l, r, cx, lo)
			}
			w *= 2.
		}
	}
	lo, hi = cfg.PressureFloor, pmax
	ok = s.residual(l, r, cx, lo)*s.residual(l, r, cx, hi) <= 0
	return
}

func (s *Solver) bisect(l, r *sideState, cx *waveContext, lo, hi float64,
	tr *IterationTrace) (pc float64, iter int, converged bool) {
	var (
		cfg   = &s.cfg
		fLo   = s.residual(l, r, cx, lo)
		nIter = cfg.bisectionIterations()
	)
	for iter < nIter {
		pc = 0.5 * (lo + hi)
		tr.addBisection(pc)
		iter++
		if 0.5*math.Abs(hi-lo) < cfg.Tolerance*pc {
			converged = true
			return
		}
		fc := s.residual(l, r, cx, pc)
		if fLo*fc <= 0 {
			hi = pc
		} else {
			lo, fLo = pc, fc
		}
	}
	return
}

func (s *Solver) nonConvergence(l, r *sideState, cx *waveContext, pstar float64, iter int,
	tr *IterationTrace) (err *NonConvergenceError) {
	var (
		cfg = &s.cfg
	)
	err = &NonConvergenceError{
		Left:          l.primitive().Copy(),
		Right:         r.primitive().Copy(),
		GammaL:        l.gamc,
		GammaR:        r.gamc,
		Cavg:          cx.cavg,
		Csmall:        cx.csmall,
		DensityFloor:  cfg.DensityFloor,
		PressureFloor: cfg.PressureFloor,
		Tolerance:     cfg.Tolerance,
		MaxIterations: cfg.MaxIterations,
		Iterations:    iter,
		Policy:        cfg.Policy,
		PStar:         pstar,
	}
	if tr != nil {
		err.SecantHistory = append([]float64(nil), tr.Secant...)
		err.BisectionHistory = append([]float64(nil), tr.Bisection...)
	}
	return
}
