package sod_shock_tube

import (
	"fmt"
	"math"

	"github.com/notargets/riemann/utils"
)

// State is a one dimensional ideal gas state
type State struct {
	Rho, U, P float64
}

/*
ExactRiemann is the exact solution of the ideal gas Riemann problem, used as
the reference for the approximate solvers. The star pressure is found by
Newton iteration on the pressure function of Toro (4.5), and the solution is
self-similar in xi = (x - x0)/t.
*/
type ExactRiemann struct {
	Gamma        float64
	Left, Right  State
	PStar, UStar float64
	cL, cR       float64
	Iterations   int
}

func NewExactRiemann(gamma float64, left, right State) (er *ExactRiemann, err error) {
	var (
		tol     = 1.e-14
		maxIter = 100
	)
	er = &ExactRiemann{
		Gamma: gamma,
		Left:  left,
		Right: right,
		cL:    math.Sqrt(gamma * left.P / left.Rho),
		cR:    math.Sqrt(gamma * right.P / right.Rho),
	}
	// Vacuum is generated when the pressure positivity condition fails
	if 2.*(er.cL+er.cR)/(gamma-1.) <= right.U-left.U {
		err = fmt.Errorf("initial states generate vacuum: du = %g", right.U-left.U)
		return
	}
	p := er.guessPressure()
	for er.Iterations = 1; er.Iterations <= maxIter; er.Iterations++ {
		fL, dfL := er.pressureFunction(p, left, er.cL)
		fR, dfR := er.pressureFunction(p, right, er.cR)
		pNew := math.Max(p-(fL+fR+right.U-left.U)/(dfL+dfR), tol)
		change := 2. * math.Abs(pNew-p) / (pNew + p)
		p = pNew
		if change < tol {
			break
		}
	}
	if er.Iterations > maxIter {
		err = fmt.Errorf("star pressure did not converge in %d iterations", maxIter)
		return
	}
	fL, _ := er.pressureFunction(p, left, er.cL)
	fR, _ := er.pressureFunction(p, right, er.cR)
	er.PStar = p
	er.UStar = 0.5*(left.U+right.U) + 0.5*(fR-fL)
	return
}

// guessPressure is the two-rarefaction approximation, which is exact when
// both waves are rarefactions
func (er *ExactRiemann) guessPressure() (p float64) {
	var (
		g   = er.Gamma
		z   = (g - 1.) / (2. * g)
		l   = er.Left
		r   = er.Right
		num = er.cL + er.cR - 0.5*(g-1.)*(r.U-l.U)
		den = er.cL/math.Pow(l.P, z) + er.cR/math.Pow(r.P, z)
	)
	p = math.Pow(num/den, 1./z)
	return
}

func (er *ExactRiemann) pressureFunction(p float64, q State, c float64) (f, df float64) {
	var (
		g = er.Gamma
	)
	if p > q.P { // shock
		A := 2. / ((g + 1.) * q.Rho)
		B := (g - 1.) / (g + 1.) * q.P
		sq := math.Sqrt(A / (p + B))
		f = (p - q.P) * sq
		df = sq * (1. - 0.5*(p-q.P)/(B+p))
		return
	}
	// rarefaction
	pr := p / q.P
	f = 2. * c / (g - 1.) * (math.Pow(pr, (g-1.)/(2.*g)) - 1.)
	df = 1. / (q.Rho * c) * math.Pow(pr, -(g+1.)/(2.*g))
	return
}

// Sample returns the state at similarity coordinate xi = (x - x0)/t
func (er *ExactRiemann) Sample(xi float64) (s State) {
	var (
		g    = er.Gamma
		gm1  = g - 1.
		gp1  = g + 1.
		mu2  = gm1 / gp1
		ps   = er.PStar
		us   = er.UStar
		l, r = er.Left, er.Right
	)
	if xi <= us {
		if ps > l.P {
			S := l.U - er.cL*math.Sqrt(gp1/(2.*g)*ps/l.P+gm1/(2.*g))
			if xi <= S {
				return l
			}
			return State{l.Rho * (ps/l.P + mu2) / (mu2*ps/l.P + 1.), us, ps}
		}
		cs := er.cL * math.Pow(ps/l.P, gm1/(2.*g))
		switch {
		case xi <= l.U-er.cL:
			return l
		case xi >= us-cs:
			return State{l.Rho * math.Pow(ps/l.P, 1./g), us, ps}
		}
		c := 2. / gp1 * (er.cL + 0.5*gm1*(l.U-xi))
		return State{
			Rho: l.Rho * math.Pow(c/er.cL, 2./gm1),
			U:   2. / gp1 * (er.cL + 0.5*gm1*l.U + xi),
			P:   l.P * math.Pow(c/er.cL, 2.*g/gm1),
		}
	}
	if ps > r.P {
		S := r.U + er.cR*math.Sqrt(gp1/(2.*g)*ps/r.P+gm1/(2.*g))
		if xi >= S {
			return r
		}
		return State{r.Rho * (ps/r.P + mu2) / (mu2*ps/r.P + 1.), us, ps}
	}
	cs := er.cR * math.Pow(ps/r.P, gm1/(2.*g))
	switch {
	case xi >= r.U+er.cR:
		return r
	case xi <= us+cs:
		return State{r.Rho * math.Pow(ps/r.P, 1./g), us, ps}
	}
	c := 2. / gp1 * (er.cR - 0.5*gm1*(r.U-xi))
	return State{
		Rho: r.Rho * math.Pow(c/er.cR, 2./gm1),
		U:   2. / gp1 * (-er.cR + 0.5*gm1*r.U + xi),
		P:   r.P * math.Pow(c/er.cR, 2.*g/gm1),
	}
}

// Flux is the exact Godunov flux (mass, momentum, energy) through x = x0
func (er *ExactRiemann) Flux() (F [3]float64) {
	var (
		s = er.Sample(0.)
		E = s.P/(er.Gamma-1.) + 0.5*s.Rho*utils.POW(s.U, 2)
	)
	F = [3]float64{s.Rho * s.U, s.Rho*utils.POW(s.U, 2) + s.P, (E + s.P) * s.U}
	return
}

/*
Profile samples the solution at time t on X, with the diaphragm at x0. E is
the specific internal energy.
*/
func (er *ExactRiemann) Profile(t, x0 float64, X []float64) (Rho, P, U, E []float64) {
	Rho = make([]float64, len(X))
	P = make([]float64, len(X))
	U = make([]float64, len(X))
	E = make([]float64, len(X))
	for i, x := range X {
		var s State
		switch {
		case t > 0:
			s = er.Sample((x - x0) / t)
		case x < x0:
			s = er.Left
		default:
			s = er.Right
		}
		Rho[i], P[i], U[i] = s.Rho, s.P, s.U
		E[i] = s.P / ((er.Gamma - 1.) * s.Rho)
	}
	return
}

/*
WaveProfile samples the solution at time t on [xMin, xMax] with the diaphragm
midway. Points sit either side of each discontinuity and across each
rarefaction fan so a plot shows the wave structure.
*/
func (er *ExactRiemann) WaveProfile(t, xMin, xMax float64) (X, Rho, P, U, E []float64) {
	var (
		g      = er.Gamma
		l, r   = er.Left, er.Right
		ps, us = er.PStar, er.UStar
		x0     = 0.5 * (xMin + xMax)
		tol    = 1.e-8
		nFan   = 10
		edges  []float64
	)
	jump := func(S float64) {
		edges = append(edges, x0+S*t-tol, x0+S*t+tol)
	}
	fan := func(head, tail float64) {
		for i := 0; i <= nFan; i++ {
			edges = append(edges, x0+(head+float64(i)*(tail-head)/float64(nFan))*t)
		}
	}
	if ps > l.P {
		jump(l.U - er.cL*math.Sqrt((g+1.)/(2.*g)*ps/l.P+(g-1.)/(2.*g)))
	} else {
		fan(l.U-er.cL, us-er.cL*math.Pow(ps/l.P, (g-1.)/(2.*g)))
	}
	jump(us)
	if ps > r.P {
		jump(r.U + er.cR*math.Sqrt((g+1.)/(2.*g)*ps/r.P+(g-1.)/(2.*g)))
	} else {
		fan(us+er.cR*math.Pow(ps/r.P, (g-1.)/(2.*g)), r.U+er.cR)
	}
	X = []float64{xMin}
	for _, x := range edges {
		if x > xMin && x < xMax {
			X = append(X, x)
		}
	}
	X = append(X, xMax)
	Rho, P, U, E = er.Profile(t, x0, X)
	return
}
