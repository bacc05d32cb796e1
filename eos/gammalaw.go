package eos

import "math"

// GammaLaw is an ideal gas p = rho*R*T/mu, e = p/((Gamma-1)*rho).
// When A (per-species molecular weights) is set, 1/mu = sum(X_i/A_i).
type GammaLaw struct {
	Gamma float64
	Rgas  float64
	A     []float64
}

func NewGammaLaw(Gamma float64) (gl *GammaLaw) {
	gl = &GammaLaw{
		Gamma: Gamma,
		Rgas:  1,
	}
	return
}

func (gl *GammaLaw) specificR(species []float64) (R float64) {
	if len(gl.A) == 0 || len(species) != len(gl.A) {
		return gl.Rgas
	}
	var oomu float64
	for i, X := range species {
		oomu += X / gl.A[i]
	}
	if oomu <= 0 {
		return gl.Rgas
	}
	R = gl.Rgas * oomu
	return
}

func (gl *GammaLaw) Evaluate(mode InputMode, rho, value float64, species []float64) (th Thermo) {
	var (
		GM1 = gl.Gamma - 1.
		R   = gl.specificR(species)
	)
	switch mode {
	case InputRT:
		th.T = value
		th.P = rho * R * th.T
		th.E = th.P / (GM1 * rho)
	case InputRE:
		th.E = value
		th.P = GM1 * rho * th.E
		th.T = th.P / (rho * R)
	case InputRP:
		th.P = value
		th.E = th.P / (GM1 * rho)
		th.T = th.P / (rho * R)
	}
	th.Gamma1 = gl.Gamma
	th.Cs = math.Sqrt(math.Abs(gl.Gamma * th.P / rho))
	return
}
