package eos

import "math"

/*
StiffenedGas models liquids and dense media:

	p = (Gamma-1)*rho*e - Gamma*PInf
	e = Cv*T + PInf/rho,  Cv = Rgas/(Gamma-1)

so that p/(rho e) + 1 differs from Gamma1 = Gamma*(p+PInf)/p, which is the
non-ideal case the CG iteration is built for.
*/
type StiffenedGas struct {
	Gamma float64
	PInf  float64
	Rgas  float64
}

func NewStiffenedGas(Gamma, PInf float64) (sg *StiffenedGas) {
	sg = &StiffenedGas{
		Gamma: Gamma,
		PInf:  PInf,
		Rgas:  1,
	}
	return
}

func (sg *StiffenedGas) Evaluate(mode InputMode, rho, value float64, species []float64) (th Thermo) {
	var (
		GM1 = sg.Gamma - 1.
		Cv  = sg.Rgas / GM1
	)
	switch mode {
	case InputRT:
		th.T = value
		th.E = Cv*th.T + sg.PInf/rho
		th.P = rho*sg.Rgas*th.T - sg.PInf
	case InputRE:
		th.E = value
		th.P = GM1*rho*th.E - sg.Gamma*sg.PInf
		th.T = (th.E - sg.PInf/rho) / Cv
	case InputRP:
		th.P = value
		th.E = (th.P + sg.Gamma*sg.PInf) / (GM1 * rho)
		th.T = (th.E - sg.PInf/rho) / Cv
	}
	th.Cs = math.Sqrt(math.Abs(sg.Gamma * (th.P + sg.PInf) / rho))
	if th.P != 0 {
		th.Gamma1 = sg.Gamma * (th.P + sg.PInf) / th.P
	} else {
		th.Gamma1 = sg.Gamma
	}
	return
}
