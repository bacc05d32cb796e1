package riemann

// ConsState converts a face-frame primitive state into conserved variables
func ConsState(q *PrimitiveState) (U ConservativeState) {
	var (
		ke = 0.5 * (q.U*q.U + q.V1*q.V1 + q.V2*q.V2)
	)
	U = ConservativeState{
		Rho:   q.Rho,
		MomN:  q.Rho * q.U,
		MomT1: q.Rho * q.V1,
		MomT2: q.Rho * q.V2,
		Etot:  q.RhoE + q.Rho*ke,
		Eint:  q.RhoE,
	}
	U.Species = scaled(q.Species, q.Rho)
	U.Passive = scaled(q.Passive, q.Rho)
	return
}

// PhysicalFlux is the Euler flux normal to the face of a conserved state with pressure p
func PhysicalFlux(U *ConservativeState, p float64) (F Flux) {
	var (
		u = U.MomN / U.Rho
	)
	F = Flux{
		Rho:   U.MomN,
		MomN:  U.MomN*u + p,
		MomT1: U.MomT1 * u,
		MomT2: U.MomT2 * u,
		Etot:  (U.Etot + p) * u,
		Eint:  U.Eint * u,
	}
	F.Species = scaled(U.Species, u)
	F.Passive = scaled(U.Passive, u)
	return
}

// FluxFromState is PhysicalFlux(ConsState(q), q.P)
func FluxFromState(q *PrimitiveState) (F Flux) {
	U := ConsState(q)
	F = PhysicalFlux(&U, q.P)
	return
}

// wallFlux is zero in every component but the normal momentum, which is p.
// U only sizes the scalar slices.
func wallFlux(U *ConservativeState, p float64) (F Flux) {
	F = Flux{MomN: p}
	F.Species = scaled(U.Species, 0.)
	F.Passive = scaled(U.Passive, 0.)
	return
}

// addScaledJump accumulates F += S*(Ua - Ub)
func (F *Flux) addScaledJump(S float64, Ua, Ub *ConservativeState) {
	F.Rho += S * (Ua.Rho - Ub.Rho)
	F.MomN += S * (Ua.MomN - Ub.MomN)
	F.MomT1 += S * (Ua.MomT1 - Ub.MomT1)
	F.MomT2 += S * (Ua.MomT2 - Ub.MomT2)
	F.Etot += S * (Ua.Etot - Ub.Etot)
	F.Eint += S * (Ua.Eint - Ub.Eint)
	for i := range F.Species {
		F.Species[i] += S * (Ua.Species[i] - Ub.Species[i])
	}
	for i := range F.Passive {
		F.Passive[i] += S * (Ua.Passive[i] - Ub.Passive[i])
	}
}

func scaled(x []float64, a float64) (y []float64) {
	if x == nil {
		return
	}
	y = make([]float64, len(x))
	for i, v := range x {
		y[i] = a * v
	}
	return
}
