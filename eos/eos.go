package eos

import (
	"fmt"
	"strings"
)

// InputMode selects which thermodynamic variable accompanies density on input
type InputMode uint8

const (
	InputRT InputMode = iota // density, temperature
	InputRE                  // density, specific internal energy
	InputRP                  // density, pressure
)

func (im InputMode) String() string {
	return [...]string{"RT", "RE", "RP"}[im]
}

// Thermo is the result of an EOS evaluation. E is specific internal energy.
type Thermo struct {
	P, E, T float64
	Cs      float64
	Gamma1  float64
}

// EquationOfState is consumed by the Riemann solver. Implementations must be
// safe to call concurrently from many lanes and must always return a usable
// state.
type EquationOfState interface {
	Evaluate(mode InputMode, rho, value float64, species []float64) (th Thermo)
}

type EOSType uint8

const (
	EOS_GammaLaw EOSType = iota
	EOS_Stiffened
)

var (
	EOSNames = map[string]EOSType{
		"gamma":     EOS_GammaLaw,
		"gammalaw":  EOS_GammaLaw,
		"ideal":     EOS_GammaLaw,
		"stiffened": EOS_Stiffened,
	}
	EOSPrintNames = []string{"Gamma Law", "Stiffened Gas"}
)

func (et EOSType) Print() (txt string) {
	txt = EOSPrintNames[et]
	return
}

func NewEOSType(label string) (et EOSType, err error) {
	var (
		ok bool
	)
	label = strings.ToLower(label)
	if et, ok = EOSNames[label]; !ok {
		err = fmt.Errorf("unable to use equation of state named %s", label)
	}
	return
}
