package eos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGammaLaw(t *testing.T) {
	var (
		gl  = NewGammaLaw(1.4)
		rho = 0.125
	)
	{ // Mode round trips
		th := gl.Evaluate(InputRP, rho, 0.1, nil)
		assert.InDelta(t, 2., th.E, 1.e-14)
		assert.InDelta(t, 0.8, th.T, 1.e-14)
		assert.InDelta(t, 1.4, th.Gamma1, 1.e-14)
		assert.InDelta(t, 1.0583005244258363, th.Cs, 1.e-14)
		thE := gl.Evaluate(InputRE, rho, th.E, nil)
		assert.InDelta(t, 0.1, thE.P, 1.e-14)
		thT := gl.Evaluate(InputRT, rho, th.T, nil)
		assert.InDelta(t, 0.1, thT.P, 1.e-14)
		assert.InDelta(t, th.E, thT.E, 1.e-14)
	}
	{ // Species molecular weights set the gas constant
		gl.A = []float64{2., 32.}
		th := gl.Evaluate(InputRT, 1., 1., []float64{0.5, 0.5})
		assert.InDelta(t, 0.5/2.+0.5/32., th.P, 1.e-14)
		// mismatched species fall back to Rgas
		th = gl.Evaluate(InputRT, 1., 1., []float64{1.})
		assert.InDelta(t, 1., th.P, 1.e-14)
	}
}

func TestStiffenedGas(t *testing.T) {
	var (
		sg  = NewStiffenedGas(4.4, 6.)
		rho = 1.
	)
	th := sg.Evaluate(InputRP, rho, 2., nil)
	assert.InDelta(t, (2.+4.4*6.)/3.4, th.E, 1.e-13)
	assert.InDelta(t, 4.4*8./2., th.Gamma1, 1.e-13)
	assert.InDelta(t, 2., sg.Evaluate(InputRE, rho, th.E, nil).P, 1.e-13)
	thT := sg.Evaluate(InputRT, rho, th.T, nil)
	assert.InDelta(t, 2., thT.P, 1.e-12)
	assert.InDelta(t, th.E, thT.E, 1.e-12)
	// the effective index differs from Gamma1
	assert.NotEqual(t, th.Gamma1, th.P/(rho*th.E)+1.)
	// zero pressure keeps a finite Gamma1
	assert.Equal(t, 4.4, sg.Evaluate(InputRP, rho, 0., nil).Gamma1)
}

func TestNewEOSType(t *testing.T) {
	et, err := NewEOSType("Stiffened")
	require.NoError(t, err)
	assert.Equal(t, EOS_Stiffened, et)
	assert.Equal(t, "Stiffened Gas", et.Print())
	et, err = NewEOSType("ideal")
	require.NoError(t, err)
	assert.Equal(t, EOS_GammaLaw, et)
	_, err = NewEOSType("tabular")
	assert.Error(t, err)
	assert.Equal(t, "RP", InputRP.String())
}
