package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/riemann/InputParameters"
	"github.com/notargets/riemann/riemann"
)

func parseDeck(t *testing.T, deck string) (ip *InputParameters.InputParametersRiemann) {
	ip = &InputParameters.InputParametersRiemann{}
	require.NoError(t, ip.Parse([]byte(deck)))
	return
}

func TestRunTube(t *testing.T) {
	var (
		err error
		buf bytes.Buffer
	)
	{ // The example deck solves Sod with CG and compares with the exact solution
		ip := parseDeck(t, exampleTubeFile)
		assert.Equal(t, "Sod Shock Tube", ip.Title)
		assert.Equal(t, 0.125, ip.Right.Rho)
		res, err := RunTube(ip, riemann.DefaultConfig(), nil, &buf)
		require.NoError(t, err)
		assert.Equal(t, riemann.StarSecant, res.Star.Method)
		assert.InDelta(t, 0.3032537055562631, res.Star.P, 1.e-8)
		assert.Contains(t, buf.String(), "Exact: P* =   0.30313018 U* =   0.92745262")
		assert.Contains(t, buf.String(), "Relative error")
		// 17 profile rows at t = 0.2, ending at the undisturbed right state
		assert.Contains(t, buf.String(), "Exact profile at t = 0.2")
		assert.Contains(t, buf.String(), "  1.00000000   0.12500000   0.00000000   0.10000000   2.00000000\n")
		assert.Equal(t, 17, strings.Count(buf.String()[strings.Index(buf.String(), "Exact profile"):], "\n")-2)
	}
	{ // HLLC also prints both fluxes
		buf.Reset()
		ip := parseDeck(t, exampleTubeFile)
		ip.Solver = "hllc"
		_, err = RunTube(ip, riemann.DefaultConfig(), nil, &buf)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Flux: Rho =   0.43026035")
		assert.Contains(t, buf.String(), "Exact flux: Rho =   0.39539107")
	}
	{ // Fatal non-convergence is returned with its report
		buf.Reset()
		ip := parseDeck(t, exampleTubeFile)
		ip.Policy = "fatal"
		ip.MaxIterations = 5
		ip.Tolerance = 1.e-9
		_, err = RunTube(ip, riemann.DefaultConfig(), nil, &buf)
		require.ErrorIs(t, err, riemann.ErrNonConvergence)
		var nce *riemann.NonConvergenceError
		require.ErrorAs(t, err, &nce)
		assert.Contains(t, nce.Report(), "pstar history: 0 3.0135624056e-01")
	}
	{ // The exact comparison needs a gamma law gas
		ip := parseDeck(t, `
EOS: stiffened
Gamma: 4.4
PInf: 6.
Left: {Rho: 1., U: 0., P: 2.}
Right: {Rho: 0.5, U: 0., P: 1.}
Compare: sod
`)
		_, err = RunTube(ip, riemann.DefaultConfig(), nil, &buf)
		assert.Error(t, err)
		ip.Compare = ""
		_, err = RunTube(ip, riemann.DefaultConfig(), nil, &buf)
		assert.NoError(t, err)
	}
	{ // Deck errors
		ip := parseDeck(t, "Solver: godunov")
		_, err = RunTube(ip, riemann.DefaultConfig(), nil, &buf)
		assert.ErrorIs(t, err, riemann.ErrConfiguration)
	}
}
