package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/riemann/eos"
	"github.com/notargets/riemann/riemann"
	"github.com/notargets/riemann/types"
)

var sodDeck = []byte(`
Title: Sod Shock Tube
EOS: gamma
Gamma: 1.4
Solver: hllc
Policy: bisection
MaxIterations: 8
Tolerance: 1.e-8
Left:
  Rho: 1.
  U: 0.
  P: 1.
Right:
  Rho: 0.125
  U: 0.
  P: 0.1
Compare: sod
`)

func TestParse(t *testing.T) {
	var (
		ip InputParametersRiemann
	)
	require.NoError(t, ip.Parse(sodDeck))
	ip.Print()
	assert.Equal(t, "Sod Shock Tube", ip.Title)
	assert.Equal(t, 0.125, ip.Right.Rho)
	assert.Equal(t, 0.1, ip.Right.P)
	assert.Equal(t, "sod", ip.Compare)

	cfg, err := ip.Config(riemann.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, riemann.Solver_HLLC, cfg.Solver)
	assert.Equal(t, riemann.Policy_BisectionRetry, cfg.Policy)
	assert.Equal(t, 8, cfg.MaxIterations)
	assert.Equal(t, 1.e-8, cfg.Tolerance)
	// untouched options keep the defaults
	assert.Equal(t, riemann.DefaultConfig().PressureFloor, cfg.PressureFloor)

	et, err := ip.EOSType()
	require.NoError(t, err)
	assert.Equal(t, "Gamma Law", et.Print())
	EOS, err := ip.NewEOS()
	require.NoError(t, err)
	assert.IsType(t, &eos.GammaLaw{}, EOS)

	s, err := riemann.NewSolver(cfg, EOS)
	require.NoError(t, err)
	in, err := ip.Interface(s)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, in.Left.RhoE, 1.e-12)
	assert.InDelta(t, 0.25, in.Right.RhoE, 1.e-12)
	assert.InDelta(t, 1.4, in.AuxLeft.Gamma, 1.e-14)
	assert.False(t, in.Boundary.Suppress())

	res, err := s.Solve(&in, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.43026034786179024, res.Flux.Rho, 1.e-9)
	assert.InDelta(t, 1.1617029392268339, res.Flux.Etot, 1.e-9)
}

func TestDeckOptions(t *testing.T) {
	{ // Wall at the high edge with a stiffened gas
		var ip InputParametersRiemann
		require.NoError(t, ip.Parse([]byte(`
EOS: stiffened
Gamma: 4.4
PInf: 6.
Boundary: SlipWall
BoundaryAt: hi
Left: {Rho: 1., U: 0.5, P: 2.}
Right: {Rho: 1., U: 0.5, P: 2.}
`)))
		ip.Print()
		EOS, err := ip.NewEOS()
		require.NoError(t, err)
		assert.IsType(t, &eos.StiffenedGas{}, EOS)
		cfg, err := ip.Config(riemann.DefaultConfig())
		require.NoError(t, err)
		s, err := riemann.NewSolver(cfg, EOS)
		require.NoError(t, err)
		in, err := ip.Interface(s)
		require.NoError(t, err)
		assert.Equal(t, types.BC_SlipWall, in.Boundary.Hi)
		assert.True(t, in.Boundary.AtHi)
		assert.True(t, in.Boundary.Suppress())
		res, err := s.Solve(&in, nil)
		require.NoError(t, err)
		assert.Equal(t, 0., res.State.U)
	}
	{ // Bad labels are reported
		for _, deck := range []string{
			"Solver: roe",
			"Policy: retry",
			"MaxIterations: -1",
		} {
			var ip InputParametersRiemann
			require.NoError(t, ip.Parse([]byte(deck)))
			_, err := ip.Config(riemann.DefaultConfig())
			assert.ErrorIs(t, err, riemann.ErrConfiguration, deck)
		}
		var ip InputParametersRiemann
		require.NoError(t, ip.Parse([]byte("EOS: vanderwaals")))
		_, err := ip.NewEOS()
		assert.Error(t, err)
		require.NoError(t, ip.Parse([]byte("EOS: gamma\nBoundary: moat")))
		EOS, err := ip.NewEOS()
		require.NoError(t, err)
		s, err := riemann.NewSolver(riemann.DefaultConfig(), EOS)
		require.NoError(t, err)
		_, err = ip.Interface(s)
		assert.Error(t, err)
	}
}
