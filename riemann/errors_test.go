package riemann

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func reportFixture() (nce NonConvergenceError) {
	nce = NonConvergenceError{
		Left:          PrimitiveState{Rho: 1., U: 0., P: 1., RhoE: 2.5},
		Right:         PrimitiveState{Rho: 0.125, U: 0., P: 0.1, RhoE: 0.25},
		GammaL:        1.4,
		GammaR:        1.4,
		Cavg:          1.125,
		Csmall:        1.25e-8,
		DensityFloor:  1.e-100,
		PressureFloor: 1.e-100,
		Tolerance:     1.e-9,
		MaxIterations: 3,
		Iterations:    3,
		Policy:        Policy_Fatal,
		PStar:         0.30325364217118667,
	}
	return
}

func TestNonConvergenceReport(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	{
		nce := reportFixture()
		nce.SecantHistory = []float64{0.3013562405596973, 0.303224470231864, 0.30325364217118667}
		g.Assert(t, "fatal_with_trace", []byte(nce.Report()))
	}
	{
		nce := reportFixture()
		g.Assert(t, "fatal_trace_disabled", []byte(nce.Report()))
	}
	{
		nce := reportFixture()
		nce.Policy = Policy_BisectionRetry
		nce.Tolerance = 1.e-12
		nce.MaxIterations = 5
		nce.SecantHistory = []float64{0.3, 0.31, 0.305, 0.3025, 0.30125}
		nce.BisectionHistory = []float64{0.25, 0.125}
		g.Assert(t, "bisection_exhausted", []byte(nce.Report()))
	}
}

func TestErrorMatching(t *testing.T) {
	var (
		nce = reportFixture()
		err error
	)
	err = fmt.Errorf("sweep: %w", &nce)
	assert.True(t, errors.Is(err, ErrNonConvergence))
	assert.False(t, errors.Is(err, ErrConfiguration))
	assert.Contains(t, err.Error(), "after 3 iterations (policy Fatal")

	err = &ConfigurationError{Field: "solver_kind", Value: "roe"}
	assert.True(t, errors.Is(err, ErrConfiguration))
	assert.Equal(t, `riemann: unrecognized solver_kind "roe"`, err.Error())
	err = &ConfigurationError{Field: "tolerance", Value: "0", Reason: "must be positive"}
	assert.Equal(t, `riemann: invalid tolerance "0": must be positive`, err.Error())
}
