package riemann

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (rs *recordingSink) Record(ev Event) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.events = append(rs.events, ev)
}

func (rs *recordingSink) byKind(kind EventKind) (evs []Event) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	for _, ev := range rs.events {
		if ev.Kind == kind {
			evs = append(evs, ev)
		}
	}
	return
}

func TestIterationTrace(t *testing.T) {
	var (
		cfg = DefaultConfig()
		tr  = NewIterationTrace(cfg)
	)
	assert.Equal(t, cfg.MaxIterations, cap(tr.Secant))
	assert.Equal(t, 2*cfg.MaxIterations, cap(tr.Bisection))

	s := newTestSolver(t, cfg)
	sink := &recordingSink{}
	diag := &Diagnostics{Trace: tr, Sink: sink}
	res, err := s.Solve(sodInterface(s), diag)
	require.NoError(t, err)
	require.Len(t, tr.Secant, res.Star.Iterations)
	assert.Equal(t, res.Star.P, tr.Secant[len(tr.Secant)-1])
	assert.InDelta(t, 0.3013562405596973, tr.Secant[0], 1.e-12)

	conv := sink.byKind(EventConverged)
	require.Len(t, conv, 1)
	assert.Equal(t, res.Star.Iterations, conv[0].Iterations)
	assert.Equal(t, res.Star.P, conv[0].PStar)

	// a second solve starts from an empty trace
	_, err = s.Solve(newTestInterface(s, gasState(1., 0., 1.), gasState(1., 0., 1.)), diag)
	require.NoError(t, err)
	assert.Len(t, tr.Secant, 2)
	assert.Empty(t, tr.Bisection)

	// nil receivers are no-ops
	var nilDiag *Diagnostics
	assert.Nil(t, nilDiag.trace())
	nilDiag.record(Event{})
	var nilTrace *IterationTrace
	nilTrace.reset()
	nilTrace.addSecant(1.)
	nilTrace.addBisection(1.)

	assert.Equal(t, "non-converged", EventNonConverged.String())
	assert.Equal(t, "bisection", StarBisection.String())
	assert.Equal(t, "right", Right.String())
}
