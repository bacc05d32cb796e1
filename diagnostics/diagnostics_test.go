package diagnostics

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/riemann/eos"
	"github.com/notargets/riemann/riemann"
)

func sodFaces(s *riemann.Solver, n int) (faces []riemann.Interface) {
	var (
		l = riemann.PrimitiveState{Rho: 1., P: 1., RhoE: 2.5}
		r = riemann.PrimitiveState{Rho: 0.125, P: 0.1, RhoE: 0.25}
	)
	faces = make([]riemann.Interface, n)
	for k := range faces {
		faces[k] = riemann.Interface{Left: l, Right: r, AuxLeft: s.Thermo(&l), AuxRight: s.Thermo(&r)}
	}
	return
}

func TestLogger(t *testing.T) {
	var (
		buf bytes.Buffer
		log = slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		lg  = NewLogger(log)
	)
	s, err := riemann.NewSolver(riemann.DefaultConfig(), eos.NewGammaLaw(1.4))
	require.NoError(t, err)

	faces := sodFaces(s, 2)
	faces[0].Left = riemann.PrimitiveState{Rho: 1., P: 0., RhoE: -1.}
	faces[0].AuxLeft = riemann.AuxThermo{}
	for k := range faces {
		_, err = s.Solve(&faces[k], &riemann.Diagnostics{Sink: lg})
		require.NoError(t, err)
	}

	var (
		lines = strings.Split(strings.TrimSpace(buf.String()), "\n")
		msgs  []string
	)
	for _, line := range lines {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		assert.Equal(t, "riemann", rec["component"])
		msgs = append(msgs, rec["msg"].(string))
		if rec["msg"] == "input state repaired at temperature floor" {
			assert.Equal(t, "WARN", rec["level"])
			assert.Equal(t, "left", rec["side"])
			assert.Equal(t, -1., rec["rhoe_in"])
		}
	}
	assert.Contains(t, msgs, "input state repaired at temperature floor")
	assert.Contains(t, msgs, "secant iteration converged")

	// failures are logged at error level
	buf.Reset()
	lg.Record(riemann.Event{Kind: riemann.EventNonConverged, Iterations: 12, PStar: 0.3})
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), `"iterations":12`)
}

func TestMetrics(t *testing.T) {
	var (
		reg = prometheus.NewRegistry()
		m   = NewMetrics(reg)
	)
	cfg := riemann.DefaultConfig()
	s, err := riemann.NewSolver(cfg, eos.NewGammaLaw(1.4))
	require.NoError(t, err)

	faces := sodFaces(s, 40)
	out := make([]riemann.Result, len(faces))
	require.NoError(t, s.SolveBatch(context.Background(), faces, out, 4, &riemann.Diagnostics{Sink: m}))

	assert.Equal(t, 40., testutil.ToFloat64(m.events.WithLabelValues("converged")))
	assert.Equal(t, 0., testutil.ToFloat64(m.events.WithLabelValues("degraded")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.iterations))

	m.Record(riemann.Event{Kind: riemann.EventRepair, Side: riemann.Right})
	assert.Equal(t, 1., testutil.ToFloat64(m.repairs.WithLabelValues("right")))
	assert.Equal(t, 1., testutil.ToFloat64(m.events.WithLabelValues("repair")))

	// collectors are registered with the caller's registry
	mfs, err := reg.Gather()
	require.NoError(t, err)
	var names []string
	for _, mf := range mfs {
		names = append(names, mf.GetName())
	}
	assert.Contains(t, names, "riemann_events_total")
	assert.Contains(t, names, "riemann_star_iterations")

	// an unregistered set of collectors does not collide
	assert.NotPanics(t, func() { NewMetrics(nil) })
}

func TestMulti(t *testing.T) {
	var (
		buf bytes.Buffer
		lg  = NewLogger(slog.New(slog.NewTextHandler(&buf, nil)))
		m   = NewMetrics(nil)
		ms  = Multi{lg, nil, m}
	)
	ms.Record(riemann.Event{Kind: riemann.EventDegraded, Iterations: 12})
	assert.Contains(t, buf.String(), "using linear estimate")
	assert.Equal(t, 1., testutil.ToFloat64(m.events.WithLabelValues("degraded")))
}
