package diagnostics

import (
	"log/slog"

	"github.com/notargets/riemann/riemann"
)

// Logger writes solver events to a structured logger. Converged solves are
// logged at debug level only.
type Logger struct {
	log *slog.Logger
}

func NewLogger(log *slog.Logger) (lg *Logger) {
	if log == nil {
		log = slog.Default()
	}
	lg = &Logger{log: log.With("component", "riemann")}
	return
}

func (lg *Logger) Record(ev riemann.Event) {
	switch ev.Kind {
	case riemann.EventRepair:
		lg.log.Warn("input state repaired at temperature floor",
			"side", ev.Side.String(),
			"rho", ev.Before.Rho,
			"p_in", ev.Before.P,
			"rhoe_in", ev.Before.RhoE,
			"p_out", ev.After.P,
			"rhoe_out", ev.After.RhoE)
	case riemann.EventConverged:
		lg.log.Debug("secant iteration converged",
			"iterations", ev.Iterations, "pstar", ev.PStar)
	case riemann.EventDegraded:
		lg.log.Warn("secant iteration did not converge, using linear estimate",
			"iterations", ev.Iterations, "pstar", ev.PStar)
	case riemann.EventBisection:
		lg.log.Info("secant iteration did not converge, recovered by bisection",
			"iterations", ev.Iterations, "pstar", ev.PStar)
	case riemann.EventNonConverged:
		lg.log.Error("non-convergence in the Riemann solver",
			"iterations", ev.Iterations, "pstar", ev.PStar)
	}
}
