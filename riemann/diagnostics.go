package riemann

type EventKind uint8

const (
	EventRepair       EventKind = iota // an input side was re-derived from the EOS at the temperature floor
	EventConverged                     // CG secant loop converged
	EventDegraded                      // CG fell back to the linear estimate
	EventBisection                     // CG fell back to bisection and it converged
	EventNonConverged                  // CG failed under the Fatal policy, or bisection was exhausted
)

func (ek EventKind) String() string {
	return [...]string{"repair", "converged", "degraded", "bisection", "non-converged"}[ek]
}

// Event is handed to a DiagnosticSink; Before/After are only set for repairs
type Event struct {
	Kind          EventKind
	Side          Side
	Iterations    int
	PStar         float64
	Before, After PrimitiveState
}

// DiagnosticSink receives events from many lanes at once and must be safe for
// concurrent use.
type DiagnosticSink interface {
	Record(ev Event)
}

/*
IterationTrace holds the trial star pressures of one solve. It is owned by a
single lane and reused between calls; NewIterationTrace sizes it so Solve
never allocates into it.
*/
type IterationTrace struct {
	Secant    []float64
	Bisection []float64
}

func NewIterationTrace(cfg Config) (tr *IterationTrace) {
	tr = &IterationTrace{
		Secant:    make([]float64, 0, cfg.secantIterations()),
		Bisection: make([]float64, 0, cfg.bisectionIterations()),
	}
	return
}

func (tr *IterationTrace) reset() {
	if tr == nil {
		return
	}
	tr.Secant = tr.Secant[:0]
	tr.Bisection = tr.Bisection[:0]
}

func (tr *IterationTrace) addSecant(p float64) {
	if tr == nil {
		return
	}
	tr.Secant = append(tr.Secant, p)
}

func (tr *IterationTrace) addBisection(p float64) {
	if tr == nil {
		return
	}
	tr.Bisection = append(tr.Bisection, p)
}

// Diagnostics bundles the optional per-call diagnostic resources. A nil
// *Diagnostics, nil Trace or nil Sink disables that part without changing the
// computed result.
type Diagnostics struct {
	Trace *IterationTrace
	Sink  DiagnosticSink
}

func (d *Diagnostics) trace() *IterationTrace {
	if d == nil {
		return nil
	}
	return d.Trace
}

func (d *Diagnostics) record(ev Event) {
	if d == nil || d.Sink == nil {
		return
	}
	d.Sink.Record(ev)
}
