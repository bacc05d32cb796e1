package diagnostics

import "github.com/notargets/riemann/riemann"

// Multi fans each event out to every non-nil sink in order
type Multi []riemann.DiagnosticSink

func (ms Multi) Record(ev riemann.Event) {
	for _, s := range ms {
		if s != nil {
			s.Record(ev)
		}
	}
}
