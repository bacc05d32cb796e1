package riemann

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/notargets/riemann/utils"
)

/*
SolveBatch solves every face of a sweep, partitioned into ParallelDegree
contiguous buckets. When diag carries a Trace each bucket gets its own
IterationTrace; the sink in diag, if any, is shared. The first error cancels
the remaining buckets and is returned wrapped with the failing face index and
its bucket position.
*/
func (s *Solver) SolveBatch(ctx context.Context, faces []Interface, out []Result,
	ParallelDegree int, diag *Diagnostics) (err error) {
	if len(out) < len(faces) {
		return errors.Errorf("riemann: result slice holds %d of %d faces", len(out), len(faces))
	}
	if len(faces) == 0 {
		return
	}
	var (
		pm     = utils.NewPartitionMap(ParallelDegree, len(faces))
		sink   DiagnosticSink
		traced bool
	)
	if diag != nil {
		sink = diag.Sink
		traced = diag.Trace != nil
	}
	g, gCtx := errgroup.WithContext(ctx)
	for np := 0; np < pm.ParallelDegree; np++ {
		Kmax := pm.GetBucketDimension(np)
		g.Go(func() (err error) {
			laneDiag := &Diagnostics{Sink: sink}
			if traced {
				laneDiag.Trace = NewIterationTrace(s.cfg)
			}
			for kl := 0; kl < Kmax; kl++ {
				k := pm.GetGlobalK(kl, np)
				if err = gCtx.Err(); err != nil {
					return
				}
				if out[k], err = s.Solve(&faces[k], laneDiag); err != nil {
					kLocal, _, bn := pm.GetLocalK(k)
					return errors.Wrapf(err, "face %d (bucket %d, local %d)", k, bn, kLocal)
				}
			}
			return
		})
	}
	err = g.Wait()
	return
}
