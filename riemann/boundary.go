package riemann

import "github.com/notargets/riemann/types"

/*
BoundaryFlags describes where a face sits relative to the domain edges in the
sweep direction. Lo and Hi are the physical boundary types at the low and high
domain edges; AtLo/AtHi mark faces lying on them.
*/
type BoundaryFlags struct {
	Lo, Hi     types.BCFLAG
	AtLo, AtHi bool
}

// NewBoundaryFlags locates face index face within cells [domLo, domHi]; faces
// are numbered so face domLo is the low edge and domHi+1 the high edge.
func NewBoundaryFlags(lo, hi types.BCFLAG, face, domLo, domHi int) (bf BoundaryFlags) {
	bf = BoundaryFlags{
		Lo:   lo,
		Hi:   hi,
		AtLo: face == domLo,
		AtHi: face == domHi+1,
	}
	return
}

// Suppress reports whether the normal velocity through the face must vanish
func (bf BoundaryFlags) Suppress() bool {
	return (bf.AtLo && bf.Lo.IsReflecting()) || (bf.AtHi && bf.Hi.IsReflecting())
}
