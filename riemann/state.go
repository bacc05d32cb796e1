package riemann

// PrimitiveState is one side of an interface, expressed in the face frame:
// U is normal to the face, V1 and V2 are the transverse components.
type PrimitiveState struct {
	Rho     float64
	U       float64
	V1, V2  float64
	P       float64
	RhoE    float64   // internal energy density
	Gamma1  float64   // reconstructed Gamma1, used when Config.UseReconstructedGamma1 is set
	Species []float64 // mass fractions, handed to the EOS
	Passive []float64 // other advected scalars
}

// GammaE is the effective index relating pressure to internal energy
func (q *PrimitiveState) GammaE() float64 {
	return q.P/q.RhoE + 1.
}

// Copy does not share the Species and Passive slices with q
func (q PrimitiveState) Copy() (qc PrimitiveState) {
	qc = q
	if q.Species != nil {
		qc.Species = append([]float64(nil), q.Species...)
	}
	if q.Passive != nil {
		qc.Passive = append([]float64(nil), q.Passive...)
	}
	return
}

// AuxThermo carries the cell-centered sound speed and Gamma1 adjacent to the face
type AuxThermo struct {
	C     float64
	Gamma float64
}

// Side labels which input state an event or value refers to
type Side uint8

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// StarMethod records how the star state was finally obtained
type StarMethod uint8

const (
	StarLinear    StarMethod = iota // CGF / HLLC two-shock estimate
	StarSecant                      // CG secant converged
	StarDegraded                    // CG failed, linear estimate returned
	StarBisection                   // CG failed, bisection converged
	StarFailed                      // CG and any retry failed
)

func (sm StarMethod) String() string {
	return [...]string{"linear", "secant", "degraded", "bisection", "failed"}[sm]
}

type StarState struct {
	P, U       float64
	GammaStar  float64
	Converged  bool
	Iterations int
	Method     StarMethod
}

// ConservativeState is also used to hold a flux vector
type ConservativeState struct {
	Rho                float64
	MomN, MomT1, MomT2 float64
	Etot, Eint         float64
	Species            []float64
	Passive            []float64
}

type Flux = ConservativeState

// Interface is the full per-face input of a solve
type Interface struct {
	Left, Right       PrimitiveState
	AuxLeft, AuxRight AuxThermo
	Boundary          BoundaryFlags
}

type Result struct {
	Kind  SolverKind
	State PrimitiveState // sampled interface state; for HLLC the CGF p and u
	Flux  Flux           // HLLC only
	Star  StarState
}
