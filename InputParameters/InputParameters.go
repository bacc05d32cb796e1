package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/riemann/eos"
	"github.com/notargets/riemann/riemann"
	"github.com/notargets/riemann/types"
)

// SideState is one side of the interface as written in the input deck
type SideState struct {
	Rho     float64   `json:"Rho"`
	U       float64   `json:"U"`
	V1      float64   `json:"V1"`
	V2      float64   `json:"V2"`
	P       float64   `json:"P"`
	Species []float64 `json:"Species"`
	Passive []float64 `json:"Passive"`
}

// Parameters obtained from the YAML input file. Zero valued solver options
// keep the defaults handed to Config.
type InputParametersRiemann struct {
	Title          string    `json:"Title"`
	EOS            string    `json:"EOS"` // gamma or stiffened
	Gamma          float64   `json:"Gamma"`
	PInf           float64   `json:"PInf"`
	MolecularMass  []float64 `json:"MolecularMass"` // per species, gamma law only
	Left           SideState `json:"Left"`
	Right          SideState `json:"Right"`
	Boundary       string    `json:"Boundary"`   // BC type of a domain edge at the face
	BoundaryAt     string    `json:"BoundaryAt"` // lo or hi
	Solver         string    `json:"Solver"`
	Policy         string    `json:"Policy"`
	MaxIterations  int       `json:"MaxIterations"`
	Tolerance      float64   `json:"Tolerance"`
	DensityFloor   float64   `json:"DensityFloor"`
	PressureFloor  float64   `json:"PressureFloor"`
	EOSConsistency bool      `json:"EOSConsistency"`
	ComputeGammas  bool      `json:"ComputeGammas"`
	Compare        string    `json:"Compare"`     // sod: compare against the exact ideal gas solution
	ProfileTime    float64   `json:"ProfileTime"` // with Compare, print the exact profile on [0,1] at this time
}

func (ip *InputParametersRiemann) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParametersRiemann) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	if et, err := ip.EOSType(); err == nil {
		fmt.Printf("[%s]\t\t= EOS\n", et.Print())
	} else {
		fmt.Printf("[%s]\t\t\t= EOS\n", ip.EOS)
	}
	fmt.Printf("%8.5f\t\t= Gamma\n", ip.Gamma)
	if ip.PInf != 0 {
		fmt.Printf("%8.5f\t\t= PInf\n", ip.PInf)
	}
	fmt.Printf("[%s]\t\t\t= Solver\n", ip.Solver)
	if len(ip.Policy) != 0 {
		fmt.Printf("[%s]\t\t= Non Convergence Policy\n", ip.Policy)
	}
	if ip.MaxIterations != 0 {
		fmt.Printf("[%d]\t\t\t\t= Max Iterations\n", ip.MaxIterations)
	}
	if ip.Tolerance != 0 {
		fmt.Printf("%8.2e\t\t= Tolerance\n", ip.Tolerance)
	}
	if len(ip.Boundary) != 0 {
		fmt.Printf("[%s] at %s\t\t= Boundary\n", ip.Boundary, ip.BoundaryAt)
	}
	fmt.Printf("Left  = %+v\n", ip.Left)
	fmt.Printf("Right = %+v\n", ip.Right)
}

// Config overlays the deck's solver options on cfg
func (ip *InputParametersRiemann) Config(cfg riemann.Config) (out riemann.Config, err error) {
	out = cfg
	if len(ip.Solver) != 0 {
		if out.Solver, err = riemann.NewSolverKind(ip.Solver); err != nil {
			return
		}
	}
	if len(ip.Policy) != 0 {
		if out.Policy, err = riemann.NewNonConvergencePolicy(ip.Policy); err != nil {
			return
		}
	}
	if ip.MaxIterations != 0 {
		out.MaxIterations = ip.MaxIterations
	}
	if ip.Tolerance != 0 {
		out.Tolerance = ip.Tolerance
	}
	if ip.DensityFloor != 0 {
		out.DensityFloor = ip.DensityFloor
	}
	if ip.PressureFloor != 0 {
		out.PressureFloor = ip.PressureFloor
	}
	out.UseEOSConsistencyPass = out.UseEOSConsistencyPass || ip.EOSConsistency
	out.ComputeGammas = out.ComputeGammas || ip.ComputeGammas
	err = out.Validate()
	return
}

// EOSType resolves the deck's EOS label, a gamma law when absent
func (ip *InputParametersRiemann) EOSType() (et eos.EOSType, err error) {
	if len(ip.EOS) == 0 {
		return eos.EOS_GammaLaw, nil
	}
	return eos.NewEOSType(ip.EOS)
}

func (ip *InputParametersRiemann) NewEOS() (EOS eos.EquationOfState, err error) {
	var (
		et    eos.EOSType
		Gamma = ip.Gamma
	)
	if Gamma == 0 {
		Gamma = 1.4
	}
	if !(Gamma > 1) {
		err = fmt.Errorf("gamma must exceed 1, have %g", Gamma)
		return
	}
	if et, err = ip.EOSType(); err != nil {
		return
	}
	switch et {
	case eos.EOS_Stiffened:
		EOS = eos.NewStiffenedGas(Gamma, ip.PInf)
	default:
		gl := eos.NewGammaLaw(Gamma)
		gl.A = ip.MolecularMass
		EOS = gl
	}
	return
}

func (ip *InputParametersRiemann) primitive(EOS eos.EquationOfState, ss SideState) (q riemann.PrimitiveState) {
	q = riemann.PrimitiveState{
		Rho:     ss.Rho,
		U:       ss.U,
		V1:      ss.V1,
		V2:      ss.V2,
		P:       ss.P,
		Species: ss.Species,
		Passive: ss.Passive,
	}
	if ss.Rho > 0 {
		q.RhoE = ss.Rho * EOS.Evaluate(eos.InputRP, ss.Rho, ss.P, ss.Species).E
	}
	return
}

// Interface assembles the face described by the deck for solver s
func (ip *InputParametersRiemann) Interface(s *riemann.Solver) (in riemann.Interface, err error) {
	var (
		bc types.BCFLAG
	)
	in.Left = ip.primitive(s.EOS(), ip.Left)
	in.Right = ip.primitive(s.EOS(), ip.Right)
	in.AuxLeft = s.Thermo(&in.Left)
	in.AuxRight = s.Thermo(&in.Right)
	if bc, err = types.NewBCFLAG(ip.Boundary); err != nil {
		return
	}
	// the face is an edge of a one cell domain
	switch ip.BoundaryAt {
	case "", "lo", "Lo", "LO":
		in.Boundary = riemann.NewBoundaryFlags(bc, types.BC_None, 0, 0, 0)
	case "hi", "Hi", "HI":
		in.Boundary = riemann.NewBoundaryFlags(types.BC_None, bc, 1, 0, 0)
	default:
		err = fmt.Errorf("BoundaryAt must be lo or hi, have %s", ip.BoundaryAt)
	}
	return
}
