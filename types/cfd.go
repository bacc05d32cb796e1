package types

import (
	"fmt"
	"strings"
)

//go:generate stringer -type=BCFLAG

// BCFLAG is the physical boundary condition applied at a domain edge
type BCFLAG uint8

const (
	BC_None BCFLAG = iota // Interior face, no physical boundary
	BC_Inflow
	BC_Outflow
	BC_Symmetry
	BC_SlipWall
	BC_NoSlipWall
	BC_Periodic
	BC_Far
)

var BCNameMap = map[string]BCFLAG{
	"none":       BC_None,
	"interior":   BC_None,
	"inflow":     BC_Inflow,
	"in":         BC_Inflow,
	"outflow":    BC_Outflow,
	"out":        BC_Outflow,
	"symmetry":   BC_Symmetry,
	"sym":        BC_Symmetry,
	"slip":       BC_SlipWall,
	"slipwall":   BC_SlipWall,
	"wall":       BC_NoSlipWall,
	"noslipwall": BC_NoSlipWall,
	"periodic":   BC_Periodic,
	"far":        BC_Far,
}

var bcPrintNames = []string{
	"None", "Inflow", "Outflow", "Symmetry", "SlipWall", "NoSlipWall", "Periodic", "Far",
}

func (bc BCFLAG) String() string {
	if int(bc) < len(bcPrintNames) {
		return bcPrintNames[bc]
	}
	return fmt.Sprintf("BCFLAG(%d)", bc)
}

// IsReflecting is true for conditions that admit no normal mass flux through the face
func (bc BCFLAG) IsReflecting() bool {
	switch bc {
	case BC_Symmetry, BC_SlipWall, BC_NoSlipWall:
		return true
	}
	return false
}

func NewBCFLAG(label string) (bc BCFLAG, err error) {
	var (
		ok bool
	)
	if len(label) == 0 {
		return BC_None, nil
	}
	if bc, ok = BCNameMap[strings.ToLower(label)]; !ok {
		err = fmt.Errorf("unknown boundary condition %s", label)
	}
	return
}
