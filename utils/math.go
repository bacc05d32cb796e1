package utils

import (
	"math"
)

// POW is x**pp, multiplied out for small integer powers
func POW(x float64, pp int) (y float64) {
	var (
		p = pp
	)
	if p > 8 || p < -8 {
		return math.Pow(x, float64(p))
	}
	if p < 0 {
		p = -p
	}
	y = 1.
	for sq := x; p > 0; p >>= 1 {
		if p&1 == 1 {
			y *= sq
		}
		sq *= sq
	}
	if pp < 0 {
		y = 1. / y
	}
	return
}

// Clamp limits x to [lo, hi]; a NaN x returns lo
func Clamp(x, lo, hi float64) float64 {
	if !(x >= lo) {
		return lo
	}
	return math.Min(x, hi)
}
