package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMath(t *testing.T) {
	for _, x := range []float64{0.5, 1.3, -2., 3.7} {
		for p := -10; p <= 10; p++ {
			assert.InEpsilon(t, math.Pow(x, float64(p)), POW(x, p), 1.e-14)
		}
	}
	assert.Equal(t, 1., POW(0., 0))
	assert.Equal(t, 0.5, Clamp(0.5, 0., 1.))
	assert.Equal(t, 1., Clamp(2., 0., 1.))
	assert.Equal(t, 0., Clamp(math.NaN(), 0., 1.))
	assert.True(t, IsNan([]float64{1., math.NaN()}))
	assert.True(t, IsNan([3]float64{0., 0., math.NaN()}))
	assert.False(t, IsNan(1.))
	assert.Contains(t, GetMemUsage(), "MiB")
}
