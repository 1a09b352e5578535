package id3

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog2(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{1, 0},
		{0.5, -1},
		{0.125, -3},
		{8, 3},
		{0.75, -0.4150374992788438},
		{3, 1.584962500721156},
		{10, 3.321928094887362},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, log2(tt.x), "log2(%v)", tt.x)
	}
}

func TestLog2_CloseToMathLog2(t *testing.T) {
	for n := 1; n <= 40; n++ {
		for c := 1; c <= n; c++ {
			p := float64(c) / float64(n)
			got, want := log2(p), math.Log2(p)
			assert.InDelta(t, want, got, 4e-16*math.Max(1, math.Abs(want)), "log2(%d/%d)", c, n)
		}
	}
}

func TestLog2_Degenerate(t *testing.T) {
	assert.True(t, math.IsInf(log2(0), -1))
	assert.True(t, math.IsNaN(log2(-1)))
	assert.True(t, math.IsInf(log2(math.Inf(1)), 1))
}
