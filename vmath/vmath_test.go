package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-0.5))
	assert.Equal(t, 0.25, Clamp01(0.25))
	assert.Equal(t, 1.0, Clamp01(1.5))
}

func TestRandRange(t *testing.T) {
	assert.Equal(t, 2.0, RandRange(0, 2, 4))
	assert.Equal(t, 3.0, RandRange(0.5, 2, 4))
	assert.Equal(t, -1.0, RandRange(0, -1, 1))
}

func TestVec2(t *testing.T) {
	a, b := V2(3, 4), V2(1, 1)
	assert.Equal(t, V2(4, 5), a.Add(b))
	assert.Equal(t, V2(2, 3), a.Sub(b))
	assert.Equal(t, V2(6, 8), a.Scale(2))
	assert.Equal(t, 5.0, Distance(V2(0, 0), a))
	assert.Equal(t, V2(2, 2.5), LerpVec(b, a, 0.5))
}

func TestFromPolar(t *testing.T) {
	v := FromPolar(2, math.Pi/2)
	assert.InDelta(t, 0, v.X, 1e-12)
	assert.InDelta(t, 2, v.Y, 1e-12)
}
