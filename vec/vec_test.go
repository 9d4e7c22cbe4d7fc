package vec_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/noisegrad/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVec2_Arithmetic verifies componentwise Add/Sub/Scale/Dot on Vec2.
func TestVec2_Arithmetic(t *testing.T) {
	a := vec.Vec2{X: 1, Y: 2}
	b := vec.Vec2{X: -3, Y: 0.5}

	assert.Equal(t, vec.Vec2{X: -2, Y: 2.5}, a.Add(b))
	assert.Equal(t, vec.Vec2{X: 4, Y: 1.5}, a.Sub(b))
	assert.Equal(t, vec.Vec2{X: 2, Y: 4}, a.Scale(2))
	assert.Equal(t, -2.0, a.Dot(b))
}

// TestVec3_Arithmetic verifies componentwise Add/Sub/Scale/Dot on Vec3.
func TestVec3_Arithmetic(t *testing.T) {
	a := vec.Vec3{X: 1, Y: 2, Z: 3}
	b := vec.Vec3{X: 0, Y: -1, Z: 2}

	assert.Equal(t, vec.Vec3{X: 1, Y: 1, Z: 5}, a.Add(b))
	assert.Equal(t, vec.Vec3{X: 1, Y: 3, Z: 1}, a.Sub(b))
	assert.Equal(t, 4.0, a.Dot(b))
}

// TestVec4_Arithmetic verifies componentwise Add/Sub/Scale/Dot on Vec4.
func TestVec4_Arithmetic(t *testing.T) {
	a := vec.Vec4{X: 1, Y: 2, Z: 3, W: 4}
	b := vec.Vec4{X: 4, Y: 3, Z: 2, W: 1}

	assert.Equal(t, vec.Vec4{X: 5, Y: 5, Z: 5, W: 5}, a.Add(b))
	assert.Equal(t, 20.0, a.Dot(b))
}

// TestNormalize_UnitLength verifies Normalize yields unit vectors for
// nonzero input in all arities.
func TestNormalize_UnitLength(t *testing.T) {
	v2 := vec.Vec2{X: 3, Y: 4}.Normalize()
	require.InDelta(t, 1.0, v2.Norm(), 1e-15)

	v3 := vec.Vec3{X: 1, Y: -2, Z: 2}.Normalize()
	require.InDelta(t, 1.0, v3.Norm(), 1e-15)

	v4 := vec.Vec4{X: 1, Y: 1, Z: 1, W: 1}.Normalize()
	require.InDelta(t, 1.0, v4.Norm(), 1e-15)
	assert.InDelta(t, 0.5, v4.X, 1e-15)
}

// TestNormalize_ZeroVector verifies the zero vector passes through
// Normalize unchanged rather than producing NaN.
func TestNormalize_ZeroVector(t *testing.T) {
	z2 := vec.Vec2{}.Normalize()
	assert.Equal(t, vec.Vec2{}, z2)
	assert.False(t, math.IsNaN(z2.X))

	z3 := vec.Vec3{}.Normalize()
	assert.Equal(t, vec.Vec3{}, z3)

	z4 := vec.Vec4{}.Normalize()
	assert.Equal(t, vec.Vec4{}, z4)
}
