package brep

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// asMat4 interprets m as a column major homogeneous matrix, the layout used
// by mgl64.Mat4. Anything other than 16 values is not a transform.
func asMat4(m []float64) (mat mgl64.Mat4, ok bool) {
	if len(m) != 16 {
		return
	}
	copy(mat[:], m)
	return mat, true
}

// ApplyTransform maps v through the affine transform m. The homogeneous
// divide only happens when w is usable and not already 1. Without a valid
// transform v is returned unchanged.
func ApplyTransform(v mgl64.Vec3, m []float64) mgl64.Vec3 {
	mat, ok := asMat4(m)
	if !ok {
		return v
	}
	r := mat.Mul4x1(v.Vec4(1))
	if w := r.W(); w != 0 && w != 1 && !math.IsNaN(w) {
		return mgl64.Vec3{r[0] / w, r[1] / w, r[2] / w}
	}
	return r.Vec3()
}

// ComposeTransforms returns the transform that applies inner first and then
// outer. A missing or malformed operand counts as the identity; if both are
// missing the result is nil.
func ComposeTransforms(outer, inner []float64) []float64 {
	o, okO := asMat4(outer)
	i, okI := asMat4(inner)
	switch {
	case !okO && !okI:
		return nil
	case !okO:
		o = mgl64.Ident4()
	case !okI:
		i = mgl64.Ident4()
	}
	m := o.Mul4(i)
	return m[:]
}

// Translation is a convenience for building a pure translation transform.
func Translation(x, y, z float64) []float64 {
	m := mgl64.Translate3D(x, y, z)
	return m[:]
}

// Scaling builds a uniform scale about the origin.
func Scaling(s float64) []float64 {
	m := mgl64.Scale3D(s, s, s)
	return m[:]
}
