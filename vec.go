package brep

import (
	"math"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
)

// defaultAxis is what Normalize returns for a zero length vector.
var defaultAxis = mgl64.Vec3{0, 0, 1}

func Subtract(a, b mgl64.Vec3) mgl64.Vec3 { return a.Sub(b) }
func Cross(a, b mgl64.Vec3) mgl64.Vec3    { return a.Cross(b) }
func Dot(a, b mgl64.Vec3) float64         { return a.Dot(b) }
func LengthSq(v mgl64.Vec3) float64       { return v.LenSqr() }

// Normalize scales v to unit length, or returns +Z when v has no length.
func Normalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 || math.IsNaN(l) {
		return defaultAxis
	}
	return mgl64.Vec3{v[0] / l, v[1] / l, v[2] / l}
}

// Key identifies a welded vertex: each coordinate scaled by 10^precision and
// rounded to an integer. Positions closer than the precision share a Key.
// The integers are held as float64 so that no coordinate or precision can
// overflow them.
type Key struct {
	X, Y, Z float64
}

func Quantize(v mgl64.Vec3, precision int) Key {
	scale := math.Pow10(precision)
	return Key{
		X: quantizeCoord(v[0], scale),
		Y: quantizeCoord(v[1], scale),
		Z: quantizeCoord(v[2], scale),
	}
}

func quantizeCoord(c, scale float64) float64 {
	q := math.Round(c * scale)
	if q == 0 || math.IsNaN(q) {
		// folds -0 into 0
		return 0
	}
	return q
}

// Less orders keys lexicographically by X, then Y, then Z.
func (k Key) Less(o Key) bool {
	if k.X != o.X {
		return k.X < o.X
	}
	if k.Y != o.Y {
		return k.Y < o.Y
	}
	return k.Z < o.Z
}

func (k Key) String() string {
	return strconv.FormatFloat(k.X, 'f', -1, 64) + "," +
		strconv.FormatFloat(k.Y, 'f', -1, 64) + "," +
		strconv.FormatFloat(k.Z, 'f', -1, 64)
}

// EdgeKey is the direction independent identity of an edge: A is never
// greater than B.
type EdgeKey struct {
	A, B Key
}

func MakeEdgeKey(a, b Key) EdgeKey {
	if b.Less(a) {
		return EdgeKey{b, a}
	}
	return EdgeKey{a, b}
}

func (k EdgeKey) String() string {
	return k.A.String() + "|" + k.B.String()
}
