package geometry

import (
	"fmt"
	"math"
)

// Quaternion is a rotation in 3D space, W being the scalar part.
type Quaternion struct {
	W, X, Y, Z float64
}

// Identity is the rotation that leaves every vector unchanged.
var Identity = Quaternion{W: 1}

// QuaternionFromAxisAngle builds the rotation of angle radians around axis.
// The axis does not need to be normalized. A zero axis yields Identity.
func QuaternionFromAxisAngle(axis Vector3D, angle float64) Quaternion {
	n := axis.Normalize()
	if n.IsZero() {
		return Identity
	}
	s := math.Sin(angle / 2)
	return Quaternion{W: math.Cos(angle / 2), X: n.X * s, Y: n.Y * s, Z: n.Z * s}
}

// QuaternionFromTo returns the shortest rotation taking direction from onto
// direction to. When the two are opposite, the rotation is a half turn around
// up (or any axis orthogonal to from if up is parallel to it).
func QuaternionFromTo(from, to, up Vector3D) Quaternion {
	f := from.Normalize()
	t := to.Normalize()
	if f.IsZero() || t.IsZero() {
		return Identity
	}
	d := f.Dot(t)
	if d >= 1-Epsilon {
		return Identity
	}
	if d <= -1+Epsilon {
		axis := up.Sub(f.Mul(up.Dot(f)))
		if axis.IsZero() {
			axis = f.Cross(Vector3D{X: 1})
			if axis.IsZero() {
				axis = f.Cross(Vector3D{Y: 1})
			}
		}
		return QuaternionFromAxisAngle(axis, math.Pi)
	}
	c := f.Cross(t)
	q := Quaternion{W: 1 + d, X: c.X, Y: c.Y, Z: c.Z}
	return q.Normalize()
}

// LookRotation returns the rotation that makes Forward face dir, keeping the
// roll consistent with up.
func LookRotation(dir, up Vector3D) Quaternion {
	return QuaternionFromTo(Forward, dir, up)
}

// Len is the norm of the quaternion.
func (q Quaternion) Len() float64 {
	return math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// Normalize returns the unit quaternion, or Identity for a null one.
func (q Quaternion) Normalize() Quaternion {
	l := q.Len()
	if l < Epsilon {
		return Identity
	}
	return Quaternion{W: q.W / l, X: q.X / l, Y: q.Y / l, Z: q.Z / l}
}

// Rotate applies the rotation to v.
func (q Quaternion) Rotate(v Vector3D) Vector3D {
	u := Vector3D{X: q.X, Y: q.Y, Z: q.Z}
	// v' = v + 2w(u×v) + 2u×(u×v)
	t := u.Cross(v).Mul(2)
	return v.Add(t.Mul(q.W)).Add(u.Cross(t))
}

// Eq compares two rotations, treating q and -q as the same rotation.
func (q Quaternion) Eq(other Quaternion) bool {
	same := math.Abs(q.W-other.W) <= Epsilon && math.Abs(q.X-other.X) <= Epsilon &&
		math.Abs(q.Y-other.Y) <= Epsilon && math.Abs(q.Z-other.Z) <= Epsilon
	opposite := math.Abs(q.W+other.W) <= Epsilon && math.Abs(q.X+other.X) <= Epsilon &&
		math.Abs(q.Y+other.Y) <= Epsilon && math.Abs(q.Z+other.Z) <= Epsilon
	return same || opposite
}

func (q Quaternion) String() string {
	return fmt.Sprintf("[%.3f (%.3f, %.3f, %.3f)]", q.W, q.X, q.Y, q.Z)
}
