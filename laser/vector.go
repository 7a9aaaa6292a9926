package laser

import (
	"github.com/fogleman/pt/pt"
	"gonum.org/v1/gonum/spatial/r3"
)

// V is a shorthand constructor for pt.Vector
func V(X, Y, Z float64) pt.Vector {
	return pt.Vector{X: X, Y: Y, Z: Z}
}

func toR3(v pt.Vector) r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

func fromR3(v r3.Vec) pt.Vector {
	return pt.Vector{X: v.X, Y: v.Y, Z: v.Z}
}

var (
	xAxis = r3.Vec{X: 1}
	yAxis = r3.Vec{Y: 1}
	zAxis = r3.Vec{Z: 1}
)

// Euler is a rotation expressed as three angles in radians.
//
// Angles are applied intrinsically in X, Y, Z order, so a local vector v maps to
// world space as Rx·Ry·Rz·v. Mirror normals and mirror bounds both go through
// this type, which keeps what the beam hits and what is drawn in agreement.
type Euler struct {
	X, Y, Z float64
}

// Rotate maps a vector from local to world space.
func (e Euler) Rotate(v pt.Vector) pt.Vector {
	p := toR3(v)
	p = r3.NewRotation(e.Z, zAxis).Rotate(p)
	p = r3.NewRotation(e.Y, yAxis).Rotate(p)
	p = r3.NewRotation(e.X, xAxis).Rotate(p)
	return fromR3(p)
}

// Unrotate maps a vector from world to local space. It is the inverse of Rotate.
func (e Euler) Unrotate(v pt.Vector) pt.Vector {
	p := toR3(v)
	p = r3.NewRotation(-e.X, xAxis).Rotate(p)
	p = r3.NewRotation(-e.Y, yAxis).Rotate(p)
	p = r3.NewRotation(-e.Z, zAxis).Rotate(p)
	return fromR3(p)
}
