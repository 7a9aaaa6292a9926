package laser

import (
	"math"

	"github.com/fogleman/pt/pt"
)

const (
	// Rays closer to parallel with a plane than this never hit it
	ParallelEpsilon = 1e-4
	// Hits nearer than this are ignored so a reflected ray does not re-hit the mirror it just left
	TMin = 0.01
)

// Reflect returns the direction of incident after a specular bounce off a surface with the given normal.
//
// Both inputs are expected to be normalized. The sign of normal does not matter.
func Reflect(incident, normal pt.Vector) pt.Vector {
	dot := incident.Dot(normal)
	return incident.Sub(normal.MulScalar(2 * dot)).Normalize()
}

// IntersectRayPlane returns the point where the ray hits the plane, if it does so at least TMin ahead of origin.
func IntersectRayPlane(origin, direction, planePoint, planeNormal pt.Vector) (pt.Vector, bool) {
	denom := direction.Dot(planeNormal)
	if math.Abs(denom) < ParallelEpsilon {
		return pt.Vector{}, false
	}
	t := planePoint.Sub(origin).Dot(planeNormal) / denom
	if t < TMin {
		return pt.Vector{}, false
	}
	return origin.Add(direction.MulScalar(t)), true
}

// PointWithinRectBounds reports whether point, assumed to lie on the rectangle's plane, falls inside
// a width × height rectangle centred on center and oriented by rotation.
func PointWithinRectBounds(point, center pt.Vector, rotation Euler, width, height float64) bool {
	local := rotation.Unrotate(point.Sub(center))
	return math.Abs(local.X) <= width/2 && math.Abs(local.Y) <= height/2
}

// slab intersects the ray with one axis of a box. A zero direction component never divides:
// the ray is either always inside the slab or never enters it.
func slab(origin, direction, min, max float64) (float64, float64, bool) {
	if direction == 0 {
		if origin < min || origin > max {
			return 0, 0, false
		}
		return math.Inf(-1), math.Inf(1), true
	}
	t0 := (min - origin) / direction
	t1 := (max - origin) / direction
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return t0, t1, true
}

// IntersectRayBox returns the distance along the ray at which it enters an axis-aligned box.
//
// center is the middle of the box and size its full extent along each axis. The box is missed when
// the ray passes it by, when it lies behind the origin, or when the entry is nearer than TMin.
func IntersectRayBox(origin, direction, center, size pt.Vector) (float64, bool) {
	half := size.MulScalar(0.5)
	min := center.Sub(half)
	max := center.Add(half)

	tmin, tmax := math.Inf(-1), math.Inf(1)
	axes := [3][4]float64{
		{origin.X, direction.X, min.X, max.X},
		{origin.Y, direction.Y, min.Y, max.Y},
		{origin.Z, direction.Z, min.Z, max.Z},
	}
	for _, a := range axes {
		t0, t1, ok := slab(a[0], a[1], a[2], a[3])
		if !ok {
			return 0, false
		}
		if t0 > tmin {
			tmin = t0
		}
		if t1 < tmax {
			tmax = t1
		}
		if tmin > tmax {
			return 0, false
		}
	}
	if tmax < TMin || tmin < TMin {
		return 0, false
	}
	return tmin, true
}

// nearestApproach returns how far along the ray the point projects and how far the point lies from the ray there.
func nearestApproach(origin, direction, point pt.Vector) (proj, dist float64) {
	proj = point.Sub(origin).Dot(direction)
	closest := origin.Add(direction.MulScalar(proj))
	return proj, closest.Sub(point).Length()
}
