package laser

import (
	"github.com/fogleman/pt/pt"
)

// TraceParams contains parameters to guide tracing
type TraceParams struct {
	// Maximum number of reflections to simulate
	MaxBounces int
	// Anything further than this from the current ray origin is treated as out of reach.
	// An escaping beam is drawn this long.
	MaxDistance float64
}

// DefaultTraceParams returns the limits used by the game.
func DefaultTraceParams() TraceParams {
	return TraceParams{
		MaxBounces:  20,
		MaxDistance: 50,
	}
}

// Termination says why a beam stopped.
type Termination int

const (
	HitReceiver Termination = iota
	HitObstacle
	Escaped
	BounceLimit
)

func (t Termination) String() string {
	switch t {
	case HitReceiver:
		return "receiver"
	case HitObstacle:
		return "obstacle"
	case Escaped:
		return "escaped"
	case BounceLimit:
		return "bounce limit"
	}
	return "unknown"
}

// Beam is the path taken by the laser through a scene
type Beam struct {
	// Emitter position followed by every reflection and the terminal point
	Points []pt.Vector
	// Whether the beam ended at the receiver
	HitReceiver bool
	Termination Termination
	// IDs of the mirrors hit, in order. MirrorHits[i] produced Points[i+1].
	MirrorHits []int
}

// Reflections returns the points at which the beam bounced off a mirror.
func (b Beam) Reflections() []pt.Vector {
	return b.Points[1 : 1+len(b.MirrorHits)]
}

// End returns the last point of the beam.
func (b Beam) End() pt.Vector {
	return b.Points[len(b.Points)-1]
}

// Trace computes the beam through scene using DefaultTraceParams.
func Trace(scene Scene) Beam {
	return scene.Trace(DefaultTraceParams())
}

// Trace follows the beam from the emitter until it reaches the receiver, is absorbed by an
// obstacle, escapes, or runs out of bounces.
//
// When candidates are equally near, mirrors win over obstacles and earlier entries win over later ones.
// Trace does not modify or retain the scene. MaxBounces below 1 is treated as 1 so the beam always
// leaves the emitter.
func (s Scene) Trace(params TraceParams) Beam {
	currentPos := s.Emitter.Position
	currentDir := s.Emitter.Direction.Normalize()
	beam := Beam{
		Points:      []pt.Vector{currentPos},
		Termination: BounceLimit,
	}

	for i := 0; i < max(params.MaxBounces, 1); i++ {
		closestDistance := params.MaxDistance
		var closestHit pt.Vector
		var hitMirror *Mirror
		var mirrorNormal pt.Vector
		hitObstacle := false

		for j := range s.Mirrors {
			mirror := &s.Mirrors[j]
			normal := mirror.Normal()
			intersection, ok := IntersectRayPlane(currentPos, currentDir, mirror.Position, normal)
			if !ok || !mirror.Contains(intersection) {
				continue
			}
			distance := intersection.Sub(currentPos).Length()
			if distance < closestDistance && distance > TMin {
				closestDistance = distance
				closestHit = intersection
				hitMirror = mirror
				mirrorNormal = normal
			}
		}

		for _, obstacle := range s.Obstacles {
			distance, ok := IntersectRayBox(currentPos, currentDir, obstacle.Position, obstacle.Size)
			if ok && distance < closestDistance {
				closestDistance = distance
				closestHit = currentPos.Add(currentDir.MulScalar(distance))
				hitObstacle = true
				hitMirror = nil
			}
		}

		proj, dist := nearestApproach(currentPos, currentDir, s.Receiver.Position)
		if proj > 0 && dist < s.Receiver.Radius && proj < closestDistance {
			beam.Points = append(beam.Points, s.Receiver.Position)
			beam.HitReceiver = true
			beam.Termination = HitReceiver
			return beam
		}

		switch {
		case hitMirror != nil:
			beam.Points = append(beam.Points, closestHit)
			beam.MirrorHits = append(beam.MirrorHits, hitMirror.ID)
			reflected := Reflect(currentDir, mirrorNormal)
			verifyReflectionLaw(currentDir, mirrorNormal, reflected)
			currentPos = closestHit
			currentDir = reflected
		case hitObstacle:
			beam.Points = append(beam.Points, closestHit)
			beam.Termination = HitObstacle
			return beam
		default:
			beam.Points = append(beam.Points, currentPos.Add(currentDir.MulScalar(params.MaxDistance)))
			beam.Termination = Escaped
			return beam
		}
	}
	return beam
}
