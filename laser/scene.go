package laser

import (
	"fmt"

	"github.com/fogleman/pt/pt"
)

type Emitter struct {
	Position pt.Vector
	// Need not be normalized
	Direction pt.Vector
	// Display only, e.g. "#ff0044"
	Color string
}

// Mirror is a finite flat reflector. Before rotation its reflective face lies in the local XY plane with
// its normal along +Z.
type Mirror struct {
	ID       int
	Position pt.Vector
	Rotation Euler
	Width    float64
	Height   float64
	Movable  bool
}

// Normal returns the mirror's world-space normal.
func (m Mirror) Normal() pt.Vector {
	return m.Rotation.Rotate(V(0, 0, 1)).Normalize()
}

// Contains reports whether a point on the mirror's plane is within its reflective rectangle.
func (m Mirror) Contains(p pt.Vector) bool {
	return PointWithinRectBounds(p, m.Position, m.Rotation, m.Width, m.Height)
}

// Corners returns the four world-space corners of the reflective rectangle, counter-clockwise
// when viewed from the front.
func (m Mirror) Corners() [4]pt.Vector {
	w, h := m.Width/2, m.Height/2
	local := [4]pt.Vector{V(-w, -h, 0), V(w, -h, 0), V(w, h, 0), V(-w, h, 0)}
	var corners [4]pt.Vector
	for i, c := range local {
		corners[i] = m.Rotation.Rotate(c).Add(m.Position)
	}
	return corners
}

// Obstacle is an opaque axis-aligned box.
type Obstacle struct {
	// Center of the box
	Position pt.Vector
	// Full width, height and depth
	Size pt.Vector
}

func (o Obstacle) Min() pt.Vector {
	return o.Position.Sub(o.Size.MulScalar(0.5))
}

func (o Obstacle) Max() pt.Vector {
	return o.Position.Add(o.Size.MulScalar(0.5))
}

// Receiver is the win target, hit-tested as a sphere.
type Receiver struct {
	Position pt.Vector
	Radius   float64
}

// Scene is everything the tracer needs to compute one beam.
type Scene struct {
	Emitter   Emitter
	Mirrors   []Mirror
	Obstacles []Obstacle
	Receiver  Receiver
}

// Clone returns a copy of the scene that shares no slices with s.
func (s Scene) Clone() Scene {
	c := s
	c.Mirrors = append([]Mirror(nil), s.Mirrors...)
	c.Obstacles = append([]Obstacle(nil), s.Obstacles...)
	return c
}

// MirrorIndex returns the position of the mirror with the given id in s.Mirrors.
func (s Scene) MirrorIndex(id int) (int, bool) {
	for i, m := range s.Mirrors {
		if m.ID == id {
			return i, true
		}
	}
	return -1, false
}

// MirrorPose fixes the position and rotation of one mirror, e.g. as part of a known solution.
type MirrorPose struct {
	ID       int
	Position *pt.Vector
	Rotation Euler
}

// Level is one puzzle from the catalog.
type Level struct {
	ID         int
	Name       string
	Difficulty string
	Scene      Scene
	// Optional poses that solve the level
	Solution []MirrorPose
}

// Solved returns a copy of the level's scene with its solution poses applied.
func (l Level) Solved() (Scene, error) {
	if len(l.Solution) == 0 {
		return Scene{}, fmt.Errorf("level %d has no solution", l.ID)
	}
	s := l.Scene.Clone()
	for _, pose := range l.Solution {
		i, ok := s.MirrorIndex(pose.ID)
		if !ok {
			return Scene{}, fmt.Errorf("level %d solution: unknown mirror %d", l.ID, pose.ID)
		}
		s.Mirrors[i].Rotation = pose.Rotation
		if pose.Position != nil {
			s.Mirrors[i].Position = *pose.Position
		}
	}
	return s, nil
}

// Mesh builds a triangle mesh of the scene's obstacles and mirrors.
func (s Scene) Mesh() *pt.Mesh {
	mesh := pt.NewMesh(nil)
	for _, o := range s.Obstacles {
		mesh.Add(pt.NewCube(o.Min(), o.Max(), pt.Material{}).Mesh())
	}
	mirror := pt.Material{Reflectivity: 1}
	for _, m := range s.Mirrors {
		c := m.Corners()
		mesh.Add(pt.NewMesh([]*pt.Triangle{
			pt.NewTriangle(c[0], c[1], c[2], pt.Vector{}, pt.Vector{}, pt.Vector{}, mirror),
			pt.NewTriangle(c[0], c[2], c[3], pt.Vector{}, pt.Vector{}, pt.Vector{}, mirror),
		}))
	}
	return mesh
}

// SaveSTL writes the scene mesh to path.
func (s Scene) SaveSTL(path string) error {
	mesh := s.Mesh()
	if len(mesh.Triangles) == 0 {
		return fmt.Errorf("scene has no geometry to save")
	}
	return mesh.SaveSTL(path)
}
