package laser

import (
	"fmt"

	"github.com/fogleman/pt/pt"
	"github.com/hpinc/go3mf"
)

// 3MF files are authored in millimeters; one scene unit is this many of them
const SCALE = 1000

// LoadObstacles3MF reads a 3MF model and returns one obstacle per object mesh: the object's
// axis-aligned bounding box. Objects without a mesh are skipped.
func LoadObstacles3MF(filepath string, scale float64) ([]Obstacle, error) {
	var model go3mf.Model
	r, err := go3mf.OpenReader(filepath)
	if err != nil {
		return nil, fmt.Errorf("opening 3mf: %w", err)
	}
	defer r.Close()
	if err := r.Decode(&model); err != nil {
		return nil, fmt.Errorf("decoding 3mf: %w", err)
	}

	obstacles := []Obstacle{}
	for _, item := range model.Build.Items {
		obj, ok := model.FindObject(item.ObjectPath(), item.ObjectID)
		if !ok || obj.Mesh == nil {
			continue
		}
		vertices := make([]pt.Vector, 0, len(obj.Mesh.Vertices.Vertex))
		for _, v := range obj.Mesh.Vertices.Vertex {
			vertices = append(vertices, pt.Vector{
				X: float64(v.X()) / scale,
				Y: float64(v.Y()) / scale,
				Z: float64(v.Z()) / scale,
			})
		}
		if o, ok := boundingObstacle(vertices); ok {
			obstacles = append(obstacles, o)
		}
	}
	return obstacles, nil
}

// boundingObstacle returns the smallest obstacle enclosing all vertices.
func boundingObstacle(vertices []pt.Vector) (Obstacle, bool) {
	if len(vertices) == 0 {
		return Obstacle{}, false
	}
	min, max := vertices[0], vertices[0]
	for _, v := range vertices[1:] {
		min = min.Min(v)
		max = max.Max(v)
	}
	return Obstacle{
		Position: min.Add(max).MulScalar(0.5),
		Size:     max.Sub(min),
	}, true
}
