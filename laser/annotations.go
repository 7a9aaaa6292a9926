package laser

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fogleman/pt/pt"
)

// JSON schema types
type PointJSON struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
	Size float64 `json:"size,omitempty"`
	Name string  `json:"name,omitempty"`
}

type PathJSON struct {
	Points    []PointJSON `json:"points"`
	Name      string      `json:"name,omitempty"`
	Color     string      `json:"color,omitempty"`
	Thickness float64     `json:"thickness,omitempty"`
}

type BeamJSON struct {
	Points      []PointJSON `json:"points"`
	HitReceiver bool        `json:"hitReceiver"`
	Termination string      `json:"termination"`
	MirrorHits  []int       `json:"mirrorHits"`
	Length      float64     `json:"length"`
	Color       string      `json:"color,omitempty"`
}

type ZoneJSON struct {
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Z            float64 `json:"z"`
	Radius       float64 `json:"radius"`
	Name         string  `json:"name,omitempty"`
	Color        string  `json:"color,omitempty"`
	Transparency float64 `json:"transparency,omitempty"`
}

type BoxJSON struct {
	Min  PointJSON `json:"min"`
	Max  PointJSON `json:"max"`
	Name string    `json:"name,omitempty"`
}

// Annotations is the document written by SaveAnnotations
type Annotations struct {
	Points []PointJSON `json:"points,omitempty"`
	Paths  []PathJSON  `json:"paths,omitempty"`
	Beam   BeamJSON    `json:"beam"`
	Zones  []ZoneJSON  `json:"zones,omitempty"`
	Boxes  []BoxJSON   `json:"boxes,omitempty"`
}

// Conversion functions
func VectorToJSON(v pt.Vector) PointJSON {
	return PointJSON{
		X:    v.X,
		Y:    v.Y,
		Z:    v.Z,
		Size: 1.0,
	}
}

func BeamToJSON(b Beam, color string) BeamJSON {
	points := make([]PointJSON, len(b.Points))
	for i, v := range b.Points {
		points[i] = VectorToJSON(v)
	}
	hits := append([]int{}, b.MirrorHits...)
	return BeamJSON{
		Points:      points,
		HitReceiver: b.HitReceiver,
		Termination: b.Termination.String(),
		MirrorHits:  hits,
		Length:      b.PathLength(),
		Color:       color,
	}
}

func MirrorToJSON(m Mirror) PathJSON {
	corners := m.Corners()
	points := make([]PointJSON, 0, len(corners)+1)
	for _, c := range corners {
		points = append(points, VectorToJSON(c))
	}
	points = append(points, VectorToJSON(corners[0]))
	return PathJSON{
		Points:    points,
		Name:      fmt.Sprintf("mirror_%d", m.ID),
		Color:     "#88ccff",
		Thickness: 2,
	}
}

func ReceiverToJSON(r Receiver) ZoneJSON {
	return ZoneJSON{
		X:      r.Position.X,
		Y:      r.Position.Y,
		Z:      r.Position.Z,
		Radius: r.Radius,
		Name:   "receiver",
	}
}

// NewAnnotations collects the scene geometry and the beam into a single document
func NewAnnotations(scene Scene, beam Beam) Annotations {
	a := Annotations{
		Points: make([]PointJSON, 0, len(beam.MirrorHits)+1),
		Paths:  make([]PathJSON, 0, len(scene.Mirrors)),
		Beam:   BeamToJSON(beam, scene.Emitter.Color),
		Zones:  []ZoneJSON{ReceiverToJSON(scene.Receiver)},
		Boxes:  make([]BoxJSON, 0, len(scene.Obstacles)),
	}

	emitter := VectorToJSON(scene.Emitter.Position)
	emitter.Name = "emitter"
	a.Points = append(a.Points, emitter)
	for i, p := range beam.Reflections() {
		point := VectorToJSON(p)
		point.Name = fmt.Sprintf("reflection_%d", i)
		a.Points = append(a.Points, point)
	}

	for _, m := range scene.Mirrors {
		a.Paths = append(a.Paths, MirrorToJSON(m))
	}

	for i, o := range scene.Obstacles {
		a.Boxes = append(a.Boxes, BoxJSON{
			Min:  VectorToJSON(o.Min()),
			Max:  VectorToJSON(o.Max()),
			Name: fmt.Sprintf("obstacle_%d", i),
		})
	}
	return a
}

// SaveAnnotations writes the scene and beam to a JSON file for external viewers
func SaveAnnotations(filename string, scene Scene, beam Beam) error {
	data, err := json.MarshalIndent(NewAnnotations(scene, beam), "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling annotations: %w", err)
	}

	return os.WriteFile(filename, data, 0644)
}
