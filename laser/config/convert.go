package config

import (
	"fmt"
	"math"

	"github.com/fogleman/pt/pt"

	"github.com/jdginn/go-laser-puzzle/game"
	"github.com/jdginn/go-laser-puzzle/laser"
)

func vec(v [3]float64) pt.Vector {
	return laser.V(v[0], v[1], v[2])
}

func radians(deg [3]float64) laser.Euler {
	return laser.Euler{
		X: deg[0] * math.Pi / 180,
		Y: deg[1] * math.Pi / 180,
		Z: deg[2] * math.Pi / 180,
	}
}

// Create builds tracer parameters, falling back to the game defaults for unset fields
func (t Trace) Create() laser.TraceParams {
	params := laser.DefaultTraceParams()
	if t.MaxBounces != 0 {
		params.MaxBounces = t.MaxBounces
	}
	if t.MaxDistance != 0 {
		params.MaxDistance = t.MaxDistance
	}
	return params
}

// Create builds game rules, falling back to the game defaults for unset fields
func (c Controls) Create(trace laser.TraceParams) game.Rules {
	rules := game.DefaultRules()
	if c.RotationStepDeg != 0 {
		rules.RotationStep = c.RotationStepDeg * math.Pi / 180
	}
	if c.MoveStep != 0 {
		rules.MoveStep = c.MoveStep
	}
	if c.Bounds != 0 {
		rules.Bounds = c.Bounds
	}
	rules.Trace = trace
	return rules
}

// Create builds a score card. Missing curves use the defaults.
func (s Scoring) Create() (game.ScoreCard, error) {
	card := game.DefaultScoreCard()
	if s.MaxScore != 0 {
		card.MaxScore = s.MaxScore
	}
	if len(s.Moves) > 0 {
		curve, err := game.NewCurve(s.Moves)
		if err != nil {
			return game.ScoreCard{}, fmt.Errorf("scoring.moves: %w", err)
		}
		card.Moves = curve
	}
	if len(s.TimeSeconds) > 0 {
		curve, err := game.NewCurve(s.TimeSeconds)
		if err != nil {
			return game.ScoreCard{}, fmt.Errorf("scoring.time_seconds: %w", err)
		}
		card.Time = curve
	}
	if s.ThreeStarMoves != 0 {
		card.ThreeStarMoves = s.ThreeStarMoves
	}
	if s.TwoStarMoves != 0 {
		card.TwoStarMoves = s.TwoStarMoves
	}
	return card, nil
}

// Create builds a playable level. Mirror IDs are their index in the level.
func (l Level) Create() (laser.Level, error) {
	scene := laser.Scene{
		Emitter: laser.Emitter{
			Position:  vec(l.Emitter.Position),
			Direction: vec(l.Emitter.Direction),
			Color:     l.Emitter.Color,
		},
		Receiver: laser.Receiver{
			Position: vec(l.Receiver.Position),
			Radius:   l.Receiver.Size,
		},
	}
	for i, m := range l.Mirrors {
		scene.Mirrors = append(scene.Mirrors, laser.Mirror{
			ID:       i,
			Position: vec(m.Position),
			Rotation: radians(m.RotationDeg),
			Width:    m.Size[0],
			Height:   m.Size[1],
			Movable:  m.Movable,
		})
	}
	for _, o := range l.Obstacles {
		scene.Obstacles = append(scene.Obstacles, laser.Obstacle{
			Position: vec(o.Position),
			Size:     vec(o.Size),
		})
	}
	if l.ObstaclesFromFile != "" {
		obstacles, err := laser.LoadObstacles3MF(l.ObstaclesFromFile, laser.SCALE)
		if err != nil {
			return laser.Level{}, fmt.Errorf("level %d: %w", l.ID, err)
		}
		scene.Obstacles = append(scene.Obstacles, obstacles...)
	}

	level := laser.Level{
		ID:         l.ID,
		Name:       l.Name,
		Difficulty: l.Difficulty,
		Scene:      scene,
	}
	for _, pose := range l.Solution {
		p := laser.MirrorPose{
			ID:       pose.Mirror,
			Rotation: radians(pose.RotationDeg),
		}
		if pose.Position != nil {
			v := vec(*pose.Position)
			p.Position = &v
		}
		level.Solution = append(level.Solution, p)
	}
	return level, nil
}

// CreateLevels builds every level in catalog order
func (c *Catalog) CreateLevels() ([]laser.Level, error) {
	levels := make([]laser.Level, 0, len(c.Levels.Inline))
	for _, l := range c.Levels.Inline {
		level, err := l.Create()
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, nil
}

// CreateGame builds a game over the whole catalog
func (c *Catalog) CreateGame() (*game.Game, error) {
	levels, err := c.CreateLevels()
	if err != nil {
		return nil, err
	}
	scoring, err := c.Scoring.Create()
	if err != nil {
		return nil, err
	}
	return game.New(levels, c.Controls.Create(c.Trace.Create()), scoring)
}
