package game

import (
	"fmt"
	"sort"
	"time"

	lin "github.com/sgreben/piecewiselinear"
)

// Curve is a piecewise-linear function that holds its end values outside the points it was built from
type Curve struct {
	f lin.Function
}

// NewCurve builds a curve from a map of x to y
func NewCurve(points map[float64]float64) (Curve, error) {
	if len(points) == 0 {
		return Curve{}, fmt.Errorf("curve needs at least one point")
	}
	X := make([]float64, 0, len(points))
	for x := range points {
		X = append(X, x)
	}
	sort.Float64s(X)
	Y := make([]float64, len(X))
	for i, x := range X {
		Y[i] = points[x]
	}
	return Curve{f: lin.Function{X: X, Y: Y}}, nil
}

func (c Curve) At(x float64) float64 {
	X, Y := c.f.X, c.f.Y
	if len(X) == 0 {
		return 0
	}
	if x <= X[0] {
		return Y[0]
	}
	if x >= X[len(X)-1] {
		return Y[len(Y)-1]
	}
	return c.f.At(x)
}

// ScoreCard rates a solve by how many moves and how much time it took
type ScoreCard struct {
	MaxScore float64
	Moves    Curve
	Time     Curve
	// Most moves that still earn three and two stars
	ThreeStarMoves int
	TwoStarMoves   int
}

// DefaultScoreCard rewards solving within a handful of moves and a couple of minutes
func DefaultScoreCard() ScoreCard {
	moves, _ := NewCurve(map[float64]float64{0: 1, 5: 1, 15: 0.6, 40: 0.2})
	seconds, _ := NewCurve(map[float64]float64{0: 1, 30: 1, 120: 0.6, 600: 0.3})
	return ScoreCard{
		MaxScore:       1000,
		Moves:          moves,
		Time:           seconds,
		ThreeStarMoves: 5,
		TwoStarMoves:   10,
	}
}

func (s ScoreCard) Score(moves int, elapsed time.Duration) float64 {
	return s.MaxScore * s.Moves.At(float64(moves)) * s.Time.At(elapsed.Seconds())
}

// Stars rates a solve from one to three stars by its move count
func (s ScoreCard) Stars(moves int) int {
	switch {
	case moves <= s.ThreeStarMoves:
		return 3
	case moves <= s.TwoStarMoves:
		return 2
	}
	return 1
}
