package game

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdginn/go-laser-puzzle/laser"
)

func testLevels() []laser.Level {
	return []laser.Level{
		{
			ID:   1,
			Name: "First Reflection",
			Scene: laser.Scene{
				Emitter: laser.Emitter{Position: laser.V(-6, 1.5, 0), Direction: laser.V(1, 0, 0)},
				Mirrors: []laser.Mirror{
					{ID: 0, Position: laser.V(0, 1.5, 0), Width: 2, Height: 2, Movable: true},
					{ID: 1, Position: laser.V(5, 1.5, 5), Width: 2, Height: 2},
				},
				Receiver: laser.Receiver{Position: laser.V(0, 1.5, -6), Radius: 1},
			},
		},
		{
			ID:   2,
			Name: "Straight Shot",
			Scene: laser.Scene{
				Emitter:  laser.Emitter{Position: laser.V(-6, 1.5, -4), Direction: laser.V(1, 0, 0)},
				Mirrors:  []laser.Mirror{{ID: 0, Position: laser.V(-2, 1.5, -4), Width: 2, Height: 2, Movable: true}},
				Receiver: laser.Receiver{Position: laser.V(6, 1.5, -4), Radius: 1},
			},
		},
	}
}

func newTestGame(t *testing.T) *Game {
	g, err := New(testLevels(), DefaultRules(), DefaultScoreCard())
	require.NoError(t, err)
	return g
}

func TestNewRequiresLevels(t *testing.T) {
	_, err := New(nil, DefaultRules(), DefaultScoreCard())
	assert.ErrorIs(t, err, ErrNoLevels)
}

func TestStarsFollowMoveCount(t *testing.T) {
	tests := []struct {
		tilts int
		moves int
		stars int
	}{
		{0, 3, 3},
		{1, 5, 3},
		{2, 7, 2},
		{4, 11, 1},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%d moves", test.moves), func(t *testing.T) {
			g := newTestGame(t)
			// Tilting the mirror back and forth costs two moves without solving anything
			for i := 0; i < test.tilts; i++ {
				require.NoError(t, g.RotateMirror(0, AxisX, 1))
				require.NoError(t, g.RotateMirror(0, AxisX, -1))
			}
			for i := 0; i < 3; i++ {
				require.NoError(t, g.RotateMirror(0, AxisY, 1))
			}
			r, ok := g.Result()
			require.True(t, ok)
			assert.Equal(t, test.moves, r.Moves)
			assert.Equal(t, test.stars, r.Stars)
		})
	}
}

func TestSolveFirstLevel(t *testing.T) {
	assert := assert.New(t)
	g := newTestGame(t)

	var results []Result
	g.OnWin = func(r Result) { results = append(results, r) }

	assert.False(g.Won())
	assert.False(g.Beam().HitReceiver)
	g.Tick(10 * time.Second)

	for i := 0; i < 3; i++ {
		require.NoError(t, g.RotateMirror(0, AxisY, 1))
	}
	assert.True(g.Won())
	assert.True(g.Beam().HitReceiver)
	assert.Equal(3, g.Moves())
	require.Len(t, results, 1)
	assert.Equal(1, results[0].Level)
	assert.Equal(3, results[0].Moves)
	assert.Equal(10*time.Second, results[0].Elapsed)
	assert.InDelta(1000, results[0].Score, 1e-9)
	assert.Equal(3, results[0].Stars)
	assert.Equal([]int{1}, g.Completed())

	// The puzzle is frozen once solved
	assert.ErrorIs(g.RotateMirror(0, AxisY, 1), ErrSolved)
	assert.ErrorIs(g.MoveMirror(0, AxisX, 1), ErrSolved)
	g.Tick(time.Second)
	assert.Equal(10*time.Second, g.Elapsed())
	assert.Equal(3, g.Moves())

	// Retracing a solved scene does not fire again
	g.Update()
	g.Update()
	assert.Len(results, 1)

	r, ok := g.Result()
	assert.True(ok)
	assert.Equal(results[0], r)
}

func TestRotateSteps(t *testing.T) {
	assert := assert.New(t)
	g := newTestGame(t)

	require.NoError(t, g.RotateMirror(0, AxisX, -1))
	require.NoError(t, g.RotateMirror(0, AxisY, 5))
	m := g.Scene().Mirrors[0]
	assert.InDelta(-math.Pi/12, m.Rotation.X, 1e-12)
	assert.InDelta(math.Pi/12, m.Rotation.Y, 1e-12)
	assert.Zero(m.Rotation.Z)

	err := g.RotateMirror(0, AxisZ, 1)
	assert.ErrorIs(err, ErrInvalidAxis)
	assert.Equal(2, g.Moves())
}

func TestMoveClamps(t *testing.T) {
	assert := assert.New(t)
	g := newTestGame(t)

	for i := 0; i < 20; i++ {
		require.NoError(t, g.MoveMirror(0, AxisX, 1))
	}
	require.NoError(t, g.MoveMirror(0, AxisY, -1))
	require.NoError(t, g.MoveMirror(0, AxisZ, 1))

	p := g.Scene().Mirrors[0].Position
	assert.Equal(laser.V(8, 1, 0.5), p)
	assert.Equal(22, g.Moves())

	// The catalog copy of the level is untouched
	assert.Equal(laser.V(0, 1.5, 0), g.Level().Scene.Mirrors[0].Position)
}

func TestEditErrors(t *testing.T) {
	g := newTestGame(t)

	assert.ErrorIs(t, g.RotateMirror(9, AxisY, 1), ErrUnknownMirror)
	assert.ErrorIs(t, g.MoveMirror(1, AxisY, 1), ErrFixedMirror)
	assert.ErrorIs(t, g.MoveMirror(0, Axis(7), 1), ErrInvalidAxis)
	assert.ErrorIs(t, g.SelectMirror(9), ErrUnknownMirror)
	assert.Zero(t, g.Moves())
}

func TestSceneIsSnapshot(t *testing.T) {
	g := newTestGame(t)
	s := g.Scene()
	s.Mirrors[0].Position = laser.V(3, 3, 3)
	assert.Equal(t, laser.V(0, 1.5, 0), g.Scene().Mirrors[0].Position)
}

func TestSelection(t *testing.T) {
	assert := assert.New(t)
	g := newTestGame(t)

	_, ok := g.Selected()
	assert.False(ok)

	require.NoError(t, g.SelectMirror(1))
	id, ok := g.Selected()
	assert.True(ok)
	assert.Equal(1, id)

	require.NoError(t, g.SelectMirror(1))
	_, ok = g.Selected()
	assert.False(ok)

	g.CycleSelection()
	id, _ = g.Selected()
	assert.Equal(0, id)
	g.CycleSelection()
	id, _ = g.Selected()
	assert.Equal(1, id)
	g.CycleSelection()
	id, _ = g.Selected()
	assert.Equal(0, id)
}

func TestResetAndLevels(t *testing.T) {
	assert := assert.New(t)
	g := newTestGame(t)

	require.NoError(t, g.MoveMirror(0, AxisX, 1))
	require.NoError(t, g.SelectMirror(0))
	g.Tick(5 * time.Second)
	g.Reset()
	assert.Zero(g.Moves())
	assert.Zero(g.Elapsed())
	_, ok := g.Selected()
	assert.False(ok)
	assert.Equal(laser.V(0, 1.5, 0), g.Scene().Mirrors[0].Position)

	assert.True(g.HasNextLevel())
	require.NoError(t, g.NextLevel())
	assert.Equal(2, g.LevelNumber())
	assert.Equal("Straight Shot", g.Level().Name)
	// The second level's mirror lies edge-on to the beam, so it starts solved
	assert.True(g.Won())
	assert.Equal([]int{2}, g.Completed())
	assert.True(g.IsCompleted(2))

	assert.False(g.HasNextLevel())
	assert.True(errors.Is(g.NextLevel(), ErrUnknownLevel))
	assert.ErrorIs(g.SelectLevel(0), ErrUnknownLevel)

	require.NoError(t, g.SelectLevel(1))
	assert.Equal(1, g.LevelNumber())
	assert.False(g.Won())
	assert.Equal(2, g.LevelCount())
}

func TestParseAxis(t *testing.T) {
	a, err := ParseAxis("Y")
	assert.NoError(t, err)
	assert.Equal(t, AxisY, a)

	_, err = ParseAxis("w")
	assert.ErrorIs(t, err, ErrInvalidAxis)
}
