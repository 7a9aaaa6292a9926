package laser

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// singleMirrorScene is the first level with its mirror turned to send the beam to the receiver
func singleMirrorScene() Scene {
	return Scene{
		Emitter: Emitter{Position: V(-6, 1.5, 0), Direction: V(1, 0, 0), Color: "#ff0044"},
		Mirrors: []Mirror{
			{ID: 0, Position: V(0, 1.5, 0), Rotation: Euler{Y: math.Pi / 4}, Width: 2, Height: 2},
		},
		Receiver: Receiver{Position: V(0, 1.5, -6), Radius: 1},
	}
}

func TestTraceStraightLine(t *testing.T) {
	assert := assert.New(t)

	scene := Scene{
		Emitter:  Emitter{Position: V(0, 0, 0), Direction: V(2, 0, 0)},
		Receiver: Receiver{Position: V(5, 0, 0), Radius: 1},
	}
	beam := Trace(scene)

	assert.True(beam.HitReceiver)
	assert.Equal(HitReceiver, beam.Termination)
	require.Len(t, beam.Points, 2)
	assert.Equal(V(0, 0, 0), beam.Points[0])
	assert.Equal(V(5, 0, 0), beam.Points[1])
}

func TestTraceSingleMirror(t *testing.T) {
	assert := assert.New(t)

	beam := Trace(singleMirrorScene())

	assert.True(beam.HitReceiver)
	require.Len(t, beam.Points, 3)
	assertVecNear(t, V(-6, 1.5, 0), beam.Points[0])
	assertVecNear(t, V(0, 1.5, 0), beam.Points[1])
	assertVecNear(t, V(0, 1.5, -6), beam.Points[2])
	assert.Equal([]int{0}, beam.MirrorHits)
	assert.Len(beam.Reflections(), 1)
	assert.InDelta(12, beam.PathLength(), 1e-9)
}

func TestTraceObstacleBlocksBeam(t *testing.T) {
	assert := assert.New(t)

	scene := singleMirrorScene()
	scene.Obstacles = []Obstacle{{Position: V(-3, 1.5, 0), Size: V(1, 1, 1)}}
	beam := Trace(scene)

	assert.False(beam.HitReceiver)
	assert.Equal(HitObstacle, beam.Termination)
	require.Len(t, beam.Points, 2)
	assertVecNear(t, V(-3.5, 1.5, 0), beam.Points[1])
	assert.Empty(beam.MirrorHits)
}

func TestTraceObstacleBehindMirror(t *testing.T) {
	scene := singleMirrorScene()
	scene.Obstacles = []Obstacle{{Position: V(3, 1.5, 0), Size: V(1, 1, 1)}}
	beam := Trace(scene)

	assert.True(t, beam.HitReceiver)
	assert.Len(t, beam.Points, 3)
}

func TestTraceBounceLimit(t *testing.T) {
	assert := assert.New(t)

	// Two parallel mirrors facing each other trap the beam
	scene := Scene{
		Emitter: Emitter{Position: V(0, 0, 0), Direction: V(0, 0, 1)},
		Mirrors: []Mirror{
			{ID: 0, Position: V(0, 0, -2), Width: 2, Height: 2},
			{ID: 1, Position: V(0, 0, 2), Width: 2, Height: 2},
		},
		Receiver: Receiver{Position: V(10, 0, 0), Radius: 0.5},
	}
	params := DefaultTraceParams()
	beam := scene.Trace(params)

	assert.False(beam.HitReceiver)
	assert.Equal(BounceLimit, beam.Termination)
	assert.Equal(params.MaxBounces, beam.Bounces())
	assert.Len(beam.Points, params.MaxBounces+1)
	assert.Equal([]int{1, 0}, beam.MirrorsUsed())
	for i, id := range beam.MirrorHits {
		assert.Equal((i+1)%2, id)
	}

	params.MaxBounces = 3
	assert.Len(scene.Trace(params).Points, 4)
}

func TestTraceZeroBouncesStillLeavesEmitter(t *testing.T) {
	tests := []struct {
		name        string
		scene       Scene
		termination Termination
		points      int
	}{
		{"receiver", Scene{
			Emitter:  Emitter{Position: V(0, 0, 0), Direction: V(1, 0, 0)},
			Receiver: Receiver{Position: V(5, 0, 0), Radius: 1},
		}, HitReceiver, 2},
		{"escape", Scene{
			Emitter:  Emitter{Position: V(0, 0, 0), Direction: V(1, 0, 0)},
			Receiver: Receiver{Position: V(-5, 0, 0), Radius: 1},
		}, Escaped, 2},
		{"mirror", singleMirrorScene(), BounceLimit, 2},
	}
	for _, tt := range tests {
		for _, bounces := range []int{0, -3} {
			beam := tt.scene.Trace(TraceParams{MaxBounces: bounces, MaxDistance: 50})
			assert.Equal(t, tt.termination, beam.Termination, "%s with %d bounces", tt.name, bounces)
			assert.Len(t, beam.Points, tt.points, "%s with %d bounces", tt.name, bounces)
		}
	}
}

func TestTraceEscapes(t *testing.T) {
	assert := assert.New(t)

	scene := Scene{
		Emitter:  Emitter{Position: V(0, 1, 0), Direction: V(0, 0, -3)},
		Receiver: Receiver{Position: V(5, 1, 0), Radius: 1},
	}
	beam := Trace(scene)

	assert.False(beam.HitReceiver)
	assert.Equal(Escaped, beam.Termination)
	require.Len(t, beam.Points, 2)
	assertVecNear(t, V(0, 1, -50), beam.Points[1])
}

func TestTraceReceiverBehindEmitter(t *testing.T) {
	scene := Scene{
		Emitter:  Emitter{Position: V(0, 0, 0), Direction: V(1, 0, 0)},
		Receiver: Receiver{Position: V(-5, 0, 0), Radius: 1},
	}
	assert.False(t, Trace(scene).HitReceiver)
}

func TestTraceReceiverBeyondMaxDistance(t *testing.T) {
	scene := Scene{
		Emitter:  Emitter{Position: V(0, 0, 0), Direction: V(1, 0, 0)},
		Receiver: Receiver{Position: V(60, 0, 0), Radius: 1},
	}
	beam := Trace(scene)
	assert.False(t, beam.HitReceiver)
	assert.Equal(t, Escaped, beam.Termination)
}

func TestTraceIsIdempotent(t *testing.T) {
	scene := singleMirrorScene()
	scene.Mirrors = append(scene.Mirrors, Mirror{ID: 1, Position: V(0, 1.5, -3), Rotation: Euler{X: 0.2, Y: 0.7}, Width: 1, Height: 1})
	scene.Obstacles = []Obstacle{{Position: V(2, 1, 2), Size: V(1, 3, 1)}}

	first := Trace(scene)
	second := Trace(scene)
	assert.Equal(t, first, second)
}

func TestTraceDoesNotMutateScene(t *testing.T) {
	scene := singleMirrorScene()
	before := scene.Clone()
	Trace(scene)
	assert.Equal(t, before, scene)
}

func TestTraceRectangleBoundsRejection(t *testing.T) {
	tests := []struct {
		name     string
		height   float64
		hit      bool
		numPoint int
		term     Termination
	}{
		{"just_inside_height", 1.5 + 0.99, true, 3, HitReceiver},
		{"just_outside_height", 1.5 + 1.01, false, 2, Escaped},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			scene := singleMirrorScene()
			scene.Emitter.Position.Y = test.height
			beam := Trace(scene)
			assert.Equal(t, test.hit, beam.HitReceiver)
			assert.Len(t, beam.Points, test.numPoint)
			assert.Equal(t, test.term, beam.Termination)
		})
	}

	t.Run("just_outside_width", func(t *testing.T) {
		scene := Scene{
			Emitter: Emitter{Position: V(1.01, 0, 5), Direction: V(0, 0, -1)},
			Mirrors: []Mirror{{ID: 0, Position: V(0, 0, 0), Width: 2, Height: 2}},
			Obstacles: []Obstacle{
				{Position: V(1.01, 0, -5), Size: V(1, 1, 1)},
			},
			Receiver: Receiver{Position: V(20, 20, 20), Radius: 1},
		}
		beam := Trace(scene)
		assert.Equal(t, HitObstacle, beam.Termination)
		assert.Empty(t, beam.MirrorHits)

		scene.Emitter.Position.X = 0.99
		beam = Trace(scene)
		assert.Equal(t, []int{0}, beam.MirrorHits)
		assert.Equal(t, Escaped, beam.Termination)
		assertVecNear(t, V(0.99, 0, 50), beam.End())
	})
}

func TestTraceTieGoesToMirror(t *testing.T) {
	// The mirror face and the obstacle face are both 5 units away
	scene := Scene{
		Emitter: Emitter{Position: V(0, 0, 5), Direction: V(0, 0, -1)},
		Mirrors: []Mirror{{ID: 0, Position: V(0, 0, 0), Width: 2, Height: 2}},
		Obstacles: []Obstacle{
			{Position: V(0, 0, -0.5), Size: V(1, 1, 1)},
		},
		Receiver: Receiver{Position: V(20, 20, 20), Radius: 1},
	}
	beam := Trace(scene)
	assert.Equal(t, []int{0}, beam.MirrorHits)
}
