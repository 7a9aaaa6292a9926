package laser

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAnnotations(t *testing.T) {
	assert := assert.New(t)

	scene := singleMirrorScene()
	scene.Obstacles = []Obstacle{{Position: V(3, 1, 3), Size: V(1, 2, 1)}}
	beam := Trace(scene)

	path := filepath.Join(t.TempDir(), "annotations.json")
	require.NoError(t, SaveAnnotations(path, scene, beam))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got Annotations
	require.NoError(t, json.Unmarshal(data, &got))

	assert.True(got.Beam.HitReceiver)
	assert.Equal("receiver", got.Beam.Termination)
	assert.Len(got.Beam.Points, 3)
	assert.Equal([]int{0}, got.Beam.MirrorHits)
	assert.InDelta(12, got.Beam.Length, 1e-9)
	assert.Equal("#ff0044", got.Beam.Color)

	// Emitter plus one reflection
	require.Len(t, got.Points, 2)
	assert.Equal("emitter", got.Points[0].Name)
	assert.Equal("reflection_0", got.Points[1].Name)

	require.Len(t, got.Paths, 1)
	assert.Len(got.Paths[0].Points, 5)
	assert.Equal(got.Paths[0].Points[0], got.Paths[0].Points[4])

	require.Len(t, got.Zones, 1)
	assert.Equal(1.0, got.Zones[0].Radius)

	require.Len(t, got.Boxes, 1)
	assert.Equal(PointJSON{X: 2.5, Y: 0, Z: 2.5, Size: 1}, got.Boxes[0].Min)
}
