package laser

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleView(t *testing.T) {
	assert := assert.New(t)

	view := View{
		Scene: Scene{
			Emitter:  Emitter{Position: V(0, 0, 0), Direction: V(1, 0, 0)},
			Receiver: Receiver{Position: V(10, 0, -10)},
		},
		XSize: 100,
		YSize: 200,
		Plane: TopDownPlane(0),
	}

	view.computeScaleAndTranslation()

	// Scene spans 10 x 10, padded to 11 x 11
	assert.InDelta(100.0/11, view.scale, 1e-9)
	assert.InDelta(0.5, view.xTranslate, 1e-9)
	assert.InDelta(0.5, view.yTranslate, 1e-9)

	p := view.toImage(V(10, 0, -10))
	assert.InDelta(100-100.0/22, p.X, 1e-9)
	assert.InDelta(100-100.0/22, p.Y, 1e-9)
}

func TestRender(t *testing.T) {
	scene := singleMirrorScene()
	scene.Obstacles = []Obstacle{{Position: V(-3, 1.5, 3), Size: V(1, 3, 1)}}
	view := NewTopDownView(scene, Trace(scene), 200, 100)

	img := view.Render()
	require.NotNil(t, img)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())

	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, []uint32{0x0a, 0x0a, 0x1a}, []uint32{r >> 8, g >> 8, b >> 8})

	path := filepath.Join(t.TempDir(), "beam.png")
	require.NoError(t, view.SavePNG(path))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}

func TestPlotProfile(t *testing.T) {
	beam := Trace(singleMirrorScene())
	img, err := PlotProfile(300, 200, beam)
	require.NoError(t, err)
	assert.NotNil(t, img)

	_, err = PlotProfile(300, 200, Beam{Points: beam.Points[:1]})
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "profile.png")
	assert.NoError(t, SaveProfile(path, 300, 200, beam))
}
