package laser

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/fogleman/gg"
	"github.com/fogleman/pt/pt"
)

// Fraction of the image left empty around the scene
const viewMargin = 0.05

type View struct {
	Scene Scene
	Beam  Beam
	XSize int
	YSize int
	Plane Plane
	// These cache the values needed to scale and translate from the scene to the requested image size
	scale      float64
	xTranslate float64
	yTranslate float64
}

// NewTopDownView returns a view looking down on the scene at the emitter's height
func NewTopDownView(scene Scene, beam Beam, xSize, ySize int) *View {
	return &View{
		Scene: scene,
		Beam:  beam,
		XSize: xSize,
		YSize: ySize,
		Plane: TopDownPlane(scene.Emitter.Position.Y),
	}
}

func (view *View) project(v pt.Vector) Point2D {
	return view.Plane.Project2D(v)
}

// BoundingBox returns the projected extent of the scene. The beam is ignored since an escaping
// beam reaches far beyond the puzzle.
func (scene Scene) BoundingBox(p Plane) (XMin, XMax, YMin, YMax float64) {
	points := Path2D{
		p.Project2D(scene.Emitter.Position),
	}
	r := scene.Receiver.Radius
	for _, corner := range []pt.Vector{V(-r, 0, -r), V(r, 0, r), V(-r, -r, 0), V(r, r, 0)} {
		points = append(points, p.Project2D(scene.Receiver.Position.Add(corner)))
	}
	for _, m := range scene.Mirrors {
		for _, c := range m.Corners() {
			points = append(points, p.Project2D(c))
		}
	}
	for _, o := range scene.Obstacles {
		min, max := o.Min(), o.Max()
		points = append(points, p.Project2D(min), p.Project2D(max))
	}
	XMin, XMax, YMin, YMax, _ = points.BoundingBox()
	return
}

func (view *View) computeScaleAndTranslation() {
	XMin, XMax, YMin, YMax := view.Scene.BoundingBox(view.Plane)
	XPad := (XMax - XMin) * viewMargin
	YPad := (YMax - YMin) * viewMargin
	XMin, XMax = XMin-XPad, XMax+XPad
	YMin, YMax = YMin-YPad, YMax+YPad
	view.xTranslate = -XMin
	view.yTranslate = -YMin
	XScale := float64(view.XSize) / math.Max(XMax-XMin, 1e-9)
	YScale := float64(view.YSize) / math.Max(YMax-YMin, 1e-9)
	view.scale = math.Min(XScale, YScale)
}

func (view *View) getScale() float64 {
	if view.scale == 0 {
		view.computeScaleAndTranslation()
	}
	return view.scale
}

func (view *View) translateAndScale(p Point2D) Point2D {
	scale := view.getScale()
	return p.Translate(view.xTranslate, view.yTranslate).Scale(scale)
}

func (view *View) toImage(v pt.Vector) Point2D {
	return view.translateAndScale(view.project(v))
}

func beamColor(scene Scene) string {
	if scene.Emitter.Color == "" {
		return "#ff0044"
	}
	return scene.Emitter.Color
}

// Render draws the scene and beam
func (view *View) Render() image.Image {
	c := gg.NewContext(view.XSize, view.YSize)
	c.SetHexColor("#0a0a1a")
	c.Clear()
	scale := view.getScale()

	// Obstacles are drawn where the view plane cuts through them
	c.SetHexColor("#4a5568")
	for _, o := range view.Scene.Obstacles {
		cube := pt.NewCube(o.Min(), o.Max(), pt.Material{}).Mesh()
		for _, outline := range view.Plane.MeshToPath(cube) {
			for i, p := range outline {
				ip := view.translateAndScale(p)
				if i == 0 {
					c.MoveTo(ip.X, ip.Y)
				} else {
					c.LineTo(ip.X, ip.Y)
				}
			}
			c.ClosePath()
			c.Fill()
		}
	}

	c.SetHexColor("#88ccff")
	c.SetLineWidth(3)
	for _, m := range view.Scene.Mirrors {
		corners := m.Corners()
		for i := range corners {
			p1 := view.toImage(corners[i])
			p2 := view.toImage(corners[(i+1)%len(corners)])
			c.DrawLine(p1.X, p1.Y, p2.X, p2.Y)
		}
		c.Stroke()
	}

	receiver := view.toImage(view.Scene.Receiver.Position)
	c.SetHexColor("#00ff88")
	c.DrawCircle(receiver.X, receiver.Y, view.Scene.Receiver.Radius*scale)
	c.Stroke()

	emitter := view.toImage(view.Scene.Emitter.Position)
	c.SetHexColor("#ffffff")
	c.DrawCircle(emitter.X, emitter.Y, 4)
	c.Fill()

	if len(view.Beam.Points) >= 2 {
		c.SetHexColor(beamColor(view.Scene))
		c.SetLineWidth(2)
		p1 := view.toImage(view.Beam.Points[0])
		for _, v := range view.Beam.Points[1:] {
			p2 := view.toImage(v)
			c.DrawLine(p1.X, p1.Y, p2.X, p2.Y)
			p1 = p2
		}
		c.Stroke()
		for _, v := range view.Beam.Reflections() {
			p := view.toImage(v)
			c.DrawCircle(p.X, p.Y, 0.15*scale)
			c.Fill()
		}
	}
	return c.Image()
}

// SavePNG renders the view and writes it to filename
func (view *View) SavePNG(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, view.Render())
}

// PlotProfile charts the beam's height against the distance it has travelled
func PlotProfile(X, Y int, beam Beam) (image.Image, error) {
	if len(beam.Points) < 2 {
		return nil, fmt.Errorf("beam has %d points, need at least 2", len(beam.Points))
	}
	p := plot.New()
	p.Title.Text = "Beam profile"
	p.X.Label.Text = "Distance travelled"
	p.Y.Label.Text = "Height"

	line := make(plotter.XYs, len(beam.Points))
	distance := 0.0
	for i, v := range beam.Points {
		if i > 0 {
			distance = distance + v.Sub(beam.Points[i-1]).Length()
		}
		line[i].X = distance
		line[i].Y = v.Y
	}

	l, err := plotter.NewLine(line)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Width = vg.Points(2)
	p.Add(l)

	if n := len(beam.MirrorHits); n > 0 {
		s, err := plotter.NewScatter(line[1 : 1+n])
		if err != nil {
			return nil, err
		}
		p.Add(s)
	}

	tmpdir, err := os.MkdirTemp("", "golaser")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpdir)

	if err := p.Save(font.Length(X), font.Length(Y), path.Join(tmpdir, "profile.png")); err != nil {
		return nil, err
	}
	f, err := os.Open(path.Join(tmpdir, "profile.png"))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

// SaveProfile writes the beam profile chart to filename
func SaveProfile(filename string, X, Y int, beam Beam) error {
	img, err := PlotProfile(X, Y, beam)
	if err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
