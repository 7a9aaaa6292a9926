package interact

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fogleman/pt/pt"

	"github.com/jdginn/go-laser-puzzle/laser"
)

// Half-width of the square of floor shown by the map, in scene units
const mapExtent = 10.0

var (
	beamStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0044"))
	mirrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#88ccff"))
	obstacleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4a5568"))
	receiverStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	emitterStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff"))
)

type cell struct {
	r     rune
	style *lipgloss.Style
}

type grid struct {
	cells         [][]cell
	width, height int
}

func newGrid(width, height int) *grid {
	g := &grid{width: width, height: height}
	g.cells = make([][]cell, height)
	for i := range g.cells {
		g.cells[i] = make([]cell, width)
		for j := range g.cells[i] {
			g.cells[i][j] = cell{r: '·', style: &helpStyle}
		}
	}
	return g
}

// locate maps a world point onto the grid, looking down the Y axis with -Z at the top
func (g *grid) locate(v pt.Vector) (row, col int, ok bool) {
	col = int(math.Round((v.X + mapExtent) / (2 * mapExtent) * float64(g.width-1)))
	row = int(math.Round((v.Z + mapExtent) / (2 * mapExtent) * float64(g.height-1)))
	ok = row >= 0 && row < g.height && col >= 0 && col < g.width
	return
}

func (g *grid) set(v pt.Vector, r rune, style *lipgloss.Style) {
	if row, col, ok := g.locate(v); ok {
		g.cells[row][col] = cell{r, style}
	}
}

// center returns the world position at the middle of a cell
func (g *grid) center(row, col int) pt.Vector {
	x := float64(col)*2*mapExtent/float64(g.width-1) - mapExtent
	z := float64(row)*2*mapExtent/float64(g.height-1) - mapExtent
	return laser.V(x, 0, z)
}

func (g *grid) String() string {
	var b strings.Builder
	for i, row := range g.cells {
		for _, c := range row {
			b.WriteString(c.style.Render(string(c.r)))
		}
		if i < len(g.cells)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderMap draws a top-down character map of the scene and beam
func renderMap(scene laser.Scene, beam laser.Beam, selected, width, height int) string {
	g := newGrid(width, height)

	for _, o := range scene.Obstacles {
		min, max := o.Min(), o.Max()
		for row := 0; row < height; row++ {
			for col := 0; col < width; col++ {
				c := g.center(row, col)
				if c.X >= min.X && c.X <= max.X && c.Z >= min.Z && c.Z <= max.Z {
					g.cells[row][col] = cell{'#', &obstacleStyle}
				}
			}
		}
	}

	const step = 0.1
	for i := 1; i < len(beam.Points); i++ {
		from, to := beam.Points[i-1], beam.Points[i]
		segment := to.Sub(from)
		n := int(math.Ceil(segment.Length() / step))
		for s := 0; s <= n; s++ {
			g.set(from.Add(segment.MulScalar(float64(s)/float64(max(n, 1)))), '*', &beamStyle)
		}
	}

	for _, m := range scene.Mirrors {
		style := &mirrorStyle
		if m.ID == selected {
			style = &selectedStyle
		}
		corners := m.Corners()
		// Sample the rectangle so a mirror seen edge-on still shows its footprint
		for u := 0.0; u <= 1; u += 0.125 {
			for v := 0.0; v <= 1; v += 0.125 {
				a := corners[0].Add(corners[1].Sub(corners[0]).MulScalar(u))
				p := a.Add(corners[3].Sub(corners[0]).MulScalar(v))
				g.set(p, '=', style)
			}
		}
		g.set(m.Position, rune('1'+m.ID), style)
	}

	g.set(scene.Receiver.Position, 'R', &receiverStyle)
	g.set(scene.Emitter.Position, 'E', &emitterStyle)
	return g.String()
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
