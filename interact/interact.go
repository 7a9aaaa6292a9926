package interact

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jdginn/go-laser-puzzle/game"
)

var (
	docStyle      = lipgloss.NewStyle().Margin(1, 2)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#88ccff"))
	hudStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#a0aec0"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555"))
	winStyle      = lipgloss.NewStyle().Bold(true).Padding(0, 2).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#00ff88"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#4a5568"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffff00"))
)

const help = "tab/1-9 select · arrows move x/z · +/- move y · a/d turn · w/s tilt · r reset · n next · l levels · q quit"

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type levelItem struct {
	number     int
	name       string
	difficulty string
	completed  bool
}

func (i levelItem) Title() string {
	return fmt.Sprintf("%d. %s", i.number, i.name)
}

func (i levelItem) Description() string {
	if i.completed {
		return i.difficulty + " · completed"
	}
	return i.difficulty
}

func (i levelItem) FilterValue() string {
	return i.name
}

type model struct {
	game      *game.Game
	list      list.Model
	choosing  bool
	status    string
	err       error
	mapWidth  int
	mapHeight int
}

func newModel(g *game.Game) model {
	m := model{
		game:      g,
		list:      list.New(nil, list.NewDefaultDelegate(), 0, 0),
		mapWidth:  41,
		mapHeight: 21,
	}
	m.list.Title = "Levels"
	return m
}

func (m model) levelItems() []list.Item {
	items := make([]list.Item, m.game.LevelCount())
	for i, l := range m.game.Levels() {
		items[i] = levelItem{
			number:     i + 1,
			name:       l.Name,
			difficulty: l.Difficulty,
			completed:  m.game.IsCompleted(i + 1),
		}
	}
	return items
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.game.Tick(time.Second)
		return m, tick()
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.choosing {
			return m.updateLevelSelect(msg)
		}
		return m.handleKey(msg.String())
	}

	if m.choosing {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateLevelSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if i, ok := m.list.SelectedItem().(levelItem); ok {
			m.err = m.game.SelectLevel(i.number)
		}
		m.choosing = false
		return m, nil
	case "esc":
		m.choosing = false
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleKey applies one key press to the game. Errors are shown to the player rather than returned.
func (m model) handleKey(key string) (tea.Model, tea.Cmd) {
	m.err = nil
	m.status = ""
	g := m.game

	switch key {
	case "q":
		return m, tea.Quit
	case "l":
		m.choosing = true
		m.list.SetItems(m.levelItems())
		m.list.Select(g.LevelNumber() - 1)
		return m, nil
	case "r":
		g.Reset()
		m.status = "level reset"
		return m, nil
	case "n":
		m.err = g.NextLevel()
		return m, nil
	case "tab":
		g.CycleSelection()
		return m, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.err = g.SelectMirror(int(key[0] - '1'))
		return m, nil
	}

	id, ok := g.Selected()
	if !ok {
		m.status = "select a mirror first"
		return m, nil
	}
	switch key {
	case "left":
		m.err = g.MoveMirror(id, game.AxisX, -1)
	case "right":
		m.err = g.MoveMirror(id, game.AxisX, 1)
	case "up":
		m.err = g.MoveMirror(id, game.AxisZ, -1)
	case "down":
		m.err = g.MoveMirror(id, game.AxisZ, 1)
	case "+", "=":
		m.err = g.MoveMirror(id, game.AxisY, 1)
	case "-":
		m.err = g.MoveMirror(id, game.AxisY, -1)
	case "a":
		m.err = g.RotateMirror(id, game.AxisY, -1)
	case "d":
		m.err = g.RotateMirror(id, game.AxisY, 1)
	case "w":
		m.err = g.RotateMirror(id, game.AxisX, -1)
	case "s":
		m.err = g.RotateMirror(id, game.AxisX, 1)
	}
	if errors.Is(m.err, game.ErrSolved) {
		m.err = nil
		m.status = "solved! press n for the next level or r to replay"
	}
	return m, nil
}

func (m model) hud() string {
	g := m.game
	l := g.Level()
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Level %d/%d: %s", g.LevelNumber(), g.LevelCount(), l.Name)))
	b.WriteString(hudStyle.Render(fmt.Sprintf("  (%s)", l.Difficulty)))
	b.WriteString("\n")
	b.WriteString(hudStyle.Render(fmt.Sprintf("moves %d · time %s · completed %d/%d",
		g.Moves(), g.Elapsed().Truncate(time.Second), len(g.Completed()), g.LevelCount())))
	b.WriteString("\n")

	scene := g.Scene()
	selected, _ := g.Selected()
	for _, mirror := range scene.Mirrors {
		line := fmt.Sprintf("[%d] pos (%5.1f %5.1f %5.1f) rot (%4.0f° %4.0f°)",
			mirror.ID+1, mirror.Position.X, mirror.Position.Y, mirror.Position.Z,
			degrees(mirror.Rotation.X), degrees(mirror.Rotation.Y))
		if !mirror.Movable {
			line += " fixed"
		}
		if mirror.ID == selected {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(hudStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) View() string {
	if m.choosing {
		return docStyle.Render(m.list.View())
	}

	var b strings.Builder
	b.WriteString(m.hud())
	b.WriteString("\n")
	selected, _ := m.game.Selected()
	b.WriteString(renderMap(m.game.Scene(), m.game.Beam(), selected, m.mapWidth, m.mapHeight))
	b.WriteString("\n")

	if r, ok := m.game.Result(); ok {
		b.WriteString(winStyle.Render(fmt.Sprintf("SOLVED in %d moves, %s · %s · %.0f points",
			r.Moves, r.Elapsed.Truncate(time.Second), strings.Repeat("★", r.Stars), r.Score)))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(hudStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(help))
	return docStyle.Render(b.String())
}

// Interact runs the terminal game until the player quits
func Interact(g *game.Game) error {
	p := tea.NewProgram(newModel(g), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running terminal ui: %w", err)
	}
	return nil
}
