package game

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/jdginn/go-laser-puzzle/laser"
)

var (
	ErrNoLevels      = errors.New("no levels to play")
	ErrUnknownLevel  = errors.New("unknown level")
	ErrUnknownMirror = errors.New("unknown mirror")
	ErrFixedMirror   = errors.New("mirror cannot be moved")
	ErrInvalidAxis   = errors.New("invalid axis")
	ErrSolved        = errors.New("level already solved")
)

type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(s) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidAxis, s)
}

// Rules are the limits on what a player can do to a mirror in one action
type Rules struct {
	// Radians per rotate action
	RotationStep float64
	// Distance per move action
	MoveStep float64
	// Mirror positions are clamped to [-Bounds, Bounds] on each axis
	Bounds float64
	Trace  laser.TraceParams
}

func DefaultRules() Rules {
	return Rules{
		RotationStep: math.Pi / 12,
		MoveStep:     0.5,
		Bounds:       8,
		Trace:        laser.DefaultTraceParams(),
	}
}

// Result describes a solved level
type Result struct {
	Level   int
	Moves   int
	Elapsed time.Duration
	Score   float64
	Stars   int
}

// Game owns the mutable state of a play session: which level is loaded, where its mirrors are,
// and how long the player has taken. All methods must be called from one goroutine.
type Game struct {
	// Called once each time a level is solved
	OnWin func(Result)

	rules     Rules
	scoring   ScoreCard
	levels    []laser.Level
	current   int
	mirrors   []laser.Mirror
	selected  int
	moves     int
	elapsed   time.Duration
	won       bool
	result    Result
	completed map[int]bool
	win       *laser.WinEvaluator
	beam      laser.Beam
}

// New starts a game on the first level
func New(levels []laser.Level, rules Rules, scoring ScoreCard) (*Game, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	g := &Game{
		rules:     rules,
		scoring:   scoring,
		levels:    levels,
		completed: map[int]bool{},
	}
	g.win = laser.NewWinEvaluator(g.handleWin)
	g.load(0)
	return g, nil
}

func (g *Game) load(index int) {
	g.current = index
	g.mirrors = append([]laser.Mirror(nil), g.levels[index].Scene.Mirrors...)
	g.selected = -1
	g.moves = 0
	g.elapsed = 0
	g.won = false
	g.result = Result{}
	g.win.Reset()
	g.Update()
}

func (g *Game) handleWin() {
	g.won = true
	g.completed[g.LevelNumber()] = true
	score := g.scoring.Score(g.moves, g.elapsed)
	g.result = Result{
		Level:   g.LevelNumber(),
		Moves:   g.moves,
		Elapsed: g.elapsed,
		Score:   score,
		Stars:   g.scoring.Stars(g.moves),
	}
	if g.OnWin != nil {
		g.OnWin(g.result)
	}
}

// Scene returns a snapshot of the current level with the player's mirror edits applied.
// The snapshot shares nothing with the game.
func (g *Game) Scene() laser.Scene {
	s := g.levels[g.current].Scene.Clone()
	s.Mirrors = append([]laser.Mirror(nil), g.mirrors...)
	return s
}

// Update retraces the beam through the current mirrors and checks for a win
func (g *Game) Update() laser.Beam {
	g.beam = g.Scene().Trace(g.rules.Trace)
	g.win.Observe(g.beam.HitReceiver)
	return g.beam
}

// Beam returns the beam computed by the last Update
func (g *Game) Beam() laser.Beam {
	return g.beam
}

func (g *Game) mirrorIndex(id int) (int, error) {
	for i, m := range g.mirrors {
		if m.ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %d", ErrUnknownMirror, id)
}

// SelectMirror selects the mirror, or clears the selection if it is already selected
func (g *Game) SelectMirror(id int) error {
	if _, err := g.mirrorIndex(id); err != nil {
		return err
	}
	if g.selected == id {
		g.selected = -1
	} else {
		g.selected = id
	}
	return nil
}

// Selected returns the selected mirror ID
func (g *Game) Selected() (int, bool) {
	return g.selected, g.selected >= 0
}

// CycleSelection selects the next mirror in level order, wrapping around
func (g *Game) CycleSelection() {
	if len(g.mirrors) == 0 {
		return
	}
	next := 0
	if i, err := g.mirrorIndex(g.selected); err == nil {
		next = (i + 1) % len(g.mirrors)
	}
	g.selected = g.mirrors[next].ID
}

func (g *Game) editable(id int) (int, error) {
	if g.won {
		return -1, ErrSolved
	}
	i, err := g.mirrorIndex(id)
	if err != nil {
		return -1, err
	}
	if !g.mirrors[i].Movable {
		return -1, fmt.Errorf("%w: %d", ErrFixedMirror, id)
	}
	return i, nil
}

// RotateMirror turns a mirror one step about its X or Y angle. direction is +1 or -1.
func (g *Game) RotateMirror(id int, axis Axis, direction int) error {
	i, err := g.editable(id)
	if err != nil {
		return err
	}
	step := float64(sign(direction)) * g.rules.RotationStep
	switch axis {
	case AxisX:
		g.mirrors[i].Rotation.X += step
	case AxisY:
		g.mirrors[i].Rotation.Y += step
	default:
		return fmt.Errorf("%w: mirrors rotate about x or y, not %s", ErrInvalidAxis, axis)
	}
	g.moves++
	g.Update()
	return nil
}

// MoveMirror translates a mirror one step along a world axis, keeping it within bounds.
// direction is +1 or -1. A move into the boundary still counts.
func (g *Game) MoveMirror(id int, axis Axis, direction int) error {
	i, err := g.editable(id)
	if err != nil {
		return err
	}
	step := float64(sign(direction)) * g.rules.MoveStep
	p := &g.mirrors[i].Position
	switch axis {
	case AxisX:
		p.X = clamp(p.X+step, g.rules.Bounds)
	case AxisY:
		p.Y = clamp(p.Y+step, g.rules.Bounds)
	case AxisZ:
		p.Z = clamp(p.Z+step, g.rules.Bounds)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidAxis, axis)
	}
	g.moves++
	g.Update()
	return nil
}

// Tick advances the clock. The clock stops once the level is solved.
func (g *Game) Tick(d time.Duration) {
	if g.won {
		return
	}
	g.elapsed += d
}

// Reset restores the current level to its starting state
func (g *Game) Reset() {
	g.load(g.current)
}

// NextLevel loads the level after the current one
func (g *Game) NextLevel() error {
	return g.SelectLevel(g.LevelNumber() + 1)
}

// SelectLevel loads a level by its 1-based position in the catalog
func (g *Game) SelectLevel(number int) error {
	if number < 1 || number > len(g.levels) {
		return fmt.Errorf("%w: %d", ErrUnknownLevel, number)
	}
	g.load(number - 1)
	return nil
}

// Levels returns every level in the catalog in their starting state
func (g *Game) Levels() []laser.Level {
	return append([]laser.Level(nil), g.levels...)
}

func (g *Game) Level() laser.Level {
	return g.levels[g.current]
}

// LevelNumber is the 1-based position of the current level
func (g *Game) LevelNumber() int {
	return g.current + 1
}

func (g *Game) LevelCount() int {
	return len(g.levels)
}

func (g *Game) HasNextLevel() bool {
	return g.current+1 < len(g.levels)
}

func (g *Game) Moves() int {
	return g.moves
}

func (g *Game) Elapsed() time.Duration {
	return g.elapsed
}

func (g *Game) Won() bool {
	return g.won
}

// Result returns the outcome of the current level once it is solved
func (g *Game) Result() (Result, bool) {
	return g.result, g.won
}

// Completed returns the numbers of all levels solved this session
func (g *Game) Completed() []int {
	levels := make([]int, 0, len(g.completed))
	for n := range g.completed {
		levels = append(levels, n)
	}
	sort.Ints(levels)
	return levels
}

func (g *Game) IsCompleted(number int) bool {
	return g.completed[number]
}

func sign(direction int) int {
	if direction < 0 {
		return -1
	}
	return 1
}

func clamp(v, bound float64) float64 {
	return math.Max(-bound, math.Min(bound, v))
}
