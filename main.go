package main

import (
	"fmt"
	"log"

	"github.com/alecthomas/kong"

	"github.com/jdginn/go-laser-puzzle/interact"
	"github.com/jdginn/go-laser-puzzle/laser"
	"github.com/jdginn/go-laser-puzzle/laser/config"
	"github.com/jdginn/go-laser-puzzle/laser/renders"
	"github.com/jdginn/go-laser-puzzle/levels"
)

type Globals struct {
	Catalog string `name:"catalog" short:"c" type:"existingfile" help:"level catalog to load instead of the built-in levels"`
}

// loadCatalog loads, merges and validates the selected catalog
func (g *Globals) loadCatalog() (*config.Catalog, error) {
	if g.Catalog == "" {
		return levels.Default()
	}
	return config.LoadFromFile(g.Catalog, config.LoadOptions{
		ValidateImmediately: true,
		ResolvePaths:        true,
		MergeFiles:          true,
	})
}

// level returns the level with the given 1-based catalog position, optionally with its solution applied
func (g *Globals) level(number int, solved bool) (*config.Catalog, laser.Level, laser.Scene, error) {
	c, err := g.loadCatalog()
	if err != nil {
		return nil, laser.Level{}, laser.Scene{}, err
	}
	all, err := c.CreateLevels()
	if err != nil {
		return nil, laser.Level{}, laser.Scene{}, err
	}
	if number < 1 || number > len(all) {
		return nil, laser.Level{}, laser.Scene{}, fmt.Errorf("level %d does not exist; the catalog has %d levels", number, len(all))
	}
	l := all[number-1]
	if !solved {
		return c, l, l.Scene, nil
	}
	scene, err := l.Solved()
	if err != nil {
		return nil, laser.Level{}, laser.Scene{}, err
	}
	return c, l, scene, nil
}

var CLI struct {
	Globals

	Play     PlayCmd     `cmd:"" default:"1" help:"Play the puzzle in the terminal"`
	Trace    TraceCmd    `cmd:"" help:"Trace the beam through a level and print its path"`
	Render   RenderCmd   `cmd:"" help:"Render a level to PNG, profile plot, annotations and STL"`
	Validate ValidateCmd `cmd:"" help:"Validate the catalog and check every solution reaches its receiver"`
	Dump     DumpCmd     `cmd:"" help:"Write the catalog out as YAML"`
}

type PlayCmd struct {
	Level int `name:"level" short:"l" default:"1" help:"level to start on"`
}

func (c PlayCmd) Run(globals *Globals) error {
	catalog, err := globals.loadCatalog()
	if err != nil {
		return err
	}
	g, err := catalog.CreateGame()
	if err != nil {
		return err
	}
	if err := g.SelectLevel(c.Level); err != nil {
		return err
	}
	return interact.Interact(g)
}

type TraceCmd struct {
	Level  int  `arg:"" name:"level" help:"level number"`
	Solved bool `name:"solved" help:"apply the level's solution before tracing"`
}

func (c TraceCmd) Run(globals *Globals) error {
	catalog, l, scene, err := globals.level(c.Level, c.Solved)
	if err != nil {
		return err
	}
	beam := scene.Trace(catalog.Trace.Create())

	fmt.Printf("Level %d: %s\n", l.ID, l.Name)
	for i, p := range beam.Points {
		label := "emitter"
		switch {
		case i > 0 && i <= len(beam.MirrorHits):
			label = fmt.Sprintf("mirror %d", beam.MirrorHits[i-1]+1)
		case i > 0:
			label = beam.Termination.String()
		}
		fmt.Printf("  %2d  (%7.3f, %7.3f, %7.3f)  %s\n", i, p.X, p.Y, p.Z, label)
	}
	fmt.Printf("%s after %d bounces, path length %.3f\n", beam.Termination, beam.Bounces(), beam.PathLength())
	return nil
}

type RenderCmd struct {
	Level  int    `arg:"" name:"level" help:"level number"`
	Solved bool   `name:"solved" help:"apply the level's solution before rendering"`
	Out    string `name:"out" default:"renders" help:"directory that render directories are created in"`
	Width  int    `name:"width" default:"1000"`
	Height int    `name:"height" default:"800"`
}

func (c RenderCmd) Run(globals *Globals) error {
	catalog, l, scene, err := globals.level(c.Level, c.Solved)
	if err != nil {
		return err
	}
	beam := scene.Trace(catalog.Trace.Create())

	dir, err := renders.Create(c.Out)
	if err != nil {
		return err
	}
	if globals.Catalog != "" {
		if err := dir.CopyFile(globals.Catalog); err != nil {
			return err
		}
	}

	view := laser.NewTopDownView(scene, beam, c.Width, c.Height)
	if err := view.SavePNG(dir.GetFilePath("beam.png")); err != nil {
		return fmt.Errorf("rendering beam: %w", err)
	}
	if err := laser.SaveProfile(dir.GetFilePath("profile.png"), c.Width, c.Height/2, beam); err != nil {
		return fmt.Errorf("plotting profile: %w", err)
	}
	if err := laser.SaveAnnotations(dir.GetFilePath("annotations.json"), scene, beam); err != nil {
		return err
	}
	if err := scene.SaveSTL(dir.GetFilePath("scene.stl")); err != nil {
		fmt.Printf("Warning: skipping scene.stl: %v\n", err)
	}

	fmt.Printf("Level %d (%s): %s\n", l.ID, l.Name, beam.Termination)
	fmt.Printf("Rendered to %s\n", dir.Path)
	return nil
}

type ValidateCmd struct{}

func (c ValidateCmd) Run(globals *Globals) error {
	catalog, err := globals.loadCatalog()
	if err != nil {
		return err
	}
	all, err := catalog.CreateLevels()
	if err != nil {
		return err
	}
	params := catalog.Trace.Create()

	failed := 0
	for _, l := range all {
		start := l.Scene.Trace(params)
		status := "no solution"
		if len(l.Solution) > 0 {
			solved, err := l.Solved()
			if err != nil {
				return err
			}
			beam := solved.Trace(params)
			if beam.HitReceiver {
				status = fmt.Sprintf("solution ok (%d bounces)", beam.Bounces())
			} else {
				status = fmt.Sprintf("solution FAILED: %s", beam.Termination)
				failed++
			}
		}
		fmt.Printf("Level %d %-20s start: %-12s %s\n", l.ID, l.Name, start.Termination, status)
	}
	if failed > 0 {
		return fmt.Errorf("%d solutions do not reach their receiver", failed)
	}
	fmt.Printf("%d levels OK\n", len(all))
	return nil
}

type DumpCmd struct {
	Output string `arg:"" name:"output" help:"YAML file to write"`
}

func (c DumpCmd) Run(globals *Globals) error {
	catalog, err := globals.loadCatalog()
	if err != nil {
		return err
	}
	return config.SaveToFile(catalog, c.Output)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("golaser"),
		kong.Description("A 3D light reflection puzzle."),
		kong.UsageOnError(),
	)
	err := ctx.Run(&CLI.Globals)
	if err != nil {
		log.Fatal(err)
	}
}
