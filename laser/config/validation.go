package config

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
)

// Validation helper functions
func validatePositive(field string, value float64) []ValidationError {
	if value <= 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be positive",
		}}
	}
	return nil
}

func validateNonNegative(field string, value float64) []ValidationError {
	if value < 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be non-negative",
		}}
	}
	return nil
}

func validateInRange(field string, value, min, max float64) []ValidationError {
	if value < min || value > max {
		return []ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("must be between %v and %v", min, max),
		}}
	}
	return nil
}

func validateNonZero(field string, vec [3]float64) []ValidationError {
	if vec == [3]float64{} {
		return []ValidationError{{
			Field:   field,
			Message: "must not be the zero vector",
		}}
	}
	return nil
}

func validateWithinBounds(field string, vec [3]float64, bound float64) []ValidationError {
	if bound <= 0 {
		return nil
	}
	for _, v := range vec {
		if math.Abs(v) > bound {
			return []ValidationError{{
				Field:   field,
				Message: fmt.Sprintf("must lie within +/-%v on every axis", bound),
			}}
		}
	}
	return nil
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidationError represents a structured validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FormatValidationErrors groups errors by their top-level field
func FormatValidationErrors(errs []ValidationError) string {
	if len(errs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Validation Errors:\n")

	// Group errors by category
	categories := map[string][]ValidationError{}
	for _, err := range errs {
		category := strings.Split(err.Field, ".")[0]
		categories[category] = append(categories[category], err)
	}

	names := make([]string, 0, len(categories))
	for category := range categories {
		names = append(names, category)
	}
	sort.Strings(names)

	// Print errors by category
	for _, category := range names {
		categoryErrors := categories[category]
		b.WriteString(fmt.Sprintf("\n%s:\n", strings.ToUpper(category)))
		for _, err := range categoryErrors {
			// Remove category prefix from field for cleaner display
			field := strings.TrimPrefix(err.Field, category+".")
			if field == category {
				field = "general"
			}
			b.WriteString(fmt.Sprintf("  - %s: %s\n", field, err.Message))
		}
	}

	return b.String()
}

// Validate performs validation on the entire catalog
func (c *Catalog) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.Trace.Validate()...)
	errors = append(errors, c.Controls.Validate()...)
	errors = append(errors, c.Scoring.Validate()...)
	errors = append(errors, c.Levels.Validate(c.Controls.Bounds)...)
	return errors
}

// ValidateFiles checks that every file the catalog refers to exists
func (c *Catalog) ValidateFiles(resolver *PathResolver) []ValidationError {
	var errors []ValidationError
	if c.Levels.FromFile != "" && !resolver.FileExists(c.Levels.FromFile) {
		errors = append(errors, ValidationError{
			Field:   "levels.from_file",
			Message: fmt.Sprintf("file '%s' does not exist", c.Levels.FromFile),
		})
	}
	for _, level := range c.Levels.Inline {
		if level.ObstaclesFromFile != "" && !resolver.FileExists(level.ObstaclesFromFile) {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("levels.%d.obstacles_from_file", level.ID),
				Message: fmt.Sprintf("file '%s' does not exist", level.ObstaclesFromFile),
			})
		}
	}
	return errors
}

func (t *Trace) Validate() []ValidationError {
	var errors []ValidationError
	if t.MaxBounces < 1 {
		errors = append(errors, ValidationError{
			Field:   "trace.max_bounces",
			Message: "must be at least 1",
		})
	}
	errors = append(errors, validatePositive("trace.max_distance", t.MaxDistance)...)
	return errors
}

func (c *Controls) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, validateInRange("controls.rotation_step_deg", c.RotationStepDeg, 0.1, 90)...)
	errors = append(errors, validatePositive("controls.move_step", c.MoveStep)...)
	errors = append(errors, validatePositive("controls.bounds", c.Bounds)...)
	return errors
}

func (s *Scoring) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, validatePositive("scoring.max_score", s.MaxScore)...)
	errors = append(errors, validateCurve("scoring.moves", s.Moves)...)
	errors = append(errors, validateCurve("scoring.time_seconds", s.TimeSeconds)...)
	errors = append(errors, validateNonNegative("scoring.three_star_moves", float64(s.ThreeStarMoves))...)
	errors = append(errors, validateNonNegative("scoring.two_star_moves", float64(s.TwoStarMoves))...)
	if s.TwoStarMoves != 0 && s.ThreeStarMoves > s.TwoStarMoves {
		errors = append(errors, ValidationError{
			Field:   "scoring.three_star_moves",
			Message: "must not exceed two_star_moves",
		})
	}
	return errors
}

func validateCurve(field string, curve map[float64]float64) []ValidationError {
	if len(curve) < 2 {
		return []ValidationError{{
			Field:   field,
			Message: "needs at least two points",
		}}
	}
	var errors []ValidationError
	for x, y := range curve {
		errors = append(errors, validateNonNegative(fmt.Sprintf("%s.%v", field, x), x)...)
		errors = append(errors, validateInRange(fmt.Sprintf("%s.%v", field, x), y, 0, 1)...)
	}
	return errors
}

func (l *LevelList) Validate(bounds float64) []ValidationError {
	if len(l.Inline) == 0 && l.FromFile == "" {
		return []ValidationError{{
			Field:   "levels",
			Message: "either inline or from_file must be specified",
		}}
	}

	var errors []ValidationError
	seen := map[int]bool{}
	for i := range l.Inline {
		level := &l.Inline[i]
		prefix := fmt.Sprintf("levels.%d", level.ID)
		if level.ID < 1 {
			prefix = fmt.Sprintf("levels[%d]", i)
			errors = append(errors, ValidationError{
				Field:   prefix + ".id",
				Message: "must be a positive integer",
			})
		} else if seen[level.ID] {
			errors = append(errors, ValidationError{
				Field:   prefix + ".id",
				Message: "duplicate level id",
			})
		}
		seen[level.ID] = true
		errors = append(errors, level.validate(prefix, bounds)...)
	}
	return errors
}

func (l *Level) validate(prefix string, bounds float64) []ValidationError {
	var errors []ValidationError

	if l.Name == "" {
		errors = append(errors, ValidationError{
			Field:   prefix + ".name",
			Message: "name is required",
		})
	}

	errors = append(errors, validateNonZero(prefix+".emitter.direction", l.Emitter.Direction)...)
	if l.Emitter.Color != "" && !hexColor.MatchString(l.Emitter.Color) {
		errors = append(errors, ValidationError{
			Field:   prefix + ".emitter.color",
			Message: fmt.Sprintf("'%s' is not a #rrggbb color", l.Emitter.Color),
		})
	}
	errors = append(errors, validatePositive(prefix+".receiver.size", l.Receiver.Size)...)

	for i, m := range l.Mirrors {
		field := fmt.Sprintf("%s.mirrors[%d]", prefix, i)
		errors = append(errors, validatePositive(field+".size.width", m.Size[0])...)
		errors = append(errors, validatePositive(field+".size.height", m.Size[1])...)
		if m.Movable {
			errors = append(errors, validateWithinBounds(field+".position", m.Position, bounds)...)
		}
	}

	for i, o := range l.Obstacles {
		field := fmt.Sprintf("%s.obstacles[%d].size", prefix, i)
		for axis, v := range o.Size {
			errors = append(errors, validatePositive(fmt.Sprintf("%s.%c", field, 'x'+axis), v)...)
		}
	}

	for i, pose := range l.Solution {
		field := fmt.Sprintf("%s.solution[%d]", prefix, i)
		if pose.Mirror < 0 || pose.Mirror >= len(l.Mirrors) {
			errors = append(errors, ValidationError{
				Field:   field + ".mirror",
				Message: fmt.Sprintf("references undefined mirror %d", pose.Mirror),
			})
		}
		if pose.Position != nil {
			errors = append(errors, validateWithinBounds(field+".position", *pose.Position, bounds)...)
		}
	}

	return errors
}
