package config

// Catalog is the complete set of puzzles plus the rules shared by all of them
type Catalog struct {
	Metadata Metadata  `yaml:"metadata"`
	Trace    Trace     `yaml:"trace"`
	Controls Controls  `yaml:"controls"`
	Scoring  Scoring   `yaml:"scoring"`
	Levels   LevelList `yaml:"levels"`
}

type Metadata struct {
	Timestamp string `yaml:"timestamp,omitempty"` // YYYY-MM-DD HH:MM:SS in UTC
	GitCommit string `yaml:"git_commit,omitempty"`
}

type Trace struct {
	MaxBounces  int     `yaml:"max_bounces"`
	MaxDistance float64 `yaml:"max_distance"`
}

type Controls struct {
	RotationStepDeg float64 `yaml:"rotation_step_deg"`
	MoveStep        float64 `yaml:"move_step"`
	Bounds          float64 `yaml:"bounds"` // mirrors are kept within [-bounds, bounds] on each axis
}

// Scoring maps moves and elapsed seconds to a multiplier in [0, 1]. Stars depend on moves alone.
type Scoring struct {
	MaxScore       float64             `yaml:"max_score"`
	Moves          map[float64]float64 `yaml:"moves"`        // move count -> multiplier
	TimeSeconds    map[float64]float64 `yaml:"time_seconds"` // elapsed seconds -> multiplier
	ThreeStarMoves int                 `yaml:"three_star_moves,omitempty"`
	TwoStarMoves   int                 `yaml:"two_star_moves,omitempty"`
}

type LevelList struct {
	Inline   []Level `yaml:"inline,omitempty"`
	FromFile string  `yaml:"from_file,omitempty"`
}

type Level struct {
	ID                int            `yaml:"id" json:"id"`
	Name              string         `yaml:"name" json:"name"`
	Difficulty        string         `yaml:"difficulty" json:"difficulty"`
	Emitter           Emitter        `yaml:"emitter" json:"emitter"`
	Receiver          Receiver       `yaml:"receiver" json:"receiver"`
	Mirrors           []Mirror       `yaml:"mirrors" json:"mirrors"`
	Obstacles         []Obstacle     `yaml:"obstacles,omitempty" json:"obstacles,omitempty"`
	ObstaclesFromFile string         `yaml:"obstacles_from_file,omitempty" json:"obstacles_from_file,omitempty"`
	Solution          []SolutionPose `yaml:"solution,omitempty" json:"solution,omitempty"`
}

type Emitter struct {
	Position  [3]float64 `yaml:"position" json:"position"`
	Direction [3]float64 `yaml:"direction" json:"direction"`
	Color     string     `yaml:"color" json:"color"`
}

type Receiver struct {
	Position [3]float64 `yaml:"position" json:"position"`
	Size     float64    `yaml:"size" json:"size"` // radius
}

// Mirror IDs are their index within the level
type Mirror struct {
	Position    [3]float64 `yaml:"position" json:"position"`
	RotationDeg [3]float64 `yaml:"rotation_deg" json:"rotation_deg"`
	Size        [2]float64 `yaml:"size" json:"size"` // width, height
	Movable     bool       `yaml:"movable" json:"movable"`
}

type Obstacle struct {
	Position [3]float64 `yaml:"position" json:"position"`
	Size     [3]float64 `yaml:"size" json:"size"`
}

type SolutionPose struct {
	Mirror      int         `yaml:"mirror" json:"mirror"`
	RotationDeg [3]float64  `yaml:"rotation_deg" json:"rotation_deg"`
	Position    *[3]float64 `yaml:"position,omitempty" json:"position,omitempty"`
}
