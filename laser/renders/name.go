package renders

import (
	"math/rand"
	"time"
)

var (
	adjectives = []string{
		"bright", "crimson", "amber", "violet", "polished", "silver", "hidden",
		"angled", "bent", "cold", "dim", "distant", "faint", "fierce", "glassy",
		"golden", "hollow", "narrow", "pale", "patient", "quiet", "sharp", "slanted",
		"steady", "still", "swift", "tilted", "twin", "wandering", "wild", "lucky",
	}

	nouns = []string{
		"beam", "prism", "mirror", "lens", "spark", "flare", "ray", "glint",
		"halo", "lantern", "beacon", "comet", "ember", "facet", "filament",
		"lighthouse", "moon", "needle", "orbit", "pulse", "signal", "star",
		"sun", "torch", "vector", "wave", "window", "crystal", "echo", "shard",
	}
)

var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// GenerateName creates a memorable identifier in the format "adjective-noun"
func GenerateName() string {
	return adjectives[rng.Intn(len(adjectives))] + "-" + nouns[rng.Intn(len(nouns))]
}

// GenerateID makes a name unique by appending a timestamp
func GenerateID(now time.Time) string {
	return GenerateName() + "-" + now.UTC().Format("20060102-150405")
}
