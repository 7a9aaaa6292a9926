package laser

// PathLength returns the total distance travelled by the beam.
func (b Beam) PathLength() float64 {
	total := 0.0
	for i := 1; i < len(b.Points); i++ {
		total = total + b.Points[i].Sub(b.Points[i-1]).Length()
	}
	return total
}

// Bounces returns the number of mirror reflections along the beam.
func (b Beam) Bounces() int {
	return len(b.MirrorHits)
}

// MirrorsUsed returns the distinct mirror IDs the beam touched, in first-hit order.
func (b Beam) MirrorsUsed() []int {
	seen := make(map[int]bool, len(b.MirrorHits))
	used := []int{}
	for _, id := range b.MirrorHits {
		if !seen[id] {
			seen[id] = true
			used = append(used, id)
		}
	}
	return used
}
