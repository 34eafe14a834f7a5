package tableau

import (
	"math"
	"math/rand/v2"
)

// StaggerOffsets returns the additive delay for each of n elements in
// ordinal order. Random offsets are uniform in [0, (n-1)·Amount] and drawn
// from rng, or from the global source when rng is nil. All other origins
// are deterministic.
func StaggerOffsets(n int, cfg *StaggerConfig, rng *rand.Rand) []float64 {
	offsets := make([]float64, n)
	if cfg == nil || cfg.Amount == 0 || n <= 1 {
		return offsets
	}
	center := float64(n-1) / 2
	span := float64(n-1) * cfg.Amount
	for i := range offsets {
		switch cfg.From {
		case StaggerEnd:
			offsets[i] = float64(n-1-i) * cfg.Amount
		case StaggerCenter:
			offsets[i] = math.Abs(float64(i)-center) * cfg.Amount
		case StaggerRandom:
			if rng != nil {
				offsets[i] = rng.Float64() * span
			} else {
				offsets[i] = rand.Float64() * span
			}
		default:
			offsets[i] = float64(i) * cfg.Amount
		}
	}
	return offsets
}
