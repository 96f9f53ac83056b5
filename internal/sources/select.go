package sources

import (
	"math/rand"
	"time"
)

// SelectSubset picks k adapters from the registry for one fetch cycle.
// Rotating a random subset spreads load across upstreams instead of hitting
// every site every cycle. The rng is injectable so cycles are reproducible
// in tests; pass nil for a time-seeded one.
func SelectSubset(srcs []Source, k int, rng *rand.Rand) []Source {
	if k <= 0 || len(srcs) == 0 {
		return nil
	}
	if k >= len(srcs) {
		out := make([]Source, len(srcs))
		copy(out, srcs)
		return out
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	perm := rng.Perm(len(srcs))
	out := make([]Source, 0, k)
	for _, idx := range perm[:k] {
		out = append(out, srcs[idx])
	}
	return out
}
