package analytics

// Random is a source of uniformly distributed values in [0, 1).
type Random interface {
	Float64() float64
}

const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// SeededRandom is a small linear congruential generator. Two instances built
// from the same seed yield the same sequence, which keeps mock data and the
// payment-days estimate reproducible.
type SeededRandom struct {
	seed int64
}

func NewSeededRandom(seed int64) *SeededRandom {
	seed %= lcgModulus
	if seed < 0 {
		seed += lcgModulus
	}
	return &SeededRandom{seed: seed}
}

func (r *SeededRandom) Float64() float64 {
	r.seed = (r.seed*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(r.seed) / lcgModulus
}

// IntBetween returns an integer in [min, max].
func IntBetween(r Random, min, max int) int {
	return int(r.Float64()*float64(max-min+1)) + min
}

// Chance reports true with the given probability.
func Chance(r Random, probability float64) bool {
	return r.Float64() < probability
}

// Pick returns a random element of items. items must not be empty.
func Pick[T any](r Random, items []T) T {
	return items[IntBetween(r, 0, len(items)-1)]
}
