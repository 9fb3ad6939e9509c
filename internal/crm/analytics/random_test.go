package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededRandom_Sequence(t *testing.T) {
	r := NewSeededRandom(1)
	// (1*9301 + 49297) % 233280
	assert.Equal(t, 58598.0/233280.0, r.Float64())

	a, b := NewSeededRandom(12345), NewSeededRandom(12345)
	for i := 0; i < 100; i++ {
		v := a.Float64()
		assert.Equal(t, v, b.Float64())
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestSeededRandom_NegativeSeed(t *testing.T) {
	v := NewSeededRandom(-5).Float64()
	assert.GreaterOrEqual(t, v, 0.0)
	assert.Less(t, v, 1.0)
}

func TestIntBetween(t *testing.T) {
	r := NewSeededRandom(7)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		n := IntBetween(r, 3, 6)
		assert.GreaterOrEqual(t, n, 3)
		assert.LessOrEqual(t, n, 6)
		seen[n] = true
	}
	assert.Len(t, seen, 4)
}

func TestPick(t *testing.T) {
	items := []string{"a", "b", "c"}
	assert.Contains(t, items, Pick(NewSeededRandom(3), items))
	assert.Equal(t, "a", Pick[string](fixedRandom(0), items))
	assert.Equal(t, "c", Pick[string](fixedRandom(0.99), items))
}
