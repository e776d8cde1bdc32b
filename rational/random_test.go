package rational

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandom(t *testing.T) {
	assert := assert.New(t)

	_, err := Random(0)
	assert.True(IsKind(err, KindNonPositiveIntegerArgument))
	_, err = RandomFrom(rand.New(rand.NewSource(1)), -3)
	assert.True(IsKind(err, KindNonPositiveIntegerArgument))
	assert.True(errors.Is(err, ErrNonPositiveIntegerArgument))

	for i := 0; i < 100; i++ {
		r, err := Random(1)
		assert.Nil(err)
		assert.Equal(Zero, r)
	}

	rng := rand.New(rand.NewSource(7))
	seen := make(map[Rational]bool)
	for i := 0; i < 1000; i++ {
		r, err := RandomFrom(rng, 10)
		assert.Nil(err)
		assert.True(r.GreaterOrEqual(Zero))
		assert.True(r.Less(One))
		assert.True(r.Denom() <= 10)
		seen[r] = true
	}
	assert.True(len(seen) > 10)

	a, _ := RandomFrom(rand.New(rand.NewSource(42)), 100)
	b, _ := RandomFrom(rand.New(rand.NewSource(42)), 100)
	assert.Equal(a, b)
}
