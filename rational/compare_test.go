package rational

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	assert := assert.New(t)

	half, third := MustNew(1, 2), MustNew(1, 3)
	assert.Equal(1, half.Cmp(third))
	assert.Equal(-1, third.Cmp(half))
	assert.Equal(0, half.Cmp(MustNew(2, 4)))
	assert.Equal(-1, MustNew(-1, 2).Cmp(MustNew(-1, 3)))
	assert.Equal(1, Zero.Cmp(MustNew(-1, 1000)))

	assert.True(half.Equal(MustNew(-3, -6)))
	assert.True(half.Greater(third))
	assert.True(half.GreaterOrEqual(third))
	assert.True(half.GreaterOrEqual(half))
	assert.True(third.Less(half))
	assert.True(third.LessOrEqual(half))
	assert.True(third.LessOrEqual(third))
	assert.False(half.Less(half))
	assert.False(half.Greater(half))
}

func TestCompareTotalOrder(t *testing.T) {
	assert := assert.New(t)

	for _, x := range samples {
		for _, y := range samples {
			holds := 0
			for _, b := range []bool{x.Less(y), x.Equal(y), x.Greater(y)} {
				if b {
					holds++
				}
			}
			assert.Equal(1, holds, "%s %s", x, y)
			assert.Equal(-x.Cmp(y), y.Cmp(x))
			assert.Equal(x == y, x.Equal(y))
			assert.Equal(x.Float64() < y.Float64(), x.Less(y))

			for _, z := range samples {
				if x.LessOrEqual(y) && y.LessOrEqual(z) {
					assert.True(x.LessOrEqual(z), "%s %s %s", x, y, z)
				}
			}
		}
	}
}
