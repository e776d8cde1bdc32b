package rational

import (
	"math/rand"
	"strconv"
)

// Random returns a proper fraction n/d with d drawn from [1, max] and n from
// [0, d-1], using the shared source of math/rand.
func Random(max int) (Rational, error) {
	return random("Random", rand.Intn, max)
}

// RandomFrom is Random with an explicit source. rng must not be shared
// between goroutines.
func RandomFrom(rng *rand.Rand, max int) (Rational, error) {
	return random("RandomFrom", rng.Intn, max)
}

func random(op string, intn func(int) int, max int) (Rational, error) {
	if max < 1 {
		return Rational{}, newError(op, KindNonPositiveIntegerArgument, strconv.Itoa(max), nil)
	}
	d := intn(max) + 1
	n := intn(d)
	return canonical(int64(n), int64(d)), nil
}
