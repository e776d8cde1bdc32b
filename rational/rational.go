// Package rational implements exact rational numbers with int64 numerator
// and denominator.
//
// A Rational is always kept in canonical form: the fraction is fully reduced,
// the denominator is positive and the sign is carried by the numerator, and
// zero is represented only as 0/1. The zero value of Rational is 0/1.
//
// Values are produced only by the validating factories of this package
// (New, Construct, FromFloat64, FromDecimal, FromString, Create, CreateRatio,
// Random) and by its arithmetic. Methods with value receivers never modify
// their operands and are safe to call concurrently. The in-place family
// (AddIn, SubIn, MulIn, DivIn, InvIn, ReciprocalIn, OppositeIn, PowIn,
// RoundIn) rewrites the receiver and is not synchronized: callers must
// serialize any concurrent use of a value that one of them mutates.
//
// Numerators and denominators are plain int64 and products wrap on overflow.
// Wrapped intermediate results are reported through logger.Verbosef but are
// not prevented. A wrapped result is meaningless: its sign may be flipped, and
// when a denominator product wraps to zero (1/2^32 * 1/2^32, for example) the
// value has a zero denominator and later divisions by it panic. Factories
// never produce such values; they reject operands whose canonical form does
// not fit, such as a denominator of math.MinInt64 with an odd numerator.
package rational

import (
	"math"
	"strconv"

	"github.com/MixinNetwork/rational/logger"
	"github.com/shopspring/decimal"
)

var (
	Zero Rational
	One  Rational
)

func init() {
	Zero = MustNew(0, 1)
	One = MustNew(1, 1)
}

// Rational is a fraction a/(b+1). The denominator is stored biased by one so
// that the zero value is the canonical zero.
type Rational struct {
	a int64
	b int64
}

// New returns the canonical form of a/b.
func New(a, b int64) (Rational, error) {
	return construct("New", a, b)
}

// MustNew is like New but panics on error.
func MustNew(a, b int64) Rational {
	r, err := New(a, b)
	if err != nil {
		panic(err)
	}
	return r
}

// Construct is New for dynamically typed operands. Both operands must hold an
// integral value of a Go integer, float or decimal type.
func Construct(a, b interface{}) (Rational, error) {
	x, err := integerArgument("Construct", a)
	if err != nil {
		return Rational{}, err
	}
	y, err := integerArgument("Construct", b)
	if err != nil {
		return Rational{}, err
	}
	return construct("Construct", x, y)
}

// construct validates a/b before reducing it. Negating math.MinInt64 wraps,
// so a/b whose reduced form needs that negation cannot be represented.
func construct(op string, a, b int64) (Rational, error) {
	if b == 0 {
		return Rational{}, newError(op, KindZeroDenominator, "", nil)
	}
	negative := a != 0 && (a < 0) != (b < 0)
	x, y := reduce(a, b)
	if y <= 0 || (x < 0) != negative {
		input := strconv.FormatInt(a, 10) + "/" + strconv.FormatInt(b, 10)
		return Rational{}, newError(op, KindNotANumber, input, strconv.ErrRange)
	}
	return Rational{a: x, b: y - 1}, nil
}

func canonical(a, b int64) Rational {
	a, b = reduce(a, b)
	return Rational{a: a, b: b - 1}
}

func (x *Rational) set(a, b int64) {
	a, b = reduce(a, b)
	x.a, x.b = a, b-1
}

func (x Rational) den() int64 {
	return x.b + 1
}

// reduce divides a and b by their greatest common divisor and moves the sign
// to a. b must not be zero.
func reduce(a, b int64) (int64, int64) {
	g := gcd(a, b)
	a, b = a/g, b/g
	if b < 0 {
		a, b = neg(a), neg(b)
	}
	if a == 0 {
		b = 1
	}
	return a, b
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

func lcm(a, b int64) int64 {
	return mul("lcm", a/gcd(a, b), b)
}

func mul(op string, x, y int64) int64 {
	z := x * y
	if x != 0 && (z/x != y || (x == -1 && y == math.MinInt64)) {
		logger.Verbosef("rational %s overflows int64 at %d * %d", op, x, y)
	}
	return z
}

func add(op string, x, y int64) int64 {
	z := x + y
	if (x^z)&(y^z) < 0 {
		logger.Verbosef("rational %s overflows int64 at %d + %d", op, x, y)
	}
	return z
}

func neg(x int64) int64 {
	if x == math.MinInt64 {
		logger.Verbosef("rational negation overflows int64 at %d", x)
	}
	return -x
}

func (x Rational) Num() int64 {
	return x.a
}

func (x Rational) Denom() int64 {
	return x.den()
}

// Sign returns -1 for negative values and 1 otherwise, zero included.
func (x Rational) Sign() int {
	if x.a < 0 {
		return -1
	}
	return 1
}

func (x Rational) IsZero() bool {
	return x.a == 0
}

// Whole returns the integer part, truncated toward zero.
func (x Rational) Whole() int64 {
	return x.a / x.den()
}

// Frac returns x minus its whole part; it has the sign of x.
func (x Rational) Frac() Rational {
	return canonical(x.a%x.den(), x.den())
}

func (x Rational) Float64() float64 {
	return float64(x.a) / float64(x.den())
}

// Decimal returns x rounded half away from zero to the given number of
// decimal places.
func (x Rational) Decimal(places int32) decimal.Decimal {
	return decimal.New(x.a, 0).DivRound(decimal.New(x.den(), 0), places)
}
