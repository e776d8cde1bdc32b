package rational

import (
	"math"
	"strconv"
)

func (x Rational) Add(y Rational) Rational {
	a, b := sum(x, y)
	return canonical(a, b)
}

func (x Rational) Sub(y Rational) Rational {
	return x.Add(y.Opposite())
}

func (x Rational) Mul(y Rational) Rational {
	return canonical(mul("mul", x.a, y.a), mul("mul", x.den(), y.den()))
}

// Div fails with ErrZeroDenominator iff y is zero.
func (x Rational) Div(y Rational) (Rational, error) {
	r, err := y.reciprocal("Div")
	if err != nil {
		return Rational{}, err
	}
	return x.Mul(r), nil
}

// Inv returns the multiplicative inverse of x, which is undefined for zero.
func (x Rational) Inv() (Rational, error) {
	return x.reciprocal("Inv")
}

func (x Rational) Reciprocal() (Rational, error) {
	return x.reciprocal("Reciprocal")
}

func (x Rational) Opposite() Rational {
	return canonical(neg(x.a), x.den())
}

// Pow raises x to an integer power. Negative powers of zero fail.
func (x Rational) Pow(p int) (Rational, error) {
	a, b, err := x.power("Pow", p)
	if err != nil {
		return Rational{}, err
	}
	return canonical(a, b), nil
}

// Round returns the fraction with denominator d nearest to x, ties rounded
// away from zero. The result is reduced, so its denominator may divide d.
func (x Rational) Round(d int64) (Rational, error) {
	a, err := x.rounded("Round", d)
	if err != nil {
		return Rational{}, err
	}
	return canonical(a, d), nil
}

func sum(x, y Rational) (int64, int64) {
	d := lcm(x.den(), y.den())
	a := add("add", mul("add", x.a, d/x.den()), mul("add", y.a, d/y.den()))
	return a, d
}

func (x Rational) reciprocal(op string) (Rational, error) {
	if x.a == 0 {
		return Rational{}, newError(op, KindZeroDenominator, x.String(), nil)
	}
	return canonical(x.den(), x.a), nil
}

func (x Rational) power(op string, p int) (int64, int64, error) {
	if p >= 0 {
		return ipow(x.a, p), ipow(x.den(), p), nil
	}
	if x.a == 0 {
		return 0, 0, newError(op, KindZeroDenominator, x.String(), nil)
	}
	if p == math.MinInt {
		return 0, 0, newError(op, KindNotANumber, strconv.Itoa(p), strconv.ErrRange)
	}
	return ipow(x.den(), -p), ipow(x.a, -p), nil
}

func (x Rational) rounded(op string, d int64) (int64, error) {
	if d == 0 {
		return 0, newError(op, KindZeroDenominator, "", nil)
	}
	n := mul("round", x.a, d)
	q, r := n/x.den(), n%x.den()
	if r < 0 {
		r = -r
	}
	if r >= x.den()-r {
		if n < 0 {
			q--
		} else {
			q++
		}
	}
	return q, nil
}

func ipow(x int64, p int) int64 {
	z := int64(1)
	for p > 0 {
		if p&1 == 1 {
			z = mul("pow", z, x)
		}
		p >>= 1
		if p > 0 {
			x = mul("pow", x, x)
		}
	}
	return z
}
