package rational

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// FromFloat64 converts f through its shortest exact decimal rendering, so
// 0.1 becomes 1/10 rather than the binary value of the float.
func FromFloat64(f float64) (Rational, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rational{}, newError("FromFloat64", KindNotANumber, strconv.FormatFloat(f, 'g', -1, 64), nil)
	}
	return fromDecimal("FromFloat64", decimal.NewFromFloat(f))
}

// FromDecimal converts d exactly. It fails if the whole part or the
// fractional digits do not fit in an int64.
func FromDecimal(d decimal.Decimal) (Rational, error) {
	return fromDecimal("FromDecimal", d)
}

func fromDecimal(op string, d decimal.Decimal) (Rational, error) {
	s := d.Abs().String()
	parts := strings.SplitN(s, ".", 2)
	whole, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Rational{}, newError(op, KindNotANumber, d.String(), err)
	}
	r := canonical(whole, 1)
	if len(parts) == 2 {
		frac, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return Rational{}, newError(op, KindNotANumber, d.String(), err)
		}
		scale, ok := pow10(len(parts[1]))
		if !ok {
			return Rational{}, newError(op, KindNotANumber, d.String(), strconv.ErrRange)
		}
		r = r.Add(canonical(frac, scale))
	}
	if d.Sign() < 0 {
		r = r.Opposite()
	}
	return r, nil
}

// FromString parses either a plain fraction or a repeating decimal.
//
// A plain fraction is an optionally signed numerator and an optionally signed
// denominator separated by '/' or ':', as in "3/4", "- 2/3" or "+2 : -3".
//
// A repeating decimal marks the start of its period with '[': "0.3[3" is 1/3,
// "1.1[6" is 7/6, and ".[142857" is 1/7. The whole part and the non-repeating
// fractional digits may be empty; the period may not.
//
// White space is allowed around every element.
func FromString(s string) (Rational, error) {
	r, ok, err := parsePlain(s)
	if ok {
		return r, err
	}
	r, ok, err = parseRepeating(s)
	if ok {
		return r, err
	}
	return Rational{}, newError("FromString", KindMalformedRationalString, s, nil)
}

// MustFromString is like FromString but panics on error.
func MustFromString(s string) Rational {
	r, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return r
}

func parsePlain(s string) (Rational, bool, error) {
	sc := &scanner{s: s}
	sc.space()
	numNeg := sc.sign()
	sc.space()
	num := sc.digits()
	sc.space()
	if num == "" || !sc.accept("/:") {
		return Rational{}, false, nil
	}
	sc.space()
	denNeg := sc.sign()
	sc.space()
	den := sc.digits()
	sc.space()
	if den == "" || !sc.done() {
		return Rational{}, false, nil
	}

	a, err := parseDigits(s, num)
	if err != nil {
		return Rational{}, true, err
	}
	b, err := parseDigits(s, den)
	if err != nil {
		return Rational{}, true, err
	}
	if numNeg {
		a = -a
	}
	if denNeg {
		b = -b
	}
	if b == 0 {
		return Rational{}, true, newError("FromString", KindZeroDenominator, s, nil)
	}
	return canonical(a, b), true, nil
}

func parseRepeating(s string) (Rational, bool, error) {
	sc := &scanner{s: s}
	sc.space()
	negative := sc.sign()
	sc.space()
	whole := sc.digits()
	sc.space()
	if !sc.accept(".") {
		return Rational{}, false, nil
	}
	sc.space()
	fixed := sc.digits()
	sc.space()
	if !sc.accept("[") {
		return Rational{}, false, nil
	}
	sc.space()
	period := sc.digits()
	sc.space()
	if period == "" || !sc.done() {
		return Rational{}, false, nil
	}

	all, err := parseDigits(s, whole+fixed+period)
	if err != nil {
		return Rational{}, true, err
	}
	head, err := parseDigits(s, whole+fixed)
	if err != nil {
		return Rational{}, true, err
	}
	outer, ok := pow10(len(fixed) + len(period))
	if !ok {
		return Rational{}, true, newError("FromString", KindMalformedRationalString, s, strconv.ErrRange)
	}
	inner, _ := pow10(len(fixed))

	a := all - head
	if negative {
		a = -a
	}
	return canonical(a, outer-inner), true, nil
}

func parseDigits(input, digits string) (int64, error) {
	if digits == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, newError("FromString", KindMalformedRationalString, input, err)
	}
	return v, nil
}

func pow10(n int) (int64, bool) {
	if n > 18 {
		return 0, false
	}
	p := int64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p, true
}

type scanner struct {
	s string
	i int
}

func (sc *scanner) space() {
	for sc.i < len(sc.s) {
		r, n := utf8.DecodeRuneInString(sc.s[sc.i:])
		if !unicode.IsSpace(r) {
			return
		}
		sc.i += n
	}
}

// sign consumes an optional '+' or '-' and reports whether it was '-'.
func (sc *scanner) sign() bool {
	if sc.i < len(sc.s) && (sc.s[sc.i] == '+' || sc.s[sc.i] == '-') {
		sc.i++
		return sc.s[sc.i-1] == '-'
	}
	return false
}

func (sc *scanner) digits() string {
	start := sc.i
	for sc.i < len(sc.s) && sc.s[sc.i] >= '0' && sc.s[sc.i] <= '9' {
		sc.i++
	}
	return sc.s[start:sc.i]
}

func (sc *scanner) accept(chars string) bool {
	if sc.i < len(sc.s) && strings.IndexByte(chars, sc.s[sc.i]) >= 0 {
		sc.i++
		return true
	}
	return false
}

func (sc *scanner) done() bool {
	return sc.i == len(sc.s)
}
