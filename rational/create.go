package rational

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Create builds a Rational from any supported value: Go integers and floats,
// decimal.Decimal, Rational, and strings. Strings holding a plain decimal
// number such as "1.25" or "-3" are read exactly; any other string goes
// through FromString.
func Create(v interface{}) (Rational, error) {
	return create("Create", v)
}

// CreateRatio returns Create(primary) divided by Create(secondary).
func CreateRatio(primary, secondary interface{}) (Rational, error) {
	x, err := create("CreateRatio", primary)
	if err != nil {
		return Rational{}, err
	}
	y, err := create("CreateRatio", secondary)
	if err != nil {
		return Rational{}, err
	}
	return x.Div(y)
}

func create(op string, v interface{}) (Rational, error) {
	switch x := v.(type) {
	case Rational:
		return x, nil
	case *Rational:
		if x == nil {
			return Rational{}, newError(op, KindInvalidArgumentType, "<nil>", nil)
		}
		return *x, nil
	case float64:
		return retag(op)(FromFloat64(x))
	case float32:
		return retag(op)(FromFloat64(float64(x)))
	case decimal.Decimal:
		return retag(op)(FromDecimal(x))
	case string:
		if d, err := decimal.NewFromString(strings.TrimSpace(x)); err == nil {
			return retag(op)(FromDecimal(d))
		}
		return retag(op)(FromString(x))
	}
	if i, ok := integerValue(v); ok {
		return canonical(i, 1), nil
	}
	switch v.(type) {
	case uint, uint64:
		return Rational{}, newError(op, KindNotANumber, fmt.Sprint(v), strconv.ErrRange)
	}
	return Rational{}, newError(op, KindInvalidArgumentType, fmt.Sprintf("%T", v), nil)
}

// retag reports errors of the conversion it wraps under op, the entry point
// the caller actually used.
func retag(op string) func(Rational, error) (Rational, error) {
	return func(r Rational, err error) (Rational, error) {
		var e *Error
		if err == nil || !errors.As(err, &e) {
			return r, err
		}
		tagged := *e
		tagged.Op = op
		return r, &tagged
	}
}

// integerArgument accepts any Go integer, and floats or decimals holding an
// integral value within the int64 range.
func integerArgument(op string, v interface{}) (int64, error) {
	if i, ok := integerValue(v); ok {
		return i, nil
	}
	switch x := v.(type) {
	case float64:
		if x == math.Trunc(x) && x >= math.MinInt64 && x < math.MaxInt64 {
			return int64(x), nil
		}
	case float32:
		return integerArgument(op, float64(x))
	case decimal.Decimal:
		if x.Equal(x.Truncate(0)) && x.GreaterThanOrEqual(decimal.New(math.MinInt64, 0)) && x.LessThanOrEqual(decimal.New(math.MaxInt64, 0)) {
			return x.IntPart(), nil
		}
	}
	return 0, newError(op, KindNonIntegerArgument, fmt.Sprint(v), nil)
}

func integerValue(v interface{}) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return unsignedValue(uint64(x))
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return unsignedValue(x)
	}
	return 0, false
}

func unsignedValue(x uint64) (int64, bool) {
	if x > math.MaxInt64 {
		return 0, false
	}
	return int64(x), true
}
