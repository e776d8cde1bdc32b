package rational

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := FromString("1/x")
	assert.Equal(`rational: FromString: malformed_rational_string (input="1/x")`, err.Error())
	assert.True(errors.Is(err, ErrMalformedRationalString))
	assert.False(errors.Is(err, ErrZeroDenominator))

	var re *Error
	assert.True(errors.As(err, &re))
	assert.Equal("FromString", re.Op)
	assert.Equal(KindMalformedRationalString, re.Kind)

	_, err = FromString("1/99999999999999999999")
	assert.Contains(err.Error(), "value out of range")
	assert.True(errors.Is(err, strconv.ErrRange))
	assert.True(errors.Is(err, ErrMalformedRationalString))

	_, err = Zero.Div(Zero)
	assert.Equal(`rational: Div: zero_denominator (input="0")`, err.Error())

	wrapped := fmt.Errorf("loading price: %w", err)
	assert.True(IsKind(wrapped, KindZeroDenominator))
	assert.True(errors.Is(wrapped, ErrZeroDenominator))
	assert.False(IsKind(errors.New("plain"), KindZeroDenominator))
	assert.False(IsKind(nil, KindZeroDenominator))

	var nilErr *Error
	assert.Equal("<nil>", nilErr.Error())
	assert.Nil(nilErr.Unwrap())
	assert.False(nilErr.Is(ErrZeroDenominator))

	for kind, sentinel := range sentinels {
		e := &Error{Op: "test", Kind: kind}
		assert.True(errors.Is(e, sentinel), string(kind))
		assert.True(IsKind(e, kind), string(kind))
	}
}
