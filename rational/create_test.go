package rational

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreate(t *testing.T) {
	assert := assert.New(t)

	for _, c := range []struct {
		in  interface{}
		out string
	}{
		{"1.25", "5/4"},
		{0.05, "1/20"},
		{15, "15"},
		{.95, "19/20"},
		{"5/-3", "-5/3"},
		{" 3 ", "3"},
		{"-0.5", "-1/2"},
		{"1e2", "100"},
		{"0.1[6", "1/6"},
		{int8(-3), "-3"},
		{uint32(12), "12"},
		{float32(0.5), "1/2"},
		{decimal.New(-75, -2), "-3/4"},
		{MustNew(2, 6), "1/3"},
	} {
		r, err := Create(c.in)
		assert.Nil(err, "%v", c.in)
		assert.Equal(c.out, r.String(), "%v", c.in)
	}

	r := MustNew(-2, 7)
	p, err := Create(&r)
	assert.Nil(err)
	assert.Equal(r, p)

	_, err = Create(uint64(math.MaxUint64))
	assert.True(IsKind(err, KindNotANumber))
	_, err = Create(struct{}{})
	assert.True(IsKind(err, KindInvalidArgumentType))
	_, err = Create(nil)
	assert.True(IsKind(err, KindInvalidArgumentType))
	_, err = Create((*Rational)(nil))
	assert.True(IsKind(err, KindInvalidArgumentType))
	_, err = Create([]int{1, 2})
	assert.True(IsKind(err, KindInvalidArgumentType))
	_, err = Create("one half")
	assert.True(IsKind(err, KindMalformedRationalString))
	assert.Equal(`rational: Create: malformed_rational_string (input="one half")`, err.Error())
	_, err = Create(math.NaN())
	assert.True(IsKind(err, KindNotANumber))
	var re *Error
	assert.True(errors.As(err, &re))
	assert.Equal("Create", re.Op)
}

func TestCreateRatio(t *testing.T) {
	assert := assert.New(t)

	r, err := CreateRatio("1/2", 0.125)
	assert.Nil(err)
	assert.Equal("4", r.String())
	r, err = CreateRatio("3.5", "-2/3")
	assert.Nil(err)
	assert.Equal("-21/4", r.String())
	r, err = CreateRatio(1, 3)
	assert.Nil(err)
	assert.Equal("1/3", r.String())
	r, err = CreateRatio(".[3", MustNew(2, 3))
	assert.Nil(err)
	assert.Equal("1/2", r.String())

	_, err = CreateRatio(1, 0)
	assert.True(IsKind(err, KindZeroDenominator))
	_, err = CreateRatio(1, "0/4")
	assert.True(IsKind(err, KindZeroDenominator))
	_, err = CreateRatio("x", 1)
	assert.True(IsKind(err, KindMalformedRationalString))
	_, err = CreateRatio(1, true)
	assert.True(IsKind(err, KindInvalidArgumentType))
}
