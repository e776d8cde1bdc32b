package rational

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.
// Both sides are scaled to the least common denominator, so no precision is
// lost.
func (x Rational) Cmp(y Rational) int {
	m := lcm(x.den(), y.den())
	l := mul("cmp", x.a, m/x.den())
	r := mul("cmp", y.a, m/y.den())
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	}
	return 0
}

func (x Rational) Equal(y Rational) bool {
	return x.Cmp(y) == 0
}

func (x Rational) Greater(y Rational) bool {
	return x.Cmp(y) > 0
}

func (x Rational) GreaterOrEqual(y Rational) bool {
	return x.Cmp(y) >= 0
}

func (x Rational) Less(y Rational) bool {
	return x.Cmp(y) < 0
}

func (x Rational) LessOrEqual(y Rational) bool {
	return x.Cmp(y) <= 0
}
