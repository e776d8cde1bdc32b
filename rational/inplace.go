package rational

// The methods below overwrite their receiver. They are not safe to call while
// any other goroutine reads or writes the same value. On error the receiver is
// left as it was.

func (x *Rational) AddIn(y Rational) {
	x.set(sum(*x, y))
}

func (x *Rational) SubIn(y Rational) {
	x.AddIn(y.Opposite())
}

func (x *Rational) MulIn(y Rational) {
	x.set(mul("mul", x.a, y.a), mul("mul", x.den(), y.den()))
}

func (x *Rational) DivIn(y Rational) error {
	r, err := y.reciprocal("DivIn")
	if err != nil {
		return err
	}
	x.MulIn(r)
	return nil
}

func (x *Rational) InvIn() error {
	return x.invert("InvIn")
}

func (x *Rational) ReciprocalIn() error {
	return x.invert("ReciprocalIn")
}

func (x *Rational) OppositeIn() {
	x.set(neg(x.a), x.den())
}

func (x *Rational) PowIn(p int) error {
	a, b, err := x.power("PowIn", p)
	if err != nil {
		return err
	}
	x.set(a, b)
	return nil
}

func (x *Rational) RoundIn(d int64) error {
	a, err := x.rounded("RoundIn", d)
	if err != nil {
		return err
	}
	x.set(a, d)
	return nil
}

func (x *Rational) invert(op string) error {
	if x.a == 0 {
		return newError(op, KindZeroDenominator, x.String(), nil)
	}
	x.set(x.den(), x.a)
	return nil
}
