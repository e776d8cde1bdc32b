package rational

import (
	"strconv"
	"strings"
)

const DefaultPattern = "{{S}}[{{M}}]{{N}}/{{D}}"

const (
	tokenSign     = "{{S}}"
	tokenSignPlus = "{{S+}}"
	tokenWhole    = "{{M}}"
	tokenNum      = "{{N}}"
	tokenDen      = "{{D}}"
)

// String renders x as an integer or as "a/b".
func (x Rational) String() string {
	return x.render(false)
}

// Mixed renders improper fractions as "whole|remainder/denominator": 16/5 is
// "3|1/5" and -16/5 is "-3|1/5". Proper fractions render as in String.
func (x Rational) Mixed() string {
	return x.render(true)
}

func (x Rational) render(mixed bool) string {
	d := x.den()
	switch {
	case x.a == 0:
		return "0"
	case abs(x.a) == d:
		if x.a < 0 {
			return "-1"
		}
		return "1"
	case d == 1:
		return strconv.FormatInt(x.a, 10)
	case !mixed || abs(x.a) < d:
		return strconv.FormatInt(x.a, 10) + "/" + strconv.FormatInt(d, 10)
	}
	whole := x.Whole()
	return strconv.FormatInt(whole, 10) + "|" + strconv.FormatInt(abs(x.a%d), 10) + "/" + strconv.FormatInt(d, 10)
}

// Format substitutes the tokens {{S}}, {{S+}}, {{M}}, {{N}} and {{D}} in
// pattern in one left-to-right pass; anything else is copied unchanged. An
// empty pattern means DefaultPattern.
//
//	{{S}}   "-" for negative values, empty otherwise
//	{{S+}}  "-" for negative values, "+" otherwise
//	{{M}}   absolute whole part
//	{{N}}   numerator, or the remainder after the whole part when the pattern
//	        contains {{M}} and the whole part is not zero; unsigned when the
//	        pattern contains {{S}} or {{S+}}
//	{{D}}   denominator
func (x Rational) Format(pattern string) string {
	if pattern == "" {
		pattern = DefaultPattern
	}

	whole := abs(x.Whole())
	num := x.a
	if strings.Contains(pattern, tokenWhole) && whole != 0 {
		num = x.a % x.den()
	}
	if strings.Contains(pattern, tokenSign) || strings.Contains(pattern, tokenSignPlus) {
		num = abs(num)
	}
	sign := "+"
	if x.a < 0 {
		sign = "-"
	}

	var out strings.Builder
	rest := pattern
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String()
		}
		out.WriteString(rest[:start])
		rest = rest[start:]

		switch {
		case strings.HasPrefix(rest, tokenSign):
			if sign == "-" {
				out.WriteString(sign)
			}
			rest = rest[len(tokenSign):]
		case strings.HasPrefix(rest, tokenSignPlus):
			out.WriteString(sign)
			rest = rest[len(tokenSignPlus):]
		case strings.HasPrefix(rest, tokenWhole):
			out.WriteString(strconv.FormatInt(whole, 10))
			rest = rest[len(tokenWhole):]
		case strings.HasPrefix(rest, tokenNum):
			out.WriteString(strconv.FormatInt(num, 10))
			rest = rest[len(tokenNum):]
		case strings.HasPrefix(rest, tokenDen):
			out.WriteString(strconv.FormatInt(x.den(), 10))
			rest = rest[len(tokenDen):]
		default:
			out.WriteByte('{')
			rest = rest[1:]
		}
	}
}

func abs(x int64) int64 {
	if x < 0 {
		return neg(x)
	}
	return x
}
