package calc

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Number is an exact rational result. Sums, differences and products of
// integers stay integral; quotients keep their fractional part.
type Number struct {
	rat *big.Rat
}

var (
	bigFive = big.NewInt(5)
	bigOne  = big.NewInt(1)
)

// NewInt returns the Number for v.
func NewInt(v int64) Number {
	return Number{rat: new(big.Rat).SetInt64(v)}
}

// NewRatio returns num/den. It fails when den is zero.
func NewRatio(num, den int64) (Number, error) {
	if den == 0 {
		return Number{}, ErrDivisionByZero
	}
	return Number{rat: big.NewRat(num, den)}, nil
}

// ParseNumber reads a base-10 digit string of any length. Leading zeros are
// allowed and never select another base.
func ParseNumber(digits string) (Number, error) {
	if digits == "" {
		return Number{}, fmt.Errorf("empty number literal")
	}
	for i := 0; i < len(digits); i++ {
		if !isDigit(digits[i]) {
			return Number{}, fmt.Errorf("invalid number literal %q", digits)
		}
	}
	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Number{}, fmt.Errorf("invalid number literal %q", digits)
	}
	return Number{rat: new(big.Rat).SetInt(n)}, nil
}

func (n Number) value() *big.Rat {
	if n.rat == nil {
		return new(big.Rat)
	}
	return n.rat
}

func (n Number) Add(other Number) Number {
	return Number{rat: new(big.Rat).Add(n.value(), other.value())}
}

func (n Number) Sub(other Number) Number {
	return Number{rat: new(big.Rat).Sub(n.value(), other.value())}
}

func (n Number) Mul(other Number) Number {
	return Number{rat: new(big.Rat).Mul(n.value(), other.value())}
}

// Quo performs true division; 10/4 is 5/2, not 2.
func (n Number) Quo(other Number) (Number, error) {
	if other.value().Sign() == 0 {
		return Number{}, ErrDivisionByZero
	}
	return Number{rat: new(big.Rat).Quo(n.value(), other.value())}, nil
}

// IsInt reports whether the value has no fractional part.
func (n Number) IsInt() bool {
	return n.value().IsInt()
}

// Cmp compares n and other like big.Rat.Cmp.
func (n Number) Cmp(other Number) int {
	return n.value().Cmp(other.value())
}

// Float64 returns the nearest float64.
func (n Number) Float64() float64 {
	f, _ := n.value().Float64()
	return f
}

// Rat returns a copy of the underlying rational.
func (n Number) Rat() *big.Rat {
	return new(big.Rat).Set(n.value())
}

// String renders the canonical decimal form: integers without a point,
// terminating fractions exactly, and repeating fractions rounded to the
// precision of a float64 of the same magnitude, always keeping at least one
// fractional digit.
func (n Number) String() string {
	r := n.value()
	if r.IsInt() {
		return r.Num().String()
	}
	if places, ok := terminatingPlaces(r.Denom()); ok {
		return r.FloatString(places)
	}
	places := 1
	if f, _ := r.Float64(); !math.IsInf(f, 0) {
		places = max(fractionDigits(f), 1)
	}
	out := strings.TrimRight(r.FloatString(places), "0")
	if strings.HasSuffix(out, ".") {
		out += "0"
	}
	return out
}

// fractionDigits reports how many digits after the decimal point the
// shortest round-trip form of f has.
func fractionDigits(f float64) int {
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	exponent, _ := strconv.Atoi(exp)
	significant := len(strings.TrimLeft(strings.Replace(mantissa, ".", "", 1), "-"))
	return significant - 1 - exponent
}

// terminatingPlaces reports how many decimal places a fraction with the given
// denominator needs, or false when its expansion repeats forever.
func terminatingPlaces(den *big.Int) (int, bool) {
	d := new(big.Int).Set(den)
	twos := int(d.TrailingZeroBits())
	d.Rsh(d, uint(twos))

	fives := 0
	q, m := new(big.Int), new(big.Int)
	for {
		q.QuoRem(d, bigFive, m)
		if m.Sign() != 0 {
			break
		}
		d.Set(q)
		fives++
	}

	if d.Cmp(bigOne) != 0 {
		return 0, false
	}
	return max(twos, fives), true
}
