package id3

import (
	"math"
	"math/big"
)

// logPrec is the working precision in bits of log2, well above the 53 bits
// of a float64 mantissa so that the final rounding is the only one.
const logPrec = 160

var ln2 = mustParseFloat("0.69314718055994530941723212145817656807550013436025525412068000949339362196969471560586332699641868754200148102057068573368552023575813055703267075163507596193072757082837143519030703862389167347112335")

func mustParseFloat(s string) *big.Float {
	f, _, err := big.ParseFloat(s, 10, logPrec, big.ToNearestEven)
	if err != nil {
		panic(err)
	}
	return f
}

/*
log2 returns the base 2 logarithm of x rounded to the nearest float64.
math.Log2 may be off by one unit in the last place, which shows in the
rendered gains, so the logarithm is evaluated with extended precision as
e + 2*atanh((m-1)/(m+1))/ln(2), where x = m * 2^e and m lies in
[sqrt(2)/2, sqrt(2)).
*/
func log2(x float64) float64 {
	if x <= 0 || math.IsInf(x, 0) || math.IsNaN(x) {
		return math.Log2(x)
	}
	frac, exp := math.Frexp(x)
	if frac == 0.5 {
		return float64(exp - 1)
	}
	if frac < math.Sqrt2/2 {
		frac *= 2
		exp--
	}
	m := newFloat().SetFloat64(frac)
	one := newFloat().SetInt64(1)
	z := newFloat().Quo(newFloat().Sub(m, one), newFloat().Add(m, one))
	z2 := newFloat().Mul(z, z)
	// |z| < 0.172, so every term adds more than 5 bits
	sum := newFloat()
	power := newFloat().Set(z)
	term := newFloat()
	for k := int64(0); k < 40; k++ {
		term.Quo(power, newFloat().SetInt64(2*k+1))
		sum.Add(sum, term)
		power.Mul(power, z2)
	}
	sum.Mul(sum, newFloat().SetInt64(2))
	sum.Quo(sum, ln2)
	sum.Add(sum, newFloat().SetInt64(int64(exp)))
	result, _ := sum.Float64()
	return result
}

func newFloat() *big.Float {
	return new(big.Float).SetPrec(logPrec)
}
