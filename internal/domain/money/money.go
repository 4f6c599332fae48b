// Package money implements the cent rounding rules applied to report totals.
//
// Totals are float64 throughout the pipeline. Rounding is what keeps them
// stable: every accumulation step goes through RoundCents, and emitted values
// go through RoundReport.
package money

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// Places is the number of decimal places kept for monetary values.
const Places = 2

// RoundCents rounds x to two decimal places using the exact binary value of x
// and rounding ties away from zero. 1.005 is stored as 1.00499999... and
// therefore rounds to 1.00, while 0.125 is exact and rounds to 0.13.
func RoundCents(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || x == 0 {
		return x
	}
	return Exact(x).Round(Places).InexactFloat64()
}

// RoundReport applies the emission rounding: x is scaled to cents, rounded
// half toward positive infinity, scaled back and formatted with RoundCents.
func RoundReport(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return RoundCents(roundHalfUp(x*100) / 100)
}

// Exact converts x to a decimal holding exactly the same value, with no
// shortest-representation shortcut.
func Exact(x float64) decimal.Decimal {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return decimal.Zero
	}

	frac, exp := math.Frexp(x)
	mant := big.NewInt(int64(frac * (1 << 53)))
	exp -= 53

	if exp >= 0 {
		return decimal.NewFromBigInt(mant.Lsh(mant, uint(exp)), 0)
	}

	// mant * 2^exp == mant * 5^-exp * 10^exp
	pow := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-exp)), nil)
	return decimal.NewFromBigInt(pow.Mul(pow, mant), int32(exp))
}

func roundHalfUp(v float64) float64 {
	f := math.Floor(v)
	if v-f >= 0.5 {
		f++
	}
	return f
}
