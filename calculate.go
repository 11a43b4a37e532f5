package costcalc

import "github.com/shopspring/decimal"

// DaysPerMonth is the number of days a monthly cost is spread over.
const DaysPerMonth = 30

var prorataDivisor = decimal.NewFromInt(DaysPerMonth).Mul(hundred)

// Calculate returns the cost of using a monthly cost for a number of days, with
// a margin on top:
//
//	monthly / 30 * days * (1 + margin/100)
//
// Inputs are not validated, zero or negative values propagate.
func Calculate(monthly Money, days Quantity, margin Percent) Money {
	// monthly * days * (100 + margin) / 3000 is the same amount, with a
	// single division, so that 1000/30*30 is exactly 1000.
	n := monthly.value.Mul(days.value).Mul(margin.value.Add(hundred))
	return Money{value: n.Div(prorataDivisor), cur: monthly.cur}
}

// CalculateBasis returns the cost of a basis for a number of days with a margin.
func CalculateBasis(b Basis, days Quantity, margin Percent) Money {
	return Calculate(MonthlyCost(b), days, margin)
}
