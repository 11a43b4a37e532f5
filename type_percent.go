package costcalc

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Percent is a percentage, 10 means 10%.
type Percent struct {
	value decimal.Decimal
}

func P[T float64 | int | int64 | decimal.Decimal](value T) Percent {
	return Percent{value: newDecimal(value)}
}

func (p Percent) Equal(q Percent) bool     { return p.value.Equal(q.value) }
func (p Percent) Decimal() decimal.Decimal { return p.value }

func (p Percent) String() string {
	return p.value.String() + "%"
}
