package costcalc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	testCases := []struct {
		name    string
		monthly Money
		days    Quantity
		margin  Percent
		want    string
	}{
		{"one day at a 30 monthly", NO(30), Q(1), P(0), "1"},
		{"full month with 10% margin", NO(3000), Q(30), P(10), "3300"},
		{"full month is exact", NO(1000), Q(30), P(0), "1000"},
		{"half month", NO(6000), Q(15), P(0), "3000"},
		{"repeating daily rate", NO(100), Q(1), P(0), "3.3333333333333333"},
		{"fractional margin", NO(3000), Q(1), P(12.5), "112.5"},
		{"zero days", NO(3000), Q(0), P(10), "0"},
		{"margin -100", NO(3000), Q(30), P(-100), "0"},
		{"negative days propagate", NO(3000), Q(-30), P(0), "-3000"},
		{"negative margin propagates", NO(3000), Q(30), P(-50), "1500"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Calculate(tc.monthly, tc.days, tc.margin)
			want := decimal.RequireFromString(tc.want)
			assert.True(t, got.Decimal().Equal(want), "Calculate(%v, %v, %v) = %v; want %v", tc.monthly.Decimal(), tc.days, tc.margin, got.Decimal(), want)
		})
	}
}

func TestCalculate_KeepsCurrency(t *testing.T) {
	got := Calculate(INR(3000), Q(30), P(10))
	assert.Equal(t, "INR", got.Currency())
	assert.True(t, got.Equal(INR(3300)))
}

func TestCalculateBasis(t *testing.T) {
	testCases := []struct {
		name        string
		basis       Basis
		days        Quantity
		margin      Percent
		wantMonthly Money
		wantCost    Money
	}{
		{
			name:        "person cost",
			basis:       PersonCost{Salary: INR(9000), People: Q(2)},
			days:        Q(30),
			margin:      P(0),
			wantMonthly: INR(18000),
			wantCost:    INR(18000),
		},
		{
			name:        "service cost",
			basis:       ServiceCost{CostPerUser: INR(50), Users: Q(120)},
			days:        Q(15),
			margin:      P(20),
			wantMonthly: INR(6000),
			wantCost:    INR(3600),
		},
		{
			name:        "direct cost",
			basis:       DirectCost{CostPerMonth: INR(4500)},
			days:        Q(10),
			margin:      P(0),
			wantMonthly: INR(4500),
			wantCost:    INR(1500),
		},
		{
			name:        "nobody hired",
			basis:       PersonCost{Salary: INR(9000), People: Q(0)},
			days:        Q(30),
			margin:      P(10),
			wantMonthly: INR(0),
			wantCost:    INR(0),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			monthly := MonthlyCost(tc.basis)
			assert.True(t, monthly.Equal(tc.wantMonthly), "MonthlyCost() = %v; want %v", monthly, tc.wantMonthly)

			cost := CalculateBasis(tc.basis, tc.days, tc.margin)
			assert.True(t, cost.Equal(tc.wantCost), "CalculateBasis() = %v; want %v", cost, tc.wantCost)
		})
	}
}
