package cmd

import (
	"errors"
	"flag"
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/costcalc"
	"github.com/shopspring/decimal"
)

// decimalValue is a flag.Value holding an exact decimal. It remembers whether
// it was set on the command line.
type decimalValue struct {
	value decimal.Decimal
	set   bool
}

func (d *decimalValue) String() string {
	if d == nil {
		return "0"
	}
	return d.value.String()
}

func (d *decimalValue) Set(s string) error {
	v, err := costcalc.ParseDecimal(s)
	if err != nil {
		return err
	}
	d.value, d.set = v, true
	return nil
}

// entryFlags are the inputs of a cost entry, shared by 'cost' and the
// session 'add' command.
type entryFlags struct {
	category    string
	description string

	salary, people     decimalValue // person_cost
	costPerUser, users decimalValue // service_cost
	costPerMonth       decimalValue // direct_cost

	days, margin decimalValue
}

func (e *entryFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&e.category, "type", "", "Cost category: person_cost, service_cost or direct_cost (required)")
	f.StringVar(&e.description, "desc", "", "Description of the cost")
	f.Var(&e.salary, "salary", "person_cost: salary per month")
	f.Var(&e.people, "people", "person_cost: number of people required")
	f.Var(&e.costPerUser, "cpu", "service_cost: cost per user per month")
	f.Var(&e.users, "users", "service_cost: number of users")
	f.Var(&e.costPerMonth, "cpm", "direct_cost: cost per month")
	f.Var(&e.days, "days", "Number of days")
	f.Var(&e.margin, "margin", "Profit margin in percent")
}

// field returns the category specific flag called name.
func (e *entryFlags) field(name string) *decimalValue {
	switch name {
	case "salary":
		return &e.salary
	case "people":
		return &e.people
	case "cpu":
		return &e.costPerUser
	case "users":
		return &e.users
	case "cpm":
		return &e.costPerMonth
	}
	return nil
}

var fieldNames = []string{"salary", "people", "cpu", "users", "cpm"}

var categoryFields = map[costcalc.Category][]string{
	costcalc.CatPerson:  {"salary", "people"},
	costcalc.CatService: {"cpu", "users"},
	costcalc.CatDirect:  {"cpm"},
}

// Input returns the cost basis, days and margin described by the flags, with
// amounts in currency. Missing numbers read as zero. Fields of another
// category are rejected.
func (e *entryFlags) Input(currency string) (costcalc.Basis, costcalc.Quantity, costcalc.Percent, error) {
	var (
		days   = costcalc.Q(e.days.value)
		margin = costcalc.P(e.margin.value)
	)
	if e.category == "" {
		return nil, days, margin, errors.New("-type is required")
	}
	cat, err := costcalc.ParseCategory(e.category)
	if err != nil {
		return nil, days, margin, err
	}

	for _, name := range fieldNames {
		if e.field(name).set && !slices.Contains(categoryFields[cat], name) {
			return nil, days, margin, fmt.Errorf("-%s is not a field of %s (fields: -%s)", name, cat, strings.Join(categoryFields[cat], ", -"))
		}
	}

	var basis costcalc.Basis
	switch cat {
	case costcalc.CatPerson:
		basis = costcalc.PersonCost{Salary: costcalc.M(e.salary.value, currency), People: costcalc.Q(e.people.value)}
	case costcalc.CatService:
		basis = costcalc.ServiceCost{CostPerUser: costcalc.M(e.costPerUser.value, currency), Users: costcalc.Q(e.users.value)}
	case costcalc.CatDirect:
		basis = costcalc.DirectCost{CostPerMonth: costcalc.M(e.costPerMonth.value, currency)}
	}
	return basis, days, margin, nil
}
