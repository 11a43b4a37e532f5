package costcalc

import (
	"fmt"
)

// Category is a typed string for identifying the kind of a cost.
type Category string

// Categories of costs.
const (
	CatPerson  Category = "person_cost"
	CatService Category = "service_cost"
	CatDirect  Category = "direct_cost"
)

// Categories lists all categories in display order.
var Categories = []Category{CatPerson, CatService, CatDirect}

// ParseCategory parses a category name.
func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case CatPerson, CatService, CatDirect:
		return c, nil
	default:
		return "", fmt.Errorf("unknown cost category %q, must be one of %v", s, Categories)
	}
}

// Basis is the category specific input of a cost entry. It is one of
// PersonCost, ServiceCost or DirectCost.
type Basis interface {
	Category() Category
	basis()
}

// PersonCost is the cost of a team: a monthly salary times a head count.
type PersonCost struct {
	Salary Money    // Salary is the monthly salary of one person.
	People Quantity // People is the number of people required.
}

// ServiceCost is the cost of a service billed per user and per month.
type ServiceCost struct {
	CostPerUser Money    // CostPerUser is the monthly cost of one user.
	Users       Quantity // Users is the number of users.
}

// DirectCost is a cost already known per month.
type DirectCost struct {
	CostPerMonth Money
}

func (PersonCost) Category() Category  { return CatPerson }
func (ServiceCost) Category() Category { return CatService }
func (DirectCost) Category() Category  { return CatDirect }

func (PersonCost) basis()  {}
func (ServiceCost) basis() {}
func (DirectCost) basis()  {}

// MonthlyCost returns the monthly cost the basis stands for.
func MonthlyCost(b Basis) Money {
	switch v := b.(type) {
	case PersonCost:
		return v.Salary.Mul(v.People)
	case ServiceCost:
		return v.CostPerUser.Mul(v.Users)
	case DirectCost:
		return v.CostPerMonth
	default:
		panic(fmt.Sprintf("unsupported cost basis %T", b))
	}
}
