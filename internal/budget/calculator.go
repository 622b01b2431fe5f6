package budget

import (
	"fmt"

	"github.com/travelglobal/planner/internal/domain"
)

// ExpenseKind names one line of the free-form trip cost calculator.
type ExpenseKind string

const (
	ExpenseFlights    ExpenseKind = "flights"
	ExpenseHotels     ExpenseKind = "hotels"
	ExpenseCruises    ExpenseKind = "cruises"
	ExpenseTickets    ExpenseKind = "tickets"
	ExpenseActivities ExpenseKind = "activities"
)

// ExpenseKinds lists every calculator line in display order.
var ExpenseKinds = []ExpenseKind{
	ExpenseFlights, ExpenseHotels, ExpenseCruises, ExpenseTickets, ExpenseActivities,
}

var expenseLabels = map[ExpenseKind]string{
	ExpenseFlights:    "Flights",
	ExpenseHotels:     "Hotels",
	ExpenseCruises:    "Cruises",
	ExpenseTickets:    "Tickets",
	ExpenseActivities: "Activities",
}

const (
	// ExpenseStep is the granularity every calculator value is rounded up to.
	ExpenseStep = 50
	// TotalStep is the granularity of the rounded calculator total.
	TotalStep = 100
	// MaxExpense bounds a single calculator value in base currency.
	MaxExpense = 10_000_000
)

// Label returns the display label of k, or "" for an unknown kind.
func (k ExpenseKind) Label() string {
	return expenseLabels[k]
}

// RoundExpense rounds v up to the next multiple of ExpenseStep.
// Zero and negative values become 0.
func RoundExpense(v int) int {
	return roundUp(v, ExpenseStep)
}

// CalculatorTotal rounds a summed calculator total up to the next multiple
// of TotalStep.
func CalculatorTotal(total int) int {
	return roundUp(total, TotalStep)
}

func roundUp(v, step int) int {
	if v <= 0 {
		return 0
	}
	return (v + step - 1) / step * step
}

// Expense is one rounded calculator line.
type Expense struct {
	Kind  ExpenseKind `json:"kind"`
	Label string      `json:"label"`
	Value int         `json:"value"`
}

// Calculation is the calculator result. Expenses always holds every kind in
// ExpenseKinds order; kinds the caller left out are zero.
type Calculation struct {
	Expenses     []Expense `json:"expenses"`
	Total        int       `json:"total"`
	RoundedTotal int       `json:"rounded_total"`
}

// Calculate rounds each supplied value with RoundExpense and totals them.
// Unknown kinds and values above MaxExpense are validation errors.
func Calculate(values map[ExpenseKind]int) (Calculation, error) {
	for k, v := range values {
		if _, ok := expenseLabels[k]; !ok {
			return Calculation{}, fmt.Errorf("%w: unknown expense kind %q", domain.ErrValidation, k)
		}
		if v > MaxExpense {
			return Calculation{}, fmt.Errorf("%w: %s must be at most %d", domain.ErrValidation, k, MaxExpense)
		}
	}

	calc := Calculation{Expenses: make([]Expense, 0, len(ExpenseKinds))}
	for _, k := range ExpenseKinds {
		v := RoundExpense(values[k])
		calc.Expenses = append(calc.Expenses, Expense{Kind: k, Label: k.Label(), Value: v})
		calc.Total += v
	}
	calc.RoundedTotal = CalculatorTotal(calc.Total)
	return calc, nil
}
