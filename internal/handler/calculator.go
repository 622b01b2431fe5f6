package handler

import (
	"net/http"

	"github.com/travelglobal/planner/internal/budget"
)

// CalculatorRequest is the body of POST /calculator. Omitted kinds count as 0.
type CalculatorRequest struct {
	Expenses map[budget.ExpenseKind]int `json:"expenses"`
}

// CalculatorResponse is the body of POST /calculator. Amounts are whole US
// dollars.
type CalculatorResponse struct {
	Expenses         []budget.Expense `json:"expenses"`
	Total            int              `json:"total"`
	RoundedTotal     int              `json:"rounded_total"`
	RoundedTotalText string           `json:"rounded_total_text"`
}

// Calculate handles POST /calculator. Each expense is rounded up to the next
// $50 and the total to the next $100.
func (s *Server) Calculate(w http.ResponseWriter, r *http.Request) {
	var body CalculatorRequest
	if !decodeBody(w, r, &body) {
		return
	}
	calc, err := s.planner.Calculate(r.Context(), body.Expenses)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	usd, err := budget.LookupCurrency(budget.BaseCurrency)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, CalculatorResponse{
		Expenses:         calc.Expenses,
		Total:            calc.Total,
		RoundedTotal:     calc.RoundedTotal,
		RoundedTotalText: usd.Format(calc.RoundedTotal),
	})
}
