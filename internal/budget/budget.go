// Package budget derives a cost estimate from an itinerary.
// All amounts are whole US dollars (the base currency) until converted for
// display with Currency.Convert.
package budget

import (
	"github.com/travelglobal/planner/internal/domain"
)

// Costs is a cost vector. In the country table Flights is a one-time fare and
// the other three are per day; in a Breakdown all four are already multiplied
// out for the stay.
type Costs struct {
	Flights    int `json:"flights"`
	Hotels     int `json:"hotels"`
	Food       int `json:"food"`
	Activities int `json:"activities"`
}

// Total returns the sum of all four categories.
func (c Costs) Total() int {
	return c.Flights + c.Hotels + c.Food + c.Activities
}

func (c Costs) add(o Costs) Costs {
	return Costs{
		Flights:    c.Flights + o.Flights,
		Hotels:     c.Hotels + o.Hotels,
		Food:       c.Food + o.Food,
		Activities: c.Activities + o.Activities,
	}
}

// DefaultCosts is used for any country missing from the table.
var DefaultCosts = Costs{Flights: 500, Hotels: 150, Food: 60, Activities: 80}

var countryCosts = map[string]Costs{
	"USA":       {Flights: 350, Hotels: 180, Food: 80, Activities: 120},
	"France":    {Flights: 500, Hotels: 200, Food: 90, Activities: 100},
	"Japan":     {Flights: 800, Hotels: 150, Food: 60, Activities: 80},
	"Germany":   {Flights: 450, Hotels: 160, Food: 70, Activities: 90},
	"Australia": {Flights: 900, Hotels: 170, Food: 75, Activities: 110},
	"UAE":       {Flights: 600, Hotels: 250, Food: 100, Activities: 150},
	"Spain":     {Flights: 420, Hotels: 140, Food: 65, Activities: 85},
	"Singapore": {Flights: 700, Hotels: 190, Food: 55, Activities: 95},
	"UK":        {Flights: 480, Hotels: 210, Food: 85, Activities: 105},
	"Peru":      {Flights: 650, Hotels: 100, Food: 40, Activities: 70},
	"China":     {Flights: 750, Hotels: 120, Food: 45, Activities: 75},
	"Greece":    {Flights: 500, Hotels: 130, Food: 55, Activities: 80},
	"Egypt":     {Flights: 550, Hotels: 90, Food: 35, Activities: 60},
}

// BaselineFor returns the baseline vector for country, or DefaultCosts.
func BaselineFor(country string) Costs {
	if c, ok := countryCosts[country]; ok {
		return c
	}
	return DefaultCosts
}

// LineItem is the cost of one itinerary stop.
type LineItem struct {
	Item  domain.ItineraryItem `json:"item"`
	Days  int                  `json:"days"`
	Costs Costs                `json:"costs"`
	Total int                  `json:"total"`
}

// Breakdown is the full estimate for an itinerary, in base currency.
type Breakdown struct {
	Currency   Currency   `json:"currency"`
	Items      []LineItem `json:"items"`
	Subtotals  Costs      `json:"subtotals"`
	GrandTotal int        `json:"grand_total"`
	TotalDays  int        `json:"total_days"`
	Countries  int        `json:"countries"`
}

// Display converts a base-currency amount into the breakdown's currency.
func (b Breakdown) Display(amount int) int {
	return b.Currency.Convert(amount)
}

// Format renders a base-currency amount as a symbol-prefixed display string.
func (b Breakdown) Format(amount int) string {
	return b.Currency.Format(amount)
}

// LineFor costs a single item: flights once, everything else per day.
func LineFor(item domain.ItineraryItem) LineItem {
	days := item.StayDays()
	base := BaselineFor(item.Country)
	costs := Costs{
		Flights:    base.Flights,
		Hotels:     base.Hotels * days,
		Food:       base.Food * days,
		Activities: base.Activities * days,
	}
	return LineItem{Item: item.Clone(), Days: days, Costs: costs, Total: costs.Total()}
}

// Estimate costs every item and sums the results. It reports false for an
// empty itinerary, in which case no estimate should be shown at all.
// items is never modified.
func Estimate(items []domain.ItineraryItem, cur Currency) (Breakdown, bool) {
	if len(items) == 0 {
		return Breakdown{}, false
	}

	b := Breakdown{
		Currency:  cur,
		Items:     make([]LineItem, 0, len(items)),
		Countries: domain.CountryCount(items),
	}
	for _, it := range items {
		line := LineFor(it)
		b.Items = append(b.Items, line)
		b.Subtotals = b.Subtotals.add(line.Costs)
		b.GrandTotal += line.Total
		b.TotalDays += line.Days
	}
	return b, true
}
