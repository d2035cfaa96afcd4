package models

import "github.com/shopspring/decimal"

// Plan describes a bookable stay plan with its fee amount.
type Plan struct {
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Editable bool            `json:"editable"` // amount may be adjusted by the user on the booking page
}

// planTable is the static plan catalogue. Only monthly and yearly amounts are
// flagged user-editable.
var planTable = map[string]Plan{
	"daily":   {Name: "daily", Amount: decimal.NewFromInt(240)},
	"monthly": {Name: "monthly", Amount: decimal.NewFromInt(5500), Editable: true},
	"yearly":  {Name: "yearly", Amount: decimal.NewFromInt(55000), Editable: true},
}

// PlanByName looks up a plan by name. The second return value is false for
// unknown plans.
func PlanByName(name string) (Plan, bool) {
	p, ok := planTable[name]
	return p, ok
}

// PlanNames returns the available plan names.
func PlanNames() []string {
	return []string{"daily", "monthly", "yearly"}
}
