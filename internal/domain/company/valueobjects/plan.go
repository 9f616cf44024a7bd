package valueobjects

import "fmt"

// Plan is the billing plan a company subscribes to.
type Plan string

const (
	PlanStarter Plan = "starter"
	PlanGrowth  Plan = "growth"
	PlanPremium Plan = "premium"
)

func NewPlan(s string) (Plan, error) {
	p := Plan(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid plan: %s", s)
	}
	return p, nil
}

func (p Plan) String() string {
	return string(p)
}

func (p Plan) IsValid() bool {
	switch p {
	case PlanStarter, PlanGrowth, PlanPremium:
		return true
	}
	return false
}
