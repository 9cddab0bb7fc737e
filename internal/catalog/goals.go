package catalog

import (
	"github.com/theirongolddev/fixgrocery/internal/model"

	"github.com/shopspring/decimal"
)

// DefaultGoalID is used when no goal has been configured.
const DefaultGoalID = "roof"

// Persona is the shopper the user is helping.
type Persona struct {
	Name    string
	Message string
}

// Shopper introduces the walkthrough on the intro page.
var Shopper = Persona{
	Name:    "Zaira",
	Message: "Hi, I'm Zaira. Could you help me with this week's shopping? I've been distracted lately and I need a hand reaching my goal.",
}

var goals = []model.SavingGoal{
	{ID: "sewing-machine", Name: "Sewing machine", Cost: decimal.NewFromInt(230)},
	{ID: "roof", Name: "Fixing the roof", Cost: decimal.NewFromInt(350)},
	{ID: "medical", Name: "Medical Treatment", Cost: decimal.NewFromInt(250)},
}

// Goals returns every saving goal in display order.
func Goals() []model.SavingGoal {
	return append([]model.SavingGoal(nil), goals...)
}

// GoalByID looks up a goal. The second return is false for unknown IDs.
func GoalByID(id string) (model.SavingGoal, bool) {
	for _, g := range goals {
		if g.ID == id {
			return g, true
		}
	}
	return model.SavingGoal{}, false
}
