package analysis

// Action is the recommended pricing move for the operator.
type Action string

const (
	ActionRaise  Action = "Raise"
	ActionHold   Action = "Hold"
	ActionDefend Action = "Defend"
)

type actionRule struct {
	when func(KPISet) bool
	then Action
}

// actionRules is evaluated top to bottom; the first matching rule wins.
// The order is part of the contract: a market that is both raisable
// (gap > 3, occupancy > 65) and promo-heavy (pressure > 70) resolves to
// Raise because that rule sits first.
var actionRules = []actionRule{
	{func(k KPISet) bool { return k.PriceGapPct > 3 && k.OccIndex > 65 }, ActionRaise},
	{func(k KPISet) bool { return k.PriceGapPct >= -3 && k.PriceGapPct <= 3 }, ActionHold},
	{func(k KPISet) bool { return k.PriceGapPct < -3 || k.PromoPressure > 70 }, ActionDefend},
}

// ClassifyAction maps a KPI set to a Raise/Hold/Defend decision.
// Stateless; recomputed on demand.
func ClassifyAction(k KPISet) Action {
	for _, r := range actionRules {
		if r.when(k) {
			return r.then
		}
	}
	return ActionHold
}
