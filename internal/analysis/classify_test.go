package analysis

import "testing"

func TestClassifyAction(t *testing.T) {
	tests := []struct {
		name     string
		gapPct   float64
		occIndex float64
		promo    float64
		expected Action
	}{
		{"raise when underpriced and demand strong", 5, 70, 20, ActionRaise},
		{"hold inside the dead band", 0, 70, 20, ActionHold},
		{"hold at positive band edge", 3, 90, 20, ActionHold},
		{"hold at negative band edge", -3, 90, 20, ActionHold},
		{"defend when overpriced", -10, 70, 20, ActionDefend},
		{"defend under promo pressure", 5, 50, 80, ActionDefend},
		{"fallback hold", 5, 50, 20, ActionHold},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			k := KPISet{PriceGapPct: test.gapPct, OccIndex: test.occIndex, PromoPressure: test.promo}
			if got := ClassifyAction(k); got != test.expected {
				t.Errorf("gap=%.0f occ=%.0f promo=%.0f: got %s, want %s",
					test.gapPct, test.occIndex, test.promo, got, test.expected)
			}
		})
	}
}

// When the raise and defend conditions are both true, raise wins
// because its rule is evaluated first.
func TestClassifyAction_RaiseBeatsDefend(t *testing.T) {
	k := KPISet{PriceGapPct: 5, OccIndex: 70, PromoPressure: 80}
	if got := ClassifyAction(k); got != ActionRaise {
		t.Errorf("got %s, want Raise to win on precedence", got)
	}
}
