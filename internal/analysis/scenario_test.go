package analysis

import "testing"

func TestPriceScenarios_IdentityScenario(t *testing.T) {
	k := KPISet{OccIndex: 85}
	rows := PriceScenarios(k, 60, 10)

	if len(rows) != 6 {
		t.Fatalf("expected 6 scenarios, got %d", len(rows))
	}

	var identity *ScenarioRow
	for i := range rows {
		if rows[i].PriceChangePct == 0 {
			identity = &rows[i]
		}
	}
	if identity == nil {
		t.Fatal("no 0% scenario present")
	}

	if abs(identity.NewPrice-60) > 0.001 {
		t.Errorf("identity NewPrice = %.2f, want 60.00", identity.NewPrice)
	}
	if abs(identity.EstOccupancy-85) > 0.001 {
		t.Errorf("identity EstOccupancy = %.2f, want 85.00", identity.EstOccupancy)
	}
	if abs(identity.DeltaVsCurrent) > 0.001 {
		t.Errorf("identity DeltaVsCurrent = %.2f, want 0", identity.DeltaVsCurrent)
	}
	// 60 * 10 units * 12 months * 0.85
	if abs(identity.EstAnnualRevenue-6120) > 0.001 {
		t.Errorf("identity revenue = %.2f, want 6120.00", identity.EstAnnualRevenue)
	}
}

func TestPriceScenarios_OccupancyClamped(t *testing.T) {
	// Max baseline: every scenario must stay inside [0.6, 1.0], even at
	// the -10% step which pushes occupancy up.
	k := KPISet{OccIndex: 100}
	for _, r := range PriceScenarios(k, 60, 10) {
		if r.EstOccupancy < 60-1e-9 || r.EstOccupancy > 100+1e-9 {
			t.Errorf("step %.0f%%: occupancy %.2f outside [60, 100]", r.PriceChangePct, r.EstOccupancy)
		}
	}

	// The elasticity rule on its own must clamp even for extreme moves.
	if got := clamp(1.0-1.0*priceElasticity, 0.6, 1.0); got != 0.6 {
		t.Errorf("occupancy at +100%% = %.2f, want clamp at 0.60", got)
	}
}

func TestPriceScenarios_ElasticityDirection(t *testing.T) {
	k := KPISet{OccIndex: 80}
	rows := PriceScenarios(k, 100, 1)

	for _, r := range rows {
		expectedOcc := clamp(0.8-(r.PriceChangePct/100)*priceElasticity, 0.6, 1.0) * 100
		if abs(r.EstOccupancy-expectedOcc) > 0.001 {
			t.Errorf("step %.0f%%: occupancy %.2f, want %.2f", r.PriceChangePct, r.EstOccupancy, expectedOcc)
		}
	}
}

func TestBaselineOccupancy_Fallback(t *testing.T) {
	tests := []struct {
		occIndex float64
		expected float64
	}{
		{85, 0.85},
		{0, 0.9},
		{-10, 0.9},
	}

	for _, test := range tests {
		got := baselineOccupancy(KPISet{OccIndex: test.occIndex})
		if abs(got-test.expected) > 0.001 {
			t.Errorf("baselineOccupancy(occ=%.0f) = %.2f, want %.2f", test.occIndex, got, test.expected)
		}
	}
}

func TestPromoScenarios(t *testing.T) {
	k := KPISet{OccIndex: 90}
	rows := PromoScenarios(k, 60, 10)

	if len(rows) != 3 {
		t.Fatalf("expected 3 promo rows, got %d", len(rows))
	}

	noPromo, light, heavy := rows[0], rows[1], rows[2]

	if noPromo.Scenario != "No promo" || noPromo.EffectiveDiscountPct != 0 {
		t.Errorf("no-promo row wrong: %+v", noPromo)
	}
	if abs(noPromo.EstOccupancyPct-90) > 0.001 {
		t.Errorf("no-promo occupancy = %.2f, want 90.00", noPromo.EstOccupancyPct)
	}

	if light.Price != 60 || light.EffectiveDiscountPct != 5.0 {
		t.Errorf("light promo keeps price with nominal 5%% label: %+v", light)
	}
	if abs(light.EstOccupancyPct-95) > 0.001 {
		t.Errorf("light promo occupancy = %.2f, want 95.00", light.EstOccupancyPct)
	}

	if abs(heavy.Price-55) > 0.001 {
		t.Errorf("heavy promo price = %.2f, want 55.00 ($5 off)", heavy.Price)
	}
	if abs(heavy.EffectiveDiscountPct-5.0/60*100) > 0.001 {
		t.Errorf("heavy promo discount = %.2f%%, want %.2f%%", heavy.EffectiveDiscountPct, 5.0/60*100)
	}
	if abs(heavy.EstOccupancyPct-100) > 0.001 {
		t.Errorf("heavy promo occupancy = %.2f, want cap at 100", heavy.EstOccupancyPct)
	}
	// 55 * 10 * 12 * 1.0
	if abs(heavy.EstAnnualRevenue-6600) > 0.001 {
		t.Errorf("heavy promo revenue = %.2f, want 6600.00", heavy.EstAnnualRevenue)
	}
}

func TestPromoScenarios_OccupancyCap(t *testing.T) {
	k := KPISet{OccIndex: 98}
	rows := PromoScenarios(k, 60, 10)
	for _, r := range rows {
		if r.EstOccupancyPct > 100+1e-9 {
			t.Errorf("%s: occupancy %.2f above 100", r.Scenario, r.EstOccupancyPct)
		}
	}
}

// Helper for floating point comparison.
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
