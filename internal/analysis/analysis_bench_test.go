package analysis

import (
	"testing"

	"github.com/guarzo/storagemarket/internal/testutil"
)

func BenchmarkAnalyze(b *testing.B) {
	snap := testutil.NewFactory(42).Snapshot(200)
	p := Params{MyPrice: 75, EstUnits: 40}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Analyze(snap, p)
	}
}

func BenchmarkAnalyzeSmall(b *testing.B) {
	// Typical search page yields a few dozen facilities.
	snap := testutil.NewFactory(42).Snapshot(30)
	p := Params{MyPrice: 75, EstUnits: 40}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Analyze(snap, p)
	}
}

func BenchmarkComputeKPIs(b *testing.B) {
	snap := testutil.NewFactory(7).Snapshot(200)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ComputeKPIs(snap, 75, 40)
	}
}

func BenchmarkDemandCohorts(b *testing.B) {
	snap := testutil.NewFactory(7).Snapshot(200)
	k := ComputeKPIs(snap, 75, 40)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = DemandCohorts(snap.Listings, k.MarketAvg)
	}
}

func BenchmarkReportTables(b *testing.B) {
	snap := testutil.NewFactory(7).Snapshot(200)
	res, err := Analyze(snap, Params{MyPrice: 75, EstUnits: 40})
	if err != nil {
		b.Fatalf("Analyze: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ReportKPIs(res.KPIs)
		_ = ReportPriceScenarios(res.PriceScenarios)
		_ = ReportPriceBands(res.BandShares)
		_ = ReportDemandCohorts(res.DemandCohorts)
	}
}
