package revenue

import (
	"errors"
	"math"
	"testing"
)

func TestModel_CLV(t *testing.T) {
	m := NewModel(DefaultConfig())

	t.Run("simple is charge times remaining months", func(t *testing.T) {
		got, err := m.CLVSimple(100, 12)
		if err != nil {
			t.Fatalf("CLVSimple: %v", err)
		}
		if got != 1200 {
			t.Errorf("CLVSimple = %v, want 1200", got)
		}
	})

	t.Run("full lifespan without tenure", func(t *testing.T) {
		got, err := m.CLVFullLifespan(100)
		if err != nil {
			t.Fatalf("CLVFullLifespan: %v", err)
		}
		if got != 2400 {
			t.Errorf("CLVFullLifespan = %v, want 2400", got)
		}
	})

	t.Run("tenure beyond lifespan clamps to zero", func(t *testing.T) {
		got, err := m.CLVSimple(100, 36)
		if err != nil {
			t.Fatalf("CLVSimple: %v", err)
		}
		if got != 0 {
			t.Errorf("CLVSimple = %v, want 0", got)
		}
	})

	t.Run("advanced blends history and current charge", func(t *testing.T) {
		// From the reference scenario: 85.50/month, 12 months tenure,
		// 1026.00 total means history equals the current charge.
		got, err := m.CLVAdvanced(BillingFacts{
			MonthlyCharge: 85.50,
			TenureMonths:  12,
			TotalRevenue:  1026.00,
		})
		if err != nil {
			t.Fatalf("CLVAdvanced: %v", err)
		}
		if math.Abs(got-1026.00) > 1e-9 {
			t.Errorf("CLVAdvanced = %v, want 1026.00", got)
		}
	})

	t.Run("advanced weights diverging history", func(t *testing.T) {
		// Historical average 50, current charge 100:
		// projected = 0.6*50 + 0.4*100 = 70; remaining = 14.
		got, err := m.CLVAdvanced(BillingFacts{
			MonthlyCharge: 100,
			TenureMonths:  10,
			TotalRevenue:  500,
		})
		if err != nil {
			t.Fatalf("CLVAdvanced: %v", err)
		}
		if math.Abs(got-980) > 1e-9 {
			t.Errorf("CLVAdvanced = %v, want 980", got)
		}
	})

	t.Run("zero tenure falls back to monthly charge", func(t *testing.T) {
		got, err := m.CLVAdvanced(BillingFacts{
			MonthlyCharge: 80,
			TenureMonths:  0,
			TotalRevenue:  0,
		})
		if err != nil {
			t.Fatalf("CLVAdvanced with zero tenure: %v", err)
		}
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Fatalf("CLVAdvanced = %v, want finite", got)
		}
		// projected = 0.6*80 + 0.4*80 = 80; remaining = 24.
		if math.Abs(got-1920) > 1e-9 {
			t.Errorf("CLVAdvanced = %v, want 1920", got)
		}
	})

	t.Run("discounted is below undiscounted", func(t *testing.T) {
		facts := BillingFacts{MonthlyCharge: 85.50, TenureMonths: 12, TotalRevenue: 1026.00}
		plain, _ := m.CLVAdvanced(facts)
		discounted, err := m.CLVDiscounted(facts)
		if err != nil {
			t.Fatalf("CLVDiscounted: %v", err)
		}
		if discounted <= 0 || discounted >= plain {
			t.Errorf("CLVDiscounted = %v, want in (0, %v)", discounted, plain)
		}
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		if _, err := m.CLVSimple(-1, 5); !errors.Is(err, ErrNegativeAmount) {
			t.Errorf("negative charge error = %v", err)
		}
		if _, err := m.CLVSimple(50, -1); !errors.Is(err, ErrNegativeTenure) {
			t.Errorf("negative tenure error = %v", err)
		}
		if _, err := m.CLVAdvanced(BillingFacts{MonthlyCharge: 50, TotalRevenue: math.Inf(1)}); !errors.Is(err, ErrNegativeAmount) {
			t.Errorf("infinite revenue error = %v", err)
		}
	})
}

func TestModel_RevenueAtRisk(t *testing.T) {
	m := NewModel(DefaultConfig())

	got, err := m.RevenueAtRisk(0.75, 1026)
	if err != nil {
		t.Fatalf("RevenueAtRisk: %v", err)
	}
	if math.Abs(got-769.5) > 1e-9 {
		t.Errorf("RevenueAtRisk = %v, want 769.5", got)
	}

	if _, err := m.RevenueAtRisk(1.2, 1000); !errors.Is(err, ErrInvalidProbability) {
		t.Errorf("out-of-range probability error = %v", err)
	}
}

func TestModel_RetentionROI(t *testing.T) {
	m := NewModel(DefaultConfig())

	t.Run("basic offer on the reference scenario", func(t *testing.T) {
		got, err := m.RetentionROI(25, 0.75, 1026)
		if err != nil {
			t.Fatalf("RetentionROI: %v", err)
		}
		if math.Abs(got.ExpectedLossWithoutAction-769.5) > 1e-9 {
			t.Errorf("expected loss = %v, want 769.5", got.ExpectedLossWithoutAction)
		}
		if math.Abs(got.ExpectedLossWithRetention-384.75) > 1e-9 {
			t.Errorf("expected loss with retention = %v, want 384.75", got.ExpectedLossWithRetention)
		}
		if math.Abs(got.RevenueSaved-384.75) > 1e-9 {
			t.Errorf("revenue saved = %v, want 384.75", got.RevenueSaved)
		}
		if math.Abs(got.NetBenefit-359.75) > 1e-9 {
			t.Errorf("net benefit = %v, want 359.75", got.NetBenefit)
		}
		if math.Abs(got.ROIPercentage-1439) > 1e-6 {
			t.Errorf("roi = %v, want 1439", got.ROIPercentage)
		}
		if got.Recommendation != "Proceed" {
			t.Errorf("recommendation = %q, want Proceed", got.Recommendation)
		}
	})

	t.Run("zero cost yields zero ROI not infinity", func(t *testing.T) {
		got, err := m.RetentionROI(0, 0.75, 1026)
		if err != nil {
			t.Fatalf("RetentionROI: %v", err)
		}
		if got.ROIPercentage != 0 {
			t.Errorf("roi = %v, want 0", got.ROIPercentage)
		}
		if math.IsNaN(got.ROIPercentage) || math.IsInf(got.ROIPercentage, 0) {
			t.Errorf("roi must be finite, got %v", got.ROIPercentage)
		}
	})

	t.Run("negative net benefit is not recommended", func(t *testing.T) {
		// Low stakes: saving half of 0.1*100 = 5 never pays for a 100 offer.
		got, err := m.RetentionROI(100, 0.1, 100)
		if err != nil {
			t.Fatalf("RetentionROI: %v", err)
		}
		if got.NetBenefit >= 0 {
			t.Fatalf("net benefit = %v, want negative", got.NetBenefit)
		}
		if got.Recommendation != "Not Recommended" {
			t.Errorf("recommendation = %q, want Not Recommended", got.Recommendation)
		}
	})
}

func TestModel_FullImpact(t *testing.T) {
	m := NewModel(DefaultConfig())

	t.Run("reference scenario end to end", func(t *testing.T) {
		report, err := m.FullImpact(BillingFacts{
			MonthlyCharge: 85.50,
			TenureMonths:  12,
			TotalRevenue:  1026.00,
		}, 0.75)
		if err != nil {
			t.Fatalf("FullImpact: %v", err)
		}
		if report.CLV != 1026.00 {
			t.Errorf("clv = %v, want 1026.00", report.CLV)
		}
		if report.RevenueAtRisk != 769.50 {
			t.Errorf("revenue at risk = %v, want 769.50", report.RevenueAtRisk)
		}
		if report.RevenueTier != TierMedium || report.Priority != PriorityHigh {
			t.Errorf("tier/priority = %s/%s, want %s/%s",
				report.RevenueTier, report.Priority, TierMedium, PriorityHigh)
		}
		// Same revenue saved for every offer, so the cheapest offer has
		// the highest ROI.
		if report.RecommendedOffer != OfferBasic {
			t.Errorf("recommended offer = %q, want %q", report.RecommendedOffer, OfferBasic)
		}
		if len(report.ROIByOffer) != 3 {
			t.Fatalf("roi map size = %d, want 3", len(report.ROIByOffer))
		}
		basic := report.ROIByOffer[OfferBasic]
		standard := report.ROIByOffer[OfferStandard]
		premium := report.ROIByOffer[OfferPremium]
		if !(basic.ROIPercentage > standard.ROIPercentage && standard.ROIPercentage > premium.ROIPercentage) {
			t.Errorf("roi ordering broken: basic=%v standard=%v premium=%v",
				basic.ROIPercentage, standard.ROIPercentage, premium.ROIPercentage)
		}
	})

	t.Run("tier breakpoints", func(t *testing.T) {
		tests := []struct {
			name         string
			atRisk       float64
			wantTier     string
			wantPriority string
		}{
			{"at 1000", 1000, TierHigh, PriorityCritical},
			{"at 500", 500, TierMedium, PriorityHigh},
			{"at 200", 200, TierStandard, PriorityMedium},
			{"below 200", 199.99, TierLow, PriorityLow},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				tier, priority := classify(tt.atRisk)
				if tier != tt.wantTier || priority != tt.wantPriority {
					t.Errorf("classify(%v) = %s/%s, want %s/%s",
						tt.atRisk, tier, priority, tt.wantTier, tt.wantPriority)
				}
			})
		}
	})

	t.Run("no positive offer means monitor only", func(t *testing.T) {
		report, err := m.FullImpact(BillingFacts{
			MonthlyCharge: 2,
			TenureMonths:  20,
			TotalRevenue:  40,
		}, 0.5)
		if err != nil {
			t.Fatalf("FullImpact: %v", err)
		}
		if report.RecommendedOffer != OfferNone {
			t.Errorf("recommended offer = %q, want %q", report.RecommendedOffer, OfferNone)
		}
	})

	t.Run("invalid probability", func(t *testing.T) {
		_, err := m.FullImpact(BillingFacts{MonthlyCharge: 50}, -0.2)
		if !errors.Is(err, ErrInvalidProbability) {
			t.Errorf("error = %v, want ErrInvalidProbability", err)
		}
	})
}

func TestNewModel_defaults(t *testing.T) {
	m := NewModel(Config{})
	cfg := m.Config()
	if cfg.LifespanMonths != 24 {
		t.Errorf("lifespan = %d, want 24", cfg.LifespanMonths)
	}
	if cfg.RetentionSuccessRate != 0.5 {
		t.Errorf("success rate = %v, want 0.5", cfg.RetentionSuccessRate)
	}
	if cfg.OfferCosts.Basic != 25 || cfg.OfferCosts.Standard != 50 || cfg.OfferCosts.Premium != 100 {
		t.Errorf("offer costs = %+v, want 25/50/100", cfg.OfferCosts)
	}
}
