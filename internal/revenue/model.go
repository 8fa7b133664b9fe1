package revenue

import (
	"fmt"
	"math"
)

// Weights of the blended monthly projection used by the advanced CLV:
// 60% historical average, 40% current charge.
const (
	historicalWeight = 0.6
	currentWeight    = 0.4
)

// Model estimates customer lifetime value and ranks retention offers by
// cost/benefit. All methods are pure; a Model is safe for concurrent use.
type Model struct {
	cfg Config
}

// NewModel creates a revenue impact model. Zero-valued config fields fall
// back to DefaultConfig.
func NewModel(cfg Config) *Model {
	def := DefaultConfig()
	if cfg.LifespanMonths <= 0 {
		cfg.LifespanMonths = def.LifespanMonths
	}
	if cfg.DiscountRate <= 0 {
		cfg.DiscountRate = def.DiscountRate
	}
	if cfg.RetentionSuccessRate <= 0 || cfg.RetentionSuccessRate > 1 {
		cfg.RetentionSuccessRate = def.RetentionSuccessRate
	}
	if cfg.OfferCosts == (OfferCosts{}) {
		cfg.OfferCosts = def.OfferCosts
	}
	return &Model{cfg: cfg}
}

// Config returns the model configuration.
func (m *Model) Config() Config {
	return m.cfg
}

// CLVSimple estimates lifetime value as monthly charge times expected
// remaining months. A negative tenure rejects; tenure beyond the configured
// lifespan yields zero remaining months.
func (m *Model) CLVSimple(monthlyCharge float64, tenureMonths int) (float64, error) {
	if err := validateAmount(monthlyCharge); err != nil {
		return 0, err
	}
	if tenureMonths < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeTenure, tenureMonths)
	}
	return monthlyCharge * float64(m.remainingMonths(tenureMonths)), nil
}

// CLVFullLifespan is CLVSimple with no tenure information: the full
// configured lifespan counts as remaining.
func (m *Model) CLVFullLifespan(monthlyCharge float64) (float64, error) {
	if err := validateAmount(monthlyCharge); err != nil {
		return 0, err
	}
	return monthlyCharge * float64(m.cfg.LifespanMonths), nil
}

// CLVAdvanced blends historical average revenue with the current charge to
// project remaining value. Zero tenure falls back to the monthly charge as
// the historical average. This is the CLV used by every downstream
// computation.
func (m *Model) CLVAdvanced(facts BillingFacts) (float64, error) {
	if err := validateFacts(facts); err != nil {
		return 0, err
	}
	projected := m.projectedMonthly(facts)
	return projected * float64(m.remainingMonths(facts.TenureMonths)), nil
}

// CLVDiscounted applies the configured monthly discount rate to the same
// projected monthly value: sum of projected/(1+r)^k over the remaining
// months. Reported for reference; the decision path uses CLVAdvanced.
func (m *Model) CLVDiscounted(facts BillingFacts) (float64, error) {
	if err := validateFacts(facts); err != nil {
		return 0, err
	}
	projected := m.projectedMonthly(facts)
	var clv float64
	for k := 1; k <= m.remainingMonths(facts.TenureMonths); k++ {
		clv += projected / math.Pow(1+m.cfg.DiscountRate, float64(k))
	}
	return clv, nil
}

// RevenueAtRisk is the expected loss: churn probability times CLV.
func (m *Model) RevenueAtRisk(churnProbability, clv float64) (float64, error) {
	if err := validateProbability(churnProbability); err != nil {
		return 0, err
	}
	if err := validateAmount(clv); err != nil {
		return 0, err
	}
	return churnProbability * clv, nil
}

// RetentionROI evaluates one retention offer. Any offer is assumed to cut
// churn probability by the configured success rate. A zero offer cost
// yields ROI 0 rather than dividing by zero.
func (m *Model) RetentionROI(offerCost, churnProbability, clv float64) (ROIBreakdown, error) {
	if err := validateAmount(offerCost); err != nil {
		return ROIBreakdown{}, err
	}
	if err := validateProbability(churnProbability); err != nil {
		return ROIBreakdown{}, err
	}
	if err := validateAmount(clv); err != nil {
		return ROIBreakdown{}, err
	}

	expectedLoss := churnProbability * clv
	reducedProb := churnProbability * (1 - m.cfg.RetentionSuccessRate)
	expectedLossWith := reducedProb * clv
	saved := expectedLoss - expectedLossWith
	net := saved - offerCost

	var roi float64
	if offerCost > 0 {
		roi = net / offerCost * 100
	}

	recommendation := "Not Recommended"
	if net > 0 {
		recommendation = "Proceed"
	}

	return ROIBreakdown{
		RetentionCost:             offerCost,
		ExpectedLossWithoutAction: expectedLoss,
		ExpectedLossWithRetention: expectedLossWith,
		RevenueSaved:              saved,
		NetBenefit:                net,
		ROIPercentage:             roi,
		Recommendation:            recommendation,
	}, nil
}

// FullImpact computes the complete per-customer financial report: CLV,
// revenue at risk, value tier and priority, ROI for every offer tier, and
// the best positive-net-benefit offer (highest ROI), else Monitor Only.
func (m *Model) FullImpact(facts BillingFacts, churnProbability float64) (ImpactReport, error) {
	if err := validateProbability(churnProbability); err != nil {
		return ImpactReport{}, err
	}

	clvSimple, err := m.CLVSimple(facts.MonthlyCharge, facts.TenureMonths)
	if err != nil {
		return ImpactReport{}, err
	}
	clv, err := m.CLVAdvanced(facts)
	if err != nil {
		return ImpactReport{}, err
	}
	clvDiscounted, err := m.CLVDiscounted(facts)
	if err != nil {
		return ImpactReport{}, err
	}

	atRisk := churnProbability * clv
	tier, priority := classify(atRisk)

	offers := map[string]float64{
		OfferBasic:    m.cfg.OfferCosts.Basic,
		OfferStandard: m.cfg.OfferCosts.Standard,
		OfferPremium:  m.cfg.OfferCosts.Premium,
	}

	roiByOffer := make(map[string]ROIBreakdown, len(offers))
	for name, cost := range offers {
		breakdown, roiErr := m.RetentionROI(cost, churnProbability, clv)
		if roiErr != nil {
			return ImpactReport{}, roiErr
		}
		roiByOffer[name] = breakdown
	}

	best := OfferNone
	bestROI := math.Inf(-1)
	// Fixed scan order keeps ROI ties deterministic (cheapest wins).
	for _, name := range []string{OfferBasic, OfferStandard, OfferPremium} {
		breakdown := roiByOffer[name]
		if breakdown.NetBenefit > 0 && breakdown.ROIPercentage > bestROI {
			bestROI = breakdown.ROIPercentage
			best = name
		}
	}

	return ImpactReport{
		CLV:              round2(clv),
		CLVSimple:        round2(clvSimple),
		CLVDiscounted:    round2(clvDiscounted),
		RevenueAtRisk:    round2(atRisk),
		RevenueTier:      tier,
		Priority:         priority,
		ChurnProbability: churnProbability,
		MonthlyCharge:    facts.MonthlyCharge,
		TenureMonths:     facts.TenureMonths,
		TotalRevenue:     facts.TotalRevenue,
		RecommendedOffer: best,
		ROIByOffer:       roiByOffer,
	}, nil
}

func (m *Model) remainingMonths(tenureMonths int) int {
	remaining := m.cfg.LifespanMonths - tenureMonths
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (m *Model) projectedMonthly(facts BillingFacts) float64 {
	avgHistorical := facts.MonthlyCharge
	if facts.TenureMonths > 0 {
		avgHistorical = facts.TotalRevenue / float64(facts.TenureMonths)
	}
	return avgHistorical*historicalWeight + facts.MonthlyCharge*currentWeight
}

func classify(revenueAtRisk float64) (tier, priority string) {
	switch {
	case revenueAtRisk >= 1000:
		return TierHigh, PriorityCritical
	case revenueAtRisk >= 500:
		return TierMedium, PriorityHigh
	case revenueAtRisk >= 200:
		return TierStandard, PriorityMedium
	default:
		return TierLow, PriorityLow
	}
}

func validateFacts(facts BillingFacts) error {
	if err := validateAmount(facts.MonthlyCharge); err != nil {
		return err
	}
	if err := validateAmount(facts.TotalRevenue); err != nil {
		return err
	}
	if facts.TenureMonths < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeTenure, facts.TenureMonths)
	}
	return nil
}

func validateAmount(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeAmount, v)
	}
	return nil
}

func validateProbability(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidProbability, p)
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
