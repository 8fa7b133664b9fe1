package revenue

// Config holds the tunable parameters of the revenue impact model.
type Config struct {
	// LifespanMonths is the average expected customer lifespan.
	LifespanMonths int
	// DiscountRate is the monthly rate used by the discounted CLV variant.
	DiscountRate float64
	// RetentionSuccessRate is the fraction by which any retention offer is
	// assumed to cut churn probability. Applied uniformly to all offer
	// tiers.
	RetentionSuccessRate float64
	// OfferCosts are the three fixed retention offer tiers.
	OfferCosts OfferCosts
}

// OfferCosts holds the cost of each retention offer tier.
type OfferCosts struct {
	Basic    float64
	Standard float64
	Premium  float64
}

// DefaultConfig mirrors the business defaults: 24-month lifespan, 10%
// monthly discount rate, 50% retention success, 25/50/100 offer ladder.
func DefaultConfig() Config {
	return Config{
		LifespanMonths:       24,
		DiscountRate:         0.1,
		RetentionSuccessRate: 0.5,
		OfferCosts: OfferCosts{
			Basic:    25,
			Standard: 50,
			Premium:  100,
		},
	}
}

// BillingFacts is the caller-supplied customer billing record.
type BillingFacts struct {
	MonthlyCharge float64 `json:"monthly_charge"`
	TenureMonths  int     `json:"tenure_in_months"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// ROIBreakdown quantifies the cost/benefit of one retention offer.
type ROIBreakdown struct {
	RetentionCost             float64 `json:"retention_cost"`
	ExpectedLossWithoutAction float64 `json:"expected_loss_without_action"`
	ExpectedLossWithRetention float64 `json:"expected_loss_with_retention"`
	RevenueSaved              float64 `json:"revenue_saved"`
	NetBenefit                float64 `json:"net_benefit"`
	ROIPercentage             float64 `json:"roi_percentage"`
	Recommendation            string  `json:"recommendation"`
}

// Offer names and the sentinel used when no offer has positive net benefit.
const (
	OfferBasic    = "basic"
	OfferStandard = "standard"
	OfferPremium  = "premium"
	OfferNone     = "Monitor Only"
)

// Tier and priority labels assigned by revenue-at-risk breakpoints.
const (
	TierHigh     = "High Value"
	TierMedium   = "Medium Value"
	TierStandard = "Standard Value"
	TierLow      = "Low Value"

	PriorityCritical = "P1 - Critical"
	PriorityHigh     = "P2 - High"
	PriorityMedium   = "P3 - Medium"
	PriorityLow      = "P4 - Low"
)

// ImpactReport is the full financial picture for one customer at one churn
// probability. Recomputed fresh per call, never cached.
type ImpactReport struct {
	CLV              float64                 `json:"customer_lifetime_value"`
	CLVSimple        float64                 `json:"clv_simple"`
	CLVDiscounted    float64                 `json:"clv_discounted"`
	RevenueAtRisk    float64                 `json:"revenue_at_risk"`
	RevenueTier      string                  `json:"revenue_tier"`
	Priority         string                  `json:"priority"`
	ChurnProbability float64                 `json:"churn_probability"`
	MonthlyCharge    float64                 `json:"monthly_charge"`
	TenureMonths     int                     `json:"tenure_months"`
	TotalRevenue     float64                 `json:"total_historical_revenue"`
	RecommendedOffer string                  `json:"recommended_offer"`
	ROIByOffer       map[string]ROIBreakdown `json:"roi_analysis"`
}
