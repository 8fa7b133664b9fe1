package usecase

import (
	"context"
	"time"

	"retain-api/internal/alert"
	"retain-api/internal/insight"
	"retain-api/internal/model"
	"retain-api/internal/revenue"
	"retain-api/internal/scoring"
	"retain-api/internal/scoring/repository"
	"retain-api/internal/threshold"
	postgresPkg "retain-api/pkg/postgre"
)

const (
	externalModelVersion = "external"

	alertDispatchTimeout = 10 * time.Second
)

func (uc *usecase) Score(ctx context.Context, sc model.Scope, ip scoring.ScoreInput) (scoring.ScoreOutput, error) {
	if ip.CustomerID == "" {
		return scoring.ScoreOutput{}, scoring.ErrFieldRequired
	}

	probability, modelVersion, err := uc.probability(ip)
	if err != nil {
		return scoring.ScoreOutput{}, err
	}

	impact, err := uc.revenue.FullImpact(revenue.BillingFacts{
		MonthlyCharge: ip.Profile.MonthlyCharge,
		TenureMonths:  ip.Profile.TenureMonths,
		TotalRevenue:  ip.Profile.TotalRevenue,
	}, probability)
	if err != nil {
		uc.l.Errorf(ctx, "internal.scoring.usecase.Score.FullImpact: %v", err)
		return scoring.ScoreOutput{}, err
	}

	dynThreshold, err := threshold.DynamicThreshold(impact.CLV, uc.retentionCost(impact))
	if err != nil {
		uc.l.Errorf(ctx, "internal.scoring.usecase.Score.DynamicThreshold: %v", err)
		return scoring.ScoreOutput{}, err
	}

	risk, err := uc.optimizer.Decide(probability, dynThreshold)
	if err != nil {
		uc.l.Errorf(ctx, "internal.scoring.usecase.Score.Decide: %v", err)
		return scoring.ScoreOutput{}, err
	}

	insights := insight.Rules(insight.Profile{
		Contract:          ip.Profile.Contract,
		TenureMonths:      ip.Profile.TenureMonths,
		MonthlyCharge:     ip.Profile.MonthlyCharge,
		TotalRefunds:      ip.Profile.TotalRefunds,
		ExtraDataCharges:  ip.Profile.ExtraDataCharges,
		NumberOfReferrals: ip.Profile.NumberOfReferrals,
	})

	var playbook []string
	if ip.ChurnCategory != "" {
		playbook = insight.Playbook(insight.ParseCategory(ip.ChurnCategory))
	}

	dec := model.Decision{
		ID:                    postgresPkg.NewUUID(),
		CustomerID:            ip.CustomerID,
		ChurnProbability:      probability,
		ThresholdUsed:         risk.ThresholdUsed,
		Label:                 risk.Label,
		RiskLevel:             string(risk.RiskLevel),
		Recommendation:        risk.Recommendation,
		CustomerLifetimeValue: impact.CLV,
		RevenueAtRisk:         impact.RevenueAtRisk,
		RevenueTier:           impact.RevenueTier,
		Priority:              impact.Priority,
		RecommendedOffer:      impact.RecommendedOffer,
		ModelVersion:          modelVersion,
	}
	if ip.ChurnCategory != "" {
		category := insight.ParseCategory(ip.ChurnCategory).String()
		dec.ChurnCategory = &category
	}

	created, err := uc.repo.Create(ctx, sc, repository.CreateOptions{Decision: dec})
	if err != nil {
		uc.l.Errorf(ctx, "internal.scoring.usecase.Score.Create: %v", err)
		return scoring.ScoreOutput{}, err
	}

	if uc.alerts != nil && (risk.RiskLevel == threshold.RiskCritical || impact.Priority == revenue.PriorityCritical) {
		go uc.dispatchChurnAlert(created, playbook)
	}

	return scoring.ScoreOutput{
		Decision:         created,
		Risk:             risk,
		Impact:           impact,
		DynamicThreshold: dynThreshold,
		Insights:         insights,
		Playbook:         playbook,
	}, nil
}

func (uc *usecase) probability(ip scoring.ScoreInput) (float64, string, error) {
	if ip.ChurnProbability != nil {
		return *ip.ChurnProbability, externalModelVersion, nil
	}
	if uc.scorer == nil {
		return 0, "", scoring.ErrNoProbability
	}
	return uc.scorer.Score(ip.Profile), uc.scorer.Version(), nil
}

// retentionCost picks the cost driving the per-customer threshold: the
// recommended offer when one pays off, the default retention action
// otherwise.
func (uc *usecase) retentionCost(impact revenue.ImpactReport) float64 {
	if breakdown, ok := impact.ROIByOffer[impact.RecommendedOffer]; ok && breakdown.RetentionCost > 0 {
		return breakdown.RetentionCost
	}
	return threshold.DefaultRetentionCost
}

// dispatchChurnAlert notifies the retention channel about a critical
// decision. Runs detached from the request.
func (uc *usecase) dispatchChurnAlert(dec model.Decision, playbook []string) {
	ctx, cancel := context.WithTimeout(context.Background(), alertDispatchTimeout)
	defer cancel()

	err := uc.alerts.DispatchChurnAlert(ctx, alert.ChurnAlertInput{
		DecisionID:       dec.ID,
		CustomerID:       dec.CustomerID,
		Probability:      dec.ChurnProbability,
		ThresholdUsed:    dec.ThresholdUsed,
		RiskLevel:        dec.RiskLevel,
		Priority:         dec.Priority,
		RevenueAtRisk:    dec.RevenueAtRisk,
		RecommendedOffer: dec.RecommendedOffer,
		Playbook:         playbook,
		GeneratedAt:      time.Now(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "internal.scoring.usecase.dispatchChurnAlert: %v", err)
	}
}
