package scoring

import (
	"retain-api/internal/classifier"
	"retain-api/internal/model"
	"retain-api/internal/revenue"
	"retain-api/internal/threshold"
	"retain-api/pkg/paginator"
)

type ScoreInput struct {
	CustomerID string
	Profile    classifier.CustomerProfile
	// ChurnProbability, when set, skips the classifier and scores with the
	// caller-supplied probability.
	ChurnProbability *float64
	// ChurnCategory is the stated churn reason, if the customer gave one.
	ChurnCategory string
}

type ScoreOutput struct {
	Decision         model.Decision
	Risk             threshold.Decision
	Impact           revenue.ImpactReport
	DynamicThreshold float64
	Insights         []string
	Playbook         []string
}

type FeedbackInput struct {
	DecisionID string
	Churned    bool
}

type DecisionOutput struct {
	Decision model.Decision
}

type CalibrateInput struct {
	// Grid overrides the default threshold candidate grid when non-empty.
	Grid []float64
}

type CalibrateOutput struct {
	Result threshold.CalibrationResult
}

type Filter struct {
	CustomerID string
	RiskLevels []string
	// Labeled filters on whether feedback has been recorded.
	Labeled *bool
}

type GetInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type GetDecisionOutput struct {
	Decisions []model.Decision
	Paginator paginator.Paginator
}
