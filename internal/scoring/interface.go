package scoring

import (
	"context"

	"retain-api/internal/classifier"
	"retain-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Score(ctx context.Context, sc model.Scope, ip ScoreInput) (ScoreOutput, error)
	Feedback(ctx context.Context, sc model.Scope, ip FeedbackInput) (DecisionOutput, error)
	Calibrate(ctx context.Context, sc model.Scope, ip CalibrateInput) (CalibrateOutput, error)
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetDecisionOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DecisionOutput, error)
}

// Scorer produces a churn probability from a customer profile. Satisfied by
// the trained classifier; the probability may also arrive precomputed on the
// request, in which case the scorer is bypassed.
type Scorer interface {
	Score(profile classifier.CustomerProfile) float64
	Version() string
}
