package usecase

import (
	"context"

	"retain-api/internal/model"
	"retain-api/internal/scoring"
	"retain-api/internal/scoring/repository"
)

func (uc *usecase) Feedback(ctx context.Context, sc model.Scope, ip scoring.FeedbackInput) (scoring.DecisionOutput, error) {
	if ip.DecisionID == "" {
		return scoring.DecisionOutput{}, scoring.ErrFieldRequired
	}

	dec, err := uc.repo.Detail(ctx, sc, ip.DecisionID)
	if err != nil {
		if err == repository.ErrNotFound {
			return scoring.DecisionOutput{}, scoring.ErrDecisionNotFound
		}
		uc.l.Errorf(ctx, "internal.scoring.usecase.Feedback.Detail: %v", err)
		return scoring.DecisionOutput{}, err
	}

	if dec.ObservedOutcome != nil {
		return scoring.DecisionOutput{}, scoring.ErrAlreadyLabeled
	}

	dec.ObservedOutcome = &ip.Churned

	updated, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{Decision: dec})
	if err != nil {
		uc.l.Errorf(ctx, "internal.scoring.usecase.Feedback.Update: %v", err)
		return scoring.DecisionOutput{}, err
	}

	return scoring.DecisionOutput{Decision: updated}, nil
}
