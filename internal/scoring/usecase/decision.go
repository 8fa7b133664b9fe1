package usecase

import (
	"context"

	"retain-api/internal/model"
	"retain-api/internal/scoring"
	"retain-api/internal/scoring/repository"
)

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip scoring.GetInput) (scoring.GetDecisionOutput, error) {
	opts := repository.GetOptions{
		Filter: repository.Filter{
			CustomerID: ip.Filter.CustomerID,
			RiskLevels: ip.Filter.RiskLevels,
			Labeled:    ip.Filter.Labeled,
		},
		PaginateQuery: ip.PaginateQuery,
	}

	decs, pag, err := uc.repo.Get(ctx, sc, opts)
	if err != nil {
		uc.l.Errorf(ctx, "internal.scoring.usecase.Get: %v", err)
		return scoring.GetDecisionOutput{}, err
	}

	return scoring.GetDecisionOutput{
		Decisions: decs,
		Paginator: pag,
	}, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (scoring.DecisionOutput, error) {
	dec, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return scoring.DecisionOutput{}, scoring.ErrDecisionNotFound
		}
		uc.l.Errorf(ctx, "internal.scoring.usecase.Detail: %v", err)
		return scoring.DecisionOutput{}, err
	}

	return scoring.DecisionOutput{Decision: dec}, nil
}
