package usecase

import (
	"retain-api/internal/alert"
	"retain-api/internal/revenue"
	"retain-api/internal/scoring"
	"retain-api/internal/scoring/repository"
	"retain-api/internal/threshold"
	pkgLog "retain-api/pkg/log"
)

type usecase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	optimizer *threshold.Optimizer
	revenue   *revenue.Model
	scorer    scoring.Scorer
	alerts    alert.UseCase
}

// New wires the scoring use case. scorer may be nil, in which case every
// score request must carry a precomputed churn probability. alerts may be
// nil, in which case no alerts are dispatched.
func New(l pkgLog.Logger, repo repository.Repository, optimizer *threshold.Optimizer, rev *revenue.Model, scorer scoring.Scorer, alerts alert.UseCase) scoring.UseCase {
	return &usecase{
		l:         l,
		repo:      repo,
		optimizer: optimizer,
		revenue:   rev,
		scorer:    scorer,
		alerts:    alerts,
	}
}
