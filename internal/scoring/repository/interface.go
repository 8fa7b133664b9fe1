package repository

import (
	"context"
	"errors"

	"retain-api/internal/model"
	"retain-api/pkg/paginator"
)

var ErrNotFound = errors.New("record not found")

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Decision, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Decision, error)
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.Decision, paginator.Paginator, error)
	List(ctx context.Context, sc model.Scope, opts ListOptions) ([]model.Decision, error)
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) (model.Decision, error)
}
