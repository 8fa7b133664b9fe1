package postgres

import (
	"context"
	"database/sql"

	"retain-api/internal/model"
	"retain-api/internal/scoring/repository"
	"retain-api/internal/sqlboiler"
	"retain-api/pkg/paginator"
	postgresPkg "retain-api/pkg/postgre"

	"github.com/aarondl/sqlboiler/v4/boil"
)

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Decision, error) {
	if opts.Decision.ID != "" {
		if err := postgresPkg.IsUUID(opts.Decision.ID); err != nil {
			r.l.Errorf(ctx, "internal.scoring.repository.postgres.Create.IsUUID: %v", err)
			return model.Decision{}, err
		}
	}

	dbDec := opts.Decision.ToDBDecision()
	if err := dbDec.Insert(ctx, r.db, boil.Infer()); err != nil {
		r.l.Errorf(ctx, "internal.scoring.repository.postgres.Create.Insert: %v", err)
		return model.Decision{}, err
	}

	dec, err := sqlboiler.Decisions(
		sqlboiler.DecisionWhere.ID.EQ(dbDec.ID),
	).One(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.scoring.repository.postgres.Create.Reload: %v", err)
		return model.Decision{}, err
	}

	return *model.NewDecisionFromDB(dec), nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Decision, error) {
	mods, err := r.buildDetailQuery(ctx, id)
	if err != nil {
		r.l.Errorf(ctx, "internal.scoring.repository.postgres.Detail.buildDetailQuery: %v", err)
		return model.Decision{}, err
	}

	dec, err := sqlboiler.Decisions(mods...).One(ctx, r.db)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Decision{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.scoring.repository.postgres.Detail.One: %v", err)
		return model.Decision{}, err
	}

	return *model.NewDecisionFromDB(dec), nil
}

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.Decision, error) {
	mods, err := r.buildListQuery(ctx, opts)
	if err != nil {
		r.l.Errorf(ctx, "internal.scoring.repository.postgres.List.buildListQuery: %v", err)
		return nil, err
	}

	decs, err := sqlboiler.Decisions(mods...).All(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.scoring.repository.postgres.List.All: %v", err)
		return nil, err
	}

	res := make([]model.Decision, len(decs))
	for i, d := range decs {
		res[i] = *model.NewDecisionFromDB(d)
	}

	return res, nil
}

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Decision, paginator.Paginator, error) {
	mods, err := r.buildGetQuery(ctx, opts, opts.PaginateQuery)
	if err != nil {
		r.l.Errorf(ctx, "internal.scoring.repository.postgres.Get.buildGetQuery: %v", err)
		return nil, paginator.Paginator{}, err
	}

	cntMods := filterMods(opts.Filter)
	if len(opts.Filter.IDs) > 0 {
		cntMods = append(cntMods, sqlboiler.DecisionWhere.ID.IN(opts.Filter.IDs))
	}

	total, err := sqlboiler.Decisions(cntMods...).Count(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.scoring.repository.postgres.Get.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	decs, err := sqlboiler.Decisions(mods...).All(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.scoring.repository.postgres.Get.All: %v", err)
		return nil, paginator.Paginator{}, err
	}

	res := make([]model.Decision, len(decs))
	for i, d := range decs {
		res[i] = *model.NewDecisionFromDB(d)
	}

	opts.PaginateQuery.Adjust()
	pag := paginator.Paginator{
		Total:       total,
		Count:       int64(len(res)),
		PerPage:     opts.PaginateQuery.Limit,
		CurrentPage: opts.PaginateQuery.Page,
	}

	return res, pag, nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.Decision, error) {
	if err := postgresPkg.IsUUID(opts.Decision.ID); err != nil {
		r.l.Errorf(ctx, "internal.scoring.repository.postgres.Update.IsUUID: %v", err)
		return model.Decision{}, err
	}

	_, err := sqlboiler.Decisions(
		sqlboiler.DecisionWhere.ID.EQ(opts.Decision.ID),
	).One(ctx, r.db)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Decision{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.scoring.repository.postgres.Update.Find: %v", err)
		return model.Decision{}, err
	}

	dbDec := opts.Decision.ToDBDecision()
	rows, err := dbDec.Update(ctx, r.db, boil.Infer())
	if err != nil {
		r.l.Errorf(ctx, "internal.scoring.repository.postgres.Update.Update: %v", err)
		return model.Decision{}, err
	}

	if rows == 0 {
		return model.Decision{}, repository.ErrNotFound
	}

	dec, err := sqlboiler.Decisions(
		sqlboiler.DecisionWhere.ID.EQ(opts.Decision.ID),
	).One(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.scoring.repository.postgres.Update.Reload: %v", err)
		return model.Decision{}, err
	}

	return *model.NewDecisionFromDB(dec), nil
}
