package postgres

import (
	"context"

	"retain-api/internal/scoring/repository"
	"retain-api/internal/sqlboiler"
	"retain-api/pkg/paginator"
	postgresPkg "retain-api/pkg/postgre"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

func filterMods(opts repository.Filter) []qm.QueryMod {
	var mods []qm.QueryMod

	if opts.CustomerID != "" {
		mods = append(mods, sqlboiler.DecisionWhere.CustomerID.EQ(opts.CustomerID))
	}
	if len(opts.RiskLevels) > 0 {
		mods = append(mods, sqlboiler.DecisionWhere.RiskLevel.IN(opts.RiskLevels))
	}
	if opts.Labeled != nil {
		if *opts.Labeled {
			mods = append(mods, sqlboiler.DecisionWhere.ObservedOutcome.IsNotNull())
		} else {
			mods = append(mods, sqlboiler.DecisionWhere.ObservedOutcome.IsNull())
		}
	}

	return mods
}

func (r *implRepository) buildListQuery(ctx context.Context, opts repository.ListOptions) ([]qm.QueryMod, error) {
	mods := filterMods(opts.Filter)

	if len(opts.Filter.IDs) > 0 {
		if err := postgresPkg.ValidateUUIDs(opts.Filter.IDs); err != nil {
			r.l.Errorf(ctx, "internal.scoring.repository.postgres.buildListQuery.ValidateUUIDs: %v", err)
			return nil, err
		}
		mods = append(mods, sqlboiler.DecisionWhere.ID.IN(opts.Filter.IDs))
	}

	mods = append(mods, qm.OrderBy(sqlboiler.DecisionColumns.CreatedAt+" ASC"))

	return mods, nil
}

func (r *implRepository) buildDetailQuery(ctx context.Context, id string) ([]qm.QueryMod, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.scoring.repository.postgres.buildDetailQuery.IsUUID: %v", err)
		return nil, err
	}

	return []qm.QueryMod{
		sqlboiler.DecisionWhere.ID.EQ(id),
	}, nil
}

func (r *implRepository) buildGetQuery(ctx context.Context, opts repository.GetOptions, pq paginator.PaginateQuery) ([]qm.QueryMod, error) {
	mods := filterMods(opts.Filter)

	if len(opts.Filter.IDs) > 0 {
		if err := postgresPkg.ValidateUUIDs(opts.Filter.IDs); err != nil {
			r.l.Errorf(ctx, "internal.scoring.repository.postgres.buildGetQuery.ValidateUUIDs: %v", err)
			return nil, err
		}
		mods = append(mods, sqlboiler.DecisionWhere.ID.IN(opts.Filter.IDs))
	}

	pq.Adjust()
	mods = append(mods,
		qm.Limit(int(pq.Limit)),
		qm.Offset(int(pq.Offset())),
		qm.OrderBy(sqlboiler.DecisionColumns.CreatedAt+" DESC"),
	)

	return mods, nil
}
