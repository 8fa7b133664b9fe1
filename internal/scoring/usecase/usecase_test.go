package usecase

import (
	"context"
	"errors"
	"testing"

	"retain-api/internal/classifier"
	"retain-api/internal/model"
	"retain-api/internal/revenue"
	"retain-api/internal/scoring"
	"retain-api/internal/scoring/repository"
	"retain-api/internal/threshold"
	pkgLog "retain-api/pkg/log"
	"retain-api/pkg/paginator"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (noopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Info(ctx context.Context, arg ...any)                     {}
func (noopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (noopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Error(ctx context.Context, arg ...any)                    {}
func (noopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (noopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (noopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (noopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

var _ pkgLog.Logger = noopLogger{}

type mockRepository struct {
	created    []model.Decision
	detailFn   func(id string) (model.Decision, error)
	listFn     func(opts repository.ListOptions) ([]model.Decision, error)
	updateFn   func(opts repository.UpdateOptions) (model.Decision, error)
	getFn      func(opts repository.GetOptions) ([]model.Decision, paginator.Paginator, error)
	createErr  error
	listOpts   *repository.ListOptions
}

func (m *mockRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Decision, error) {
	if m.createErr != nil {
		return model.Decision{}, m.createErr
	}
	m.created = append(m.created, opts.Decision)
	return opts.Decision, nil
}

func (m *mockRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Decision, error) {
	if m.detailFn == nil {
		return model.Decision{}, repository.ErrNotFound
	}
	return m.detailFn(id)
}

func (m *mockRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Decision, paginator.Paginator, error) {
	if m.getFn == nil {
		return nil, paginator.Paginator{}, nil
	}
	return m.getFn(opts)
}

func (m *mockRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.Decision, error) {
	m.listOpts = &opts
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(opts)
}

func (m *mockRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.Decision, error) {
	if m.updateFn == nil {
		return model.Decision{}, repository.ErrNotFound
	}
	return m.updateFn(opts)
}

type mockScorer struct {
	probability float64
	version     string
}

func (m mockScorer) Score(profile classifier.CustomerProfile) float64 { return m.probability }
func (m mockScorer) Version() string                                  { return m.version }

func newUsecase(t *testing.T, repo repository.Repository, scorer scoring.Scorer) scoring.UseCase {
	t.Helper()
	optimizer, err := threshold.New(threshold.CostModel{CostFP: 10, CostFN: 200})
	if err != nil {
		t.Fatalf("threshold.New: %v", err)
	}
	return New(noopLogger{}, repo, optimizer, revenue.NewModel(revenue.DefaultConfig()), scorer, nil)
}

func floatPtr(v float64) *float64 { return &v }

func TestUsecase_Score(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1", Role: model.RoleAnalyst}

	profile := classifier.CustomerProfile{
		TenureMonths:  12,
		MonthlyCharge: 85.50,
		TotalRevenue:  1026.00,
		Contract:      "Month-to-Month",
	}

	t.Run("precomputed probability", func(t *testing.T) {
		repo := &mockRepository{}
		uc := newUsecase(t, repo, nil)

		out, err := uc.Score(ctx, sc, scoring.ScoreInput{
			CustomerID:       "cust-42",
			Profile:          profile,
			ChurnProbability: floatPtr(0.75),
			ChurnCategory:    "Competitor",
		})
		if err != nil {
			t.Fatalf("Score: %v", err)
		}

		if out.Decision.CustomerLifetimeValue != 1026.00 {
			t.Errorf("clv = %v, want 1026.00", out.Decision.CustomerLifetimeValue)
		}
		if out.Decision.RevenueAtRisk != 769.50 {
			t.Errorf("revenue at risk = %v, want 769.50", out.Decision.RevenueAtRisk)
		}
		if out.Decision.RevenueTier != revenue.TierMedium || out.Decision.Priority != revenue.PriorityHigh {
			t.Errorf("tier/priority = %s/%s", out.Decision.RevenueTier, out.Decision.Priority)
		}
		// Cheap offer, valuable customer: the cost-ratio base sits far
		// below the 1000+ CLV floor of 0.30.
		if out.DynamicThreshold != 0.300 {
			t.Errorf("dynamic threshold = %v, want 0.300", out.DynamicThreshold)
		}
		if out.Risk.Label != 1 || out.Risk.RiskLevel != threshold.RiskCritical {
			t.Errorf("risk = %+v, want label 1 Critical", out.Risk)
		}
		if out.Decision.ModelVersion != "external" {
			t.Errorf("model version = %q, want external", out.Decision.ModelVersion)
		}
		if out.Decision.ChurnCategory == nil || *out.Decision.ChurnCategory != "Competitor" {
			t.Errorf("churn category = %v, want Competitor", out.Decision.ChurnCategory)
		}
		if len(out.Playbook) == 0 {
			t.Error("expected a retention playbook for a categorized churn reason")
		}
		if len(out.Insights) == 0 {
			t.Error("expected insights for a month-to-month profile")
		}
		if len(repo.created) != 1 {
			t.Fatalf("created %d decisions, want 1", len(repo.created))
		}
		if repo.created[0].ID == "" {
			t.Error("persisted decision has no ID")
		}
	})

	t.Run("classifier probability", func(t *testing.T) {
		repo := &mockRepository{}
		uc := newUsecase(t, repo, mockScorer{probability: 0.42, version: "2026-08-01"})

		out, err := uc.Score(ctx, sc, scoring.ScoreInput{
			CustomerID: "cust-7",
			Profile:    profile,
		})
		if err != nil {
			t.Fatalf("Score: %v", err)
		}
		if out.Decision.ChurnProbability != 0.42 {
			t.Errorf("probability = %v, want 0.42", out.Decision.ChurnProbability)
		}
		if out.Decision.ModelVersion != "2026-08-01" {
			t.Errorf("model version = %q, want 2026-08-01", out.Decision.ModelVersion)
		}
		if out.Decision.ChurnCategory != nil {
			t.Errorf("churn category = %v, want nil", out.Decision.ChurnCategory)
		}
	})

	t.Run("missing customer id", func(t *testing.T) {
		uc := newUsecase(t, &mockRepository{}, nil)
		_, err := uc.Score(ctx, sc, scoring.ScoreInput{ChurnProbability: floatPtr(0.5)})
		if !errors.Is(err, scoring.ErrFieldRequired) {
			t.Errorf("error = %v, want ErrFieldRequired", err)
		}
	})

	t.Run("no probability source", func(t *testing.T) {
		uc := newUsecase(t, &mockRepository{}, nil)
		_, err := uc.Score(ctx, sc, scoring.ScoreInput{CustomerID: "c", Profile: profile})
		if !errors.Is(err, scoring.ErrNoProbability) {
			t.Errorf("error = %v, want ErrNoProbability", err)
		}
	})

	t.Run("repository failure bubbles up", func(t *testing.T) {
		boom := errors.New("insert failed")
		uc := newUsecase(t, &mockRepository{createErr: boom}, nil)
		_, err := uc.Score(ctx, sc, scoring.ScoreInput{
			CustomerID:       "c",
			Profile:          profile,
			ChurnProbability: floatPtr(0.5),
		})
		if !errors.Is(err, boom) {
			t.Errorf("error = %v, want %v", err, boom)
		}
	})
}

func TestUsecase_Feedback(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1", Role: model.RoleAnalyst}

	t.Run("labels an unlabeled decision", func(t *testing.T) {
		stored := model.Decision{ID: "11111111-1111-1111-1111-111111111111", CustomerID: "c"}
		repo := &mockRepository{
			detailFn: func(id string) (model.Decision, error) {
				return stored, nil
			},
			updateFn: func(opts repository.UpdateOptions) (model.Decision, error) {
				return opts.Decision, nil
			},
		}
		uc := newUsecase(t, repo, nil)

		out, err := uc.Feedback(ctx, sc, scoring.FeedbackInput{DecisionID: stored.ID, Churned: true})
		if err != nil {
			t.Fatalf("Feedback: %v", err)
		}
		if out.Decision.ObservedOutcome == nil || !*out.Decision.ObservedOutcome {
			t.Errorf("observed outcome = %v, want true", out.Decision.ObservedOutcome)
		}
	})

	t.Run("unknown decision", func(t *testing.T) {
		uc := newUsecase(t, &mockRepository{}, nil)
		_, err := uc.Feedback(ctx, sc, scoring.FeedbackInput{DecisionID: "missing"})
		if !errors.Is(err, scoring.ErrDecisionNotFound) {
			t.Errorf("error = %v, want ErrDecisionNotFound", err)
		}
	})

	t.Run("already labeled", func(t *testing.T) {
		churned := false
		repo := &mockRepository{
			detailFn: func(id string) (model.Decision, error) {
				return model.Decision{ID: id, ObservedOutcome: &churned}, nil
			},
		}
		uc := newUsecase(t, repo, nil)
		_, err := uc.Feedback(ctx, sc, scoring.FeedbackInput{DecisionID: "d1", Churned: true})
		if !errors.Is(err, scoring.ErrAlreadyLabeled) {
			t.Errorf("error = %v, want ErrAlreadyLabeled", err)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		uc := newUsecase(t, &mockRepository{}, nil)
		_, err := uc.Feedback(ctx, sc, scoring.FeedbackInput{})
		if !errors.Is(err, scoring.ErrFieldRequired) {
			t.Errorf("error = %v, want ErrFieldRequired", err)
		}
	})
}

func TestUsecase_Calibrate(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "admin", Role: model.RoleAdmin}

	labeled := func(p float64, churned bool) model.Decision {
		return model.Decision{ChurnProbability: p, ObservedOutcome: &churned}
	}

	t.Run("no labeled decisions", func(t *testing.T) {
		uc := newUsecase(t, &mockRepository{}, nil)
		_, err := uc.Calibrate(ctx, sc, scoring.CalibrateInput{})
		if !errors.Is(err, scoring.ErrNoLabeledDecisions) {
			t.Errorf("error = %v, want ErrNoLabeledDecisions", err)
		}
	})

	t.Run("calibrates over labeled decisions", func(t *testing.T) {
		repo := &mockRepository{
			listFn: func(opts repository.ListOptions) ([]model.Decision, error) {
				return []model.Decision{
					labeled(0.1, false),
					labeled(0.2, false),
					labeled(0.8, true),
					labeled(0.9, true),
				}, nil
			},
		}
		uc := newUsecase(t, repo, nil)

		out, err := uc.Calibrate(ctx, sc, scoring.CalibrateInput{Grid: []float64{0.3, 0.5, 0.7}})
		if err != nil {
			t.Fatalf("Calibrate: %v", err)
		}
		if out.Result.Samples != 4 {
			t.Errorf("samples = %d, want 4", out.Result.Samples)
		}
		// All three candidates separate this set perfectly; ties break
		// toward the smallest threshold.
		if out.Result.OptimalThreshold != 0.3 {
			t.Errorf("optimal threshold = %v, want 0.3", out.Result.OptimalThreshold)
		}
		if repo.listOpts == nil || repo.listOpts.Filter.Labeled == nil || !*repo.listOpts.Filter.Labeled {
			t.Error("calibration must query labeled decisions only")
		}
	})
}

func TestUsecase_Detail(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1", Role: model.RoleViewer}

	repo := &mockRepository{
		detailFn: func(id string) (model.Decision, error) {
			if id == "known" {
				return model.Decision{ID: "known"}, nil
			}
			return model.Decision{}, repository.ErrNotFound
		},
	}
	uc := newUsecase(t, repo, nil)

	if _, err := uc.Detail(ctx, sc, "missing"); !errors.Is(err, scoring.ErrDecisionNotFound) {
		t.Errorf("error = %v, want ErrDecisionNotFound", err)
	}
	out, err := uc.Detail(ctx, sc, "known")
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if out.Decision.ID != "known" {
		t.Errorf("decision id = %q", out.Decision.ID)
	}
}
