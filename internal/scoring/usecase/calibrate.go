package usecase

import (
	"context"
	"time"

	"retain-api/internal/alert"
	"retain-api/internal/model"
	"retain-api/internal/scoring"
	"retain-api/internal/scoring/repository"
	"retain-api/internal/threshold"
)

func (uc *usecase) Calibrate(ctx context.Context, sc model.Scope, ip scoring.CalibrateInput) (scoring.CalibrateOutput, error) {
	labeled := true
	decs, err := uc.repo.List(ctx, sc, repository.ListOptions{
		Filter: repository.Filter{Labeled: &labeled},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.scoring.usecase.Calibrate.List: %v", err)
		return scoring.CalibrateOutput{}, err
	}

	if len(decs) == 0 {
		return scoring.CalibrateOutput{}, scoring.ErrNoLabeledDecisions
	}

	labels := make([]int, len(decs))
	probabilities := make([]float64, len(decs))
	for i, d := range decs {
		if *d.ObservedOutcome {
			labels[i] = 1
		}
		probabilities[i] = d.ChurnProbability
	}

	grid := ip.Grid
	if len(grid) == 0 {
		grid = threshold.DefaultGrid()
	}

	result, err := uc.optimizer.Calibrate(labels, probabilities, grid)
	if err != nil {
		uc.l.Errorf(ctx, "internal.scoring.usecase.Calibrate.Calibrate: %v", err)
		return scoring.CalibrateOutput{}, err
	}

	uc.l.Infof(ctx, "threshold calibrated to %.3f over %d labeled decisions", result.OptimalThreshold, result.Samples)

	if uc.alerts != nil {
		go uc.dispatchCalibrationReport(result)
	}

	return scoring.CalibrateOutput{Result: result}, nil
}

// dispatchCalibrationReport posts the calibration summary to the retention
// channel. Runs detached from the request.
func (uc *usecase) dispatchCalibrationReport(result threshold.CalibrationResult) {
	ctx, cancel := context.WithTimeout(context.Background(), alertDispatchTimeout)
	defer cancel()

	err := uc.alerts.DispatchCalibrationReport(ctx, alert.CalibrationReportInput{
		OptimalThreshold: result.OptimalThreshold,
		Samples:          result.Samples,
		Precision:        result.Best.Precision,
		Recall:           result.Best.Recall,
		F1:               result.Best.F1,
		TotalCost:        result.Best.TotalCost,
		GeneratedAt:      time.Now(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "internal.scoring.usecase.dispatchCalibrationReport: %v", err)
	}
}
