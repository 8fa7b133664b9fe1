package threshold

import (
	"errors"
	"math"
	"testing"
)

func TestOptimizer_Decide(t *testing.T) {
	opt := mustOptimizer(t, CostModel{CostFP: 10, CostFN: 200})

	tests := []struct {
		name      string
		prob      float64
		threshold float64
		wantLabel int
		wantRisk  RiskLevel
	}{
		{
			name:      "below everything is low risk",
			prob:      0.10,
			threshold: 0.50,
			wantLabel: 0,
			wantRisk:  RiskLow,
		},
		{
			name:      "medium band starts at 0.30",
			prob:      0.30,
			threshold: 0.50,
			wantLabel: 0,
			wantRisk:  RiskMedium,
		},
		{
			name:      "at threshold flips the label",
			prob:      0.50,
			threshold: 0.50,
			wantLabel: 1,
			wantRisk:  RiskHigh,
		},
		{
			name:      "critical band starts at 0.70",
			prob:      0.70,
			threshold: 0.50,
			wantLabel: 1,
			wantRisk:  RiskCritical,
		},
		{
			name:      "low threshold pulls high band down",
			prob:      0.35,
			threshold: 0.30,
			wantLabel: 1,
			wantRisk:  RiskHigh,
		},
		{
			name:      "critical even when below a high threshold",
			prob:      0.72,
			threshold: 0.80,
			wantLabel: 0,
			wantRisk:  RiskCritical,
		},
		{
			name:      "scenario from production incident review",
			prob:      0.75,
			threshold: 0.300,
			wantLabel: 1,
			wantRisk:  RiskCritical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := opt.Decide(tt.prob, tt.threshold)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.Label != tt.wantLabel {
				t.Errorf("label = %d, want %d", d.Label, tt.wantLabel)
			}
			if d.RiskLevel != tt.wantRisk {
				t.Errorf("risk = %s, want %s", d.RiskLevel, tt.wantRisk)
			}
			if d.ThresholdUsed != tt.threshold {
				t.Errorf("threshold_used = %v, want %v", d.ThresholdUsed, tt.threshold)
			}
		})
	}

	t.Run("label holds exactly at the boundary across the grid", func(t *testing.T) {
		for _, threshold := range []float64{0.1, 0.25, 0.5, 0.65, 0.9} {
			for p := 0.0; p <= 1.0; p += 0.05 {
				d, err := opt.Decide(p, threshold)
				if err != nil {
					t.Fatalf("Decide(%v, %v): %v", p, threshold, err)
				}
				want := 0
				if p >= threshold {
					want = 1
				}
				if d.Label != want {
					t.Fatalf("Decide(%v, %v).Label = %d, want %d", p, threshold, d.Label, want)
				}
			}
		}
	})

	t.Run("recommendation tracks label and risk", func(t *testing.T) {
		d, _ := opt.Decide(0.8, 0.3)
		if d.Recommendation != "URGENT: Immediate retention intervention required" {
			t.Errorf("critical recommendation = %q", d.Recommendation)
		}
		d, _ = opt.Decide(0.5, 0.3)
		if d.Recommendation != "Proactive retention campaign recommended" {
			t.Errorf("high recommendation = %q", d.Recommendation)
		}
		d, _ = opt.Decide(0.1, 0.3)
		if d.Recommendation != "Monitor customer satisfaction" {
			t.Errorf("monitor recommendation = %q", d.Recommendation)
		}
	})
}

func TestOptimizer_Decide_invalidInput(t *testing.T) {
	opt := mustOptimizer(t, CostModel{CostFP: 10, CostFN: 200})

	tests := []struct {
		name      string
		prob      float64
		threshold float64
		wantErr   error
	}{
		{"negative probability", -0.1, 0.5, ErrInvalidProbability},
		{"probability above one", 1.1, 0.5, ErrInvalidProbability},
		{"NaN probability", math.NaN(), 0.5, ErrInvalidProbability},
		{"negative threshold", 0.5, -0.01, ErrInvalidThreshold},
		{"threshold above one", 0.5, 1.01, ErrInvalidThreshold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := opt.Decide(tt.prob, tt.threshold)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestOptimizer_Calibrate(t *testing.T) {
	// Synthetic set: churners cluster high, loyal customers low, with a
	// noisy overlap band.
	labels := []int{0, 0, 0, 0, 0, 0, 1, 1, 1, 1}
	probs := []float64{0.05, 0.12, 0.22, 0.35, 0.44, 0.58, 0.41, 0.63, 0.78, 0.91}

	t.Run("expensive misses push the threshold down", func(t *testing.T) {
		opt := mustOptimizer(t, CostModel{CostFP: 10, CostFN: 200})
		res, err := opt.Calibrate(labels, probs, nil)
		if err != nil {
			t.Fatalf("Calibrate: %v", err)
		}
		if res.OptimalThreshold > 0.41 {
			t.Errorf("optimal = %v, want a recall-favoring threshold <= 0.41", res.OptimalThreshold)
		}
		if opt.StoredThreshold() != res.OptimalThreshold {
			t.Errorf("stored = %v, result = %v", opt.StoredThreshold(), res.OptimalThreshold)
		}
	})

	t.Run("expensive false alarms push the threshold up", func(t *testing.T) {
		opt := mustOptimizer(t, CostModel{CostFP: 500, CostFN: 10})
		res, err := opt.Calibrate(labels, probs, nil)
		if err != nil {
			t.Fatalf("Calibrate: %v", err)
		}
		if res.OptimalThreshold < 0.59 {
			t.Errorf("optimal = %v, want a precision-favoring threshold >= 0.59", res.OptimalThreshold)
		}
	})

	t.Run("ties resolve to the smallest threshold", func(t *testing.T) {
		opt := mustOptimizer(t, CostModel{CostFP: 10, CostFN: 10})
		// All probabilities far from the grid: every threshold in
		// [0.2, 0.8] induces the identical confusion matrix.
		res, err := opt.Calibrate([]int{0, 1}, []float64{0.1, 0.9}, []float64{0.2, 0.3, 0.4})
		if err != nil {
			t.Fatalf("Calibrate: %v", err)
		}
		if res.OptimalThreshold != 0.2 {
			t.Errorf("optimal = %v, want first candidate 0.2", res.OptimalThreshold)
		}
	})

	t.Run("perfect separation yields zero cost", func(t *testing.T) {
		opt := mustOptimizer(t, CostModel{CostFP: 10, CostFN: 200})
		res, err := opt.Calibrate([]int{0, 0, 1, 1}, []float64{0.1, 0.2, 0.8, 0.9}, nil)
		if err != nil {
			t.Fatalf("Calibrate: %v", err)
		}
		if res.Best.TotalCost != 0 {
			t.Errorf("best cost = %v, want 0", res.Best.TotalCost)
		}
		if res.Best.Precision != 1 || res.Best.Recall != 1 || res.Best.F1 != 1 {
			t.Errorf("best metrics = %+v, want perfect", res.Best)
		}
	})

	t.Run("zero denominators produce zero metrics, not NaN", func(t *testing.T) {
		opt := mustOptimizer(t, CostModel{CostFP: 10, CostFN: 200})
		// No positives at all: precision and recall denominators vanish
		// at high thresholds.
		res, err := opt.Calibrate([]int{0, 0, 0}, []float64{0.1, 0.15, 0.2}, nil)
		if err != nil {
			t.Fatalf("Calibrate: %v", err)
		}
		for _, row := range res.Rows {
			if math.IsNaN(row.Precision) || math.IsNaN(row.Recall) || math.IsNaN(row.F1) {
				t.Fatalf("NaN metrics at threshold %v: %+v", row.Threshold, row)
			}
		}
	})

	t.Run("grid defaults to 0.10..0.90 step 0.01", func(t *testing.T) {
		grid := DefaultGrid()
		if len(grid) != 81 {
			t.Fatalf("grid size = %d, want 81", len(grid))
		}
		if grid[0] != 0.10 || grid[80] != 0.90 {
			t.Errorf("grid bounds = [%v, %v], want [0.10, 0.90]", grid[0], grid[80])
		}
	})
}

func TestOptimizer_Calibrate_invalidInput(t *testing.T) {
	opt := mustOptimizer(t, CostModel{CostFP: 10, CostFN: 200})

	tests := []struct {
		name    string
		labels  []int
		probs   []float64
		wantErr error
	}{
		{"empty labels", nil, []float64{0.5}, ErrEmptyCalibration},
		{"empty probabilities", []int{1}, nil, ErrEmptyCalibration},
		{"length mismatch", []int{1, 0}, []float64{0.5}, ErrLengthMismatch},
		{"probability out of range", []int{1}, []float64{1.5}, ErrInvalidProbability},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := opt.Calibrate(tt.labels, tt.probs, nil)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestOptimizer_Calibrate_rejectsBadGrid(t *testing.T) {
	opt := mustOptimizer(t, CostModel{CostFP: 10, CostFN: 200})

	for _, grid := range [][]float64{
		{1.5, 2.0},
		{-0.1, 0.5},
		{0.5, math.NaN()},
	} {
		if _, err := opt.Calibrate([]int{0, 1}, []float64{0.2, 0.8}, grid); !errors.Is(err, ErrInvalidThreshold) {
			t.Errorf("Calibrate(grid %v) error = %v, want ErrInvalidThreshold", grid, err)
		}
	}

	if got := opt.StoredThreshold(); got != DefaultThreshold {
		t.Errorf("stored threshold = %v, want untouched default %v", got, DefaultThreshold)
	}
}

func TestNew_rejectsNonPositiveCosts(t *testing.T) {
	for _, costs := range []CostModel{
		{CostFP: 0, CostFN: 200},
		{CostFP: 10, CostFN: 0},
		{CostFP: -1, CostFN: -1},
	} {
		if _, err := New(costs); !errors.Is(err, ErrInvalidCost) {
			t.Errorf("New(%+v) error = %v, want ErrInvalidCost", costs, err)
		}
	}
}

func TestOptimizer_DecideStored(t *testing.T) {
	opt := mustOptimizer(t, CostModel{CostFP: 10, CostFN: 200})

	d, err := opt.DecideStored(0.6)
	if err != nil {
		t.Fatalf("DecideStored: %v", err)
	}
	if d.ThresholdUsed != DefaultThreshold {
		t.Errorf("threshold_used = %v, want default %v", d.ThresholdUsed, DefaultThreshold)
	}

	if err := opt.SetStoredThreshold(0.3); err != nil {
		t.Fatalf("SetStoredThreshold: %v", err)
	}
	d, _ = opt.DecideStored(0.35)
	if d.Label != 1 {
		t.Errorf("label after override = %d, want 1", d.Label)
	}

	if err := opt.SetStoredThreshold(1.5); !errors.Is(err, ErrInvalidThreshold) {
		t.Errorf("SetStoredThreshold(1.5) error = %v, want ErrInvalidThreshold", err)
	}
}

func mustOptimizer(t *testing.T, costs CostModel) *Optimizer {
	t.Helper()
	opt, err := New(costs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return opt
}
