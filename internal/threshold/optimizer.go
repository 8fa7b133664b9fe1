package threshold

import (
	"fmt"
	"math"
	"sync"
)

const (
	// DefaultThreshold is the decision boundary before any calibration.
	DefaultThreshold = 0.5

	// criticalCutoff and mediumCutoff are fixed risk banding constants.
	// They are independent of the cost model on purpose: risk bands are a
	// presentation of the raw probability, not of the cost surface.
	criticalCutoff = 0.70
	mediumCutoff   = 0.30
)

// Optimizer converts churn probabilities into binary retention decisions
// under asymmetric misclassification costs, and calibrates the decision
// boundary from labeled history.
//
// Decide is pure and safe for concurrent use; the stored threshold is only
// touched by the offline Calibrate workflow.
type Optimizer struct {
	costs CostModel

	mu       sync.RWMutex
	optimal  float64
	lastGrid *CalibrationResult
}

// New creates an Optimizer with the given cost model. The stored threshold
// starts at DefaultThreshold until a calibration run replaces it.
func New(costs CostModel) (*Optimizer, error) {
	if costs.CostFP <= 0 || costs.CostFN <= 0 {
		return nil, fmt.Errorf("%w: fp=%.2f fn=%.2f", ErrInvalidCost, costs.CostFP, costs.CostFN)
	}
	return &Optimizer{
		costs:   costs,
		optimal: DefaultThreshold,
	}, nil
}

// Costs returns the configured cost model.
func (o *Optimizer) Costs() CostModel {
	return o.costs
}

// StoredThreshold returns the threshold selected by the last calibration run,
// or DefaultThreshold if none has run.
func (o *Optimizer) StoredThreshold() float64 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.optimal
}

// SetStoredThreshold overrides the stored threshold. Used when restoring a
// previously persisted calibration result at startup.
func (o *Optimizer) SetStoredThreshold(t float64) error {
	if t < 0 || t > 1 {
		return fmt.Errorf("%w: %.4f", ErrInvalidThreshold, t)
	}
	o.mu.Lock()
	o.optimal = t
	o.mu.Unlock()
	return nil
}

// LastCalibration returns the grid from the most recent Calibrate call, or
// nil if none has run.
func (o *Optimizer) LastCalibration() *CalibrationResult {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.lastGrid
}

// DefaultGrid returns the default candidate thresholds: 0.10 through 0.90 in
// steps of 0.01.
func DefaultGrid() []float64 {
	grid := make([]float64, 0, 81)
	for i := 10; i <= 90; i++ {
		grid = append(grid, float64(i)/100)
	}
	return grid
}

// Calibrate scans candidate thresholds over a labeled evaluation set and
// selects the one minimizing total business cost
// (fp*CostFP + fn*CostFN). Ties go to the smallest threshold. The selected
// threshold and the full grid are stored on the optimizer.
//
// labels must be 0/1 and aligned index-wise with probabilities. A nil grid
// means DefaultGrid.
func (o *Optimizer) Calibrate(labels []int, probabilities []float64, grid []float64) (CalibrationResult, error) {
	if len(labels) == 0 || len(probabilities) == 0 {
		return CalibrationResult{}, ErrEmptyCalibration
	}
	if len(labels) != len(probabilities) {
		return CalibrationResult{}, fmt.Errorf("%w: %d labels, %d probabilities",
			ErrLengthMismatch, len(labels), len(probabilities))
	}
	for _, p := range probabilities {
		if err := validateProbability(p); err != nil {
			return CalibrationResult{}, err
		}
	}
	if len(grid) == 0 {
		grid = DefaultGrid()
	}
	for _, t := range grid {
		if math.IsNaN(t) || t < 0 || t > 1 {
			return CalibrationResult{}, fmt.Errorf("%w: %.4f", ErrInvalidThreshold, t)
		}
	}

	rows := make([]ThresholdMetrics, 0, len(grid))
	bestIdx := 0
	for i, t := range grid {
		row := o.evaluate(labels, probabilities, t)
		rows = append(rows, row)
		if row.TotalCost < rows[bestIdx].TotalCost {
			bestIdx = i
		}
	}

	result := CalibrationResult{
		OptimalThreshold: rows[bestIdx].Threshold,
		Best:             rows[bestIdx],
		Rows:             rows,
		CostFP:           o.costs.CostFP,
		CostFN:           o.costs.CostFN,
		Samples:          len(labels),
	}

	o.mu.Lock()
	o.optimal = result.OptimalThreshold
	o.lastGrid = &result
	o.mu.Unlock()

	return result, nil
}

// evaluate computes the confusion matrix and cost for one candidate
// threshold. Predicted label is 1 iff probability >= t.
func (o *Optimizer) evaluate(labels []int, probabilities []float64, t float64) ThresholdMetrics {
	var tp, fp, fn, tn int
	for i, p := range probabilities {
		predicted := 0
		if p >= t {
			predicted = 1
		}
		switch {
		case predicted == 1 && labels[i] == 1:
			tp++
		case predicted == 1 && labels[i] == 0:
			fp++
		case predicted == 0 && labels[i] == 1:
			fn++
		default:
			tn++
		}
	}

	row := ThresholdMetrics{
		Threshold:     t,
		TruePositive:  tp,
		FalsePositive: fp,
		FalseNegative: fn,
		TrueNegative:  tn,
		TotalCost:     float64(fp)*o.costs.CostFP + float64(fn)*o.costs.CostFN,
	}
	if tp+fp > 0 {
		row.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		row.Recall = float64(tp) / float64(tp+fn)
	}
	if row.Precision+row.Recall > 0 {
		row.F1 = 2 * row.Precision * row.Recall / (row.Precision + row.Recall)
	}
	return row
}

// Decide evaluates one churn probability against an explicit threshold.
// Label is 1 iff probability >= threshold. Risk bands: >=0.70 Critical,
// >= threshold High, >=0.30 Medium, else Low.
func (o *Optimizer) Decide(probability, thresh float64) (Decision, error) {
	if err := validateProbability(probability); err != nil {
		return Decision{}, err
	}
	if thresh < 0 || thresh > 1 {
		return Decision{}, fmt.Errorf("%w: %.4f", ErrInvalidThreshold, thresh)
	}

	label := 0
	if probability >= thresh {
		label = 1
	}

	var risk RiskLevel
	switch {
	case probability >= criticalCutoff:
		risk = RiskCritical
	case probability >= thresh:
		risk = RiskHigh
	case probability >= mediumCutoff:
		risk = RiskMedium
	default:
		risk = RiskLow
	}

	return Decision{
		Label:          label,
		Probability:    probability,
		RiskLevel:      risk,
		Recommendation: recommend(label, risk),
		ThresholdUsed:  thresh,
	}, nil
}

// DecideStored evaluates against the stored threshold. Reserved for the
// offline calibration workflow; request handling passes the per-customer
// threshold to Decide explicitly.
func (o *Optimizer) DecideStored(probability float64) (Decision, error) {
	return o.Decide(probability, o.StoredThreshold())
}

func recommend(label int, risk RiskLevel) string {
	if label != 1 {
		return "Monitor customer satisfaction"
	}
	if risk == RiskCritical {
		return "URGENT: Immediate retention intervention required"
	}
	return "Proactive retention campaign recommended"
}

func validateProbability(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: %.4f", ErrInvalidProbability, p)
	}
	return nil
}
