package threshold

// CostModel holds the asymmetric misclassification costs used by the
// optimizer. CostFP is the cost of acting on a customer who would have
// stayed, CostFN the cost of missing one who churns.
type CostModel struct {
	CostFP float64
	CostFN float64
}

// RiskLevel classifies a churn probability relative to the active threshold.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskMedium   RiskLevel = "Medium"
	RiskHigh     RiskLevel = "High"
	RiskCritical RiskLevel = "Critical"
)

// Decision is the outcome of evaluating one churn probability against a
// threshold.
type Decision struct {
	Label          int       `json:"label"` // 1 = intervene, 0 = monitor
	Probability    float64   `json:"probability"`
	RiskLevel      RiskLevel `json:"risk_level"`
	Recommendation string    `json:"recommendation"`
	ThresholdUsed  float64   `json:"threshold_used"`
}

// ThresholdMetrics is one row of the calibration grid: the confusion counts
// and derived metrics induced by a single candidate threshold.
type ThresholdMetrics struct {
	Threshold     float64 `json:"threshold"`
	TruePositive  int     `json:"tp"`
	FalsePositive int     `json:"fp"`
	FalseNegative int     `json:"fn"`
	TrueNegative  int     `json:"tn"`
	Precision     float64 `json:"precision"`
	Recall        float64 `json:"recall"`
	F1            float64 `json:"f1"`
	TotalCost     float64 `json:"total_cost"`
}

// CalibrationResult is the full grid search outcome, ordered by threshold
// ascending. Best points at the minimum-cost row.
type CalibrationResult struct {
	OptimalThreshold float64            `json:"optimal_threshold"`
	Best             ThresholdMetrics   `json:"best"`
	Rows             []ThresholdMetrics `json:"rows"`
	CostFP           float64            `json:"cost_fp"`
	CostFN           float64            `json:"cost_fn"`
	Samples          int                `json:"samples"`
}
