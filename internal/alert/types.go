package alert

import "time"

// ChurnAlertInput represents a high-priority churn decision worth flagging
// to the retention team.
type ChurnAlertInput struct {
	DecisionID       string
	CustomerID       string
	Probability      float64
	ThresholdUsed    float64
	RiskLevel        string // e.g. "Critical", "High"
	Priority         string // e.g. "P1 - Critical"
	RevenueAtRisk    float64
	RecommendedOffer string
	Playbook         []string // Suggested retention actions
	GeneratedAt      time.Time
}

// CalibrationReportInput summarizes a threshold calibration run.
type CalibrationReportInput struct {
	OptimalThreshold float64
	Samples          int
	Precision        float64
	Recall           float64
	F1               float64
	TotalCost        float64
	GeneratedAt      time.Time
}
