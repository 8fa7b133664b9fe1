package model

import (
	"time"

	"retain-api/internal/sqlboiler"

	"github.com/aarondl/null/v8"
)

// Decision is the domain record of one churn scoring decision. It is the
// audit trail of the service: every scored customer produces one row, and
// labeled rows (ObservedOutcome set) feed threshold calibration.
type Decision struct {
	ID                    string    `json:"id"`
	CustomerID            string    `json:"customer_id"`
	ChurnProbability      float64   `json:"churn_probability"`
	ThresholdUsed         float64   `json:"threshold_used"`
	Label                 int       `json:"label"`
	RiskLevel             string    `json:"risk_level"`
	Recommendation        string    `json:"recommendation"`
	CustomerLifetimeValue float64   `json:"customer_lifetime_value"`
	RevenueAtRisk         float64   `json:"revenue_at_risk"`
	RevenueTier           string    `json:"revenue_tier"`
	Priority              string    `json:"priority"`
	RecommendedOffer      string    `json:"recommended_offer"`
	ModelVersion          string    `json:"model_version"`
	ChurnCategory         *string   `json:"churn_category,omitempty"`
	ObservedOutcome       *bool     `json:"observed_outcome,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// NewDecisionFromDB converts a SQLBoiler Decision row to the domain model,
// unwrapping nullable columns.
func NewDecisionFromDB(dbDecision *sqlboiler.Decision) *Decision {
	decision := &Decision{
		ID:                    dbDecision.ID,
		CustomerID:            dbDecision.CustomerID,
		ChurnProbability:      dbDecision.ChurnProbability,
		ThresholdUsed:         dbDecision.ThresholdUsed,
		Label:                 dbDecision.Label,
		RiskLevel:             dbDecision.RiskLevel,
		Recommendation:        dbDecision.Recommendation,
		CustomerLifetimeValue: dbDecision.CustomerLifetimeValue,
		RevenueAtRisk:         dbDecision.RevenueAtRisk,
		RevenueTier:           dbDecision.RevenueTier,
		Priority:              dbDecision.Priority,
		RecommendedOffer:      dbDecision.RecommendedOffer,
		ModelVersion:          dbDecision.ModelVersion,
		CreatedAt:             dbDecision.CreatedAt.Time,
		UpdatedAt:             dbDecision.UpdatedAt.Time,
	}

	if dbDecision.ChurnCategory.Valid {
		decision.ChurnCategory = &dbDecision.ChurnCategory.String
	}
	if dbDecision.ObservedOutcome.Valid {
		decision.ObservedOutcome = &dbDecision.ObservedOutcome.Bool
	}

	return decision
}

// ToDBDecision converts the domain model to a SQLBoiler row for writes.
func (d *Decision) ToDBDecision() *sqlboiler.Decision {
	dbDecision := &sqlboiler.Decision{
		ID:                    d.ID,
		CustomerID:            d.CustomerID,
		ChurnProbability:      d.ChurnProbability,
		ThresholdUsed:         d.ThresholdUsed,
		Label:                 d.Label,
		RiskLevel:             d.RiskLevel,
		Recommendation:        d.Recommendation,
		CustomerLifetimeValue: d.CustomerLifetimeValue,
		RevenueAtRisk:         d.RevenueAtRisk,
		RevenueTier:           d.RevenueTier,
		Priority:              d.Priority,
		RecommendedOffer:      d.RecommendedOffer,
		ModelVersion:          d.ModelVersion,
	}

	if d.ChurnCategory != nil {
		dbDecision.ChurnCategory = null.StringFrom(*d.ChurnCategory)
	}
	if d.ObservedOutcome != nil {
		dbDecision.ObservedOutcome = null.BoolFrom(*d.ObservedOutcome)
	}
	// Timestamps of a loaded row must survive the write-back: an inferred
	// UPDATE includes created_at, and a zero value would null it out.
	if !d.CreatedAt.IsZero() {
		dbDecision.CreatedAt = null.TimeFrom(d.CreatedAt)
	}
	if !d.UpdatedAt.IsZero() {
		dbDecision.UpdatedAt = null.TimeFrom(d.UpdatedAt)
	}

	return dbDecision
}
