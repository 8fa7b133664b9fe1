package model

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"

	"retain-api/internal/sqlboiler"
)

func TestDecision_ToDBDecision_timestamps(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	updated := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("loaded row keeps its timestamps through the write-back", func(t *testing.T) {
		d := Decision{
			ID:         "6f1f3a52-9a39-4f5e-8f0e-0a1b2c3d4e5f",
			CustomerID: "CUST-001",
			CreatedAt:  created,
			UpdatedAt:  updated,
		}

		row := d.ToDBDecision()
		if !row.CreatedAt.Valid || !row.CreatedAt.Time.Equal(created) {
			t.Errorf("created_at = %+v, want valid %v", row.CreatedAt, created)
		}
		if !row.UpdatedAt.Valid || !row.UpdatedAt.Time.Equal(updated) {
			t.Errorf("updated_at = %+v, want valid %v", row.UpdatedAt, updated)
		}
	})

	t.Run("fresh decision leaves timestamps null for the insert to fill", func(t *testing.T) {
		d := Decision{ID: "6f1f3a52-9a39-4f5e-8f0e-0a1b2c3d4e5f", CustomerID: "CUST-001"}

		row := d.ToDBDecision()
		if row.CreatedAt.Valid {
			t.Errorf("created_at = %+v, want null", row.CreatedAt)
		}
		if row.UpdatedAt.Valid {
			t.Errorf("updated_at = %+v, want null", row.UpdatedAt)
		}
	})
}

func TestDecision_roundTrip(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	updated := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	outcome := true

	row := &sqlboiler.Decision{
		ID:                    "6f1f3a52-9a39-4f5e-8f0e-0a1b2c3d4e5f",
		CustomerID:            "CUST-001",
		ChurnProbability:      0.75,
		ThresholdUsed:         0.3,
		Label:                 1,
		RiskLevel:             "Critical",
		Recommendation:        "URGENT: Immediate retention intervention required",
		CustomerLifetimeValue: 1026,
		RevenueAtRisk:         769.5,
		RevenueTier:           "Medium Value",
		Priority:              "P2 - High",
		RecommendedOffer:      "basic",
		ModelVersion:          "external",
		ChurnCategory:         null.StringFrom("Price"),
		ObservedOutcome:       null.BoolFrom(outcome),
		CreatedAt:             null.TimeFrom(created),
		UpdatedAt:             null.TimeFrom(updated),
	}

	got := NewDecisionFromDB(row).ToDBDecision()
	if got.ID != row.ID || got.CustomerID != row.CustomerID {
		t.Errorf("identity fields changed: %+v", got)
	}
	if got.ChurnProbability != row.ChurnProbability || got.ThresholdUsed != row.ThresholdUsed || got.Label != row.Label {
		t.Errorf("decision fields changed: %+v", got)
	}
	if got.ChurnCategory != row.ChurnCategory || got.ObservedOutcome != row.ObservedOutcome {
		t.Errorf("nullable fields changed: category %+v outcome %+v", got.ChurnCategory, got.ObservedOutcome)
	}
	if !got.CreatedAt.Valid || !got.CreatedAt.Time.Equal(created) {
		t.Errorf("created_at = %+v, want valid %v", got.CreatedAt, created)
	}
	if !got.UpdatedAt.Valid || !got.UpdatedAt.Time.Equal(updated) {
		t.Errorf("updated_at = %+v, want valid %v", got.UpdatedAt, updated)
	}
}
