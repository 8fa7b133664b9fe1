package classifier

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func testArtifact() Artifact {
	return Artifact{
		Version:   "v1",
		Intercept: -1.0,
		Features: []Feature{
			{Name: "tenure_in_months", Mean: 24, StdDev: 12, Weight: -0.8},
			{Name: "monthly_charge", Mean: 65, StdDev: 20, Weight: 0.5},
			{Name: "contract_month_to_month", Mean: 0.5, StdDev: 0.5, Weight: 0.9},
			{Name: "number_of_referrals", Mean: 2, StdDev: 2, Weight: -0.4},
		},
	}
}

func TestNewScorer(t *testing.T) {
	t.Run("valid artifact", func(t *testing.T) {
		s, err := NewScorer(testArtifact())
		if err != nil {
			t.Fatalf("NewScorer: %v", err)
		}
		if s.Version() != "v1" {
			t.Errorf("Version() = %q, want v1", s.Version())
		}
	})

	t.Run("empty artifact", func(t *testing.T) {
		_, err := NewScorer(Artifact{Version: "v1"})
		if !errors.Is(err, ErrArtifactInvalid) {
			t.Errorf("error = %v, want ErrArtifactInvalid", err)
		}
	})

	t.Run("unknown feature", func(t *testing.T) {
		artifact := testArtifact()
		artifact.Features = append(artifact.Features, Feature{Name: "shoe_size", StdDev: 1})
		_, err := NewScorer(artifact)
		if !errors.Is(err, ErrUnknownFeature) {
			t.Errorf("error = %v, want ErrUnknownFeature", err)
		}
	})

	t.Run("non-positive std dev", func(t *testing.T) {
		artifact := testArtifact()
		artifact.Features[0].StdDev = 0
		_, err := NewScorer(artifact)
		if !errors.Is(err, ErrArtifactInvalid) {
			t.Errorf("error = %v, want ErrArtifactInvalid", err)
		}
	})
}

func TestScorer_Score(t *testing.T) {
	s, err := NewScorer(testArtifact())
	if err != nil {
		t.Fatalf("NewScorer: %v", err)
	}

	t.Run("mean profile scores at the intercept", func(t *testing.T) {
		// Every feature at its mean zeroes the standardized terms, so
		// z = intercept = -1.
		got := s.Score(CustomerProfile{
			TenureMonths:      24,
			MonthlyCharge:     65,
			NumberOfReferrals: 2,
		})
		// contract_month_to_month encodes 0 for a non-M2M contract, which
		// is below its mean of 0.5: z = -1 + 0.9*(0-0.5)/0.5 = -1.9.
		want := 1 / (1 + math.Exp(1.9))
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("Score = %v, want %v", got, want)
		}
	})

	t.Run("risk factors raise the probability", func(t *testing.T) {
		safe := s.Score(CustomerProfile{
			TenureMonths:      48,
			MonthlyCharge:     40,
			Contract:          "Two Year",
			NumberOfReferrals: 6,
		})
		risky := s.Score(CustomerProfile{
			TenureMonths:  1,
			MonthlyCharge: 110,
			Contract:      "Month-to-Month",
		})
		if !(risky > safe) {
			t.Errorf("risky %v should exceed safe %v", risky, safe)
		}
		if safe < 0 || safe > 1 || risky < 0 || risky > 1 {
			t.Errorf("scores out of [0,1]: safe=%v risky=%v", safe, risky)
		}
	})

	t.Run("contract encoding is case-insensitive", func(t *testing.T) {
		a := s.Score(CustomerProfile{TenureMonths: 24, MonthlyCharge: 65, Contract: "month-to-month"})
		b := s.Score(CustomerProfile{TenureMonths: 24, MonthlyCharge: 65, Contract: "  Month-To-Month "})
		if a != b {
			t.Errorf("scores differ across label casing: %v vs %v", a, b)
		}
	})
}

func TestLoadArtifactFromFile(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "model.json")
		payload := `{
			"version": "2026-08-01",
			"intercept": -0.25,
			"features": [
				{"name": "tenure_in_months", "mean": 24, "std_dev": 12, "weight": -0.8}
			]
		}`
		if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
			t.Fatalf("write fixture: %v", err)
		}

		artifact, err := LoadArtifactFromFile(path)
		if err != nil {
			t.Fatalf("LoadArtifactFromFile: %v", err)
		}
		if artifact.Version != "2026-08-01" || artifact.Intercept != -0.25 {
			t.Errorf("artifact = %+v", artifact)
		}
		if len(artifact.Features) != 1 || artifact.Features[0].Name != "tenure_in_months" {
			t.Errorf("features = %+v", artifact.Features)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadArtifactFromFile(filepath.Join(t.TempDir(), "absent.json"))
		if !errors.Is(err, ErrArtifactNotFound) {
			t.Errorf("error = %v, want ErrArtifactNotFound", err)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "model.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
		_, err := LoadArtifactFromFile(path)
		if !errors.Is(err, ErrArtifactInvalid) {
			t.Errorf("error = %v, want ErrArtifactInvalid", err)
		}
	})
}
