package classifier

import (
	"fmt"
	"math"
	"strings"
)

// Scorer turns a customer profile into a churn probability using a trained
// logistic regression artifact. Scorers are immutable and safe for
// concurrent use.
type Scorer struct {
	artifact Artifact
}

// NewScorer validates the artifact and builds a scorer. Every feature the
// artifact names must be one the encoder can produce, and standard
// deviations must be positive.
func NewScorer(artifact Artifact) (*Scorer, error) {
	if len(artifact.Features) == 0 {
		return nil, fmt.Errorf("%w: no features", ErrArtifactInvalid)
	}
	for _, f := range artifact.Features {
		if !knownFeature(f.Name) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFeature, f.Name)
		}
		if f.StdDev <= 0 {
			return nil, fmt.Errorf("%w: feature %q has std_dev %.4f", ErrArtifactInvalid, f.Name, f.StdDev)
		}
	}
	return &Scorer{artifact: artifact}, nil
}

// Version returns the artifact version string.
func (s *Scorer) Version() string {
	return s.artifact.Version
}

// Score returns the churn probability in [0, 1] for the profile.
func (s *Scorer) Score(profile CustomerProfile) float64 {
	encoded := encode(profile)

	z := s.artifact.Intercept
	for _, f := range s.artifact.Features {
		z += f.Weight * (encoded[f.Name] - f.Mean) / f.StdDev
	}
	return sigmoid(z)
}

// encode flattens a profile to the numeric feature space: raw numerics plus
// one-hot contract/payment/billing indicators.
func encode(p CustomerProfile) map[string]float64 {
	encoded := map[string]float64{
		featTenure:           float64(p.TenureMonths),
		featMonthlyCharge:    p.MonthlyCharge,
		featTotalRevenue:     p.TotalRevenue,
		featTotalRefunds:     p.TotalRefunds,
		featExtraDataCharges: p.ExtraDataCharges,
		featReferrals:        float64(p.NumberOfReferrals),
		featAge:              float64(p.Age),
	}

	switch normalize(p.Contract) {
	case "month-to-month":
		encoded[featMonthToMonth] = 1
	case "two year":
		encoded[featTwoYear] = 1
	}
	if normalize(p.PaymentMethod) == "electronic check" {
		encoded[featElectronicCheck] = 1
	}
	if normalize(p.PaperlessBilling) == "yes" {
		encoded[featPaperless] = 1
	}

	return encoded
}

func knownFeature(name string) bool {
	switch name {
	case featTenure, featMonthlyCharge, featTotalRevenue, featTotalRefunds,
		featExtraDataCharges, featReferrals, featAge, featMonthToMonth,
		featTwoYear, featElectronicCheck, featPaperless:
		return true
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
