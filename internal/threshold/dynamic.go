package threshold

import (
	"fmt"
	"math"
)

// DefaultRetentionCost is the assumed cost of a standard retention action
// when deriving a per-customer threshold.
const DefaultRetentionCost = 50

// valueFloors maps customer-value tiers to the lowest threshold the dynamic
// formula may produce. Higher-value customers get a lower floor so the
// system intervenes earlier for them, but the floor keeps the cost-ratio
// formula from driving the boundary arbitrarily low.
var valueFloors = []struct {
	minCLV float64
	floor  float64
}{
	{2000, 0.25},
	{1000, 0.30},
	{500, 0.35},
	{200, 0.40},
	{0, 0.45},
}

// dynamicCap bounds the per-customer threshold from above regardless of CLV.
const dynamicCap = 0.65

// DynamicThreshold derives a per-customer decision threshold from the
// customer's lifetime value. The base is the cost-ratio optimum
// retentionCost/(retentionCost+clv), clamped upward to the tier floor for
// the customer's value band and capped at 0.65, rounded to 3 decimals.
func DynamicThreshold(clv, retentionCost float64) (float64, error) {
	if math.IsNaN(clv) || math.IsInf(clv, 0) || clv < 0 {
		return 0, fmt.Errorf("%w: %.2f", ErrInvalidCLV, clv)
	}
	if math.IsNaN(retentionCost) || math.IsInf(retentionCost, 0) || retentionCost <= 0 {
		return 0, fmt.Errorf("%w: %.2f", ErrInvalidOfferCost, retentionCost)
	}

	t := retentionCost / (retentionCost + clv)

	for _, tier := range valueFloors {
		if clv >= tier.minCLV {
			if t < tier.floor {
				t = tier.floor
			}
			break
		}
	}
	if t > dynamicCap {
		t = dynamicCap
	}

	return math.Round(t*1000) / 1000, nil
}
