package insight

import (
	"fmt"
	"strings"
)

// Profile carries the customer attributes the insight rules inspect.
type Profile struct {
	Contract          string
	TenureMonths      int
	MonthlyCharge     float64
	TotalRefunds      float64
	ExtraDataCharges  float64
	NumberOfReferrals int
}

const (
	shortTenureMonths  = 6
	highMonthlyCharge  = 80
	monthToMonthLabels = "month-to-month"
)

// Rules derives plain-language risk indicators from a customer profile.
// Each rule is independent; the result preserves rule order.
func Rules(p Profile) []string {
	var insights []string

	if normalizeContract(p.Contract) == monthToMonthLabels {
		insights = append(insights, "Month-to-Month contract - no commitment")
	}
	if p.TenureMonths < shortTenureMonths {
		insights = append(insights, fmt.Sprintf("Very short tenure (%d months)", p.TenureMonths))
	}
	if p.TotalRefunds > 0 {
		insights = append(insights, fmt.Sprintf("Has refunds ($%.2f) - dissatisfaction indicator", p.TotalRefunds))
	}
	if p.ExtraDataCharges > 0 {
		insights = append(insights, fmt.Sprintf("Extra data charges ($%.2f) - unexpected costs", p.ExtraDataCharges))
	}
	if p.NumberOfReferrals == 0 {
		insights = append(insights, "Zero referrals - not engaged")
	}
	if p.MonthlyCharge > highMonthlyCharge {
		insights = append(insights, fmt.Sprintf("High monthly charge ($%.2f)", p.MonthlyCharge))
	}

	return insights
}

func normalizeContract(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
