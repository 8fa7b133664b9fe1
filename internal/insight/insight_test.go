package insight

import (
	"reflect"
	"strings"
	"testing"
)

func TestRules(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    []string
	}{
		{
			name: "quiet long-tenure customer",
			profile: Profile{
				Contract:          "Two Year",
				TenureMonths:      30,
				MonthlyCharge:     45,
				NumberOfReferrals: 3,
			},
			want: nil,
		},
		{
			name: "all rules fire",
			profile: Profile{
				Contract:         "Month-to-Month",
				TenureMonths:     2,
				MonthlyCharge:    95.50,
				TotalRefunds:     12.40,
				ExtraDataCharges: 8,
			},
			want: []string{
				"Month-to-Month contract - no commitment",
				"Very short tenure (2 months)",
				"Has refunds ($12.40) - dissatisfaction indicator",
				"Extra data charges ($8.00) - unexpected costs",
				"Zero referrals - not engaged",
				"High monthly charge ($95.50)",
			},
		},
		{
			name: "contract label normalized",
			profile: Profile{
				Contract:          "  MONTH-TO-MONTH ",
				TenureMonths:      12,
				MonthlyCharge:     30,
				NumberOfReferrals: 1,
			},
			want: []string{"Month-to-Month contract - no commitment"},
		},
		{
			name: "boundary values do not fire",
			profile: Profile{
				Contract:          "One Year",
				TenureMonths:      6,
				MonthlyCharge:     80,
				NumberOfReferrals: 1,
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rules(tt.profile)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Rules() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		label string
		want  Category
	}{
		{"Competitor", CategoryCompetitor},
		{"competitor", CategoryCompetitor},
		{" Dissatisfaction ", CategoryDissatisfaction},
		{"PRICE", CategoryPrice},
		{"attitude", CategoryAttitude},
		{"Other", CategoryOther},
		{"", CategoryOther},
		{"network outage", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := ParseCategory(tt.label); got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestPlaybook(t *testing.T) {
	t.Run("competitor", func(t *testing.T) {
		got := Playbook(CategoryCompetitor)
		want := []string{
			"Conduct competitive analysis",
			"Offer retention discount or loyalty program",
			"Highlight unique value propositions",
			"Address competitor concerns specifically",
			"Proactive follow-up within 24 hours",
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Playbook() = %v, want %v", got, want)
		}
	})

	t.Run("other fallback", func(t *testing.T) {
		got := Playbook(CategoryOther)
		if got[0] != "Conduct exit interview to identify specific reasons" {
			t.Errorf("Playbook()[0] = %q", got[0])
		}
		if got[len(got)-1] != "Proactive follow-up within 24 hours" {
			t.Errorf("missing follow-up action, got %v", got)
		}
	})

	t.Run("every category closes with its own concerns", func(t *testing.T) {
		for _, c := range []Category{
			CategoryOther, CategoryCompetitor, CategoryDissatisfaction,
			CategoryPrice, CategoryAttitude,
		} {
			got := Playbook(c)
			if len(got) < 4 {
				t.Fatalf("Playbook(%v) too short: %v", c, got)
			}
			wantClose := "Address " + strings.ToLower(c.String()) + " concerns specifically"
			if got[len(got)-2] != wantClose {
				t.Errorf("Playbook(%v) closing = %q, want %q", c, got[len(got)-2], wantClose)
			}
		}
	})
}

func TestCategoryString(t *testing.T) {
	if got := Category(99).String(); got != "Other" {
		t.Errorf("out-of-range String() = %q, want Other", got)
	}
	if got := CategoryPrice.String(); got != "Price" {
		t.Errorf("String() = %q, want Price", got)
	}
}
