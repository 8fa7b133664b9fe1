package insight

import "strings"

// Category is the closed set of churn reason categories. The playbook
// mapping below is exhaustive over these kinds; unknown labels parse to
// CategoryOther instead of silently falling through on a typo.
type Category int

const (
	CategoryOther Category = iota
	CategoryCompetitor
	CategoryDissatisfaction
	CategoryPrice
	CategoryAttitude
)

var categoryNames = map[Category]string{
	CategoryOther:           "Other",
	CategoryCompetitor:      "Competitor",
	CategoryDissatisfaction: "Dissatisfaction",
	CategoryPrice:           "Price",
	CategoryAttitude:        "Attitude",
}

// String returns the display name of the category.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[CategoryOther]
}

// ParseCategory maps a free-form category label to its Category kind.
// Matching is case-insensitive on the canonical names; anything else is
// CategoryOther.
func ParseCategory(label string) Category {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "competitor":
		return CategoryCompetitor
	case "dissatisfaction":
		return CategoryDissatisfaction
	case "price":
		return CategoryPrice
	case "attitude":
		return CategoryAttitude
	default:
		return CategoryOther
	}
}

// Playbook returns the fixed retention playbook for a churn category, plus
// the category-specific closing actions.
func Playbook(c Category) []string {
	var actions []string
	switch c {
	case CategoryCompetitor:
		actions = []string{
			"Conduct competitive analysis",
			"Offer retention discount or loyalty program",
			"Highlight unique value propositions",
		}
	case CategoryDissatisfaction:
		actions = []string{
			"Immediate customer service outreach",
			"Address specific service quality issues",
			"Offer complementary premium services",
		}
	case CategoryPrice:
		actions = []string{
			"Review pricing for this customer segment",
			"Consider personalized discount",
			"Bundle services for better value",
		}
	case CategoryAttitude:
		actions = []string{
			"Customer service training for staff",
			"Assign dedicated account manager",
			"Apologize and offer goodwill gesture",
		}
	default:
		actions = []string{
			"Conduct exit interview to identify specific reasons",
			"Personalized retention approach",
		}
	}

	actions = append(actions,
		"Address "+strings.ToLower(c.String())+" concerns specifically",
		"Proactive follow-up within 24 hours",
	)
	return actions
}
