package usecase

import (
	"context"
	"fmt"
	"strings"

	"retain-api/internal/alert"
	"retain-api/pkg/discord"
)

func (uc *implUseCase) DispatchChurnAlert(ctx context.Context, input alert.ChurnAlertInput) error {
	fields := []discord.EmbedField{
		buildField("Customer", input.CustomerID, true),
		buildField("Risk Level", input.RiskLevel, true),
		buildField("Priority", input.Priority, true),
		buildField("Probability vs Threshold", fmt.Sprintf("**%s** / %s", formatFloat(input.Probability), formatFloat(input.ThresholdUsed)), true),
		buildField("Revenue at Risk", fmt.Sprintf("$%s", formatFloat(input.RevenueAtRisk)), true),
		buildField("Recommended Offer", input.RecommendedOffer, true),
	}

	if len(input.Playbook) > 0 {
		// Limit to 3 actions
		count := 3
		if len(input.Playbook) < 3 {
			count = len(input.Playbook)
		}
		actions := input.Playbook[:count]
		quotedActions := make([]string, len(actions))
		for i, a := range actions {
			quotedActions[i] = fmt.Sprintf("> %s", a)
		}
		fields = append(fields, buildField("Playbook", strings.Join(quotedActions, "\n"), false))
	}

	opts := discord.MessageOptions{
		Type:        mapRiskToType(input.RiskLevel),
		Level:       discord.LevelUrgent,
		Title:       fmt.Sprintf("🚨 Churn Alert: %s", input.CustomerID),
		Description: fmt.Sprintf("High churn risk detected for customer **%s** (decision %s).", input.CustomerID, input.DecisionID),
		Fields:      fields,
		Timestamp:   input.GeneratedAt,
		Footer: &discord.EmbedFooter{
			Text: "Retain Service • Churn Monitor",
		},
	}

	return uc.discord.SendEmbed(ctx, opts)
}
