package usecase

import (
	"fmt"
	"strings"

	"retain-api/pkg/discord"
)

// mapRiskToType maps a risk level to a Discord message type.
func mapRiskToType(riskLevel string) discord.MessageType {
	switch strings.ToLower(riskLevel) {
	case "critical":
		return discord.MessageTypeError
	case "high":
		return discord.MessageTypeWarning
	default:
		return discord.MessageTypeInfo
	}
}

func buildField(name string, value string, inline bool) discord.EmbedField {
	if value == "" {
		value = "N/A"
	}
	// Safety truncate for Discord field value limit (1024)
	if len(value) > 1024 {
		value = truncateText(value, 1024)
	}
	return discord.EmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	}
}

func formatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

func truncateText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max < 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
