package usecase

import (
	"context"
	"fmt"

	"retain-api/internal/alert"
	"retain-api/pkg/discord"
)

func (uc *implUseCase) DispatchCalibrationReport(ctx context.Context, input alert.CalibrationReportInput) error {
	fields := []discord.EmbedField{
		buildField("Optimal Threshold", fmt.Sprintf("%.3f", input.OptimalThreshold), true),
		buildField("Labeled Samples", fmt.Sprintf("%d", input.Samples), true),
		buildField("Total Cost", fmt.Sprintf("$%s", formatFloat(input.TotalCost)), true),
		buildField("Precision", formatFloat(input.Precision), true),
		buildField("Recall", formatFloat(input.Recall), true),
		buildField("F1", formatFloat(input.F1), true),
	}

	opts := discord.MessageOptions{
		Type:        discord.MessageTypeSuccess,
		Level:       discord.LevelNormal,
		Title:       "Threshold Calibration Complete",
		Description: "The decision threshold was recalibrated from labeled outcomes.",
		Fields:      fields,
		Timestamp:   input.GeneratedAt,
		Footer: &discord.EmbedFooter{
			Text: "Retain Service • Calibration",
		},
	}

	return uc.discord.SendEmbed(ctx, opts)
}
