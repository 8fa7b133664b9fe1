package alert

import "context"

// UseCase defines the alert dispatching interface.
type UseCase interface {
	DispatchChurnAlert(ctx context.Context, input ChurnAlertInput) error
	DispatchCalibrationReport(ctx context.Context, input CalibrationReportInput) error
}
