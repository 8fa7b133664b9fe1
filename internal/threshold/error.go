package threshold

import "errors"

var (
	ErrInvalidProbability = errors.New("probability must be within [0, 1]")
	ErrInvalidThreshold   = errors.New("threshold must be within [0, 1]")
	ErrInvalidCost        = errors.New("misclassification costs must be positive")
	ErrEmptyCalibration   = errors.New("calibration set is empty")
	ErrLengthMismatch     = errors.New("labels and probabilities differ in length")
	ErrInvalidCLV         = errors.New("customer lifetime value must be non-negative")
	ErrInvalidOfferCost   = errors.New("retention cost must be positive")
)
