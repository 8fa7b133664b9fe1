package scoring

import "errors"

var (
	ErrDecisionNotFound   = errors.New("decision not found")
	ErrAlreadyLabeled     = errors.New("decision already has an observed outcome")
	ErrNoProbability      = errors.New("no churn probability available")
	ErrNoLabeledDecisions = errors.New("no labeled decisions to calibrate on")
	ErrFieldRequired      = errors.New("field required")
)
