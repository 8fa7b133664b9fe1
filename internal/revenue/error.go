package revenue

import "errors"

var (
	ErrInvalidProbability = errors.New("churn probability must be within [0, 1]")
	ErrNegativeAmount     = errors.New("monetary values must be finite and non-negative")
	ErrNegativeTenure     = errors.New("tenure must be non-negative")
)
