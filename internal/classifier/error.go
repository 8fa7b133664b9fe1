package classifier

import "errors"

var (
	ErrArtifactNotFound = errors.New("model artifact not found")
	ErrArtifactInvalid  = errors.New("model artifact is invalid")
	ErrUnknownFeature   = errors.New("artifact references unknown feature")
)
