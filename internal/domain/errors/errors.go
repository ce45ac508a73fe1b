package errors

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidRequest   = errors.New("invalid request")
	ErrAmbiguousProduct = errors.New("ambiguous product name")
	ErrGenerationFailed = errors.New("text generation failed")
)
