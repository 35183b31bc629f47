package apperr

import "errors"

var (
	ErrExcluded      = errors.New("path excluded from corpus")
	ErrUnknownStep   = errors.New("unknown pipeline step")
	ErrInvalidPolicy = errors.New("invalid case policy")
)
