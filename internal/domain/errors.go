package domain

import "errors"

var (
	ErrInvalidLocation   = errors.New("invalid location")
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrMissingField      = errors.New("missing Location or ReviewBody")
)
