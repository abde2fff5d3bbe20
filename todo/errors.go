package todo

import "errors"

var (
	// ErrInvalidMetadata is returned (wrapped) when the value of a recognized metadata key, such as
	// due, can not be parsed.
	ErrInvalidMetadata = errors.New("invalid metadata")

	// ErrInvalidFilter is returned (wrapped) by CompileFilters for filters that can never be
	// applied, such as an empty text filter.
	ErrInvalidFilter = errors.New("invalid filter")
)
