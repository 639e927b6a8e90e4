package revenue

import "errors"

var (
	ErrInvalidTier = errors.New("invalid traffic tier")
)
