package label

import "errors"

var (
	ErrInvalidSVG    = errors.New("invalid svg content")
	ErrUnknownFormat = errors.New("unknown output format")
)
