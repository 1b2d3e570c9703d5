package shapes

import "errors"

var ErrDuplicateSymbol = errors.New("duplicate icon symbol")
