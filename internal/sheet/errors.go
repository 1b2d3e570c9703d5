package sheet

import "errors"

var (
	ErrNoRows         = errors.New("no rows to write")
	ErrMissingHeader  = errors.New("missing header row")
	ErrMissingColumns = errors.New("missing required columns")
	ErrUnsupported    = errors.New("unsupported spreadsheet format")
)
