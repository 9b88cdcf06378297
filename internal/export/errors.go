package export

import "errors"

var (
	ErrHeaderMismatch  = errors.New("header does not match survey schema")
	ErrMalformedRow    = errors.New("malformed row")
	ErrMalformedList   = errors.New("malformed list cell")
	ErrUnknownFormat   = errors.New("unknown export format")
	ErrDuplicateTarget = errors.New("two targets share an output path")
)
