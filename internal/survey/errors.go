package survey

import "errors"

// Sentinel errors for catalog and generation failures
var (
	// Catalog errors
	ErrEmptyOptionSet      = errors.New("option set is empty")
	ErrInsufficientOptions = errors.New("option set too small for draw")
	ErrMalformedWeights    = errors.New("malformed probability vector")
	ErrUnknownAnchor       = errors.New("no probability vector for anchor value")

	// Generation errors
	ErrInvalidCount     = errors.New("record count must be positive")
	ErrIncompleteRecord = errors.New("record is incomplete")
)
