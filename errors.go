package hypersign

import "errors"

var (
	ErrSaltSize        = errors.New("salt size out of range")
	ErrSecretKey       = errors.New("invalid secret key")
	ErrOptionsRequired = errors.New("options required")
	ErrValueSize       = errors.New("value too large")
	ErrStaleSequence   = errors.New("sequence number is lower than the latest accepted")
)
