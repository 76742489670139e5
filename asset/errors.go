package asset

import "errors"

// Sentinel errors for the asset package.
var (
	// ErrNotFound is returned by Load for ids absent from the catalog.
	ErrNotFound = errors.New("asset: not found")

	// ErrNilSource is returned when a catalog has no source.
	ErrNilSource = errors.New("asset: nil source")
)
