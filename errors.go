package emojitext

import "errors"

// Sentinel errors for emojitext.
var (
	// ErrNilAssets is returned by NewRenderer when no asset resolver is given.
	ErrNilAssets = errors.New("emojitext: nil assets")

	// ErrNilFace is returned by NewRenderer when no font face is given.
	ErrNilFace = errors.New("emojitext: nil face")
)

// AssetLoadError is returned when a resolved asset cannot be loaded.
// Resolution implies the asset was listed, so this is not expected in a
// consistent asset set.
type AssetLoadError struct {
	Asset string
	Err   error
}

func (e *AssetLoadError) Error() string {
	return "emojitext: load asset " + e.Asset + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *AssetLoadError) Unwrap() error {
	return e.Err
}
