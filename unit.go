package emojitext

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/emojitext/emoji"
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// UnitKind tells whether a unit is drawn as text or as an image.
type UnitKind uint8

const (
	// UnitText is a character without an emoji asset.
	UnitText UnitKind = iota

	// UnitGlyph is a character drawn from an emoji asset.
	UnitGlyph
)

// String returns the string representation of the unit kind.
func (k UnitKind) String() string {
	switch k {
	case UnitText:
		return "Text"
	case UnitGlyph:
		return "Glyph"
	default:
		return unknownStr
	}
}

// Glyph is a loaded emoji image.
type Glyph struct {
	// Asset is the id of the image, e.g. "u1F44D.3.png".
	Asset string

	// Image is the decoded image, already downsized.
	Image image.Image

	// Width and Height are the pixel dimensions of Image.
	Width  int
	Height int
}

// Unit is the outcome of resolving one character of a line.
type Unit struct {
	Kind UnitKind

	// Text holds the source characters of the unit. For a glyph merged with
	// a skin tone modifier it holds both.
	Text string

	// Glyph is set when Kind is UnitGlyph.
	Glyph Glyph
}

// TextUnit returns a text unit for s.
func TextUnit(s string) Unit {
	return Unit{Kind: UnitText, Text: s}
}

// GlyphUnit returns a glyph unit for the source characters s.
func GlyphUnit(s string, g Glyph) Unit {
	return Unit{Kind: UnitGlyph, Text: s, Glyph: g}
}

// Assets resolves lookup keys to emoji assets and loads them.
// *asset.Catalog implements Assets.
type Assets interface {
	// Resolve returns the asset id for a lookup key. ok is false when no
	// asset matches; err reports a failure to enumerate the assets.
	Resolve(key string) (id string, ok bool, err error)

	// Load decodes an asset downsized to fit within size.
	Load(id string, size image.Point) (image.Image, error)
}

// resolver turns characters into units.
type resolver struct {
	assets  Assets
	size    image.Point
	degrade bool
}

// resolve maps one grapheme cluster to a text or glyph unit.
func (r *resolver) resolve(cluster string) (Unit, error) {
	if emoji.IsPlain(cluster) {
		if cluster == "" {
			return Unit{}, emoji.ErrEmptyCluster
		}
		return TextUnit(cluster), nil
	}

	key, err := emoji.Key(cluster)
	if err != nil {
		return Unit{}, err
	}

	id, ok, err := r.assets.Resolve(key)
	if err != nil {
		return Unit{}, fmt.Errorf("emojitext: resolve %s: %w", key, err)
	}
	if !ok {
		return TextUnit(cluster), nil
	}

	g, err := r.load(id)
	if err != nil {
		if r.degrade {
			Logger().Warn("emojitext: asset drawn as text", "asset", id, "err", err)
			return TextUnit(cluster), nil
		}
		return Unit{}, err
	}
	return GlyphUnit(cluster, g), nil
}

// load loads an asset at the resolver's emoji size.
func (r *resolver) load(id string) (Glyph, error) {
	img, err := r.assets.Load(id, r.size)
	if err != nil {
		return Glyph{}, &AssetLoadError{Asset: id, Err: err}
	}
	if img == nil {
		return Glyph{}, &AssetLoadError{Asset: id, Err: errors.New("nil image")}
	}

	b := img.Bounds()
	return Glyph{Asset: id, Image: img, Width: b.Dx(), Height: b.Dy()}, nil
}
