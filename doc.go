// Package emojitext draws text containing emoji onto raster images, using a
// set of per-emoji PNG images for the emoji and a regular font for the rest.
//
// # Overview
//
// A string is wrapped into lines of a fixed number of columns. Each line is
// split into user-perceived characters; every character that names an emoji
// asset becomes an image glyph, everything else stays text. A skin tone
// modifier following an emoji that has tone variants selects the toned
// image instead of being drawn on its own. Consecutive text characters are
// joined into text runs, and the runs are drawn left to right.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/emojitext"
//	    "github.com/gogpu/emojitext/asset"
//	    "github.com/gogpu/emojitext/fontface"
//	)
//
//	face, err := fontface.New(ttf, 40)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	assets := asset.NewCatalog(asset.Dir("./apple_color_emoji/set_160"))
//
//	r, err := emojitext.NewRenderer(assets, face, emojitext.WithColumns(30))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y, err := r.Draw(img, "I \U0001F44D\U0001F3FD this", 20, 20)
//
// # Architecture
//
// The library is organized into:
//   - emoji: grapheme segmentation and asset lookup keys
//   - asset: asset enumeration, key resolution, decoding and downsizing
//   - wrap: column-based line wrapping
//   - fontface: text measurement and drawing
//   - emojitext: units, skin tone recombination, runs, layout and rendering
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Positions
// passed to Draw and Render are the top-left corner of the first line box.
package emojitext
