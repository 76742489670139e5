// Package fontface measures and draws runs of plain text for the emoji
// layout renderer.
//
// A Face wraps a TrueType/OpenType font at one size. Glyphs are rasterized
// with golang.org/x/image/font/opentype. Without shaping, glyphs are
// placed by the face's own advances. With WithShaping, text is shaped with
// HarfBuzz via go-text/typesetting and every cluster is drawn at its shaped
// pen position. Either way Measure reports exactly the distance Draw moves
// the pen:
//
//	face, err := fontface.New(goregular.TTF, 40, fontface.WithShaping(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer face.Close()
//
//	w, h := face.Measure("Hello")
//	face.Draw(img, "Hello", 10, 10, color.Black)
//
// Coordinates passed to Draw are the top-left corner of the line box, not
// the baseline. A Face is not safe for concurrent use.
package fontface
