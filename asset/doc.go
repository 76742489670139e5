// Package asset resolves emoji lookup keys to image files and loads them.
//
// Assets are PNG files named after the codepoints they depict, in the
// convention of the Apple Color Emoji export:
//
//	u1F44D.png      single image
//	u1F44D.0.png    base image of an emoji with skin tone variants
//	u1F44D.3.png    the same emoji with skin tone 3 (medium)
//	u1F3FD.png      the skin tone modifier itself
//
// A Catalog wraps a Source (a directory or any fs.FS), enumerates it once
// on first use and serves lookups from that listing for its lifetime:
//
//	cat := asset.NewCatalog(asset.Dir("./apple_color_emoji/set_160"))
//	id, ok, err := cat.Resolve("u1f44d") // "u1F44D.0.png", true, nil
//	img, err := cat.Load(id, image.Pt(38, 38))
//
// Lookups are case-insensitive. Changes to the underlying directory after
// the first lookup are not observed.
package asset
