// Command emojitext renders text with color emoji into a PNG image.
//
// Usage:
//
//	emojitext -assets ./emoji -output out.png "I 👍🏽 this"
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/emojitext"
	"github.com/gogpu/emojitext/asset"
	"github.com/gogpu/emojitext/fontface"
	"github.com/gogpu/emojitext/wrap"
)

func main() {
	var (
		assetDir   = flag.String("assets", "", "directory of emoji PNG images (required)")
		fontPath   = flag.String("font", "", "TrueType/OpenType font file (default Go Regular)")
		size       = flag.Float64("size", 28, "font size in pixels")
		columns    = flag.Int("columns", emojitext.DefaultColumns, "wrap width in columns")
		measure    = flag.String("measure", "runes", "column measure: runes, graphemes or cells")
		width      = flag.Int("width", 800, "image width")
		height     = flag.Int("height", 0, "image height (0 fits the text)")
		margin     = flag.Int("margin", 10, "margin around the text")
		output     = flag.String("output", "emojitext.png", "output file")
		hardBreaks = flag.Bool("hard-breaks", false, "keep line breaks in the text")
		degrade    = flag.Bool("degrade", false, "draw emoji that fail to load as text")
		cacheSize  = flag.Int("cache", 64, "number of decoded emoji images to cache")
		verbose    = flag.Bool("v", false, "log layout decisions")
	)
	flag.Parse()

	if *assetDir == "" {
		log.Fatal("-assets is required")
	}
	text := strings.Join(flag.Args(), " ")
	if text == "" {
		log.Fatal("no text given")
	}

	if *verbose {
		emojitext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	m, err := parseMeasure(*measure)
	if err != nil {
		log.Fatal(err)
	}

	face, err := loadFace(*fontPath, *size)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	catalog := asset.NewCatalog(asset.Dir(*assetDir),
		asset.WithImageCache(*cacheSize),
		asset.WithLogger(emojitext.Logger()),
	)

	r, err := emojitext.NewRenderer(catalog, face,
		emojitext.WithColumns(*columns),
		emojitext.WithWrapMeasure(m),
		emojitext.WithHardBreaks(*hardBreaks),
		emojitext.WithDegradeOnLoadError(*degrade),
		emojitext.WithNormalization(true),
	)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	lines, err := r.Layout(text)
	if err != nil {
		log.Fatalf("Failed to lay out text: %v", err)
	}

	h := *height
	if h <= 0 {
		h = 2*(*margin) + int(float64(len(lines))*r.LineHeight()+0.5)
	}

	dst := image.NewRGBA(image.Rect(0, 0, *width, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	r.Render(dst, float64(*margin), float64(*margin), lines)
	_ = face.Close()

	if err := savePNG(*output, dst); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Saved %d lines to %s (%dx%d)\n", len(lines), *output, *width, h)
}

func parseMeasure(s string) (wrap.Measure, error) {
	for _, m := range []wrap.Measure{wrap.Runes, wrap.Graphemes, wrap.Cells} {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown measure %q", s)
}

func loadFace(path string, size float64) (*fontface.Face, error) {
	data := goregular.TTF
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}
	return fontface.New(data, size, fontface.WithShaping(true))
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
