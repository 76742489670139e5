package asset

import (
	"fmt"
	"image"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/gogpu/emojitext/emoji"
	"github.com/gogpu/emojitext/internal/cache"
)

// File name suffixes of the asset naming convention.
const (
	pngExt     = ".png"
	baseToneID = ".0" + pngExt
)

// Catalog resolves lookup keys against the assets of a Source.
//
// The source is listed once, on the first call that needs the listing.
// A failed listing is not remembered and is retried by the next call.
// Catalog is safe for concurrent use.
type Catalog struct {
	src    Source
	config catalogConfig

	mu     sync.Mutex
	loaded bool
	index  map[string]string // lower-case name -> name

	images *cache.Cache[glyphKey, image.Image]
}

// glyphKey identifies a decoded asset at a maximum size.
type glyphKey struct {
	name string
	size image.Point
}

// Option configures a Catalog.
type Option func(*catalogConfig)

type catalogConfig struct {
	imageCache int
	logger     *slog.Logger
}

func defaultCatalogConfig() catalogConfig {
	return catalogConfig{
		logger: newNopLogger(),
	}
}

// WithImageCache keeps up to n decoded images in memory.
// By default every Load decodes the file again.
func WithImageCache(n int) Option {
	return func(c *catalogConfig) {
		c.imageCache = n
	}
}

// WithLogger sets the logger for catalog diagnostics. Nil keeps the default
// silent logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *catalogConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCatalog creates a catalog over src. The source is not read until the
// first lookup.
func NewCatalog(src Source, opts ...Option) *Catalog {
	config := defaultCatalogConfig()
	for _, opt := range opts {
		opt(&config)
	}

	c := &Catalog{src: src, config: config}
	if config.imageCache > 0 {
		c.images = cache.New[glyphKey, image.Image](config.imageCache)
	}
	return c
}

// listing returns the name index, enumerating the source on first use.
func (c *Catalog) listing() (map[string]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.index, nil
	}
	if c.src == nil {
		return nil, ErrNilSource
	}

	names, err := c.src.List()
	if err != nil {
		return nil, err
	}

	// Sorted so that among names differing only in case the first wins.
	slices.Sort(names)
	index := make(map[string]string, len(names))
	for _, name := range names {
		lower := strings.ToLower(name)
		if _, dup := index[lower]; !dup {
			index[lower] = name
		}
	}

	c.index = index
	c.loaded = true
	c.config.logger.Debug("asset: catalog listed", "assets", len(index))
	return index, nil
}

// Len returns the number of distinct assets, listing the source if needed.
func (c *Catalog) Len() (int, error) {
	index, err := c.listing()
	if err != nil {
		return 0, err
	}
	return len(index), nil
}

// Resolve finds the asset for a lookup key.
//
// Candidates are key+".0.png" then key+".png", compared case-insensitively.
// For a multi-codepoint key without a match, the first component of the key
// is tried the same way. The error is only non-nil when the source cannot
// be listed; a key without an asset returns ok == false.
func (c *Catalog) Resolve(key string) (id string, ok bool, err error) {
	index, err := c.listing()
	if err != nil {
		return "", false, err
	}

	if id, ok := match(index, key); ok {
		return id, true, nil
	}
	if head, multi := emoji.HeadKey(key); multi {
		if id, ok := match(index, head); ok {
			return id, true, nil
		}
	}
	return "", false, nil
}

// match looks up a single key, preferring the base-tone variant.
func match(index map[string]string, key string) (string, bool) {
	lower := strings.ToLower(key)
	if id, ok := index[lower+baseToneID]; ok {
		return id, true
	}
	if id, ok := index[lower+pngExt]; ok {
		return id, true
	}
	return "", false
}

// modifierTones maps the file names of the five skin tone modifier assets
// to their tone index.
var modifierTones = func() map[string]int {
	m := make(map[string]int, 5)
	for r := emoji.ModifierLight; r <= emoji.ModifierDark; r++ {
		key, _ := emoji.Key(string(r))
		tone, _ := emoji.ToneIndex(r)
		m[key+pngExt] = tone
	}
	return m
}()

// ModifierTone reports whether id is one of the skin tone modifier assets
// (u1F3FB.png through u1F3FF.png) and returns its tone index.
func (c *Catalog) ModifierTone(id string) (int, bool) {
	return ModifierTone(id)
}

// ModifierTone is the catalog-independent form of Catalog.ModifierTone.
func ModifierTone(id string) (int, bool) {
	tone, ok := modifierTones[strings.ToLower(id)]
	return tone, ok
}

// IsBaseTone reports whether id names the base image of an emoji with skin
// tone variants (suffix ".0.png").
func IsBaseTone(id string) bool {
	return len(id) > len(baseToneID) && strings.EqualFold(id[len(id)-len(baseToneID):], baseToneID)
}

// Toned returns the id of the tone variant of a base-tone id:
// "u1F44D.0.png" with tone 3 becomes "u1F44D.3.png".
// The second result is false when id is not a base-tone id or tone is
// outside 1-5.
func Toned(id string, tone int) (string, bool) {
	if !IsBaseTone(id) || tone < 1 || tone > 5 {
		return "", false
	}
	stem := id[:len(id)-len(baseToneID)]
	ext := id[len(id)-len(pngExt):]
	return stem + "." + strconv.Itoa(tone) + ext, true
}

// Load decodes an asset and downsizes it to fit within size.
// Unknown ids return an error wrapping ErrNotFound.
func (c *Catalog) Load(id string, size image.Point) (image.Image, error) {
	index, err := c.listing()
	if err != nil {
		return nil, err
	}

	name, ok := index[strings.ToLower(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if c.images == nil {
		return c.decode(name, size)
	}
	return c.images.GetOrLoad(glyphKey{name: name, size: size}, func() (image.Image, error) {
		return c.decode(name, size)
	})
}

// decode reads and downsizes one asset file.
func (c *Catalog) decode(name string, size image.Point) (image.Image, error) {
	rc, err := c.src.Open(name)
	if err != nil {
		return nil, fmt.Errorf("asset: open %s: %w", name, err)
	}
	defer func() {
		_ = rc.Close()
	}()

	img, err := Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("asset: decode %s: %w", name, err)
	}
	return Thumbnail(img, size), nil
}
