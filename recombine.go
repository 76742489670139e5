package emojitext

import (
	"github.com/gogpu/emojitext/asset"
)

// recombiner merges skin tone modifiers into the emoji before them.
//
// Units are added in line order. The most recently added unit is held in
// last until the next one arrives, so a modifier can still replace it.
type recombiner struct {
	res *resolver

	out     []Unit
	last    Unit
	hasLast bool
}

// add appends u, or merges it into the held unit when u is a skin tone
// modifier glyph and the held unit is a base-tone glyph.
func (c *recombiner) add(u Unit) error {
	if tone, ok := modifierTone(u); ok && c.hasLast && c.last.Kind == UnitGlyph {
		if toned, ok := asset.Toned(c.last.Glyph.Asset, tone); ok {
			g, err := c.res.load(toned)
			if err == nil {
				Logger().Debug("emojitext: skin tone merged", "base", c.last.Glyph.Asset, "toned", toned)
				c.last = GlyphUnit(c.last.Text+u.Text, g)
				return nil
			}
			if !c.res.degrade {
				return err
			}
			Logger().Warn("emojitext: toned asset unavailable", "asset", toned, "err", err)
		}
	}

	c.emit(u)
	return nil
}

// emit makes u the held unit, flushing the previous one.
func (c *recombiner) emit(u Unit) {
	if c.hasLast {
		c.out = append(c.out, c.last)
	}
	c.last = u
	c.hasLast = true
}

// units returns the recombined units and resets the recombiner.
func (c *recombiner) units() []Unit {
	if c.hasLast {
		c.out = append(c.out, c.last)
	}
	out := c.out
	c.out, c.last, c.hasLast = nil, Unit{}, false
	return out
}

// modifierTone returns the tone index of a skin tone modifier glyph.
func modifierTone(u Unit) (int, bool) {
	if u.Kind != UnitGlyph {
		return 0, false
	}
	return asset.ModifierTone(u.Glyph.Asset)
}
