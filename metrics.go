// seehuhn.de/go/bmfont - a library for reading BMFont bitmap font descriptions
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package bmfont

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Metrics returns the line metrics of the font.
// Descent is the part of the line height below the baseline.
func (f *Font) Metrics() font.Metrics {
	lineHeight := int(f.Common.LineHeight)
	base := int(f.Common.Base)
	return font.Metrics{
		Height:  fixed.I(lineHeight),
		Ascent:  fixed.I(base),
		Descent: fixed.I(lineHeight - base),
	}
}

// GlyphAdvance returns the advance width of the glyph for r.
func (f *Font) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	c, ok := f.charForRune(r)
	if !ok {
		return 0, false
	}
	return fixed.I(int(c.XAdvance)), true
}

// GlyphBounds returns the bounding box of the glyph for r, relative to the
// pen position on the baseline, and the advance width.  The y-axis
// points down.
func (f *Font) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	c, ok := f.charForRune(r)
	if !ok {
		return fixed.Rectangle26_6{}, 0, false
	}
	x0 := int(c.XOffset)
	y0 := int(c.YOffset) - int(f.Common.Base)
	bounds = fixed.Rectangle26_6{
		Min: fixed.P(x0, y0),
		Max: fixed.P(x0+int(c.Width), y0+int(c.Height)),
	}
	return bounds, fixed.I(int(c.XAdvance)), true
}

// Kern returns the horizontal adjustment for the rune pair (r0, r1).
// A negative value moves the glyphs closer together.
func (f *Font) Kern(r0, r1 rune) fixed.Int26_6 {
	id0, ok := f.CharID(r0)
	if !ok {
		return 0
	}
	id1, ok := f.CharID(r1)
	if !ok {
		return 0
	}
	return fixed.I(int(f.KerningAmount(id0, id1)))
}

func (f *Font) charForRune(r rune) (Char, bool) {
	id, ok := f.CharID(r)
	if !ok {
		return Char{}, false
	}
	return f.Char(id)
}
