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
	"cmp"
	"strconv"

	"golang.org/x/exp/slices"
)

// BlockTag identifies the type of a block in a binary BMFont file.
type BlockTag uint8

// These are the block types defined by version 3 of the format,
// in the order in which they appear in a file.
const (
	BlockInfo BlockTag = iota + 1
	BlockCommon
	BlockPages
	BlockChars
	BlockKerningPairs
)

func (t BlockTag) String() string {
	switch t {
	case BlockInfo:
		return "Info"
	case BlockCommon:
		return "Common"
	case BlockPages:
		return "Pages"
	case BlockChars:
		return "Chars"
	case BlockKerningPairs:
		return "KerningPairs"
	default:
		return "tag " + strconv.Itoa(int(t))
	}
}

// Font is the decoded contents of a binary BMFont file.
//
// A Font returned by Decode shares no memory with the input data or with any
// other Font.
type Font struct {
	Info   Info
	Common Common

	// Pages lists the texture file names, indexed by page number.
	Pages []string

	// Chars lists the glyphs in file order.
	Chars []Char

	// Kerning lists the kerning pairs in file order.
	// This is empty if the file has no KerningPairs block.
	Kerning []KerningPair

	byID []int32 // indices into Chars, sorted by character id
	kern map[charPair]int16
}

type charPair struct {
	first, second uint32
}

// Info contains the information from the Info block.
type Info struct {
	// FontSize is the font size in pixels.  A negative value indicates that
	// the size matches the character height rather than the cell height.
	FontSize int16

	Flags   InfoFlags
	Charset Charset

	// StretchH is the horizontal stretch in percent.
	StretchH uint16

	// AA is the supersampling level, 1 if no supersampling was used.
	AA uint8

	// Padding gives the padding of each glyph, in the order up, right,
	// down, left.
	Padding [4]uint8

	// Spacing gives the horizontal and vertical spacing between glyphs.
	Spacing [2]uint8

	// Outline is the outline thickness.
	Outline uint8

	// Name is the raw font name.  See FontName for a decoded version.
	Name string
}

// infoEnc is the fixed-size part of the Info block.
type infoEnc struct {
	FontSize int16
	Flags    InfoFlags
	Charset  Charset
	StretchH uint16
	AA       uint8
	Padding  [4]uint8
	Spacing  [2]uint8
	Outline  uint8
}

// InfoFlags is the bit field from the Info block.
type InfoFlags uint8

// The bits of InfoFlags.  The format counts bits from the most significant
// end.
const (
	FlagSmooth      InfoFlags = 1 << 7
	FlagUnicode     InfoFlags = 1 << 6
	FlagItalic      InfoFlags = 1 << 5
	FlagBold        InfoFlags = 1 << 4
	FlagFixedHeight InfoFlags = 1 << 3
)

// Smooth reports whether the glyphs were rendered with smoothing.
func (f InfoFlags) Smooth() bool { return f&FlagSmooth != 0 }

// Unicode reports whether character ids are Unicode code points.
func (f InfoFlags) Unicode() bool { return f&FlagUnicode != 0 }

// Italic reports whether the font is italic.
func (f InfoFlags) Italic() bool { return f&FlagItalic != 0 }

// Bold reports whether the font is bold.
func (f InfoFlags) Bold() bool { return f&FlagBold != 0 }

// FixedHeight reports whether all glyphs have the same height.
func (f InfoFlags) FixedHeight() bool { return f&FlagFixedHeight != 0 }

// Common contains the information from the Common block.
// The field order matches the binary layout.
type Common struct {
	// LineHeight is the distance in pixels between consecutive lines.
	LineHeight uint16

	// Base is the distance from the top of a line to the baseline.
	Base uint16

	// ScaleW and ScaleH give the size of the texture pages.
	ScaleW, ScaleH uint16

	// Pages is the number of texture pages.
	Pages uint16

	Flags uint8

	// These describe what is stored in each channel of the texture pages.
	Alpha, Red, Green, Blue ChannelContent
}

const commonFlagPacked = 1 << 0

// Packed reports whether monochrome glyphs are packed into the colour
// channels of the texture pages.
func (c *Common) Packed() bool {
	return c.Flags&commonFlagPacked != 0
}

// ChannelContent describes the contents of one texture channel.
type ChannelContent uint8

// These are the possible values of ChannelContent.
const (
	ChannelGlyph ChannelContent = iota
	ChannelOutline
	ChannelGlyphOutline
	ChannelZero
	ChannelOne
)

func (c ChannelContent) String() string {
	switch c {
	case ChannelGlyph:
		return "glyph"
	case ChannelOutline:
		return "outline"
	case ChannelGlyphOutline:
		return "glyph+outline"
	case ChannelZero:
		return "zero"
	case ChannelOne:
		return "one"
	default:
		return "ChannelContent(" + strconv.Itoa(int(c)) + ")"
	}
}

// Char describes one glyph.
// The field order matches the binary layout of 20 bytes per record.
type Char struct {
	ID uint32

	// X, Y, Width and Height give the glyph rectangle on its texture page.
	X, Y, Width, Height uint16

	// XOffset and YOffset give the position of the glyph rectangle,
	// relative to the pen position and the top of the line.
	XOffset, YOffset int16

	// XAdvance is the horizontal pen movement after drawing the glyph.
	XAdvance int16

	Page uint8

	// Channel is a bit mask of the texture channels holding the glyph:
	// 1 blue, 2 green, 4 red, 8 alpha, 15 all.
	Channel uint8
}

// KerningPair is a horizontal adjustment for a pair of adjacent characters.
// The field order matches the binary layout of 10 bytes per record.
type KerningPair struct {
	First, Second uint32
	Amount        int16
}

const (
	charSize        = 20
	kerningPairSize = 10
)

// Char returns the glyph with the given character id.
func (f *Font) Char(id uint32) (Char, bool) {
	if len(f.byID) != len(f.Chars) {
		for _, c := range f.Chars {
			if c.ID == id {
				return c, true
			}
		}
		return Char{}, false
	}

	k, found := slices.BinarySearchFunc(f.byID, id, func(idx int32, target uint32) int {
		return cmp.Compare(f.Chars[idx].ID, target)
	})
	if !found {
		return Char{}, false
	}
	return f.Chars[f.byID[k]], true
}

// KerningAmount returns the kerning adjustment for the given pair of
// character ids, or 0 if the pair has no entry.  If a pair occurs more than
// once, the last entry is used.
func (f *Font) KerningAmount(first, second uint32) int16 {
	if f.kern == nil {
		var res int16
		for _, k := range f.Kerning {
			if k.First == first && k.Second == second {
				res = k.Amount
			}
		}
		return res
	}
	return f.kern[charPair{first, second}]
}

// Reindex rebuilds the lookup tables used by Char and KerningAmount.
// This must be called after Chars or Kerning have been modified.
func (f *Font) Reindex() {
	f.byID = make([]int32, len(f.Chars))
	for i := range f.byID {
		f.byID[i] = int32(i)
	}
	// stable, so that the first of several glyphs with the same id is found
	slices.SortStableFunc(f.byID, func(a, b int32) int {
		return cmp.Compare(f.Chars[a].ID, f.Chars[b].ID)
	})

	f.kern = make(map[charPair]int16, len(f.Kerning))
	for _, k := range f.Kerning {
		f.kern[charPair{k.First, k.Second}] = k.Amount
	}
}

// Clone returns a deep copy of f.
func (f *Font) Clone() *Font {
	res := &Font{
		Info:    f.Info,
		Common:  f.Common,
		Pages:   slices.Clone(f.Pages),
		Chars:   slices.Clone(f.Chars),
		Kerning: slices.Clone(f.Kerning),
	}
	res.Reindex()
	return res
}
