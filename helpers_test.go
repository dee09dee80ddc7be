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
	"bytes"
	"encoding/binary"
	"fmt"
)

// The functions in this file synthesise binary BMFont files for the tests.

func fileHeader() []byte {
	return []byte{'B', 'M', 'F', Version}
}

func block(tag BlockTag, payload []byte) []byte {
	return blockWithSize(tag, int32(len(payload)), payload)
}

func blockWithSize(tag BlockTag, size int32, payload []byte) []byte {
	buf := []byte{byte(tag)}
	buf = binary.LittleEndian.AppendUint32(buf, uint32(size))
	return append(buf, payload...)
}

func infoPayload(info *Info) []byte {
	enc := &infoEnc{
		FontSize: info.FontSize,
		Flags:    info.Flags,
		Charset:  info.Charset,
		StretchH: info.StretchH,
		AA:       info.AA,
		Padding:  info.Padding,
		Spacing:  info.Spacing,
		Outline:  info.Outline,
	}
	buf := &bytes.Buffer{}
	mustWrite(buf, enc)
	buf.WriteString(info.Name)
	buf.WriteByte(0)
	return buf.Bytes()
}

func commonPayload(common *Common) []byte {
	buf := &bytes.Buffer{}
	mustWrite(buf, common)
	return buf.Bytes()
}

func pagesPayload(pages []string) []byte {
	var buf []byte
	for _, name := range pages {
		buf = append(buf, name...)
		buf = append(buf, 0)
	}
	return buf
}

func charsPayload(chars []Char) []byte {
	buf := &bytes.Buffer{}
	mustWrite(buf, chars)
	return buf.Bytes()
}

func kerningPayload(kerning []KerningPair) []byte {
	buf := &bytes.Buffer{}
	mustWrite(buf, kerning)
	return buf.Bytes()
}

func mustWrite(buf *bytes.Buffer, data any) {
	err := binary.Write(buf, binary.LittleEndian, data)
	if err != nil {
		panic(err)
	}
}

// encodeFont returns the binary representation of f.  The KerningPairs block
// is omitted if f has no kerning pairs.
func encodeFont(f *Font) []byte {
	var buf []byte
	buf = append(buf, fileHeader()...)
	buf = append(buf, block(BlockInfo, infoPayload(&f.Info))...)
	buf = append(buf, block(BlockCommon, commonPayload(&f.Common))...)
	buf = append(buf, block(BlockPages, pagesPayload(f.Pages))...)
	buf = append(buf, block(BlockChars, charsPayload(f.Chars))...)
	if len(f.Kerning) > 0 {
		buf = append(buf, block(BlockKerningPairs, kerningPayload(f.Kerning))...)
	}
	return buf
}

// consolas returns a single-page Unicode font without kerning.
func consolas() *Font {
	return &Font{
		Info: Info{
			FontSize: 32,
			Flags:    FlagSmooth | FlagUnicode,
			Charset:  CharsetANSI,
			StretchH: 100,
			AA:       1,
			Padding:  [4]uint8{1, 2, 3, 4},
			Spacing:  [2]uint8{1, 1},
			Outline:  0,
			Name:     "Consolas",
		},
		Common: Common{
			LineHeight: 32,
			Base:       25,
			ScaleW:     256,
			ScaleH:     256,
			Pages:      1,
			Flags:      0,
			Alpha:      ChannelOutline,
			Red:        ChannelGlyph,
			Green:      ChannelGlyph,
			Blue:       ChannelGlyph,
		},
		Pages: []string{"consolas_0.png"},
		Chars: []Char{
			{ID: 'A', X: 10, Y: 20, Width: 14, Height: 19, XOffset: 1, YOffset: 6, XAdvance: 16, Page: 0, Channel: 15},
			{ID: ' ', X: 0, Y: 0, Width: 0, Height: 0, XOffset: 0, YOffset: 25, XAdvance: 16, Page: 0, Channel: 15},
			{ID: 'g', X: 30, Y: 20, Width: 13, Height: 20, XOffset: -1, YOffset: 11, XAdvance: 16, Page: 0, Channel: 15},
		},
	}
}

// dejaVu returns a five-page Unicode font with kerning.
func dejaVu() *Font {
	f := &Font{
		Info: Info{
			FontSize: -24,
			Flags:    FlagUnicode | FlagBold,
			Charset:  CharsetANSI,
			StretchH: 100,
			AA:       2,
			Spacing:  [2]uint8{2, 2},
			Outline:  1,
			Name:     "DejaVu Sans",
		},
		Common: Common{
			LineHeight: 28,
			Base:       22,
			ScaleW:     128,
			ScaleH:     128,
			Pages:      5,
			Flags:      commonFlagPacked,
			Alpha:      ChannelZero,
			Red:        ChannelGlyphOutline,
			Green:      ChannelGlyphOutline,
			Blue:       ChannelGlyphOutline,
		},
	}
	for i := range 5 {
		f.Pages = append(f.Pages, fmt.Sprintf("dejavu_%d.png", i))
	}
	for i, r := range "WAVETo.," {
		f.Chars = append(f.Chars, Char{
			ID:       uint32(r),
			X:        uint16(20 * i),
			Y:        uint16(3 * i),
			Width:    15,
			Height:   18,
			XOffset:  int16(i%3 - 1),
			YOffset:  4,
			XAdvance: 17,
			Page:     uint8(i % 5),
			Channel:  uint8(1 << (i % 4)),
		})
	}
	f.Kerning = []KerningPair{
		{First: 'A', Second: 'V', Amount: -2},
		{First: 'V', Second: 'A', Amount: -2},
		{First: 'T', Second: 'o', Amount: -3},
		{First: 'W', Second: '.', Amount: -4},
	}
	return f
}
