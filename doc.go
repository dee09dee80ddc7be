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

// Package bmfont reads the binary variant of BMFont bitmap font descriptions,
// as written by the AngelCode Bitmap Font Generator.
//
// A binary BMFont file starts with the three bytes "BMF" and a version byte,
// followed by a sequence of blocks.  Each block consists of a one-byte tag, a
// four-byte little-endian block size and the block data.  The blocks must
// appear in the order Info, Common, Pages, Chars, optionally followed by a
// KerningPairs block.  Only version 3 of the format is supported.
//
// A file can be decoded from memory using [Decode]:
//
//	data, err := os.ReadFile("font.fnt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	f, err := bmfont.Decode(data, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(f.Info.FontName(), len(f.Chars), "glyphs")
//
// [Open], [ReadFS] and [Read] are convenience wrappers which also impose a
// limit on the file size.
//
// All errors returned by the decoder are of type [*DecodeError].  The [Kind]
// of an error can be obtained using [KindOf].
//
// The texture images named in [Font.Pages] are not loaded by this package.
package bmfont
