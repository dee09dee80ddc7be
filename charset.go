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
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// Charset is the character set of a non-Unicode font, using the Windows
// character set identifiers.
type Charset uint8

// These are the character sets used by BMFont.
const (
	CharsetANSI        Charset = 0
	CharsetDefault     Charset = 1
	CharsetSymbol      Charset = 2
	CharsetMac         Charset = 77
	CharsetShiftJIS    Charset = 128
	CharsetHangul      Charset = 129
	CharsetJohab       Charset = 130
	CharsetGB2312      Charset = 134
	CharsetChineseBig5 Charset = 136
	CharsetGreek       Charset = 161
	CharsetTurkish     Charset = 162
	CharsetVietnamese  Charset = 163
	CharsetHebrew      Charset = 177
	CharsetArabic      Charset = 178
	CharsetBaltic      Charset = 186
	CharsetRussian     Charset = 204
	CharsetThai        Charset = 222
	CharsetEastEurope  Charset = 238
	CharsetOEM         Charset = 255
)

var charsetNames = map[Charset]string{
	CharsetANSI:        "ANSI",
	CharsetDefault:     "DEFAULT",
	CharsetSymbol:      "SYMBOL",
	CharsetMac:         "MAC",
	CharsetShiftJIS:    "SHIFTJIS",
	CharsetHangul:      "HANGUL",
	CharsetJohab:       "JOHAB",
	CharsetGB2312:      "GB2312",
	CharsetChineseBig5: "CHINESEBIG5",
	CharsetGreek:       "GREEK",
	CharsetTurkish:     "TURKISH",
	CharsetVietnamese:  "VIETNAMESE",
	CharsetHebrew:      "HEBREW",
	CharsetArabic:      "ARABIC",
	CharsetBaltic:      "BALTIC",
	CharsetRussian:     "RUSSIAN",
	CharsetThai:        "THAI",
	CharsetEastEurope:  "EASTEUROPE",
	CharsetOEM:         "OEM",
}

func (c Charset) String() string {
	if name, ok := charsetNames[c]; ok {
		return name
	}
	return "Charset(" + strconv.Itoa(int(c)) + ")"
}

// Encoding returns the text encoding for the character set,
// or nil if the character set has no known byte encoding.
func (c Charset) Encoding() encoding.Encoding {
	switch c {
	case CharsetANSI:
		return charmap.Windows1252
	case CharsetMac:
		return charmap.Macintosh
	case CharsetShiftJIS:
		return japanese.ShiftJIS
	case CharsetHangul:
		return korean.EUCKR
	case CharsetGB2312:
		return simplifiedchinese.GBK
	case CharsetChineseBig5:
		return traditionalchinese.Big5
	case CharsetGreek:
		return charmap.Windows1253
	case CharsetTurkish:
		return charmap.Windows1254
	case CharsetVietnamese:
		return charmap.Windows1258
	case CharsetHebrew:
		return charmap.Windows1255
	case CharsetArabic:
		return charmap.Windows1256
	case CharsetBaltic:
		return charmap.Windows1257
	case CharsetRussian:
		return charmap.Windows1251
	case CharsetThai:
		return charmap.Windows874
	case CharsetEastEurope:
		return charmap.Windows1250
	case CharsetOEM:
		return charmap.CodePage437
	default:
		return nil
	}
}

// FontName returns the font name as a UTF-8 string.  For non-Unicode fonts
// the name is converted from the font's character set, where possible.
func (info *Info) FontName() string {
	if info.Flags.Unicode() {
		return info.Name
	}
	enc := info.Charset.Encoding()
	if enc == nil {
		return info.Name
	}
	name, err := enc.NewDecoder().String(info.Name)
	if err != nil {
		return info.Name
	}
	return name
}

// Rune returns the Unicode code point for the given character id.
// For Unicode fonts the id is the code point.  For other fonts the id is
// a single-byte code, or a double-byte code with the lead byte in bits
// 8 to 15, in the font's character set.
func (f *Font) Rune(id uint32) (rune, bool) {
	if f.Info.Flags.Unicode() {
		r := rune(id)
		return r, id <= utf8.MaxRune && utf8.ValidRune(r)
	}

	enc := f.Info.Charset.Encoding()
	if enc == nil {
		if id < utf8.RuneSelf {
			return rune(id), true
		}
		return utf8.RuneError, false
	}

	var code []byte
	switch {
	case id <= 0xFF:
		code = []byte{byte(id)}
	case id <= 0xFFFF:
		code = []byte{byte(id >> 8), byte(id)}
	default:
		return utf8.RuneError, false
	}
	out, err := enc.NewDecoder().Bytes(code)
	if err != nil {
		return utf8.RuneError, false
	}
	r, size := utf8.DecodeRune(out)
	if r == utf8.RuneError || size != len(out) {
		return utf8.RuneError, false
	}
	return r, true
}

// CharID returns the character id used by the font for r.
// This is the inverse of Rune.
func (f *Font) CharID(r rune) (uint32, bool) {
	if r < 0 || !utf8.ValidRune(r) {
		return 0, false
	}
	if f.Info.Flags.Unicode() {
		return uint32(r), true
	}

	enc := f.Info.Charset.Encoding()
	if enc == nil {
		return uint32(r), r < utf8.RuneSelf
	}

	code, err := enc.NewEncoder().Bytes(utf8.AppendRune(nil, r))
	if err != nil || len(code) == 0 || len(code) > 2 {
		return 0, false
	}
	var id uint32
	for _, b := range code {
		id = id<<8 | uint32(b)
	}
	return id, true
}
