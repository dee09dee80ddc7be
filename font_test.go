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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCharLookup(t *testing.T) {
	f, err := Decode(encodeFont(dejaVu()), nil)
	if err != nil {
		t.Fatal(err)
	}

	for _, c := range f.Chars {
		got, ok := f.Char(c.ID)
		if !ok {
			t.Errorf("char %d not found", c.ID)
			continue
		}
		if d := cmp.Diff(c, got); d != "" {
			t.Errorf("char %d: %s", c.ID, d)
		}
	}
	if _, ok := f.Char('Q'); ok {
		t.Error("found char which is not in the font")
	}
}

func TestDuplicateChars(t *testing.T) {
	f := consolas()
	f.Chars = append(f.Chars, Char{ID: 'A', XAdvance: 99})
	g, err := Decode(encodeFont(f), nil)
	if err != nil {
		t.Fatal(err)
	}

	c, ok := g.Char('A')
	if !ok || c.XAdvance != 16 {
		t.Errorf("expected the first 'A', got %v", c)
	}

	// the same result without index
	c, ok = f.Char('A')
	if !ok || c.XAdvance != 16 {
		t.Errorf("expected the first 'A', got %v", c)
	}
}

func TestReindex(t *testing.T) {
	f, err := Decode(encodeFont(consolas()), nil)
	if err != nil {
		t.Fatal(err)
	}

	f.Chars = append(f.Chars, Char{ID: 'B', XAdvance: 15})
	c, ok := f.Char('B')
	if !ok || c.XAdvance != 15 {
		t.Errorf("appended char not found: %v", c)
	}

	f.Chars[0].ID = 'C'
	f.Reindex()
	if _, ok := f.Char('A'); ok {
		t.Error("stale index entry for 'A'")
	}
	if _, ok := f.Char('C'); !ok {
		t.Error("'C' not found after Reindex")
	}
}

func TestKerningAmount(t *testing.T) {
	want := dejaVu()
	f, err := Decode(encodeFont(want), nil)
	if err != nil {
		t.Fatal(err)
	}

	for _, k := range want.Kerning {
		if a := f.KerningAmount(k.First, k.Second); a != k.Amount {
			t.Errorf("%c%c: expected %d, got %d", k.First, k.Second, k.Amount, a)
		}
	}
	if a := f.KerningAmount('V', 'V'); a != 0 {
		t.Errorf("expected 0 for pair without entry, got %d", a)
	}

	// later entries win, with and without index
	want.Kerning = append(want.Kerning, KerningPair{First: 'A', Second: 'V', Amount: -5})
	if a := want.KerningAmount('A', 'V'); a != -5 {
		t.Errorf("expected -5, got %d", a)
	}
	f, err = Decode(encodeFont(want), nil)
	if err != nil {
		t.Fatal(err)
	}
	if a := f.KerningAmount('A', 'V'); a != -5 {
		t.Errorf("expected -5, got %d", a)
	}
}

func TestClone(t *testing.T) {
	f, err := Decode(encodeFont(dejaVu()), nil)
	if err != nil {
		t.Fatal(err)
	}
	g := f.Clone()
	if d := cmp.Diff(f, g, ignoreIndex); d != "" {
		t.Fatalf("clone differs:\n%s", d)
	}

	g.Pages[1] = "other.png"
	g.Chars[0].Width = 1000
	g.Kerning[0].Amount = 7
	if d := cmp.Diff(dejaVu(), f, ignoreIndex); d != "" {
		t.Errorf("original changed:\n%s", d)
	}
	g.Reindex()
	if a := g.KerningAmount('A', 'V'); a != 7 {
		t.Errorf("expected 7 for the clone, got %d", a)
	}
	if a := f.KerningAmount('A', 'V'); a != -2 {
		t.Errorf("expected -2 for the original, got %d", a)
	}
}

func TestFlags(t *testing.T) {
	var flags InfoFlags = FlagItalic | FlagFixedHeight
	if flags.Smooth() || flags.Unicode() || !flags.Italic() || flags.Bold() || !flags.FixedHeight() {
		t.Errorf("wrong flag accessors for %08b", flags)
	}

	c := &Common{Flags: 0x01}
	if !c.Packed() {
		t.Error("packed bit not recognised")
	}
}

func TestStrings(t *testing.T) {
	cases := []struct {
		in   interface{ String() string }
		want string
	}{
		{BlockInfo, "Info"},
		{BlockKerningPairs, "KerningPairs"},
		{BlockTag(0), "tag 0"},
		{BlockTag(42), "tag 42"},
		{ChannelGlyphOutline, "glyph+outline"},
		{ChannelContent(9), "ChannelContent(9)"},
		{CharsetShiftJIS, "SHIFTJIS"},
		{Charset(3), "Charset(3)"},
		{KindMalformedBlock, "malformed block"},
		{Kind(0), "Kind(0)"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Errorf("expected %q, got %q", c.want, got)
		}
	}
}
