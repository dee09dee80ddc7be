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

package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
	"golang.org/x/text/unicode/runenames"

	"seehuhn.de/go/bmfont"
	"seehuhn.de/go/bmfont/tools/internal/buildinfo"
	"seehuhn.de/go/bmfont/tools/internal/profile"
)

var (
	verbose    = flag.Bool("v", false, "list all glyphs")
	strict     = flag.Bool("strict", false, "enable additional consistency checks")
	debug      = flag.Bool("debug", false, "log decoder diagnostics to stderr")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "bmfont-info \u2014 show the contents of binary BMFont files\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("bmfont-info"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  bmfont-info [options] <file.fnt>...\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  file.fnt   one or more binary BMFont files\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  bmfont-info arial.fnt\n")
		fmt.Fprintf(os.Stderr, "  bmfont-info -v -strict arial.fnt\n")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer stop()

	if *debug {
		bmfont.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	width := 0
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err == nil {
			width = w
		}
	}

	opt := &bmfont.DecodeOptions{Strict: *strict}
	for i, fname := range flag.Args() {
		if i > 0 {
			fmt.Println()
		}
		f, err := bmfont.Open(fname, opt)
		if err != nil {
			return fmt.Errorf("%s: %w", fname, err)
		}
		showFont(os.Stdout, fname, f)
		if *verbose {
			showGlyphs(os.Stdout, f, width)
		}
	}
	return nil
}

func showFont(w io.Writer, fname string, f *bmfont.Font) {
	info := &f.Info
	common := &f.Common

	var flags []string
	if info.Flags.Smooth() {
		flags = append(flags, "smooth")
	}
	if info.Flags.Unicode() {
		flags = append(flags, "unicode")
	}
	if info.Flags.Italic() {
		flags = append(flags, "italic")
	}
	if info.Flags.Bold() {
		flags = append(flags, "bold")
	}
	if info.Flags.FixedHeight() {
		flags = append(flags, "fixed-height")
	}
	if common.Packed() {
		flags = append(flags, "packed")
	}

	fmt.Fprintf(w, "%s:\n", fname)
	fmt.Fprintf(w, "  name:        %s\n", info.FontName())
	fmt.Fprintf(w, "  size:        %d\n", info.FontSize)
	fmt.Fprintf(w, "  flags:       %s\n", strings.Join(flags, " "))
	if !info.Flags.Unicode() {
		fmt.Fprintf(w, "  charset:     %s\n", info.Charset)
	}
	fmt.Fprintf(w, "  stretch:     %d%%\n", info.StretchH)
	fmt.Fprintf(w, "  aa:          %d\n", info.AA)
	fmt.Fprintf(w, "  padding:     %d,%d,%d,%d\n",
		info.Padding[0], info.Padding[1], info.Padding[2], info.Padding[3])
	fmt.Fprintf(w, "  spacing:     %d,%d\n", info.Spacing[0], info.Spacing[1])
	fmt.Fprintf(w, "  outline:     %d\n", info.Outline)
	fmt.Fprintf(w, "  line height: %d (base %d)\n", common.LineHeight, common.Base)
	fmt.Fprintf(w, "  texture:     %dx%d, channels a=%s r=%s g=%s b=%s\n",
		common.ScaleW, common.ScaleH,
		common.Alpha, common.Red, common.Green, common.Blue)
	fmt.Fprintf(w, "  pages:       %d\n", len(f.Pages))
	for i, name := range f.Pages {
		fmt.Fprintf(w, "    %3d %s\n", i, name)
	}
	fmt.Fprintf(w, "  glyphs:      %d\n", len(f.Chars))
	fmt.Fprintf(w, "  kerning:     %d pairs\n", len(f.Kerning))
}

func showGlyphs(w io.Writer, f *bmfont.Font, width int) {
	fmt.Fprintln(w)
	printLine(w, width, "      id    x    y    w    h  xoff  yoff  adv pg ch  name")
	for _, c := range f.Chars {
		name := "-"
		if r, ok := f.Rune(c.ID); ok {
			name = fmt.Sprintf("%q %s", r, runenames.Name(r))
		}
		line := fmt.Sprintf("%8d %4d %4d %4d %4d %5d %5d %4d %2d %2d  %s",
			c.ID, c.X, c.Y, c.Width, c.Height,
			c.XOffset, c.YOffset, c.XAdvance, c.Page, c.Channel, name)
		printLine(w, width, line)
	}
}

// printLine writes line to w, truncated to width runes if width is positive.
func printLine(w io.Writer, width int, line string) {
	if width > 0 {
		runes := []rune(line)
		if len(runes) > width {
			line = string(runes[:width-1]) + "\u2026"
		}
	}
	fmt.Fprintln(w, line)
}
