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
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger enabled for %v", level)
		}
	}
}

func TestLenientDiagnostics(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	f := consolas()
	common := commonPayload(&f.Common)
	var data []byte
	data = append(data, fileHeader()...)
	data = append(data, block(BlockInfo, infoPayload(&f.Info))...)
	data = append(data, blockWithSize(BlockCommon, int32(len(common)-1), common)...)
	data = append(data, block(BlockPages, pagesPayload(f.Pages))...)
	data = append(data, block(BlockChars, charsPayload(f.Chars))...)
	data = append(data, 7)

	_, err := Decode(data, nil)
	if err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"block size mismatch", "block=Common", "ignoring data after the Chars block", "tag=\"tag 7\""} {
		if !strings.Contains(out, want) {
			t.Errorf("%q missing from log output:\n%s", want, out)
		}
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}
