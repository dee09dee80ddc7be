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
	"errors"
	"io"
	"io/fs"
	"os"
)

// Open reads and decodes the BMFont file fname.
func Open(fname string, opt *DecodeOptions) (*Font, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, notFound(err)
	}
	defer fd.Close()
	return readFile(fd, opt)
}

// ReadFS reads and decodes the BMFont file name from fsys.
// This can, for example, be used with an embed.FS.
func ReadFS(fsys fs.FS, name string, opt *DecodeOptions) (*Font, error) {
	fd, err := fsys.Open(name)
	if err != nil {
		return nil, notFound(err)
	}
	defer fd.Close()
	return readFile(fd, opt)
}

// Read reads a binary BMFont file from r and decodes it.
// At most opt.MaxFileSize bytes are read.
func Read(r io.Reader, opt *DecodeOptions) (*Font, error) {
	opt = mergeOptions(opt)
	data, err := io.ReadAll(io.LimitReader(r, opt.MaxFileSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > opt.MaxFileSize {
		return nil, ErrFileTooLarge
	}
	return Decode(data, opt)
}

func readFile(fd fs.File, opt *DecodeOptions) (*Font, error) {
	opt = mergeOptions(opt)
	fi, err := fd.Stat()
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return nil, &DecodeError{
			Kind:   KindNotFound,
			Reason: fi.Name() + " is a directory",
			Err:    fs.ErrNotExist,
		}
	}
	if fi.Size() > opt.MaxFileSize {
		return nil, ErrFileTooLarge
	}
	return Read(fd, opt)
}

func notFound(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return &DecodeError{Kind: KindNotFound, Err: err}
	}
	return err
}
