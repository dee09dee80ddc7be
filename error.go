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
	"strconv"
)

// Kind classifies the errors returned by this package.
type Kind int

// These are the possible values of Kind.
const (
	// KindNotFound indicates that the font file does not exist.
	KindNotFound Kind = iota + 1

	// KindBadHeader indicates that the data does not start with "BMF".
	KindBadHeader

	// KindIncompatibleVersion indicates an unsupported format version.
	KindIncompatibleVersion

	// KindUnexpectedBlock indicates that a block tag does not match the
	// block required at this point.
	KindUnexpectedBlock

	// KindTruncated indicates that the data ends before a required field.
	KindTruncated

	// KindMalformedBlock indicates that a block size is inconsistent with
	// the block contents.
	KindMalformedBlock

	// KindNameTooLong indicates a string longer than MaxNameLength bytes.
	KindNameTooLong
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindBadHeader:
		return "bad header"
	case KindIncompatibleVersion:
		return "incompatible version"
	case KindUnexpectedBlock:
		return "unexpected block"
	case KindTruncated:
		return "truncated"
	case KindMalformedBlock:
		return "malformed block"
	case KindNameTooLong:
		return "name too long"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// DecodeError is returned when a BMFont file cannot be read.
type DecodeError struct {
	Kind Kind

	// Block is the block which was being decoded, or 0 for the file header.
	Block BlockTag

	// Pos is the byte offset of the offending field.
	Pos int64

	// Version is the version byte found in the file.
	// This is only set for KindIncompatibleVersion.
	Version uint8

	// Expected and Got are the required and the observed block tag.
	// These are only set for KindUnexpectedBlock.  Expected is 0 if no
	// further block was allowed.
	Expected, Got BlockTag

	// Reason optionally gives more details.
	Reason string

	// Err is the underlying error, if any.
	Err error
}

func (err *DecodeError) Error() string {
	msg := "bmfont"
	if err.Block != 0 {
		msg += " " + err.Block.String() + " block"
	}
	msg += ": " + err.Kind.String()

	switch err.Kind {
	case KindIncompatibleVersion:
		msg += " " + strconv.Itoa(int(err.Version))
	case KindUnexpectedBlock:
		if err.Expected != 0 {
			msg += " (expected " + err.Expected.String() + ", got " + err.Got.String() + ")"
		} else {
			msg += " (" + err.Got.String() + ")"
		}
	}
	if err.Reason != "" {
		msg += ": " + err.Reason
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	if err.Kind != KindNotFound {
		msg += " (at byte " + strconv.FormatInt(err.Pos, 10) + ")"
	}
	return msg
}

func (err *DecodeError) Unwrap() error {
	return err.Err
}

// Is reports whether target is a *DecodeError of the same kind.  This allows
// to write errors.Is(err, &DecodeError{Kind: KindTruncated}).
func (err *DecodeError) Is(target error) bool {
	t, ok := target.(*DecodeError)
	return ok && t.Kind == err.Kind
}

// KindOf returns the Kind of the first *DecodeError in err's chain,
// or 0 if there is none.
func KindOf(err error) Kind {
	var e *DecodeError
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// ErrFileTooLarge is returned by the file loading functions when the input
// exceeds the configured size limit.
var ErrFileTooLarge = errors.New("bmfont: file size exceeds limit")
