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

// DefaultMaxFileSize is the size limit used by Open, ReadFS and Read when
// no other limit is configured.
const DefaultMaxFileSize = 4 << 20

// MaxNameLength is the maximum length in bytes of the font name and of each
// page file name.
const MaxNameLength = 255

// DecodeOptions allows to customize how BMFont files are read.
// A nil *DecodeOptions is equivalent to the zero value with all limits
// set to their defaults.
type DecodeOptions struct {
	// Strict enables additional consistency checks:
	//   - the Info and Common blocks must have exactly the declared size,
	//   - a block following the Chars block must be a KerningPairs block,
	//   - no data may follow the last block.
	Strict bool

	// MaxFileSize is the largest input accepted by Open, ReadFS and Read.
	// If this is zero, DefaultMaxFileSize is used.
	MaxFileSize int64
}

var defaultOptions = &DecodeOptions{
	MaxFileSize: DefaultMaxFileSize,
}

// mergeOptions returns a copy of opt where all zero fields are replaced by
// the corresponding default values.
func mergeOptions(opt *DecodeOptions) *DecodeOptions {
	if opt == nil {
		return defaultOptions
	}
	res := *opt
	if res.MaxFileSize <= 0 {
		res.MaxFileSize = defaultOptions.MaxFileSize
	}
	return &res
}
