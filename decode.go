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
	"fmt"

	"seehuhn.de/go/bmfont/parser"
)

// Version is the only version of the binary format supported by this
// package.
const Version = 3

var signature = [3]byte{'B', 'M', 'F'}

// Decode decodes a binary BMFont file held in memory.
//
// On success, the returned Font is fully populated and does not share memory
// with data.  On failure, the returned error is a *DecodeError and no Font is
// returned.
func Decode(data []byte, opt *DecodeOptions) (*Font, error) {
	d := &decoder{
		p:   parser.New(data),
		opt: mergeOptions(opt),
	}

	err := d.readHeader()
	if err != nil {
		return nil, err
	}
	info, err := d.readInfo()
	if err != nil {
		return nil, err
	}
	common, err := d.readCommon()
	if err != nil {
		return nil, err
	}
	pages, err := d.readPages(int(common.Pages))
	if err != nil {
		return nil, err
	}
	chars, err := d.readChars()
	if err != nil {
		return nil, err
	}
	kerning, err := d.readKerningPairs()
	if err != nil {
		return nil, err
	}
	err = d.checkEnd()
	if err != nil {
		return nil, err
	}

	res := &Font{
		Info:    *info,
		Common:  *common,
		Pages:   pages,
		Chars:   chars,
		Kerning: kerning,
	}
	res.Reindex()
	return res, nil
}

// decoder holds the state of a single call to Decode.
type decoder struct {
	p     *parser.Parser
	opt   *DecodeOptions
	block BlockTag
}

func (d *decoder) readHeader() error {
	buf, err := d.p.ReadBytes(len(signature))
	if err != nil {
		return d.fail(KindBadHeader, "missing signature")
	}
	if [3]byte(buf) != signature {
		return d.fail(KindBadHeader, fmt.Sprintf("invalid signature %q", buf))
	}

	version, err := d.p.ReadUInt8()
	if err != nil {
		return d.wrap(err)
	}
	if version != Version {
		return &DecodeError{
			Kind:    KindIncompatibleVersion,
			Pos:     d.p.LastRead(),
			Version: version,
		}
	}
	return nil
}

// readBlockHeader reads the tag and the size of the next block.
// The tag must equal expected.
func (d *decoder) readBlockHeader(expected BlockTag) (int, error) {
	d.block = expected
	tag, err := d.p.ReadUInt8()
	if err != nil {
		return 0, d.wrap(err)
	}
	if BlockTag(tag) != expected {
		return 0, d.unexpected(expected, BlockTag(tag))
	}
	return d.readBlockSize()
}

func (d *decoder) readBlockSize() (int, error) {
	size, err := d.p.ReadInt32()
	if err != nil {
		return 0, d.wrap(err)
	}
	if size < 0 {
		return 0, d.fail(KindMalformedBlock, fmt.Sprintf("negative block size %d", size))
	}
	return int(size), nil
}

func (d *decoder) readInfo() (*Info, error) {
	size, err := d.readBlockHeader(BlockInfo)
	if err != nil {
		return nil, err
	}
	start := d.p.Pos()

	enc := &infoEnc{}
	err = d.p.ReadStruct(enc)
	if err != nil {
		return nil, d.wrap(err)
	}
	name, err := d.p.ReadString(0, MaxNameLength)
	if err != nil {
		return nil, d.wrap(err)
	}

	err = d.checkSize(size, d.p.Pos()-start)
	if err != nil {
		return nil, err
	}

	info := &Info{
		FontSize: enc.FontSize,
		Flags:    enc.Flags,
		Charset:  enc.Charset,
		StretchH: enc.StretchH,
		AA:       enc.AA,
		Padding:  enc.Padding,
		Spacing:  enc.Spacing,
		Outline:  enc.Outline,
		Name:     name,
	}
	return info, nil
}

func (d *decoder) readCommon() (*Common, error) {
	size, err := d.readBlockHeader(BlockCommon)
	if err != nil {
		return nil, err
	}
	start := d.p.Pos()

	common := &Common{}
	err = d.p.ReadStruct(common)
	if err != nil {
		return nil, d.wrap(err)
	}

	err = d.checkSize(size, d.p.Pos()-start)
	if err != nil {
		return nil, err
	}
	return common, nil
}

// readPages reads the Pages block.  The block must contain exactly
// numPages file names.
func (d *decoder) readPages(numPages int) ([]string, error) {
	size, err := d.readBlockHeader(BlockPages)
	if err != nil {
		return nil, err
	}

	var pages []string
	remaining := size
	for remaining > 0 {
		name, err := d.p.ReadString(0, MaxNameLength)
		if err != nil {
			return nil, d.wrap(err)
		}
		used := len(name) + 1
		if used > remaining {
			return nil, d.fail(KindMalformedBlock,
				fmt.Sprintf("page name %q overruns the block by %d bytes", name, used-remaining))
		}
		remaining -= used
		pages = append(pages, name)
	}

	if len(pages) != numPages {
		return nil, d.fail(KindMalformedBlock,
			fmt.Sprintf("found %d page names, expected %d", len(pages), numPages))
	}
	return pages, nil
}

func (d *decoder) readChars() ([]Char, error) {
	size, err := d.readBlockHeader(BlockChars)
	if err != nil {
		return nil, err
	}
	n, err := d.recordCount(size, charSize)
	if err != nil || n == 0 {
		return nil, err
	}

	chars := make([]Char, n)
	err = d.p.ReadStruct(chars)
	if err != nil {
		return nil, d.wrap(err)
	}
	return chars, nil
}

// readKerningPairs reads the optional KerningPairs block.  A missing block
// is not an error.
func (d *decoder) readKerningPairs() ([]KerningPair, error) {
	if d.p.Remaining() == 0 {
		return nil, nil
	}

	d.block = BlockKerningPairs
	tag, err := d.p.ReadUInt8()
	if err != nil {
		return nil, d.wrap(err)
	}
	if BlockTag(tag) != BlockKerningPairs {
		if d.opt.Strict {
			return nil, d.unexpected(BlockKerningPairs, BlockTag(tag))
		}
		// Unknown trailing data is ignored, for compatibility with
		// future extensions of the format.
		Logger().Debug("bmfont: ignoring data after the Chars block",
			"tag", BlockTag(tag).String(),
			"pos", d.p.LastRead(),
			"bytes", d.p.Remaining()+1)
		return nil, nil
	}

	size, err := d.readBlockSize()
	if err != nil {
		return nil, err
	}
	n, err := d.recordCount(size, kerningPairSize)
	if err != nil || n == 0 {
		return nil, err
	}

	kerning := make([]KerningPair, n)
	err = d.p.ReadStruct(kerning)
	if err != nil {
		return nil, d.wrap(err)
	}
	return kerning, nil
}

// checkEnd verifies, in strict mode, that no data follows the last block.
func (d *decoder) checkEnd() error {
	if !d.opt.Strict || d.p.Remaining() == 0 {
		return nil
	}
	tag, err := d.p.ReadUInt8()
	if err != nil {
		return d.wrap(err)
	}
	return &DecodeError{
		Kind:   KindUnexpectedBlock,
		Pos:    d.p.LastRead(),
		Got:    BlockTag(tag),
		Reason: "data after the last block",
	}
}

// recordCount returns the number of fixed-size records in a block of the
// given size.  The records must be fully contained in the remaining input.
func (d *decoder) recordCount(size, recordSize int) (int, error) {
	if size%recordSize != 0 {
		return 0, d.fail(KindMalformedBlock,
			fmt.Sprintf("block size %d is not a multiple of %d", size, recordSize))
	}
	if size > d.p.Remaining() {
		return 0, &DecodeError{
			Kind:   KindTruncated,
			Block:  d.block,
			Pos:    d.p.Pos(),
			Reason: fmt.Sprintf("block needs %d bytes, %d available", size, d.p.Remaining()),
			Err:    parser.ErrTruncated,
		}
	}
	return size / recordSize, nil
}

// checkSize compares the declared size of a fixed-layout block to the
// number of bytes actually decoded.  Mismatches are only reported in strict
// mode.
func (d *decoder) checkSize(declared int, used int64) error {
	if int64(declared) == used {
		return nil
	}
	if !d.opt.Strict {
		Logger().Debug("bmfont: block size mismatch",
			"block", d.block.String(),
			"declared", declared,
			"decoded", used)
		return nil
	}
	return d.fail(KindMalformedBlock,
		fmt.Sprintf("declared size %d, decoded %d bytes", declared, used))
}

func (d *decoder) fail(kind Kind, reason string) error {
	return &DecodeError{
		Kind:   kind,
		Block:  d.block,
		Pos:    d.p.LastRead(),
		Reason: reason,
	}
}

func (d *decoder) unexpected(expected, got BlockTag) error {
	return &DecodeError{
		Kind:     KindUnexpectedBlock,
		Block:    d.block,
		Pos:      d.p.LastRead(),
		Expected: expected,
		Got:      got,
	}
}

// wrap converts an error from the parser into a *DecodeError.
func (d *decoder) wrap(err error) error {
	kind := KindMalformedBlock
	switch {
	case errors.Is(err, parser.ErrTruncated):
		kind = KindTruncated
	case errors.Is(err, parser.ErrTooLong):
		kind = KindNameTooLong
	}
	return &DecodeError{
		Kind:  kind,
		Block: d.block,
		Pos:   d.p.LastRead(),
		Err:   err,
	}
}
