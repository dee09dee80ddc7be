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

// Package parser implements a forward-only reader for little-endian binary
// data held in memory.
package parser

import (
	"bytes"
	"encoding/binary"
	"errors"
)

var (
	// ErrTruncated is returned when fewer bytes remain than a read requires.
	ErrTruncated = errors.New("unexpected end of data")

	// ErrTooLong is returned by ReadString when no delimiter is found
	// within the permitted length.
	ErrTooLong = errors.New("string too long")
)

// Parser allows to read data from a byte slice.
// The read position only ever moves forward.
type Parser struct {
	data     []byte
	pos      int
	lastRead int
}

// New allocates a new Parser which reads from data.
// The data must not be modified while the parser is in use.
func New(data []byte) *Parser {
	return &Parser{data: data}
}

// Size returns the total length of the underlying data.
func (p *Parser) Size() int64 {
	return int64(len(p.data))
}

// Pos returns the current reading position.
func (p *Parser) Pos() int64 {
	return int64(p.pos)
}

// LastRead returns the position where the most recent read started.
func (p *Parser) LastRead() int64 {
	return int64(p.lastRead)
}

// Remaining returns the number of unread bytes.
func (p *Parser) Remaining() int {
	return len(p.data) - p.pos
}

// ReadUInt8 reads a single uint8 value from the current position.
func (p *Parser) ReadUInt8() (uint8, error) {
	buf, err := p.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadUInt16 reads a single little-endian uint16 value from the current
// position.
func (p *Parser) ReadUInt16() (uint16, error) {
	buf, err := p.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return uint16(buf[0]) | uint16(buf[1])<<8, nil
}

// ReadInt16 reads a single little-endian int16 value from the current
// position.
func (p *Parser) ReadInt16() (int16, error) {
	val, err := p.ReadUInt16()
	return int16(val), err
}

// ReadUInt32 reads a single little-endian uint32 value from the current
// position.
func (p *Parser) ReadUInt32() (uint32, error) {
	buf, err := p.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24, nil
}

// ReadInt32 reads a single little-endian int32 value from the current
// position.
func (p *Parser) ReadInt32() (int32, error) {
	val, err := p.ReadUInt32()
	return int32(val), err
}

// ReadBytes reads n bytes, starting at the current position.  The returned
// slice points into the underlying data and must not be modified by the
// caller.  If fewer than n bytes remain, ErrTruncated is returned and the
// position is not changed.
func (p *Parser) ReadBytes(n int) ([]byte, error) {
	p.lastRead = p.pos
	if n < 0 {
		panic("negative read size")
	}
	if n > len(p.data)-p.pos {
		return nil, ErrTruncated
	}
	res := p.data[p.pos : p.pos+n : p.pos+n]
	p.pos += n
	return res, nil
}

// Discard skips the next n bytes.
func (p *Parser) Discard(n int) error {
	_, err := p.ReadBytes(n)
	return err
}

// ReadString reads bytes up to the next occurrence of delim and returns them
// as a newly allocated string.  The delimiter is consumed but not included
// in the result.
//
// If the data ends before delim is found, ErrTruncated is returned.  If more
// than maxLen bytes are scanned without finding delim, ErrTooLong is
// returned.  In both cases the position is not changed.
func (p *Parser) ReadString(delim byte, maxLen int) (string, error) {
	p.lastRead = p.pos
	tail := p.data[p.pos:]
	if len(tail) > maxLen+1 {
		tail = tail[:maxLen+1]
	}
	k := bytes.IndexByte(tail, delim)
	if k < 0 {
		if len(tail) > maxLen {
			return "", ErrTooLong
		}
		return "", ErrTruncated
	}
	res := string(tail[:k])
	p.pos += k + 1
	return res, nil
}

// ReadStruct fills data, which must be a pointer to a fixed-size value or a
// slice of fixed-size values, from the next binary.Size(data) bytes.
// Multi-byte fields are decoded as little-endian.
func (p *Parser) ReadStruct(data any) error {
	n := binary.Size(data)
	if n < 0 {
		panic("ReadStruct: data has no fixed size")
	}
	buf, err := p.ReadBytes(n)
	if err != nil {
		return err
	}
	_, err = binary.Decode(buf, binary.LittleEndian, data)
	return err
}
