// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imagetoc

import (
	"encoding/binary"
)

// byteView is a bounds checked view over a byte slice.
// The checked accessors report whether the value was inside the view;
// the short forms return 0 for anything out of range.
type byteView []byte

func (v byteView) uint8At(off int) (uint8, bool) {
	if off < 0 || off >= len(v) {
		return 0, false
	}
	return v[off], true
}

func (v byteView) uint16At(off int, order binary.ByteOrder) (uint16, bool) {
	if off < 0 || off > len(v)-2 {
		return 0, false
	}
	return order.Uint16(v[off:]), true
}

func (v byteView) uint32At(off int, order binary.ByteOrder) (uint32, bool) {
	if off < 0 || off > len(v)-4 {
		return 0, false
	}
	return order.Uint32(v[off:]), true
}

func (v byteView) u8(off int) int {
	b, _ := v.uint8At(off)
	return int(b)
}

func (v byteView) u16le(off int) int {
	n, _ := v.uint16At(off, binary.LittleEndian)
	return int(n)
}

func (v byteView) u16be(off int) int {
	n, _ := v.uint16At(off, binary.BigEndian)
	return int(n)
}

func (v byteView) u32le(off int) int {
	n, _ := v.uint32At(off, binary.LittleEndian)
	return int(n)
}

func (v byteView) u32be(off int) int {
	n, _ := v.uint32At(off, binary.BigEndian)
	return int(n)
}

// slice returns the n bytes starting at off, clipped to the view.
func (v byteView) slice(off, n int) byteView {
	if off < 0 || off >= len(v) {
		return nil
	}
	end := off + n
	if end > len(v) || end < off {
		end = len(v)
	}
	return v[off:end]
}

// tiffOrder returns the byte order of a TIFF file, Motorola being big-endian.
func tiffOrder(motorola bool) binary.ByteOrder {
	if motorola {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// parseNumber reads the run of ASCII digits in b starting at off.
// It returns the value and the offset one past the character that ended the run.
func parseNumber(b []byte, off int) (n, next int) {
	for off < len(b) && b[off] >= '0' && b[off] <= '9' {
		n = n*10 + int(b[off]-'0')
		off++
	}
	return n, off + 1
}

// skipPNMSeparators skips whitespace and '#' comments up to the next token.
func skipPNMSeparators(b []byte, off int) int {
	for off < len(b) {
		switch b[off] {
		case ' ', '\t', '\r', '\n':
			off++
		case '#':
			for off < len(b) && b[off] != '\n' && b[off] != '\r' {
				off++
			}
		default:
			return off
		}
	}
	return off
}
