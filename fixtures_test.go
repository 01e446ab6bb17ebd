// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imagetoc

import (
	"bytes"
	"encoding/binary"
	"fmt"

	qt "github.com/frankban/quicktest"
)

func decodeBytes(c *qt.C, b []byte) Info {
	c.Helper()
	info, err := Decode(Options{R: bytes.NewReader(b)})
	c.Assert(err, qt.IsNil)
	return info
}

func collectWarnings(warnings *[]string) func(string, ...any) {
	return func(format string, args ...any) {
		*warnings = append(*warnings, fmt.Sprintf(format, args...))
	}
}

// Synthetic image headers. Only the fields the decoders look at are filled in.

func padTo(b []byte, n int) []byte {
	for len(b) < n {
		b = append(b, 0)
	}
	return b
}

func putAt(b []byte, off int, v ...byte) []byte {
	b = padTo(b, off+len(v))
	copy(b[off:], v)
	return b
}

func newPNG(width, height uint32, bitDepth, colorType, interlace byte) []byte {
	b := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	b = binary.BigEndian.AppendUint32(b, 13)
	b = append(b, "IHDR"...)
	b = binary.BigEndian.AppendUint32(b, width)
	b = binary.BigEndian.AppendUint32(b, height)
	b = append(b, bitDepth, colorType, 0, 0, interlace)
	return padTo(b, headerSize)
}

// newBMP creates a BITMAPINFOHEADER bitmap.
func newBMP(width, height int32, planes, bitCount uint16, compression uint32) []byte {
	b := []byte{'B', 'M'}
	b = padTo(b, 14)
	b = binary.LittleEndian.AppendUint32(b, 40)
	b = binary.LittleEndian.AppendUint32(b, uint32(width))
	b = binary.LittleEndian.AppendUint32(b, uint32(height))
	b = binary.LittleEndian.AppendUint16(b, planes)
	b = binary.LittleEndian.AppendUint16(b, bitCount)
	b = binary.LittleEndian.AppendUint32(b, compression)
	return padTo(b, headerSize)
}

// newOS2BMPv1 creates a BITMAPCOREHEADER bitmap.
func newOS2BMPv1(width, height int16, planes, bitCount uint16) []byte {
	b := []byte{'B', 'M'}
	b = padTo(b, 14)
	b = binary.LittleEndian.AppendUint32(b, os2InfoV1)
	b = binary.LittleEndian.AppendUint16(b, uint16(width))
	b = binary.LittleEndian.AppendUint16(b, uint16(height))
	b = binary.LittleEndian.AppendUint16(b, planes)
	b = binary.LittleEndian.AppendUint16(b, bitCount)
	return padTo(b, headerSize)
}

// newOS2BMPv2 creates an OS/2 2.x bitmap with a 64 byte info header.
func newOS2BMPv2(width, height int32, planes, bitCount uint16, compression uint32) []byte {
	b := newBMP(width, height, planes, bitCount, compression)
	b[14] = 64
	return b
}

func newPCX(xMin, yMin, xMax, yMax uint16, bitsPerPlane, planes byte) []byte {
	b := []byte{0x0a, 5, 1, bitsPerPlane}
	b = binary.LittleEndian.AppendUint16(b, xMin)
	b = binary.LittleEndian.AppendUint16(b, yMin)
	b = binary.LittleEndian.AppendUint16(b, xMax)
	b = binary.LittleEndian.AppendUint16(b, yMax)
	b = putAt(b, 65, planes)
	return padTo(b, headerSize)
}

func newJEDMICS(widthBytes, height uint16) []byte {
	b := binary.LittleEndian.AppendUint32(nil, magicJEDMICS)
	b = binary.LittleEndian.AppendUint16(b, height)
	b = binary.LittleEndian.AppendUint16(b, widthBytes)
	b = putAt(b, 36, 4)
	return padTo(b, headerSize)
}

func newCALSType1(size string) []byte {
	b := []byte("srcdocid: NONE")
	b = putAt(b, calsTypeOffset, '1')
	b = putAt(b, calsType1SizeOffset, []byte(size)...)
	return padTo(b, calsType1SizeOffset+headerSize)
}

func newCALSType2(record string) []byte {
	b := []byte("srcdocid: NONE")
	b = putAt(b, calsTypeOffset, '2')
	b = putAt(b, calsType2SizeOffset, []byte(record)...)
	return padTo(b, calsType2SizeOffset+128)
}

func newTarga(imageType byte, width, height uint16, bitsPerPixel byte) []byte {
	b := []byte{0, 0, imageType}
	b = padTo(b, 12)
	b = binary.LittleEndian.AppendUint16(b, width)
	b = binary.LittleEndian.AppendUint16(b, height)
	b = append(b, bitsPerPixel)
	return padTo(b, headerSize)
}

func newPPM(header string) []byte {
	return padTo([]byte(header), headerSize)
}

// jpegSegment returns a marker segment with a correct length field.
func jpegSegment(marker uint16, data []byte) []byte {
	b := binary.BigEndian.AppendUint16(nil, marker)
	b = binary.BigEndian.AppendUint16(b, uint16(len(data)+2))
	return append(b, data...)
}

func jpegSOF0(width, height uint16, components byte, sampling byte) []byte {
	data := []byte{8}
	data = binary.BigEndian.AppendUint16(data, height)
	data = binary.BigEndian.AppendUint16(data, width)
	data = append(data, components)
	for i := byte(0); i < components; i++ {
		s := byte(0x11)
		if i == 0 {
			s = sampling
		}
		data = append(data, i+1, s, 0)
	}
	return jpegSegment(markerSOF0, data)
}

func jpegAPP0JFIF() []byte {
	return jpegSegment(markerAPP0, []byte{'J', 'F', 'I', 'F', 0, 1, 1, 0, 0, 1, 0, 1, 0, 0})
}

// newJPEG joins the given segments after SOI and pads the result.
func newJPEG(segments ...[]byte) []byte {
	b := []byte{0xff, 0xd8}
	for _, s := range segments {
		b = append(b, s...)
	}
	return padTo(b, headerSize)
}

// newEXIFSegment returns an APP1 segment holding a big-endian
// IFD0 with an orientation tag.
func newEXIFSegment(orientation uint16) []byte {
	tif := newTIFF(binary.BigEndian, []tiffEntry{
		{id: 0x0112, typ: tiffTypeShort, count: 1, value: uint32(orientation)},
	}, nil)
	data := append([]byte("Exif\x00\x00"), tif...)
	return jpegSegment(0xffe1, data)
}

type gifFrame struct {
	flags byte   // image descriptor flags
	data  []byte // LZW data, split into sub-blocks
	gce   bool   // add a graphic control extension after the image
}

// newGIF builds a GIF with a 4 color global table.
func newGIF(width, height uint16, frames ...gifFrame) []byte {
	b := []byte("GIF89a")
	b = binary.LittleEndian.AppendUint16(b, width)
	b = binary.LittleEndian.AppendUint16(b, height)
	b = append(b, 0x80|0x01, 0, 0)
	b = append(b, make([]byte, colorTableSize(0x01))...)
	for _, f := range frames {
		b = append(b, gifImage(width, height, f)...)
		if f.gce {
			b = append(b, gifGCE()...)
		}
	}
	return append(b, gifTrailer)
}

func gifImage(width, height uint16, f gifFrame) []byte {
	b := []byte{gifImageDescriptor, 0, 0, 0, 0}
	b = binary.LittleEndian.AppendUint16(b, width)
	b = binary.LittleEndian.AppendUint16(b, height)
	b = append(b, f.flags)
	if f.flags&gifFlagColorTable != 0 {
		b = append(b, make([]byte, colorTableSize(f.flags))...)
	}
	b = append(b, 2) // LZW minimum code size
	return append(b, gifSubBlocks(f.data)...)
}

func gifGCE() []byte {
	return []byte{gifExtension, 0xf9, 4, 0, 10, 0, 0, 0}
}

func gifComment(s string) []byte {
	b := []byte{gifExtension, 0xfe}
	return append(b, gifSubBlocks([]byte(s))...)
}

func gifSubBlocks(data []byte) []byte {
	var b []byte
	for len(data) > 0 {
		n := min(len(data), 255)
		b = append(b, byte(n))
		b = append(b, data[:n]...)
		data = data[n:]
	}
	return append(b, 0)
}

// byteOrder is implemented by binary.BigEndian and binary.LittleEndian.
type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

type tiffEntry struct {
	id    uint16
	typ   uint16
	count uint32
	value uint32
}

// newTIFF writes a TIFF header and a single IFD at offset 8.
// extra is appended after the IFD, at offset tiffDataOffset(len(entries)).
func newTIFF(order byteOrder, entries []tiffEntry, extra []byte) []byte {
	var b []byte
	if order == binary.BigEndian {
		b = append(b, 'M', 'M')
	} else {
		b = append(b, 'I', 'I')
	}
	b = order.AppendUint16(b, 42)
	b = order.AppendUint32(b, 8)
	b = order.AppendUint16(b, uint16(len(entries)))
	for _, e := range entries {
		b = order.AppendUint16(b, e.id)
		b = order.AppendUint16(b, e.typ)
		b = order.AppendUint32(b, e.count)
		if e.typ == tiffTypeShort && e.count == 1 {
			b = order.AppendUint16(b, uint16(e.value))
			b = order.AppendUint16(b, 0)
		} else {
			b = order.AppendUint32(b, e.value)
		}
	}
	b = order.AppendUint32(b, 0) // no next IFD
	return append(b, extra...)
}

func tiffDataOffset(numEntries int) uint32 {
	return uint32(8 + 2 + numEntries*tiffTagSize + 4)
}

// newRGBTIFF creates an LZW compressed 8-8-8 RGB image.
func newRGBTIFF(order byteOrder, width, height uint32) []byte {
	const numEntries = 6
	var bps []byte
	for i := 0; i < 3; i++ {
		bps = order.AppendUint16(bps, 8)
	}
	b := newTIFF(order, []tiffEntry{
		{id: tagImageWidth, typ: tiffTypeLong, count: 1, value: width},
		{id: tagImageLength, typ: tiffTypeShort, count: 1, value: height},
		{id: tagBitsPerSample, typ: tiffTypeShort, count: 3, value: tiffDataOffset(numEntries)},
		{id: tagCompression, typ: tiffTypeShort, count: 1, value: 5},
		{id: tagPhotometric, typ: tiffTypeShort, count: 1, value: 2},
		{id: tagPlanarConfig, typ: tiffTypeShort, count: 1, value: 1},
	}, bps)
	return padTo(b, headerSize)
}
