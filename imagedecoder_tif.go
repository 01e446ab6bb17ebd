// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imagetoc

import (
	"encoding/binary"
)

const (
	byteOrderBigEndian    = 0x4d4d // "MM"
	byteOrderLittleEndian = 0x4949 // "II"

	tiffTagSize = 12
	tiffMaxTags = 256
)

const (
	tagImageWidth    = 0x0100
	tagImageLength   = 0x0101
	tagBitsPerSample = 0x0102
	tagCompression   = 0x0103
	tagPhotometric   = 0x0106
	tagPlanarConfig  = 0x011c
)

const (
	tiffTypeASCII          = 2
	tiffTypeShort          = 3
	tiffTypeLong           = 4
	tiffTypeRational       = 5
	tiffTypeSignedByte     = 6
	tiffTypeUndefined      = 7
	tiffTypeSignedRational = 10
)

// tiffCompression maps the values of the Compression tag.
var tiffCompression = map[int]Compression{
	1:     CompressionNone,
	2:     CompressionModifiedHuffman,
	3:     CompressionG3,
	4:     CompressionG4,
	5:     CompressionLZW,
	6:     CompressionJPEG, // old-style
	7:     CompressionJPEG,
	8:     CompressionFlate,
	9:     CompressionJBIG,
	32773: CompressionPackbits,
	32809: CompressionThunderscanRLE,
	32946: CompressionFlate, // Deflate, pre-standard tag value
}

// tiffTag is a view of a 12 byte IFD entry:
//
//	0-1   tag ID
//	2-3   data type
//	4-7   number of values
//	8-11  the value, or the offset to the list of values
type tiffTag []byte

func (t tiffTag) id(order binary.ByteOrder) uint16 {
	v, _ := byteView(t).uint16At(0, order)
	return v
}

func (t tiffTag) dataType(order binary.ByteOrder) uint16 {
	v, _ := byteView(t).uint16At(2, order)
	return v
}

func (t tiffTag) count(order binary.ByteOrder) uint32 {
	v, _ := byteView(t).uint32At(4, order)
	return v
}

func (t tiffTag) valueOffset(order binary.ByteOrder) uint32 {
	v, _ := byteView(t).uint32At(8, order)
	return v
}

// value returns the tag's value as a single integer.
// Lists are stored elsewhere in the file, so for a count above 1 the
// offset to the list is returned.
func (t tiffTag) value(order binary.ByteOrder) int {
	typ := t.dataType(order)
	if t.count(order) > 1 {
		typ = tiffTypeLong
	}
	switch typ {
	case tiffTypeShort:
		v, _ := byteView(t).uint16At(8, order)
		return int(v)
	case tiffTypeLong, tiffTypeUndefined, tiffTypeASCII, tiffTypeRational, tiffTypeSignedRational:
		return int(int32(t.valueOffset(order)))
	case tiffTypeSignedByte:
		v, _ := byteView(t).uint8At(8)
		return int(int8(v))
	default:
		return 0
	}
}

type imageDecoderTIF struct {
	*baseDecoder
}

func (e *imageDecoderTIF) extract() {
	motorola := e.header.u8(0) == 'M'
	order := tiffOrder(motorola)

	// Defaults for files that leave tags out.
	e.info.BitsPerPixel = 1
	e.info.Compression = CompressionNone
	e.info.Photometric = PhotometricUnknown
	e.info.Planar = PlanarChunky

	defer func() {
		e.addDetail("Photometric = %s, Planar config = %s", e.info.Photometric, e.info.Planar)
	}()

	ifdOffset, _ := e.header.uint32At(4, order)
	ifd := byteView(e.readAt(int64(ifdOffset), 2+tiffMaxTags*tiffTagSize))

	numTags, ok := ifd.uint16At(0, order)
	if !ok {
		e.opts.Warnf("tiff: no IFD at offset %d", ifdOffset)
		return
	}
	if numTags > tiffMaxTags {
		e.opts.Warnf("tiff: IFD has %d tags, reading the first %d", numTags, tiffMaxTags)
		numTags = tiffMaxTags
	}

	for i := 0; i < int(numTags); i++ {
		tag := tiffTag(ifd.slice(2+i*tiffTagSize, tiffTagSize))
		if len(tag) < tiffTagSize {
			e.opts.Warnf("tiff: IFD truncated after %d of %d tags", i, numTags)
			return
		}
		e.handleTag(tag, order)
	}
}

func (e *imageDecoderTIF) handleTag(tag tiffTag, order binary.ByteOrder) {
	switch tag.id(order) {
	case tagImageWidth:
		e.info.Width = tag.value(order)
	case tagImageLength:
		e.info.Height = tag.value(order)
	case tagBitsPerSample:
		count := tag.count(order)
		if count == 1 {
			e.info.BitsPerPixel = tag.value(order)
			return
		}
		// One value per sample; assume they are all equal and read the first.
		listOffset := int64(tag.valueOffset(order))
		if listOffset >= e.size {
			e.opts.Warnf("tiff: BitsPerSample list offset %d is outside the file", listOffset)
			return
		}
		if v, ok := byteView(e.readAt(listOffset, 2)).uint16At(0, order); ok {
			e.info.BitsPerPixel = int(count) * int(v)
		}
	case tagCompression:
		e.info.Compression = tiffCompression[tag.value(order)]
	case tagPhotometric:
		e.info.Photometric = PhotometricUnknown
		if v := tag.value(order); v >= 0 && v <= 6 {
			e.info.Photometric = Photometric(v + 1)
		}
	case tagPlanarConfig:
		e.info.Planar = PlanarUnknown
		if v := tag.value(order); v == 1 || v == 2 {
			e.info.Planar = PlanarConfig(v)
		}
	}
}
