// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imagetoc

const (
	calsTypeOffset      = 750
	calsType1SizeOffset = 1033
	calsType2SizeOffset = 1024

	calsRpelcnt1 = 0x7270656c // "rpel"
	calsRpelcnt2 = 0x636e743a // "cnt:"
)

// CALS raster files start with 128 byte ASCII header records.
// The image size is given as "rpelcnt: <width>,<height>".
type imageDecoderCALS struct {
	*baseDecoder
}

func (e *imageDecoderCALS) extract() {
	e.info.BitsPerPixel = 1
	e.info.Compression = CompressionG4

	var b byteView
	off := 0
	if typ := e.readAt(calsTypeOffset, 1); len(typ) == 1 && typ[0] == '1' {
		b = e.readAt(calsType1SizeOffset, headerSize)
	} else {
		b = e.readAt(calsType2SizeOffset, 128)
		if b.u32be(0) != calsRpelcnt1 || b.u32be(4) != calsRpelcnt2 {
			e.opts.Warnf("cals: no rpelcnt record at offset %d", calsType2SizeOffset)
			return
		}
		off = 9
	}

	e.info.Width, off = parseNumber(b, off)
	e.info.Height, _ = parseNumber(b, off)
}
