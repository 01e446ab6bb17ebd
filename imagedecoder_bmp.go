// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imagetoc

const os2InfoV1 = 12

type imageDecoderBMP struct {
	*baseDecoder
}

func (e *imageDecoderBMP) extract() {
	h := e.header
	e.info.Compression = CompressionNone
	e.info.Width = h.u16le(18)
	e.info.Height = normalizeBMPHeight(h.u16le(22))
	e.info.BitsPerPixel = h.u8(28) * h.u8(26) // bits per plane * planes

	// 1 = RLE8, 2 = RLE4. Other schemes (bitfields, embedded JPEG/PNG) are reported as uncompressed.
	if h.u8(30) != 0 && (e.info.BitsPerPixel == 4 || e.info.BitsPerPixel == 8) {
		e.info.Compression = CompressionRLE
	}
}

type imageDecoderOS2BMP struct {
	*baseDecoder
}

func (e *imageDecoderOS2BMP) extract() {
	h := e.header
	e.info.Compression = CompressionNone
	e.info.Width = h.u16le(18)
	if h.u8(14) == os2InfoV1 {
		e.info.Height = h.u16le(20)
		e.info.BitsPerPixel = h.u8(22) * h.u8(24)
	} else {
		e.info.Height = h.u16le(22)
		e.info.BitsPerPixel = h.u8(28) * h.u8(26)
	}
	e.info.Height = normalizeBMPHeight(e.info.Height)

	switch h.u8(30) {
	case 1, 2, 4: // RLE8, RLE4, RLE24
		e.info.Compression = CompressionRLE
	}
}

// normalizeBMPHeight returns the magnitude of a 16-bit two's complement height.
// Negative heights mark top-down bitmaps.
func normalizeBMPHeight(height int) int {
	if height&0x8000 != 0 {
		return 65536 - height
	}
	return height
}
