// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imagetoc

type imageDecoderTarga struct {
	*baseDecoder
}

func (e *imageDecoderTarga) extract() {
	h := e.header
	imageType := h.u8(2)

	e.info.Width = h.u16le(12)
	e.info.Height = h.u16le(14)
	e.info.BitsPerPixel = h.u8(16)
	if imageType == 3 || imageType == 11 { // monochrome
		e.info.BitsPerPixel = 1
	}
	if imageType < 9 {
		e.info.Compression = CompressionNone
	} else {
		e.info.Compression = CompressionRLE
	}
}
