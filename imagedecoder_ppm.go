// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imagetoc

type imageDecoderPPM struct {
	*baseDecoder
}

func (e *imageDecoderPPM) extract() {
	h := []byte(e.header)
	switch e.header.u8(1) {
	case '4': // bitmap
		e.info.BitsPerPixel = 1
	case '5': // graymap
		e.info.BitsPerPixel = 8
	case '6': // pixmap
		e.info.BitsPerPixel = 24
	}
	e.info.Compression = CompressionNone

	off := skipPNMSeparators(h, 2)
	e.info.Width, off = parseNumber(h, off)
	off = skipPNMSeparators(h, off)
	e.info.Height, _ = parseNumber(h, off)
}
