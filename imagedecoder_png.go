// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imagetoc

const pngIHDRMarker = 0x49484452 // "IHDR"

type imageDecoderPNG struct {
	*baseDecoder
}

func (e *imageDecoderPNG) extract() {
	h := e.header
	// The IHDR chunk must come first, right after the 8 byte signature
	// and the 4 byte chunk length.
	if h.u32be(12) != pngIHDRMarker {
		e.opts.Warnf("png: missing IHDR chunk")
		return
	}

	e.info.Width = h.u32be(16)
	e.info.Height = h.u32be(20)
	e.info.Compression = CompressionFlate

	bitDepth := h.u8(24)
	switch colorType := h.u8(25); colorType {
	case 0, 3: // grayscale, palette
		e.info.BitsPerPixel = bitDepth
	case 2: // RGB
		e.info.BitsPerPixel = bitDepth * 3
	case 4: // grayscale + alpha
		e.info.BitsPerPixel = bitDepth * 2
	case 6: // RGBA
		e.info.BitsPerPixel = bitDepth * 4
	}

	if h.u8(28) == 1 {
		e.addDetail("Interlaced")
	} else {
		e.addDetail("Not interlaced")
	}
}
