// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imagetoc

type imageDecoderPCX struct {
	*baseDecoder
}

func (e *imageDecoderPCX) extract() {
	h := e.header
	// The window is given as inclusive min/max coordinates.
	xMin, yMin, xMax, yMax := h.u16le(4), h.u16le(6), h.u16le(8), h.u16le(10)
	e.info.Width = 1 + xMax - xMin
	e.info.Height = 1 + yMax - yMin
	e.info.Compression = CompressionPackbits
	e.info.BitsPerPixel = h.u8(3) * h.u8(65) // bits per plane * planes
}
