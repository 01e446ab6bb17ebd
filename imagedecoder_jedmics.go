// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imagetoc

// JEDMICS C4 files are always bilevel and G4 encoded.
type imageDecoderJEDMICS struct {
	*baseDecoder
}

func (e *imageDecoderJEDMICS) extract() {
	h := e.header
	e.info.BitsPerPixel = 1
	e.info.Compression = CompressionG4
	e.info.Width = h.u16le(6) << 3 // stored in bytes
	e.info.Height = h.u16le(4)
}
