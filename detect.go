// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imagetoc

const (
	magicPNG     = 0x89504e47 // "\x89PNG"
	magicGIF     = 0x47494638 // "GIF8"
	magicCALS    = 0x64637273 // "srcd" of "srcdocid:", little-endian
	magicJEDMICS = 0x80
	magicJPEG    = 0xffd8ff00
	maskJPEG     = 0xffffff00
	maskPPM      = 0xffff8080
	mpegPack     = 0x000001ba
	mpegSequence = 0x000001b3
	bmpInfoV3    = 0x28
)

// signatures are tried in order. The first match wins.
var signatures = []func(h byteView) ImageFormat{
	detectPNG,
	detectBMP,
	detectPCX,
	detectJEDMICS,
	detectCALS,
	detectJPEG,
	detectGIF,
	detectTIFF,
	detectPPM,
}

// Detect identifies the image format from the first bytes of a file.
// At least 256 bytes are needed; a shorter prefix always gives FormatUnknown.
func Detect(prefix []byte) ImageFormat {
	if len(prefix) < headerSize {
		return FormatUnknown
	}
	h := byteView(prefix)
	for _, detect := range signatures {
		if f := detect(h); f != FormatUnknown {
			return f
		}
	}
	// Targa has no magic number, so it's only considered when nothing else matched.
	if isTarga(h) {
		return Targa
	}
	return FormatUnknown
}

func detectPNG(h byteView) ImageFormat {
	if h.u32be(0) == magicPNG {
		return PNG
	}
	return FormatUnknown
}

func detectBMP(h byteView) ImageFormat {
	if h.u8(0) != 'B' || h.u8(1) != 'M' {
		return FormatUnknown
	}
	// Size of the info header.
	if h.u8(14) == bmpInfoV3 {
		return BMP
	}
	return OS2BMP
}

func detectPCX(h byteView) ImageFormat {
	if h.u8(0) == 0x0a && h.u8(1) < 6 && h.u8(2) == 1 {
		return PCX
	}
	return FormatUnknown
}

func detectJEDMICS(h byteView) ImageFormat {
	if h.u32le(0) != magicJEDMICS {
		return FormatUnknown
	}
	if v := h.u8(36); v == 4 || v == 6 {
		return JEDMICS
	}
	return FormatUnknown
}

func detectCALS(h byteView) ImageFormat {
	if h.u32le(0) == magicCALS {
		return CALS
	}
	return FormatUnknown
}

func detectJPEG(h byteView) ImageFormat {
	if h.u32be(0)&maskJPEG == magicJPEG {
		return JPEG
	}
	return FormatUnknown
}

func detectGIF(h byteView) ImageFormat {
	if h.u32be(0) == magicGIF {
		return GIF
	}
	return FormatUnknown
}

func detectTIFF(h byteView) ImageFormat {
	switch h.u16be(0) {
	case byteOrderBigEndian, byteOrderLittleEndian:
		return TIFF
	}
	return FormatUnknown
}

func detectPPM(h byteView) ImageFormat {
	switch h.u32be(0) & maskPPM {
	case 0x50340000, 0x50350000, 0x50360000: // P4, P5, P6
		return PPM
	}
	return FormatUnknown
}

func isTarga(h byteView) bool {
	if m := h.u32be(0); m == mpegPack || m == mpegSequence {
		return false
	}
	if h.u8(1)&0xfe != 0 {
		return false
	}
	switch h.u8(2) {
	case 1, 2, 3, 9, 10, 11:
		return true
	}
	return false
}
