// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

// Package imagetoc identifies raster image files from their header bytes.
//
// It recognizes PNG, JPEG, Windows and OS/2 BMP, TIFF, GIF, Portable Pixmap,
// Targa, JEDMICS, CALS and PCX files and reports their dimensions, bit depth
// and compression. Pixel data is never decoded.
package imagetoc

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ImageFormat is the image format.
//
//go:generate stringer -type=ImageFormat -linecomment
type ImageFormat int

const (
	// FormatUnknown is used for files that match no known signature.
	FormatUnknown ImageFormat = iota // Unknown
	// PNG is the PNG image format.
	PNG // PNG
	// JPEG is the JPEG/JFIF image format.
	JPEG // JFIF
	// BMP is the Windows BMP image format.
	BMP // Win BMP
	// OS2BMP is the OS/2 BMP image format.
	OS2BMP // OS/2 BMP
	// TIFF is the TIFF image format.
	TIFF // TIFF
	// GIF is the GIF image format.
	GIF // GIF
	// PPM is the binary Portable Bitmap/Graymap/Pixmap family (P4, P5, P6).
	PPM // Portable Pixmap
	// Targa is the Truevision Targa image format.
	Targa // Targa
	// JEDMICS is the JEDMICS C4 image format.
	JEDMICS // JEDMICS
	// CALS is the CALS raster image format.
	CALS // CALS
	// PCX is the ZSoft PCX image format.
	PCX // PCX
)

// Compression is the compression scheme used for the pixel data.
//
//go:generate stringer -type=Compression -linecomment
type Compression int

const (
	CompressionUnknown         Compression = iota // Unknown
	CompressionFlate                              // Flate
	CompressionJPEG                               // JPEG
	CompressionNone                               // None
	CompressionRLE                                // RLE
	CompressionLZW                                // LZW
	CompressionG3                                 // G3
	CompressionG4                                 // G4
	CompressionPackbits                           // Packbits
	CompressionModifiedHuffman                    // Modified Huffman
	CompressionThunderscanRLE                     // Thunderscan RLE
	CompressionJBIG                               // JBIG (T.85)
)

// Photometric is the TIFF photometric interpretation.
//
//go:generate stringer -type=Photometric -linecomment
type Photometric int

const (
	PhotometricUnknown          Photometric = iota // Unknown
	PhotometricWhiteIsZero                         // WhiteIsZero
	PhotometricBlackIsZero                         // BlackIsZero
	PhotometricRGB                                 // RGB
	PhotometricPalette                             // Palette Color
	PhotometricTransparencyMask                    // Transparency Mask
	PhotometricCMYK                                // CMYK
	PhotometricYCbCr                               // YCbCr
)

// PlanarConfig is the TIFF sample interleaving layout.
//
//go:generate stringer -type=PlanarConfig -linecomment
type PlanarConfig int

const (
	PlanarUnknown PlanarConfig = iota // Unknown
	PlanarChunky                      // Chunky
	PlanarPlanar                      // Planar
)

// headerSize is the number of bytes needed to classify a file.
const headerSize = 256

// 64 MB is plenty for counting GIF frames.
const defaultLimitFileSize = 64 << 20

// Options contains the options for the Decode function.
type Options struct {
	// The Reader (typically a *os.File) to read the image header from.
	// Decode does not close it.
	R io.ReadSeeker

	// Size is the size of R in bytes.
	// If not set, it is determined by seeking to the end of R.
	Size int64

	// ReadEXIF enables decoding of the EXIF block in JPEG files.
	// The orientation and thumbnail size are added to Info.Details.
	ReadEXIF bool

	// LimitFileSize is the maximum file size that will be loaded into
	// memory to count GIF frames. Larger files are reported without a frame count.
	// Default value is 64 MB.
	LimitFileSize int64

	// Warnf will be called for each warning.
	Warnf func(string, ...any)
}

// Info describes an image file.
// The zero value means that the format was not recognized.
type Info struct {
	Format       ImageFormat
	Compression  Compression
	Width        int
	Height       int
	BitsPerPixel int

	// TIFF only.
	Photometric Photometric
	Planar      PlanarConfig

	// Frames is the number of frames in a GIF file.
	// Only valid if HasFrameCount is set.
	Frames        int
	HasFrameCount bool

	// Details holds format specific information,
	// e.g. "Interlaced" or "color subsampling = 2:2".
	Details string
}

// IsZero reports whether i is the empty result of an unrecognized file.
func (i Info) IsZero() bool {
	return i == Info{}
}

// Comment returns the C comment block describing the image,
// or an empty string if the format was not recognized.
func (i Info) Comment() string {
	if i.Format == FormatUnknown {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "// %s, Compression=%s, Size: %d x %d, %d-Bpp\n", i.Format, i.Compression, i.Width, i.Height, i.BitsPerPixel)
	if i.HasFrameCount {
		fmt.Fprintf(&sb, "// %d frames\n", i.Frames)
	}
	sb.WriteString("//\n")
	return sb.String()
}

// String returns a one-line summary of the image.
func (i Info) String() string {
	if i.Format == FormatUnknown {
		return i.Format.String()
	}
	s := fmt.Sprintf("%s %dx%d %d-Bpp %s", i.Format, i.Width, i.Height, i.BitsPerPixel, i.Compression)
	if i.HasFrameCount {
		s += fmt.Sprintf(", %d frames", i.Frames)
	}
	if i.Details != "" {
		s += ", " + i.Details
	}
	return s
}

var errNoReader = errors.New("no reader provided")

// Decode reads the header of the image in opts.R and returns a description of it.
//
// Malformed image data never results in an error; fields that cannot be determined are
// left at their zero value, and an unrecognized file gives a zero Info.
// An error is only returned if opts.R cannot be sized or read.
func Decode(opts Options) (Info, error) {
	var info Info

	if opts.R == nil {
		return info, errNoReader
	}
	if opts.Warnf == nil {
		opts.Warnf = func(string, ...any) {}
	}
	if opts.LimitFileSize == 0 {
		opts.LimitFileSize = defaultLimitFileSize
	}

	if opts.Size <= 0 {
		size, err := opts.R.Seek(0, io.SeekEnd)
		if err != nil {
			return info, fmt.Errorf("imagetoc: determine size: %w", err)
		}
		opts.Size = size
	}

	br := &streamReader{
		r:    opts.R,
		size: opts.Size,
	}

	header := br.readAt(0, headerSize)
	if br.readErr != nil {
		return info, br.readErr
	}

	format := Detect(header)
	if format == FormatUnknown {
		return info, nil
	}

	base := &baseDecoder{
		streamReader: br,
		opts:         opts,
		header:       byteView(header),
		info:         &info,
	}
	info.Format = format

	newExtractor(format, base).extract()

	if br.readErr != nil {
		return Info{}, br.readErr
	}

	return info, nil
}

// extractor fills in the format specific fields of an Info.
type extractor interface {
	extract()
}

type baseDecoder struct {
	*streamReader
	opts   Options
	header byteView
	info   *Info
}

func (d *baseDecoder) addDetail(format string, args ...any) {
	s := fmt.Sprintf(format, args...)
	if d.info.Details == "" {
		d.info.Details = s
		return
	}
	d.info.Details += ", " + s
}

func newExtractor(format ImageFormat, base *baseDecoder) extractor {
	switch format {
	case PNG:
		return &imageDecoderPNG{baseDecoder: base}
	case JPEG:
		return &imageDecoderJPEG{baseDecoder: base}
	case BMP:
		return &imageDecoderBMP{baseDecoder: base}
	case OS2BMP:
		return &imageDecoderOS2BMP{baseDecoder: base}
	case TIFF:
		return &imageDecoderTIF{baseDecoder: base}
	case GIF:
		return &imageDecoderGIF{baseDecoder: base}
	case PPM:
		return &imageDecoderPPM{baseDecoder: base}
	case Targa:
		return &imageDecoderTarga{baseDecoder: base}
	case JEDMICS:
		return &imageDecoderJEDMICS{baseDecoder: base}
	case CALS:
		return &imageDecoderCALS{baseDecoder: base}
	case PCX:
		return &imageDecoderPCX{baseDecoder: base}
	default:
		panic(fmt.Sprintf("imagetoc: no extractor for %v", format))
	}
}
