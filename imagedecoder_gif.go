// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imagetoc

import (
	"errors"
	"fmt"
)

const (
	gifExtension       = 0x21
	gifImageDescriptor = 0x2c
	gifTrailer         = 0x3b

	gifFlagColorTable = 0x80
	gifFlagInterlace  = 0x40

	// Signature, version and logical screen descriptor.
	gifHeaderSize = 13
	// Separator, position, size and flags.
	gifImageDescriptorSize = 10
)

var errGIFCorrupt = errors.New("gif: corrupt block structure")

type gifScanState int

const (
	gifScanExtensions gifScanState = iota
	gifScanImage
	gifScanDone
)

// gifScanner walks the block structure of a GIF file held in memory.
// A frame is counted once its image data has been skipped completely;
// corrupt or truncated data ends the walk and drops the frame in progress.
type gifScanner struct {
	b     byteView
	off   int
	state gifScanState

	frames     int
	sawImage   bool
	interlaced bool // first image

	err error
}

func newGIFScanner(b []byte) *gifScanner {
	s := &gifScanner{b: byteView(b)}
	flags, ok := s.b.uint8At(10)
	if !ok {
		s.fail("short header")
		return s
	}
	s.off = gifHeaderSize
	if flags&gifFlagColorTable != 0 {
		s.off += colorTableSize(flags)
	}
	return s
}

// colorTableSize returns the size in bytes of the color table announced in flags.
func colorTableSize(flags uint8) int {
	return 3 * (2 << (flags & 7))
}

func (s *gifScanner) run() int {
	for s.state != gifScanDone {
		switch s.state {
		case gifScanExtensions:
			s.stepExtensions()
		case gifScanImage:
			s.stepImage()
		}
	}
	return s.frames
}

func (s *gifScanner) fail(format string, args ...any) {
	s.err = fmt.Errorf("%w: %s at offset %d", errGIFCorrupt, fmt.Sprintf(format, args...), s.off)
	s.state = gifScanDone
}

// stepExtensions handles one block while looking for the next image.
func (s *gifScanner) stepExtensions() {
	tag, ok := s.b.uint8At(s.off)
	if !ok {
		s.fail("unexpected end of data")
		return
	}
	switch tag {
	case gifTrailer:
		s.state = gifScanDone
	case gifExtension:
		// Introducer and label, then the data blocks.
		s.off += 2
		if !s.skipSubBlocks() {
			s.fail("extension truncated")
		}
	case gifImageDescriptor:
		s.state = gifScanImage
	default:
		s.fail("unexpected block 0x%02x", tag)
	}
}

// stepImage skips one image descriptor and its data.
func (s *gifScanner) stepImage() {
	flags, ok := s.b.uint8At(s.off + gifImageDescriptorSize - 1)
	if !ok {
		s.fail("image descriptor truncated")
		return
	}
	if !s.sawImage {
		s.sawImage = true
		s.interlaced = flags&gifFlagInterlace != 0
	}
	s.off += gifImageDescriptorSize
	if flags&gifFlagColorTable != 0 {
		s.off += colorTableSize(flags)
	}
	s.off++ // LZW minimum code size
	if !s.skipSubBlocks() {
		s.fail("image data truncated")
		return
	}

	s.frames++

	if tag, ok := s.b.uint8At(s.off); !ok || tag == gifTrailer {
		s.state = gifScanDone
		return
	}
	s.state = gifScanExtensions
}

// skipSubBlocks skips a chain of length prefixed sub-blocks and its zero terminator.
// It reports false if the chain runs past the end of the data.
func (s *gifScanner) skipSubBlocks() bool {
	for {
		n, ok := s.b.uint8At(s.off)
		if !ok {
			return false
		}
		s.off++
		if n == 0 {
			return true
		}
		s.off += int(n)
		if s.off > len(s.b) {
			return false
		}
	}
}

type imageDecoderGIF struct {
	*baseDecoder
}

func (e *imageDecoderGIF) extract() {
	h := e.header
	e.info.Compression = CompressionLZW
	e.info.Width = h.u16le(6)
	e.info.Height = h.u16le(8)
	e.info.BitsPerPixel = h.u8(10)&7 + 1

	var s *gifScanner
	err := e.withFile(e.opts.LimitFileSize, func(b []byte) {
		s = newGIFScanner(b)
		s.run()
	})
	if err != nil {
		e.opts.Warnf("gif: frames not counted: %v", err)
		return
	}

	if s.err != nil {
		e.opts.Warnf("%v", s.err)
	}
	e.info.Frames = s.frames
	e.info.HasFrameCount = true

	if s.sawImage {
		if s.interlaced {
			e.addDetail("Interlaced")
		} else {
			e.addDetail("Not interlaced")
		}
	}
}
