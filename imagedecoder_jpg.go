// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imagetoc

import (
	"fmt"

	"github.com/rwcarlsen/goexif/exif"
)

const (
	markerSOF0 = 0xffc0
	markerAPP0 = 0xffe0
	// Masks SOF0-SOF3 and APP0-APP3 into one value each.
	jpegMarkerMask = 0xfffc
	// Values below this are not markers.
	jpegMinMarker = 0xff00

	jpegWindowSize = 32
	jpegMaxResyncs = jpegWindowSize / 2
)

type jpegScanState int

const (
	jpegScanMarkers jpegScanState = iota
	jpegFound
	jpegNotFound
)

// jpegScanner walks the marker segments of a JPEG stream looking for the
// start of frame. The stream is read in small windows, one per segment.
type jpegScanner struct {
	r     *streamReader
	state jpegScanState

	window    byteView
	windowPos int64 // file offset of window[0]
	i         int   // cursor in window
	resyncs   int   // invalid markers skipped in the current window

	exifPos int64 // file offset of an APP1 Exif segment, -1 if none seen
}

func newJPEGScanner(r *streamReader, header byteView) *jpegScanner {
	return &jpegScanner{
		r:       r,
		window:  header.slice(0, jpegWindowSize),
		i:       2, // skip SOI
		exifPos: -1,
	}
}

func (s *jpegScanner) pos() int64 {
	return s.windowPos + int64(s.i)
}

func (s *jpegScanner) refill(pos int64) {
	s.window = byteView(s.r.readAt(pos, jpegWindowSize))
	s.windowPos = pos
	s.i = 0
}

// ensure makes sure n bytes are available at the cursor, reading a new window if needed.
func (s *jpegScanner) ensure(n int) bool {
	if s.i+n <= len(s.window) {
		return true
	}
	s.refill(s.pos())
	return n <= len(s.window)
}

func (s *jpegScanner) run() jpegScanState {
	for s.state == jpegScanMarkers {
		s.step()
	}
	return s.state
}

// step examines the marker at the cursor and moves to the next one.
func (s *jpegScanner) step() {
	if s.pos() >= s.r.size || !s.ensure(2) {
		s.state = jpegNotFound
		return
	}

	marker := s.window.u16be(s.i) & jpegMarkerMask
	if marker < jpegMinMarker {
		// Some encoders leave garbage between segments; skip 2 bytes and try to resync.
		s.resyncs++
		if s.resyncs > jpegMaxResyncs {
			s.state = jpegNotFound
			return
		}
		s.i += 2
		return
	}

	if marker == markerSOF0 {
		if s.ensure(12) {
			s.state = jpegFound
		} else {
			s.state = jpegNotFound
		}
		return
	}

	if !s.ensure(4) {
		s.state = jpegNotFound
		return
	}

	if marker == markerAPP0 && s.ensure(6) && s.window.u8(s.i+4) == 'E' && s.window.u8(s.i+5) == 'x' {
		s.exifPos = s.pos()
	}

	// The length includes the two length bytes but not the marker.
	next := s.pos() + 2 + int64(s.window.u16be(s.i+2))
	if next >= s.r.size {
		s.state = jpegNotFound
		return
	}
	s.refill(next)
	s.resyncs = 0
}

// sof returns the start of frame segment. Only valid in the jpegFound state.
func (s *jpegScanner) sof() byteView {
	return s.window.slice(s.i, 12)
}

type imageDecoderJPEG struct {
	*baseDecoder
}

func (e *imageDecoderJPEG) extract() {
	e.info.Compression = CompressionJPEG

	s := newJPEGScanner(e.streamReader, e.header)
	if s.run() != jpegFound {
		e.opts.Warnf("jpeg: no start of frame marker found")
		// Without dimensions the file is reported as unrecognized.
		*e.info = Info{}
		return
	}

	sof := s.sof()
	bitsPerSample := sof.u8(4)
	e.info.Height = sof.u16be(5)
	e.info.Width = sof.u16be(7)
	e.info.BitsPerPixel = bitsPerSample * sof.u8(9) // bits per sample * components

	subSample := sof.u8(11) // sampling factors of the first component
	e.addDetail("color subsampling = %d:%d", subSample>>4, subSample&0xf)

	if e.opts.ReadEXIF && s.exifPos >= 0 {
		if err := e.handleEXIF(); err != nil {
			e.opts.Warnf("jpeg: %v", err)
		}
	}
}

func (e *imageDecoderJPEG) handleEXIF() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("exif: %v", r)
		}
	}()

	if !e.seek(0) {
		return e.readErr
	}
	x, err := exif.Decode(e.r)
	if err != nil {
		if x == nil || exif.IsCriticalError(err) {
			return err
		}
		// Broken sub-IFDs; IFD0 is still usable.
		e.opts.Warnf("jpeg: %v", err)
	}

	if tag, err := x.Get(exif.Orientation); err == nil {
		if v, err := tag.Int(0); err == nil {
			e.addDetail("EXIF orientation = %d", v)
		}
	}
	if thumb, err := x.JpegThumbnail(); err == nil {
		e.addDetail("EXIF thumbnail = %d bytes", len(thumb))
	}

	return nil
}
