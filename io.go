// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imagetoc

import (
	"errors"
	"fmt"
	"io"
	"sync"
)

// Larger buffers are left to the garbage collector.
const maxPooledFileBuffer = 1 << 20

type fileBuffer struct {
	b []byte
}

var fileBufferPool = &sync.Pool{
	New: func() any {
		return &fileBuffer{
			b: make([]byte, 1024),
		}
	},
}

func getFileBuffer(length int) *fileBuffer {
	b := fileBufferPool.Get().(*fileBuffer)
	if length > cap(b.b) {
		b.b = make([]byte, length)
	}
	b.b = b.b[:length]
	return b
}

func putFileBuffer(br *fileBuffer) {
	if cap(br.b) > maxPooledFileBuffer {
		return
	}
	br.b = br.b[:0]
	fileBufferPool.Put(br)
}

var errFileTooLarge = errors.New("file too large")

// streamReader reads byte ranges from a ReadSeeker of known size.
// Reads past the end of the stream are silently shortened.
// Any other read error is recorded in readErr, and all later reads return nothing.
// Note that this is not thread safe.
type streamReader struct {
	r    io.ReadSeeker
	size int64

	readErr error
}

// readAt reads up to n bytes starting at pos.
func (e *streamReader) readAt(pos int64, n int) []byte {
	if e.readErr != nil || pos < 0 || pos >= e.size || n <= 0 {
		return nil
	}
	if rest := e.size - pos; int64(n) > rest {
		n = int(rest)
	}
	if !e.seek(pos) {
		return nil
	}
	b := make([]byte, n)
	n2, err := io.ReadFull(e.r, b)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		e.stop(fmt.Errorf("imagetoc: read %d bytes at %d: %w", n, pos, err))
		return nil
	}
	return b[:n2]
}

// withFile loads the whole stream into a pooled buffer and passes it to f.
// The buffer is only valid during the call.
func (e *streamReader) withFile(limit int64, f func(b []byte)) error {
	if e.size > limit {
		return fmt.Errorf("%w: %d bytes exceeds limit %d", errFileTooLarge, e.size, limit)
	}
	if !e.seek(0) {
		return e.readErr
	}
	br := getFileBuffer(int(e.size))
	defer putFileBuffer(br)

	n, err := io.ReadFull(e.r, br.b)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		e.stop(fmt.Errorf("imagetoc: read file: %w", err))
		return e.readErr
	}
	f(br.b[:n])
	return nil
}

func (e *streamReader) seek(pos int64) bool {
	if _, err := e.r.Seek(pos, io.SeekStart); err != nil {
		e.stop(fmt.Errorf("imagetoc: seek to %d: %w", pos, err))
		return false
	}
	return true
}

func (e *streamReader) stop(err error) {
	if e.readErr == nil {
		e.readErr = err
	}
}
