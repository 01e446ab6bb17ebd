// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package imagetoc

import (
	"bytes"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestFileBufferPool(t *testing.T) {
	c := qt.New(t)

	large := getFileBuffer(maxPooledFileBuffer + 1)
	c.Assert(large.b, qt.HasLen, maxPooledFileBuffer+1)
	putFileBuffer(large)

	for i := 0; i < 10; i++ {
		br := getFileBuffer(1)
		c.Assert(cap(br.b) <= maxPooledFileBuffer, qt.IsTrue)
		putFileBuffer(br)
	}
}

func TestStreamReaderWithFile(t *testing.T) {
	c := qt.New(t)

	data := bytes.Repeat([]byte{0x42}, 300)
	r := &streamReader{r: bytes.NewReader(data), size: int64(len(data))}

	var n int
	c.Assert(r.withFile(1000, func(b []byte) { n = len(b) }), qt.IsNil)
	c.Assert(n, qt.Equals, 300)

	err := r.withFile(100, func(b []byte) { c.Fatal("called") })
	c.Assert(err, qt.ErrorIs, errFileTooLarge)
	c.Assert(r.readErr, qt.IsNil)
}
