// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	hexDigits    = "0123456789abcdef"
	bytesPerLine = 16
)

// hexWriter writes everything written to it as comma separated C hex
// literals, bytesPerLine to a tab indented line.
// Errors are left in the underlying bufio.Writer and reported by Flush.
type hexWriter struct {
	w *bufio.Writer
	n int64
}

func newHexWriter(w *bufio.Writer) *hexWriter {
	return &hexWriter{w: w}
}

func (h *hexWriter) Write(p []byte) (int, error) {
	for _, b := range p {
		switch {
		case h.n == 0:
			h.w.WriteByte('\t')
		case h.n%bytesPerLine == 0:
			h.w.WriteString(",\n\t")
		default:
			h.w.WriteByte(',')
		}
		h.w.WriteString("0x")
		h.w.WriteByte(hexDigits[b>>4])
		h.w.WriteByte(hexDigits[b&0x0f])
		h.n++
	}
	return len(p), nil
}

// Close ends the last line.
func (h *hexWriter) Close() error {
	if h.n > 0 {
		return h.w.WriteByte('\n')
	}
	return nil
}

// leafName returns the file name without directory and extension.
// Both slash and backslash separate directories.
func leafName(filename string) string {
	if i := strings.LastIndexAny(filename, `/\`); i >= 0 {
		filename = filename[i+1:]
	}
	if i := strings.LastIndexByte(filename, '.'); i >= 0 {
		filename = filename[:i]
	}
	return filename
}

var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// fixName turns name into a valid C identifier.
// Accented letters lose their accents; any other character outside
// [A-Za-z0-9_] becomes an underscore.
func fixName(name string) string {
	if s, _, err := transform.String(foldDiacritics, name); err == nil {
		name = s
	}
	if name == "" {
		return "_"
	}

	var sb strings.Builder
	if name[0] >= '0' && name[0] <= '9' {
		sb.WriteByte('_')
	}
	for _, r := range name {
		if isIdentRune(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

func isIdentRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
