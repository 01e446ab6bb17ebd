// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

// Command imagetoc writes a file to standard output as a C byte array, preceded
// by a comment describing the image it contains.
//
// Usage:
//
//	imagetoc [-details] [-exif] [-v] <filename> > image.h
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bep/imagetoc"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	details  bool
	readEXIF bool
	logger   *log.Logger // nil unless warnings are wanted
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "imagetoc: ", 0)

	var cfg config
	fs := flag.NewFlagSet("imagetoc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&cfg.details, "details", false, "add format details (interlacing, subsampling, TIFF layout) to the comment")
	fs.BoolVar(&cfg.readEXIF, "exif", false, "decode EXIF in JPEG files, implies -details")
	verbose := fs.Bool("v", false, "log warnings about malformed image data to stderr")
	fs.Usage = func() {
		w := fs.Output()
		fmt.Fprintln(w, "Usage: imagetoc [flags] <filename>")
		fmt.Fprintln(w, "Output is written to stdout, e.g.:")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "\timagetoc ./test.jpg > test.h")
		fmt.Fprintln(w)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if fs.NArg() != 1 {
		fs.SetOutput(stdout)
		fs.Usage()
		return 0
	}

	if cfg.readEXIF {
		cfg.details = true
	}
	if *verbose {
		cfg.logger = logger
	}

	if err := convert(fs.Arg(0), stdout, cfg); err != nil {
		logger.Print(err)
		return 1
	}
	return 0
}

// convert writes the C header for filename to w.
func convert(filename string, w io.Writer, cfg config) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("unable to open file: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return err
	}
	size := fi.Size()

	opts := imagetoc.Options{
		R:        f,
		Size:     size,
		ReadEXIF: cfg.readEXIF,
	}
	if cfg.logger != nil {
		opts.Warnf = cfg.logger.Printf
	}
	info, err := imagetoc.Decode(opts)
	if err != nil {
		return err
	}

	leaf := leafName(filename)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "// Created with imagetoc\n//\n// %s\n// Data size = %d bytes\n//\n", leaf, size)
	bw.WriteString(info.Comment())
	if cfg.details && info.Details != "" {
		fmt.Fprintf(bw, "// %s\n//\n", info.Details)
	}
	bw.WriteString("// for non-Arduino builds...\n")
	bw.WriteString("#ifndef PROGMEM\n#define PROGMEM\n#endif\n")
	fmt.Fprintf(bw, "const uint8_t %s[] PROGMEM = {\n", fixName(leaf))

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	hw := newHexWriter(bw)
	if _, err := io.Copy(hw, f); err != nil {
		return fmt.Errorf("read %s: %w", filename, err)
	}
	hw.Close()

	bw.WriteString("};\n")
	return bw.Flush()
}
