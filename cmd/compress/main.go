// Copyright (c) 2024, The hcpack Authors.
// SPDX-License-Identifier: BSD-3-Clause

// Command compress Huffman-codes one file into another.
//
//	compress [-v] <infile> <outfile>
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hcpack/hcpack/compress/huffman"
)

var v = flag.Bool("v", false, "log sizes and compression ratio")

// encode is replaced in tests.
var encode = huffman.Encode

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: compress [-v] <infile> <outfile>")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	in, out, err := run(flag.Arg(0), flag.Arg(1))
	if err != nil {
		log.Fatalln(err)
	}
	if *v {
		log.Printf("%s: %d -> %d bytes (%.2f)", flag.Arg(0), in, out, ratio(out, in))
	}
}

func run(input, output string) (in, out int64, err error) {
	data, err := os.ReadFile(input)
	if err != nil {
		return 0, 0, err
	}
	f, err := os.Create(output)
	if err != nil {
		return 0, 0, err
	}
	if err = encode(f, data); err != nil {
		f.Close()
		os.Remove(output)
		return 0, 0, fmt.Errorf("compress %s: %w", input, err)
	}
	if err = f.Close(); err != nil {
		return 0, 0, err
	}
	fi, err := os.Stat(output)
	if err != nil {
		return 0, 0, err
	}
	return int64(len(data)), fi.Size(), nil
}

func ratio(a, b int64) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b)
}
