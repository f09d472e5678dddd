// Copyright (c) 2024, The hcpack Authors.
// SPDX-License-Identifier: BSD-3-Clause

// Command decompress restores a file written by compress.
//
//	decompress [-v] <infile> <outfile>
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hcpack/hcpack/compress/huffman"
)

var v = flag.Bool("v", false, "log sizes")

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: decompress [-v] <infile> <outfile>")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	n, err := run(flag.Arg(0), flag.Arg(1))
	if err != nil {
		log.Fatalln(err)
	}
	if *v {
		log.Printf("%s: %d bytes restored", flag.Arg(0), n)
	}
}

func run(input, output string) (n int64, err error) {
	in, err := os.Open(input)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.Create(output)
	if err != nil {
		return 0, err
	}
	bw := bufio.NewWriter(out)
	n, err = huffman.Decode(bw, in)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("decompress %s: %w", input, err)
	}
	return n, nil
}
