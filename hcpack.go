// Copyright (c) 2024, The hcpack Authors.
// SPDX-License-Identifier: BSD-3-Clause

// Package hcpack provides lossless byte-stream compression with static
// Huffman coding. The stream format and the streaming Writer and Reader live
// in compress/huffman; this package offers whole-buffer helpers on top.
package hcpack

import (
	"bytes"

	"github.com/hcpack/hcpack/compress/huffman"
)

// Compress returns the compressed form of src.
func Compress(src []byte) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, len(src)/2+64))
	if err := huffman.Encode(buf, src); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress returns the data of a stream produced by Compress.
func Decompress(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := huffman.Decode(&buf, bytes.NewReader(src)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
