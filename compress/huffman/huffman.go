// Copyright (c) 2024, The hcpack Authors.
// SPDX-License-Identifier: BSD-3-Clause

// Package huffman implements a static Huffman compressed data format.
//
// A stream is a 4-byte big-endian length N, the pre-order serialized coding
// tree, then the N codes packed most significant bit first and zero padded to
// a whole byte. An empty input is encoded as the length header alone.
package huffman

import (
	"errors"
	"io"
	"math"

	"github.com/hcpack/hcpack/compress/huffman/internal/hctree"
)

// MaxInputSize is the largest input the 4-byte length header can describe.
const MaxInputSize = math.MaxUint32

var (
	ErrEndOfStream   = hctree.ErrEndOfStream
	ErrInvalidSymbol = hctree.ErrInvalidSymbol
	ErrMalformedTree = hctree.ErrMalformedTree
	ErrInputTooLarge = errors.New("huffman: input larger than 4GiB-1 bytes")
)

var errWriteAfterClose = errors.New("huffman: write after close")

// Resetter resets a ReadCloser returned by NewReader to read from r.
type Resetter interface {
	Reset(r io.Reader) error
}
