// Copyright (c) 2024, The hcpack Authors.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"io"

	"github.com/icza/bitio"
)

const headerBits = 32

func writeHeader(w *bitio.Writer, n uint32) error {
	return w.WriteBits(uint64(n), headerBits)
}

func readHeader(r *bitio.Reader) (uint32, error) {
	n, err := r.ReadBits(headerBits)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return 0, ErrEndOfStream
	}
	return uint32(n), err
}
