// Copyright (c) 2024, The hcpack Authors.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"fmt"
	"io"

	"github.com/icza/bitio"

	"github.com/hcpack/hcpack/compress/huffman/internal/hctree"
)

// Writer compresses everything written to it. The coding tree depends on the
// whole input, so data is buffered and only written out by Close.
type Writer struct {
	err    error  // sticky error
	w      io.Writer
	buf    []byte // pending input
	closed bool
}

// NewWriter returns a Writer compressing into w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write buffers data for compression.
func (w *Writer) Write(data []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	if w.closed {
		return 0, errWriteAfterClose
	}
	if uint64(len(w.buf))+uint64(len(data)) > MaxInputSize {
		w.err = ErrInputTooLarge
		return 0, w.err
	}
	w.buf = append(w.buf, data...)
	return len(data), nil
}

// Close compresses the buffered input and writes the complete stream to the
// underlying writer. It does not close the underlying writer.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	if w.closed {
		return nil
	}
	w.closed = true
	w.err = Encode(w.w, w.buf)
	return w.err
}

// Reset discards the writer state and makes it write to under, reusing the
// input buffer.
func (w *Writer) Reset(under io.Writer) {
	w.err = nil
	w.w = under
	w.buf = w.buf[:0]
	w.closed = false
}

// Encode writes the compressed form of src to dst.
func Encode(dst io.Writer, src []byte) error {
	if uint64(len(src)) > MaxInputSize {
		return ErrInputTooLarge
	}
	bw := bitio.NewWriter(dst)
	if err := writeHeader(bw, uint32(len(src))); err != nil {
		return err
	}
	if len(src) > 0 {
		freq := hctree.Count(src)
		tree := hctree.Build(&freq)
		if err := tree.Serialize(bw); err != nil {
			return err
		}
		for i, b := range src {
			if err := tree.Encode(bw, b); err != nil {
				return fmt.Errorf("huffman: encoding byte %d: %w", i, err)
			}
		}
	}
	// flushes the last partial byte with zero bits
	return bw.Close()
}
