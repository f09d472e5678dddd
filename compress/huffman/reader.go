// Copyright (c) 2024, The hcpack Authors.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"fmt"
	"io"

	"github.com/icza/bitio"

	"github.com/hcpack/hcpack/compress/huffman/internal/hctree"
)

// NewReader returns a ReadCloser decompressing the stream read from r.
// The header and tree are read on the first call to Read. Reads past the end
// of the stream are not guaranteed to leave r positioned after it.
func NewReader(r io.Reader) io.ReadCloser {
	d := &decompressor{}
	d.Reset(r)
	return d
}

type decompressor struct {
	br      *bitio.Reader
	tree    *hctree.Tree
	started bool   // header and tree have been read
	total   uint32 // symbols in the stream
	remain  uint32 // symbols still to decode
	err     error
}

func (d *decompressor) Reset(r io.Reader) error {
	*d = decompressor{br: bitio.NewReader(r)}
	return nil
}

func (d *decompressor) Close() error {
	return nil
}

func (d *decompressor) Read(b []byte) (n int, err error) {
	if d.err != nil {
		return 0, d.err
	}
	if !d.started {
		if d.err = d.start(); d.err != nil {
			return 0, d.err
		}
	}
	for n < len(b) && d.remain > 0 {
		sym, err := d.tree.Decode(d.br)
		if err != nil {
			d.err = fmt.Errorf("huffman: symbol %d of %d: %w", d.total-d.remain, d.total, err)
			return n, d.err
		}
		b[n] = sym
		n++
		d.remain--
	}
	if d.remain == 0 {
		d.err = io.EOF
	}
	if n == 0 {
		return 0, d.err
	}
	return n, nil
}

func (d *decompressor) start() (err error) {
	d.started = true
	d.total, err = readHeader(d.br)
	if err != nil {
		return fmt.Errorf("huffman: reading header: %w", err)
	}
	d.remain = d.total
	if d.total == 0 {
		return nil
	}
	d.tree, err = hctree.Deserialize(d.br)
	if err != nil {
		return fmt.Errorf("huffman: reading tree: %w", err)
	}
	return nil
}

// Decode decompresses the stream read from src into dst and returns the
// number of bytes written.
func Decode(dst io.Writer, src io.Reader) (int64, error) {
	return io.Copy(dst, NewReader(src))
}
