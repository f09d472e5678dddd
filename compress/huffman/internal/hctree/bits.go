// Copyright (c) 2024, The hcpack Authors.
// SPDX-License-Identifier: BSD-3-Clause

package hctree

// BitWriter is the write side of a bit channel.
// Bits are emitted most significant first. *bitio.Writer implements it.
type BitWriter interface {
	WriteBool(b bool) error
	WriteByte(b byte) error
}

// BitReader is the read side of a bit channel. *bitio.Reader implements it.
// Both methods return io.EOF once the source is exhausted.
type BitReader interface {
	ReadBool() (bool, error)
	ReadByte() (byte, error)
}

func branch(bit bool) int {
	if bit {
		return 1
	}
	return 0
}
