// Copyright (c) 2024, The hcpack Authors.
// SPDX-License-Identifier: BSD-3-Clause

package hctree

import (
	"io"
	"strings"
)

// bitSlice is an in-memory bit channel.
type bitSlice struct {
	bits []bool
	pos  int
}

func (b *bitSlice) WriteBool(v bool) error {
	b.bits = append(b.bits, v)
	return nil
}

func (b *bitSlice) WriteByte(v byte) error {
	for i := 7; i >= 0; i-- {
		b.bits = append(b.bits, v>>i&1 == 1)
	}
	return nil
}

func (b *bitSlice) ReadBool() (bool, error) {
	if b.pos >= len(b.bits) {
		return false, io.EOF
	}
	b.pos++
	return b.bits[b.pos-1], nil
}

func (b *bitSlice) ReadByte() (v byte, err error) {
	if len(b.bits)-b.pos < 8 {
		return 0, io.ErrUnexpectedEOF
	}
	for i := 0; i < 8; i++ {
		v <<= 1
		if b.bits[b.pos] {
			v |= 1
		}
		b.pos++
	}
	return v, nil
}

func (b *bitSlice) String() string {
	var sb strings.Builder
	for _, v := range b.bits {
		if v {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func parseBits(s string) *bitSlice {
	b := &bitSlice{}
	for _, c := range s {
		b.bits = append(b.bits, c == '1')
	}
	return b
}

// noBits fails every read.
type noBits struct{}

func (noBits) ReadBool() (bool, error) { return false, io.ErrNoProgress }
func (noBits) ReadByte() (byte, error) { return 0, io.ErrNoProgress }
