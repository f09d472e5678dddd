// Copyright (c) 2024, The hcpack Authors.
// SPDX-License-Identifier: BSD-3-Clause

package hctree

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrEndOfStream is returned when the bit source runs out before a
	// symbol or tree has been fully read.
	ErrEndOfStream = errors.New("end of stream")
	// ErrInvalidSymbol is returned when encoding a byte that has no leaf.
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrMalformedTree is returned when a serialized tree cannot form a
	// strict binary prefix tree.
	ErrMalformedTree = errors.New("malformed tree")
)

func isEOF(err error) bool {
	return err == io.EOF || err == io.ErrUnexpectedEOF
}

func endOfStream(err error) error {
	if isEOF(err) {
		return ErrEndOfStream
	}
	return err
}

func malformed(err error) error {
	if isEOF(err) {
		return fmt.Errorf("%w: %w", ErrMalformedTree, ErrEndOfStream)
	}
	return err
}
