// Copyright (c) 2024, The hcpack Authors.
// SPDX-License-Identifier: BSD-3-Clause

package hctree

// NumSymbols is the size of the byte alphabet.
const NumSymbols = 256

// FrequencyTable holds the occurrence count of every byte value.
type FrequencyTable [NumSymbols]uint64

// Count returns the frequency table of buf.
func Count(buf []byte) (f FrequencyTable) {
	f.Add(buf)
	return f
}

// Add accumulates the bytes of buf into f.
func (f *FrequencyTable) Add(buf []byte) {
	for _, b := range buf {
		f[b]++
	}
}

// Total is the number of bytes counted.
func (f FrequencyTable) Total() (n uint64) {
	for _, v := range f {
		n += v
	}
	return n
}

// Distinct is the number of symbols with a non-zero count.
func (f FrequencyTable) Distinct() (n int) {
	for _, v := range f {
		if v != 0 {
			n++
		}
	}
	return n
}
