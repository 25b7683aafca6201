// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package arena provides a typed arena with compressed pointers.
//
// An [Arena] owns every value allocated through it for its whole lifetime:
// there is no per-value deallocation, and a value's address never changes
// once allocated. Everything is released at once when the arena becomes
// unreachable.
package arena

import (
	"fmt"
	"math/bits"
	"strings"
)

// blockMinShift is the log2 of the capacity of an arena's first block.
const (
	blockMinShift = 4
	blockMinLen   = 1 << blockMinShift
)

// Untyped is an untyped arena pointer.
//
// The value of a pointer is one plus the number of values allocated in the
// arena before it, so the zero value is nil.
type Untyped uint32

// Nil returns whether this pointer is nil.
func (p Untyped) Nil() bool {
	return p == 0
}

// Pointer is a compressed pointer into an [Arena] of Ts.
//
// It cannot be dereferenced directly; see [Pointer.In]. The zero value is
// nil.
type Pointer[T any] Untyped

// Nil returns whether this pointer is nil.
func (p Pointer[T]) Nil() bool {
	return Untyped(p).Nil()
}

// In dereferences this pointer in the given arena.
//
// arena must be the arena that allocated this pointer; otherwise this
// returns an arbitrary value or panics. Panics if p is nil.
func (p Pointer[T]) In(arena *Arena[T]) *T {
	return arena.Deref(p)
}

// Arena is a slice of Ts that never moves its elements.
//
// Instead of reallocating on growth, the arena maintains a table of
// exponentially growing blocks. Dereferencing a [Pointer] stays O(1) at the
// cost of one extra pointer load.
//
// A zero Arena is empty and ready to use.
type Arena[T any] struct {
	// Invariants:
	// 1. cap(blocks[0]) == blockMinLen.
	// 2. cap(blocks[n]) == 2*cap(blocks[n-1]).
	// 3. len(blocks[n]) == cap(blocks[n]) for all but the last block.
	blocks [][]T
}

// New allocates value on the arena and returns its pointer.
func (a *Arena[T]) New(value T) Pointer[T] {
	if a.blocks == nil {
		a.blocks = [][]T{make([]T, 0, blockMinLen)}
	}

	last := &a.blocks[len(a.blocks)-1]
	if len(*last) == cap(*last) {
		a.blocks = append(a.blocks, make([]T, 0, 2*cap(*last)))
		last = &a.blocks[len(a.blocks)-1]
	}

	*last = append(*last, value)
	return Pointer[T](a.Len())
}

// Deref dereferences a pointer allocated by this arena.
//
// Panics if p is nil or was not allocated by this arena.
func (a *Arena[T]) Deref(p Pointer[T]) *T {
	return a.At(Untyped(p))
}

// At dereferences an untyped arena pointer, as if by [Arena.Deref].
func (a *Arena[T]) At(p Untyped) *T {
	if p.Nil() {
		a = nil // Trigger an ordinary nil dereference on purpose.
	}
	block, idx := a.locate(int(p) - 1)
	return &a.blocks[block][idx]
}

// Len returns the number of values allocated so far.
func (a *Arena[T]) Len() int {
	if len(a.blocks) == 0 {
		return 0
	}

	// Only the last block can be partly filled.
	return a.lenOfFirstNBlocks(len(a.blocks)-1) + len(a.blocks[len(a.blocks)-1])
}

// All iterates over every allocated value in allocation order, paired with
// its pointer.
func (a *Arena[T]) All(yield func(Pointer[T], *T) bool) {
	var n Untyped
	for _, block := range a.blocks {
		for i := range block {
			n++
			if !yield(Pointer[T](n), &block[i]) {
				return
			}
		}
	}
}

// String implements [fmt.Stringer].
func (a *Arena[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	// Iterate by hand so the block boundaries show through.
	for i, block := range a.blocks {
		if i != 0 {
			b.WriteByte('|')
		}
		for j, v := range block {
			if j != 0 {
				b.WriteByte(' ')
			}
			fmt.Fprint(&b, v)
		}
	}
	b.WriteByte(']')
	return b.String()
}

// lenOfFirstNBlocks returns the total capacity of the first n blocks.
func (*Arena[T]) lenOfFirstNBlocks(n int) int {
	// The blocks double in capacity, so
	//
	//	2^m + 2^(m+1) + ... + 2^(n+m-1) = 2^(n+m) - 2^m
	//
	// where m is blockMinShift.
	return max(0, blockMinLen<<n-blockMinLen)
}

// locate converts an index into (block, offset) coordinates, bounds-checking
// it against the allocated length.
func (a *Arena[T]) locate(idx int) (int, int) {
	if idx < 0 || idx >= a.Len() {
		panic(fmt.Sprintf("arena: pointer out of range: %#x", idx))
	}

	// The cumulative starting index of block n is 2^(n+m) - 2^m, where m is
	// blockMinShift. Adding 2^m to idx puts the high-order bit of the sum at
	// position n+m+1 for any idx inside block n, from which n can be
	// recovered directly.
	block := bits.UintSize - bits.LeadingZeros(uint(idx)+blockMinLen)
	block -= blockMinShift + 1

	idx -= a.lenOfFirstNBlocks(block)
	return block, idx
}
