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

// Package types provides the semantic types that type inference assigns to
// expression nodes.
//
// Types are interned in a [Table]: structurally identical types are the
// same [Type] value, so handles compare with ==. The zero [Type] means
// "not yet resolved".
package types

import (
	"strconv"
	"strings"

	"github.com/bufbuild/slate/internal/arena"
)

const (
	kindPrimitive typeKind = iota + 1
	kindUnit
	kindTuple
	kindFunc
)

type typeKind byte

// Type is a handle to an interned type.
//
// The zero value means the type is not yet resolved.
type Type struct {
	table *Table
	ptr   arena.Pointer[rawType]
}

type rawType struct {
	kind typeKind
	name string // Primitive name; empty otherwise.

	// Tuple elements, or for a function type, the parameter followed by
	// the result.
	elems []arena.Pointer[rawType]
}

// Table interns types for one compilation session.
//
// A zero Table is empty and ready to use. It is not safe for concurrent
// use.
type Table struct {
	arena    arena.Arena[rawType]
	interned map[string]arena.Pointer[rawType]
}

// Unit returns the unit type (), the type of a tuple with no elements.
func (t *Table) Unit() Type {
	return t.intern(rawType{kind: kindUnit})
}

// Primitive returns the named primitive type, such as "int".
func (t *Table) Primitive(name string) Type {
	if name == "" {
		panic("slate/types: passed empty name to Primitive")
	}
	return t.intern(rawType{kind: kindPrimitive, name: name})
}

// Tuple returns the tuple type over the given element types.
//
// Tuples decay: a tuple with no elements is the unit type, and a tuple
// with exactly one element is that element's type, not a distinct
// one-element tuple type.
func (t *Table) Tuple(elems ...Type) Type {
	switch len(elems) {
	case 0:
		return t.Unit()
	case 1:
		return elems[0]
	}

	raw := rawType{kind: kindTuple}
	for _, elem := range elems {
		t.check(elem)
		raw.elems = append(raw.elems, elem.ptr)
	}
	return t.intern(raw)
}

// Func returns the function type param -> result.
//
// Functions take exactly one parameter; multi-parameter functions take a
// tuple.
func (t *Table) Func(param, result Type) Type {
	t.check(param)
	t.check(result)
	return t.intern(rawType{kind: kindFunc, elems: []arena.Pointer[rawType]{param.ptr, result.ptr}})
}

// IsZero returns whether this is the zero (unresolved) type.
func (ty Type) IsZero() bool {
	return ty.table == nil
}

// IsUnit returns whether this is the unit type.
func (ty Type) IsUnit() bool {
	return !ty.IsZero() && ty.raw().kind == kindUnit
}

// String implements [fmt.Stringer].
//
// The rendering is deterministic: "int", "()", "(int, bool)",
// "(int) -> bool".
func (ty Type) String() string {
	if ty.IsZero() {
		return "<unresolved>"
	}

	var b strings.Builder
	ty.format(&b)
	return b.String()
}

func (ty Type) raw() *rawType {
	return ty.ptr.In(&ty.table.arena)
}

func (ty Type) format(b *strings.Builder) {
	raw := ty.raw()
	switch raw.kind {
	case kindPrimitive:
		b.WriteString(raw.name)
	case kindUnit:
		b.WriteString("()")
	case kindTuple:
		b.WriteByte('(')
		for i, elem := range raw.elems {
			if i != 0 {
				b.WriteString(", ")
			}
			Type{ty.table, elem}.format(b)
		}
		b.WriteByte(')')
	case kindFunc:
		b.WriteByte('(')
		Type{ty.table, raw.elems[0]}.format(b)
		b.WriteString(") -> ")
		Type{ty.table, raw.elems[1]}.format(b)
	}
}

// check panics if ty does not belong to this table.
func (t *Table) check(ty Type) {
	if ty.IsZero() {
		panic("slate/types: passed unresolved type to Table")
	}
	if ty.table != t {
		panic("slate/types: passed type owned by a different Table")
	}
}

func (t *Table) intern(raw rawType) Type {
	key := t.key(raw)
	if ptr, ok := t.interned[key]; ok {
		return Type{t, ptr}
	}

	ptr := t.arena.New(raw)
	if t.interned == nil {
		t.interned = make(map[string]arena.Pointer[rawType])
	}
	t.interned[key] = ptr
	return Type{t, ptr}
}

// key builds the interning key for a raw type. Element pointers are already
// interned, so their numeric values identify them.
func (t *Table) key(raw rawType) string {
	var b strings.Builder
	b.WriteByte(byte(raw.kind))
	b.WriteString(raw.name)
	for _, elem := range raw.elems {
		b.WriteByte(0)
		b.WriteString(strconv.FormatUint(uint64(elem), 10))
	}
	return b.String()
}
