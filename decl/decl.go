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

// Package decl provides the registry of named declarations that
// expressions refer to.
//
// The registry owns its declarations; expression nodes hold only weak
// [ID] handles into it. Tearing down an expression tree never tears down
// a declaration, and vice versa.
package decl

import (
	"fmt"

	"github.com/tidwall/btree"

	"github.com/bufbuild/slate/internal/arena"
	"github.com/bufbuild/slate/types"
)

// ID is a weak handle to a [Named] in a [Table].
//
// The zero value is nil: it refers to no declaration.
type ID uint32

// Nil returns whether this handle refers to no declaration.
func (id ID) Nil() bool {
	return id == 0
}

// String implements [fmt.Stringer].
func (id ID) String() string {
	if id.Nil() {
		return "decl#nil"
	}
	return fmt.Sprintf("decl#%d", uint32(id))
}

// Named is a named declaration: a variable, function, or operator that
// expressions can refer to by name.
type Named struct {
	name string
	loc  int

	ty types.Type
}

// Name returns this declaration's name.
func (d *Named) Name() string {
	return d.name
}

// Loc returns the byte offset of this declaration's site.
func (d *Named) Loc() int {
	return d.loc
}

// Type returns this declaration's resolved type, which is zero until type
// inference assigns it.
func (d *Named) Type() types.Type {
	return d.ty
}

// SetType records this declaration's type.
//
// The type is written exactly once; calling SetType on an already-typed
// declaration panics.
func (d *Named) SetType(ty types.Type) {
	if !d.ty.IsZero() {
		panic(fmt.Sprintf("slate/decl: type of %q set twice", d.name))
	}
	d.ty = ty
}

// Table is the registry of named declarations for one compilation session.
//
// A zero Table is empty and ready to use. It is not safe for concurrent
// use.
type Table struct {
	decls  arena.Arena[Named]
	byName btree.Map[string, ID]
}

// Declare adds a declaration with the given name and declaration site,
// returning its handle.
//
// Declaring a name that already exists shadows the previous declaration in
// [Table.Lookup]; the old handle remains valid.
func (t *Table) Declare(name string, loc int) ID {
	if name == "" {
		panic("slate/decl: passed empty name to Declare")
	}

	id := ID(t.decls.New(Named{name: name, loc: loc}))
	t.byName.Set(name, id)
	return id
}

// Lookup returns the handle for the given name, or the nil ID if the name
// is not declared.
func (t *Table) Lookup(name string) ID {
	id, _ := t.byName.Get(name)
	return id
}

// Get dereferences a handle. Panics if id is nil or not from this table.
func (t *Table) Get(id ID) *Named {
	return t.decls.At(arena.Untyped(id))
}

// Len returns the number of declarations, including shadowed ones.
func (t *Table) Len() int {
	return t.decls.Len()
}

// All iterates over the visible declarations in name order.
func (t *Table) All(yield func(name string, id ID) bool) {
	t.byName.Scan(yield)
}
