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

package ast

import (
	"fmt"

	"github.com/bufbuild/slate/internal/arena"
	"github.com/bufbuild/slate/source"
)

// Context is where all of the book-keeping for the expression tree of a
// particular file is kept.
//
// The Context arena-allocates every node and owns its memory until the
// Context itself becomes unreachable; holding any node handle past that
// point is a dangling reference. Most exported types carry their Context
// with them, so it rarely needs to be passed around explicitly.
type Context struct {
	file  *source.File
	exprs exprs
}

// exprs is storage for the various kinds of expression nodes in a Context.
type exprs struct {
	literals  arena.Arena[rawExprLiteral]
	declRefs  arena.Arena[rawExprDeclRef]
	tuples    arena.Arena[rawExprTuple]
	applies   arena.Arena[rawExprApply]
	sequences arena.Arena[rawExprSequence]
	braces    arena.Arena[rawExprBrace]
	closures  arena.Arena[rawExprClosure]
	binaries  arena.Arena[rawExprBinary]
}

// NewContext creates a fresh context for a particular file.
func NewContext(file *source.File) *Context {
	return &Context{file: file}
}

// File returns the source file this context's nodes refer into.
func (c *Context) File() *source.File {
	return c.file
}

// Nodes returns the constructor surface for this context.
func (c *Context) Nodes() *Nodes {
	return (*Nodes)(c)
}

// Nodes provides storage for expression nodes, and is used to construct
// new ones.
//
// Every node is allocated here; there is no other constructor path.
type Nodes Context

// Context returns the [Context] this Nodes allocates into.
func (n *Nodes) Context() *Context {
	return (*Context)(n)
}

// panicIfNotOurs checks that each node is either zero or belongs to this
// context, and panics if not.
//
// Nodes from different contexts must never be mixed in one tree: their
// arena pointers would dangle into the wrong arenas.
func (n *Nodes) panicIfNotOurs(that ...ExprAny) {
	for _, e := range that {
		if e.ctx == nil || e.ctx == n.Context() {
			continue
		}
		panic(fmt.Sprintf(
			"slate/ast: attempt to mix nodes from different contexts: %q and %q",
			n.Context().File().Path(), e.ctx.File().Path(),
		))
	}
}

// withContext is embedded in node handles to attach a Context to them.
type withContext struct {
	ctx *Context
}

// Context returns this handle's context.
func (w withContext) Context() *Context {
	return w.ctx
}

// IsZero returns whether this is the zero handle.
func (w withContext) IsZero() bool {
	return w.ctx == nil
}
