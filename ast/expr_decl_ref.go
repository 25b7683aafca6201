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

	"github.com/bufbuild/slate/decl"
	"github.com/bufbuild/slate/source"
)

// ExprDeclRef is a reference to a named declaration, like "x".
//
// The node holds a weak [decl.ID] handle into the session's [decl.Table];
// the declaration itself is owned by that table, never by the tree.
type ExprDeclRef struct{ exprImpl[rawExprDeclRef] }

type rawExprDeclRef struct {
	rawExprHeader
	ref decl.ID
	loc int32
}

// ExprDeclRefArgs is the arguments for [Nodes.NewExprDeclRef].
type ExprDeclRefArgs struct {
	// The referenced declaration. May be nil if the parser could not
	// resolve the name eagerly; name resolution then fills it in via
	// [ExprDeclRef.ResolveTo].
	Ref decl.ID
	// The byte offset of the referencing name.
	Loc int
}

// NewExprDeclRef creates a new ExprDeclRef node.
func (n *Nodes) NewExprDeclRef(args ExprDeclRefArgs) ExprDeclRef {
	c := n.Context()
	return ExprDeclRef{wrapExpr(c, &c.exprs.declRefs, c.exprs.declRefs.New(rawExprDeclRef{
		ref: args.Ref,
		loc: int32(args.Loc),
	}))}
}

// AsAny type-erases this node. See [ExprAny].
func (e ExprDeclRef) AsAny() ExprAny {
	if e.IsZero() {
		return ExprAny{}
	}
	return newExprAny(e.ctx, rawExpr{ExprKindDeclRef, e.ptr})
}

// Ref returns the referenced declaration, which is nil until either
// construction or name resolution provides it.
func (e ExprDeclRef) Ref() decl.ID {
	return e.raw.ref
}

// ResolveTo records the referenced declaration.
//
// Like the type slot, the reference is written exactly once; calling
// ResolveTo on an already-resolved node panics.
func (e ExprDeclRef) ResolveTo(ref decl.ID) {
	if ref.Nil() {
		panic("slate/ast: passed nil declaration to ResolveTo")
	}
	if !e.raw.ref.Nil() {
		panic(fmt.Sprintf("slate/ast: declaration reference written twice: %v and %v", e.raw.ref, ref))
	}
	e.raw.ref = ref
}

// Loc returns the location of the referencing name.
func (e ExprDeclRef) Loc() source.Location {
	return e.ctx.File().Location(int(e.raw.loc))
}
