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
	"iter"

	"github.com/bufbuild/slate/decl"
	"github.com/bufbuild/slate/source"
	"github.com/bufbuild/slate/types"
)

// ExprBrace is a brace-enclosed sequence of entries, like "{ 4; 5 }".
//
// Each entry is either an expression or a declaration; a declaration
// entry's binding is visible to the entries after it, with scoping
// enforced by name resolution, not by this node. Entries are evaluated
// strictly in order.
//
// If the final expression is missing a semicolon after it, the block's
// value is that expression's and so is its type; otherwise, or if the last
// entry is a declaration, the block's type is unit. The constructing phase
// makes this determination and stores it in the type slot; the node never
// recomputes it.
type ExprBrace struct{ exprImpl[rawExprBrace] }

type rawExprBrace struct {
	rawExprHeader
	open, close int32
	entries     []rawBraceEntry
	missingSemi bool
}

// rawBraceEntry is a union of an expression and a declaration handle.
// Exactly one of the two is set.
type rawBraceEntry struct {
	expr rawExpr
	decl decl.ID
}

// BraceEntry is one entry of an [ExprBrace]: either an expression or a
// declaration.
type BraceEntry struct {
	withContext
	raw rawBraceEntry
}

// IsDecl returns whether this entry is a declaration.
func (e BraceEntry) IsDecl() bool {
	return !e.raw.decl.Nil()
}

// Expr returns this entry's expression, or zero if it is a declaration.
func (e BraceEntry) Expr() ExprAny {
	return newExprAny(e.ctx, e.raw.expr)
}

// Decl returns this entry's declaration, or nil if it is an expression.
func (e BraceEntry) Decl() decl.ID {
	return e.raw.decl
}

// ExprBraceArgs is the arguments for [Nodes.NewExprBrace].
type ExprBraceArgs struct {
	// The byte offsets of the opening and closing braces.
	Open, Close int
	// Whether the last expression entry is missing a semicolon after it,
	// making it the block's value.
	MissingSemi bool
	// The block's type, as determined by the constructing phase. May be
	// zero; the type slot can then be resolved later, exactly once.
	Type types.Type
}

// NewExprBrace creates a new ExprBrace node with no entries.
//
// Entries are added in evaluation order with [ExprBrace.AppendExpr] and
// [ExprBrace.AppendDecl].
func (n *Nodes) NewExprBrace(args ExprBraceArgs) ExprBrace {
	c := n.Context()
	return ExprBrace{wrapExpr(c, &c.exprs.braces, c.exprs.braces.New(rawExprBrace{
		rawExprHeader: rawExprHeader{ty: args.Type},
		open:          int32(args.Open),
		close:         int32(args.Close),
		missingSemi:   args.MissingSemi,
	}))}
}

// AsAny type-erases this node. See [ExprAny].
func (e ExprBrace) AsAny() ExprAny {
	if e.IsZero() {
		return ExprAny{}
	}
	return newExprAny(e.ctx, rawExpr{ExprKindBrace, e.ptr})
}

// AppendExpr appends an expression entry.
func (e ExprBrace) AppendExpr(expr ExprAny) {
	e.ctx.Nodes().panicIfNotOurs(expr)
	if expr.IsZero() {
		panic("slate/ast: passed zero node to AppendExpr")
	}
	e.raw.entries = append(e.raw.entries, rawBraceEntry{expr: expr.raw})
}

// AppendDecl appends a declaration entry.
func (e ExprBrace) AppendDecl(ref decl.ID) {
	if ref.Nil() {
		panic("slate/ast: passed nil declaration to AppendDecl")
	}
	e.raw.entries = append(e.raw.entries, rawBraceEntry{decl: ref})
}

// Len returns the number of entries.
func (e ExprBrace) Len() int {
	return len(e.raw.entries)
}

// At returns the nth entry.
func (e ExprBrace) At(n int) BraceEntry {
	return BraceEntry{e.withContext, e.raw.entries[n]}
}

// Entries iterates over the entries in evaluation order.
func (e ExprBrace) Entries() iter.Seq2[int, BraceEntry] {
	return func(yield func(int, BraceEntry) bool) {
		for i, entry := range e.raw.entries {
			if !yield(i, BraceEntry{e.withContext, entry}) {
				return
			}
		}
	}
}

// MissingSemi returns whether the last expression entry is missing a
// semicolon after it.
func (e ExprBrace) MissingSemi() bool {
	return e.raw.missingSemi
}

// OpenLoc returns the location of the opening brace.
func (e ExprBrace) OpenLoc() source.Location {
	return e.ctx.File().Location(int(e.raw.open))
}

// CloseLoc returns the location of the closing brace.
func (e ExprBrace) CloseLoc() source.Location {
	return e.ctx.File().Location(int(e.raw.close))
}
