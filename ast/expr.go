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
	"github.com/bufbuild/slate/types"
)

// ExprAny is any expression node in this package, type-erased.
//
// Values of this type are obtained from the AsAny method on a concrete
// node type, such as [ExprTuple.AsAny], and convert back with the As*
// methods, which return the zero handle if the kind does not match. This
// type is used in lieu of a putative Expr interface type so that
// tree-walking code can hold any node without a heap allocation per node.
//
// The zero ExprAny has kind [ExprKindInvalid].
type ExprAny struct {
	withContext
	raw rawExpr
}

// rawExpr is a compact reference to an expression node: a kind and an
// arena pointer whose target arena is determined by the kind.
type rawExpr struct {
	kind ExprKind
	ptr  arena.Untyped
}

// rawExprHeader is the shared header embedded in every raw expression
// type: the write-once slot for the node's resolved type.
type rawExprHeader struct {
	ty types.Type
}

func (h *rawExprHeader) header() *rawExprHeader { return h }

// exprRaw is satisfied by every raw expression type via its embedded
// rawExprHeader.
type exprRaw interface{ header() *rawExprHeader }

// exprImpl is the common implementation of concrete node handles, which
// are a context, a compressed pointer, and the dereferenced raw node.
type exprImpl[Raw any] struct {
	withContext
	ptr arena.Untyped
	raw *Raw
}

func wrapExpr[Raw any](c *Context, a *arena.Arena[Raw], p arena.Pointer[Raw]) exprImpl[Raw] {
	return exprImpl[Raw]{withContext{c}, arena.Untyped(p), p.In(a)}
}

// Type returns this node's resolved type, which is zero until type
// inference assigns it (or, for some node kinds, until construction
// provides it).
func (e exprImpl[Raw]) Type() types.Type {
	if e.IsZero() {
		return types.Type{}
	}
	return any(e.raw).(exprRaw).header().ty
}

// SetType resolves this node's type.
//
// The type slot is written exactly once: calling SetType on a node whose
// type is already resolved panics.
func (e exprImpl[Raw]) SetType(ty types.Type) {
	if e.IsZero() {
		panic("slate/ast: called SetType on zero node")
	}
	setType(any(e.raw).(exprRaw).header(), ty)
}

func setType(h *rawExprHeader, ty types.Type) {
	if !h.ty.IsZero() {
		panic(fmt.Sprintf("slate/ast: type slot written twice: %v and %v", h.ty, ty))
	}
	h.ty = ty
}

func newExprAny(c *Context, raw rawExpr) ExprAny {
	if raw.kind == ExprKindInvalid {
		return ExprAny{}
	}
	return ExprAny{withContext{c}, raw}
}

// Kind returns the kind of node this ExprAny holds.
//
// The zero ExprAny returns [ExprKindInvalid].
func (e ExprAny) Kind() ExprKind {
	return e.raw.kind
}

// AsLiteral converts this ExprAny into an ExprLiteral, if that is the kind
// it contains.
//
// Otherwise, returns zero.
func (e ExprAny) AsLiteral() ExprLiteral {
	if e.raw.kind != ExprKindLiteral {
		return ExprLiteral{}
	}
	return ExprLiteral{wrapExpr(e.ctx, &e.ctx.exprs.literals, arena.Pointer[rawExprLiteral](e.raw.ptr))}
}

// AsDeclRef converts this ExprAny into an ExprDeclRef, if that is the kind
// it contains.
//
// Otherwise, returns zero.
func (e ExprAny) AsDeclRef() ExprDeclRef {
	if e.raw.kind != ExprKindDeclRef {
		return ExprDeclRef{}
	}
	return ExprDeclRef{wrapExpr(e.ctx, &e.ctx.exprs.declRefs, arena.Pointer[rawExprDeclRef](e.raw.ptr))}
}

// AsTuple converts this ExprAny into an ExprTuple, if that is the kind it
// contains.
//
// Otherwise, returns zero.
func (e ExprAny) AsTuple() ExprTuple {
	if e.raw.kind != ExprKindTuple {
		return ExprTuple{}
	}
	return ExprTuple{wrapExpr(e.ctx, &e.ctx.exprs.tuples, arena.Pointer[rawExprTuple](e.raw.ptr))}
}

// AsApply converts this ExprAny into an ExprApply, if that is the kind it
// contains.
//
// Otherwise, returns zero.
func (e ExprAny) AsApply() ExprApply {
	if e.raw.kind != ExprKindApply {
		return ExprApply{}
	}
	return ExprApply{wrapExpr(e.ctx, &e.ctx.exprs.applies, arena.Pointer[rawExprApply](e.raw.ptr))}
}

// AsSequence converts this ExprAny into an ExprSequence, if that is the
// kind it contains.
//
// Otherwise, returns zero.
func (e ExprAny) AsSequence() ExprSequence {
	if e.raw.kind != ExprKindSequence {
		return ExprSequence{}
	}
	return ExprSequence{wrapExpr(e.ctx, &e.ctx.exprs.sequences, arena.Pointer[rawExprSequence](e.raw.ptr))}
}

// AsBrace converts this ExprAny into an ExprBrace, if that is the kind it
// contains.
//
// Otherwise, returns zero.
func (e ExprAny) AsBrace() ExprBrace {
	if e.raw.kind != ExprKindBrace {
		return ExprBrace{}
	}
	return ExprBrace{wrapExpr(e.ctx, &e.ctx.exprs.braces, arena.Pointer[rawExprBrace](e.raw.ptr))}
}

// AsClosure converts this ExprAny into an ExprClosure, if that is the kind
// it contains.
//
// Otherwise, returns zero.
func (e ExprAny) AsClosure() ExprClosure {
	if e.raw.kind != ExprKindClosure {
		return ExprClosure{}
	}
	return ExprClosure{wrapExpr(e.ctx, &e.ctx.exprs.closures, arena.Pointer[rawExprClosure](e.raw.ptr))}
}

// AsBinary converts this ExprAny into an ExprBinary, if that is the kind
// it contains.
//
// Otherwise, returns zero.
func (e ExprAny) AsBinary() ExprBinary {
	if e.raw.kind != ExprKindBinary {
		return ExprBinary{}
	}
	return ExprBinary{wrapExpr(e.ctx, &e.ctx.exprs.binaries, arena.Pointer[rawExprBinary](e.raw.ptr))}
}

// Type returns this node's resolved type, which is zero until type
// inference assigns it.
func (e ExprAny) Type() types.Type {
	if e.IsZero() {
		return types.Type{}
	}
	return e.header().ty
}

// SetType resolves this node's type.
//
// The type slot is written exactly once: calling SetType on a node whose
// type is already resolved panics.
func (e ExprAny) SetType(ty types.Type) {
	if e.IsZero() {
		panic("slate/ast: called SetType on zero node")
	}
	setType(e.header(), ty)
}

// StartLoc returns the location of the start of this expression.
//
// Each node kind computes this from its own fields: bracketed nodes start
// at their opening bracket, and compound nodes start where their first
// child starts.
func (e ExprAny) StartLoc() source.Location {
	if e.IsZero() {
		return source.Location{}
	}
	return e.ctx.File().Location(e.startOffset())
}

func (e ExprAny) startOffset() int {
	switch e.raw.kind {
	case ExprKindLiteral:
		return int(e.AsLiteral().raw.loc)
	case ExprKindDeclRef:
		return int(e.AsDeclRef().raw.loc)
	case ExprKindTuple:
		return int(e.AsTuple().raw.open)
	case ExprKindApply:
		return e.AsApply().Fn().startOffset()
	case ExprKindSequence:
		return e.AsSequence().At(0).startOffset()
	case ExprKindBrace:
		return int(e.AsBrace().raw.open)
	case ExprKindClosure:
		return e.AsClosure().Input().startOffset()
	case ExprKindBinary:
		return e.AsBinary().LHS().startOffset()
	default:
		return 0
	}
}

func (e ExprAny) header() *rawExprHeader {
	c := &e.ctx.exprs
	switch e.raw.kind {
	case ExprKindLiteral:
		return &c.literals.At(e.raw.ptr).rawExprHeader
	case ExprKindDeclRef:
		return &c.declRefs.At(e.raw.ptr).rawExprHeader
	case ExprKindTuple:
		return &c.tuples.At(e.raw.ptr).rawExprHeader
	case ExprKindApply:
		return &c.applies.At(e.raw.ptr).rawExprHeader
	case ExprKindSequence:
		return &c.sequences.At(e.raw.ptr).rawExprHeader
	case ExprKindBrace:
		return &c.braces.At(e.raw.ptr).rawExprHeader
	case ExprKindClosure:
		return &c.closures.At(e.raw.ptr).rawExprHeader
	case ExprKindBinary:
		return &c.binaries.At(e.raw.ptr).rawExprHeader
	default:
		panic("slate/ast: dereferenced zero node")
	}
}
