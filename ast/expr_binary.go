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
	"github.com/bufbuild/slate/decl"
	"github.com/bufbuild/slate/source"
)

// ExprBinary is an infix binary operation, like "x + y".
//
// Unlike the type slot, the operator's declaration is resolved before the
// node exists: the parser picks the operator declaration while folding the
// precedence of an expression, so the constructor requires it.
type ExprBinary struct{ exprImpl[rawExprBinary] }

type rawExprBinary struct {
	rawExprHeader
	lhs   rawExpr
	op    decl.ID
	opLoc int32
	rhs   rawExpr
}

// ExprBinaryArgs is the arguments for [Nodes.NewExprBinary].
type ExprBinaryArgs struct {
	// The left and right operands.
	LHS, RHS ExprAny
	// The declaration of the operator function. Must not be nil.
	Operator decl.ID
	// The byte offset of the operator token.
	OperatorLoc int
}

// NewExprBinary creates a new ExprBinary node.
func (n *Nodes) NewExprBinary(args ExprBinaryArgs) ExprBinary {
	n.panicIfNotOurs(args.LHS, args.RHS)
	if args.LHS.IsZero() || args.RHS.IsZero() {
		panic("slate/ast: passed zero node to NewExprBinary")
	}
	if args.Operator.Nil() {
		panic("slate/ast: passed nil operator declaration to NewExprBinary")
	}

	c := n.Context()
	return ExprBinary{wrapExpr(c, &c.exprs.binaries, c.exprs.binaries.New(rawExprBinary{
		lhs:   args.LHS.raw,
		op:    args.Operator,
		opLoc: int32(args.OperatorLoc),
		rhs:   args.RHS.raw,
	}))}
}

// AsAny type-erases this node. See [ExprAny].
func (e ExprBinary) AsAny() ExprAny {
	if e.IsZero() {
		return ExprAny{}
	}
	return newExprAny(e.ctx, rawExpr{ExprKindBinary, e.ptr})
}

// LHS returns the left operand.
func (e ExprBinary) LHS() ExprAny {
	return newExprAny(e.ctx, e.raw.lhs)
}

// RHS returns the right operand.
func (e ExprBinary) RHS() ExprAny {
	return newExprAny(e.ctx, e.raw.rhs)
}

// Operator returns the declaration of the operator function.
func (e ExprBinary) Operator() decl.ID {
	return e.raw.op
}

// OperatorLoc returns the location of the operator token.
func (e ExprBinary) OperatorLoc() source.Location {
	return e.ctx.File().Location(int(e.raw.opLoc))
}
