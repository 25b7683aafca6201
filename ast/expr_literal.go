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

import "github.com/bufbuild/slate/source"

// ExprLiteral is an integer literal, like "4".
//
// The digits are kept as unparsed source text; converting them into a
// numeric value is deferred to type inference, which knows the expected
// bit width.
type ExprLiteral struct{ exprImpl[rawExprLiteral] }

type rawExprLiteral struct {
	rawExprHeader
	text string
	loc  int32
}

// ExprLiteralArgs is the arguments for [Nodes.NewExprLiteral].
type ExprLiteralArgs struct {
	// The unparsed digits, exactly as written.
	Text string
	// The byte offset of the first digit.
	Loc int
}

// NewExprLiteral creates a new ExprLiteral node.
func (n *Nodes) NewExprLiteral(args ExprLiteralArgs) ExprLiteral {
	c := n.Context()
	return ExprLiteral{wrapExpr(c, &c.exprs.literals, c.exprs.literals.New(rawExprLiteral{
		text: args.Text,
		loc:  int32(args.Loc),
	}))}
}

// AsAny type-erases this node. See [ExprAny].
func (e ExprLiteral) AsAny() ExprAny {
	if e.IsZero() {
		return ExprAny{}
	}
	return newExprAny(e.ctx, rawExpr{ExprKindLiteral, e.ptr})
}

// Text returns the literal's unparsed digits.
func (e ExprLiteral) Text() string {
	return e.raw.text
}

// Loc returns the location of the literal.
func (e ExprLiteral) Loc() source.Location {
	return e.ctx.File().Location(int(e.raw.loc))
}
