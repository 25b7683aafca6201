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

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/slate/ast"
	"github.com/bufbuild/slate/decl"
	"github.com/bufbuild/slate/source"
	"github.com/bufbuild/slate/types"
)

// session is the boilerplate most tests want: a context over some source
// text plus the session-wide registries.
type session struct {
	ctx   *ast.Context
	decls decl.Table
	types types.Table
}

func newSession(text string) *session {
	return &session{ctx: ast.NewContext(source.NewFile("test.slate", text))}
}

func TestKinds(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	s := newSession("{ f(1, 2) + x; y }")
	nodes := s.ctx.Nodes()

	f := s.decls.Declare("f", 0)
	plus := s.decls.Declare("+", 0)

	lit := nodes.NewExprLiteral(ast.ExprLiteralArgs{Text: "1", Loc: 4})
	ref := nodes.NewExprDeclRef(ast.ExprDeclRefArgs{Ref: f, Loc: 2})
	tuple := nodes.NewExprTuple(ast.ExprTupleArgs{Open: 3, Close: 8, Elements: []ast.ExprAny{lit.AsAny()}})
	apply := nodes.NewExprApply(ref.AsAny(), tuple.AsAny())
	seq := nodes.NewExprSequence(lit.AsAny())
	brace := nodes.NewExprBrace(ast.ExprBraceArgs{Open: 0, Close: 17})
	closure := nodes.NewExprClosure(lit.AsAny(), types.Type{})
	binary := nodes.NewExprBinary(ast.ExprBinaryArgs{
		LHS: apply.AsAny(), Operator: plus, OperatorLoc: 10, RHS: ref.AsAny(),
	})

	all := []ast.ExprAny{
		lit.AsAny(), ref.AsAny(), tuple.AsAny(), apply.AsAny(),
		seq.AsAny(), brace.AsAny(), closure.AsAny(), binary.AsAny(),
	}
	kinds := []ast.ExprKind{
		ast.ExprKindLiteral, ast.ExprKindDeclRef, ast.ExprKindTuple, ast.ExprKindApply,
		ast.ExprKindSequence, ast.ExprKindBrace, ast.ExprKindClosure, ast.ExprKindBinary,
	}

	for i, e := range all {
		assert.Equal(kinds[i], e.Kind())

		// The downcast to a node's own kind succeeds; every other downcast
		// returns the zero handle.
		assert.Equal(e.Kind() == ast.ExprKindLiteral, !e.AsLiteral().IsZero())
		assert.Equal(e.Kind() == ast.ExprKindDeclRef, !e.AsDeclRef().IsZero())
		assert.Equal(e.Kind() == ast.ExprKindTuple, !e.AsTuple().IsZero())
		assert.Equal(e.Kind() == ast.ExprKindApply, !e.AsApply().IsZero())
		assert.Equal(e.Kind() == ast.ExprKindSequence, !e.AsSequence().IsZero())
		assert.Equal(e.Kind() == ast.ExprKindBrace, !e.AsBrace().IsZero())
		assert.Equal(e.Kind() == ast.ExprKindClosure, !e.AsClosure().IsZero())
		assert.Equal(e.Kind() == ast.ExprKindBinary, !e.AsBinary().IsZero())
	}

	var zero ast.ExprAny
	assert.Equal(ast.ExprKindInvalid, zero.Kind())
	assert.True(zero.IsZero())
	assert.True(zero.AsLiteral().IsZero())
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	s := newSession("(1, 2)")
	nodes := s.ctx.Nodes()

	lit := nodes.NewExprLiteral(ast.ExprLiteralArgs{Text: "1", Loc: 1})
	assert.Equal("1", lit.Text())
	assert.Equal(2, lit.Loc().Column)

	// AsAny followed by the matching downcast observes the same node.
	again := lit.AsAny().AsLiteral()
	assert.Equal("1", again.Text())
	again.SetType(s.types.Primitive("int"))
	assert.Equal(s.types.Primitive("int"), lit.Type())
}

func TestApplyShape(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// f(x) is ExprApply(Fn: ExprDeclRef(f), Arg: ExprDeclRef(x)).
	s := newSession("f(x)")
	nodes := s.ctx.Nodes()

	f := s.decls.Declare("f", 0)
	x := s.decls.Declare("x", 0)

	apply := nodes.NewExprApply(
		nodes.NewExprDeclRef(ast.ExprDeclRefArgs{Ref: f, Loc: 0}).AsAny(),
		nodes.NewExprDeclRef(ast.ExprDeclRefArgs{Ref: x, Loc: 2}).AsAny(),
	)

	assert.Equal(ast.ExprKindDeclRef, apply.Fn().Kind())
	assert.Equal(ast.ExprKindDeclRef, apply.Arg().Kind())
	assert.Equal(f, apply.Fn().AsDeclRef().Ref())
	assert.Equal(x, apply.Arg().AsDeclRef().Ref())
}

func TestTupleDecay(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// (4) keeps its tuple node, but resolution gives it its element's
	// type, which types.Table.Tuple decays to.
	s := newSession("(4)")
	nodes := s.ctx.Nodes()

	lit := nodes.NewExprLiteral(ast.ExprLiteralArgs{Text: "4", Loc: 1})
	tuple := nodes.NewExprTuple(ast.ExprTupleArgs{Open: 0, Close: 2, Elements: []ast.ExprAny{lit.AsAny()}})

	lit.SetType(s.types.Primitive("int"))
	tuple.SetType(s.types.Tuple(lit.Type()))

	assert.Equal(1, tuple.Len())
	assert.Equal(lit.Type(), tuple.Type())
}

func TestSequenceType(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	s := newSession("a b c")
	nodes := s.ctx.Nodes()

	a := nodes.NewExprLiteral(ast.ExprLiteralArgs{Text: "1", Loc: 0})
	b := nodes.NewExprLiteral(ast.ExprLiteralArgs{Text: "2", Loc: 2})
	c := nodes.NewExprLiteral(ast.ExprLiteralArgs{Text: "3", Loc: 4})
	a.SetType(s.types.Primitive("a"))
	b.SetType(s.types.Primitive("b"))
	c.SetType(s.types.Primitive("c"))

	// A sequence's type is fixed at construction to its last element's.
	seq := nodes.NewExprSequence(a.AsAny(), b.AsAny(), c.AsAny())
	assert.Equal(c.Type(), seq.Type())
	assert.Equal(3, seq.Len())

	// An empty sequence is a precondition violation.
	assert.Panics(func() { nodes.NewExprSequence() })
}

func TestBraceType(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	s := newSession("{ 4; 5 }")
	nodes := s.ctx.Nodes()
	intType := s.types.Primitive("int")

	build := func(missingSemi bool, ty types.Type) ast.ExprBrace {
		four := nodes.NewExprLiteral(ast.ExprLiteralArgs{Text: "4", Loc: 2})
		five := nodes.NewExprLiteral(ast.ExprLiteralArgs{Text: "5", Loc: 5})
		five.SetType(intType)
		brace := nodes.NewExprBrace(ast.ExprBraceArgs{
			Open: 0, Close: 7, MissingSemi: missingSemi, Type: ty,
		})
		brace.AppendExpr(four.AsAny())
		brace.AppendExpr(five.AsAny())
		return brace
	}

	// With the final semicolon missing, the block's value is its last
	// expression; otherwise the block is unit-typed.
	value := build(true, intType)
	assert.Equal(intType, value.Type())
	assert.True(value.MissingSemi())

	unit := build(false, s.types.Unit())
	assert.True(unit.Type().IsUnit())
	assert.False(unit.MissingSemi())
}

func TestBraceEntries(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)

	s := newSession("{ let x = 1; x }")
	nodes := s.ctx.Nodes()

	x := s.decls.Declare("x", 6)
	brace := nodes.NewExprBrace(ast.ExprBraceArgs{Open: 0, Close: 15, MissingSemi: true})
	brace.AppendDecl(x)
	ref := nodes.NewExprDeclRef(ast.ExprDeclRefArgs{Ref: x, Loc: 13})
	brace.AppendExpr(ref.AsAny())

	require.Equal(2, brace.Len())
	assert.True(brace.At(0).IsDecl())
	assert.Equal(x, brace.At(0).Decl())
	assert.True(brace.At(0).Expr().IsZero())

	assert.False(brace.At(1).IsDecl())
	assert.True(brace.At(1).Decl().Nil())
	assert.Equal(ref.AsAny(), brace.At(1).Expr())

	assert.Panics(func() { brace.AppendDecl(decl.ID(0)) })
}

func TestStartLoc(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	//        0123456789
	text := "({1 + f 2})"
	s := newSession(text)
	nodes := s.ctx.Nodes()

	f := s.decls.Declare("f", 0)
	plus := s.decls.Declare("+", 0)

	one := nodes.NewExprLiteral(ast.ExprLiteralArgs{Text: "1", Loc: 2})
	fRef := nodes.NewExprDeclRef(ast.ExprDeclRefArgs{Ref: f, Loc: 6})
	two := nodes.NewExprLiteral(ast.ExprLiteralArgs{Text: "2", Loc: 8})
	binary := nodes.NewExprBinary(ast.ExprBinaryArgs{
		LHS: one.AsAny(), Operator: plus, OperatorLoc: 4,
		RHS: nodes.NewExprApply(fRef.AsAny(), two.AsAny()).AsAny(),
	})
	brace := nodes.NewExprBrace(ast.ExprBraceArgs{Open: 1, Close: 9, MissingSemi: true})
	brace.AppendExpr(binary.AsAny())
	tuple := nodes.NewExprTuple(ast.ExprTupleArgs{
		Open: 0, Close: 10, Elements: []ast.ExprAny{brace.AsAny()},
	})

	// A tuple starts at its open paren, a brace at its open brace, a
	// binary at its left operand, an apply at its function.
	assert.Equal(1, tuple.AsAny().StartLoc().Column)
	assert.Equal(2, brace.AsAny().StartLoc().Column)
	assert.Equal(3, binary.AsAny().StartLoc().Column)
	assert.Equal(7, binary.RHS().StartLoc().Column)
	assert.Equal(3, one.AsAny().StartLoc().Column)

	seq := nodes.NewExprSequence(fRef.AsAny(), two.AsAny())
	assert.Equal(7, seq.AsAny().StartLoc().Column)

	closure := nodes.NewExprClosure(two.AsAny(), types.Type{})
	assert.Equal(9, closure.AsAny().StartLoc().Column)
}

func TestTypeSlotWriteOnce(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	s := newSession("4")
	lit := s.ctx.Nodes().NewExprLiteral(ast.ExprLiteralArgs{Text: "4", Loc: 0})

	assert.True(lit.Type().IsZero())
	lit.SetType(s.types.Primitive("int"))
	assert.Panics(func() { lit.SetType(s.types.Primitive("int")) })
	assert.Panics(func() { lit.AsAny().SetType(s.types.Primitive("bool")) })
}

func TestResolveOnce(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	s := newSession("x")
	ref := s.ctx.Nodes().NewExprDeclRef(ast.ExprDeclRefArgs{Loc: 0})

	assert.True(ref.Ref().Nil())
	x := s.decls.Declare("x", 0)
	ref.ResolveTo(x)
	assert.Equal(x, ref.Ref())
	assert.Panics(func() { ref.ResolveTo(x) })
	assert.Panics(func() { ref.ResolveTo(decl.ID(0)) })
}

func TestForeignContext(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	a := newSession("1")
	b := newSession("2")

	lit := a.ctx.Nodes().NewExprLiteral(ast.ExprLiteralArgs{Text: "1", Loc: 0})
	assert.Panics(func() {
		b.ctx.Nodes().NewExprTuple(ast.ExprTupleArgs{Elements: []ast.ExprAny{lit.AsAny()}})
	})
	assert.Panics(func() {
		b.ctx.Nodes().NewExprSequence(lit.AsAny())
	})
}

func TestBinaryRequiresOperator(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	s := newSession("1 + 2")
	nodes := s.ctx.Nodes()
	one := nodes.NewExprLiteral(ast.ExprLiteralArgs{Text: "1", Loc: 0})
	two := nodes.NewExprLiteral(ast.ExprLiteralArgs{Text: "2", Loc: 4})

	assert.Panics(func() {
		nodes.NewExprBinary(ast.ExprBinaryArgs{LHS: one.AsAny(), OperatorLoc: 2, RHS: two.AsAny()})
	})
}

func TestStableAcrossGrowth(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// Node handles must stay valid as the arena grows.
	s := newSession("many")
	nodes := s.ctx.Nodes()

	first := nodes.NewExprLiteral(ast.ExprLiteralArgs{Text: "0", Loc: 0})
	for range 1000 {
		nodes.NewExprLiteral(ast.ExprLiteralArgs{Text: "x", Loc: 0})
	}

	assert.Equal("0", first.Text())
	assert.Equal("0", first.AsAny().AsLiteral().Text())
}
