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

	"github.com/bufbuild/slate/ast"
)

func TestWalk(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// f((1, 2))
	s := newSession("f((1, 2))")
	nodes := s.ctx.Nodes()

	f := s.decls.Declare("f", 0)
	one := nodes.NewExprLiteral(ast.ExprLiteralArgs{Text: "1", Loc: 3})
	two := nodes.NewExprLiteral(ast.ExprLiteralArgs{Text: "2", Loc: 6})
	tuple := nodes.NewExprTuple(ast.ExprTupleArgs{
		Open: 2, Close: 7, Elements: []ast.ExprAny{one.AsAny(), two.AsAny()},
	})
	apply := nodes.NewExprApply(
		nodes.NewExprDeclRef(ast.ExprDeclRefArgs{Ref: f, Loc: 0}).AsAny(),
		tuple.AsAny(),
	)

	var kinds []ast.ExprKind
	ast.Walk(apply.AsAny(), func(e ast.ExprAny) bool {
		kinds = append(kinds, e.Kind())
		return true
	})
	assert.Equal([]ast.ExprKind{
		ast.ExprKindApply,
		ast.ExprKindDeclRef,
		ast.ExprKindTuple,
		ast.ExprKindLiteral,
		ast.ExprKindLiteral,
	}, kinds)

	// Returning false prunes a subtree.
	kinds = nil
	ast.Walk(apply.AsAny(), func(e ast.ExprAny) bool {
		kinds = append(kinds, e.Kind())
		return e.Kind() != ast.ExprKindTuple
	})
	assert.Equal([]ast.ExprKind{
		ast.ExprKindApply,
		ast.ExprKindDeclRef,
		ast.ExprKindTuple,
	}, kinds)

	// Declaration entries are not expressions and are not visited.
	brace := nodes.NewExprBrace(ast.ExprBraceArgs{Open: 0, Close: 8})
	brace.AppendDecl(f)
	brace.AppendExpr(one.AsAny())

	kinds = nil
	ast.Walk(brace.AsAny(), func(e ast.ExprAny) bool {
		kinds = append(kinds, e.Kind())
		return true
	})
	assert.Equal([]ast.ExprKind{ast.ExprKindBrace, ast.ExprKindLiteral}, kinds)

	// Walking the zero node visits nothing.
	ast.Walk(ast.ExprAny{}, func(ast.ExprAny) bool {
		t.Fatal("visited zero node")
		return false
	})
}
