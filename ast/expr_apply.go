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

// ExprApply is the application of an argument to a function, which occurs
// syntactically through juxtaposition: "f(1, 2)" applies the tuple
// "(1, 2)" to "f".
//
// An application always has exactly two children. Multi-argument call
// syntax is represented by making the argument an [ExprTuple]; this layer
// does not special-case arity.
type ExprApply struct{ exprImpl[rawExprApply] }

type rawExprApply struct {
	rawExprHeader
	fn, arg rawExpr
}

// NewExprApply creates a new ExprApply node applying arg to fn.
func (n *Nodes) NewExprApply(fn, arg ExprAny) ExprApply {
	n.panicIfNotOurs(fn, arg)
	if fn.IsZero() || arg.IsZero() {
		panic("slate/ast: passed zero node to NewExprApply")
	}

	c := n.Context()
	return ExprApply{wrapExpr(c, &c.exprs.applies, c.exprs.applies.New(rawExprApply{
		fn:  fn.raw,
		arg: arg.raw,
	}))}
}

// AsAny type-erases this node. See [ExprAny].
func (e ExprApply) AsAny() ExprAny {
	if e.IsZero() {
		return ExprAny{}
	}
	return newExprAny(e.ctx, rawExpr{ExprKindApply, e.ptr})
}

// Fn returns the function being invoked.
func (e ExprApply) Fn() ExprAny {
	return newExprAny(e.ctx, e.raw.fn)
}

// Arg returns the one argument being passed.
func (e ExprApply) Arg() ExprAny {
	return newExprAny(e.ctx, e.raw.arg)
}
