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

import "github.com/bufbuild/slate/types"

// ExprClosure is a function literal created implicitly by using an
// expression in a context that expects a function whose result type the
// expression matches.
//
// The node wraps exactly one input expression. How the implicit parameter
// is referenced from inside that expression is not modeled by this layer;
// it is a contract between type inference and the code generator.
type ExprClosure struct{ exprImpl[rawExprClosure] }

type rawExprClosure struct {
	rawExprHeader
	input rawExpr
}

// NewExprClosure creates a new ExprClosure node wrapping input, with the
// given result type.
//
// result may be zero, leaving the type slot for inference.
func (n *Nodes) NewExprClosure(input ExprAny, result types.Type) ExprClosure {
	n.panicIfNotOurs(input)
	if input.IsZero() {
		panic("slate/ast: passed zero node to NewExprClosure")
	}

	c := n.Context()
	return ExprClosure{wrapExpr(c, &c.exprs.closures, c.exprs.closures.New(rawExprClosure{
		rawExprHeader: rawExprHeader{ty: result},
		input:         input.raw,
	}))}
}

// AsAny type-erases this node. See [ExprAny].
func (e ExprClosure) AsAny() ExprAny {
	if e.IsZero() {
		return ExprAny{}
	}
	return newExprAny(e.ctx, rawExpr{ExprKindClosure, e.ptr})
}

// Input returns the wrapped expression.
func (e ExprClosure) Input() ExprAny {
	return newExprAny(e.ctx, e.raw.input)
}
