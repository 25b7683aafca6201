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

import "iter"

// ExprSequence is a series of expressions evaluated in order, like
// "foo() bar()". Unlike [ExprBrace] it has no braces, separators, or
// declarations, and it can never be empty.
//
// A sequence's type is the type its last element has at construction
// time.
type ExprSequence struct{ exprImpl[rawExprSequence] }

type rawExprSequence struct {
	rawExprHeader
	elems []rawExpr
}

// NewExprSequence creates a new ExprSequence node.
//
// Panics if elems is empty: an empty sequence is a precondition violation,
// not a representable tree.
func (n *Nodes) NewExprSequence(elems ...ExprAny) ExprSequence {
	if len(elems) == 0 {
		panic("slate/ast: passed no elements to NewExprSequence")
	}
	n.panicIfNotOurs(elems...)

	raw := rawExprSequence{
		rawExprHeader: rawExprHeader{ty: elems[len(elems)-1].Type()},
	}
	for _, elem := range elems {
		if elem.IsZero() {
			panic("slate/ast: passed zero node to NewExprSequence")
		}
		raw.elems = append(raw.elems, elem.raw)
	}

	c := n.Context()
	return ExprSequence{wrapExpr(c, &c.exprs.sequences, c.exprs.sequences.New(raw))}
}

// AsAny type-erases this node. See [ExprAny].
func (e ExprSequence) AsAny() ExprAny {
	if e.IsZero() {
		return ExprAny{}
	}
	return newExprAny(e.ctx, rawExpr{ExprKindSequence, e.ptr})
}

// Len returns the number of elements; always at least one.
func (e ExprSequence) Len() int {
	return len(e.raw.elems)
}

// At returns the nth element.
func (e ExprSequence) At(n int) ExprAny {
	return newExprAny(e.ctx, e.raw.elems[n])
}

// Elements iterates over the elements in evaluation order.
func (e ExprSequence) Elements() iter.Seq2[int, ExprAny] {
	return func(yield func(int, ExprAny) bool) {
		for i, elem := range e.raw.elems {
			if !yield(i, newExprAny(e.ctx, elem)) {
				return
			}
		}
	}
}
