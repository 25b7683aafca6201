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

	"github.com/bufbuild/slate/source"
)

// ExprTuple is a parenthesized expression, like "(x + x)" or "(x, y, 4)".
//
// Tuples decay when they have a single element: "(4)" keeps its ExprTuple
// node for source fidelity, but type inference gives it the type of its
// sole element, not a one-element tuple type. See [types.Table.Tuple].
type ExprTuple struct{ exprImpl[rawExprTuple] }

type rawExprTuple struct {
	rawExprHeader
	open, close int32
	elems       []rawExpr
}

// ExprTupleArgs is the arguments for [Nodes.NewExprTuple].
type ExprTupleArgs struct {
	// The byte offsets of the opening and closing parentheses.
	Open, Close int
	// The elements, in source order. May be empty.
	Elements []ExprAny
}

// NewExprTuple creates a new ExprTuple node.
func (n *Nodes) NewExprTuple(args ExprTupleArgs) ExprTuple {
	n.panicIfNotOurs(args.Elements...)

	raw := rawExprTuple{
		open:  int32(args.Open),
		close: int32(args.Close),
	}
	for _, elem := range args.Elements {
		raw.elems = append(raw.elems, elem.raw)
	}

	c := n.Context()
	return ExprTuple{wrapExpr(c, &c.exprs.tuples, c.exprs.tuples.New(raw))}
}

// AsAny type-erases this node. See [ExprAny].
func (e ExprTuple) AsAny() ExprAny {
	if e.IsZero() {
		return ExprAny{}
	}
	return newExprAny(e.ctx, rawExpr{ExprKindTuple, e.ptr})
}

// Append appends an element, for parsers that build tuples incrementally.
func (e ExprTuple) Append(elem ExprAny) {
	e.ctx.Nodes().panicIfNotOurs(elem)
	e.raw.elems = append(e.raw.elems, elem.raw)
}

// Len returns the number of elements.
func (e ExprTuple) Len() int {
	return len(e.raw.elems)
}

// At returns the nth element.
func (e ExprTuple) At(n int) ExprAny {
	return newExprAny(e.ctx, e.raw.elems[n])
}

// Elements iterates over the elements in source order.
func (e ExprTuple) Elements() iter.Seq2[int, ExprAny] {
	return func(yield func(int, ExprAny) bool) {
		for i, elem := range e.raw.elems {
			if !yield(i, newExprAny(e.ctx, elem)) {
				return
			}
		}
	}
}

// OpenLoc returns the location of the opening parenthesis.
func (e ExprTuple) OpenLoc() source.Location {
	return e.ctx.File().Location(int(e.raw.open))
}

// CloseLoc returns the location of the closing parenthesis.
func (e ExprTuple) CloseLoc() source.Location {
	return e.ctx.File().Location(int(e.raw.close))
}
