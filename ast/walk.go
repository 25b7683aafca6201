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

// Walk performs a preorder traversal of the tree rooted at expr, calling
// visit for each node. If visit returns false, the walk skips that node's
// children.
//
// Declaration entries of an [ExprBrace] are not expressions and are not
// visited; callers that care about them iterate [ExprBrace.Entries]
// themselves.
func Walk(expr ExprAny, visit func(ExprAny) bool) {
	if expr.IsZero() || !visit(expr) {
		return
	}

	switch expr.Kind() {
	case ExprKindTuple:
		tuple := expr.AsTuple()
		for _, elem := range tuple.Elements() {
			Walk(elem, visit)
		}
	case ExprKindApply:
		apply := expr.AsApply()
		Walk(apply.Fn(), visit)
		Walk(apply.Arg(), visit)
	case ExprKindSequence:
		seq := expr.AsSequence()
		for _, elem := range seq.Elements() {
			Walk(elem, visit)
		}
	case ExprKindBrace:
		brace := expr.AsBrace()
		for _, entry := range brace.Entries() {
			if !entry.IsDecl() {
				Walk(entry.Expr(), visit)
			}
		}
	case ExprKindClosure:
		Walk(expr.AsClosure().Input(), visit)
	case ExprKindBinary:
		binary := expr.AsBinary()
		Walk(binary.LHS(), visit)
		Walk(binary.RHS(), visit)
	}
}
