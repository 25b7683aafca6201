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

import "fmt"

const (
	ExprKindInvalid ExprKind = iota // The zero ExprAny has this kind.

	ExprKindLiteral
	ExprKindDeclRef
	ExprKindTuple
	ExprKindApply
	ExprKindSequence
	ExprKindBrace
	ExprKindClosure
	ExprKindBinary
)

// ExprKind identifies which concrete node type an [ExprAny] holds.
//
// A node's kind is fixed at construction and never changes.
type ExprKind byte

// String implements [fmt.Stringer].
func (k ExprKind) String() string {
	switch k {
	case ExprKindInvalid:
		return "ExprInvalid"
	case ExprKindLiteral:
		return "ExprLiteral"
	case ExprKindDeclRef:
		return "ExprDeclRef"
	case ExprKindTuple:
		return "ExprTuple"
	case ExprKindApply:
		return "ExprApply"
	case ExprKindSequence:
		return "ExprSequence"
	case ExprKindBrace:
		return "ExprBrace"
	case ExprKindClosure:
		return "ExprClosure"
	case ExprKindBinary:
		return "ExprBinary"
	default:
		return fmt.Sprintf("ExprKind(%d)", int(k))
	}
}
