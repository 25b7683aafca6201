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

// Package ast provides the expression nodes of the Slate frontend.
//
// All nodes live in a [Context], which arena-allocates them and owns their
// memory for the whole compilation session; nodes are never freed
// individually. The parser constructs nodes bottom-up through
// [Context.Nodes], name resolution and type inference fill in each node's
// type slot exactly once, and later phases read the finished tree. Node
// values handed out by this package are cheap handles (a context pointer
// and an arena pointer) and should be passed by value.
//
// Each node has an immutable [ExprKind] fixed at construction. The
// type-erased [ExprAny] carries the kind and converts to a concrete node
// type via its As* methods, which return the zero handle on a kind
// mismatch.
//
// Nothing in this package is safe for concurrent use. Phases over one
// Context must be sequential; parallel compilation wants one Context per
// compilation unit.
package ast
