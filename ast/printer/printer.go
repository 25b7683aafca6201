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

// Package printer renders expression trees as indented structural dumps,
// for debugging and for golden-output tests.
//
// The dump is deterministic: two structurally identical trees produce
// byte-identical output. Printing never mutates the tree.
package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bufbuild/slate/ast"
	"github.com/bufbuild/slate/decl"
	"github.com/bufbuild/slate/source"
)

// Options configures a dump.
//
// The zero Options is valid: declarations are then rendered as opaque
// decl#N handles rather than by name.
type Options struct {
	// The registry to resolve declaration handles against. May be nil.
	Decls *decl.Table
}

// Print dumps expr to stderr with zero indentation, as a convenience
// during debugging.
func Print(expr ast.ExprAny) {
	_ = Options{}.Fprint(os.Stderr, expr)
}

// Sprint dumps expr to a string.
func Sprint(expr ast.ExprAny) string {
	return Options{}.Sprint(expr)
}

// Fprint dumps expr to w.
func Fprint(w io.Writer, expr ast.ExprAny) error {
	return Options{}.Fprint(w, expr)
}

// Sprint dumps expr to a string.
func (o Options) Sprint(expr ast.ExprAny) string {
	var b strings.Builder
	_ = o.Fprint(&b, expr)
	return b.String()
}

// Fprint dumps expr to w, one line per node, children at one greater
// indentation level. Returns the first write error, if any.
func (o Options) Fprint(w io.Writer, expr ast.ExprAny) error {
	p := &printer{opts: o, w: w}
	p.print(expr, 0)
	return p.err
}

type printer struct {
	opts Options
	w    io.Writer
	err  error
}

func (p *printer) printf(format string, args ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, args...)
	}
}

func (p *printer) print(expr ast.ExprAny, indent int) {
	p.printf("%*s%v ", indent*2, "", expr.Kind())

	switch expr.Kind() {
	case ast.ExprKindLiteral:
		lit := expr.AsLiteral()
		p.printf("<%v> %q", loc(lit.Loc()), lit.Text())
	case ast.ExprKindDeclRef:
		ref := expr.AsDeclRef()
		p.printf("<%v> %v", loc(ref.Loc()), p.declName(ref.Ref()))
	case ast.ExprKindTuple:
		tuple := expr.AsTuple()
		p.printf("<%v..%v>", loc(tuple.OpenLoc()), loc(tuple.CloseLoc()))
	case ast.ExprKindBrace:
		brace := expr.AsBrace()
		p.printf("<%v..%v>", loc(brace.OpenLoc()), loc(brace.CloseLoc()))
		if brace.MissingSemi() {
			p.printf(" missing_semi")
		}
	case ast.ExprKindBinary:
		binary := expr.AsBinary()
		p.printf("<%v> op=%v @%v", loc(expr.StartLoc()), p.declName(binary.Operator()), loc(binary.OperatorLoc()))
	default:
		p.printf("<%v>", loc(expr.StartLoc()))
	}

	if ty := expr.Type(); !ty.IsZero() {
		p.printf(" : %v", ty)
	}
	p.printf("\n")

	switch expr.Kind() {
	case ast.ExprKindTuple:
		for _, elem := range expr.AsTuple().Elements() {
			p.print(elem, indent+1)
		}
	case ast.ExprKindApply:
		apply := expr.AsApply()
		p.print(apply.Fn(), indent+1)
		p.print(apply.Arg(), indent+1)
	case ast.ExprKindSequence:
		for _, elem := range expr.AsSequence().Elements() {
			p.print(elem, indent+1)
		}
	case ast.ExprKindBrace:
		for _, entry := range expr.AsBrace().Entries() {
			if entry.IsDecl() {
				p.printf("%*sdecl %v\n", (indent+1)*2, "", p.declName(entry.Decl()))
			} else {
				p.print(entry.Expr(), indent+1)
			}
		}
	case ast.ExprKindClosure:
		p.print(expr.AsClosure().Input(), indent+1)
	case ast.ExprKindBinary:
		binary := expr.AsBinary()
		p.print(binary.LHS(), indent+1)
		p.print(binary.RHS(), indent+1)
	}
}

func (p *printer) declName(id decl.ID) string {
	switch {
	case id.Nil():
		return "<unresolved>"
	case p.opts.Decls != nil:
		return p.opts.Decls.Get(id).Name()
	default:
		return id.String()
	}
}

func loc(l source.Location) string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}
