// Package tsstrip wires pkg/parser, pkg/strip, and pkg/applier into the
// single entry point spec.md §4.5 describes: parse once, emit patches,
// apply them in place.
package tsstrip

import (
	"github.com/tsstrip/tsstrip/pkg/applier"
	"github.com/tsstrip/tsstrip/pkg/buffer"
	"github.com/tsstrip/tsstrip/pkg/config"
	"github.com/tsstrip/tsstrip/pkg/diag"
	"github.com/tsstrip/tsstrip/pkg/parser"
	"github.com/tsstrip/tsstrip/pkg/patch"
	"github.com/tsstrip/tsstrip/pkg/strip"
)

// Result is the orchestrator's return value, per spec.md §4.5/§6/§7.
type Result struct {
	Panicked    bool
	Diagnostics []diag.Diagnostic
}

// Transpile strips the TypeScript-only syntax from buf, mutating it in
// place to JavaScript. kind selects module vs. script parsing context.
// Go's garbage collector takes the place of spec.md's request-scoped
// arena: every per-request structure here (the patch log, the scope
// stack, the parser itself) is allocated fresh per call and simply
// becomes unreachable on return, achieving the same "bulk release on
// success or failure" property without explicit arena bookkeeping.
//
// On a parser panic (unrecoverable syntax — mismatched brace nesting,
// EOF inside a production; an unterminated string or template literal
// just runs to EOF and does not panic) the
// source buffer is left untouched and Result.Panicked is true. Otherwise
// patches are applied in place, Panicked is false and Diagnostics is
// empty, since the parser records an error only when it panics.
func Transpile(kind config.SourceKind, buf buffer.Buffer, logger Logger) (Result, error) {
	if logger == nil {
		logger = NopLogger{}
	}
	source := append([]byte(nil), buf.Bytes()...)

	log := patch.NewLog(source)
	handler := strip.New(source, log)
	p := parser.New(source, handler)

	logger.Debugf("tsstrip: parsing %d bytes as %s", len(source), kind)
	panicked, errs := p.Parse()
	if panicked {
		logger.Errorf("tsstrip: parser panicked, leaving buffer untouched")
		return Result{Panicked: true, Diagnostics: toDiagnostics(errs)}, nil
	}

	if err := applier.Apply(log.Patches(), buf); err != nil {
		logger.Errorf("tsstrip: patch application failed: %v", err)
		return Result{Panicked: false, Diagnostics: toDiagnostics(errs)}, err
	}

	return Result{Panicked: false, Diagnostics: toDiagnostics(errs)}, nil
}

func toDiagnostics(errs []parser.ParseError) []diag.Diagnostic {
	if len(errs) == 0 {
		return nil
	}
	out := make([]diag.Diagnostic, len(errs))
	for i, e := range errs {
		out[i] = diag.Diagnostic{Message: e.Message, Pos: e.Pos, Length: 1}
	}
	return out
}
