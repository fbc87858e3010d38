package diag_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/warplang/warpc/internal/diag"
	"github.com/warplang/warpc/internal/span"
)

func testSpan(sources *span.Set, content string, line, startCol, endCol int) span.Span {
	id := sources.Register("test.warp", content)
	return span.New(
		span.Position{Line: line, Column: startCol},
		span.Position{Line: line, Column: endCol},
		id, true,
	)
}

func TestEmitRendersWhenAboveThreshold(t *testing.T) {
	var buf bytes.Buffer
	sources := span.NewSet()
	e := diag.New(sources, &buf, diag.Warning)

	sp := testSpan(sources, "let x = 1\n", 1, 5, 6)
	e.Emit(diag.UnknownType, sp, `unknown type "Foo"`)

	out := buf.String()
	if !strings.Contains(out, "unknown type") {
		t.Fatalf("output missing message: %q", out)
	}
	if !strings.Contains(out, "let x = 1") {
		t.Fatalf("output missing source line: %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("output missing caret rule: %q", out)
	}
}

func TestEmitSuppressedBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	sources := span.NewSet()
	e := diag.New(sources, &buf, diag.Error)

	sp := testSpan(sources, "x\n", 1, 1, 2)
	e.Emit(diag.Note, sp, "just a note") // Note defaults to Info, below Error threshold

	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestEmitAlwaysRecordsHistoryEvenWhenSuppressed(t *testing.T) {
	var buf bytes.Buffer
	sources := span.NewSet()
	e := diag.New(sources, &buf, diag.Error)

	sp := testSpan(sources, "x\n", 1, 1, 2)
	e.Emit(diag.Note, sp, "just a note")

	hist := e.History()
	if len(hist) != 1 || hist[0].Message != "just a note" {
		t.Fatalf("History() = %+v", hist)
	}
}

func TestEmitIfGatesOnCheckLevel(t *testing.T) {
	var buf bytes.Buffer
	sources := span.NewSet()
	e := diag.New(sources, &buf, diag.Error)

	sp := testSpan(sources, "x\n", 1, 1, 2)

	_, emitted := e.EmitIf(diag.Info, diag.TypeTrace, sp, "candidate A")
	if emitted {
		t.Fatal("EmitIf should not fire when check level is below threshold")
	}
	if len(e.History()) != 0 {
		t.Fatal("a gated-out EmitIf should not record history either")
	}

	_, emitted = e.EmitIf(diag.Error, diag.TypeTrace, sp, "candidate B")
	if !emitted {
		t.Fatal("EmitIf should fire when check level meets threshold")
	}
	if len(e.History()) != 1 {
		t.Fatalf("History() len = %d, want 1", len(e.History()))
	}
}

func TestPushOverridesSuppressesAName(t *testing.T) {
	var buf bytes.Buffer
	sources := span.NewSet()
	e := diag.New(sources, &buf, diag.Warning)

	e.PushOverrides(map[diag.Name]diag.Level{diag.UnknownType: diag.Never})
	sp := testSpan(sources, "x\n", 1, 1, 2)
	e.Emit(diag.UnknownType, sp, "would normally render")

	if buf.Len() != 0 {
		t.Fatalf("override should have suppressed rendering, got %q", buf.String())
	}

	e.PopOverrides()
	e.Emit(diag.UnknownType, sp, "renders again")
	if !strings.Contains(buf.String(), "renders again") {
		t.Fatal("after popping the override, the default level should apply again")
	}
}

func TestActiveReflectsOverrides(t *testing.T) {
	var buf bytes.Buffer
	e := diag.New(span.NewSet(), &buf, diag.Warning)
	if got := e.Active(diag.UnknownType); got != diag.DefaultLevel(diag.UnknownType) {
		t.Fatalf("Active() before override = %v, want default", got)
	}
	e.PushOverrides(map[diag.Name]diag.Level{diag.UnknownType: diag.Debug})
	if got := e.Active(diag.UnknownType); got != diag.Debug {
		t.Fatalf("Active() after override = %v, want Debug", got)
	}
}

func TestRenderWithoutSourceContentSkipsCaretWindow(t *testing.T) {
	var buf bytes.Buffer
	sources := span.NewSet()
	e := diag.New(sources, &buf, diag.Warning)

	id := sources.RegisterName("<builtin>")
	sp := span.OfSource(id)
	e.Emit(diag.UnknownType, sp, "builtin lookup failed")

	out := buf.String()
	if !strings.Contains(out, "builtin lookup failed") {
		t.Fatalf("message missing: %q", out)
	}
	if strings.Contains(out, "^") {
		t.Fatal("a sourceless span should not render a caret window")
	}
}
