package diag

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/warplang/warpc/internal/span"
)

// Emission is one recorded diagnostic: a stable id, its name, the level it
// was looked up at (not its default — the level actually in force when it
// fired), its span, and its message.
type Emission struct {
	ID      uuid.UUID
	Name    Name
	Level   Level
	Span    span.Span
	Message string
}

// Engine is the diagnostic engine: source registry, override stack,
// append-only emission history, and a writer rendering passes. Source
// registration, override mutation, active-level lookups, and emission
// appends are serialized behind mu — the only concurrency-facing surface in
// the front end.
type Engine struct {
	mu        sync.Mutex
	sources   *span.Set
	overrides *Overrides
	history   []Emission
	threshold Level
	writer    io.Writer
	color     bool
}

// New returns an engine writing to w at threshold, rendering in color iff w
// is a terminal (detected via go-isatty when w is an *os.File).
func New(sources *span.Set, w io.Writer, threshold Level) *Engine {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Engine{
		sources:   sources,
		overrides: NewOverrides(),
		threshold: threshold,
		writer:    w,
		color:     color,
	}
}

// PushOverrides enters a new diagnostic-level scope.
func (e *Engine) PushOverrides(frame map[Name]Level) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.overrides.Push(frame)
}

// PopOverrides leaves the most recently entered scope.
func (e *Engine) PopOverrides() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.overrides.Pop()
}

// Active returns the level currently in force for name.
func (e *Engine) Active(name Name) Level {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.overrides.Lookup(name)
}

// Emit records an emission and, if its active level meets threshold, renders
// it to the engine's writer. History always records the emission even when
// it is Never or below threshold.
func (e *Engine) Emit(name Name, sp span.Span, message string) Emission {
	e.mu.Lock()
	defer e.mu.Unlock()

	lvl := e.overrides.Lookup(name)
	em := Emission{ID: uuid.New(), Name: name, Level: lvl, Span: sp, Message: message}
	e.history = append(e.history, em)
	if lvl != Never && lvl.Meets(e.threshold) {
		e.render(em)
	}
	return em
}

// EmitIf emits name only if check's own level meets threshold; check is
// typically the level of the diagnostic that prompted this conditional note
// (e.g. only trace candidate paths when unknown-type itself is rendering).
func (e *Engine) EmitIf(check Level, name Name, sp span.Span, message string) (Emission, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !check.Meets(e.threshold) {
		return Emission{}, false
	}
	lvl := e.overrides.Lookup(name)
	em := Emission{ID: uuid.New(), Name: name, Level: lvl, Span: sp, Message: message}
	e.history = append(e.history, em)
	if lvl != Never && lvl.Meets(e.threshold) {
		e.render(em)
	}
	return em, true
}

// History returns every emission recorded so far, in call order.
func (e *Engine) History() []Emission {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Emission, len(e.history))
	copy(out, e.history)
	return out
}

// render writes em to the engine's writer: a ±4-line window around its span
// with right-aligned line numbers, a caret rule under the offending
// columns, and the level-prefixed message.
func (e *Engine) render(em Emission) {
	prefix := fmt.Sprintf("%s: %s", em.Level, em.Message)
	if e.color {
		prefix = colorize(em.Level, prefix)
	}
	fmt.Fprintln(e.writer, prefix)

	src, ok := e.sources.Get(em.Span.Source)
	if !ok || !src.HasContent() || !em.Span.HasSource() {
		return
	}

	lines := strings.Split(src.Content, "\n")
	start := em.Span.Start.Line - 4
	if start < 1 {
		start = 1
	}
	end := em.Span.End.Line + 4
	if end > len(lines) {
		end = len(lines)
	}
	width := len(fmt.Sprintf("%d", end))

	for ln := start; ln <= end; ln++ {
		fmt.Fprintf(e.writer, "%*d | %s\n", width, ln, lines[ln-1])
		if ln == em.Span.Start.Line {
			pad := strings.Repeat(" ", width+3+em.Span.Start.Column-1)
			caretLen := em.Span.End.Column - em.Span.Start.Column
			if caretLen < 1 {
				caretLen = 1
			}
			fmt.Fprintln(e.writer, pad+strings.Repeat("^", caretLen))
		}
	}
}

func colorize(lvl Level, s string) string {
	code := "0"
	switch lvl {
	case Error, Panic:
		code = "31"
	case Warning:
		code = "33"
	case Info:
		code = "36"
	case Debug:
		code = "90"
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}
