package diag

import (
	"errors"

	"treegen/internal/source"
)

// ErrAborted is returned by Sink.Emit (and its Error shortcut) whenever
// the emitted diagnostic was marked fatal. Every pipeline phase propagates
// ErrAborted upward exactly like any other Go error, which is the concrete
// mechanism behind "a fatal diagnostic aborts the pipeline" (spec.md §4.1, §7).
var ErrAborted = errors.New("diag: fatal diagnostic reported")

// Sink is the process-local (per-run) receiver for every diagnostic produced
// while running the pipeline. It owns no global state: each call to
// driver.Generate constructs its own Sink, so concurrent runs never share
// one (spec.md §5).
type Sink struct {
	bag     *Bag
	fileSet *source.FileSet
	fatal   bool
}

// NewSink creates a Sink backed by bag, used to resolve spans into
// human-readable locations for RenderPlain.
func NewSink(bag *Bag, fileSet *source.FileSet) *Sink {
	return &Sink{bag: bag, fileSet: fileSet}
}

// Bag returns the underlying diagnostic collection.
func (s *Sink) Bag() *Bag {
	return s.bag
}

// FileSet returns the FileSet used to resolve diagnostic locations.
func (s *Sink) FileSet() *source.FileSet {
	return s.fileSet
}

// Failed reports whether the run should be considered unsuccessful: either a
// fatal diagnostic was emitted, or the bag accumulated any SevError entry.
func (s *Sink) Failed() bool {
	return s.fatal || s.bag.HasErrors()
}

// Emit records d in the bag. When fatal is true, Emit marks the sink as
// failed and returns ErrAborted so the caller can return immediately; the
// diagnostic is still recorded so the caller-facing report is complete.
func (s *Sink) Emit(d Diagnostic, fatal bool) error {
	s.bag.Add(&d)
	if fatal {
		s.fatal = true
		return ErrAborted
	}
	return nil
}

// Error records a fatal error diagnostic and returns ErrAborted.
func (s *Sink) Error(code Code, primary source.Span, msg string) error {
	return s.Emit(NewError(code, primary, msg), true)
}

// ErrorNonFatal records an error diagnostic that does not itself abort the
// phase (used for spec.md §4.5's "duplicate node name": the second
// occurrence is a non-fatal error, with resolution continuing until a final
// fatal stop once the whole file has been scanned).
func (s *Sink) ErrorNonFatal(code Code, primary source.Span, msg string) Diagnostic {
	d := NewError(code, primary, msg)
	s.Emit(d, false) //nolint:errcheck // fatal=false never returns an error
	return d
}

// Warning records a non-fatal warning diagnostic.
func (s *Sink) Warning(code Code, primary source.Span, msg string) Diagnostic {
	d := New(SevWarning, code, primary, msg)
	s.Emit(d, false) //nolint:errcheck // fatal=false never returns an error
	return d
}

// Note records a non-fatal informational diagnostic.
func (s *Sink) Note(code Code, primary source.Span, msg string) Diagnostic {
	d := New(SevNote, code, primary, msg)
	s.Emit(d, false) //nolint:errcheck // fatal=false never returns an error
	return d
}
