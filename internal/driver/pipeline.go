// Package driver wires the compilation stages (lex, parse, resolve, bind,
// emit) into a single entry point for cmd/gentree.
package driver

import (
	"fmt"
	"time"

	"treegen/internal/cgen"
	"treegen/internal/codeobj"
	"treegen/internal/diag"
	"treegen/internal/emit"
	"treegen/internal/observ"
	"treegen/internal/parser"
	"treegen/internal/sema"
	"treegen/internal/source"
	"treegen/internal/targetschema"
)

// Stage marks how far a Generate call progressed before either finishing or
// aborting on diagnostics.
type Stage string

const (
	StageIdle     Stage = "idle"
	StageLexed    Stage = "lexed"
	StageParsed   Stage = "parsed"
	StageResolved Stage = "resolved"
	StageBound    Stage = "bound"
	StageEmitted  Stage = "emitted"
	StageFailed   Stage = "failed"
)

// PhaseStatus reports whether a phase started or finished.
type PhaseStatus int

const (
	PhaseStart PhaseStatus = iota
	PhaseEnd
)

// PhaseEvent describes a timing phase boundary.
type PhaseEvent struct {
	Name    string
	Status  PhaseStatus
	Elapsed time.Duration
}

// PhaseObserver receives phase events emitted during Generate.
type PhaseObserver func(PhaseEvent)

// Options configures a single Generate run.
type Options struct {
	MaxDiagnostics int
	EnableTimings  bool
	PhaseObserver  PhaseObserver

	// IndentOverride and PPIndentOverride, when non-nil, replace the
	// bound target's "indent"/"cpp_indent" options (e.g. for a --indent
	// CLI flag). Nil means "not set".
	IndentOverride   *string
	PPIndentOverride *string
}

// Result carries every artifact produced by a Generate call, regardless of
// how far the pipeline reached; Stage tells the caller which fields are
// populated.
type Result struct {
	Stage        Stage
	FileSet      *source.FileSet
	FileID       source.FileID
	Sink         *diag.Sink
	Bound        *targetschema.Bound
	TU           *codeobj.TranslationUnit
	Output       string
	TimingReport observ.Report
}

// Generate runs src (named filename) through the full pipeline for the
// named target and returns the rendered output plus every diagnostic
// collected along the way. A non-nil error only ever wraps diag.ErrAborted
// surfaced from a fatal diagnostic; Result.Sink.Bag() holds the full
// diagnostic list either way.
func Generate(src []byte, filename, targetName, outPath string, opts Options) (*Result, error) {
	var timer *observ.Timer
	if opts.EnableTimings {
		timer = observ.NewTimer()
	}
	begin := func(name string) int {
		if timer == nil {
			return -1
		}
		return timer.Begin(name)
	}
	end := func(idx int, note string) {
		if timer == nil || idx < 0 {
			return
		}
		timer.End(idx, note)
	}
	phaseBegin := func(name string) time.Time {
		if opts.PhaseObserver != nil {
			opts.PhaseObserver(PhaseEvent{Name: name, Status: PhaseStart})
		}
		return time.Now()
	}
	phaseEnd := func(name string, start time.Time) {
		if opts.PhaseObserver != nil {
			opts.PhaseObserver(PhaseEvent{Name: name, Status: PhaseEnd, Elapsed: time.Since(start)})
		}
	}

	maxDiags := opts.MaxDiagnostics
	if maxDiags <= 0 {
		maxDiags = 100
	}

	fs := source.NewFileSet()
	fileID := fs.AddVirtual(filename, src)
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiags)
	sink := diag.NewSink(bag, fs)

	res := &Result{Stage: StageIdle, FileSet: fs, FileID: fileID, Sink: sink}

	t0 := phaseBegin("parse")
	parseIdx := begin("parse")
	p := parser.New(file, sink)
	astFile, err := p.Parse()
	end(parseIdx, fmt.Sprintf("diags=%d", bag.Len()))
	phaseEnd("parse", t0)
	res.Stage = StageParsed
	if err != nil || sink.Failed() {
		res.Stage = StageFailed
		return finish(res, timer)
	}

	t1 := phaseBegin("resolve")
	resolveIdx := begin("resolve")
	semaRes, err := sema.Check(astFile, sink, sema.Options{})
	end(resolveIdx, "")
	phaseEnd("resolve", t1)
	res.Stage = StageResolved
	if err != nil || sink.Failed() {
		res.Stage = StageFailed
		return finish(res, timer)
	}

	t2 := phaseBegin("bind")
	bindIdx := begin("bind")
	bound, err := targetschema.Bind(semaRes.Spec, targetName, sink)
	end(bindIdx, "")
	phaseEnd("bind", t2)
	if err != nil || sink.Failed() {
		res.Stage = StageFailed
		return finish(res, timer)
	}
	res.Stage = StageBound
	res.Bound = bound
	applyOverrides(bound, opts)

	t3 := phaseBegin("emit")
	emitIdx := begin("emit")
	target := cgen.New(semaRes.Spec, bound, sink, fs, outPath)
	tu := target.Build()
	if sink.Failed() {
		end(emitIdx, "")
		phaseEnd("emit", t3)
		res.Stage = StageFailed
		return finish(res, timer)
	}
	e := emit.New(bound.Str("indent"))
	e.SetPPIndentUnit(bound.Str("cpp_indent"))
	tu.Codegen(e)
	end(emitIdx, fmt.Sprintf("bytes=%d", len(e.String())))
	phaseEnd("emit", t3)

	res.Stage = StageEmitted
	res.TU = tu
	res.Output = e.String()
	return finish(res, timer)
}

func applyOverrides(bound *targetschema.Bound, opts Options) {
	if opts.IndentOverride != nil {
		bound.SetStr("indent", *opts.IndentOverride)
	}
	if opts.PPIndentOverride != nil {
		bound.SetStr("cpp_indent", *opts.PPIndentOverride)
	}
}

func finish(res *Result, timer *observ.Timer) (*Result, error) {
	if timer != nil {
		res.TimingReport = timer.Report()
	}
	if res.Stage == StageFailed {
		return res, diag.ErrAborted
	}
	return res, nil
}
