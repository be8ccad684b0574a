package interp

import "time"

// DefaultMaxSteps bounds execution when the caller does not choose a
// budget. It is generous enough for every realistic phone-typed program
// while still stopping runaway loops quickly.
const DefaultMaxSteps = 5_000_000

// Options configures a single execution.
type Options struct {
	// MaxSteps limits executed statements and loop iterations.
	// Zero means unlimited.
	MaxSteps int64
}

// Result carries everything a successful execution produced.
type Result struct {
	// Output is the concatenated printf output.
	Output string
	// ExitCode is the value returned from main.
	ExitCode int
	// Warnings are parse and runtime warnings in emission order.
	Warnings []string
	// Duration measures the full pipeline, sanitizing included.
	Duration time.Duration
}

// Seconds returns the duration rounded to whole milliseconds, in seconds.
func (r *Result) Seconds() float64 {
	return r.Duration.Round(time.Millisecond).Seconds()
}

// Run executes source with the default step budget.
func Run(src string) (*Result, *Error) {
	return RunWithOptions(src, Options{MaxSteps: DefaultMaxSteps})
}

// RunWithOptions pushes source through the whole pipeline: sanitize,
// lex, parse, interpret. On failure the returned error carries the
// stage's kind and, where known, the offending line of the sanitized
// source.
func RunWithOptions(src string, opts Options) (res *Result, rerr *Error) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			res = nil
			rerr = internalErrf("unexpected failure: %v", r)
		}
	}()

	tokens, err := Lex(Sanitize(src))
	if err != nil {
		return nil, err
	}

	body, parseWarnings, err := Parse(tokens)
	if err != nil {
		return nil, err
	}

	in := NewInterp(opts.MaxSteps)
	exit, err := in.Run(body)
	if err != nil {
		return nil, err
	}

	warnings := append(parseWarnings, in.Warnings()...)
	return &Result{
		Output:   in.Output(),
		ExitCode: exit,
		Warnings: warnings,
		Duration: time.Since(start),
	}, nil
}
