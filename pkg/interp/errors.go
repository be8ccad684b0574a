package interp

import "fmt"

// Kind tags an Error with the pipeline stage that produced it.
type Kind int

const (
	KindSyntax      Kind = iota // lexer or parser rejected the input
	KindRuntime                 // evaluation failed
	KindUnsupported             // recognized but deliberately unimplemented
	KindInternal                // invariant violation inside the core
)

var kindNames = [...]string{
	KindSyntax:      "Syntax",
	KindRuntime:     "Runtime",
	KindUnsupported: "Unsupported",
	KindInternal:    "Internal",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is the single failure value produced by every stage of the pipeline.
// Line is 1-based and refers to the sanitized source; 0 means unknown.
type Error struct {
	Kind Kind
	Line int
	Msg  string
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s error on line %d: %s", e.Kind, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Msg)
}

func syntaxErrf(line int, format string, args ...any) *Error {
	return &Error{Kind: KindSyntax, Line: line, Msg: fmt.Sprintf(format, args...)}
}

func runtimeErrf(line int, format string, args ...any) *Error {
	return &Error{Kind: KindRuntime, Line: line, Msg: fmt.Sprintf(format, args...)}
}

func unsupportedErrf(format string, args ...any) *Error {
	return &Error{Kind: KindUnsupported, Msg: fmt.Sprintf(format, args...)}
}

func internalErrf(format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Msg: fmt.Sprintf(format, args...)}
}
