package discretize

import "fmt"

// DiagCode enumerates the non-fatal conditions the discretiser reports.
type DiagCode int

const (
	// DiagUnknownMethod reports an unrecognised Method value; the
	// discretiser falls back to MethodInterval.
	DiagUnknownMethod DiagCode = iota
	// DiagInfiniteTailDropped reports a semi-infinite tail interval
	// removed before point alignment.
	DiagInfiniteTailDropped
)

// String returns the code name.
func (c DiagCode) String() string {
	switch c {
	case DiagUnknownMethod:
		return "unknown_method"
	case DiagInfiniteTailDropped:
		return "infinite_tail_dropped"
	default:
		return "unknown"
	}
}

// Diagnostic is one non-fatal event raised during discretisation or
// alignment. Fatal conditions are errors, never Diagnostics.
type Diagnostic struct {
	Code    DiagCode
	Message string
}

// DiagFunc observes diagnostics. A nil DiagFunc discards them; the
// observer must not retain the Diagnostic beyond the call.
type DiagFunc func(Diagnostic)

// emit formats and delivers one diagnostic to f, if any.
func emit(f DiagFunc, code DiagCode, format string, args ...any) {
	if f == nil {
		return
	}
	f(Diagnostic{Code: code, Message: fmt.Sprintf(format, args...)})
}
