package exit

import (
	"fmt"
	"io"
)

const (
	CodeSuccess = 0
	// CodeFailure covers usage errors, unreadable input, invalid queries and
	// missing required matches.
	CodeFailure = 2
)

// Result holds the exit code and the message to print before terminating.
type Result struct {
	ExitCode int
	Message  string
}

// Print writes the message to stdout for successful results and to stderr otherwise.
func (r *Result) Print(stdout, stderr io.Writer) {
	w := stdout
	if r.ExitCode != CodeSuccess {
		w = stderr
	}
	fmt.Fprint(w, r.Message)
}

// Success creates a result with exit code 0.
func Success(message string) *Result {
	return &Result{
		ExitCode: CodeSuccess,
		Message:  message,
	}
}

// Error creates a result with exit code 2.
func Error(message string) *Result {
	return &Result{
		ExitCode: CodeFailure,
		Message:  message,
	}
}

// Errorf creates an error result with formatted message.
func Errorf(format string, a ...any) *Result {
	return Error(fmt.Sprintf(format, a...))
}
