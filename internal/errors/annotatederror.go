// Package errors provides error wrapping with slog annotations and call-site
// information for structured logging. It re-exports the standard library
// helpers so callers only need one errors import.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err, if any.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join wraps the given errors into a single error.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// annotatedError carries slog attributes and the call stack of the wrap site
// alongside the wrapped error.
type annotatedError struct {
	msg   string
	cause error
	attrs []slog.Attr
	stack []uintptr
}

func (e *annotatedError) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *annotatedError) Unwrap() error {
	return e.cause
}

// NewSentinel creates an error meant to be declared at package level and
// matched with Is.
func NewSentinel(msg string) error {
	return &annotatedError{msg: msg}
}

// Wrap annotates err with a message and optional slog attributes, recording
// the call site for SlogError.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	return &annotatedError{
		msg:   msg,
		cause: err,
		attrs: attrs,
		stack: callers(),
	}
}

// DecoratePanic converts a recovered panic value into an error that carries
// the panic site. It returns nil when excp is nil.
func DecoratePanic(excp any) error {
	if excp == nil {
		return nil
	}
	cause, ok := excp.(error)
	if !ok {
		cause = fmt.Errorf("%v", excp)
	}
	return &annotatedError{
		msg:   "panic",
		cause: cause,
		stack: callers(),
	}
}

// SlogError renders err as a structured "error" attribute with the message,
// the collected annotations, and the call stack of the outermost wrap site.
// A nil err produces an empty attribute.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}

	attrs := []slog.Attr{slog.String("message", err.Error())}

	var annotations []slog.Attr
	var stack []uintptr
	for e := err; e != nil; e = errors.Unwrap(e) {
		var ae *annotatedError
		if !errors.As(e, &ae) {
			break
		}
		annotations = append(annotations, ae.attrs...)
		if stack == nil {
			stack = ae.stack
		}
		e = ae
	}

	if len(annotations) > 0 {
		attrs = append(attrs, slog.Attr{Key: "annotations", Value: slog.GroupValue(annotations...)})
	}
	if frames := formatStack(stack); frames != "" {
		attrs = append(attrs, slog.String("stack", frames))
	}
	return slog.Attr{Key: "error", Value: slog.GroupValue(attrs...)}
}

// callers captures the current call stack, excluding runtime internals.
func callers() []uintptr {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	return pcs[:n]
}

// formatStack renders the captured stack as "file.go:line" entries, dropping
// frames from this package so the wrap site comes first.
func formatStack(stack []uintptr) string {
	if len(stack) == 0 {
		return ""
	}
	frames := runtime.CallersFrames(stack)
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		if frame.File != "" && !strings.HasSuffix(frame.File, "annotatederror.go") {
			if sb.Len() > 0 {
				sb.WriteString(" ")
			}
			file := frame.File
			if idx := strings.LastIndexByte(file, '/'); idx >= 0 {
				file = file[idx+1:]
			}
			fmt.Fprintf(&sb, "%s:%d", file, frame.Line)
		}
		if !more {
			break
		}
	}
	return sb.String()
}
