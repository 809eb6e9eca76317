// SPDX-License-Identifier: MIT

// Package display carries console output as an explicit capability.
//
// Components that print (table and matrix listings, the CLI) receive a
// Writer instead of touching process-wide streams. Output text may carry
// SMCL-style markup tags ({txt}, {res}, {err} ...); a Writer either keeps
// them for a host that interprets them or strips them for a plain terminal.
package display

import (
	"io"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"
)

// Writer receives normal and error output.
type Writer interface {
	Display(text string) error
	Error(text string) error
}

var smclTag = regexp.MustCompile(`\{(?:txt|text|res|result|err|error|inp|input|com|bf|it|sf|hline)\}`)

// StripSMCL removes markup tags, leaving the text.
func StripSMCL(s string) string { return smclTag.ReplaceAllString(s, "") }

// PadLeft right-aligns s in a field of w runes; longer text is kept whole.
func PadLeft(s string, w int) string {
	if n := utf8.RuneCountInString(s); n < w {
		return strings.Repeat(" ", w-n) + s
	}

	return s
}

// Option configures a StreamWriter.
type Option func(*StreamWriter)

// WithSMCL keeps markup tags in the output (default: stripped).
func WithSMCL() Option { return func(w *StreamWriter) { w.keepSMCL = true } }

// StreamWriter writes to two io.Writers. Safe for concurrent use.
type StreamWriter struct {
	mu       sync.Mutex
	out      io.Writer
	errOut   io.Writer
	keepSMCL bool
}

var _ Writer = (*StreamWriter)(nil)

// NewWriter returns a Writer over out and errOut. A nil errOut reuses out.
func NewWriter(out, errOut io.Writer, opts ...Option) *StreamWriter {
	if out == nil {
		panic("display: NewWriter: out must not be nil")
	}
	if errOut == nil {
		errOut = out
	}
	w := &StreamWriter{out: out, errOut: errOut}
	for _, o := range opts {
		o(w)
	}

	return w
}

// Display writes text to the normal stream.
func (w *StreamWriter) Display(text string) error { return w.write(w.out, text) }

// Error writes text to the error stream.
func (w *StreamWriter) Error(text string) error { return w.write(w.errOut, text) }

func (w *StreamWriter) write(dst io.Writer, text string) error {
	if !w.keepSMCL {
		text = StripSMCL(text)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	_, err := io.WriteString(dst, text)

	return err
}

// Discard returns a Writer that drops everything.
func Discard() Writer { return NewWriter(io.Discard, io.Discard) }
