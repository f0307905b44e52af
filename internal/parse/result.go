package parse

import (
	"fmt"
	"strings"

	"github.com/korpuslab/docx2dict/internal/lexeme"
)

// Result is the outcome of applying a parser at some stream position:
// either a success carrying the next position and a value, or a failure
// carrying the furthest examined position and a description of what was
// expected there.
type Result[T any] struct {
	ok       bool
	next     int
	value    T
	failAt   int
	expected string
}

// Success builds a successful result ending just before next.
func Success[T any](next int, value T) Result[T] {
	return Result[T]{ok: true, next: next, value: value}
}

// Fail builds a failed result. index is the furthest position the parser
// examined, not necessarily where it started.
func Fail[T any](index int, expected string) Result[T] {
	return Result[T]{failAt: index, expected: expected}
}

// OK reports whether the result is a success.
func (r Result[T]) OK() bool { return r.ok }

// Next returns the position following the consumed input. Valid only for
// successes.
func (r Result[T]) Next() int { return r.next }

// Value returns the parsed value. Valid only for successes.
func (r Result[T]) Value() T { return r.value }

// FailedAt returns the failure position and expectation.
func (r Result[T]) FailedAt() (int, string) { return r.failAt, r.expected }

// Failure describes an unsuccessful parse of a stream. It satisfies error
// and is recoverable at entry granularity: the caller skips the entry and
// continues with the next one.
type Failure struct {
	Stream   []lexeme.Character
	Index    int
	Expected string
}

func (f *Failure) Error() string {
	return fmt.Sprintf("expected %s at index %d", f.Expected, f.Index)
}

// Describe renders a text window of width characters centered on the
// failure position, along with the caret offset of the failure within the
// window. The window shows raw codepoints without normalization; it is
// diagnostic-only.
func (f *Failure) Describe(width int) (window string, caret int) {
	start := f.Index - width/2
	if start+width > len(f.Stream) {
		start = len(f.Stream) - width
	}
	if start < 0 {
		start = 0
	}
	end := start + width
	if end > len(f.Stream) {
		end = len(f.Stream)
	}
	var sb strings.Builder
	for _, c := range f.Stream[start:end] {
		sb.WriteRune(c.Rune)
	}
	return sb.String(), f.Index - start
}
