// Package parse implements style-aware parsing over character streams.
//
// A Parser is a function from a stream and a start position to a Result.
// Matcher primitives test style predicates and pattern-constrained runs of
// characters; combinators build record-producing grammars out of them.
// Parsers are pure: identical inputs always yield identical results.
package parse

import (
	"errors"
	"fmt"

	"github.com/korpuslab/docx2dict/internal/lexeme"
)

// ErrMalformedGrammar marks a structurally invalid grammar composition,
// such as an unsupported run pattern. It is fatal at construction time,
// before any entry is processed.
var ErrMalformedGrammar = errors.New("malformed grammar")

// Parser consumes characters from a stream starting at a position.
// It never consumes negatively: a success's next position is at least the
// start position.
type Parser[T any] func(stream []lexeme.Character, index int) Result[T]

// Map transforms a parser's value on success.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(stream []lexeme.Character, index int) Result[U] {
		r := p(stream, index)
		if !r.OK() {
			at, expected := r.FailedAt()
			return Fail[U](at, expected)
		}
		return Success(r.Next(), f(r.Value()))
	}
}

// Opt tries p and succeeds with the zero value and ok=false if p fails,
// consuming nothing in that case.
func Opt[T any](p Parser[T]) Parser[Maybe[T]] {
	return func(stream []lexeme.Character, index int) Result[Maybe[T]] {
		r := p(stream, index)
		if !r.OK() {
			return Success(index, Maybe[T]{})
		}
		return Success(r.Next(), Maybe[T]{Value: r.Value(), Set: true})
	}
}

// Maybe holds an optional parse value.
type Maybe[T any] struct {
	Value T
	Set   bool
}

// Many repeats p until it fails. It always succeeds, possibly with an
// empty slice, ending at the last successful repetition. The failing
// attempt is never consumed.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(stream []lexeme.Character, index int) Result[[]T] {
		var values []T
		for {
			r := p(stream, index)
			if !r.OK() {
				return Success(index, values)
			}
			if r.Next() == index {
				// Zero-width success; repeating it would never terminate.
				return Success(index, values)
			}
			index = r.Next()
			values = append(values, r.Value())
		}
	}
}

// Many1 is Many requiring at least one repetition.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return func(stream []lexeme.Character, index int) Result[[]T] {
		first := p(stream, index)
		if !first.OK() {
			at, expected := first.FailedAt()
			return Fail[[]T](at, expected)
		}
		rest := Many(p)(stream, first.Next())
		return Success(rest.Next(), append([]T{first.Value()}, rest.Value()...))
	}
}

// Choice tries each alternative at the same start position in declaration
// order and returns the first success. When all fail, it reports the
// failure whose position is furthest; among alternatives tied at the
// furthest position, the earliest-declared one's expectation wins.
func Choice[T any](alternatives ...Parser[T]) Parser[T] {
	return func(stream []lexeme.Character, index int) Result[T] {
		bestAt := -1
		bestExpected := "one of no alternatives"
		for _, alt := range alternatives {
			r := alt(stream, index)
			if r.OK() {
				return r
			}
			if at, expected := r.FailedAt(); at > bestAt {
				bestAt, bestExpected = at, expected
			}
		}
		if bestAt < 0 {
			bestAt = index
		}
		return Fail[T](bestAt, bestExpected)
	}
}

// Field names a sub-parser inside a Seq. The parser's value must be
// wrapped with Any.
type Field struct {
	Name   string
	Parser Parser[any]
}

// Any erases a parser's value type for use in a Seq field.
func Any[T any](p Parser[T]) Parser[any] {
	return Map(p, func(v T) any { return v })
}

// Seq runs the named sub-parsers left to right at increasing positions and
// aggregates their values into one record keyed by field name. The first
// failure fails the whole sequence at that failure's position; earlier
// fields are not retried.
func Seq(fields ...Field) Parser[map[string]any] {
	return func(stream []lexeme.Character, index int) Result[map[string]any] {
		record := make(map[string]any, len(fields))
		for _, f := range fields {
			r := f.Parser(stream, index)
			if !r.OK() {
				at, expected := r.FailedAt()
				return Fail[map[string]any](at, expected)
			}
			record[f.Name] = r.Value()
			index = r.Next()
		}
		return Success(index, record)
	}
}

// Skip runs p for its side effect on the position only; a following Map
// can then drop its value. It is a convenience for separators.
func Skip[T any](p Parser[T]) Parser[struct{}] {
	return Map(p, func(T) struct{} { return struct{}{} })
}

// EOF succeeds only at the end of the stream.
func EOF(stream []lexeme.Character, index int) Result[struct{}] {
	if index != len(stream) {
		return Fail[struct{}](index, "end of input")
	}
	return Success(index, struct{}{})
}

// Parse applies p to the whole stream, requiring it to consume everything
// up to the end of input.
func Parse[T any](p Parser[T], stream []lexeme.Character) (T, *Failure) {
	r := p(stream, 0)
	if !r.OK() {
		at, expected := r.FailedAt()
		var zero T
		return zero, &Failure{Stream: stream, Index: at, Expected: expected}
	}
	if r.Next() != len(stream) {
		var zero T
		return zero, &Failure{Stream: stream, Index: r.Next(), Expected: "end of input"}
	}
	return r.Value(), nil
}

// ParseBase applies p to the stream, allowing unconsumed trailing input.
func ParseBase[T any](p Parser[T], stream []lexeme.Character) (T, *Failure) {
	r := p(stream, 0)
	if !r.OK() {
		at, expected := r.FailedAt()
		var zero T
		return zero, &Failure{Stream: stream, Index: at, Expected: expected}
	}
	return r.Value(), nil
}

// Get retrieves a typed field from a Seq record. It panics on a type
// mismatch, which can only arise from a programming error in the grammar.
func Get[T any](record map[string]any, name string) T {
	v, ok := record[name]
	if !ok {
		panic(fmt.Sprintf("parse: no field %q in record", name))
	}
	return v.(T)
}
