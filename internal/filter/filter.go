// Package filter selects elements of a slice with caller-supplied predicates.
//
// Every function here is pure: the input slice is only read and the result is
// always a freshly allocated slice, so concurrent calls on a shared input are safe.
package filter

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument classifies every precondition failure in this package.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrNilSequence  = fmt.Errorf("nil sequence: %w", ErrInvalidArgument)
	ErrNilPredicate = fmt.Errorf("nil predicate: %w", ErrInvalidArgument)
)

// Predicate reports whether a value should be kept.
type Predicate[T any] func(value T) bool

// Test makes every Predicate a Tester.
func (p Predicate[T]) Test(value T) bool {
	return p(value)
}

// PredicateE is a predicate that can fail.
type PredicateE[T any] func(value T) (bool, error)

// Tester is the one-method form of a predicate, for types that carry their own state.
type Tester[T any] interface {
	Test(value T) bool
}

// FromTester adapts a Tester to a Predicate. A nil Tester yields a nil Predicate.
func FromTester[T any](t Tester[T]) Predicate[T] {
	if t == nil {
		return nil
	}
	if p, ok := t.(Predicate[T]); ok {
		return p
	}
	return t.Test
}

// Lift turns a Predicate into a PredicateE that never fails.
func Lift[T any](p Predicate[T]) PredicateE[T] {
	if p == nil {
		return nil
	}
	return func(value T) (bool, error) {
		return p(value), nil
	}
}

// Filter returns the elements of values for which p is true, in their original order.
// Duplicates are kept. A nil slice or a nil predicate is rejected; an empty
// slice yields an empty, non-nil result.
func Filter[T any](values []T, p Predicate[T]) ([]T, error) {
	if values == nil {
		return nil, ErrNilSequence
	}
	if p == nil {
		return nil, ErrNilPredicate
	}

	filtered := make([]T, 0)
	for _, value := range values {
		if p(value) {
			filtered = append(filtered, value)
		}
	}
	return filtered, nil
}

// Discard returns the elements of values for which p is false.
func Discard[T any](values []T, p Predicate[T]) ([]T, error) {
	return Filter(values, Not(p))
}

// FilterE is Filter for predicates that can fail. The first failure stops the
// pass and no partial result is returned.
func FilterE[T any](values []T, p PredicateE[T]) ([]T, error) {
	if values == nil {
		return nil, ErrNilSequence
	}
	if p == nil {
		return nil, ErrNilPredicate
	}

	filtered := make([]T, 0)
	for i, value := range values {
		ok, err := p(value)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		if ok {
			filtered = append(filtered, value)
		}
	}
	return filtered, nil
}

// DiscardE is Discard for predicates that can fail.
func DiscardE[T any](values []T, p PredicateE[T]) ([]T, error) {
	return FilterE(values, NotE(p))
}
