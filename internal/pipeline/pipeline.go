// Package pipeline provides pure, order-preserving transformations over
// in-memory sequences. Every operation takes its input by value and returns
// a fresh sequence or scalar; nothing is mutated, so chains of operations
// compose freely and give the same result however the intermediate steps
// are named.
package pipeline

import (
	"cmp"
	"errors"
	"slices"
)

// Seq is an ordered, immutable-by-convention sequence. Operations never
// modify the backing slice they receive.
type Seq[T any] []T

// From builds a Seq from its arguments.
func From[T any](items ...T) Seq[T] {
	return Seq[T](items)
}

type (
	// Predicate reports whether an element should be selected.
	Predicate[T any] func(T) bool

	// MapFunc derives one output value from one input value.
	MapFunc[In, Out any] func(In) Out
)

var (
	// ErrNotFound is returned by Find when no element matches.
	ErrNotFound = errors.New("pipeline: no element matches predicate")

	// ErrEmptySequence is returned by positional access on an empty Seq.
	ErrEmptySequence = errors.New("pipeline: empty sequence")

	// ErrEmptyAggregate is returned by aggregates that are undefined over
	// an empty input, such as AverageBy.
	ErrEmptyAggregate = errors.New("pipeline: aggregate over empty sequence")
)

// Number covers the built-in numeric types usable in SumBy and AverageBy.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Find returns the first element matching pred. Unlike TryFind it is
// strict: no match is an ErrNotFound error.
func Find[T any](s Seq[T], pred Predicate[T]) (T, error) {
	for _, v := range s {
		if pred(v) {
			return v, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// TryFind returns the first element matching pred, or ok=false when no
// element matches. It never fails.
func TryFind[T any](s Seq[T], pred Predicate[T]) (T, bool) {
	for _, v := range s {
		if pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns the elements matching pred, preserving input order.
func Filter[T any](s Seq[T], pred Predicate[T]) Seq[T] {
	out := make(Seq[T], 0, len(s))
	for _, v := range s {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// Map applies fn to every element, preserving order and length.
func Map[In, Out any](s Seq[In], fn MapFunc[In, Out]) Seq[Out] {
	out := make(Seq[Out], 0, len(s))
	for _, v := range s {
		out = append(out, fn(v))
	}
	return out
}

// SumBy folds sel over the sequence. An empty input sums to zero.
func SumBy[T any, N Number](s Seq[T], sel func(T) N) N {
	var total N
	for _, v := range s {
		total += sel(v)
	}
	return total
}

// AverageBy returns the mean of sel over the sequence. Averaging an empty
// sequence is an ErrEmptyAggregate error, never NaN or a silent zero.
func AverageBy[T any, N Number](s Seq[T], sel func(T) N) (float64, error) {
	if len(s) == 0 {
		return 0, ErrEmptyAggregate
	}
	var total float64
	for _, v := range s {
		total += float64(sel(v))
	}
	return total / float64(len(s)), nil
}

// Fold reduces the sequence left to right, starting from init.
func Fold[T, A any](s Seq[T], init A, fn func(A, T) A) A {
	acc := init
	for _, v := range s {
		acc = fn(acc, v)
	}
	return acc
}

// SortBy returns a new sequence ordered ascending by the derived key.
// The sort is stable: equal keys keep their input order.
func SortBy[T any, K cmp.Ordered](s Seq[T], key func(T) K) Seq[T] {
	out := slices.Clone([]T(s))
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
	return Seq[T](out)
}

// SortByDescending returns a new sequence ordered descending by the derived
// key. Stability matches SortBy: equal keys keep their input order.
func SortByDescending[T any, K cmp.Ordered](s Seq[T], key func(T) K) Seq[T] {
	out := slices.Clone([]T(s))
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(key(b), key(a))
	})
	return Seq[T](out)
}

// Head returns the first element of the sequence.
func Head[T any](s Seq[T]) (T, error) {
	if len(s) == 0 {
		var zero T
		return zero, ErrEmptySequence
	}
	return s[0], nil
}

// Tail returns the sequence without its first element.
func Tail[T any](s Seq[T]) (Seq[T], error) {
	if len(s) == 0 {
		return nil, ErrEmptySequence
	}
	return slices.Clone([]T(s[1:])), nil
}
