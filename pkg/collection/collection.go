// Package collection provides generic, functional-style helpers for slices:
// Map, Filter, First, Contains, SortBy, Sum. All functions leave their input
// untouched.
package collection

import "sort"

// Map transforms each element of slice s using fn.
func Map[T, R any](s []T, fn func(T) R) []R {
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// Filter returns elements of s for which fn returns true.
func Filter[T any](s []T, fn func(T) bool) []T {
	var out []T
	for _, v := range s {
		if fn(v) {
			out = append(out, v)
		}
	}
	return out
}

// First returns the first element matching fn, or (zero, false).
func First[T any](s []T, fn func(T) bool) (T, bool) {
	for _, v := range s {
		if fn(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Contains reports whether any element of s satisfies fn.
func Contains[T any](s []T, fn func(T) bool) bool {
	_, ok := First(s, fn)
	return ok
}

// SortBy returns a sorted copy of s ordered by the key extracted by fn.
// The sort is stable, so equal keys keep their prior relative order.
func SortBy[T any, K int | int64 | float64 | string](s []T, fn func(T) K) []T {
	out := make([]T, len(s))
	copy(out, s)
	sort.SliceStable(out, func(i, j int) bool {
		return fn(out[i]) < fn(out[j])
	})
	return out
}

// Sum adds up the values extracted by fn.
func Sum[T any, N int | int64 | float64](s []T, fn func(T) N) N {
	var total N
	for _, v := range s {
		total += fn(v)
	}
	return total
}
