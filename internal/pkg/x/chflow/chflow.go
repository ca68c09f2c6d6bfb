// Package chflow provides context-aware helpers for channel operations so that
// every blocking receive or send can be abandoned when a context is done.
package chflow

import "context"

// Receive waits for a value from ch or for ctx to be done, whichever comes first.
// The boolean is false when ctx is done or ch is closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send delivers data to ch unless ctx is done first. It reports whether the
// value was delivered.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// TrySend delivers data to ch only if it can do so without blocking.
// It reports whether the value was delivered.
func TrySend[T any](ch chan<- T, data T) bool {
	select {
	case ch <- data:
		return true
	default:
		return false
	}
}
