// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package pace meters how quickly elements are drawn from a sequence.
//
// [Meter] wraps an [iter.Seq] so that each element is released to the
// consumer only after a [rate.Limiter] grants a token. The limiter is
// shared with the caller, so several sequences can draw from one
// budget.
package pace

import (
	"context"
	"iter"

	"golang.org/x/time/rate"
)

// Meter yields each element of items after taking a token from the
// limiter. When a token is immediately available it is taken without
// blocking; otherwise the sequence blocks in [rate.Limiter.Wait]. If
// the context is canceled, or the limiter can never satisfy the wait,
// the sequence ends with a final element carrying the error.
//
// The returned sequence pulls an element from the input before
// waiting, so a canceled wait discards the element it would have
// released.
func Meter[T any](
	ctx context.Context, items iter.Seq[T], l *rate.Limiter,
) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for v := range items {
			// Fast-path: there's capacity.
			if !l.Allow() {
				if err := l.Wait(ctx); err != nil {
					yield(*new(T), err)
					return
				}
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}
