// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package itertool

import (
	"errors"
	"iter"

	"github.com/eapache/queue/v2"
	"vawter.tech/itertool/internal/span"
)

// ErrZeroStep is returned by [Slice] and [Slice2] when the step given
// with [By] is zero.
var ErrZeroStep = errors.New("step must not be zero")

// An Option sets one of the slice bounds accepted by [Slice] and
// [Slice2].
type Option func(*config)

type config struct {
	sp span.Span
}

// From sets the index of the first selected element. A negative value
// counts from the end of the input. When absent, selection starts at
// the first element for a positive step, or the last element for a
// negative step.
func From(start int) Option {
	return func(c *config) { c.sp.Start = &start }
}

// To sets the index before which selection ends; the element at the
// stop index itself is never selected. A negative value counts from
// the end of the input. When absent, selection runs through the end of
// the input for a positive step, or through the first element for a
// negative step.
func To(stop int) Option {
	return func(c *config) { c.sp.Stop = &stop }
}

// By sets the traversal stride. A negative value walks the input
// backward. The default is 1; zero is rejected with [ErrZeroStep].
func By(step int) Option {
	return func(c *config) { c.sp.Step = step }
}

// Slice selects a subsequence of items using extended slicing
// semantics: the selection runs from the index given by [From] up to,
// but excluding, the index given by [To], visiting every [By]-th
// element. Either bound may be negative to count from the end of the
// input.
//
// Construction consumes nothing. If the bounds are nonnegative and the
// step is positive, the returned sequence is fully lazy and infinite
// inputs are supported; otherwise the first pull buffers the portion
// of the input that the selection needs, which for negative bounds is
// all of it. See the package documentation for the lifecycle and
// unbounded-input caveats.
func Slice[T any](items iter.Seq[T], opts ...Option) (iter.Seq[T], error) {
	cfg := config{sp: span.Span{Step: 1}}
	for _, opt := range opts {
		opt(&cfg)
	}
	sp := cfg.sp
	if sp.Step == 0 {
		return nil, ErrZeroStep
	}
	if sp.Forward() {
		return forward(items, sp), nil
	}
	return buffered(items, sp), nil
}

// Slice2 is a pairwise version of [Slice].
func Slice2[K, V any](items iter.Seq2[K, V], opts ...Option) (iter.Seq2[K, V], error) {
	pairs := func(yield func(pair[K, V]) bool) {
		for k, v := range items {
			if !yield(pair[K, V]{key: k, value: v}) {
				return
			}
		}
	}
	sliced, err := Slice(iter.Seq[pair[K, V]](pairs), opts...)
	if err != nil {
		return nil, err
	}
	return func(yield func(K, V) bool) {
		for p := range sliced {
			if !yield(p.key, p.value) {
				return
			}
		}
	}, nil
}

type pair[K, V any] struct {
	key   K
	value V
}

// forward applies a nonnegative, ascending selection without
// buffering. The consumption pattern matches a plain skip-and-stride
// scan: reaching the first selected element pulls start+1 inputs, and
// a bounded selection pulls no inputs at or beyond the stop index.
func forward[T any](items iter.Seq[T], sp span.Span) iter.Seq[T] {
	start := 0
	if sp.Start != nil {
		start = *sp.Start
	}
	done := false
	return func(yield func(T) bool) {
		if done {
			return
		}
		next, stop := iter.Pull(items)
		defer stop()

		i := 0
		for ; i < start; i++ {
			if _, ok := next(); !ok {
				done = true
				return
			}
		}
		for {
			if sp.Stop != nil && i >= *sp.Stop {
				done = true
				return
			}
			v, ok := next()
			if !ok {
				done = true
				return
			}
			i++
			if !yield(v) {
				return
			}
			for k := 1; k < sp.Step; k++ {
				if sp.Stop != nil && i >= *sp.Stop {
					done = true
					return
				}
				if _, ok := next(); !ok {
					done = true
					return
				}
				i++
			}
		}
	}
}

// buffered applies a selection that needs the input length. Nothing is
// consumed until the first pull, which materializes the needed prefix
// of the input, hands the selected elements to a FIFO queue, and drops
// the buffer. Queued elements are released as they are yielded, and
// the input is never consumed a second time.
func buffered[T any](items iter.Seq[T], sp span.Span) iter.Seq[T] {
	var q *queue.Queue[T]
	done := false
	return func(yield func(T) bool) {
		if done {
			return
		}
		if q == nil {
			q = materialize(items, sp)
		}
		for q.Length() > 0 {
			if !yield(q.Remove()) {
				return
			}
		}
		done = true
	}
}

func materialize[T any](items iter.Seq[T], sp span.Span) *queue.Queue[T] {
	var buf []T
	if sp.NeedsAll() {
		for v := range items {
			buf = append(buf, v)
		}
	} else {
		// Backward traversal from a nonnegative start: only the
		// leading start+1 elements can be selected.
		head := sp.Head()
		for v := range items {
			buf = append(buf, v)
			if len(buf) >= head {
				break
			}
		}
	}

	q := queue.New[T]()
	for i := range sp.Indices(len(buf)) {
		q.Add(buf[i])
	}
	return q
}
