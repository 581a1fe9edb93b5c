// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package itertool

import "iter"

// A Counter wraps a sequence and counts the elements handed to the
// consumer.
type Counter[T any] struct {
	items iter.Seq[T]
	count int
	done  bool
}

// NewCounter wraps items. The wrapped sequence is obtained from
// [Counter.All].
func NewCounter[T any](items iter.Seq[T]) *Counter[T] {
	return &Counter[T]{items: items}
}

// All returns the wrapped sequence: the same elements as the input, in
// the same order, with [Counter.Count] rising by one per element as it
// is yielded. The sequence is single-use; once exhausted, ranging over
// it again yields nothing and the input is not pulled again.
func (c *Counter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if c.done {
			return
		}
		for v := range c.items {
			c.count++
			if !yield(v) {
				return
			}
		}
		c.done = true
	}
}

// Count returns the number of elements yielded so far. Elements are
// counted as they reach the consumer, never ahead of it.
func (c *Counter[T]) Count() int {
	return c.count
}

// A Counter2 is a pairwise version of [Counter].
type Counter2[K, V any] struct {
	items iter.Seq2[K, V]
	count int
	done  bool
}

// NewCounter2 wraps items. The wrapped sequence is obtained from
// [Counter2.All].
func NewCounter2[K, V any](items iter.Seq2[K, V]) *Counter2[K, V] {
	return &Counter2[K, V]{items: items}
}

// All returns the wrapped sequence. See [Counter.All].
func (c *Counter2[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if c.done {
			return
		}
		for k, v := range c.items {
			c.count++
			if !yield(k, v) {
				return
			}
		}
		c.done = true
	}
}

// Count returns the number of pairs yielded so far.
func (c *Counter2[K, V]) Count() int {
	return c.count
}
