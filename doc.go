// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package itertool provides extended slicing and consumption counting
// for lazy sequences.
//
// # Extended slicing
//
// [Slice] generalizes subsequence selection over an [iter.Seq] to the
// full start/stop/step model: any bound may be negative, counting from
// the end of the sequence, and the step may be negative, reversing the
// traversal. Bounds are supplied with the [From], [To], and [By]
// options; an omitted option takes its natural default from the sign
// of the step.
//
//	evens, err := itertool.Slice(items, itertool.By(2))
//	lastFour, err := itertool.Slice(items, itertool.From(-4))
//	reversed, err := itertool.Slice(items, itertool.By(-1))
//
// When the start and stop are nonnegative and the step is positive,
// the result is produced fully lazily and infinite inputs are
// supported. Negative bounds, or a negative step, can only be resolved
// against the total length of the input, so the first pull of the
// result buffers as much of the input as the selection requires — the
// whole input for negative bounds, or just the leading elements up to
// the start index for a backward traversal from a nonnegative start.
// Constructing a slice never consumes any input; buffering is deferred
// until the first element is requested.
//
// Buffering an infinite input never returns. Callers slicing unbounded
// sequences must keep bounds nonnegative and the step positive.
//
// Out-of-range bounds clamp to the input rather than failing, and an
// empty selection is an empty sequence, not an error. The only
// rejected parameter is a zero step, reported as [ErrZeroStep].
//
// # Counting
//
// [NewCounter] wraps a sequence so that the number of elements handed
// to the consumer can be read at any time:
//
//	c := itertool.NewCounter(items)
//	for v := range c.All() { ... }
//	log.Printf("consumed %d elements", c.Count())
//
// The count reflects elements actually yielded, never prefetched ones,
// so a partially consumed sequence reports exactly how far the
// consumer got.
//
// # Sequence lifecycle
//
// All sequences returned by this package are single-use, matching the
// usual behavior of one-shot producers: once a sequence has been
// exhausted, ranging over it again yields nothing and the underlying
// input is never pulled again. None of the types in this package are
// safe for concurrent use.
//
// # Metered consumption
//
// The [vawter.tech/itertool/pace] subpackage wraps sequences with a
// [golang.org/x/time/rate.Limiter] so that elements are released to
// the consumer at a bounded rate.
package itertool
