// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package span resolves extended slice parameters against a sequence
// of known length.
package span

import "iter"

// A Span holds extended slice parameters. A nil Start or Stop means
// the bound was not specified and takes its default from the sign of
// Step. Step must be nonzero.
type Span struct {
	Start *int
	Stop  *int
	Step  int
}

// NeedsAll reports whether applying the Span requires knowing the
// total length of the sequence. This is the case whenever a negative
// bound is present: negative indices count from the end. An absent
// start with a negative step defaults to the last element, which is
// likewise a position known only once the sequence has ended.
func (s Span) NeedsAll() bool {
	if s.Start == nil {
		if s.Step < 0 {
			return true
		}
	} else if *s.Start < 0 {
		return true
	}
	return s.Stop != nil && *s.Stop < 0
}

// Forward reports whether the Span selects a subsequence in source
// order with no knowledge of the total length, allowing a fully lazy
// application.
func (s Span) Forward() bool {
	return s.Step > 0 && !s.NeedsAll()
}

// Head returns how many leading elements of the sequence can possibly
// be selected. It is meaningful only when Step is negative and
// NeedsAll is false: a backward traversal from a nonnegative start
// never visits an element past index start.
func (s Span) Head() int {
	return *s.Start + 1
}

// Resolve normalizes the Span's bounds against a sequence of length n.
// Negative bounds are taken relative to n and all bounds are clamped
// so that the returned range only visits valid indices. The returned
// stop is exclusive; for a negative step it may be -1, meaning the
// traversal runs through index zero.
func (s Span) Resolve(n int) (start, stop int) {
	if s.Step > 0 {
		start, stop = 0, n
	} else {
		start, stop = n-1, -1
	}
	if s.Start != nil {
		start = clamp(*s.Start, n, s.Step)
	}
	if s.Stop != nil {
		stop = clamp(*s.Stop, n, s.Step)
	}
	return start, stop
}

// Indices yields the indices selected by the Span over a sequence of
// length n, in traversal order.
func (s Span) Indices(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		start, stop := s.Resolve(n)
		if s.Step > 0 {
			for i := start; i < stop; i += s.Step {
				if !yield(i) {
					return
				}
			}
		} else {
			for i := start; i > stop; i += s.Step {
				if !yield(i) {
					return
				}
			}
		}
	}
}

// clamp resolves a single bound against length n. The floor is -1 for
// a negative step so that a backward range can include index zero; the
// ceiling is n-1 for a negative step since a backward range starts on
// a valid index.
func clamp(idx, n, step int) int {
	if idx < 0 {
		idx += n
		if idx < 0 {
			if step < 0 {
				return -1
			}
			return 0
		}
		return idx
	}
	if idx >= n {
		if step < 0 {
			return n - 1
		}
		return n
	}
	return idx
}
