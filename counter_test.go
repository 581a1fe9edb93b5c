// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package itertool

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCounter(t *testing.T) {
	r := require.New(t)

	src := ints(10)
	c := NewCounter(slices.Values(src))
	r.Zero(c.Count())

	r.Equal(src, slices.Collect(c.All()))
	r.Equal(10, c.Count())
}

// TestCounterTracksConsumer verifies that the count rises with the
// consumer, one element at a time, rather than running ahead of it.
func TestCounterTracksConsumer(t *testing.T) {
	r := require.New(t)

	c := NewCounter(slices.Values(ints(10)))
	seen := 0
	for v := range c.All() {
		seen++
		r.Equal(seen-1, v)
		r.Equal(seen, c.Count())
	}
	r.Equal(10, seen)
}

func TestCounterPartialConsumption(t *testing.T) {
	r := require.New(t)

	c := NewCounter(slices.Values(ints(10)))
	for v := range c.All() {
		if v == 3 {
			break
		}
	}
	r.Equal(4, c.Count())
}

func TestCounterEmpty(t *testing.T) {
	r := require.New(t)

	c := NewCounter(slices.Values([]int(nil)))
	r.Empty(slices.Collect(c.All()))
	r.Zero(c.Count())
}

func TestCounterSingleUse(t *testing.T) {
	r := require.New(t)

	c := NewCounter(slices.Values(ints(5)))
	r.Len(slices.Collect(c.All()), 5)
	r.Empty(slices.Collect(c.All()))
	r.Equal(5, c.Count())
}

func TestCounter2(t *testing.T) {
	r := require.New(t)

	src := []string{"a", "b", "c"}
	c := NewCounter2(slices.All(src))
	r.Zero(c.Count())

	keys, vals := collect2(c.All())
	r.Equal([]int{0, 1, 2}, keys)
	r.Equal(src, vals)
	r.Equal(3, c.Count())

	keys, _ = collect2(c.All())
	r.Empty(keys)
	r.Equal(3, c.Count())
}

func TestCounter2PartialConsumption(t *testing.T) {
	r := require.New(t)

	c := NewCounter2(slices.All([]string{"a", "b", "c", "d"}))
	for k := range c.All() {
		if k == 1 {
			break
		}
	}
	r.Equal(2, c.Count())
}
