// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pace

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestMeter(t *testing.T) {
	r := require.New(t)

	src := []int{1, 2, 3, 4, 5}
	var got []int
	for v, err := range Meter(t.Context(), slices.Values(src), rate.NewLimiter(rate.Inf, 0)) {
		r.NoError(err)
		got = append(got, v)
	}
	r.Equal(src, got)
}

func TestMeterBlocks(t *testing.T) {
	r := require.New(t)

	// One token up front, then one per millisecond.
	l := rate.NewLimiter(rate.Every(time.Millisecond), 1)
	start := time.Now()
	var got []int
	for v, err := range Meter(t.Context(), slices.Values([]int{1, 2, 3}), l) {
		r.NoError(err)
		got = append(got, v)
	}
	r.Equal([]int{1, 2, 3}, got)
	r.GreaterOrEqual(time.Since(start), 2*time.Millisecond)
}

func TestMeterCanceled(t *testing.T) {
	r := require.New(t)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	// The burst token lets the first element through; the second
	// element blocks and observes the canceled context.
	l := rate.NewLimiter(rate.Every(time.Hour), 1)
	var got []int
	var errs []error
	for v, err := range Meter(ctx, slices.Values([]int{1, 2, 3}), l) {
		got = append(got, v)
		errs = append(errs, err)
	}
	r.Equal([]int{1, 0}, got)
	r.Len(errs, 2)
	r.NoError(errs[0])
	r.ErrorIs(errs[1], context.Canceled)
}

func TestMeterEarlyBreak(t *testing.T) {
	r := require.New(t)

	var got []int
	for v, err := range Meter(t.Context(), slices.Values([]int{1, 2, 3}), rate.NewLimiter(rate.Inf, 0)) {
		r.NoError(err)
		got = append(got, v)
		break
	}
	r.Equal([]int{1}, got)
}
