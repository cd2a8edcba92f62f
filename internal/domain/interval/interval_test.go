//go:build unit

package interval_test

import (
	"testing"
	"time"

	"github.com/aljonb/sched/internal/domain/interval"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return base.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func iv(sh, sm, eh, em int) interval.Interval {
	return interval.Interval{Start: at(sh, sm), End: at(eh, em)}
}

func TestNew(t *testing.T) {
	t.Run("valid interval", func(t *testing.T) {
		got, err := interval.New(at(9, 0), at(10, 0))
		require.NoError(t, err)
		assert.Equal(t, time.Hour, got.Duration())
	})

	t.Run("end equal to start", func(t *testing.T) {
		_, err := interval.New(at(9, 0), at(9, 0))
		assert.ErrorIs(t, err, interval.ErrEmptyInterval)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := interval.New(at(10, 0), at(9, 0))
		assert.ErrorIs(t, err, interval.ErrEmptyInterval)
	})
}

func TestOverlaps(t *testing.T) {
	testCases := []struct {
		name string
		a, b interval.Interval
		want bool
	}{
		{name: "back to back does not overlap", a: iv(9, 0, 10, 0), b: iv(10, 0, 11, 0), want: false},
		{name: "disjoint", a: iv(9, 0, 10, 0), b: iv(12, 0, 13, 0), want: false},
		{name: "partial overlap", a: iv(9, 0, 10, 30), b: iv(10, 0, 11, 0), want: true},
		{name: "contained", a: iv(9, 0, 12, 0), b: iv(10, 0, 10, 30), want: true},
		{name: "identical", a: iv(10, 0, 11, 0), b: iv(10, 0, 11, 0), want: true},
		{name: "same start different length", a: iv(10, 0, 10, 30), b: iv(10, 0, 11, 0), want: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, interval.Overlaps(tc.a, tc.b))
			assert.Equal(t, tc.want, interval.Overlaps(tc.b, tc.a), "overlap must be symmetric")
		})
	}
}

func TestOverlaps_Reflexive(t *testing.T) {
	for _, i := range []interval.Interval{iv(0, 0, 0, 1), iv(9, 0, 17, 0), iv(23, 0, 23, 59)} {
		assert.True(t, interval.Overlaps(i, i), "%s should overlap itself", i)
	}
}

func TestOverlapsAny(t *testing.T) {
	busy := []interval.Interval{iv(9, 0, 10, 0), iv(12, 0, 13, 0)}

	assert.False(t, interval.OverlapsAny(iv(10, 0, 11, 0), busy))
	assert.True(t, interval.OverlapsAny(iv(12, 30, 13, 30), busy))
	assert.False(t, interval.OverlapsAny(iv(12, 30, 13, 30), nil))
}

func TestContains(t *testing.T) {
	i := iv(9, 0, 10, 0)
	assert.True(t, i.Contains(at(9, 0)))
	assert.True(t, i.Contains(at(9, 59)))
	assert.False(t, i.Contains(at(10, 0)))
}
