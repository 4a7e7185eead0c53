package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluation(t *testing.T) {
	t.Run("higher score is better", func(t *testing.T) {
		high := Evaluation{Score: 2, Age: 0}
		low := Evaluation{Score: 1, Age: 5}

		require.True(t, high.IsBetterThan(low), "Score should dominate age")
		require.False(t, low.IsBetterThan(high))
	})

	t.Run("scores within epsilon fall back to age", func(t *testing.T) {
		early := Evaluation{Score: 1, Age: 3}
		late := Evaluation{Score: 1 + Epsilon/2, Age: 1}

		require.True(t, early.IsBetterThan(late))
		require.False(t, late.IsBetterThan(early))
	})

	t.Run("identical evaluations are not better than each other", func(t *testing.T) {
		a := Evaluation{Score: 4, Age: 2}
		b := Evaluation{Score: 4, Age: 2}

		require.False(t, a.IsBetterThan(b))
		require.False(t, b.IsBetterThan(a))
	})

	t.Run("best and worst keep the first argument on ties", func(t *testing.T) {
		a := Evaluation{Score: 4, Age: 2}
		b := Evaluation{Score: 4 + Epsilon/10, Age: 2}

		require.Equal(t, a, Best(a, b))
		require.Equal(t, a, Worst(a, b))
		require.Equal(t, b, Best(b, a))
	})

	t.Run("best and worst", func(t *testing.T) {
		win := Evaluation{Score: 999, Age: 1}
		loss := Evaluation{Score: -999, Age: 4}

		require.Equal(t, win, Best(loss, win))
		require.Equal(t, loss, Worst(win, loss))
	})
}

func TestBound(t *testing.T) {
	t.Run("initial bound is infinite", func(t *testing.T) {
		b := InitialBound()

		require.True(t, math.IsInf(b.Alpha, -1))
		require.True(t, math.IsInf(b.Beta, 1))
		require.True(t, b.IsPositiveRange())
	})

	t.Run("max raises alpha, min lowers beta", func(t *testing.T) {
		b := InitialBound()

		b.Update(Evaluation{Score: 3}, Max)
		b.Update(Evaluation{Score: 1}, Max)
		require.Equal(t, 3.0, b.Alpha, "Alpha should never decrease")

		b.Update(Evaluation{Score: 8}, Min)
		b.Update(Evaluation{Score: 9}, Min)
		require.Equal(t, 8.0, b.Beta, "Beta should never increase")
		require.True(t, b.IsPositiveRange())
	})

	t.Run("closed range", func(t *testing.T) {
		b := Bound{Alpha: 2, Beta: 5}

		b.Update(Evaluation{Score: 2}, Min)

		require.False(t, b.IsPositiveRange(), "Equal alpha and beta leave nothing to find")
	})
}

func TestAnalytics(t *testing.T) {
	total := internalAnalytics()
	total.Add(leafAnalytics())
	total.Add(leafAnalytics())
	total.Add(Analytics{})

	require.Equal(t, Analytics{NodesEvaluated: 3, LeafNodesEvaluated: 2, InternalNodesEvaluated: 1}, total)
}

func TestNodeType(t *testing.T) {
	require.Equal(t, Min, Max.Alternate())
	require.Equal(t, Max, Min.Alternate())
	require.Equal(t, "max", Max.String())
	require.Panics(t, func() { NodeType(7).Alternate() })

	better := Evaluation{Score: 2}
	worse := Evaluation{Score: 1}
	require.True(t, Max.prefers(better, worse, true))
	require.False(t, Max.prefers(worse, better, true))
	require.True(t, Min.prefers(worse, better, true))
	require.False(t, Min.prefers(better, better, true), "Equal evaluations should not replace")

	early := Evaluation{Score: 2, Age: 3}
	late := Evaluation{Score: 2, Age: 1}
	require.True(t, Max.prefers(early, late, true))
	require.False(t, Max.prefers(early, late, false), "Inexact evaluations should not win on age")
	require.True(t, Max.prefers(better, worse, false))
	require.False(t, Min.prefers(early, late, false))
	require.True(t, Min.prefers(worse, better, false))
}
