package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	t.Run("five in a row", func(t *testing.T) {
		b := boardWith(t, markers(White, row(0, -2, -1, 0, 1, 2)...))
		require.Equal(t, []Line{lineOf(White, row(0, -2, -1, 0, 1, 2)...)}, b.Lines(White),
			"Row of five should form one line")
		require.Empty(t, b.Lines(Black), "Black should have no line")
	})

	t.Run("four in a row", func(t *testing.T) {
		b := boardWith(t, markers(White, row(0, -2, -1, 0, 1)...))
		require.Empty(t, b.Lines(White), "Four markers should not form a line")
	})

	t.Run("interrupted by the other color", func(t *testing.T) {
		b := boardWith(t, merge(markers(White, row(0, -2, -1, 1, 2, 3)...), markers(Black, Pos(0, 0))))
		require.Empty(t, b.Lines(White), "Opposing marker should break the run")
	})

	t.Run("diagonal", func(t *testing.T) {
		cells := []Position{Pos(-2, -2), Pos(-1, -1), Pos(0, 0), Pos(1, 1), Pos(2, 2)}
		b := boardWith(t, markers(Black, cells...))
		require.Equal(t, []Line{lineOf(Black, cells...)}, b.Lines(Black), "NE diagonal should form a line")
	})

	t.Run("six in a row yields two windows", func(t *testing.T) {
		b := boardWith(t, markers(White, row(0, -2, -1, 0, 1, 2, 3)...))
		require.Equal(t, []Line{
			lineOf(White, row(0, -2, -1, 0, 1, 2)...),
			lineOf(White, row(0, -1, 0, 1, 2, 3)...),
		}, b.Lines(White), "Six markers should yield two overlapping lines")
	})

	t.Run("seven in a column yields three windows", func(t *testing.T) {
		b := boardWith(t, markers(Black, column(0, -3, -2, -1, 0, 1, 2, 3)...))
		require.Equal(t, []Line{
			lineOf(Black, column(0, -3, -2, -1, 0, 1)...),
			lineOf(Black, column(0, -2, -1, 0, 1, 2)...),
			lineOf(Black, column(0, -1, 0, 1, 2, 3)...),
		}, b.findLines([]Position{Pos(0, 0)}), "Seven markers should yield three lines")
	})

	t.Run("crossing lines are both reported once", func(t *testing.T) {
		b := boardWith(t, merge(
			markers(White, row(0, -2, -1, 0, 1, 2)...),
			markers(White, column(0, -2, -1, 1, 2)...),
		))
		rowLine := lineOf(White, row(0, -2, -1, 0, 1, 2)...)
		columnLine := lineOf(White, column(0, -2, -1, 0, 1, 2)...)

		require.Equal(t, []Line{rowLine, columnLine}, b.Lines(White), "Both lines should be found once each")
		require.True(t, rowLine.Overlaps(columnLine), "Lines should share the centre marker")
		require.Equal(t, []Line{columnLine}, b.findLines([]Position{Pos(0, 2)}),
			"Search from one marker should only report lines through it")
	})

	t.Run("line validity follows the board", func(t *testing.T) {
		b := boardWith(t, markers(White, row(0, -2, -1, 0, 1, 2)...))
		line := lineOf(White, row(0, -2, -1, 0, 1, 2)...)
		require.True(t, b.isLine(line), "Line should be intact")

		b.flip(Pos(1, 0))
		require.False(t, b.isLine(line), "Flipped marker should break the line")
		require.False(t, b.isLine(lineOf(White, row(0, 1, 2, 3, 4, 5)...)), "Off-board cells should never form a line")
	})

	t.Run("disjoint lines do not overlap", func(t *testing.T) {
		a := lineOf(White, row(0, -2, -1, 0, 1, 2)...)
		b := lineOf(White, row(1, -2, -1, 0, 1, 2)...)
		require.False(t, a.Overlaps(b), "Parallel rows should not overlap")
	})
}
