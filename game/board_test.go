package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoard(t *testing.T) {
	t.Run("new board is empty", func(t *testing.T) {
		b := NewBoard(StandardTopology())
		for _, sq := range b.Snapshot() {
			require.True(t, sq.Cell.IsEmpty(), "Cell %v should be empty", sq.Pos)
		}
		require.Len(t, b.Snapshot(), 85, "Snapshot should cover every cell")
	})

	t.Run("querying rings and markers", func(t *testing.T) {
		b := boardWith(t, merge(rings(White, Pos(0, 0)), markers(Black, Pos(1, 0))))

		owner, ok := b.RingAt(Pos(0, 0))
		require.True(t, ok, "Ring should be found")
		require.Equal(t, White, owner, "Ring should belong to White")
		_, ok = b.MarkerAt(Pos(0, 0))
		require.False(t, ok, "Ring cell should hold no marker")

		face, ok := b.MarkerAt(Pos(1, 0))
		require.True(t, ok, "Marker should be found")
		require.Equal(t, Black, face, "Marker should show Black")
		require.False(t, b.IsEmpty(Pos(1, 0)), "Marker cell should not be empty")
		require.True(t, b.IsEmpty(Pos(2, 0)), "Untouched cell should be empty")

		require.Equal(t, []Position{Pos(0, 0)}, b.Rings(White), "White should have one ring")
		require.Empty(t, b.Rings(Black), "Black should have no rings")
		require.Equal(t, 1, b.Count(Marker, NoColor), "Board should hold one marker")
	})

	t.Run("flipping a marker", func(t *testing.T) {
		b := boardWith(t, merge(rings(White, Pos(0, 0)), markers(White, Pos(2, 3))))

		require.False(t, b.flip(Pos(1, 1)), "Flipping an empty cell should be a no-op")
		require.False(t, b.flip(Pos(0, 0)), "Flipping a ring should be a no-op")
		require.True(t, b.flip(Pos(2, 3)), "Marker should flip")

		face, _ := b.MarkerAt(Pos(2, 3))
		require.Equal(t, Black, face, "Flipped marker should show the other color")
	})

	t.Run("copies are independent", func(t *testing.T) {
		b := boardWith(t, rings(White, Pos(0, 0)))
		cp := b.Copy()
		cp.clear(Pos(0, 0))

		require.False(t, b.IsEmpty(Pos(0, 0)), "Original should keep its ring")
		require.True(t, cp.IsEmpty(Pos(0, 0)), "Copy should change on its own")
	})

	t.Run("off-lattice positions panic", func(t *testing.T) {
		b := NewBoard(StandardTopology())
		require.Panics(t, func() { b.Get(Pos(0, 5)) }, "Get should fail fast off the board")
		require.Panics(t, func() { b.set(Pos(6, 0), RingOf(White)) }, "set should fail fast off the board")
	})
}
