package gamemaster

import (
	"testing"

	"yinsh/game"

	"github.com/stretchr/testify/require"
)

var placements = []game.Position{
	game.Pos(0, 0), game.Pos(1, 3),
	game.Pos(2, 0), game.Pos(3, 1),
	game.Pos(-2, 0), game.Pos(-1, -3),
	game.Pos(0, 2), game.Pos(-3, -1),
	game.Pos(0, -2), game.Pos(2, -2),
}

func TestLocalEngineInit(t *testing.T) {
	engine := NewLocalEngine()
	state, getUpdate := engine.Init()

	require.Equal(t, game.PlacementPhase, state.Phase(), "Game should start in placement")
	require.Equal(t, game.White, state.CurrentPlayer(), "White should place first")
	require.Equal(t, 5, state.Player(game.White).RingsToPlace, "White should have five rings to place")

	_, ok := getUpdate()
	require.False(t, ok, "No update should be available before any action")

	t.Run("returned state is a copy", func(t *testing.T) {
		require.NoError(t, engine.Play(game.PlaceRing(game.Pos(0, 0))), "Placement should be legal")
		require.True(t, state.Board().IsEmpty(game.Pos(0, 0)), "Initial copy should not follow the engine")
	})
}

func TestLocalEnginePlay(t *testing.T) {
	t.Run("legal action produces an update", func(t *testing.T) {
		engine := NewLocalEngine()
		_, getUpdate := engine.Init()

		action := game.PlaceRing(game.Pos(0, 0))
		require.NoError(t, engine.Play(action), "Placement should be legal")

		u, ok := getUpdate()
		require.True(t, ok, "Update should be queued")
		require.Equal(t, action, u.Action, "Update should carry the action")
		require.Equal(t, game.RingPlaced, u.Effects[0].Type, "Update should carry the effects")
		require.Equal(t, game.Black, u.State.CurrentPlayer(), "Black should be to play")

		_, ok = getUpdate()
		require.False(t, ok, "Update should be consumed once")
	})

	t.Run("updates are delivered in order", func(t *testing.T) {
		engine := NewLocalEngine()
		_, getUpdate := engine.Init()

		for _, p := range placements[:3] {
			require.NoError(t, engine.Play(game.PlaceRing(p)), "Placement at %v should be legal", p)
		}
		for _, p := range placements[:3] {
			u, ok := getUpdate()
			require.True(t, ok, "Update for %v should be queued", p)
			require.Equal(t, game.PlaceRing(p), u.Action, "Updates should keep action order")
		}
	})

	t.Run("illegal action is rejected", func(t *testing.T) {
		engine := NewLocalEngine()
		_, getUpdate := engine.Init()

		err := engine.Play(game.MoveRing(game.Pos(0, 0), game.Pos(0, 1)))
		require.ErrorIs(t, err, game.ErrIllegalMove, "Moving during placement should be illegal")

		_, ok := getUpdate()
		require.False(t, ok, "Rejected action should not produce an update")
		require.Equal(t, game.White, engine.State().CurrentPlayer(), "White should still be to play")
	})

	t.Run("uninitialized engine", func(t *testing.T) {
		engine := NewLocalEngine()
		require.Error(t, engine.Play(game.PlaceRing(game.Pos(0, 0))), "Play before Init should fail")
		require.Nil(t, engine.State(), "No state before Init")
	})

	t.Run("full placement reaches the movement phase", func(t *testing.T) {
		engine := NewLocalEngine()
		engine.Init()

		for _, p := range placements {
			require.NoError(t, engine.Play(game.PlaceRing(p)), "Placement at %v should be legal", p)
		}
		state := engine.State()
		require.Equal(t, game.MovementPhase, state.Phase(), "All rings placed should start movement")
		require.Equal(t, game.White, state.CurrentPlayer(), "White should move first")

		require.NoError(t, engine.Play(game.SelectRing(game.Pos(0, 0))), "White should select a ring")
		require.NoError(t, engine.Play(game.MoveRing(game.Pos(0, 0), game.Pos(0, 1))), "White should move")
		require.Equal(t, game.Black, engine.State().CurrentPlayer(), "Black should be to play")
	})
}

// playToLine drives a two-ring blitz game until White has completed a
// vertical line at x=0 and must resolve it.
func playToLine(t *testing.T, engine *localEngine) game.Line {
	t.Helper()
	actions := []game.Action{
		game.PlaceRing(game.Pos(0, -2)), game.PlaceRing(game.Pos(4, 0)),
		game.PlaceRing(game.Pos(-3, -3)), game.PlaceRing(game.Pos(-3, 0)),
	}
	for i := 0; i < 5; i++ {
		actions = append(actions,
			game.SelectRing(game.Pos(0, i-2)),
			game.MoveRing(game.Pos(0, i-2), game.Pos(0, i-1)),
		)
		if i < 4 {
			actions = append(actions,
				game.SelectRing(game.Pos(4, i)),
				game.MoveRing(game.Pos(4, i), game.Pos(4, i+1)),
			)
		}
	}
	for _, a := range actions {
		require.NoError(t, engine.Play(a), "%v should be legal", a)
	}

	line := game.Line{Color: game.White}
	for i := range line.Cells {
		line.Cells[i] = game.Pos(0, i-2)
	}
	require.Equal(t, []game.Line{line}, engine.State().PendingLines(game.White), "White should have completed a line")
	return line
}

func TestLocalEngineGameOver(t *testing.T) {
	engine := NewLocalEngine()
	_, getUpdate := engine.Init(game.WithRules(&game.StandardRules{Rings: 2, ToWin: 1}))
	line := playToLine(t, engine)

	require.NoError(t, engine.Play(game.ResolveLine(line, game.Pos(-3, -3))), "White should resolve the line")

	var last Update
	for u, ok := getUpdate(); ok; u, ok = getUpdate() {
		last = u
	}
	require.True(t, last.State.IsOver(), "Final update should show the game over")
	require.Equal(t, game.White, last.State.Winner(), "White should win")

	err := engine.Play(game.SelectRing(game.Pos(-3, 0)))
	require.ErrorIs(t, err, game.ErrGameOver, "No actions should be allowed after the end")
}

func TestLocalEngineUndo(t *testing.T) {
	t.Run("nothing to undo", func(t *testing.T) {
		engine := NewLocalEngine()
		engine.Init()
		require.ErrorIs(t, engine.Undo(), ErrNothingToUndo, "Fresh game should have no history")
	})

	t.Run("undo restores the previous state", func(t *testing.T) {
		engine := NewLocalEngine()
		_, getUpdate := engine.Init()

		require.NoError(t, engine.Play(game.PlaceRing(game.Pos(0, 0))), "White placement should be legal")
		before := engine.State().Hash()
		require.NoError(t, engine.Play(game.PlaceRing(game.Pos(1, 3))), "Black placement should be legal")

		require.NoError(t, engine.Undo(), "Undo should succeed")
		require.Equal(t, before, engine.State().Hash(), "State should be back before Black's placement")
		require.Equal(t, game.Black, engine.State().CurrentPlayer(), "Black should be to play again")
		_, ok := getUpdate()
		require.False(t, ok, "Stale updates should be dropped")

		require.NoError(t, engine.Undo(), "Second undo should succeed")
		require.Equal(t, game.White, engine.State().CurrentPlayer(), "White should be to play again")
		require.ErrorIs(t, engine.Undo(), ErrNothingToUndo, "History should be exhausted")
	})

	t.Run("undo reopens a finished game", func(t *testing.T) {
		engine := NewLocalEngine()
		engine.Init(game.WithRules(&game.StandardRules{Rings: 2, ToWin: 1}))
		line := playToLine(t, engine)
		require.NoError(t, engine.Play(game.ResolveLine(line, game.Pos(-3, -3))), "White should resolve the line")
		require.True(t, engine.State().IsOver(), "Game should be over")

		require.NoError(t, engine.Undo(), "Undo should succeed")
		require.False(t, engine.State().IsOver(), "Game should be open again")
		require.Equal(t, game.ResolveOwnLines, engine.State().Step(), "White should be resolving again")
		require.NoError(t, engine.Play(game.ResolveLine(line, game.Pos(0, 3))), "White should resolve with the other ring")
	})
}

func TestLocalEngineRestart(t *testing.T) {
	engine := NewLocalEngine()
	_, getUpdate := engine.Init(game.WithFirstPlayer(game.Black))
	require.NoError(t, engine.Play(game.PlaceRing(game.Pos(0, 0))), "Black placement should be legal")

	require.NoError(t, engine.Restart(), "Restart should succeed")
	state := engine.State()
	require.Equal(t, game.PlacementPhase, state.Phase(), "Restarted game should be in placement")
	require.Equal(t, game.Black, state.CurrentPlayer(), "Restart should keep the options")
	require.True(t, state.Board().IsEmpty(game.Pos(0, 0)), "Board should be cleared")
	require.ErrorIs(t, engine.Undo(), ErrNothingToUndo, "History should be cleared")
	_, ok := getUpdate()
	require.False(t, ok, "Pending updates should be cleared")
}

func TestGetLocalEngine(t *testing.T) {
	require.Same(t, GetLocalEngine(), GetLocalEngine(), "Engine should be shared")
}
