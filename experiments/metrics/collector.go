package metrics

import (
	"time"

	"yinsh/game"
)

// ActionMetric describes one applied action.
type ActionMetric struct {
	Step    int
	Player  string
	Action  string // game.ActionType
	Flipped int
	Lines   int // Lines formed by a ring move
}

type GameMetric struct {
	Seed          uint64
	Rules         string
	FirstPlayer   string
	Winner        string // Empty for a draw or an unfinished game
	WhiteScore    int
	BlackScore    int
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	TotalActions  int
	RingMoves     int
	Flips         int
	LinesFormed   int
	LinesResolved int
	Truncated     bool // Stopped at the action cap
}

type Collector interface {
	Start(seed uint64, rules string, first game.Color)
	Record(step int, player game.Color, action game.Action, effects []game.Effect)
	Complete(final *game.Game, truncated bool) (GameMetric, []ActionMetric)
}

type collector struct {
	game    GameMetric
	actions []ActionMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(seed uint64, rules string, first game.Color) {
	m.game = GameMetric{
		Seed:        seed,
		Rules:       rules,
		FirstPlayer: first.String(),
		StartTime:   time.Now(),
	}
	m.actions = nil
}

func (m *collector) Record(step int, player game.Color, action game.Action, effects []game.Effect) {
	am := ActionMetric{
		Step:   step,
		Player: player.String(),
		Action: action.Type.String(),
	}
	for _, e := range effects {
		switch e.Type {
		case game.RingMoved:
			m.game.RingMoves++
			am.Flipped += len(e.Flipped)
		case game.LinesFormed:
			am.Lines += len(e.Lines)
		case game.LineResolved:
			m.game.LinesResolved++
		}
	}
	m.game.TotalActions++
	m.game.Flips += am.Flipped
	m.game.LinesFormed += am.Lines
	m.actions = append(m.actions, am)
}

func (m *collector) Complete(final *game.Game, truncated bool) (GameMetric, []ActionMetric) {
	m.game.EndTime = time.Now()
	m.game.Duration = m.game.EndTime.Sub(m.game.StartTime)
	m.game.Truncated = truncated
	if final.IsOver() && final.Winner() != game.NoColor {
		m.game.Winner = final.Winner().String()
	}
	scores := final.Scores()
	m.game.WhiteScore = scores[game.White]
	m.game.BlackScore = scores[game.Black]
	return m.game, m.actions
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(seed uint64, rules string, first game.Color)                             {}
func (m *dummyCollector) Record(step int, player game.Color, action game.Action, effects []game.Effect) {}
func (m *dummyCollector) Complete(final *game.Game, truncated bool) (GameMetric, []ActionMetric) {
	return GameMetric{}, nil
}
