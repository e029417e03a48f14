package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type GameRecord struct {
	ID int
	GameMetric
}

type ActionRecord struct {
	Game int // GameRecord.ID
	ActionMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> and writes all files there.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) writeCSV(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{
		"id", "seed", "rules", "first_player", "winner", "white_score", "black_score",
		"start_time", "end_time", "duration", "actions", "ring_moves", "flips",
		"lines_formed", "lines_resolved", "truncated",
	}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.FormatUint(record.Seed, 10),
			record.Rules,
			record.FirstPlayer,
			record.Winner,
			strconv.Itoa(record.WhiteScore),
			strconv.Itoa(record.BlackScore),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalActions),
			strconv.Itoa(record.RingMoves),
			strconv.Itoa(record.Flips),
			strconv.Itoa(record.LinesFormed),
			strconv.Itoa(record.LinesResolved),
			strconv.FormatBool(record.Truncated),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteActionRecords(records []ActionRecord) error {
	header := []string{"game", "step", "player", "action", "flipped", "lines"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			record.Action,
			strconv.Itoa(record.Flipped),
			strconv.Itoa(record.Lines),
		})
	}
	return w.writeCSV("action_records.csv", header, rows)
}

func (w *Writer) WriteSummary(s Summary) error {
	header := []string{
		"games", "white_wins", "black_wins", "draws", "truncated",
		"mean_actions", "std_actions", "mean_ring_moves", "mean_flips", "mean_lines_resolved",
	}
	row := []string{
		strconv.Itoa(s.Games),
		strconv.Itoa(s.WhiteWins),
		strconv.Itoa(s.BlackWins),
		strconv.Itoa(s.Draws),
		strconv.Itoa(s.Truncated),
		strconv.FormatFloat(s.MeanActions, 'f', 2, 64),
		strconv.FormatFloat(s.StdActions, 'f', 2, 64),
		strconv.FormatFloat(s.MeanRingMoves, 'f', 2, 64),
		strconv.FormatFloat(s.MeanFlips, 'f', 2, 64),
		strconv.FormatFloat(s.MeanLinesResolved, 'f', 2, 64),
	}
	return w.writeCSV("summary.csv", header, [][]string{row})
}
