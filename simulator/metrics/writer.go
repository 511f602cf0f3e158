// Package metrics writes batch simulation results as CSV files for
// offline analysis.
package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// StrategyConfig describes one seat in a match-up.
type StrategyConfig struct {
	Player int
	Name   string
	Seed   uint64
}

// GameRecord is one game's row in the results CSV.
type GameRecord struct {
	ID       int
	Winner   int // player index, -1 for tie
	ScoreGap int
	Rounds   int
	Scores   []int
	Failed   bool
}

// Writer dumps simulation records under a per-run directory.
type Writer struct {
	baseDir string
}

// NewWriter creates sims/<name>/<runID>/ and returns a writer rooted
// there.
func NewWriter(name, runID string) (*Writer, error) {
	baseDir := filepath.Join("sims", name, runID)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// Dir returns the directory records are written to.
func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteStrategyConfigs stores the seat line-up.
func (w *Writer) WriteStrategyConfigs(configs []StrategyConfig) error {
	path := filepath.Join(w.baseDir, "strategy_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create strategy configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write([]string{"player", "name", "seed"}); err != nil {
		return fmt.Errorf("failed to write strategy configs header: %w", err)
	}
	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.Player),
			config.Name,
			strconv.FormatUint(config.Seed, 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write strategy config row: %w", err)
		}
	}
	return nil
}

// WriteGameRecords stores one row per game.
func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "winner", "score_gap", "rounds", "scores", "failed"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}
	for _, record := range records {
		scores := make([]string, len(record.Scores))
		for i, s := range record.Scores {
			scores[i] = strconv.Itoa(s)
		}
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Winner),
			strconv.Itoa(record.ScoreGap),
			strconv.Itoa(record.Rounds),
			strings.Join(scores, " "),
			strconv.FormatBool(record.Failed),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}
	return nil
}
