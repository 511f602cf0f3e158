package simulator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintResults(t *testing.T) {
	results := Results{
		RunID:          "run-x",
		NumGames:       10,
		Failures:       1,
		Wins:           []int{6, 2},
		Ties:           1,
		WinPercentages: []float64{66.7, 22.2},
		ScoreDistributions: []DistributionStats{
			{Mean: 5, Std: 1, Min: 3, Max: 7, Median: 5, Count: 9},
			{Mean: 4, Std: 1, Min: 2, Max: 6, Median: 4, Count: 9},
		},
		ScoreGapDistribution: DistributionStats{Mean: 2, Count: 8},
		RoundsDistribution:   DistributionStats{Mean: 26, Count: 9},
		NeighborAffinityDistributions: []DistributionStats{
			{Mean: 0.5, Count: 9},
			{Mean: 0.4, Count: 9},
		},
	}

	var sb strings.Builder
	PrintResults(&sb, results, []string{"Greedy", "Random"})
	out := sb.String()

	require.Contains(t, out, "SIMULATION RESULTS (10 games, run run-x)")
	require.Contains(t, out, "Greedy: 6 wins (66.7%)")
	require.Contains(t, out, "Random: 2 wins (22.2%)")
	require.Contains(t, out, "Failed runs: 1 of 10")
	require.Contains(t, out, "Ties: 1")
}

func TestPrintResultsDefaultNames(t *testing.T) {
	results := Results{
		NumGames:             2,
		Wins:                 []int{1, 1},
		WinPercentages:       []float64{50, 50},
		ScoreDistributions:   []DistributionStats{{}, {}},
		ScoreGapDistribution: DistributionStats{},
		RoundsDistribution:   DistributionStats{},
		NeighborAffinityDistributions: []DistributionStats{
			{}, {},
		},
	}

	var sb strings.Builder
	PrintResults(&sb, results, nil)
	require.Contains(t, sb.String(), "Player 0: 1 wins (50.0%)")
}

func TestWriteCSVRequiresRaw(t *testing.T) {
	_, err := Results{}.WriteCSV("matchup", nil)
	require.Error(t, err)
}
