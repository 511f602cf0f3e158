package simulator

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
)

// PrintResults writes a human-readable summary of a batch to w. Player
// names default to "Player 0", "Player 1", ...
func PrintResults(w io.Writer, results Results, playerNames []string) {
	numPlayers := len(results.Wins)
	if playerNames == nil {
		playerNames = make([]string, numPlayers)
		for i := range playerNames {
			playerNames[i] = fmt.Sprintf("Player %d", i)
		}
	}

	rule := strings.Repeat("=", 60)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "SIMULATION RESULTS (%s games, run %s)\n",
		humanize.Comma(int64(results.NumGames)), results.RunID)
	fmt.Fprintln(w, rule)

	completed := results.NumGames - results.Failures
	if results.Failures > 0 {
		fmt.Fprintf(w, "\nFailed runs: %d of %s\n",
			results.Failures, humanize.Comma(int64(results.NumGames)))
	}

	fmt.Fprintln(w, "\n--- Win Statistics ---")
	for i, name := range playerNames {
		fmt.Fprintf(w, "  %s: %s wins (%.1f%%)\n",
			name, humanize.Comma(int64(results.Wins[i])), results.WinPercentages[i])
	}
	tiePct := 0.0
	if completed > 0 {
		tiePct = float64(results.Ties) / float64(completed) * 100
	}
	fmt.Fprintf(w, "  Ties: %d (%.1f%%)\n", results.Ties, tiePct)

	fmt.Fprintln(w, "\n--- Score Distributions ---")
	for i, name := range playerNames {
		dist := results.ScoreDistributions[i]
		fmt.Fprintf(w, "  %s:\n", name)
		fmt.Fprintf(w, "    Mean: %.2f | Std: %.2f\n", dist.Mean, dist.Std)
		fmt.Fprintf(w, "    Min: %.0f | Max: %.0f | Median: %.1f\n", dist.Min, dist.Max, dist.Median)
	}

	fmt.Fprintln(w, "\n--- Score Gap (Winner - Loser) ---")
	gap := results.ScoreGapDistribution
	if gap.Count > 0 {
		fmt.Fprintf(w, "  Mean: %.2f | Std: %.2f\n", gap.Mean, gap.Std)
		fmt.Fprintf(w, "  Min: %.0f | Max: %.0f | Median: %.1f\n", gap.Min, gap.Max, gap.Median)
	} else {
		fmt.Fprintln(w, "  No decisive games (all ties)")
	}

	fmt.Fprintln(w, "\n--- Game Length (Rounds) ---")
	rounds := results.RoundsDistribution
	fmt.Fprintf(w, "  Mean: %.2f | Std: %.2f\n", rounds.Mean, rounds.Std)
	fmt.Fprintf(w, "  Min: %.0f | Max: %.0f | Median: %.1f\n", rounds.Min, rounds.Max, rounds.Median)

	fmt.Fprintln(w, "\n--- Neighbor Affinity (Clustering) ---")
	for i, name := range playerNames {
		aff := results.NeighborAffinityDistributions[i]
		fmt.Fprintf(w, "  %s:\n", name)
		fmt.Fprintf(w, "    Mean: %.3f | Std: %.3f\n", aff.Mean, aff.Std)
		fmt.Fprintf(w, "    Min: %.3f | Max: %.3f\n", aff.Min, aff.Max)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
}
