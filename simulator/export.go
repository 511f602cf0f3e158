package simulator

import (
	"fmt"

	"github.com/sirpthatch/tangosim/simulator/metrics"
)

// WriteCSV dumps the per-game records of a batch (kept with
// WithKeepRaw) under sims/<name>/<run-id>/ and returns that directory.
func (r Results) WriteCSV(name string, configs []metrics.StrategyConfig) (string, error) {
	if len(r.Raw) == 0 {
		return "", fmt.Errorf("no raw results retained; run the simulator with WithKeepRaw")
	}

	writer, err := metrics.NewWriter(name, r.RunID)
	if err != nil {
		return "", err
	}
	if err := writer.WriteStrategyConfigs(configs); err != nil {
		return "", err
	}

	records := make([]metrics.GameRecord, len(r.Raw))
	for i, result := range r.Raw {
		records[i] = metrics.GameRecord{
			ID:       i + 1,
			Winner:   result.Winner,
			ScoreGap: result.ScoreGap,
			Rounds:   result.Rounds,
			Scores:   result.Scores,
			Failed:   result.Err != nil,
		}
	}
	if err := writer.WriteGameRecords(records); err != nil {
		return "", err
	}
	return writer.Dir(), nil
}
