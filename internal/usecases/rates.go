package usecases

import (
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/cleitonmarx/symbiont-query-context/internal/domain"
	"go.yaml.in/yaml/v3"
)

//go:embed rates/generation.yml
var generationRates embed.FS

type rateTableEntry struct {
	Model                 string        `yaml:"model"`
	InputPer1KTokens      float64       `yaml:"input_per_1k_tokens"`
	OutputPer1KTokens     float64       `yaml:"output_per_1k_tokens"`
	BaseLatency           time.Duration `yaml:"base_latency"`
	LatencyPerOutputToken time.Duration `yaml:"latency_per_output_token"`
}

// loadRateTables decodes the embedded generation rate tables, keyed by model.
func loadRateTables() (map[string]domain.RateTable, error) {
	file, err := generationRates.Open("rates/generation.yml")
	if err != nil {
		return nil, fmt.Errorf("failed to open generation rates: %w", err)
	}
	defer file.Close() //nolint:errcheck

	entries := []rateTableEntry{}
	if err := yaml.NewDecoder(file).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode generation rates: %w", err)
	}

	tables := make(map[string]domain.RateTable, len(entries))
	for _, e := range entries {
		if e.Model == "" {
			return nil, errors.New("generation rate entry without model")
		}
		if e.InputPer1KTokens < 0 || e.OutputPer1KTokens < 0 {
			return nil, fmt.Errorf("generation rates for %s must not be negative", e.Model)
		}
		tables[e.Model] = domain.RateTable{
			Model:                 e.Model,
			InputPer1KTokens:      e.InputPer1KTokens,
			OutputPer1KTokens:     e.OutputPer1KTokens,
			BaseLatency:           e.BaseLatency,
			LatencyPerOutputToken: e.LatencyPerOutputToken,
		}
	}
	return tables, nil
}
