package gateway

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"ledger-reconciliation/internal/domain"
)

// yamlLedgerDocument mirrors the on-disk YAML ledger form. Numeric fields are
// kept as raw nodes so their exact lexical form reaches the decimal parser.
type yamlLedgerDocument struct {
	Records []struct {
		Name  string    `yaml:"name"`
		Value yaml.Node `yaml:"value"`
	} `yaml:"records"`
	ClaimedTotal yaml.Node `yaml:"claimed_total"`
}

// YAMLLedgerSource implements the LedgerSource interface for YAML documents.
// Unlike the CSV form, a YAML ledger can carry its claimed total inline.
type YAMLLedgerSource struct{}

// NewYAMLLedgerSource creates a new source instance.
func NewYAMLLedgerSource() *YAMLLedgerSource {
	return &YAMLLedgerSource{}
}

// GetLedgerInput reads and parses a ledger YAML file.
func (s *YAMLLedgerSource) GetLedgerInput(ctx context.Context, path string) (*domain.LedgerInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger file %s: %w", path, err)
	}

	var doc yamlLedgerDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse ledger YAML %s: %w", path, err)
	}

	input := &domain.LedgerInput{}
	for _, rec := range doc.Records {
		value, err := decimal.NewFromString(rec.Value.Value)
		if err != nil {
			return nil, fmt.Errorf("could not parse value '%s' for record '%s': %w", rec.Value.Value, rec.Name, err)
		}
		input.Records = append(input.Records, domain.Record{
			Name:  rec.Name,
			Value: value,
		})
	}

	if !doc.ClaimedTotal.IsZero() {
		ct, err := decimal.NewFromString(doc.ClaimedTotal.Value)
		if err != nil {
			return nil, fmt.Errorf("could not parse claimed_total '%s': %w", doc.ClaimedTotal.Value, err)
		}
		input.ClaimedTotal = &ct
	}
	return input, nil
}
