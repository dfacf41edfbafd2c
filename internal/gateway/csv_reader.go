package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"

	"ledger-reconciliation/internal/domain"
)

// CSVLedgerSource implements the LedgerSource interface for CSV files.
type CSVLedgerSource struct{}

// NewCSVLedgerSource creates a new source instance.
func NewCSVLedgerSource() *CSVLedgerSource {
	return &CSVLedgerSource{}
}

// GetLedgerInput reads and parses a ledger CSV file. The first row is the
// "name,value" header; every following row is one record. Values are parsed
// straight into decimals so no floating-point conversion ever occurs.
func (s *CSVLedgerSource) GetLedgerInput(ctx context.Context, path string) (*domain.LedgerInput, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = 2
	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	input := &domain.LedgerInput{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}

		value, err := decimal.NewFromString(row[1])
		if err != nil {
			return nil, fmt.Errorf("could not parse value '%s': %w", row[1], err)
		}

		input.Records = append(input.Records, domain.Record{
			Name:  row[0],
			Value: value,
		})
	}
	return input, nil
}
