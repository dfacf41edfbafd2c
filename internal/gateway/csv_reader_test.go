package gateway

import (
	"context"
	"encoding/csv"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-reconciliation/internal/domain"
)

func TestCSVLedgerSource_GetLedgerInput(t *testing.T) {
	tests := []struct {
		name     string
		csvData  [][]string
		expected []domain.Record
		wantErr  bool
	}{
		{
			name: "valid ledger records",
			csvData: [][]string{
				{"name", "value"},
				{"VendorA", "12"},
				{"VendorB", "9"},
				{"VendorJ", "2.5"},
			},
			expected: []domain.Record{
				{Name: "VendorA", Value: decimal.RequireFromString("12")},
				{Name: "VendorB", Value: decimal.RequireFromString("9")},
				{Name: "VendorJ", Value: decimal.RequireFromString("2.5")},
			},
		},
		{
			name: "header only",
			csvData: [][]string{
				{"name", "value"},
			},
			expected: nil,
		},
		{
			name: "invalid value format",
			csvData: [][]string{
				{"name", "value"},
				{"VendorA", "twelve"},
			},
			wantErr: true,
		},
		{
			name: "wrong field count",
			csvData: [][]string{
				{"name", "value"},
				{"VendorA", "12", "extra"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile, err := createTempCSV(tt.csvData)
			require.NoError(t, err, "failed to create temp CSV file")
			defer os.Remove(tmpFile)

			source := NewCSVLedgerSource()
			ctx := context.Background()

			got, err := source.GetLedgerInput(ctx, tmpFile)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Nil(t, got.ClaimedTotal, "CSV form never carries a claimed total")
			require.Len(t, got.Records, len(tt.expected))
			for i, want := range tt.expected {
				assert.Equal(t, want.Name, got.Records[i].Name)
				assert.True(t, got.Records[i].Value.Equal(want.Value),
					"record %d value = %s, want %s", i, got.Records[i].Value, want.Value)
			}
		})
	}
}

func TestCSVLedgerSource_GetLedgerInput_FileErrors(t *testing.T) {
	source := NewCSVLedgerSource()
	ctx := context.Background()

	t.Run("file not found", func(t *testing.T) {
		_, err := source.GetLedgerInput(ctx, "nonexistent_file.csv")
		assert.Error(t, err)
	})

	t.Run("file with no header", func(t *testing.T) {
		tmpFile, err := os.CreateTemp("", "empty_*.csv")
		require.NoError(t, err)
		defer os.Remove(tmpFile.Name())
		tmpFile.Close()

		_, err = source.GetLedgerInput(ctx, tmpFile.Name())
		assert.Error(t, err)
	})
}

// Helper functions

func createTempCSV(data [][]string) (string, error) {
	tmpFile, err := os.CreateTemp("", "test_*.csv")
	if err != nil {
		return "", err
	}

	writer := csv.NewWriter(tmpFile)
	for _, record := range data {
		if err := writer.Write(record); err != nil {
			tmpFile.Close()
			os.Remove(tmpFile.Name())
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
		return "", err
	}

	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpFile.Name())
		return "", err
	}

	return tmpFile.Name(), nil
}

// Benchmark tests

func BenchmarkCSVLedgerSource_GetLedgerInput(b *testing.B) {
	data := [][]string{{"name", "value"}}
	for i := 0; i < 1000; i++ {
		data = append(data, []string{
			"Vendor" + string(rune('A'+i%26)) + decimal.NewFromInt(int64(i)).String(),
			"150.25",
		})
	}

	tmpFile, err := createTempCSV(data)
	if err != nil {
		b.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile)

	source := NewCSVLedgerSource()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := source.GetLedgerInput(ctx, tmpFile); err != nil {
			b.Fatalf("Error in benchmark: %v", err)
		}
	}
}
