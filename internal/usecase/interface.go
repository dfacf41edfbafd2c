package usecase

import (
	"context"

	"ledger-reconciliation/internal/domain"
)

// LedgerSource defines the interface for fetching raw ledger input.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_source.go -source=interface.go LedgerSource
type LedgerSource interface {
	GetLedgerInput(ctx context.Context, path string) (*domain.LedgerInput, error)
}
