package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"ledger-reconciliation/internal/domain"
)

// LedgerUseCase orchestrates loading and reconciling a ledger.
type LedgerUseCase struct {
	source LedgerSource
}

// NewLedgerUseCase creates a new instance of the usecase.
func NewLedgerUseCase(source LedgerSource) *LedgerUseCase {
	return &LedgerUseCase{source: source}
}

// Load reads raw ledger input from the source and builds a validated Ledger.
// An explicit claimed total overrides whatever the source carries. Validation
// failures surface as *domain.ValidationError.
func (uc *LedgerUseCase) Load(ctx context.Context, path string, claimedTotal *decimal.Decimal) (*domain.Ledger, error) {
	input, err := uc.source.GetLedgerInput(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("could not get ledger input: %w", err)
	}

	claimed := input.ClaimedTotal
	if claimedTotal != nil {
		claimed = claimedTotal
	}

	ledger, err := domain.NewLedger(input.Records, claimed)
	if err != nil {
		return nil, err
	}
	return ledger, nil
}

// Reconcile loads the ledger at path and reconciles it in one step.
func (uc *LedgerUseCase) Reconcile(ctx context.Context, path string, claimedTotal *decimal.Decimal) (*domain.Ledger, domain.ReconciliationResult, error) {
	ledger, err := uc.Load(ctx, path, claimedTotal)
	if err != nil {
		return nil, domain.ReconciliationResult{}, err
	}
	return ledger, ledger.Reconcile(), nil
}
