package domain

import "github.com/shopspring/decimal"

// ReconciliationResult is the derived outcome of reconciling a ledger.
// Read-only; recomputed on demand and never stored back onto the ledger.
type ReconciliationResult struct {
	ComputedTotal decimal.Decimal  `json:"computed_total"`
	ClaimedTotal  *decimal.Decimal `json:"claimed_total,omitempty"`
	Discrepancy   decimal.Decimal  `json:"discrepancy"`
	Matches       bool             `json:"matches"`
}

// Reconcile sums the ledger's record values exactly and compares the sum to
// the claimed total when one is present. Discrepancy is computed minus
// claimed, and zero when no total was claimed. Pure function of the ledger,
// so concurrent callers need no coordination.
func (l *Ledger) Reconcile() ReconciliationResult {
	total := decimal.Zero
	for _, rec := range l.Records {
		total = total.Add(rec.Value)
	}

	result := ReconciliationResult{
		ComputedTotal: total,
		Matches:       true,
	}
	if l.ClaimedTotal != nil {
		ct := *l.ClaimedTotal
		result.ClaimedTotal = &ct
		result.Discrepancy = total.Sub(ct)
		result.Matches = result.Discrepancy.IsZero()
	}
	return result
}
