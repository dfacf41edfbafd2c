package domain

import "github.com/shopspring/decimal"

// Record is one named metric in a ledger, e.g. a vendor's reported download
// count. Immutable once its ledger is built.
type Record struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// LedgerInput is the raw parse result of a ledger source, before any
// validation has been applied.
type LedgerInput struct {
	Records      []Record
	ClaimedTotal *decimal.Decimal
}

// Ledger is an ordered sequence of records plus an optional claimed total.
// Built only through NewLedger and never mutated afterwards; reconciliation
// derives a new result rather than altering the ledger.
type Ledger struct {
	Records      []Record         `json:"records"`
	ClaimedTotal *decimal.Decimal `json:"claimed_total,omitempty"`
}

// NewLedger validates records and the optional claimed total and constructs
// a Ledger. Record names must be non-empty and unique, values and the claimed
// total non-negative. On failure it returns a *ValidationError and nothing is
// partially constructed.
func NewLedger(records []Record, claimedTotal *decimal.Decimal) (*Ledger, error) {
	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		if rec.Name == "" {
			return nil, &ValidationError{Index: i, Reason: "record name is empty"}
		}
		if rec.Value.IsNegative() {
			return nil, &ValidationError{Index: i, Name: rec.Name, Reason: "value " + rec.Value.String() + " is negative"}
		}
		if _, ok := seen[rec.Name]; ok {
			return nil, &ValidationError{Index: i, Name: rec.Name, Reason: "duplicate record name"}
		}
		seen[rec.Name] = struct{}{}
	}
	if claimedTotal != nil && claimedTotal.IsNegative() {
		return nil, &ValidationError{Index: -1, Reason: "claimed total " + claimedTotal.String() + " is negative"}
	}

	ledger := &Ledger{Records: make([]Record, len(records))}
	copy(ledger.Records, records)
	if claimedTotal != nil {
		ct := *claimedTotal
		ledger.ClaimedTotal = &ct
	}
	return ledger, nil
}
