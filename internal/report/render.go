package report

import (
	"fmt"
	"strings"

	"ledger-reconciliation/internal/domain"
)

// Render produces the human-readable reconciliation summary: every record
// with its value, the computed total, the claimed total when present, and an
// explicit match/mismatch statement. It only returns text; writing it
// anywhere is the caller's concern.
func Render(ledger *domain.Ledger, result domain.ReconciliationResult) string {
	var b strings.Builder

	b.WriteString("Ledger reconciliation report\n")
	b.WriteString("============================\n")
	for _, rec := range ledger.Records {
		fmt.Fprintf(&b, "  %-32s %s\n", rec.Name, rec.Value)
	}
	b.WriteString("----------------------------\n")
	fmt.Fprintf(&b, "Computed total: %s\n", result.ComputedTotal)

	if result.ClaimedTotal == nil {
		b.WriteString("Claimed total:  (none)\n")
		b.WriteString("No claimed total to reconcile against; computed total stands.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Claimed total:  %s\n", result.ClaimedTotal)
	if result.Matches {
		b.WriteString("MATCH: computed total equals claimed total.\n")
	} else {
		fmt.Fprintf(&b, "MISMATCH: computed total differs from claimed total by %s.\n", result.Discrepancy)
	}
	return b.String()
}
