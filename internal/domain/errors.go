package domain

import "fmt"

// ValidationError reports malformed ledger input. The load that produced it
// aborts; nothing is retried.
type ValidationError struct {
	Index  int    // position of the offending record, -1 when not record-specific
	Name   string // record name, when known
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("invalid ledger: record %q: %s", e.Name, e.Reason)
	}
	return fmt.Sprintf("invalid ledger: %s", e.Reason)
}
