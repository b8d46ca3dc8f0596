// Package billing applies the fixed per-call charges of the paid
// endpoints. Charges are metered in process; settlement and
// reconciliation happen elsewhere.
package billing

import (
	"sync"
	"time"
)

// MinorUnits is a charge amount in minor currency units (e.g. 1000 =
// $0.001 when the unit is a micro-dollar).
type MinorUnits int64

// Operation names one billable catalog operation.
type Operation string

const (
	OpOverview Operation = "overview"
	OpLookup   Operation = "lookup"
	OpSearch   Operation = "search"
	OpTop      Operation = "top"
	OpCompare  Operation = "compare"
	OpReport   Operation = "report"
)

// defaultCharges is the compiled-in price list. Overview is the free
// teaser endpoint; report is the most expensive aggregation.
var defaultCharges = map[Operation]MinorUnits{
	OpOverview: 0,
	OpLookup:   1000,
	OpSearch:   2000,
	OpTop:      2000,
	OpCompare:  3000,
	OpReport:   5000,
}

// ChargeRecord is one applied charge.
type ChargeRecord struct {
	Operation Operation
	Amount    MinorUnits
	RequestID string
	At        time.Time
}

// Ledger prices operations and keeps the process-lifetime record of
// applied charges.
type Ledger struct {
	mu      sync.Mutex
	charges map[Operation]MinorUnits
	records []ChargeRecord
	total   MinorUnits
}

// NewLedger builds a ledger from the default price list with optional
// per-operation overrides.
func NewLedger(overrides map[Operation]MinorUnits) *Ledger {
	charges := make(map[Operation]MinorUnits, len(defaultCharges))
	for op, amount := range defaultCharges {
		charges[op] = amount
	}
	for op, amount := range overrides {
		if _, known := defaultCharges[op]; known && amount >= 0 {
			charges[op] = amount
		}
	}
	return &Ledger{charges: charges}
}

// ChargeFor returns the configured price of an operation.
func (l *Ledger) ChargeFor(op Operation) MinorUnits {
	return l.charges[op]
}

// Record applies the charge for an operation and returns the amount
// charged.
func (l *Ledger) Record(op Operation, requestID string) MinorUnits {
	amount := l.charges[op]
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, ChargeRecord{
		Operation: op,
		Amount:    amount,
		RequestID: requestID,
		At:        time.Now().UTC(),
	})
	l.total += amount
	return amount
}

// Total returns the sum of all charges applied so far.
func (l *Ledger) Total() MinorUnits {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.total
}

// Records returns a copy of the applied charges.
func (l *Ledger) Records() []ChargeRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	records := make([]ChargeRecord, len(l.records))
	copy(records, l.records)
	return records
}
