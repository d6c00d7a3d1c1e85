// Package ledger provides the domain model and balance-reconciliation engine
// for imported bank and credit-card statements. All money values are stored
// as int64 minor currency units (cents); display formatting belongs to the
// presentation layer.
package ledger

import "time"

// Transaction represents one row of an account's ledger.
type Transaction struct {
	SequenceID  int64     // stable row identity, assigned in ingestion order
	Date        time.Time // calendar date, no time component
	Description string
	Payee       string
	Category    string
	Payment     int64 // cents; sign convention depends on AccountType
	Deposit     int64 // cents; sign convention depends on AccountType
	Balance     int64 // cents; running balance after this transaction, 0 until reconciled
	Account     string
	Note        string
}

// InitialBalance is the anchor record for an account: the one (date, balance)
// pair treated as ground truth, from which all other balances are derived.
type InitialBalance struct {
	Account string
	Date    time.Time
	Balance int64 // cents
}

// AccountType encodes which arithmetic sign convention relates the payment
// and deposit columns to balance changes for an imported account format.
type AccountType int

const (
	// Type0 marks an account whose sign pattern matches no known convention.
	// Balances for such accounts cannot be reconciled.
	Type0 AccountType = iota

	// Type1: payments are outflows stored negative, deposits non-negative,
	// no running balance supplied by the source.
	Type1

	// Type2: inverted convention, e.g. credit-card exports where "payment"
	// denotes a charge. Payments non-negative, deposits non-positive.
	Type2

	// Type3: payments and deposits both non-negative, differentiated only by
	// which column a transaction populates. The common banking case.
	Type3

	// Type4: single-column ledger. Payment carries any signed value applied
	// directly; the deposit column is unused.
	Type4
)

// String returns the classification label used throughout account displays.
func (t AccountType) String() string {
	switch t {
	case Type1:
		return "Type 1"
	case Type2:
		return "Type 2"
	case Type3:
		return "Type 3"
	case Type4:
		return "Type 4"
	default:
		return "Type 0"
	}
}

// Reconcilable reports whether balances can be propagated for this type.
func (t AccountType) Reconcilable() bool {
	return t != Type0
}

// Date builds a calendar date in UTC. Transactions carry dates only; keeping
// them normalized to midnight UTC makes equality checks safe.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// MonthKey identifies a calendar month.
type MonthKey struct {
	Year  int
	Month time.Month
}

// MonthOf returns the calendar month a date falls in.
func MonthOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// Before reports whether m precedes other in calendar order.
func (m MonthKey) Before(other MonthKey) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

// Next returns the following calendar month.
func (m MonthKey) Next() MonthKey {
	if m.Month == time.December {
		return MonthKey{Year: m.Year + 1, Month: time.January}
	}
	return MonthKey{Year: m.Year, Month: m.Month + 1}
}

// End returns the last day of the month.
func (m MonthKey) End() time.Time {
	return Date(m.Year, m.Month, 1).AddDate(0, 1, -1)
}

// String formats the month as e.g. "Jan '24", matching the report headers.
func (m MonthKey) String() string {
	return Date(m.Year, m.Month, 1).Format("Jan '06")
}

// MonthsBetween generates the inclusive, contiguous list of months spanning
// from..to. Returns nil if to precedes from.
func MonthsBetween(from, to MonthKey) []MonthKey {
	if to.Before(from) {
		return nil
	}
	var months []MonthKey
	for m := from; !to.Before(m); m = m.Next() {
		months = append(months, m)
	}
	return months
}
