package ledger

// typeFloor is the lower bound on payment values accepted by the Type 4
// rule: -$999,999.00 in cents. Any payment above it qualifies, which makes
// the rule effectively "any signed payment, deposits unused".
const typeFloor = -99_999_900

// Classify determines the sign convention of an account from the observed
// payment, deposit and balance columns of its transactions. The checks run
// in a fixed priority order and the first match wins, so a degenerate batch
// (e.g. all zeros) resolves to Type1.
//
// Classification is a pure function of the batch and must be recomputed
// whenever transactions are appended to the account.
//
// Classify panics on an empty batch: classification is undefined there and
// callers are required to guard against it.
func Classify(txns []Transaction) AccountType {
	if len(txns) == 0 {
		panic("ledger: Classify called with empty transaction batch")
	}

	switch {
	case all(txns, func(t Transaction) bool {
		return t.Payment <= 0 && t.Deposit >= 0 && t.Balance == 0
	}):
		return Type1
	case all(txns, func(t Transaction) bool {
		return t.Payment >= 0 && t.Deposit <= 0 && t.Balance == 0
	}):
		return Type2
	case all(txns, func(t Transaction) bool {
		return t.Payment >= 0 && t.Deposit >= 0 && t.Balance == 0
	}):
		return Type3
	case all(txns, func(t Transaction) bool {
		return t.Payment >= typeFloor && t.Deposit == 0
	}):
		return Type4
	default:
		return Type0
	}
}

func all(txns []Transaction, pred func(Transaction) bool) bool {
	for _, t := range txns {
		if !pred(t) {
			return false
		}
	}
	return true
}
