package settlement

import "github.com/shopspring/decimal"

type Deduction struct {
	CreditsDeducted decimal.Decimal
	NetAmount       decimal.Decimal
}

// ApplyCreditDeduction withholds outstanding credit from a pending payment.
// The deduction never exceeds the gross amount being paid, so a farmer is
// never driven negative by a single settlement; excess credit stays
// outstanding for the next cycle.
func ApplyCreditDeduction(gross, pending decimal.Decimal) Deduction {
	if pending.IsNegative() {
		pending = decimal.Zero
	}
	deducted := pending
	if gross.LessThan(deducted) {
		deducted = gross
	}
	if deducted.IsNegative() {
		deducted = decimal.Zero
	}
	return Deduction{
		CreditsDeducted: deducted,
		NetAmount:       gross.Sub(deducted),
	}
}
