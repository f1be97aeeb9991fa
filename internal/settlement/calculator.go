// Package settlement holds the pure calculation core of the service:
// weighing totals, credit installment schedules and credit deduction.
// Nothing in here touches the database.
package settlement

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidInput = errors.New("invalid input")

// NegativeNetPolicy decides what happens when transport plus tax exceed the
// gross amount of a weighing.
type NegativeNetPolicy string

const (
	// NegativeNetAllow keeps the negative net amount (the farmer owes the difference).
	NegativeNetAllow NegativeNetPolicy = "ALLOW"
	// NegativeNetClamp floors the net amount at zero.
	NegativeNetClamp NegativeNetPolicy = "CLAMP"
)

func ParseNegativeNetPolicy(raw string) (NegativeNetPolicy, error) {
	switch NegativeNetPolicy(raw) {
	case NegativeNetAllow:
		return NegativeNetAllow, nil
	case NegativeNetClamp:
		return NegativeNetClamp, nil
	default:
		return "", fmt.Errorf("%w: unknown negative net policy %q", ErrInvalidInput, raw)
	}
}

type WeighingInput struct {
	LoadedWeightKg     decimal.Decimal
	EmptyWeightKg      decimal.Decimal
	PricePerKg         decimal.Decimal
	TransportCostPerKg decimal.Decimal
	TaxRate            decimal.Decimal // percentage, 1.5 means 1.5%
}

type WeighingTotals struct {
	NetWeightKg   decimal.Decimal
	GrossAmount   decimal.Decimal
	TransportCost decimal.Decimal
	TaxAmount     decimal.Decimal
	NetAmount     decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// ComputeWeighingTotals turns raw scale inputs into the derived payment
// figures of one delivery. Money figures are rounded half-up to 2 decimal
// places; the net amount is derived from the rounded figures so that
// gross = transport + tax + net holds exactly under NegativeNetAllow.
func ComputeWeighingTotals(in WeighingInput, policy NegativeNetPolicy) (WeighingTotals, error) {
	if in.LoadedWeightKg.IsNegative() || in.EmptyWeightKg.IsNegative() {
		return WeighingTotals{}, fmt.Errorf("%w: weights must not be negative", ErrInvalidInput)
	}
	if in.LoadedWeightKg.LessThan(in.EmptyWeightKg) {
		return WeighingTotals{}, fmt.Errorf("%w: loaded weight is below empty weight", ErrInvalidInput)
	}
	if in.PricePerKg.IsNegative() {
		return WeighingTotals{}, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if in.TransportCostPerKg.IsNegative() {
		return WeighingTotals{}, fmt.Errorf("%w: transport cost must not be negative", ErrInvalidInput)
	}
	if in.TaxRate.IsNegative() {
		return WeighingTotals{}, fmt.Errorf("%w: tax rate must not be negative", ErrInvalidInput)
	}

	netWeight := in.LoadedWeightKg.Sub(in.EmptyWeightKg)
	gross := netWeight.Mul(in.PricePerKg).Round(2)
	transport := netWeight.Mul(in.TransportCostPerKg).Round(2)
	tax := netWeight.Mul(in.PricePerKg).Mul(in.TaxRate).Div(hundred).Round(2)

	net := gross.Sub(transport).Sub(tax)
	if policy == NegativeNetClamp && net.IsNegative() {
		net = decimal.Zero
	}

	return WeighingTotals{
		NetWeightKg:   netWeight,
		GrossAmount:   gross,
		TransportCost: transport,
		TaxAmount:     tax,
		NetAmount:     net,
	}, nil
}
