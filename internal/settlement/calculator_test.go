package settlement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeWeighingTotals(t *testing.T) {
	totals, err := ComputeWeighingTotals(WeighingInput{
		LoadedWeightKg:     dec("1000"),
		EmptyWeightKg:      dec("50"),
		PricePerKg:         dec("275"),
		TransportCostPerKg: dec("35"),
		TaxRate:            dec("1.5"),
	}, NegativeNetAllow)
	require.NoError(t, err)

	assert.True(t, totals.NetWeightKg.Equal(dec("950")), "net weight: %s", totals.NetWeightKg)
	assert.True(t, totals.GrossAmount.Equal(dec("261250")), "gross: %s", totals.GrossAmount)
	assert.True(t, totals.TransportCost.Equal(dec("33250")), "transport: %s", totals.TransportCost)
	assert.True(t, totals.TaxAmount.Equal(dec("3918.75")), "tax: %s", totals.TaxAmount)
	assert.True(t, totals.NetAmount.Equal(dec("224081.25")), "net: %s", totals.NetAmount)
}

func TestComputeWeighingTotalsConservation(t *testing.T) {
	cases := []struct {
		name                            string
		loaded, empty, price, tpk, rate string
	}{
		{"plain", "1000", "50", "275", "35", "1.5"},
		{"zero weight", "120", "120", "300", "40", "2"},
		{"odd amounts", "733.4", "81.15", "277.77", "33.33", "1.95"},
		{"zero price", "500", "100", "0", "10", "5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			totals, err := ComputeWeighingTotals(WeighingInput{
				LoadedWeightKg:     dec(tc.loaded),
				EmptyWeightKg:      dec(tc.empty),
				PricePerKg:         dec(tc.price),
				TransportCostPerKg: dec(tc.tpk),
				TaxRate:            dec(tc.rate),
			}, NegativeNetAllow)
			require.NoError(t, err)

			assert.False(t, totals.NetWeightKg.IsNegative())
			sum := totals.TransportCost.Add(totals.TaxAmount).Add(totals.NetAmount)
			assert.True(t, totals.GrossAmount.Equal(sum),
				"gross %s != transport+tax+net %s", totals.GrossAmount, sum)
		})
	}
}

func TestComputeWeighingTotalsNegativeNet(t *testing.T) {
	// transport alone exceeds gross
	in := WeighingInput{
		LoadedWeightKg:     dec("600"),
		EmptyWeightKg:      dec("100"),
		PricePerKg:         dec("10"),
		TransportCostPerKg: dec("12"),
		TaxRate:            dec("1.5"),
	}

	allowed, err := ComputeWeighingTotals(in, NegativeNetAllow)
	require.NoError(t, err)
	assert.True(t, allowed.NetAmount.IsNegative())

	clamped, err := ComputeWeighingTotals(in, NegativeNetClamp)
	require.NoError(t, err)
	assert.True(t, clamped.NetAmount.IsZero())
}

func TestComputeWeighingTotalsRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		in   WeighingInput
	}{
		{"loaded below empty", WeighingInput{LoadedWeightKg: dec("50"), EmptyWeightKg: dec("100"), PricePerKg: dec("1")}},
		{"negative loaded", WeighingInput{LoadedWeightKg: dec("-1"), EmptyWeightKg: dec("0"), PricePerKg: dec("1")}},
		{"negative price", WeighingInput{LoadedWeightKg: dec("10"), EmptyWeightKg: dec("0"), PricePerKg: dec("-1")}},
		{"negative transport", WeighingInput{LoadedWeightKg: dec("10"), EmptyWeightKg: dec("0"), PricePerKg: dec("1"), TransportCostPerKg: dec("-0.1")}},
		{"negative tax rate", WeighingInput{LoadedWeightKg: dec("10"), EmptyWeightKg: dec("0"), PricePerKg: dec("1"), TaxRate: dec("-1")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeWeighingTotals(tc.in, NegativeNetAllow)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestParseNegativeNetPolicy(t *testing.T) {
	policy, err := ParseNegativeNetPolicy("CLAMP")
	require.NoError(t, err)
	assert.Equal(t, NegativeNetClamp, policy)

	_, err = ParseNegativeNetPolicy("whatever")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
