package settlement

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInstallmentsEqualSplit(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	schedule, err := GenerateInstallments(dec("60000"), 6, start)
	require.NoError(t, err)
	require.Len(t, schedule, 6)

	for i, inst := range schedule {
		assert.Equal(t, i+1, inst.Seq)
		assert.True(t, inst.Amount.Equal(dec("10000")), "installment %d: %s", i+1, inst.Amount)
		assert.Equal(t, start.AddDate(0, i, 0), inst.DueDate)
	}
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), schedule[5].DueDate)
}

func TestGenerateInstallmentsRemainderOnLast(t *testing.T) {
	start := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	schedule, err := GenerateInstallments(dec("100"), 3, start)
	require.NoError(t, err)
	require.Len(t, schedule, 3)

	assert.True(t, schedule[0].Amount.Equal(dec("33.33")))
	assert.True(t, schedule[1].Amount.Equal(dec("33.33")))
	assert.True(t, schedule[2].Amount.Equal(dec("33.34")))

	sum := decimal.Zero
	for _, inst := range schedule {
		sum = sum.Add(inst.Amount)
	}
	assert.True(t, sum.Equal(dec("100")), "schedule sums to %s", sum)
}

func TestGenerateInstallmentsMonthlyDueDates(t *testing.T) {
	start := time.Date(2024, time.November, 10, 0, 0, 0, 0, time.UTC)

	schedule, err := GenerateInstallments(dec("45000"), 4, start)
	require.NoError(t, err)

	for i := 1; i < len(schedule); i++ {
		assert.Equal(t, schedule[i-1].DueDate.AddDate(0, 1, 0), schedule[i].DueDate)
	}
	// crosses the year boundary
	assert.Equal(t, time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC), schedule[3].DueDate)
}

func TestGenerateInstallmentsRejectsBadInput(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	_, err := GenerateInstallments(dec("1000"), 0, start)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = GenerateInstallments(dec("1000"), -3, start)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = GenerateInstallments(dec("0"), 3, start)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
