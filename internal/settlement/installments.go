package settlement

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Installment struct {
	Seq     int
	Amount  decimal.Decimal
	DueDate time.Time
}

// GenerateInstallments splits total into count equal parts due one calendar
// month apart, starting at start. Each part is rounded half-up to 2 decimal
// places; the last installment absorbs the rounding remainder so the schedule
// sums to total exactly.
func GenerateInstallments(total decimal.Decimal, count int, start time.Time) ([]Installment, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: installments count must be positive", ErrInvalidInput)
	}
	if !total.IsPositive() {
		return nil, fmt.Errorf("%w: total amount must be positive", ErrInvalidInput)
	}

	base := total.Div(decimal.NewFromInt(int64(count))).Round(2)
	schedule := make([]Installment, 0, count)
	allocated := decimal.Zero

	for i := 0; i < count; i++ {
		amount := base
		if i == count-1 {
			amount = total.Sub(allocated)
		}
		allocated = allocated.Add(amount)
		schedule = append(schedule, Installment{
			Seq:     i + 1,
			Amount:  amount,
			DueDate: start.AddDate(0, i, 0),
		})
	}
	return schedule, nil
}
