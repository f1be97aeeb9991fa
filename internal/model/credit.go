package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreditType string

const (
	CreditTypeMoney CreditType = "MONEY"
	CreditTypeTools CreditType = "TOOLS"
)

// Credit is an advance extended to a farmer, recoverable from future
// settlements. IsPaid flips only on explicit mark-paid; installment-level
// paid flags are tracked independently of the parent.
type Credit struct {
	ID                 uuid.UUID
	FarmerID           uuid.UUID
	Type               CreditType
	Amount             decimal.Decimal
	Description        string
	IssuedAt           time.Time
	InstallmentsCount  int
	DeductionStartDate *time.Time
	IsPaid             bool
	PaidDate           *time.Time
	CreatedAt          time.Time
}

type CreditInstallment struct {
	ID       uuid.UUID
	CreditID uuid.UUID
	Seq      int
	Amount   decimal.Decimal
	DueDate  time.Time
	IsPaid   bool
}
