package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tdiabate/farmpay/internal/model"
	"github.com/tdiabate/farmpay/internal/settlement"
)

type CreditStore interface {
	Create(ctx context.Context, credit model.Credit, installments []model.CreditInstallment) (*model.Credit, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Credit, error)
	ListByFarmer(ctx context.Context, farmerID uuid.UUID) ([]model.Credit, error)
	SumOutstanding(ctx context.Context, farmerID uuid.UUID) (decimal.Decimal, error)
	MarkPaid(ctx context.Context, id uuid.UUID, paidDate time.Time) error
	ListInstallments(ctx context.Context, creditID uuid.UUID) ([]model.CreditInstallment, error)
	MarkInstallmentPaid(ctx context.Context, installmentID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreditService struct {
	credits CreditStore
	farmers FarmerGetter
}

func NewCreditService(credits CreditStore, farmers FarmerGetter) *CreditService {
	return &CreditService{credits: credits, farmers: farmers}
}

type CreateCreditInput struct {
	FarmerID           uuid.UUID
	Type               model.CreditType
	Amount             decimal.Decimal
	Description        string
	IssuedAt           time.Time
	InstallmentsCount  int
	DeductionStartDate *time.Time
}

// Create records an advance for a farmer. When an installment count is
// given, the schedule is generated and stored alongside the credit; the
// deduction start date defaults to the issue date.
func (s *CreditService) Create(ctx context.Context, input CreateCreditInput) (*model.Credit, error) {
	if input.FarmerID == uuid.Nil {
		return nil, fmt.Errorf("%w: farmer_id is required", ErrInvalidInput)
	}
	if input.Type != model.CreditTypeMoney && input.Type != model.CreditTypeTools {
		return nil, fmt.Errorf("%w: unknown credit type %q", ErrInvalidInput, input.Type)
	}
	if !input.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if input.IssuedAt.IsZero() {
		return nil, fmt.Errorf("%w: issue date is required", ErrInvalidInput)
	}
	if input.InstallmentsCount < 0 {
		return nil, fmt.Errorf("%w: installments count must not be negative", ErrInvalidInput)
	}

	if _, err := s.farmers.Get(ctx, input.FarmerID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var installments []model.CreditInstallment
	if input.InstallmentsCount > 0 {
		start := input.IssuedAt
		if input.DeductionStartDate != nil {
			start = *input.DeductionStartDate
		}
		schedule, err := settlement.GenerateInstallments(input.Amount, input.InstallmentsCount, start)
		if err != nil {
			return nil, err
		}
		installments = make([]model.CreditInstallment, 0, len(schedule))
		for _, inst := range schedule {
			installments = append(installments, model.CreditInstallment{
				Seq:     inst.Seq,
				Amount:  inst.Amount,
				DueDate: inst.DueDate,
			})
		}
	}

	return s.credits.Create(ctx, model.Credit{
		FarmerID:           input.FarmerID,
		Type:               input.Type,
		Amount:             input.Amount,
		Description:        input.Description,
		IssuedAt:           input.IssuedAt,
		InstallmentsCount:  input.InstallmentsCount,
		DeductionStartDate: input.DeductionStartDate,
	}, installments)
}

func (s *CreditService) Get(ctx context.Context, id uuid.UUID) (*model.Credit, error) {
	credit, err := s.credits.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return credit, nil
}

func (s *CreditService) ListByFarmer(ctx context.Context, farmerID uuid.UUID) ([]model.Credit, error) {
	return s.credits.ListByFarmer(ctx, farmerID)
}

// OutstandingBalance sums the unpaid credits of a farmer.
func (s *CreditService) OutstandingBalance(ctx context.Context, farmerID uuid.UUID) (decimal.Decimal, error) {
	if _, err := s.farmers.Get(ctx, farmerID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return decimal.Zero, ErrNotFound
		}
		return decimal.Zero, err
	}
	return s.credits.SumOutstanding(ctx, farmerID)
}

// MarkPaid flips the credit to paid and stamps the date. A repeated call
// re-stamps the date rather than failing.
func (s *CreditService) MarkPaid(ctx context.Context, id uuid.UUID, paidDate time.Time) error {
	if paidDate.IsZero() {
		return fmt.Errorf("%w: paid date is required", ErrInvalidInput)
	}
	if err := s.credits.MarkPaid(ctx, id, paidDate); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *CreditService) Installments(ctx context.Context, creditID uuid.UUID) ([]model.CreditInstallment, error) {
	if _, err := s.credits.Get(ctx, creditID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.credits.ListInstallments(ctx, creditID)
}

func (s *CreditService) MarkInstallmentPaid(ctx context.Context, installmentID uuid.UUID) error {
	if err := s.credits.MarkInstallmentPaid(ctx, installmentID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *CreditService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.credits.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}
