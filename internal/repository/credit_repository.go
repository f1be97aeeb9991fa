package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tdiabate/farmpay/internal/model"
)

type CreditRepository struct {
	db *gorm.DB
}

func NewCreditRepository(db *gorm.DB) *CreditRepository {
	return &CreditRepository{db: db}
}

// Create stores the credit and its installment schedule, if any, in one
// transaction.
func (r *CreditRepository) Create(ctx context.Context, credit model.Credit, installments []model.CreditInstallment) (*model.Credit, error) {
	var saved model.Credit
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Raw(`
			INSERT INTO credits (
				farmer_id,
				type,
				amount,
				description,
				issued_at,
				installments_count,
				deduction_start_date
			) VALUES (?, ?, ?, ?, ?, ?, ?)
			RETURNING
				id,
				farmer_id,
				type,
				amount,
				description,
				issued_at,
				installments_count,
				deduction_start_date,
				is_paid,
				paid_date,
				created_at
		`,
			credit.FarmerID,
			credit.Type,
			credit.Amount,
			credit.Description,
			credit.IssuedAt,
			credit.InstallmentsCount,
			credit.DeductionStartDate,
		).Scan(&saved).Error
		if err != nil {
			return err
		}

		for _, inst := range installments {
			if err := tx.Exec(`
				INSERT INTO credit_installments (credit_id, seq, amount, due_date)
				VALUES (?, ?, ?, ?)
			`, saved.ID, inst.Seq, inst.Amount, inst.DueDate).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *CreditRepository) Get(ctx context.Context, id uuid.UUID) (*model.Credit, error) {
	var credit model.Credit
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			id,
			farmer_id,
			type,
			amount,
			description,
			issued_at,
			installments_count,
			deduction_start_date,
			is_paid,
			paid_date,
			created_at
		FROM credits
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&credit).Error
	if err != nil {
		return nil, err
	}
	if credit.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &credit, nil
}

func (r *CreditRepository) ListByFarmer(ctx context.Context, farmerID uuid.UUID) ([]model.Credit, error) {
	var credits []model.Credit
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			id,
			farmer_id,
			type,
			amount,
			description,
			issued_at,
			installments_count,
			deduction_start_date,
			is_paid,
			paid_date,
			created_at
		FROM credits
		WHERE farmer_id = ?
		ORDER BY issued_at ASC
	`, farmerID).Scan(&credits).Error
	if err != nil {
		return nil, err
	}
	return credits, nil
}

// SumOutstanding returns the total amount of the farmer's unpaid credits.
func (r *CreditRepository) SumOutstanding(ctx context.Context, farmerID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount), 0)
		FROM credits
		WHERE farmer_id = ? AND is_paid = FALSE
	`, farmerID).Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// MarkPaid stamps the credit paid. Calling it again re-stamps paid_date.
func (r *CreditRepository) MarkPaid(ctx context.Context, id uuid.UUID, paidDate time.Time) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE credits
		SET is_paid = TRUE, paid_date = ?
		WHERE id = ?
	`, paidDate, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CreditRepository) ListInstallments(ctx context.Context, creditID uuid.UUID) ([]model.CreditInstallment, error) {
	var installments []model.CreditInstallment
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, credit_id, seq, amount, due_date, is_paid
		FROM credit_installments
		WHERE credit_id = ?
		ORDER BY seq ASC
	`, creditID).Scan(&installments).Error
	if err != nil {
		return nil, err
	}
	return installments, nil
}

func (r *CreditRepository) MarkInstallmentPaid(ctx context.Context, installmentID uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE credit_installments
		SET is_paid = TRUE
		WHERE id = ?
	`, installmentID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CreditRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM credits WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
