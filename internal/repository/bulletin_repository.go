package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tdiabate/farmpay/internal/model"
)

// ErrWeighingAlreadyBilled is returned when a weighing picked for a new
// bulletin turned out to be attached to a non-cancelled bulletin at write
// time. The whole create is rolled back.
var ErrWeighingAlreadyBilled = errors.New("weighing already billed")

type BulletinRepository struct {
	db *gorm.DB
}

func NewBulletinRepository(db *gorm.DB) *BulletinRepository {
	return &BulletinRepository{db: db}
}

// Create stores the bulletin and its weighing links in one transaction.
// The selected weighing rows are locked first so concurrent creates over the
// same weighings serialize; the eligibility re-check then runs against the
// winner's committed links and stale callers fail instead of double-billing.
func (r *BulletinRepository) Create(ctx context.Context, bulletin model.Bulletin, weighingIDs []uuid.UUID) (*model.Bulletin, error) {
	var saved model.Bulletin
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var locked []uuid.UUID
		err := tx.Raw(`
			SELECT id
			FROM weighings
			WHERE id = ANY(?)
			ORDER BY id
			FOR UPDATE
		`, weighingIDs).Scan(&locked).Error
		if err != nil {
			return err
		}

		var conflicting []uuid.UUID
		err = tx.Raw(`
			SELECT bw.weighing_id
			FROM bulletin_weighings bw
			JOIN bulletins b ON b.id = bw.bulletin_id
			WHERE bw.weighing_id = ANY(?)
				AND b.status <> 'CANCELLED'
		`, weighingIDs).Scan(&conflicting).Error
		if err != nil {
			return err
		}
		if len(conflicting) > 0 {
			return ErrWeighingAlreadyBilled
		}

		err = tx.Raw(`
			INSERT INTO bulletins (
				farmer_id,
				period,
				gross_amount,
				credits_deducted,
				net_amount,
				status,
				generated_date,
				created_by_user_id
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			RETURNING
				id,
				farmer_id,
				period,
				gross_amount,
				credits_deducted,
				net_amount,
				status,
				generated_date,
				validated_at,
				cancelled_at,
				created_by_user_id,
				created_at
		`,
			bulletin.FarmerID,
			bulletin.Period,
			bulletin.GrossAmount,
			bulletin.CreditsDeducted,
			bulletin.NetAmount,
			bulletin.Status,
			bulletin.GeneratedDate,
			bulletin.CreatedByUserID,
		).Scan(&saved).Error
		if err != nil {
			return err
		}

		for _, weighingID := range weighingIDs {
			if err := tx.Exec(`
				INSERT INTO bulletin_weighings (bulletin_id, weighing_id)
				VALUES (?, ?)
			`, saved.ID, weighingID).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	saved.WeighingIDs = weighingIDs
	return &saved, nil
}

func (r *BulletinRepository) Get(ctx context.Context, id uuid.UUID) (*model.Bulletin, error) {
	var bulletin model.Bulletin
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			id,
			farmer_id,
			period,
			gross_amount,
			credits_deducted,
			net_amount,
			status,
			generated_date,
			validated_at,
			cancelled_at,
			created_by_user_id,
			created_at
		FROM bulletins
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&bulletin).Error
	if err != nil {
		return nil, err
	}
	if bulletin.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}

	weighingIDs, err := r.listWeighingIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	bulletin.WeighingIDs = weighingIDs
	return &bulletin, nil
}

func (r *BulletinRepository) ListByFarmer(ctx context.Context, farmerID uuid.UUID, status *model.BulletinStatus) ([]model.Bulletin, error) {
	query := `
		SELECT
			id,
			farmer_id,
			period,
			gross_amount,
			credits_deducted,
			net_amount,
			status,
			generated_date,
			validated_at,
			cancelled_at,
			created_by_user_id,
			created_at
		FROM bulletins
		WHERE farmer_id = ?
		ORDER BY generated_date DESC
	`
	args := []interface{}{farmerID}
	if status != nil {
		query = `
			SELECT
				id,
				farmer_id,
				period,
				gross_amount,
				credits_deducted,
				net_amount,
				status,
				generated_date,
				validated_at,
				cancelled_at,
				created_by_user_id,
				created_at
			FROM bulletins
			WHERE farmer_id = ? AND status = ?
			ORDER BY generated_date DESC
		`
		args = append(args, *status)
	}

	var bulletins []model.Bulletin
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&bulletins).Error; err != nil {
		return nil, err
	}
	return bulletins, nil
}

func (r *BulletinRepository) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status model.BulletinStatus,
	validatedAt *time.Time,
	cancelledAt *time.Time,
) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE bulletins
		SET status = ?, validated_at = ?, cancelled_at = ?
		WHERE id = ?
	`, status, validatedAt, cancelledAt, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BulletinRepository) listWeighingIDs(ctx context.Context, bulletinID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Raw(`
		SELECT weighing_id
		FROM bulletin_weighings
		WHERE bulletin_id = ?
		ORDER BY weighing_id
	`, bulletinID).Scan(&ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
