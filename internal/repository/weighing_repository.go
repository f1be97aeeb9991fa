package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tdiabate/farmpay/internal/model"
)

type WeighingRepository struct {
	db *gorm.DB
}

func NewWeighingRepository(db *gorm.DB) *WeighingRepository {
	return &WeighingRepository{db: db}
}

func (r *WeighingRepository) Create(ctx context.Context, weighing model.Weighing) (*model.Weighing, error) {
	var saved model.Weighing
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO weighings (
			farmer_id,
			plantation_id,
			transporter_id,
			vehicle_id,
			ticket_number,
			weighed_at,
			loaded_weight_kg,
			empty_weight_kg,
			net_weight_kg,
			price_per_kg,
			transport_cost_per_kg,
			tax_rate,
			gross_amount,
			transport_cost,
			tax_amount,
			net_amount
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING
			id,
			farmer_id,
			plantation_id,
			transporter_id,
			vehicle_id,
			ticket_number,
			weighed_at,
			loaded_weight_kg,
			empty_weight_kg,
			net_weight_kg,
			price_per_kg,
			transport_cost_per_kg,
			tax_rate,
			gross_amount,
			transport_cost,
			tax_amount,
			net_amount,
			created_at
	`,
		weighing.FarmerID,
		weighing.PlantationID,
		weighing.TransporterID,
		weighing.VehicleID,
		weighing.TicketNumber,
		weighing.WeighedAt,
		weighing.LoadedWeightKg,
		weighing.EmptyWeightKg,
		weighing.NetWeightKg,
		weighing.PricePerKg,
		weighing.TransportCostPerKg,
		weighing.TaxRate,
		weighing.GrossAmount,
		weighing.TransportCost,
		weighing.TaxAmount,
		weighing.NetAmount,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *WeighingRepository) Get(ctx context.Context, id uuid.UUID) (*model.Weighing, error) {
	var weighing model.Weighing
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			id,
			farmer_id,
			plantation_id,
			transporter_id,
			vehicle_id,
			ticket_number,
			weighed_at,
			loaded_weight_kg,
			empty_weight_kg,
			net_weight_kg,
			price_per_kg,
			transport_cost_per_kg,
			tax_rate,
			gross_amount,
			transport_cost,
			tax_amount,
			net_amount,
			created_at
		FROM weighings
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&weighing).Error
	if err != nil {
		return nil, err
	}
	if weighing.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &weighing, nil
}

func (r *WeighingRepository) ListByFarmer(ctx context.Context, farmerID uuid.UUID) ([]model.Weighing, error) {
	var weighings []model.Weighing
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			id,
			farmer_id,
			plantation_id,
			transporter_id,
			vehicle_id,
			ticket_number,
			weighed_at,
			loaded_weight_kg,
			empty_weight_kg,
			net_weight_kg,
			price_per_kg,
			transport_cost_per_kg,
			tax_rate,
			gross_amount,
			transport_cost,
			tax_amount,
			net_amount,
			created_at
		FROM weighings
		WHERE farmer_id = ?
		ORDER BY weighed_at ASC
	`, farmerID).Scan(&weighings).Error
	if err != nil {
		return nil, err
	}
	return weighings, nil
}

// ListUnpaidByFarmer returns the farmer's weighings not attached to any
// non-cancelled bulletin. Cancelled bulletins release their weighings back
// to the unpaid pool.
func (r *WeighingRepository) ListUnpaidByFarmer(ctx context.Context, farmerID uuid.UUID) ([]model.Weighing, error) {
	var weighings []model.Weighing
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			w.id,
			w.farmer_id,
			w.plantation_id,
			w.transporter_id,
			w.vehicle_id,
			w.ticket_number,
			w.weighed_at,
			w.loaded_weight_kg,
			w.empty_weight_kg,
			w.net_weight_kg,
			w.price_per_kg,
			w.transport_cost_per_kg,
			w.tax_rate,
			w.gross_amount,
			w.transport_cost,
			w.tax_amount,
			w.net_amount,
			w.created_at
		FROM weighings w
		WHERE w.farmer_id = ?
			AND NOT EXISTS (
				SELECT 1
				FROM bulletin_weighings bw
				JOIN bulletins b ON b.id = bw.bulletin_id
				WHERE bw.weighing_id = w.id
					AND b.status <> 'CANCELLED'
			)
		ORDER BY w.weighed_at ASC
	`, farmerID).Scan(&weighings).Error
	if err != nil {
		return nil, err
	}
	return weighings, nil
}

// Update rewrites the raw measurements and every derived field in one
// statement so the stored figures never mix two computations.
func (r *WeighingRepository) Update(ctx context.Context, weighing model.Weighing) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE weighings
		SET
			plantation_id = ?,
			transporter_id = ?,
			vehicle_id = ?,
			ticket_number = ?,
			weighed_at = ?,
			loaded_weight_kg = ?,
			empty_weight_kg = ?,
			net_weight_kg = ?,
			price_per_kg = ?,
			transport_cost_per_kg = ?,
			tax_rate = ?,
			gross_amount = ?,
			transport_cost = ?,
			tax_amount = ?,
			net_amount = ?
		WHERE id = ?
	`,
		weighing.PlantationID,
		weighing.TransporterID,
		weighing.VehicleID,
		weighing.TicketNumber,
		weighing.WeighedAt,
		weighing.LoadedWeightKg,
		weighing.EmptyWeightKg,
		weighing.NetWeightKg,
		weighing.PricePerKg,
		weighing.TransportCostPerKg,
		weighing.TaxRate,
		weighing.GrossAmount,
		weighing.TransportCost,
		weighing.TaxAmount,
		weighing.NetAmount,
		weighing.ID,
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *WeighingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM weighings WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *WeighingRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Weighing, error) {
	if len(ids) == 0 {
		return []model.Weighing{}, nil
	}

	var weighings []model.Weighing
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			id,
			farmer_id,
			plantation_id,
			transporter_id,
			vehicle_id,
			ticket_number,
			weighed_at,
			loaded_weight_kg,
			empty_weight_kg,
			net_weight_kg,
			price_per_kg,
			transport_cost_per_kg,
			tax_rate,
			gross_amount,
			transport_cost,
			tax_amount,
			net_amount,
			created_at
		FROM weighings
		WHERE id = ANY(?)
		ORDER BY weighed_at ASC
	`, ids).Scan(&weighings).Error
	if err != nil {
		return nil, err
	}
	return weighings, nil
}
