package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tdiabate/farmpay/internal/model"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) ListTransporterGroups(ctx context.Context) ([]model.WeighingGroup, error) {
	var rows []model.WeighingGroup
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, 0 AS weighing_count
		FROM transporters
		ORDER BY name ASC
	`).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReportRepository) ListFarmerGroups(ctx context.Context) ([]model.WeighingGroup, error) {
	var rows []model.WeighingGroup
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, first_name || ' ' || last_name AS name, 0 AS weighing_count
		FROM farmers
		ORDER BY name ASC
	`).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReportRepository) WeighingCountsByTransporter(
	ctx context.Context,
	farmerID uuid.UUID,
	from, to time.Time,
) ([]model.WeighingGroup, error) {
	var rows []model.WeighingGroup
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			w.transporter_id AS id,
			COALESCE(t.name, 'Unknown') AS name,
			COUNT(*) AS weighing_count
		FROM weighings w
		LEFT JOIN transporters t ON t.id = w.transporter_id
		WHERE w.farmer_id = ?
			AND w.weighed_at >= ?
			AND w.weighed_at < ?
			AND w.transporter_id IS NOT NULL
		GROUP BY w.transporter_id, t.name
		ORDER BY name ASC
	`, farmerID, from, to).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReportRepository) WeighingCountsByFarmer(
	ctx context.Context,
	transporterID uuid.UUID,
	from, to time.Time,
) ([]model.WeighingGroup, error) {
	var rows []model.WeighingGroup
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			w.farmer_id AS id,
			COALESCE(f.first_name || ' ' || f.last_name, 'Unknown') AS name,
			COUNT(*) AS weighing_count
		FROM weighings w
		LEFT JOIN farmers f ON f.id = w.farmer_id
		WHERE w.transporter_id = ?
			AND w.weighed_at >= ?
			AND w.weighed_at < ?
		GROUP BY w.farmer_id, f.first_name, f.last_name
		ORDER BY name ASC
	`, transporterID, from, to).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReportRepository) ListDetailsByTransporter(
	ctx context.Context,
	farmerID uuid.UUID,
	transporterID uuid.UUID,
	from, to time.Time,
) ([]model.WeighingDetail, error) {
	var rows []model.WeighingDetail
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			w.weighed_at,
			w.ticket_number,
			v.plate_number,
			f.first_name || ' ' || f.last_name AS farmer_name,
			t.name AS transporter_name,
			w.net_weight_kg,
			w.net_amount
		FROM weighings w
		LEFT JOIN vehicles v ON v.id = w.vehicle_id
		LEFT JOIN farmers f ON f.id = w.farmer_id
		LEFT JOIN transporters t ON t.id = w.transporter_id
		WHERE w.farmer_id = ?
			AND w.transporter_id = ?
			AND w.weighed_at >= ?
			AND w.weighed_at < ?
		ORDER BY w.weighed_at ASC
	`, farmerID, transporterID, from, to).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReportRepository) ListDetailsByFarmer(
	ctx context.Context,
	transporterID uuid.UUID,
	farmerID uuid.UUID,
	from, to time.Time,
) ([]model.WeighingDetail, error) {
	var rows []model.WeighingDetail
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			w.weighed_at,
			w.ticket_number,
			v.plate_number,
			f.first_name || ' ' || f.last_name AS farmer_name,
			t.name AS transporter_name,
			w.net_weight_kg,
			w.net_amount
		FROM weighings w
		LEFT JOIN vehicles v ON v.id = w.vehicle_id
		LEFT JOIN farmers f ON f.id = w.farmer_id
		LEFT JOIN transporters t ON t.id = w.transporter_id
		WHERE w.transporter_id = ?
			AND w.farmer_id = ?
			AND w.weighed_at >= ?
			AND w.weighed_at < ?
		ORDER BY w.weighed_at ASC
	`, transporterID, farmerID, from, to).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
