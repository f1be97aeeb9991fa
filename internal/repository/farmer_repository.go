package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tdiabate/farmpay/internal/model"
)

type FarmerRepository struct {
	db *gorm.DB
}

func NewFarmerRepository(db *gorm.DB) *FarmerRepository {
	return &FarmerRepository{db: db}
}

func (r *FarmerRepository) Create(ctx context.Context, farmer model.Farmer) (*model.Farmer, error) {
	var saved model.Farmer
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO farmers (first_name, last_name, phone, village)
		VALUES (?, ?, ?, ?)
		RETURNING id, first_name, last_name, phone, village, created_at
	`, farmer.FirstName, farmer.LastName, farmer.Phone, farmer.Village).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *FarmerRepository) Get(ctx context.Context, id uuid.UUID) (*model.Farmer, error) {
	var farmer model.Farmer
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, first_name, last_name, phone, village, created_at
		FROM farmers
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&farmer).Error
	if err != nil {
		return nil, err
	}
	if farmer.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &farmer, nil
}

func (r *FarmerRepository) List(ctx context.Context) ([]model.Farmer, error) {
	var farmers []model.Farmer
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, first_name, last_name, phone, village, created_at
		FROM farmers
		ORDER BY last_name ASC, first_name ASC
	`).Scan(&farmers).Error
	if err != nil {
		return nil, err
	}
	return farmers, nil
}

func (r *FarmerRepository) Update(ctx context.Context, farmer model.Farmer) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE farmers
		SET first_name = ?, last_name = ?, phone = ?, village = ?
		WHERE id = ?
	`, farmer.FirstName, farmer.LastName, farmer.Phone, farmer.Village, farmer.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *FarmerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM farmers WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *FarmerRepository) CreatePlantation(ctx context.Context, plantation model.Plantation) (*model.Plantation, error) {
	var saved model.Plantation
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO plantations (farmer_id, name, area_hectares, village)
		VALUES (?, ?, ?, ?)
		RETURNING id, farmer_id, name, area_hectares, village, created_at
	`, plantation.FarmerID, plantation.Name, plantation.AreaHectares, plantation.Village).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *FarmerRepository) GetPlantation(ctx context.Context, id uuid.UUID) (*model.Plantation, error) {
	var plantation model.Plantation
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, farmer_id, name, area_hectares, village, created_at
		FROM plantations
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&plantation).Error
	if err != nil {
		return nil, err
	}
	if plantation.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &plantation, nil
}

func (r *FarmerRepository) ListPlantations(ctx context.Context, farmerID uuid.UUID) ([]model.Plantation, error) {
	var plantations []model.Plantation
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, farmer_id, name, area_hectares, village, created_at
		FROM plantations
		WHERE farmer_id = ?
		ORDER BY name ASC
	`, farmerID).Scan(&plantations).Error
	if err != nil {
		return nil, err
	}
	return plantations, nil
}

func (r *FarmerRepository) UpdatePlantation(ctx context.Context, plantation model.Plantation) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE plantations
		SET name = ?, area_hectares = ?, village = ?
		WHERE id = ?
	`, plantation.Name, plantation.AreaHectares, plantation.Village, plantation.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *FarmerRepository) DeletePlantation(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM plantations WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
