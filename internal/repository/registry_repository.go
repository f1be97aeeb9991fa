package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tdiabate/farmpay/internal/model"
)

// RegistryRepository covers the flat directory entities: employees,
// transporters and vehicles.
type RegistryRepository struct {
	db *gorm.DB
}

func NewRegistryRepository(db *gorm.DB) *RegistryRepository {
	return &RegistryRepository{db: db}
}

func (r *RegistryRepository) CreateEmployee(ctx context.Context, employee model.Employee) (*model.Employee, error) {
	var saved model.Employee
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO employees (full_name, position, phone, salary, hired_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id, full_name, position, phone, salary, hired_at, created_at
	`, employee.FullName, employee.Position, employee.Phone, employee.Salary, employee.HiredAt).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *RegistryRepository) GetEmployee(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, full_name, position, phone, salary, hired_at, created_at
		FROM employees
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&employee).Error
	if err != nil {
		return nil, err
	}
	if employee.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &employee, nil
}

func (r *RegistryRepository) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, full_name, position, phone, salary, hired_at, created_at
		FROM employees
		ORDER BY full_name ASC
	`).Scan(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *RegistryRepository) UpdateEmployee(ctx context.Context, employee model.Employee) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE employees
		SET full_name = ?, position = ?, phone = ?, salary = ?, hired_at = ?
		WHERE id = ?
	`, employee.FullName, employee.Position, employee.Phone, employee.Salary, employee.HiredAt, employee.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RegistryRepository) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM employees WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RegistryRepository) CreateTransporter(ctx context.Context, transporter model.Transporter) (*model.Transporter, error) {
	var saved model.Transporter
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO transporters (name, phone)
		VALUES (?, ?)
		RETURNING id, name, phone, created_at
	`, transporter.Name, transporter.Phone).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *RegistryRepository) GetTransporter(ctx context.Context, id uuid.UUID) (*model.Transporter, error) {
	var transporter model.Transporter
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, phone, created_at
		FROM transporters
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&transporter).Error
	if err != nil {
		return nil, err
	}
	if transporter.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &transporter, nil
}

func (r *RegistryRepository) ListTransporters(ctx context.Context) ([]model.Transporter, error) {
	var transporters []model.Transporter
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, phone, created_at
		FROM transporters
		ORDER BY name ASC
	`).Scan(&transporters).Error
	if err != nil {
		return nil, err
	}
	return transporters, nil
}

func (r *RegistryRepository) UpdateTransporter(ctx context.Context, transporter model.Transporter) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE transporters
		SET name = ?, phone = ?
		WHERE id = ?
	`, transporter.Name, transporter.Phone, transporter.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RegistryRepository) DeleteTransporter(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM transporters WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RegistryRepository) CreateVehicle(ctx context.Context, vehicle model.Vehicle) (*model.Vehicle, error) {
	var saved model.Vehicle
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO vehicles (transporter_id, plate_number, brand, capacity_kg)
		VALUES (?, ?, ?, ?)
		RETURNING id, transporter_id, plate_number, brand, capacity_kg, created_at
	`, vehicle.TransporterID, vehicle.PlateNumber, vehicle.Brand, vehicle.CapacityKg).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *RegistryRepository) GetVehicle(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, transporter_id, plate_number, brand, capacity_kg, created_at
		FROM vehicles
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&vehicle).Error
	if err != nil {
		return nil, err
	}
	if vehicle.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &vehicle, nil
}

func (r *RegistryRepository) ListVehicles(ctx context.Context, transporterID *uuid.UUID) ([]model.Vehicle, error) {
	query := `
		SELECT id, transporter_id, plate_number, brand, capacity_kg, created_at
		FROM vehicles
		ORDER BY plate_number ASC
	`
	args := []interface{}{}
	if transporterID != nil {
		query = `
			SELECT id, transporter_id, plate_number, brand, capacity_kg, created_at
			FROM vehicles
			WHERE transporter_id = ?
			ORDER BY plate_number ASC
		`
		args = append(args, *transporterID)
	}

	var vehicles []model.Vehicle
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *RegistryRepository) UpdateVehicle(ctx context.Context, vehicle model.Vehicle) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE vehicles
		SET transporter_id = ?, plate_number = ?, brand = ?, capacity_kg = ?
		WHERE id = ?
	`, vehicle.TransporterID, vehicle.PlateNumber, vehicle.Brand, vehicle.CapacityKg, vehicle.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RegistryRepository) DeleteVehicle(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM vehicles WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
