package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tdiabate/farmpay/internal/model"
)

type FarmerStore interface {
	FarmerGetter
	Create(ctx context.Context, farmer model.Farmer) (*model.Farmer, error)
	List(ctx context.Context) ([]model.Farmer, error)
	Update(ctx context.Context, farmer model.Farmer) error
	Delete(ctx context.Context, id uuid.UUID) error
	CreatePlantation(ctx context.Context, plantation model.Plantation) (*model.Plantation, error)
	GetPlantation(ctx context.Context, id uuid.UUID) (*model.Plantation, error)
	ListPlantations(ctx context.Context, farmerID uuid.UUID) ([]model.Plantation, error)
	UpdatePlantation(ctx context.Context, plantation model.Plantation) error
	DeletePlantation(ctx context.Context, id uuid.UUID) error
}

type RegistryStore interface {
	TransporterGetter
	CreateEmployee(ctx context.Context, employee model.Employee) (*model.Employee, error)
	GetEmployee(ctx context.Context, id uuid.UUID) (*model.Employee, error)
	ListEmployees(ctx context.Context) ([]model.Employee, error)
	UpdateEmployee(ctx context.Context, employee model.Employee) error
	DeleteEmployee(ctx context.Context, id uuid.UUID) error
	CreateTransporter(ctx context.Context, transporter model.Transporter) (*model.Transporter, error)
	ListTransporters(ctx context.Context) ([]model.Transporter, error)
	UpdateTransporter(ctx context.Context, transporter model.Transporter) error
	DeleteTransporter(ctx context.Context, id uuid.UUID) error
	CreateVehicle(ctx context.Context, vehicle model.Vehicle) (*model.Vehicle, error)
	GetVehicle(ctx context.Context, id uuid.UUID) (*model.Vehicle, error)
	ListVehicles(ctx context.Context, transporterID *uuid.UUID) ([]model.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle model.Vehicle) error
	DeleteVehicle(ctx context.Context, id uuid.UUID) error
}

// RegistryService is the CRUD layer over the directory entities: farmers,
// plantations, employees, transporters and vehicles.
type RegistryService struct {
	farmers  FarmerStore
	registry RegistryStore
}

func NewRegistryService(farmers FarmerStore, registry RegistryStore) *RegistryService {
	return &RegistryService{farmers: farmers, registry: registry}
}

func (s *RegistryService) CreateFarmer(ctx context.Context, farmer model.Farmer) (*model.Farmer, error) {
	if strings.TrimSpace(farmer.FirstName) == "" || strings.TrimSpace(farmer.LastName) == "" {
		return nil, fmt.Errorf("%w: farmer name is required", ErrInvalidInput)
	}
	return s.farmers.Create(ctx, farmer)
}

func (s *RegistryService) GetFarmer(ctx context.Context, id uuid.UUID) (*model.Farmer, error) {
	farmer, err := s.farmers.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return farmer, nil
}

func (s *RegistryService) ListFarmers(ctx context.Context) ([]model.Farmer, error) {
	return s.farmers.List(ctx)
}

func (s *RegistryService) UpdateFarmer(ctx context.Context, farmer model.Farmer) error {
	if strings.TrimSpace(farmer.FirstName) == "" || strings.TrimSpace(farmer.LastName) == "" {
		return fmt.Errorf("%w: farmer name is required", ErrInvalidInput)
	}
	return mapNotFound(s.farmers.Update(ctx, farmer))
}

func (s *RegistryService) DeleteFarmer(ctx context.Context, id uuid.UUID) error {
	return mapNotFound(s.farmers.Delete(ctx, id))
}

func (s *RegistryService) CreatePlantation(ctx context.Context, plantation model.Plantation) (*model.Plantation, error) {
	if plantation.FarmerID == uuid.Nil {
		return nil, fmt.Errorf("%w: farmer_id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(plantation.Name) == "" {
		return nil, fmt.Errorf("%w: plantation name is required", ErrInvalidInput)
	}
	if plantation.AreaHectares < 0 {
		return nil, fmt.Errorf("%w: area must not be negative", ErrInvalidInput)
	}
	if _, err := s.farmers.Get(ctx, plantation.FarmerID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.farmers.CreatePlantation(ctx, plantation)
}

func (s *RegistryService) GetPlantation(ctx context.Context, id uuid.UUID) (*model.Plantation, error) {
	plantation, err := s.farmers.GetPlantation(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return plantation, nil
}

func (s *RegistryService) ListPlantations(ctx context.Context, farmerID uuid.UUID) ([]model.Plantation, error) {
	return s.farmers.ListPlantations(ctx, farmerID)
}

func (s *RegistryService) UpdatePlantation(ctx context.Context, plantation model.Plantation) error {
	if strings.TrimSpace(plantation.Name) == "" {
		return fmt.Errorf("%w: plantation name is required", ErrInvalidInput)
	}
	if plantation.AreaHectares < 0 {
		return fmt.Errorf("%w: area must not be negative", ErrInvalidInput)
	}
	return mapNotFound(s.farmers.UpdatePlantation(ctx, plantation))
}

func (s *RegistryService) DeletePlantation(ctx context.Context, id uuid.UUID) error {
	return mapNotFound(s.farmers.DeletePlantation(ctx, id))
}

func (s *RegistryService) CreateEmployee(ctx context.Context, employee model.Employee) (*model.Employee, error) {
	if strings.TrimSpace(employee.FullName) == "" {
		return nil, fmt.Errorf("%w: employee name is required", ErrInvalidInput)
	}
	if employee.Salary.IsNegative() {
		return nil, fmt.Errorf("%w: salary must not be negative", ErrInvalidInput)
	}
	return s.registry.CreateEmployee(ctx, employee)
}

func (s *RegistryService) GetEmployee(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	employee, err := s.registry.GetEmployee(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return employee, nil
}

func (s *RegistryService) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	return s.registry.ListEmployees(ctx)
}

func (s *RegistryService) UpdateEmployee(ctx context.Context, employee model.Employee) error {
	if strings.TrimSpace(employee.FullName) == "" {
		return fmt.Errorf("%w: employee name is required", ErrInvalidInput)
	}
	return mapNotFound(s.registry.UpdateEmployee(ctx, employee))
}

func (s *RegistryService) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	return mapNotFound(s.registry.DeleteEmployee(ctx, id))
}

func (s *RegistryService) CreateTransporter(ctx context.Context, transporter model.Transporter) (*model.Transporter, error) {
	if strings.TrimSpace(transporter.Name) == "" {
		return nil, fmt.Errorf("%w: transporter name is required", ErrInvalidInput)
	}
	return s.registry.CreateTransporter(ctx, transporter)
}

func (s *RegistryService) GetTransporter(ctx context.Context, id uuid.UUID) (*model.Transporter, error) {
	transporter, err := s.registry.GetTransporter(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return transporter, nil
}

func (s *RegistryService) ListTransporters(ctx context.Context) ([]model.Transporter, error) {
	return s.registry.ListTransporters(ctx)
}

func (s *RegistryService) UpdateTransporter(ctx context.Context, transporter model.Transporter) error {
	if strings.TrimSpace(transporter.Name) == "" {
		return fmt.Errorf("%w: transporter name is required", ErrInvalidInput)
	}
	return mapNotFound(s.registry.UpdateTransporter(ctx, transporter))
}

func (s *RegistryService) DeleteTransporter(ctx context.Context, id uuid.UUID) error {
	return mapNotFound(s.registry.DeleteTransporter(ctx, id))
}

func (s *RegistryService) CreateVehicle(ctx context.Context, vehicle model.Vehicle) (*model.Vehicle, error) {
	if vehicle.TransporterID == uuid.Nil {
		return nil, fmt.Errorf("%w: transporter_id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(vehicle.PlateNumber) == "" {
		return nil, fmt.Errorf("%w: plate number is required", ErrInvalidInput)
	}
	if _, err := s.registry.GetTransporter(ctx, vehicle.TransporterID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.registry.CreateVehicle(ctx, vehicle)
}

func (s *RegistryService) GetVehicle(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	vehicle, err := s.registry.GetVehicle(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return vehicle, nil
}

func (s *RegistryService) ListVehicles(ctx context.Context, transporterID *uuid.UUID) ([]model.Vehicle, error) {
	return s.registry.ListVehicles(ctx, transporterID)
}

func (s *RegistryService) UpdateVehicle(ctx context.Context, vehicle model.Vehicle) error {
	if strings.TrimSpace(vehicle.PlateNumber) == "" {
		return fmt.Errorf("%w: plate number is required", ErrInvalidInput)
	}
	return mapNotFound(s.registry.UpdateVehicle(ctx, vehicle))
}

func (s *RegistryService) DeleteVehicle(ctx context.Context, id uuid.UUID) error {
	return mapNotFound(s.registry.DeleteVehicle(ctx, id))
}

func mapNotFound(err error) error {
	if err == gorm.ErrRecordNotFound {
		return ErrNotFound
	}
	return err
}
