package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tdiabate/farmpay/internal/model"
	"github.com/tdiabate/farmpay/internal/settlement"
)

type WeighingStore interface {
	Create(ctx context.Context, weighing model.Weighing) (*model.Weighing, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Weighing, error)
	ListByFarmer(ctx context.Context, farmerID uuid.UUID) ([]model.Weighing, error)
	ListUnpaidByFarmer(ctx context.Context, farmerID uuid.UUID) ([]model.Weighing, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Weighing, error)
	Update(ctx context.Context, weighing model.Weighing) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type FarmerGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Farmer, error)
}

type WeighingService struct {
	weighings WeighingStore
	farmers   FarmerGetter
	policy    settlement.NegativeNetPolicy
}

func NewWeighingService(weighings WeighingStore, farmers FarmerGetter, policy settlement.NegativeNetPolicy) *WeighingService {
	return &WeighingService{
		weighings: weighings,
		farmers:   farmers,
		policy:    policy,
	}
}

type WeighingInput struct {
	FarmerID           uuid.UUID
	PlantationID       *uuid.UUID
	TransporterID      *uuid.UUID
	VehicleID          *uuid.UUID
	TicketNumber       string
	WeighedAt          time.Time
	LoadedWeightKg     decimal.Decimal
	EmptyWeightKg      decimal.Decimal
	PricePerKg         decimal.Decimal
	TransportCostPerKg decimal.Decimal
	TaxRate            decimal.Decimal
}

// Create records one delivery. All derived payment figures are computed
// here, once, and persisted with the raw measurements.
func (s *WeighingService) Create(ctx context.Context, input WeighingInput) (*model.Weighing, error) {
	if input.FarmerID == uuid.Nil {
		return nil, fmt.Errorf("%w: farmer_id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.TicketNumber) == "" {
		return nil, fmt.Errorf("%w: ticket_number is required", ErrInvalidInput)
	}
	if input.WeighedAt.IsZero() {
		return nil, fmt.Errorf("%w: weighed_at is required", ErrInvalidInput)
	}

	if _, err := s.farmers.Get(ctx, input.FarmerID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	totals, err := settlement.ComputeWeighingTotals(settlement.WeighingInput{
		LoadedWeightKg:     input.LoadedWeightKg,
		EmptyWeightKg:      input.EmptyWeightKg,
		PricePerKg:         input.PricePerKg,
		TransportCostPerKg: input.TransportCostPerKg,
		TaxRate:            input.TaxRate,
	}, s.policy)
	if err != nil {
		return nil, err
	}

	return s.weighings.Create(ctx, model.Weighing{
		FarmerID:           input.FarmerID,
		PlantationID:       input.PlantationID,
		TransporterID:      input.TransporterID,
		VehicleID:          input.VehicleID,
		TicketNumber:       strings.TrimSpace(input.TicketNumber),
		WeighedAt:          input.WeighedAt,
		LoadedWeightKg:     input.LoadedWeightKg,
		EmptyWeightKg:      input.EmptyWeightKg,
		NetWeightKg:        totals.NetWeightKg,
		PricePerKg:         input.PricePerKg,
		TransportCostPerKg: input.TransportCostPerKg,
		TaxRate:            input.TaxRate,
		GrossAmount:        totals.GrossAmount,
		TransportCost:      totals.TransportCost,
		TaxAmount:          totals.TaxAmount,
		NetAmount:          totals.NetAmount,
	})
}

// Update replaces the raw measurements of an existing weighing and
// recomputes every derived field in the same write.
func (s *WeighingService) Update(ctx context.Context, id uuid.UUID, input WeighingInput) (*model.Weighing, error) {
	existing, err := s.weighings.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if input.FarmerID != uuid.Nil && input.FarmerID != existing.FarmerID {
		return nil, fmt.Errorf("%w: weighing cannot change farmer", ErrInvalidInput)
	}
	if strings.TrimSpace(input.TicketNumber) == "" {
		return nil, fmt.Errorf("%w: ticket_number is required", ErrInvalidInput)
	}

	totals, err := settlement.ComputeWeighingTotals(settlement.WeighingInput{
		LoadedWeightKg:     input.LoadedWeightKg,
		EmptyWeightKg:      input.EmptyWeightKg,
		PricePerKg:         input.PricePerKg,
		TransportCostPerKg: input.TransportCostPerKg,
		TaxRate:            input.TaxRate,
	}, s.policy)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.PlantationID = input.PlantationID
	updated.TransporterID = input.TransporterID
	updated.VehicleID = input.VehicleID
	updated.TicketNumber = strings.TrimSpace(input.TicketNumber)
	updated.WeighedAt = input.WeighedAt
	updated.LoadedWeightKg = input.LoadedWeightKg
	updated.EmptyWeightKg = input.EmptyWeightKg
	updated.NetWeightKg = totals.NetWeightKg
	updated.PricePerKg = input.PricePerKg
	updated.TransportCostPerKg = input.TransportCostPerKg
	updated.TaxRate = input.TaxRate
	updated.GrossAmount = totals.GrossAmount
	updated.TransportCost = totals.TransportCost
	updated.TaxAmount = totals.TaxAmount
	updated.NetAmount = totals.NetAmount

	if err := s.weighings.Update(ctx, updated); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (s *WeighingService) Get(ctx context.Context, id uuid.UUID) (*model.Weighing, error) {
	weighing, err := s.weighings.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return weighing, nil
}

func (s *WeighingService) ListByFarmer(ctx context.Context, farmerID uuid.UUID) ([]model.Weighing, error) {
	return s.weighings.ListByFarmer(ctx, farmerID)
}

func (s *WeighingService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.weighings.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}
