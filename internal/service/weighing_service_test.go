package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tdiabate/farmpay/internal/model"
	"github.com/tdiabate/farmpay/internal/service"
	"github.com/tdiabate/farmpay/internal/settlement"
)

func newWeighingService(policy settlement.NegativeNetPolicy) (*service.WeighingService, *MockWeighingStore, *MockFarmerStore) {
	weighings := new(MockWeighingStore)
	farmers := new(MockFarmerStore)
	return service.NewWeighingService(weighings, farmers, policy), weighings, farmers
}

func weighingInput(farmerID uuid.UUID) service.WeighingInput {
	return service.WeighingInput{
		FarmerID:           farmerID,
		TicketNumber:       "T-0042",
		WeighedAt:          time.Date(2025, time.August, 12, 9, 30, 0, 0, time.UTC),
		LoadedWeightKg:     decimal.NewFromInt(1000),
		EmptyWeightKg:      decimal.NewFromInt(50),
		PricePerKg:         decimal.NewFromInt(275),
		TransportCostPerKg: decimal.NewFromInt(35),
		TaxRate:            decimal.NewFromFloat(1.5),
	}
}

func TestCreateWeighingComputesDerivedFields(t *testing.T) {
	svc, weighings, farmers := newWeighingService(settlement.NegativeNetAllow)
	ctx := context.Background()

	farmerID := uuid.New()
	farmers.On("Get", ctx, farmerID).Return(&model.Farmer{ID: farmerID}, nil)
	weighings.On("Create", ctx, mock.AnythingOfType("model.Weighing")).
		Run(func(args mock.Arguments) {
			weighing := args.Get(1).(model.Weighing)
			assert.True(t, weighing.NetWeightKg.Equal(decimal.NewFromInt(950)))
			assert.True(t, weighing.GrossAmount.Equal(decimal.NewFromInt(261250)))
			assert.True(t, weighing.TransportCost.Equal(decimal.NewFromInt(33250)))
			assert.True(t, weighing.TaxAmount.Equal(decimal.NewFromFloat(3918.75)))
			assert.True(t, weighing.NetAmount.Equal(decimal.NewFromFloat(224081.25)))
		}).
		Return(&model.Weighing{ID: uuid.New()}, nil)

	_, err := svc.Create(ctx, weighingInput(farmerID))
	require.NoError(t, err)
	weighings.AssertExpectations(t)
}

func TestCreateWeighingRejectsLoadedBelowEmpty(t *testing.T) {
	svc, _, farmers := newWeighingService(settlement.NegativeNetAllow)
	ctx := context.Background()

	farmerID := uuid.New()
	farmers.On("Get", ctx, farmerID).Return(&model.Farmer{ID: farmerID}, nil)

	input := weighingInput(farmerID)
	input.LoadedWeightKg = decimal.NewFromInt(40)
	input.EmptyWeightKg = decimal.NewFromInt(50)

	_, err := svc.Create(ctx, input)
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestCreateWeighingUnknownFarmer(t *testing.T) {
	svc, _, farmers := newWeighingService(settlement.NegativeNetAllow)
	ctx := context.Background()

	farmerID := uuid.New()
	farmers.On("Get", ctx, farmerID).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(ctx, weighingInput(farmerID))
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestCreateWeighingClampsNegativeNet(t *testing.T) {
	svc, weighings, farmers := newWeighingService(settlement.NegativeNetClamp)
	ctx := context.Background()

	farmerID := uuid.New()
	farmers.On("Get", ctx, farmerID).Return(&model.Farmer{ID: farmerID}, nil)
	weighings.On("Create", ctx, mock.AnythingOfType("model.Weighing")).
		Run(func(args mock.Arguments) {
			weighing := args.Get(1).(model.Weighing)
			assert.True(t, weighing.NetAmount.IsZero())
		}).
		Return(&model.Weighing{ID: uuid.New()}, nil)

	input := weighingInput(farmerID)
	input.PricePerKg = decimal.NewFromInt(10)
	input.TransportCostPerKg = decimal.NewFromInt(12)

	_, err := svc.Create(ctx, input)
	require.NoError(t, err)
}

func TestUpdateWeighingRecomputesAtomically(t *testing.T) {
	svc, weighings, _ := newWeighingService(settlement.NegativeNetAllow)
	ctx := context.Background()

	id := uuid.New()
	farmerID := uuid.New()
	weighings.On("Get", ctx, id).Return(&model.Weighing{
		ID:           id,
		FarmerID:     farmerID,
		TicketNumber: "T-0042",
	}, nil)
	weighings.On("Update", ctx, mock.AnythingOfType("model.Weighing")).
		Run(func(args mock.Arguments) {
			weighing := args.Get(1).(model.Weighing)
			assert.True(t, weighing.NetWeightKg.Equal(decimal.NewFromInt(800)))
			assert.True(t, weighing.GrossAmount.Equal(decimal.NewFromInt(240000)))
			sum := weighing.TransportCost.Add(weighing.TaxAmount).Add(weighing.NetAmount)
			assert.True(t, weighing.GrossAmount.Equal(sum))
		}).
		Return(nil)

	input := weighingInput(farmerID)
	input.LoadedWeightKg = decimal.NewFromInt(900)
	input.EmptyWeightKg = decimal.NewFromInt(100)
	input.PricePerKg = decimal.NewFromInt(300)

	updated, err := svc.Update(ctx, id, input)
	require.NoError(t, err)
	assert.Equal(t, farmerID, updated.FarmerID)
}

func TestUpdateWeighingCannotChangeFarmer(t *testing.T) {
	svc, weighings, _ := newWeighingService(settlement.NegativeNetAllow)
	ctx := context.Background()

	id := uuid.New()
	weighings.On("Get", ctx, id).Return(&model.Weighing{
		ID:       id,
		FarmerID: uuid.New(),
	}, nil)

	_, err := svc.Update(ctx, id, weighingInput(uuid.New()))
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}
