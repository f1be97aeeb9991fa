package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tdiabate/farmpay/internal/model"
	"github.com/tdiabate/farmpay/internal/repository"
	"github.com/tdiabate/farmpay/internal/service"
)

func newBulletinService() (*service.BulletinService, *MockBulletinStore, *MockWeighingStore, *MockCreditStore, *MockFarmerStore, *MockPDFGenerator) {
	bulletins := new(MockBulletinStore)
	weighings := new(MockWeighingStore)
	credits := new(MockCreditStore)
	farmers := new(MockFarmerStore)
	pdf := new(MockPDFGenerator)
	svc := service.NewBulletinService(bulletins, weighings, credits, farmers, pdf)
	return svc, bulletins, weighings, credits, farmers, pdf
}

func manager() model.Principal {
	return model.Principal{UserID: uuid.New(), Role: model.RoleManager}
}

func TestCreateBulletinDeductsCredits(t *testing.T) {
	svc, bulletins, weighings, credits, farmers, _ := newBulletinService()
	ctx := context.Background()

	farmerID := uuid.New()
	w1, w2 := uuid.New(), uuid.New()

	farmers.On("Get", ctx, farmerID).Return(&model.Farmer{ID: farmerID}, nil)
	weighings.On("ListByIDs", ctx, []uuid.UUID{w1, w2}).Return([]model.Weighing{
		{ID: w1, FarmerID: farmerID, NetAmount: decimal.NewFromInt(6000)},
		{ID: w2, FarmerID: farmerID, NetAmount: decimal.NewFromInt(4000)},
	}, nil)
	// pending credits exceed the gross payment
	credits.On("SumOutstanding", ctx, farmerID).Return(decimal.NewFromInt(15000), nil)

	bulletins.On("Create", ctx, mock.AnythingOfType("model.Bulletin"), []uuid.UUID{w1, w2}).
		Run(func(args mock.Arguments) {
			bulletin := args.Get(1).(model.Bulletin)
			assert.True(t, bulletin.GrossAmount.Equal(decimal.NewFromInt(10000)))
			assert.True(t, bulletin.CreditsDeducted.Equal(decimal.NewFromInt(10000)))
			assert.True(t, bulletin.NetAmount.IsZero())
			assert.Equal(t, model.BulletinStatusDraft, bulletin.Status)
		}).
		Return(&model.Bulletin{ID: uuid.New(), Status: model.BulletinStatusDraft}, nil)

	saved, err := svc.Create(ctx, service.CreateBulletinInput{
		FarmerID:    farmerID,
		Period:      "2025-08",
		WeighingIDs: []uuid.UUID{w1, w2},
		Principal:   manager(),
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	bulletins.AssertExpectations(t)
}

func TestCreateBulletinConflictOnDoubleBilling(t *testing.T) {
	svc, bulletins, weighings, credits, farmers, _ := newBulletinService()
	ctx := context.Background()

	farmerID := uuid.New()
	w1 := uuid.New()

	farmers.On("Get", ctx, farmerID).Return(&model.Farmer{ID: farmerID}, nil)
	weighings.On("ListByIDs", ctx, []uuid.UUID{w1}).Return([]model.Weighing{
		{ID: w1, FarmerID: farmerID, NetAmount: decimal.NewFromInt(5000)},
	}, nil)
	credits.On("SumOutstanding", ctx, farmerID).Return(decimal.Zero, nil)
	bulletins.On("Create", ctx, mock.AnythingOfType("model.Bulletin"), []uuid.UUID{w1}).
		Return(nil, repository.ErrWeighingAlreadyBilled)

	_, err := svc.Create(ctx, service.CreateBulletinInput{
		FarmerID:    farmerID,
		Period:      "2025-08",
		WeighingIDs: []uuid.UUID{w1},
		Principal:   manager(),
	})
	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestCreateBulletinPermissionDenied(t *testing.T) {
	svc, _, _, _, _, _ := newBulletinService()

	_, err := svc.Create(context.Background(), service.CreateBulletinInput{
		FarmerID:    uuid.New(),
		Period:      "2025-08",
		WeighingIDs: []uuid.UUID{uuid.New()},
		Principal:   model.Principal{UserID: uuid.New(), Role: model.RoleClerk},
	})
	assert.ErrorIs(t, err, service.ErrPermissionDenied)
}

func TestCreateBulletinRejectsForeignWeighing(t *testing.T) {
	svc, _, weighings, _, farmers, _ := newBulletinService()
	ctx := context.Background()

	farmerID := uuid.New()
	w1 := uuid.New()

	farmers.On("Get", ctx, farmerID).Return(&model.Farmer{ID: farmerID}, nil)
	weighings.On("ListByIDs", ctx, []uuid.UUID{w1}).Return([]model.Weighing{
		{ID: w1, FarmerID: uuid.New(), NetAmount: decimal.NewFromInt(5000)},
	}, nil)

	_, err := svc.Create(ctx, service.CreateBulletinInput{
		FarmerID:    farmerID,
		Period:      "2025-08",
		WeighingIDs: []uuid.UUID{w1},
		Principal:   manager(),
	})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestCreateBulletinRejectsEmptySelection(t *testing.T) {
	svc, _, _, _, _, _ := newBulletinService()

	_, err := svc.Create(context.Background(), service.CreateBulletinInput{
		FarmerID:  uuid.New(),
		Period:    "2025-08",
		Principal: manager(),
	})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestValidateBulletin(t *testing.T) {
	svc, bulletins, _, _, _, _ := newBulletinService()
	ctx := context.Background()

	id := uuid.New()
	bulletins.On("Get", ctx, id).Return(&model.Bulletin{ID: id, Status: model.BulletinStatusDraft}, nil)
	bulletins.On("UpdateStatus", ctx, id, model.BulletinStatusValidated, mock.Anything, mock.Anything).Return(nil)

	bulletin, err := svc.Validate(ctx, id, manager())
	require.NoError(t, err)
	assert.Equal(t, model.BulletinStatusValidated, bulletin.Status)
	assert.NotNil(t, bulletin.ValidatedAt)
}

func TestValidateBulletinOnlyFromDraft(t *testing.T) {
	svc, bulletins, _, _, _, _ := newBulletinService()
	ctx := context.Background()

	id := uuid.New()
	bulletins.On("Get", ctx, id).Return(&model.Bulletin{ID: id, Status: model.BulletinStatusCancelled}, nil)

	_, err := svc.Validate(ctx, id, manager())
	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestCancelBulletin(t *testing.T) {
	svc, bulletins, _, _, _, _ := newBulletinService()
	ctx := context.Background()

	id := uuid.New()
	bulletins.On("Get", ctx, id).Return(&model.Bulletin{ID: id, Status: model.BulletinStatusDraft}, nil)
	bulletins.On("UpdateStatus", ctx, id, model.BulletinStatusCancelled, mock.Anything, mock.Anything).Return(nil)

	bulletin, err := svc.Cancel(ctx, id, manager())
	require.NoError(t, err)
	assert.Equal(t, model.BulletinStatusCancelled, bulletin.Status)
	assert.NotNil(t, bulletin.CancelledAt)
}

func TestUnpaidWeighingsUnknownFarmer(t *testing.T) {
	svc, _, _, _, farmers, _ := newBulletinService()
	ctx := context.Background()

	farmerID := uuid.New()
	farmers.On("Get", ctx, farmerID).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.UnpaidWeighings(ctx, farmerID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestGeneratePDF(t *testing.T) {
	svc, bulletins, weighings, credits, farmers, pdf := newBulletinService()
	ctx := context.Background()

	id := uuid.New()
	farmerID := uuid.New()
	w1 := uuid.New()

	bulletins.On("Get", ctx, id).Return(&model.Bulletin{
		ID:              id,
		FarmerID:        farmerID,
		Period:          "2025-08",
		Status:          model.BulletinStatusDraft,
		CreditsDeducted: decimal.NewFromInt(2000),
		WeighingIDs:     []uuid.UUID{w1},
	}, nil)
	farmers.On("Get", ctx, farmerID).Return(&model.Farmer{ID: farmerID, FirstName: "Awa", LastName: "Kone"}, nil)
	weighings.On("ListByIDs", ctx, []uuid.UUID{w1}).Return([]model.Weighing{{ID: w1}}, nil)
	credits.On("SumOutstanding", ctx, farmerID).Return(decimal.NewFromInt(5000), nil)
	pdf.On("Generate", mock.AnythingOfType("model.BulletinDocument")).
		Run(func(args mock.Arguments) {
			doc := args.Get(0).(model.BulletinDocument)
			assert.True(t, doc.OutstandingBefore.Equal(decimal.NewFromInt(5000)))
			assert.True(t, doc.OutstandingAfter.Equal(decimal.NewFromInt(3000)))
		}).
		Return([]byte("%PDF"), nil)

	result, err := svc.GeneratePDF(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "bulletin-Awa-Kone-2025-08.pdf", result.FileName)
	assert.NotEmpty(t, result.Content)
}

func TestGeneratePDFSettledBulletinKeepsLedgerBalance(t *testing.T) {
	svc, bulletins, weighings, credits, farmers, pdf := newBulletinService()
	ctx := context.Background()

	id := uuid.New()
	farmerID := uuid.New()
	w1 := uuid.New()

	// deducted credits were marked paid after validation, so the ledger
	// balance already shrank; a re-print must not subtract the deduction again
	bulletins.On("Get", ctx, id).Return(&model.Bulletin{
		ID:              id,
		FarmerID:        farmerID,
		Period:          "2025-08",
		Status:          model.BulletinStatusValidated,
		CreditsDeducted: decimal.NewFromInt(2000),
		WeighingIDs:     []uuid.UUID{w1},
	}, nil)
	farmers.On("Get", ctx, farmerID).Return(&model.Farmer{ID: farmerID, FirstName: "Awa", LastName: "Kone"}, nil)
	weighings.On("ListByIDs", ctx, []uuid.UUID{w1}).Return([]model.Weighing{{ID: w1}}, nil)
	credits.On("SumOutstanding", ctx, farmerID).Return(decimal.NewFromInt(3000), nil)
	pdf.On("Generate", mock.AnythingOfType("model.BulletinDocument")).
		Run(func(args mock.Arguments) {
			doc := args.Get(0).(model.BulletinDocument)
			assert.True(t, doc.OutstandingBefore.Equal(decimal.NewFromInt(3000)))
			assert.True(t, doc.OutstandingAfter.Equal(decimal.NewFromInt(3000)))
		}).
		Return([]byte("%PDF"), nil)

	_, err := svc.GeneratePDF(ctx, id)
	require.NoError(t, err)
}
