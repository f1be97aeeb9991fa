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
)

func newCreditService() (*service.CreditService, *MockCreditStore, *MockFarmerStore) {
	credits := new(MockCreditStore)
	farmers := new(MockFarmerStore)
	return service.NewCreditService(credits, farmers), credits, farmers
}

func TestCreateCreditWithInstallments(t *testing.T) {
	svc, credits, farmers := newCreditService()
	ctx := context.Background()

	farmerID := uuid.New()
	issued := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	farmers.On("Get", ctx, farmerID).Return(&model.Farmer{ID: farmerID}, nil)
	credits.On("Create", ctx, mock.AnythingOfType("model.Credit"), mock.AnythingOfType("[]model.CreditInstallment")).
		Run(func(args mock.Arguments) {
			installments := args.Get(2).([]model.CreditInstallment)
			require.Len(t, installments, 6)
			for i, inst := range installments {
				assert.Equal(t, i+1, inst.Seq)
				assert.True(t, inst.Amount.Equal(decimal.NewFromInt(10000)), "installment %d: %s", i+1, inst.Amount)
				assert.Equal(t, issued.AddDate(0, i, 0), inst.DueDate)
			}
		}).
		Return(&model.Credit{ID: uuid.New(), FarmerID: farmerID}, nil)

	_, err := svc.Create(ctx, service.CreateCreditInput{
		FarmerID:          farmerID,
		Type:              model.CreditTypeMoney,
		Amount:            decimal.NewFromInt(60000),
		Description:       "campaign advance",
		IssuedAt:          issued,
		InstallmentsCount: 6,
	})
	require.NoError(t, err)
	credits.AssertExpectations(t)
}

func TestCreateCreditWithoutInstallments(t *testing.T) {
	svc, credits, farmers := newCreditService()
	ctx := context.Background()

	farmerID := uuid.New()
	farmers.On("Get", ctx, farmerID).Return(&model.Farmer{ID: farmerID}, nil)
	credits.On("Create", ctx, mock.AnythingOfType("model.Credit"), mock.Anything).
		Run(func(args mock.Arguments) {
			assert.Nil(t, args.Get(2))
		}).
		Return(&model.Credit{ID: uuid.New()}, nil)

	_, err := svc.Create(ctx, service.CreateCreditInput{
		FarmerID: farmerID,
		Type:     model.CreditTypeTools,
		Amount:   decimal.NewFromInt(2500),
		IssuedAt: time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
}

func TestCreateCreditRejectsBadInput(t *testing.T) {
	svc, _, _ := newCreditService()
	ctx := context.Background()
	issued := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		input service.CreateCreditInput
	}{
		{"missing farmer", service.CreateCreditInput{Type: model.CreditTypeMoney, Amount: decimal.NewFromInt(100), IssuedAt: issued}},
		{"unknown type", service.CreateCreditInput{FarmerID: uuid.New(), Type: "SEEDS", Amount: decimal.NewFromInt(100), IssuedAt: issued}},
		{"zero amount", service.CreateCreditInput{FarmerID: uuid.New(), Type: model.CreditTypeMoney, Amount: decimal.Zero, IssuedAt: issued}},
		{"negative amount", service.CreateCreditInput{FarmerID: uuid.New(), Type: model.CreditTypeMoney, Amount: decimal.NewFromInt(-100), IssuedAt: issued}},
		{"missing issue date", service.CreateCreditInput{FarmerID: uuid.New(), Type: model.CreditTypeMoney, Amount: decimal.NewFromInt(100)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.input)
			assert.ErrorIs(t, err, service.ErrInvalidInput)
		})
	}
}

func TestMarkPaidRestampsOnRepeat(t *testing.T) {
	svc, credits, _ := newCreditService()
	ctx := context.Background()

	id := uuid.New()
	first := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	second := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)

	credits.On("MarkPaid", ctx, id, first).Return(nil).Once()
	credits.On("MarkPaid", ctx, id, second).Return(nil).Once()

	require.NoError(t, svc.MarkPaid(ctx, id, first))
	require.NoError(t, svc.MarkPaid(ctx, id, second))
	credits.AssertExpectations(t)
}

func TestMarkPaidUnknownCredit(t *testing.T) {
	svc, credits, _ := newCreditService()
	ctx := context.Background()

	id := uuid.New()
	credits.On("MarkPaid", ctx, id, mock.Anything).Return(gorm.ErrRecordNotFound)

	err := svc.MarkPaid(ctx, id, time.Now())
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestOutstandingBalance(t *testing.T) {
	svc, credits, farmers := newCreditService()
	ctx := context.Background()

	farmerID := uuid.New()
	farmers.On("Get", ctx, farmerID).Return(&model.Farmer{ID: farmerID}, nil)
	credits.On("SumOutstanding", ctx, farmerID).Return(decimal.NewFromInt(15000), nil)

	balance, err := svc.OutstandingBalance(ctx, farmerID)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(15000)))
}
