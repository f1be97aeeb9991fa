package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/tdiabate/farmpay/internal/model"
)

type MockWeighingStore struct {
	mock.Mock
}

func (m *MockWeighingStore) Create(ctx context.Context, weighing model.Weighing) (*model.Weighing, error) {
	args := m.Called(ctx, weighing)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Weighing), args.Error(1)
}

func (m *MockWeighingStore) Get(ctx context.Context, id uuid.UUID) (*model.Weighing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Weighing), args.Error(1)
}

func (m *MockWeighingStore) ListByFarmer(ctx context.Context, farmerID uuid.UUID) ([]model.Weighing, error) {
	args := m.Called(ctx, farmerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Weighing), args.Error(1)
}

func (m *MockWeighingStore) ListUnpaidByFarmer(ctx context.Context, farmerID uuid.UUID) ([]model.Weighing, error) {
	args := m.Called(ctx, farmerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Weighing), args.Error(1)
}

func (m *MockWeighingStore) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Weighing, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Weighing), args.Error(1)
}

func (m *MockWeighingStore) Update(ctx context.Context, weighing model.Weighing) error {
	args := m.Called(ctx, weighing)
	return args.Error(0)
}

func (m *MockWeighingStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockFarmerStore struct {
	mock.Mock
}

func (m *MockFarmerStore) Get(ctx context.Context, id uuid.UUID) (*model.Farmer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Farmer), args.Error(1)
}

type MockCreditStore struct {
	mock.Mock
}

func (m *MockCreditStore) Create(ctx context.Context, credit model.Credit, installments []model.CreditInstallment) (*model.Credit, error) {
	args := m.Called(ctx, credit, installments)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Credit), args.Error(1)
}

func (m *MockCreditStore) Get(ctx context.Context, id uuid.UUID) (*model.Credit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Credit), args.Error(1)
}

func (m *MockCreditStore) ListByFarmer(ctx context.Context, farmerID uuid.UUID) ([]model.Credit, error) {
	args := m.Called(ctx, farmerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Credit), args.Error(1)
}

func (m *MockCreditStore) SumOutstanding(ctx context.Context, farmerID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, farmerID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockCreditStore) MarkPaid(ctx context.Context, id uuid.UUID, paidDate time.Time) error {
	args := m.Called(ctx, id, paidDate)
	return args.Error(0)
}

func (m *MockCreditStore) ListInstallments(ctx context.Context, creditID uuid.UUID) ([]model.CreditInstallment, error) {
	args := m.Called(ctx, creditID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CreditInstallment), args.Error(1)
}

func (m *MockCreditStore) MarkInstallmentPaid(ctx context.Context, installmentID uuid.UUID) error {
	args := m.Called(ctx, installmentID)
	return args.Error(0)
}

func (m *MockCreditStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBulletinStore struct {
	mock.Mock
}

func (m *MockBulletinStore) Create(ctx context.Context, bulletin model.Bulletin, weighingIDs []uuid.UUID) (*model.Bulletin, error) {
	args := m.Called(ctx, bulletin, weighingIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bulletin), args.Error(1)
}

func (m *MockBulletinStore) Get(ctx context.Context, id uuid.UUID) (*model.Bulletin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bulletin), args.Error(1)
}

func (m *MockBulletinStore) ListByFarmer(ctx context.Context, farmerID uuid.UUID, status *model.BulletinStatus) ([]model.Bulletin, error) {
	args := m.Called(ctx, farmerID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Bulletin), args.Error(1)
}

func (m *MockBulletinStore) UpdateStatus(ctx context.Context, id uuid.UUID, status model.BulletinStatus, validatedAt, cancelledAt *time.Time) error {
	args := m.Called(ctx, id, status, validatedAt, cancelledAt)
	return args.Error(0)
}

type MockPDFGenerator struct {
	mock.Mock
}

func (m *MockPDFGenerator) Generate(doc model.BulletinDocument) ([]byte, error) {
	args := m.Called(doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
