package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BulletinStatus string

const (
	BulletinStatusDraft     BulletinStatus = "DRAFT"
	BulletinStatusValidated BulletinStatus = "VALIDATED"
	BulletinStatusCancelled BulletinStatus = "CANCELLED"
)

// Bulletin is the settlement record for a batch of weighings for one farmer
// over one period. A weighing belongs to at most one non-cancelled bulletin.
type Bulletin struct {
	ID              uuid.UUID
	FarmerID        uuid.UUID
	Period          string
	GrossAmount     decimal.Decimal
	CreditsDeducted decimal.Decimal
	NetAmount       decimal.Decimal
	Status          BulletinStatus
	GeneratedDate   time.Time
	ValidatedAt     *time.Time
	CancelledAt     *time.Time
	CreatedByUserID uuid.UUID
	CreatedAt       time.Time

	WeighingIDs []uuid.UUID `gorm:"-"`
}

// BulletinDocument carries everything the PDF rendering needs.
type BulletinDocument struct {
	Bulletin          Bulletin
	Farmer            Farmer
	Weighings         []Weighing
	OutstandingBefore decimal.Decimal
	OutstandingAfter  decimal.Decimal
}
