package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReportMode string

const (
	ReportModeFarmer      ReportMode = "FARMER"
	ReportModeTransporter ReportMode = "TRANSPORTER"
)

type WeighingGroup struct {
	ID            uuid.UUID
	Name          string
	WeighingCount int64
	Weighings     []WeighingDetail `gorm:"-"`
}

type WeighingDetail struct {
	WeighedAt       time.Time
	TicketNumber    string
	PlateNumber     *string
	FarmerName      *string
	TransporterName *string
	NetWeightKg     decimal.Decimal
	NetAmount       decimal.Decimal
}

type WeighingReport struct {
	Mode           ReportMode
	TargetID       uuid.UUID
	TargetName     string
	PeriodStart    time.Time
	PeriodEnd      time.Time
	TotalWeighings int64
	Groups         []WeighingGroup
}
