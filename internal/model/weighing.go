package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Weighing is one weigh-in/weigh-out delivery event. The derived money fields
// are computed once at create/update time and stored as-is.
type Weighing struct {
	ID            uuid.UUID
	FarmerID      uuid.UUID
	PlantationID  *uuid.UUID
	TransporterID *uuid.UUID
	VehicleID     *uuid.UUID
	TicketNumber  string
	WeighedAt     time.Time

	LoadedWeightKg     decimal.Decimal
	EmptyWeightKg      decimal.Decimal
	NetWeightKg        decimal.Decimal
	PricePerKg         decimal.Decimal
	TransportCostPerKg decimal.Decimal
	TaxRate            decimal.Decimal

	GrossAmount   decimal.Decimal
	TransportCost decimal.Decimal
	TaxAmount     decimal.Decimal
	NetAmount     decimal.Decimal

	CreatedAt time.Time
}
