package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID        uuid.UUID
	FullName  string
	Position  string
	Phone     string
	Salary    decimal.Decimal
	HiredAt   time.Time
	CreatedAt time.Time
}

type Transporter struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	CreatedAt time.Time
}

type Vehicle struct {
	ID            uuid.UUID
	TransporterID uuid.UUID
	PlateNumber   string
	Brand         string
	CapacityKg    float64
	CreatedAt     time.Time
}
