package model

import (
	"time"

	"github.com/google/uuid"
)

type Farmer struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Phone     string
	Village   string
	CreatedAt time.Time
}

func (f Farmer) FullName() string {
	return f.FirstName + " " + f.LastName
}

type Plantation struct {
	ID           uuid.UUID
	FarmerID     uuid.UUID
	Name         string
	AreaHectares float64
	Village      string
	CreatedAt    time.Time
}
