package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tdiabate/farmpay/internal/model"
)

type farmerResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone,omitempty"`
	Village   string    `json:"village,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toFarmerResponse(f model.Farmer) farmerResponse {
	return farmerResponse{
		ID:        f.ID,
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Phone:     f.Phone,
		Village:   f.Village,
		CreatedAt: f.CreatedAt,
	}
}

type plantationResponse struct {
	ID           uuid.UUID `json:"id"`
	FarmerID     uuid.UUID `json:"farmer_id"`
	Name         string    `json:"name"`
	AreaHectares float64   `json:"area_hectares"`
	Village      string    `json:"village,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func toPlantationResponse(p model.Plantation) plantationResponse {
	return plantationResponse{
		ID:           p.ID,
		FarmerID:     p.FarmerID,
		Name:         p.Name,
		AreaHectares: p.AreaHectares,
		Village:      p.Village,
		CreatedAt:    p.CreatedAt,
	}
}

type employeeResponse struct {
	ID        uuid.UUID       `json:"id"`
	FullName  string          `json:"full_name"`
	Position  string          `json:"position,omitempty"`
	Phone     string          `json:"phone,omitempty"`
	Salary    decimal.Decimal `json:"salary"`
	HiredAt   time.Time       `json:"hired_at"`
	CreatedAt time.Time       `json:"created_at"`
}

func toEmployeeResponse(e model.Employee) employeeResponse {
	return employeeResponse{
		ID:        e.ID,
		FullName:  e.FullName,
		Position:  e.Position,
		Phone:     e.Phone,
		Salary:    e.Salary,
		HiredAt:   e.HiredAt,
		CreatedAt: e.CreatedAt,
	}
}

type transporterResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toTransporterResponse(t model.Transporter) transporterResponse {
	return transporterResponse{
		ID:        t.ID,
		Name:      t.Name,
		Phone:     t.Phone,
		CreatedAt: t.CreatedAt,
	}
}

type vehicleResponse struct {
	ID            uuid.UUID `json:"id"`
	TransporterID uuid.UUID `json:"transporter_id"`
	PlateNumber   string    `json:"plate_number"`
	Brand         string    `json:"brand,omitempty"`
	CapacityKg    float64   `json:"capacity_kg,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func toVehicleResponse(v model.Vehicle) vehicleResponse {
	return vehicleResponse{
		ID:            v.ID,
		TransporterID: v.TransporterID,
		PlateNumber:   v.PlateNumber,
		Brand:         v.Brand,
		CapacityKg:    v.CapacityKg,
		CreatedAt:     v.CreatedAt,
	}
}

type weighingResponse struct {
	ID            uuid.UUID  `json:"id"`
	FarmerID      uuid.UUID  `json:"farmer_id"`
	PlantationID  *uuid.UUID `json:"plantation_id,omitempty"`
	TransporterID *uuid.UUID `json:"transporter_id,omitempty"`
	VehicleID     *uuid.UUID `json:"vehicle_id,omitempty"`
	TicketNumber  string     `json:"ticket_number"`
	WeighedAt     time.Time  `json:"weighed_at"`

	LoadedWeightKg     decimal.Decimal `json:"loaded_weight_kg"`
	EmptyWeightKg      decimal.Decimal `json:"empty_weight_kg"`
	NetWeightKg        decimal.Decimal `json:"net_weight_kg"`
	PricePerKg         decimal.Decimal `json:"price_per_kg"`
	TransportCostPerKg decimal.Decimal `json:"transport_cost_per_kg"`
	TaxRate            decimal.Decimal `json:"tax_rate"`

	GrossAmount   decimal.Decimal `json:"gross_amount"`
	TransportCost decimal.Decimal `json:"transport_cost"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	NetAmount     decimal.Decimal `json:"net_amount"`

	CreatedAt time.Time `json:"created_at"`
}

func toWeighingResponse(w model.Weighing) weighingResponse {
	return weighingResponse{
		ID:                 w.ID,
		FarmerID:           w.FarmerID,
		PlantationID:       w.PlantationID,
		TransporterID:      w.TransporterID,
		VehicleID:          w.VehicleID,
		TicketNumber:       w.TicketNumber,
		WeighedAt:          w.WeighedAt,
		LoadedWeightKg:     w.LoadedWeightKg,
		EmptyWeightKg:      w.EmptyWeightKg,
		NetWeightKg:        w.NetWeightKg,
		PricePerKg:         w.PricePerKg,
		TransportCostPerKg: w.TransportCostPerKg,
		TaxRate:            w.TaxRate,
		GrossAmount:        w.GrossAmount,
		TransportCost:      w.TransportCost,
		TaxAmount:          w.TaxAmount,
		NetAmount:          w.NetAmount,
		CreatedAt:          w.CreatedAt,
	}
}

func toWeighingResponses(weighings []model.Weighing) []weighingResponse {
	result := make([]weighingResponse, 0, len(weighings))
	for _, w := range weighings {
		result = append(result, toWeighingResponse(w))
	}
	return result
}

type creditResponse struct {
	ID                 uuid.UUID       `json:"id"`
	FarmerID           uuid.UUID       `json:"farmer_id"`
	Type               string          `json:"type"`
	Amount             decimal.Decimal `json:"amount"`
	Description        string          `json:"description,omitempty"`
	IssuedAt           time.Time       `json:"issued_at"`
	InstallmentsCount  int             `json:"installments_count"`
	DeductionStartDate *time.Time      `json:"deduction_start_date,omitempty"`
	IsPaid             bool            `json:"is_paid"`
	PaidDate           *time.Time      `json:"paid_date,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

func toCreditResponse(c model.Credit) creditResponse {
	return creditResponse{
		ID:                 c.ID,
		FarmerID:           c.FarmerID,
		Type:               string(c.Type),
		Amount:             c.Amount,
		Description:        c.Description,
		IssuedAt:           c.IssuedAt,
		InstallmentsCount:  c.InstallmentsCount,
		DeductionStartDate: c.DeductionStartDate,
		IsPaid:             c.IsPaid,
		PaidDate:           c.PaidDate,
		CreatedAt:          c.CreatedAt,
	}
}

type installmentResponse struct {
	ID       uuid.UUID       `json:"id"`
	CreditID uuid.UUID       `json:"credit_id"`
	Seq      int             `json:"seq"`
	Amount   decimal.Decimal `json:"amount"`
	DueDate  time.Time       `json:"due_date"`
	IsPaid   bool            `json:"is_paid"`
}

func toInstallmentResponse(i model.CreditInstallment) installmentResponse {
	return installmentResponse{
		ID:       i.ID,
		CreditID: i.CreditID,
		Seq:      i.Seq,
		Amount:   i.Amount,
		DueDate:  i.DueDate,
		IsPaid:   i.IsPaid,
	}
}

type bulletinResponse struct {
	ID              uuid.UUID       `json:"id"`
	FarmerID        uuid.UUID       `json:"farmer_id"`
	Period          string          `json:"period"`
	GrossAmount     decimal.Decimal `json:"gross_amount"`
	CreditsDeducted decimal.Decimal `json:"credits_deducted"`
	NetAmount       decimal.Decimal `json:"net_amount"`
	Status          string          `json:"status"`
	GeneratedDate   time.Time       `json:"generated_date"`
	ValidatedAt     *time.Time      `json:"validated_at,omitempty"`
	CancelledAt     *time.Time      `json:"cancelled_at,omitempty"`
	CreatedByUserID uuid.UUID       `json:"created_by_user_id"`
	CreatedAt       time.Time       `json:"created_at"`
	WeighingIDs     []uuid.UUID     `json:"weighing_ids,omitempty"`
}

func toBulletinResponse(b model.Bulletin) bulletinResponse {
	return bulletinResponse{
		ID:              b.ID,
		FarmerID:        b.FarmerID,
		Period:          b.Period,
		GrossAmount:     b.GrossAmount,
		CreditsDeducted: b.CreditsDeducted,
		NetAmount:       b.NetAmount,
		Status:          string(b.Status),
		GeneratedDate:   b.GeneratedDate,
		ValidatedAt:     b.ValidatedAt,
		CancelledAt:     b.CancelledAt,
		CreatedByUserID: b.CreatedByUserID,
		CreatedAt:       b.CreatedAt,
		WeighingIDs:     b.WeighingIDs,
	}
}
