package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tdiabate/farmpay/internal/model"
)

type farmerRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone"`
	Village   string `json:"village"`
}

func (h *Handler) createFarmer(c *gin.Context) {
	var req farmerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	farmer, err := h.registry.CreateFarmer(c.Request.Context(), model.Farmer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Village:   req.Village,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toFarmerResponse(*farmer))
}

func (h *Handler) listFarmers(c *gin.Context) {
	farmers, err := h.registry.ListFarmers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	result := make([]farmerResponse, 0, len(farmers))
	for _, f := range farmers {
		result = append(result, toFarmerResponse(f))
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) getFarmer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	farmer, err := h.registry.GetFarmer(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFarmerResponse(*farmer))
}

func (h *Handler) updateFarmer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req farmerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.registry.UpdateFarmer(c.Request.Context(), model.Farmer{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Village:   req.Village,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) deleteFarmer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.registry.DeleteFarmer(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type plantationRequest struct {
	FarmerID     string  `json:"farmer_id"`
	Name         string  `json:"name" binding:"required"`
	AreaHectares float64 `json:"area_hectares"`
	Village      string  `json:"village"`
}

func (h *Handler) createPlantation(c *gin.Context) {
	var req plantationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	farmerID, err := uuid.Parse(req.FarmerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid farmer_id"})
		return
	}

	plantation, err := h.registry.CreatePlantation(c.Request.Context(), model.Plantation{
		FarmerID:     farmerID,
		Name:         req.Name,
		AreaHectares: req.AreaHectares,
		Village:      req.Village,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPlantationResponse(*plantation))
}

func (h *Handler) getPlantation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	plantation, err := h.registry.GetPlantation(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPlantationResponse(*plantation))
}

func (h *Handler) listPlantations(c *gin.Context) {
	farmerID, ok := pathID(c)
	if !ok {
		return
	}
	plantations, err := h.registry.ListPlantations(c.Request.Context(), farmerID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	result := make([]plantationResponse, 0, len(plantations))
	for _, p := range plantations {
		result = append(result, toPlantationResponse(p))
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) updatePlantation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req plantationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.registry.UpdatePlantation(c.Request.Context(), model.Plantation{
		ID:           id,
		Name:         req.Name,
		AreaHectares: req.AreaHectares,
		Village:      req.Village,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) deletePlantation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.registry.DeletePlantation(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type employeeRequest struct {
	FullName string          `json:"full_name" binding:"required"`
	Position string          `json:"position"`
	Phone    string          `json:"phone"`
	Salary   decimal.Decimal `json:"salary"`
	HiredAt  string          `json:"hired_at"`
}

func (h *Handler) createEmployee(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	hiredAt, err := parseDate(req.HiredAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hired_at"})
		return
	}

	employee, err := h.registry.CreateEmployee(c.Request.Context(), model.Employee{
		FullName: req.FullName,
		Position: req.Position,
		Phone:    req.Phone,
		Salary:   req.Salary,
		HiredAt:  hiredAt,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toEmployeeResponse(*employee))
}

func (h *Handler) listEmployees(c *gin.Context) {
	employees, err := h.registry.ListEmployees(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	result := make([]employeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, toEmployeeResponse(e))
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) getEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	employee, err := h.registry.GetEmployee(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEmployeeResponse(*employee))
}

func (h *Handler) updateEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	hiredAt, err := parseDate(req.HiredAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hired_at"})
		return
	}

	err = h.registry.UpdateEmployee(c.Request.Context(), model.Employee{
		ID:       id,
		FullName: req.FullName,
		Position: req.Position,
		Phone:    req.Phone,
		Salary:   req.Salary,
		HiredAt:  hiredAt,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) deleteEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.registry.DeleteEmployee(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type transporterRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

func (h *Handler) createTransporter(c *gin.Context) {
	var req transporterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transporter, err := h.registry.CreateTransporter(c.Request.Context(), model.Transporter{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toTransporterResponse(*transporter))
}

func (h *Handler) listTransporters(c *gin.Context) {
	transporters, err := h.registry.ListTransporters(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	result := make([]transporterResponse, 0, len(transporters))
	for _, t := range transporters {
		result = append(result, toTransporterResponse(t))
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) getTransporter(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	transporter, err := h.registry.GetTransporter(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTransporterResponse(*transporter))
}

func (h *Handler) updateTransporter(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req transporterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.registry.UpdateTransporter(c.Request.Context(), model.Transporter{
		ID:    id,
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) deleteTransporter(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.registry.DeleteTransporter(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type vehicleRequest struct {
	TransporterID string  `json:"transporter_id"`
	PlateNumber   string  `json:"plate_number" binding:"required"`
	Brand         string  `json:"brand"`
	CapacityKg    float64 `json:"capacity_kg"`
}

func (h *Handler) createVehicle(c *gin.Context) {
	var req vehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	transporterID, err := uuid.Parse(req.TransporterID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transporter_id"})
		return
	}

	vehicle, err := h.registry.CreateVehicle(c.Request.Context(), model.Vehicle{
		TransporterID: transporterID,
		PlateNumber:   req.PlateNumber,
		Brand:         req.Brand,
		CapacityKg:    req.CapacityKg,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toVehicleResponse(*vehicle))
}

func (h *Handler) listVehicles(c *gin.Context) {
	transporterID, err := parseOptionalUUID(c.Query("transporter_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transporter_id"})
		return
	}
	vehicles, err := h.registry.ListVehicles(c.Request.Context(), transporterID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	result := make([]vehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		result = append(result, toVehicleResponse(v))
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) getVehicle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	vehicle, err := h.registry.GetVehicle(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toVehicleResponse(*vehicle))
}

func (h *Handler) updateVehicle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req vehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.registry.UpdateVehicle(c.Request.Context(), model.Vehicle{
		ID:          id,
		PlateNumber: req.PlateNumber,
		Brand:       req.Brand,
		CapacityKg:  req.CapacityKg,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) deleteVehicle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.registry.DeleteVehicle(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
