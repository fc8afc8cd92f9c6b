package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"dashmart.backend/internal/domain/entities"
	"dashmart.backend/internal/interfaces/http/response"
	"dashmart.backend/internal/usecases"
)

type DriverHandler struct {
	driverUsecase *usecases.DriverUsecase
}

func NewDriverHandler(driverUsecase *usecases.DriverUsecase) *DriverHandler {
	return &DriverHandler{
		driverUsecase: driverUsecase,
	}
}

// CreateDriver registers a new delivery driver
func (h *DriverHandler) CreateDriver(c *gin.Context) {
	var input entities.CreateDriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	driver, err := h.driverUsecase.CreateDriver(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, driver)
}

// GetDriver gets a driver by id
func (h *DriverHandler) GetDriver(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver ID"})
		return
	}

	driver, err := h.driverUsecase.GetDriver(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, driver)
}

// ListDrivers lists drivers, optionally only available ones
func (h *DriverHandler) ListDrivers(c *gin.Context) {
	onlyAvailable := c.Query("available") == "true"

	drivers, err := h.driverUsecase.ListDrivers(c.Request.Context(), onlyAvailable)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, drivers)
}

// SetAvailability toggles a driver's availability
func (h *DriverHandler) SetAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver ID"})
		return
	}

	var input struct {
		IsAvailable *bool `json:"isAvailable" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.driverUsecase.SetAvailability(c.Request.Context(), id, *input.IsAvailable); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Driver updated"})
}
