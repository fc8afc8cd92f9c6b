package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"dashmart.backend/internal/domain/entities"
	"dashmart.backend/internal/interfaces/http/response"
	"dashmart.backend/internal/usecases"
)

type VendorHandler struct {
	vendorUsecase *usecases.VendorUsecase
}

func NewVendorHandler(vendorUsecase *usecases.VendorUsecase) *VendorHandler {
	return &VendorHandler{
		vendorUsecase: vendorUsecase,
	}
}

// CreateVendor registers a new vendor
func (h *VendorHandler) CreateVendor(c *gin.Context) {
	var input entities.CreateVendorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vendor, err := h.vendorUsecase.CreateVendor(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, vendor)
}

// GetVendor gets a vendor by id
func (h *VendorHandler) GetVendor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vendor ID"})
		return
	}

	vendor, err := h.vendorUsecase.GetVendor(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// ListVendors lists all vendors
func (h *VendorHandler) ListVendors(c *gin.Context) {
	vendors, err := h.vendorUsecase.ListVendors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, vendors)
}

// SetVendorStatus moves a vendor through its review states
func (h *VendorHandler) SetVendorStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vendor ID"})
		return
	}

	var input struct {
		Status entities.VendorStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch input.Status {
	case entities.VendorStatusPending, entities.VendorStatusApproved, entities.VendorStatusSuspended:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vendor status"})
		return
	}

	if err := h.vendorUsecase.SetVendorStatus(c.Request.Context(), id, input.Status); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vendor updated"})
}
