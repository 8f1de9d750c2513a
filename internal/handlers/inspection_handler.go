package handlers

import (
	"net/http"

	"github.com/mustafazaki616/IndustriTrack/internal/models"
	"github.com/mustafazaki616/IndustriTrack/internal/services"

	"github.com/gin-gonic/gin"
)

type InspectionHandler struct {
	inspectionService services.InspectionService
}

func NewInspectionHandler(inspectionService services.InspectionService) *InspectionHandler {
	return &InspectionHandler{inspectionService: inspectionService}
}

func (h *InspectionHandler) ListInspections(c *gin.Context) {
	inspections, err := h.inspectionService.GetAllInspections()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, inspections)
}

func (h *InspectionHandler) GetInspection(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	inspection, err := h.inspectionService.GetInspectionByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, inspection)
}

func (h *InspectionHandler) CreateInspection(c *gin.Context) {
	var inspection models.Inspection
	if err := c.ShouldBindJSON(&inspection); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if err := h.inspectionService.CreateInspection(&inspection); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inspection)
}

func (h *InspectionHandler) UpdateInspection(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var inspection models.Inspection
	if err := c.ShouldBindJSON(&inspection); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	updated, err := h.inspectionService.UpdateInspection(id, &inspection)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *InspectionHandler) DeleteInspection(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.inspectionService.DeleteInspection(id); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
