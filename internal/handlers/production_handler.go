package handlers

import (
	"net/http"
	"time"

	"github.com/mustafazaki616/IndustriTrack/internal/models"
	"github.com/mustafazaki616/IndustriTrack/internal/services"

	"github.com/gin-gonic/gin"
)

type ProductionHandler struct {
	productionService services.ProductionService
}

func NewProductionHandler(productionService services.ProductionService) *ProductionHandler {
	return &ProductionHandler{productionService: productionService}
}

func (h *ProductionHandler) ListProductions(c *gin.Context) {
	views, err := h.productionService.ListProductions()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *ProductionHandler) GetProduction(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	production, err := h.productionService.GetProduction(id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, production)
}

func (h *ProductionHandler) CreateProduction(c *gin.Context) {
	var production models.Production
	if err := c.ShouldBindJSON(&production); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if err := h.productionService.CreateProduction(&production); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, production)
}

func (h *ProductionHandler) UpdateProduction(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var production models.Production
	if err := c.ShouldBindJSON(&production); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	updated, err := h.productionService.UpdateProduction(id, &production)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ProductionHandler) DeleteProduction(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.productionService.DeleteProduction(id); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

type startProductionRequest struct {
	Stages []services.StageOverride `json:"stages"`
}

func (h *ProductionHandler) StartProduction(c *gin.Context) {
	orderID, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	var req startProductionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
	}
	result, err := h.productionService.StartProduction(orderID, req.Stages)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ProductionHandler) GetStagesForOrder(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	stages, err := h.productionService.GetStagesForOrder(orderID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stages)
}

type updateStageRequest struct {
	StageID        uint       `json:"stage_id" binding:"required"`
	Status         string     `json:"status" binding:"required"`
	WorkerName     string     `json:"worker_name"`
	Notes          string     `json:"notes"`
	CompletionDate *time.Time `json:"completion_date"`
	ActualDuration *int       `json:"actual_duration"`
	// Interpreted as a delta added to the stage's expected duration when
	// extending a running or overdue stage.
	ExpectedDuration *int `json:"expected_duration"`
}

func (h *ProductionHandler) UpdateStage(c *gin.Context) {
	var req updateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	stage, err := h.productionService.UpdateStage(services.UpdateStageInput{
		StageID:               req.StageID,
		Status:                req.Status,
		WorkerName:            req.WorkerName,
		Notes:                 req.Notes,
		CompletionDate:        req.CompletionDate,
		ActualDuration:        req.ActualDuration,
		ExpectedDurationDelta: req.ExpectedDuration,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stage)
}

func (h *ProductionHandler) GetOverdueStages(c *gin.Context) {
	stages, err := h.productionService.GetOverdueStages()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stages)
}

func (h *ProductionHandler) SweepOverdue(c *gin.Context) {
	flagged, err := h.productionService.SweepOverdue()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"flagged": flagged})
}

func (h *ProductionHandler) FixMissingStages(c *gin.Context) {
	repaired, err := h.productionService.FixMissingStages()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"repaired": repaired})
}
