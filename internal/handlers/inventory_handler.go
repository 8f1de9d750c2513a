package handlers

import (
	"net/http"

	"github.com/mustafazaki616/IndustriTrack/internal/models"
	"github.com/mustafazaki616/IndustriTrack/internal/services"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	inventoryService services.InventoryService
}

func NewInventoryHandler(inventoryService services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

func (h *InventoryHandler) ListItems(c *gin.Context) {
	items, err := h.inventoryService.GetAllItems()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *InventoryHandler) GetItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	item, err := h.inventoryService.GetItemByID(id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *InventoryHandler) ListLowStock(c *gin.Context) {
	items, err := h.inventoryService.GetLowStockItems()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if err := h.inventoryService.CreateItem(&item); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	updated, err := h.inventoryService.UpdateItem(id, &item)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.inventoryService.DeleteItem(id); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *InventoryHandler) ListStockOuts(c *gin.Context) {
	stockOuts, err := h.inventoryService.GetAllStockOuts()
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stockOuts)
}

func (h *InventoryHandler) CreateStockOut(c *gin.Context) {
	var stockOut models.StockOut
	if err := c.ShouldBindJSON(&stockOut); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if err := h.inventoryService.RecordStockOut(&stockOut); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, stockOut)
}
