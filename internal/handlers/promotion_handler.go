package handlers

import (
	"errors"
	"net/http"
	"restaurant_panel/internal/models"
	"restaurant_panel/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PromotionHandler struct {
	promotionService services.PromotionService
	logger           *zap.Logger
}

func NewPromotionHandler(promotionService services.PromotionService, logger *zap.Logger) *PromotionHandler {
	return &PromotionHandler{promotionService: promotionService, logger: logger}
}

type promotionItemRequest struct {
	ProductName   string  `json:"produto_nome" binding:"required"`
	AdjustedPrice float64 `json:"preco_ajustado"`
	Quantity      int     `json:"quantidade"`
}

type promotionRequest struct {
	Name        string                 `json:"nome" binding:"required"`
	Description string                 `json:"descricao"`
	Validity    string                 `json:"validade"`
	FixedTotal  *float64               `json:"valor_total"`
	Items       []promotionItemRequest `json:"itens"`
}

func (r *promotionRequest) toModel(id uint) *models.Promotion {
	items := make([]models.PromotionItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, models.PromotionItem{
			ProductName:   item.ProductName,
			AdjustedPrice: item.AdjustedPrice,
			Quantity:      item.Quantity,
		})
	}
	return &models.Promotion{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Validity:    r.Validity,
		FixedTotal:  r.FixedTotal,
		Items:       items,
	}
}

// GET /api/promocoes
func (h *PromotionHandler) ListPromotions(c *gin.Context) {
	promotions, err := h.promotionService.ListPromotions()
	if err != nil {
		h.logger.Error("failed to list promotions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load promotions"})
		return
	}
	c.JSON(http.StatusOK, promotions)
}

// POST /api/promocoes
func (h *PromotionHandler) CreatePromotion(c *gin.Context) {
	var req promotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	promotion, err := h.promotionService.SavePromotion(req.toModel(0))
	if err != nil {
		h.logger.Error("failed to create promotion", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create promotion"})
		return
	}
	c.JSON(http.StatusCreated, promotion)
}

// PUT /api/promocoes/:id replaces the stored item set with the submitted
// one.
func (h *PromotionHandler) UpdatePromotion(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req promotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	promotion, err := h.promotionService.SavePromotion(req.toModel(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "promotion not found"})
			return
		}
		h.logger.Error("failed to update promotion", zap.Uint("promotion_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update promotion"})
		return
	}
	c.JSON(http.StatusOK, promotion)
}

// DELETE /api/promocoes/:id
func (h *PromotionHandler) DeletePromotion(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.promotionService.DeletePromotion(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "promotion not found"})
			return
		}
		h.logger.Error("failed to delete promotion", zap.Uint("promotion_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete promotion"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
