package handlers

import (
	"errors"
	"net/http"
	"restaurant_panel/internal/models"
	"restaurant_panel/internal/services"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProductHandler struct {
	productService services.ProductService
	logger         *zap.Logger
}

func NewProductHandler(productService services.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{productService: productService, logger: logger}
}

type productRequest struct {
	Name        string  `json:"nome" binding:"required"`
	Description string  `json:"descricao"`
	Price       float64 `json:"preco" binding:"gte=0"`
	ImageURL    string  `json:"imagem_url"`
	Available   *bool   `json:"disponivel"`
	GroupID     *uint   `json:"grupo_id"`
}

func (r *productRequest) toModel() *models.Product {
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	return &models.Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		Available:   available,
		GroupID:     r.GroupID,
	}
}

// GET /api/produtos (optional ?grupo_id= filter)
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var (
		products []models.Product
		err      error
	)

	if groupParam := c.Query("grupo_id"); groupParam != "" {
		groupID, parseErr := strconv.ParseUint(groupParam, 10, 32)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid grupo_id"})
			return
		}
		products, err = h.productService.ListProductsByGroup(uint(groupID))
	} else {
		products, err = h.productService.ListProducts()
	}

	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// POST /api/produtos
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := req.toModel()
	if err := h.productService.CreateProduct(product); err != nil {
		h.logger.Error("failed to create product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, product)
}

// PUT /api/produtos/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := req.toModel()
	product.ID = id
	if err := h.productService.UpdateProduct(product); err != nil {
		h.logger.Error("failed to update product", zap.Uint("product_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
		return
	}

	updated, err := h.productService.GetProduct(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		h.logger.Error("failed to reload product", zap.Uint("product_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// PATCH /api/produtos/:id/grupo links to a group, or unlinks with a null id.
func (h *ProductHandler) SetProductGroup(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		GroupID *uint `json:"grupo_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.productService.SetProductGroup(id, req.GroupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		h.logger.Error("failed to set product group", zap.Uint("product_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// DELETE /api/produtos/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		h.logger.Error("failed to delete product", zap.Uint("product_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
