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

type GroupHandler struct {
	groupService   services.GroupService
	productService services.ProductService
	logger         *zap.Logger
}

func NewGroupHandler(groupService services.GroupService, productService services.ProductService, logger *zap.Logger) *GroupHandler {
	return &GroupHandler{groupService: groupService, productService: productService, logger: logger}
}

type groupRequest struct {
	Name string `json:"nome" binding:"required"`
}

// GET /api/grupos
func (h *GroupHandler) ListGroups(c *gin.Context) {
	groups, err := h.groupService.ListGroups()
	if err != nil {
		h.logger.Error("failed to list groups", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load groups"})
		return
	}
	c.JSON(http.StatusOK, groups)
}

// GET /api/grupos/:id/produtos
func (h *GroupHandler) ListGroupProducts(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := h.groupService.GetGroup(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
			return
		}
		h.logger.Error("failed to load group", zap.Uint("group_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load group"})
		return
	}

	products, err := h.productService.ListProductsByGroup(id)
	if err != nil {
		h.logger.Error("failed to list group products", zap.Uint("group_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// POST /api/grupos
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req groupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group := &models.Group{Name: req.Name}
	if err := h.groupService.CreateGroup(group); err != nil {
		h.logger.Error("failed to create group", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create group"})
		return
	}
	c.JSON(http.StatusCreated, group)
}

// PUT /api/grupos/:id
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req groupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.groupService.GetGroup(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
			return
		}
		h.logger.Error("failed to load group", zap.Uint("group_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update group"})
		return
	}

	group.Name = req.Name
	if err := h.groupService.UpdateGroup(group); err != nil {
		h.logger.Error("failed to update group", zap.Uint("group_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update group"})
		return
	}
	c.JSON(http.StatusOK, group)
}

// DELETE /api/grupos/:id
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.groupService.DeleteGroup(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
			return
		}
		h.logger.Error("failed to delete group", zap.Uint("group_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete group"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
