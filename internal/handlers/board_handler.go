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

type BoardHandler struct {
	orderService services.OrderService
	logger       *zap.Logger
}

func NewBoardHandler(orderService services.OrderService, logger *zap.Logger) *BoardHandler {
	return &BoardHandler{orderService: orderService, logger: logger}
}

type createOrderRequest struct {
	CustomerName    string             `json:"cliente_nome"`
	DeliveryAddress string             `json:"endereco_entrega"`
	PaymentMethod   string             `json:"forma_pagamento" binding:"required"`
	Notes           string             `json:"observacoes"`
	Items           []models.OrderItem `json:"itens"`
}

// GET /api/pedidos
func (h *BoardHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.ListOrders()
	if err != nil {
		h.logger.Error("failed to list orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GET /api/pedidos/quadro
func (h *BoardHandler) GetBoard(c *gin.Context) {
	board, err := h.orderService.Board()
	if err != nil {
		h.logger.Error("failed to build order board", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load board"})
		return
	}
	c.JSON(http.StatusOK, board)
}

// POST /api/pedidos
func (h *BoardHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order := &models.Order{
		CustomerName:    req.CustomerName,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
		Items:           req.Items,
	}

	if err := h.orderService.CreateOrder(order); err != nil {
		if errors.Is(err, services.ErrEmptyOrder) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order must contain at least one item"})
			return
		}
		h.logger.Error("failed to create order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order"})
		return
	}

	c.JSON(http.StatusCreated, order)
}

// PATCH /api/pedidos/:id/avancar
func (h *BoardHandler) AdvanceOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := h.orderService.AdvanceOrder(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		h.logger.Error("failed to advance order", zap.Uint("order_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to advance order"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// DELETE /api/pedidos/:id
func (h *BoardHandler) DeclineOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.orderService.DeclineOrder(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		h.logger.Error("failed to decline order", zap.Uint("order_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to decline order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
