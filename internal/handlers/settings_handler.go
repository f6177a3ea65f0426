package handlers

import (
	"net/http"
	"restaurant_panel/internal/models"
	"restaurant_panel/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SettingsHandler struct {
	settingsService services.SettingsService
	logger          *zap.Logger
}

func NewSettingsHandler(settingsService services.SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, logger: logger}
}

type settingsRequest struct {
	StoreName             string `json:"nome_loja"`
	LogoURL               string `json:"logo_url"`
	OpeningTime           string `json:"horario_abertura"`
	ClosingTime           string `json:"horario_fechamento"`
	StorePhone            string `json:"telefone_loja"`
	MessagingEnabled      bool   `json:"integracao_whatsapp"`
	PaymentGatewayEnabled bool   `json:"integracao_gateway_pagamento"`
}

// GET /api/configuracoes
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings()
	if err != nil {
		h.logger.Error("failed to load settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// PUT /api/configuracoes
func (h *SettingsHandler) SaveSettings(c *gin.Context) {
	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.settingsService.SaveSettings(&models.StoreSettings{
		StoreName:             req.StoreName,
		LogoURL:               req.LogoURL,
		OpeningTime:           req.OpeningTime,
		ClosingTime:           req.ClosingTime,
		StorePhone:            req.StorePhone,
		MessagingEnabled:      req.MessagingEnabled,
		PaymentGatewayEnabled: req.PaymentGatewayEnabled,
	})
	if err != nil {
		h.logger.Error("failed to save settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}
