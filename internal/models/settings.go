package models

import (
	"time"
)

// StoreSettingsID is the only row the settings table ever holds.
const StoreSettingsID uint = 1

type StoreSettings struct {
	ID                    uint      `json:"id" gorm:"primaryKey"`
	StoreName             string    `json:"nome_loja" gorm:"column:nome_loja"`
	LogoURL               string    `json:"logo_url" gorm:"column:logo_url"`
	OpeningTime           string    `json:"horario_abertura" gorm:"column:horario_abertura"`
	ClosingTime           string    `json:"horario_fechamento" gorm:"column:horario_fechamento"`
	StorePhone            string    `json:"telefone_loja" gorm:"column:telefone_loja"`
	MessagingEnabled      bool      `json:"integracao_whatsapp" gorm:"column:integracao_whatsapp;default:false"`
	PaymentGatewayEnabled bool      `json:"integracao_gateway_pagamento" gorm:"column:integracao_gateway_pagamento;default:false"`
	LastUpdated           time.Time `json:"ultima_atualizacao" gorm:"column:ultima_atualizacao"`
}

func (StoreSettings) TableName() string {
	return "configuracoes_loja"
}
