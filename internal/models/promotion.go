package models

import (
	"time"
)

type Promotion struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"nome" gorm:"column:nome;not null"`
	Description string          `json:"descricao" gorm:"column:descricao"`
	Validity    string          `json:"validade" gorm:"column:validade"`
	FixedTotal  *float64        `json:"valor_total" gorm:"column:valor_total"`
	Items       []PromotionItem `json:"itens" gorm:"foreignKey:PromotionID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time       `json:"criado_em" gorm:"column:criado_em"`
	UpdatedAt   time.Time       `json:"atualizado_em" gorm:"column:atualizado_em"`
}

func (Promotion) TableName() string {
	return "promocoes"
}

// EffectivePrice is the fixed total when one is set, otherwise the sum of
// adjusted item prices times quantities.
func (p *Promotion) EffectivePrice() float64 {
	if p.FixedTotal != nil {
		return *p.FixedTotal
	}
	total := 0.0
	for _, item := range p.Items {
		total += item.AdjustedPrice * float64(item.Quantity)
	}
	return total
}

type PromotionItem struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	PromotionID   uint    `json:"promocao_id" gorm:"column:promocao_id;index"`
	ProductName   string  `json:"produto_nome" gorm:"column:produto_nome;not null"`
	AdjustedPrice float64 `json:"preco_ajustado" gorm:"column:preco_ajustado"`
	Quantity      int     `json:"quantidade" gorm:"column:quantidade;not null"`
}

func (PromotionItem) TableName() string {
	return "promocao_itens"
}
