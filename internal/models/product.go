package models

import (
	"time"
)

type Group struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"nome" gorm:"column:nome;not null"`
	CreatedAt time.Time `json:"criado_em" gorm:"column:criado_em"`
}

func (Group) TableName() string {
	return "grupos"
}

type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"nome" gorm:"column:nome;not null"`
	Description string    `json:"descricao" gorm:"column:descricao"`
	Price       float64   `json:"preco" gorm:"column:preco;not null"`
	ImageURL    string    `json:"imagem_url" gorm:"column:imagem_url"`
	Available   bool      `json:"disponivel" gorm:"column:disponivel;default:true"`
	GroupID     *uint     `json:"grupo_id" gorm:"column:grupo_id;index"`
	Group       *Group    `json:"grupo,omitempty" gorm:"foreignKey:GroupID"`
	CreatedAt   time.Time `json:"criado_em" gorm:"column:criado_em"`
	UpdatedAt   time.Time `json:"atualizado_em" gorm:"column:atualizado_em"`
}

func (Product) TableName() string {
	return "produtos"
}

// GroupName returns the linked group's name, or an empty string for
// unlinked products.
func (p *Product) GroupName() string {
	if p.Group == nil {
		return ""
	}
	return p.Group.Name
}
