package models

import (
	"time"
)

type OrderStatus string

const (
	OrderNew        OrderStatus = "Novo"
	OrderPreparing  OrderStatus = "Em preparo"
	OrderDelivering OrderStatus = "Em entrega"
	OrderDone       OrderStatus = "Finalizado"
)

var nextStatus = map[OrderStatus]OrderStatus{
	OrderNew:        OrderPreparing,
	OrderPreparing:  OrderDelivering,
	OrderDelivering: OrderDone,
	OrderDone:       OrderDone,
}

// Next returns the following status in the kanban progression. The terminal
// status maps to itself; statuses never move backward.
func (s OrderStatus) Next() OrderStatus {
	if next, ok := nextStatus[s]; ok {
		return next
	}
	return s
}

// Terminal reports whether the status is the final kanban stage. Finished
// orders are hidden from the active board.
func (s OrderStatus) Terminal() bool {
	return s == OrderDone
}

func (s OrderStatus) Valid() bool {
	_, ok := nextStatus[s]
	return ok
}

// OrderItem is one line of the order snapshot. The snapshot is denormalized
// at creation time and never re-reads current catalog prices.
type OrderItem struct {
	Kind      string  `json:"tipo"` // "produto" or "promocao"
	Name      string  `json:"nome"`
	UnitPrice float64 `json:"preco"`
	Quantity  int     `json:"quantidade"`
}

func (i OrderItem) Subtotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

type OrderItems []OrderItem

func (items OrderItems) Total() float64 {
	total := 0.0
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}

type Order struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	CustomerName    string      `json:"cliente_nome" gorm:"column:cliente_nome"`
	DeliveryAddress string      `json:"endereco_entrega" gorm:"column:endereco_entrega"`
	PaymentMethod   string      `json:"forma_pagamento" gorm:"column:forma_pagamento;not null"`
	Notes           string      `json:"observacoes" gorm:"column:observacoes"`
	Status          OrderStatus `json:"status" gorm:"default:'Novo'"`
	Total           float64     `json:"total" gorm:"not null"`
	Items           OrderItems  `json:"itens_pedido_json" gorm:"column:itens_pedido_json;type:jsonb;serializer:json"`
	CreatedAt       time.Time   `json:"criado_em" gorm:"column:criado_em"`
	UpdatedAt       time.Time   `json:"atualizado_em" gorm:"column:atualizado_em"`
}

func (Order) TableName() string {
	return "pedidos"
}

// OrderBoard is the status-partitioned view shown on the kanban page.
// Finished orders are not part of any column.
type OrderBoard struct {
	New        []Order `json:"novos"`
	Preparing  []Order `json:"em_preparo"`
	Delivering []Order `json:"em_entrega"`
}
