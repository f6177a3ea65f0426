package models

// Transaction is the flattened finance view of one order: value, payment
// method, status and the creation date truncated to the calendar day.
type Transaction struct {
	ID      uint        `json:"id"`
	Value   float64     `json:"valor"`
	Payment string      `json:"pagamento"`
	Status  OrderStatus `json:"status"`
	Date    string      `json:"data"` // YYYY-MM-DD
}

// TransactionSummary aggregates the currently filtered transaction set.
type TransactionSummary struct {
	TotalSales    float64 `json:"total_vendas"`
	OrderCount    int     `json:"quantidade_pedidos"`
	AverageTicket float64 `json:"ticket_medio"`
}

// SessionUser is the fixed mock identity attached to an authenticated
// session. It is never persisted to the database.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
