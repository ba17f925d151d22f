package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale venta a un cliente, con pagos parciales en SalePayment.
type Sale struct {
	ID             string
	UserID         string
	OrganizationID string
	ClientID       string
	ProductID      string
	Quantity       decimal.Decimal
	UnitPrice      decimal.Decimal
	Total          decimal.Decimal
	Description    string
	Date           time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SalePayment abono parcial contra una venta. Inmutable.
type SalePayment struct {
	ID        string
	SaleID    string
	Amount    decimal.Decimal // > 0
	Method    string          // CASH | TRANSFER
	Date      time.Time
	CreatedAt time.Time
}

// Expense gasto del negocio o personal.
type Expense struct {
	ID             string
	UserID         string
	OrganizationID string
	Category       string
	Amount         decimal.Decimal
	Description    string
	Date           time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Income ingreso no ligado a una venta (otros ingresos).
type Income struct {
	ID             string
	UserID         string
	OrganizationID string
	Category       string
	Amount         decimal.Decimal
	Description    string
	Date           time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
