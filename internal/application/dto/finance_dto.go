package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEntryRequest alta de gasto o ingreso (misma forma).
type CreateEntryRequest struct {
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}

// UpdateEntryRequest campos editables de gasto o ingreso.
type UpdateEntryRequest struct {
	Category    *string          `json:"category"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
	Date        *time.Time       `json:"date"`
}

// EntryResponse gasto o ingreso expuesto al cliente.
type EntryResponse struct {
	ID             string          `json:"id"`
	Category       string          `json:"category,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description,omitempty"`
	Date           time.Time       `json:"date"`
	OrganizationID string          `json:"organizationId,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// EntryListResponse listado paginado de gastos o ingresos.
type EntryListResponse struct {
	Items []EntryResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// CreateSaleRequest alta de una venta.
type CreateSaleRequest struct {
	ClientID    string          `json:"clientId" validate:"required,uuid"`
	ProductID   string          `json:"productId" validate:"required,uuid"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}

// CreateSalePaymentRequest abono parcial contra una venta.
type CreateSalePaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method" validate:"required"`
	Date   time.Time       `json:"date"`
}

// SalePaymentResponse abono expuesto al cliente.
type SalePaymentResponse struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"createdAt"`
}

// SaleResponse venta con sus abonos y saldo pendiente.
type SaleResponse struct {
	ID          string                `json:"id"`
	ClientID    string                `json:"clientId"`
	ProductID   string                `json:"productId"`
	Quantity    decimal.Decimal       `json:"quantity"`
	UnitPrice   decimal.Decimal       `json:"unitPrice"`
	Total       decimal.Decimal       `json:"total"`
	Paid        decimal.Decimal       `json:"paid"`
	Outstanding decimal.Decimal       `json:"outstanding"`
	Description string                `json:"description,omitempty"`
	Date        time.Time             `json:"date"`
	Payments    []SalePaymentResponse `json:"payments,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

// SaleListResponse listado paginado de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
