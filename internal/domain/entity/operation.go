package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una operación. OPEN→CLOSED es la única transición y es irreversible.
const (
	OperationStatusOpen   = "OPEN"
	OperationStatusClosed = "CLOSED"
)

// Operation es un contrato de compra con un proveedor para un producto.
// Acumula movimientos de dinero y de producto hasta que se cierra;
// CLOSED rechaza movimientos nuevos. Solo se borra en cascada junto
// con sus movimientos.
type Operation struct {
	ID             string
	Number         string // legible, único: OP-YYYYMMDD-<sufijo aleatorio>
	Status         string // OPEN | CLOSED
	Description    string
	PricePerUnit   decimal.Decimal
	AgreedQuantity decimal.Decimal // 0 = sin cantidad pactada
	TotalAmount    decimal.Decimal // 0 = derivar de AgreedQuantity×PricePerUnit
	UserID         string
	OrganizationID string // vacío = operación personal
	ProviderID     string
	ProductID      string
	ClosedAt       *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsOpen indica si la operación todavía acepta movimientos y ediciones.
func (o *Operation) IsOpen() bool {
	return o.Status == OperationStatusOpen
}

// TotalAgreedMoney devuelve el monto total pactado: TotalAmount explícito
// si existe, si no AgreedQuantity × PricePerUnit.
func (o *Operation) TotalAgreedMoney() decimal.Decimal {
	if o.TotalAmount.GreaterThan(decimal.Zero) {
		return o.TotalAmount
	}
	return o.AgreedQuantity.Mul(o.PricePerUnit)
}
