package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/balance"
)

// CreateOperationRequest alta de una operación de compra.
type CreateOperationRequest struct {
	ProviderID     string          `json:"providerId" validate:"required,uuid"`
	ProductID      string          `json:"productId" validate:"required,uuid"`
	Description    string          `json:"description"`
	PricePerUnit   decimal.Decimal `json:"pricePerUnit"`
	AgreedQuantity decimal.Decimal `json:"agreedQuantity"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
}

// UpdateOperationRequest campos mutables mientras la operación está OPEN.
type UpdateOperationRequest struct {
	Description    *string          `json:"description"`
	PricePerUnit   *decimal.Decimal `json:"pricePerUnit"`
	AgreedQuantity *decimal.Decimal `json:"agreedQuantity"`
	TotalAmount    *decimal.Decimal `json:"totalAmount"`
}

// CreateMoneyMovementRequest alta de un movimiento de dinero.
type CreateMoneyMovementRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type" validate:"required"`
	Method      string          `json:"method" validate:"required"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}

// CreateProductMovementRequest alta de un movimiento de producto.
// Si llegan bruto y tara, el neto se deriva como bruto − tara.
type CreateProductMovementRequest struct {
	NetWeight   decimal.Decimal  `json:"netWeight"`
	GrossWeight *decimal.Decimal `json:"grossWeight"`
	Tare        *decimal.Decimal `json:"tare"`
	Type        string           `json:"type" validate:"required"`
	Description string           `json:"description"`
	Date        time.Time        `json:"date"`
}

// OperationResponse operación expuesta al cliente.
type OperationResponse struct {
	ID             string          `json:"id"`
	Number         string          `json:"number"`
	Status         string          `json:"status"`
	Description    string          `json:"description,omitempty"`
	PricePerUnit   decimal.Decimal `json:"pricePerUnit"`
	AgreedQuantity decimal.Decimal `json:"agreedQuantity"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	ProviderID     string          `json:"providerId"`
	ProductID      string          `json:"productId"`
	OrganizationID string          `json:"organizationId,omitempty"`
	ClosedAt       *time.Time      `json:"closedAt,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// MoneyMovementResponse movimiento de dinero expuesto al cliente.
type MoneyMovementResponse struct {
	ID          string          `json:"id"`
	OperationID string          `json:"operationId"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Method      string          `json:"method"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ProductMovementResponse movimiento de producto expuesto al cliente.
type ProductMovementResponse struct {
	ID          string           `json:"id"`
	OperationID string           `json:"operationId"`
	NetWeight   decimal.Decimal  `json:"netWeight"`
	GrossWeight *decimal.Decimal `json:"grossWeight,omitempty"`
	Tare        *decimal.Decimal `json:"tare,omitempty"`
	Type        string           `json:"type"`
	Description string           `json:"description,omitempty"`
	Date        time.Time        `json:"date"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// OperationDetailResponse detalle: operación + movimientos + balance derivado.
type OperationDetailResponse struct {
	Operation        OperationResponse         `json:"operation"`
	MoneyMovements   []MoneyMovementResponse   `json:"moneyMovements"`
	ProductMovements []ProductMovementResponse `json:"productMovements"`
	Balance          balance.Balance           `json:"balance"`
}

// OperationListResponse listado paginado.
type OperationListResponse struct {
	Items []OperationResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
