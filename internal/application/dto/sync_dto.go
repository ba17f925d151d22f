package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Registros de sincronización: el cliente genera los UUID localmente y
// los manda tal cual; el servidor los adopta al crear.

// SyncMoneyMovement movimiento de dinero anidado en una operación.
type SyncMoneyMovement struct {
	ID          string          `json:"id" validate:"required,uuid"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type" validate:"required"`
	Method      string          `json:"method" validate:"required"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// SyncProductMovement movimiento de producto anidado en una operación.
type SyncProductMovement struct {
	ID          string           `json:"id" validate:"required,uuid"`
	NetWeight   decimal.Decimal  `json:"netWeight"`
	GrossWeight *decimal.Decimal `json:"grossWeight"`
	Tare        *decimal.Decimal `json:"tare"`
	Type        string           `json:"type" validate:"required"`
	Description string           `json:"description"`
	Date        time.Time        `json:"date"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// SyncOperation operación enviada en un push, con movimientos anidados.
type SyncOperation struct {
	ID               string                `json:"id" validate:"required,uuid"`
	Number           string                `json:"number" validate:"required"`
	Status           string                `json:"status" validate:"required,oneof=OPEN CLOSED"`
	Description      string                `json:"description"`
	PricePerUnit     decimal.Decimal       `json:"pricePerUnit"`
	AgreedQuantity   decimal.Decimal       `json:"agreedQuantity"`
	TotalAmount      decimal.Decimal       `json:"totalAmount"`
	ProviderID       string                `json:"providerId" validate:"required,uuid"`
	ProductID        string                `json:"productId" validate:"required,uuid"`
	ClosedAt         *time.Time            `json:"closedAt"`
	CreatedAt        time.Time             `json:"createdAt"`
	UpdatedAt        time.Time             `json:"updatedAt"`
	MoneyMovements   []SyncMoneyMovement   `json:"moneyMovements" validate:"dive"`
	ProductMovements []SyncProductMovement `json:"productMovements" validate:"dive"`
}

// SyncContact proveedor o cliente enviado en un push.
type SyncContact struct {
	ID        string    `json:"id" validate:"required,uuid"`
	Name      string    `json:"name" validate:"required"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SyncEntry gasto o ingreso enviado en un push.
type SyncEntry struct {
	ID          string          `json:"id" validate:"required,uuid"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// SyncPushRequest lote de cambios locales del cliente.
type SyncPushRequest struct {
	Operations []SyncOperation `json:"operations" validate:"dive"`
	Providers  []SyncContact   `json:"providers" validate:"dive"`
	Clients    []SyncContact   `json:"clients" validate:"dive"`
	Expenses   []SyncEntry     `json:"expenses" validate:"dive"`
	Incomes    []SyncEntry     `json:"incomes" validate:"dive"`
}

// RecordError error aislado de un registro dentro del lote.
type RecordError struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// CollectionResult resultado por colección dentro de un push.
type CollectionResult struct {
	Created int           `json:"created"`
	Updated int           `json:"updated"`
	Errors  []RecordError `json:"errors,omitempty"`
}

// SyncPushResponse resumen del push por colección. Los movimientos
// anidados cuentan dentro de Operations: crear una operación con un
// movimiento reporta created=2 en esa colección.
type SyncPushResponse struct {
	Operations CollectionResult `json:"operations"`
	Providers  CollectionResult `json:"providers"`
	Clients    CollectionResult `json:"clients"`
	Expenses   CollectionResult `json:"expenses"`
	Incomes    CollectionResult `json:"incomes"`
	SyncedAt   time.Time        `json:"syncedAt"`
}

// SyncPullData cambios del servidor desde el último checkpoint.
// Los productos viajan completos por ser datos de referencia.
type SyncPullData struct {
	Operations []SyncOperation `json:"operations"`
	Providers  []SyncContact   `json:"providers"`
	Clients    []SyncContact   `json:"clients"`
	Expenses   []SyncEntry     `json:"expenses"`
	Incomes    []SyncEntry     `json:"incomes"`
	Products   []SyncProduct   `json:"products"`
}

// SyncProduct producto de catálogo enviado en un pull.
type SyncProduct struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Unit        string    `json:"unit"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SyncPullResponse datos + checkpoint para el próximo pull.
// SyncTimestamp se captura antes de leer, nunca después.
type SyncPullResponse struct {
	Data          SyncPullData `json:"data"`
	SyncTimestamp time.Time    `json:"syncTimestamp"`
}

// SyncLogEntry fila del historial de sincronizaciones.
type SyncLogEntry struct {
	ID           string    `json:"id"`
	Direction    string    `json:"direction"`
	RecordsCount int       `json:"recordsCount"`
	Status       string    `json:"status"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SyncStatusResponse último éxito + historial reciente.
type SyncStatusResponse struct {
	LastSync *time.Time     `json:"lastSync"`
	History  []SyncLogEntry `json:"history"`
}
