package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de dinero. El efecto sobre el balance lo define
// la tabla de signos del motor de balance: ADVANCE/PAYMENT/DISCOUNT
// reducen la deuda, ADJUSTMENT la aumenta.
const (
	MoneyTypeAdvance    = "ADVANCE"
	MoneyTypePayment    = "PAYMENT"
	MoneyTypeAdjustment = "ADJUSTMENT"
	MoneyTypeDiscount   = "DISCOUNT"
)

// Métodos de pago.
const (
	PaymentMethodCash     = "CASH"
	PaymentMethodTransfer = "TRANSFER"
)

// Tipos de movimiento de producto. DELIVERY y LOSS descuentan producto
// pendiente (la merma ya no se entregará); ADJUSTMENT corrige una
// entrega sobre-registrada.
const (
	ProductTypeDelivery   = "DELIVERY"
	ProductTypeAdjustment = "ADJUSTMENT"
	ProductTypeLoss       = "LOSS"
)

// MoneyMovement es un evento monetario contra una operación.
// Inmutable tras crearse; solo desaparece en el borrado en cascada
// de la operación.
type MoneyMovement struct {
	ID          string
	OperationID string
	Amount      decimal.Decimal // siempre > 0; el signo lo da Type
	Type        string          // ADVANCE | PAYMENT | ADJUSTMENT | DISCOUNT
	Method      string          // CASH | TRANSFER
	Description string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductMovement es una entrega o corrección física contra una operación.
// NetWeight es el valor autoritativo para el balance; si llegan bruto y
// tara, neto = bruto − tara. Inmutable tras crearse.
type ProductMovement struct {
	ID          string
	OperationID string
	NetWeight   decimal.Decimal // siempre > 0
	GrossWeight *decimal.Decimal
	Tare        *decimal.Decimal
	Type        string // DELIVERY | ADJUSTMENT | LOSS
	Description string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidMoneyType valida el tipo de movimiento de dinero.
func ValidMoneyType(t string) bool {
	switch t {
	case MoneyTypeAdvance, MoneyTypePayment, MoneyTypeAdjustment, MoneyTypeDiscount:
		return true
	}
	return false
}

// ValidPaymentMethod valida el método de pago.
func ValidPaymentMethod(m string) bool {
	return m == PaymentMethodCash || m == PaymentMethodTransfer
}

// ValidProductType valida el tipo de movimiento de producto.
func ValidProductType(t string) bool {
	switch t {
	case ProductTypeDelivery, ProductTypeAdjustment, ProductTypeLoss:
		return true
	}
	return false
}
