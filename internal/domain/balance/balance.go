// Package balance implementa el motor de balance de una operación:
// agrega el historial de movimientos en saldos pendientes y porcentajes
// de avance. Es un servicio de dominio puro: sin efectos, determinista,
// y nunca falla (los opcionales ausentes valen cero).
//
// Tabla de signos (fijada aquí de una vez, ver DESIGN.md):
//
//	Dinero:   ADVANCE, PAYMENT, DISCOUNT  → suman a lo abonado
//	          ADJUSTMENT                  → resta (deuda adicional)
//	Producto: DELIVERY, LOSS              → suman a lo entregado
//	          ADJUSTMENT                  → resta (corrige sobre-registro)
package balance

import (
	"github.com/shopspring/decimal"

	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Balance saldos y avances de una operación en un instante dado.
type Balance struct {
	TotalAdvances   decimal.Decimal `json:"totalAdvances"`
	TotalDelivered  decimal.Decimal `json:"totalDelivered"`
	MoneyBalance    decimal.Decimal `json:"moneyBalance"`
	ProductBalance  decimal.Decimal `json:"productBalance"`
	MoneyProgress   decimal.Decimal `json:"moneyProgress"`
	ProductProgress decimal.Decimal `json:"productProgress"`
}

// Compute deriva el balance de una operación a partir de su historial
// completo de movimientos. El orden de los movimientos no afecta el
// resultado.
func Compute(op *entity.Operation, money []*entity.MoneyMovement, product []*entity.ProductMovement) Balance {
	totalIn := decimal.Zero
	for _, m := range money {
		switch m.Type {
		case entity.MoneyTypeAdvance, entity.MoneyTypePayment, entity.MoneyTypeDiscount:
			totalIn = totalIn.Add(m.Amount)
		case entity.MoneyTypeAdjustment:
			totalIn = totalIn.Sub(m.Amount)
		}
	}

	delivered := decimal.Zero
	for _, p := range product {
		switch p.Type {
		case entity.ProductTypeDelivery, entity.ProductTypeLoss:
			delivered = delivered.Add(p.NetWeight)
		case entity.ProductTypeAdjustment:
			delivered = delivered.Sub(p.NetWeight)
		}
	}

	agreedMoney := op.TotalAgreedMoney()
	agreedQty := op.AgreedQuantity

	return Balance{
		TotalAdvances:   totalIn,
		TotalDelivered:  delivered,
		MoneyBalance:    agreedMoney.Sub(totalIn),
		ProductBalance:  agreedQty.Sub(delivered),
		MoneyProgress:   progress(totalIn, agreedMoney),
		ProductProgress: progress(delivered, agreedQty),
	}
}

// progress devuelve round2(part/total × 100), o cero si total ≤ 0.
// El redondeo half-up se aplica sobre el porcentaje, no sobre las sumas.
func progress(part, total decimal.Decimal) decimal.Decimal {
	if total.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return part.Div(total).Mul(hundred).Round(2)
}
