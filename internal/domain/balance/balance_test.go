package balance_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/balance"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func openOperation(qty, price string) *entity.Operation {
	now := time.Now()
	return &entity.Operation{
		ID:             "op-1",
		Number:         "OP-20260830-A1B2C3",
		Status:         entity.OperationStatusOpen,
		AgreedQuantity: dec(qty),
		PricePerUnit:   dec(price),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func money(typ, amount string) *entity.MoneyMovement {
	return &entity.MoneyMovement{Type: typ, Amount: dec(amount), Method: entity.PaymentMethodCash}
}

func product(typ, net string) *entity.ProductMovement {
	return &entity.ProductMovement{Type: typ, NetWeight: dec(net)}
}

// Ejemplo de referencia: qty=100, precio=10 (pactado 1000); anticipos de
// 200 y 150; entregas de 40 y 20.
func TestCompute_EjemploReferencia(t *testing.T) {
	op := openOperation("100", "10")
	b := balance.Compute(op,
		[]*entity.MoneyMovement{money(entity.MoneyTypeAdvance, "200"), money(entity.MoneyTypeAdvance, "150")},
		[]*entity.ProductMovement{product(entity.ProductTypeDelivery, "40"), product(entity.ProductTypeDelivery, "20")},
	)

	assert.True(t, b.TotalAdvances.Equal(dec("350")), "totalAdvances: %s", b.TotalAdvances)
	assert.True(t, b.TotalDelivered.Equal(dec("60")), "totalDelivered: %s", b.TotalDelivered)
	assert.True(t, b.MoneyBalance.Equal(dec("650")), "moneyBalance: %s", b.MoneyBalance)
	assert.True(t, b.ProductBalance.Equal(dec("40")), "productBalance: %s", b.ProductBalance)
	assert.True(t, b.MoneyProgress.Equal(dec("35")), "moneyProgress: %s", b.MoneyProgress)
	assert.True(t, b.ProductProgress.Equal(dec("60")), "productProgress: %s", b.ProductProgress)
}

// Sin monto pactado el porcentaje de dinero es cero, nunca división por cero.
func TestCompute_SinMontoPactado(t *testing.T) {
	op := openOperation("0", "0")
	b := balance.Compute(op, []*entity.MoneyMovement{money(entity.MoneyTypeAdvance, "500")}, nil)

	assert.True(t, b.MoneyProgress.IsZero())
	assert.True(t, b.ProductProgress.IsZero())
	assert.True(t, b.TotalAdvances.Equal(dec("500")))
	assert.True(t, b.MoneyBalance.Equal(dec("-500")))
}

// TotalAmount explícito prima sobre cantidad × precio.
func TestCompute_TotalExplicitoPrima(t *testing.T) {
	op := openOperation("100", "10")
	op.TotalAmount = dec("2000")
	b := balance.Compute(op, []*entity.MoneyMovement{money(entity.MoneyTypePayment, "500")}, nil)

	assert.True(t, b.MoneyBalance.Equal(dec("1500")))
	assert.True(t, b.MoneyProgress.Equal(dec("25")))
}

// Tabla de signos de dinero: DISCOUNT suma, ADJUSTMENT resta.
func TestCompute_TablaSignosDinero(t *testing.T) {
	op := openOperation("100", "10")
	b := balance.Compute(op, []*entity.MoneyMovement{
		money(entity.MoneyTypePayment, "300"),
		money(entity.MoneyTypeDiscount, "100"),
		money(entity.MoneyTypeAdjustment, "50"),
	}, nil)

	// 300 + 100 − 50 = 350
	assert.True(t, b.TotalAdvances.Equal(dec("350")))
	assert.True(t, b.MoneyBalance.Equal(dec("650")))
}

// Tabla de signos de producto: LOSS suma a lo entregado, ADJUSTMENT resta.
func TestCompute_TablaSignosProducto(t *testing.T) {
	op := openOperation("100", "10")
	b := balance.Compute(op, nil, []*entity.ProductMovement{
		product(entity.ProductTypeDelivery, "50"),
		product(entity.ProductTypeLoss, "10"),
		product(entity.ProductTypeAdjustment, "5"),
	})

	// 50 + 10 − 5 = 55
	assert.True(t, b.TotalDelivered.Equal(dec("55")))
	assert.True(t, b.ProductBalance.Equal(dec("45")))
}

// Redondeo half-up a 2 decimales sobre el porcentaje.
func TestCompute_RedondeoPorcentaje(t *testing.T) {
	op := openOperation("3", "1") // pactado = 3
	b := balance.Compute(op, []*entity.MoneyMovement{money(entity.MoneyTypePayment, "1")}, nil)

	// 1/3 × 100 = 33.333... → 33.33
	assert.True(t, b.MoneyProgress.Equal(dec("33.33")), "moneyProgress: %s", b.MoneyProgress)

	op2 := openOperation("800", "1")
	b2 := balance.Compute(op2, []*entity.MoneyMovement{money(entity.MoneyTypePayment, "1")}, nil)
	// 1/800 × 100 = 0.125 → 0.13 (half-up)
	assert.True(t, b2.MoneyProgress.Equal(dec("0.13")), "moneyProgress: %s", b2.MoneyProgress)
}

// Pureza: dos invocaciones con la misma entrada dan el mismo resultado
// y no mutan la operación.
func TestCompute_EsPura(t *testing.T) {
	op := openOperation("100", "10")
	movs := []*entity.MoneyMovement{money(entity.MoneyTypeAdvance, "200")}
	prods := []*entity.ProductMovement{product(entity.ProductTypeDelivery, "40")}

	b1 := balance.Compute(op, movs, prods)
	b2 := balance.Compute(op, movs, prods)

	assert.True(t, b1.MoneyBalance.Equal(b2.MoneyBalance))
	assert.True(t, b1.ProductBalance.Equal(b2.ProductBalance))
	assert.True(t, b1.MoneyProgress.Equal(b2.MoneyProgress))
	assert.True(t, op.AgreedQuantity.Equal(dec("100")))
}

// El orden de los movimientos no altera el agregado.
func TestCompute_OrdenIrrelevante(t *testing.T) {
	op := openOperation("100", "10")
	a := []*entity.MoneyMovement{
		money(entity.MoneyTypeAdvance, "200"),
		money(entity.MoneyTypeAdjustment, "50"),
		money(entity.MoneyTypeDiscount, "25"),
	}
	b := []*entity.MoneyMovement{a[2], a[0], a[1]}

	assert.True(t, balance.Compute(op, a, nil).TotalAdvances.Equal(balance.Compute(op, b, nil).TotalAdvances))
}
