// Package pdf implementa la generación del estado de cuenta de una
// operación con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: N° Operación + Estado  │  Proveedor + Producto     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: movimientos de dinero (fecha, tipo, método, monto)  │
//	│  TABLA: movimientos de producto (fecha, tipo, peso neto)    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: abonado / entregado / saldos / % de avance        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/application/operation"
	"github.com/PabloGuzmanGIT/VraenApp-Backend/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 16, Green: 84, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ operation.StatementGenerator = (*MarotoStatementGenerator)(nil)

// MarotoStatementGenerator implementa operation.StatementGenerator usando Maroto v2.
type MarotoStatementGenerator struct{}

// NewMarotoStatementGenerator construye el generador.
func NewMarotoStatementGenerator() *MarotoStatementGenerator { return &MarotoStatementGenerator{} }

// GenerateStatement genera el PDF del estado de cuenta y devuelve sus bytes.
func (g *MarotoStatementGenerator) GenerateStatement(_ context.Context, data operation.StatementData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de cuenta "+data.Operation.Number, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitle("MOVIMIENTOS DE DINERO"))
	m.AddRows(moneyHeaderRow())
	for _, r := range moneyRows(data.MoneyMovements) {
		m.AddRows(r)
	}

	m.AddRows(sectionTitle("MOVIMIENTOS DE PRODUCTO"))
	m.AddRows(productHeaderRow())
	for _, r := range productRows(data.ProductMovements) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: número + estado (izq), proveedor + producto (der).
func headerRow(data operation.StatementData) core.Row {
	op := data.Operation
	return row.New(18).Add(
		col.New(7).Add(
			text.New("ESTADO DE CUENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(op.Number, props.Text{
				Style: fontstyle.Bold, Size: 13, Top: 5,
			}),
			text.New("Estado: "+op.Status+"   |   Creada: "+op.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Top: 13, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Proveedor: "+nonEmpty(data.ProviderName, "—"), props.Text{
				Size: 9, Align: align.Right, Top: 3,
			}),
			text.New("Producto: "+nonEmpty(data.ProductName, "—"), props.Text{
				Size: 9, Align: align.Right, Top: 9,
			}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

func moneyHeaderRow() core.Row {
	return row.New(6).Add(
		tableHeader("Fecha", 2, align.Left),
		tableHeader("Tipo", 3, align.Left),
		tableHeader("Método", 2, align.Left),
		tableHeader("Descripción", 3, align.Left),
		tableHeader("Monto", 2, align.Right),
	)
}

func moneyRows(movs []*entity.MoneyMovement) []core.Row {
	result := make([]core.Row, 0, len(movs))
	for _, mv := range movs {
		result = append(result, row.New(6).Add(
			tableCell(mv.Date.Format("02/01/2006"), 2, align.Left),
			tableCell(mv.Type, 3, align.Left),
			tableCell(mv.Method, 2, align.Left),
			tableCell(nonEmpty(mv.Description, "—"), 3, align.Left),
			tableCell("$"+mv.Amount.StringFixed(2), 2, align.Right),
		))
	}
	return result
}

func productHeaderRow() core.Row {
	return row.New(6).Add(
		tableHeader("Fecha", 2, align.Left),
		tableHeader("Tipo", 3, align.Left),
		tableHeader("Descripción", 4, align.Left),
		tableHeader("Peso neto", 3, align.Right),
	)
}

func productRows(movs []*entity.ProductMovement) []core.Row {
	result := make([]core.Row, 0, len(movs))
	for _, mv := range movs {
		result = append(result, row.New(6).Add(
			tableCell(mv.Date.Format("02/01/2006"), 2, align.Left),
			tableCell(mv.Type, 3, align.Left),
			tableCell(nonEmpty(mv.Description, "—"), 4, align.Left),
			tableCell(mv.NetWeight.StringFixed(2), 3, align.Right),
		))
	}
	return result
}

// summaryRow: bloque de saldos y porcentajes de avance.
func summaryRow(data operation.StatementData) core.Row {
	b := data.Balance
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(40).Add(
		col.New(4),
		col.New(4).Add(
			label("Total abonado:"),
			label("Total entregado:"),
			label("Saldo de dinero:"),
			label("Saldo de producto:"),
			label("Avance dinero:"),
			label("Avance producto:"),
		),
		col.New(4).Add(
			value("$"+b.TotalAdvances.StringFixed(2)),
			value(b.TotalDelivered.StringFixed(2)),
			value("$"+b.MoneyBalance.StringFixed(2)),
			value(b.ProductBalance.StringFixed(2)),
			value(b.MoneyProgress.StringFixed(2)+"%"),
			value(b.ProductProgress.StringFixed(2)+"%"),
		),
	)
}

func tableHeader(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1,
	}))
}

func tableCell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a, Top: 1}))
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
