// Package pdf genera el reporte de inventario de la dulcería en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda  │  Fecha de corte              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Dulce | Categoría | Precio | Cant. | Estado          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Referencias / Unidades / Valor / Agotados          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Dulceria-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 156, Green: 39, Blue: 116}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWarn    = &props.Color{Red: 200, Green: 110, Blue: 0}
	colorDanger  = &props.Color{Red: 190, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator genera el reporte de inventario usando Maroto v2.
type MarotoReportGenerator struct {
	shopName string
	now      func() time.Time
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator(shopName string) *MarotoReportGenerator {
	return &MarotoReportGenerator{shopName: shopName, now: time.Now}
}

// Summary totales del reporte.
type Summary struct {
	Items      int
	Units      int
	Value      decimal.Decimal
	LowStock   int
	OutOfStock int
}

// Summarize calcula los totales del inventario.
func Summarize(sweets []*entity.Sweet) Summary {
	s := Summary{Value: decimal.Zero}
	for _, sw := range sweets {
		s.Items++
		s.Units += sw.Quantity
		s.Value = s.Value.Add(sw.Price.Mul(decimal.NewFromInt(int64(sw.Quantity))))
		switch {
		case sw.OutOfStock():
			s.OutOfStock++
		case sw.LowStock():
			s.LowStock++
		}
	}
	return s
}

// GenerateInventoryReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryReport(ctx context.Context, sweets []*entity.Sweet) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de inventario", true).
		WithAuthor(g.shopName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.shopName, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(sweets)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(Summarize(sweets)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(shopName string, at time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(shopName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Corte: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Dulce", 4, align.Left),
		h("Categoría", 3, align.Left),
		h("Precio", 2, align.Right),
		h("Cant.", 1, align.Center),
		h("Estado", 2, align.Center),
	)
}

// tableRows: una fila por dulce, en el orden del catálogo.
func tableRows(sweets []*entity.Sweet) []core.Row {
	result := make([]core.Row, 0, len(sweets))
	for _, s := range sweets {
		label, color := stockStatus(s)
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(s.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(s.Category, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New("$"+s.Price.StringFixed(2), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(1).Add(text.New(strconv.Itoa(s.Quantity), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(2).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: color,
			})),
		))
	}
	return result
}

func totalsRow(s Summary) core.Row {
	label := func(v string) core.Component {
		return text.New(v, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(v string) core.Component {
		return text.New(v, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(26).Add(
		col.New(6),
		col.New(3).Add(
			label("Referencias:"),
			label("Unidades:"),
			label("Valor en stock:"),
			label("Poco stock / agotados:"),
		),
		col.New(3).Add(
			value(strconv.Itoa(s.Items)),
			value(strconv.Itoa(s.Units)),
			value("$"+s.Value.StringFixed(2)),
			value(fmt.Sprintf("%d / %d", s.LowStock, s.OutOfStock)),
		),
	)
}

func stockStatus(s *entity.Sweet) (string, *props.Color) {
	switch {
	case s.OutOfStock():
		return "AGOTADO", colorDanger
	case s.LowStock():
		return "POCO STOCK", colorWarn
	default:
		return "OK", colorGray
	}
}
