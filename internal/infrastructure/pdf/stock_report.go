// Package pdf genera el reporte imprimible del stock disponible.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte   │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | Componente | Cantidad | Máximo | Ocupación      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: componentes / unidades en stock                    │
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

	"github.com/jhoicas/componentes-api/internal/application/inventory"
	"github.com/jhoicas/componentes-api/internal/domain/entity"
)

var _ inventory.StackReportGenerator = (*StackReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// StackReportGenerator implementa inventory.StackReportGenerator usando Maroto v2.
type StackReportGenerator struct {
	title string
	now   func() time.Time
}

// NewStackReportGenerator construye el generador. title aparece en el encabezado y en
// los metadatos del documento.
func NewStackReportGenerator(title string) *StackReportGenerator {
	if title == "" {
		title = "Stock disponible"
	}
	return &StackReportGenerator{title: title, now: time.Now}
}

// GenerateStackReport genera el PDF y devuelve sus bytes.
func (g *StackReportGenerator) GenerateStackReport(ctx context.Context, items []entity.StackItem) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(g.headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(items) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin componentes en stock.", props.Text{Size: 9, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	for _, r := range tableDetailRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(items))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *StackReportGenerator) headerRow() core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(g.title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
		),
		col.New(4).Add(
			text.New("Generado: "+g.now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("ID", 1, align.Center),
		h("Componente", 5, align.Left),
		h("Cantidad", 2, align.Right),
		h("Máximo", 2, align.Right),
		h("Ocupación", 2, align.Right),
	)
}

// tableDetailRows: una fila por componente en stock.
func tableDetailRows(items []entity.StackItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(strconv.FormatInt(it.ComponentID, 10), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(it.ComponentName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(formatThousands(it.Quantity), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(formatThousands(it.MaxQuantity), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(occupancy(it), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func totalsRow(items []entity.StackItem) core.Row {
	units := 0
	for _, it := range items {
		units += it.Quantity
	}
	return row.New(10).Add(
		col.New(6),
		col.New(4).Add(text.New("Componentes / unidades:", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 2,
		})),
		col.New(2).Add(text.New(fmt.Sprintf("%d / %s", len(items), formatThousands(units)), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 1, Top: 2, Color: colorPrimary,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// occupancy porcentaje entero de Quantity sobre MaxQuantity.
func occupancy(it entity.StackItem) string {
	if it.MaxQuantity <= 0 {
		return "-"
	}
	return strconv.Itoa(it.Quantity*100/it.MaxQuantity) + "%"
}

// formatThousands inserta puntos de miles. Ej: 25000 → "25.000".
func formatThousands(n int) string {
	s := strconv.Itoa(n)
	neg := n < 0
	if neg {
		s = s[1:]
	}
	l := len(s)
	if l <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	buf := make([]byte, 0, l+l/3+1)
	if neg {
		buf = append(buf, '-')
	}
	for i, c := range []byte(s) {
		if i > 0 && (l-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
