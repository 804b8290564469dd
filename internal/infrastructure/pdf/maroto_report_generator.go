// Package pdf implementa la exportación de reportes a PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del reporte  │  Tipo + Rango de fechas      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN DE VENTAS (solo reportes de ventas)                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DATOS: pares clave/valor del payload del reporte           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: fecha de generación                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
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

	"github.com/stockpilot/stockpilot-api/internal/application/dto"
	"github.com/stockpilot/stockpilot-api/internal/application/usecase"
	"github.com/stockpilot/stockpilot-api/internal/domain/entity"
)

var _ usecase.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 16, Green: 96, Blue: 80}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator implementa usecase.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReportPDF genera el PDF del reporte y devuelve sus bytes. Summary es
// nil salvo para reportes de ventas.
func (g *MarotoReportGenerator) GenerateReportPDF(
	_ context.Context,
	report *entity.Report,
	currency string,
	summary *dto.SalesSummaryResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if summary != nil {
		m.AddRows(summaryHeaderRow())
		m.AddRows(summaryRows(summary, currency)...)
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	}

	dataRows, err := payloadRows(report.Data)
	if err != nil {
		return nil, err
	}
	if len(dataRows) > 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("DATOS DEL REPORTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
		)))
		m.AddRows(dataRows...)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del reporte (izq) y tipo + rango (der).
func headerRow(report *entity.Report) core.Row {
	rango := "—"
	if report.DateRange.Start != "" || report.DateRange.End != "" {
		rango = nonEmpty(report.DateRange.Start, "…") + " a " + nonEmpty(report.DateRange.End, "…")
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(report.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(report.Description, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE "+string(report.Type), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Rango: "+rango, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// summaryHeaderRow: título del bloque de resumen de ventas.
func summaryHeaderRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("RESUMEN DE VENTAS", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
	))
}

// summaryRows: totales agregados del rango del reporte.
func summaryRows(summary *dto.SalesSummaryResponse, currency string) []core.Row {
	entry := func(label, value string) core.Row {
		return row.New(6).Add(
			col.New(6).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 1,
			})),
			col.New(6).Add(text.New(value, props.Text{
				Size: 9, Align: align.Left, Left: 2, Top: 1,
			})),
		)
	}
	return []core.Row{
		entry("Ventas totales:", summary.TotalSales.StringFixed(2)+" "+currency),
		entry("Impuestos:", summary.TotalTax.StringFixed(2)+" "+currency),
		entry("Descuentos:", summary.TotalDiscount.StringFixed(2)+" "+currency),
		entry("Número de ventas:", fmt.Sprintf("%d", summary.NumberOfSales)),
	}
}

// payloadRows: pares clave/valor del nivel superior del payload del reporte.
// Un payload vacío o que no sea un objeto JSON produce cero filas.
func payloadRows(data json.RawMessage) ([]core.Row, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, nil
	}
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]core.Row, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, row.New(6).Add(
			col.New(4).Add(text.New(k, props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1, Left: 2,
			})),
			col.New(8).Add(text.New(fmt.Sprintf("%v", payload[k]), props.Text{
				Size: 8, Top: 1, Color: colorGray,
			})),
		))
	}
	return rows, nil
}

// footerRow: fecha de generación.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("Generado el "+time.Now().UTC().Format("02/01/2006 15:04")+" UTC", props.Text{
			Size: 6.5, Color: colorGray, Top: 2,
		}),
	))
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
