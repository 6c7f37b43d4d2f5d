package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/hybridcredit/credit-risk-frontend/data"
	"github.com/hybridcredit/credit-risk-frontend/projector"
)

const divider = "============================================================"

// Generator serializes projected results into downloadable artifacts.
// Generation itself is pure; WriteArtifact persists a copy when a FileStore
// is wired.
type Generator struct {
	FileStore FileStore
}

func recommendation(c data.RiskClass) string {
	switch c {
	case data.RiskLow:
		return "✅ APROBACIÓN RECOMENDADA - Cliente de bajo riesgo"
	case data.RiskMedium:
		return "⚠️ REQUIERE ANÁLISIS ADICIONAL - Considerar garantías o condiciones especiales"
	case data.RiskHigh:
		return "❌ RECHAZO RECOMENDADO - Cliente de alto riesgo"
	default:
		return "SIN CLASIFICAR - Requiere evaluación manual"
	}
}

// Text renders the fixed-layout plain-text risk report.
func (g *Generator) Text(r *data.PredictionResult, now time.Time) (string, error) {
	if r == nil {
		return "", &data.PreconditionError{Action: "generating a report"}
	}

	var b strings.Builder
	fmt.Fprintln(&b, divider)
	fmt.Fprintln(&b, "REPORTE DE EVALUACIÓN DE RIESGO CREDITICIO")
	fmt.Fprintln(&b, divider)
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "Fecha: %s\n\n", now.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&b, "CLASIFICACIÓN: %s\n", r.Class)
	fmt.Fprintf(&b, "Confianza: %.1f%%\n", r.Confidence)
	fmt.Fprintf(&b, "Score Difuso: %.2f/100\n", r.FuzzyScore)
	fmt.Fprintf(&b, "Interpretación Difusa: %s\n\n", r.FuzzyInterpretation)

	fmt.Fprintln(&b, "PROBABILIDADES:")
	for _, class := range data.AllRiskClasses {
		fmt.Fprintf(&b, "  %s: %.1f%%\n", class, r.Probabilities[class])
	}

	if r.Input != nil {
		fmt.Fprintln(&b, "\nDATOS DEL CLIENTE:")
		fmt.Fprintf(&b, "  Monto solicitado: %.2f\n", r.Input.Amount)
		fmt.Fprintf(&b, "  Ingreso mensual: %.2f\n", r.Input.Income)
		fmt.Fprintf(&b, "  Score crediticio: %d\n", r.Input.OriginationScore)
		fmt.Fprintf(&b, "  Antigüedad bancaria: %d meses\n", r.Input.BankingSeniority)
	}

	fmt.Fprintln(&b, "\nRECOMENDACIÓN:")
	fmt.Fprintf(&b, "  %s\n", recommendation(r.Class))

	fmt.Fprintf(&b, "\n%s\n", divider)
	return b.String(), nil
}

// RegionalCSV encodes the joined regional dataset with a header row and one
// row per region. Percentages and temperatures carry one decimal place.
func (g *Generator) RegionalCSV(rows []projector.RegionRow) (string, error) {
	if len(rows) == 0 {
		return "", &data.EmptyDatasetError{Dataset: "regional"}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Departamento", "COVID Intensidad (%)", "Casos Totales", "Temp Anomalía (°C)", "Temp Actual (°C)", "Impacto"}); err != nil {
		return "", errors.Wrap(err, "couldn't write csv header")
	}
	for _, row := range rows {
		record := []string{
			row.Region,
			strconv.FormatFloat(row.CovidIntensity*100, 'f', 1, 64),
			strconv.Itoa(row.TotalCases),
			strconv.FormatFloat(row.TempAnomaly, 'f', 1, 64),
			strconv.FormatFloat(row.TempCurrent, 'f', 1, 64),
			row.Impact,
		}
		if err := w.Write(record); err != nil {
			return "", errors.Wrap(err, "couldn't write csv row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", errors.Wrap(err, "couldn't flush csv")
	}
	return buf.String(), nil
}

// WriteArtifact keeps a copy of a generated artifact. A nil FileStore makes
// it a no-op so generation never depends on local storage.
func (g *Generator) WriteArtifact(ctx context.Context, name, content string) error {
	if g.FileStore == nil {
		return nil
	}
	return g.FileStore.Save(ctx, name, []byte(content))
}
