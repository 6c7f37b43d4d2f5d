package projector

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/hybridcredit/credit-risk-frontend/data"
)

// ratioUnavailable is the fixed display value for a debt/income ratio whose
// denominator is zero or absent.
const ratioUnavailable = "N/A"

type TierStyle struct {
	Tone string
	Icon string
}

var tierStyles = map[data.RiskClass]TierStyle{
	data.RiskLow:    {Tone: "green", Icon: "✅"},
	data.RiskMedium: {Tone: "yellow", Icon: "⚠️"},
	data.RiskHigh:   {Tone: "red", Icon: "❌"},
}

// StyleFor maps a risk tier to its presentation. An unrecognized tier takes
// the MEDIO_RIESGO presentation.
func StyleFor(c data.RiskClass) TierStyle {
	if s, ok := tierStyles[c]; ok {
		return s
	}
	return tierStyles[data.RiskMedium]
}

type ProbabilityBar struct {
	Class   data.RiskClass
	Label   string
	Percent float64
	Tone    string
}

// ResultView is the display-ready projection of one prediction, shared by the
// result panel, the report view, and the charting collaborator.
type ResultView struct {
	Class               data.RiskClass
	Label               string
	Tone                string
	Icon                string
	Confidence          float64
	FuzzyScore          float64
	FuzzyInterpretation string
	AmountDisplay       string
	IncomeDisplay       string
	DebtIncomeRatio     string
	Probabilities       []ProbabilityBar
}

var displayPrinter = message.NewPrinter(language.MustParse("es-PE"))

// FormatCurrency renders an amount with the locale's digit grouping, two
// decimal places, and the sol currency symbol.
func FormatCurrency(v float64) string {
	return displayPrinter.Sprintf("S/ %v", number.Decimal(v, number.Scale(2)))
}

// DebtIncomeRatio guards against a zero or negative denominator.
func DebtIncomeRatio(amount, income float64) (float64, error) {
	if income <= 0 {
		return 0, &data.DivisionGuardError{Denominator: income}
	}
	return amount / income, nil
}

// ProjectResult is a pure projection: identical results yield identical views.
func ProjectResult(r *data.PredictionResult) *ResultView {
	style := StyleFor(r.Class)
	view := &ResultView{
		Class:               r.Class,
		Label:               r.Class.Label(),
		Tone:                style.Tone,
		Icon:                style.Icon,
		Confidence:          r.Confidence,
		FuzzyScore:          r.FuzzyScore,
		FuzzyInterpretation: r.FuzzyInterpretation,
		AmountDisplay:       ratioUnavailable,
		IncomeDisplay:       ratioUnavailable,
		DebtIncomeRatio:     ratioUnavailable,
	}

	if r.Input != nil {
		view.AmountDisplay = FormatCurrency(r.Input.Amount)
		view.IncomeDisplay = FormatCurrency(r.Input.Income)
		if ratio, err := DebtIncomeRatio(r.Input.Amount, r.Input.Income); err == nil {
			view.DebtIncomeRatio = strconv.FormatFloat(ratio, 'f', 2, 64)
		}
	}

	for _, class := range data.AllRiskClasses {
		view.Probabilities = append(view.Probabilities, ProbabilityBar{
			Class:   class,
			Label:   class.Label(),
			Percent: r.Probabilities[class],
			Tone:    StyleFor(class).Tone,
		})
	}

	return view
}
