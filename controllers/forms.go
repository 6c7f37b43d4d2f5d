package controllers

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/hybridcredit/credit-risk-frontend/data"
)

// ParseInput coerces the submitted form into a typed PredictionInput. Only
// type coercion happens here; business validation belongs to the remote
// service. Field names match the API schema so the form round-trips
// unchanged.
func ParseInput(form url.Values) (*data.PredictionInput, error) {
	p := &inputParser{form: form}
	in := &data.PredictionInput{
		Amount:                p.float("monto"),
		TermMonths:            p.integer("PlazoReal"),
		EffectiveRate:         p.float("TasaEfectiva"),
		Age:                   p.integer("EdadDesembolsoNormalizada"),
		Income:                p.float("SalarioNormalizado"),
		Dependents:            p.integer("Dependientes"),
		EducationLevel:        p.integerDefault("NivelInstruccion", 4),
		MaritalStatus:         strings.TrimSpace(form.Get("EstadoCivil")),
		Sex:                   p.integer("Sexo"),
		BankingSeniority:      p.integer("iAntiguedadBancarizado"),
		MaxInternalAmount:     p.float("MaxMontoInterno"),
		OriginationScore:      p.integer("ScoreOriginacionMicro"),
		OverindebtednessScore: p.integer("Score_Sobreendeudamiento"),
		TotalAssets:           p.float("Bal_TotalActivosNormalizado"),
		BusinessNetIncome:     p.float("NetoIngresosNegocioNormalizado"),
		AvailableLiquidity:    p.float("LiquidezDisponibleNormalizado"),
		PortfolioSegment:      p.integer("SegmentoCartera"),
		GovernmentSupport:     p.integer("apoyogobierno"),
		CovidIntensity:        p.floatDefault("covid_intensity", 0.3),
		TemperatureAnomaly:    p.floatDefault("temperatura_anomalia", 0),
	}
	if p.err != nil {
		return nil, p.err
	}
	if in.MaritalStatus == "" {
		return nil, errors.New("missing field EstadoCivil")
	}
	return in, nil
}

// inputParser accumulates the first coercion error; later fields parse as
// zero once an error is recorded.
type inputParser struct {
	form url.Values
	err  error
}

func (p *inputParser) raw(name string) string {
	return strings.TrimSpace(p.form.Get(name))
}

func (p *inputParser) float(name string) float64 {
	if p.err != nil {
		return 0
	}
	raw := p.raw(name)
	if raw == "" {
		p.err = errors.Errorf("missing field %s", name)
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.err = errors.Wrapf(err, "invalid field %s", name)
		return 0
	}
	return v
}

func (p *inputParser) floatDefault(name string, def float64) float64 {
	if p.err != nil {
		return 0
	}
	if p.raw(name) == "" {
		return def
	}
	return p.float(name)
}

func (p *inputParser) integer(name string) int {
	if p.err != nil {
		return 0
	}
	raw := p.raw(name)
	if raw == "" {
		p.err = errors.Errorf("missing field %s", name)
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.err = errors.Wrapf(err, "invalid field %s", name)
		return 0
	}
	return v
}

func (p *inputParser) integerDefault(name string, def int) int {
	if p.err != nil {
		return 0
	}
	if p.raw(name) == "" {
		return def
	}
	return p.integer(name)
}
