package data

// RiskClass is the classification emitted by the risk API. The wire values are
// the API's own Spanish labels.
type RiskClass string

const (
	RiskLow    RiskClass = "BAJO_RIESGO"
	RiskMedium RiskClass = "MEDIO_RIESGO"
	RiskHigh   RiskClass = "ALTO_RIESGO"
)

// AllRiskClasses lists the three known classes in display order.
var AllRiskClasses = []RiskClass{RiskLow, RiskMedium, RiskHigh}

func (c RiskClass) Known() bool {
	return c == RiskLow || c == RiskMedium || c == RiskHigh
}

func (c RiskClass) Label() string {
	switch c {
	case RiskLow:
		return "BAJO RIESGO"
	case RiskMedium:
		return "MEDIO RIESGO"
	case RiskHigh:
		return "ALTO RIESGO"
	default:
		return string(c)
	}
}

// PredictionInput is an applicant's attribute set as the risk API expects it.
// Field names follow the API's schema; every field must be present and typed
// correctly or the remote service rejects the submission.
type PredictionInput struct {
	Amount                float64 `json:"monto"`
	TermMonths            int     `json:"PlazoReal"`
	EffectiveRate         float64 `json:"TasaEfectiva"`
	Age                   int     `json:"EdadDesembolsoNormalizada"`
	Income                float64 `json:"SalarioNormalizado"`
	Dependents            int     `json:"Dependientes"`
	EducationLevel        int     `json:"NivelInstruccion"`
	MaritalStatus         string  `json:"EstadoCivil"`
	Sex                   int     `json:"Sexo"`
	BankingSeniority      int     `json:"iAntiguedadBancarizado"`
	MaxInternalAmount     float64 `json:"MaxMontoInterno"`
	OriginationScore      int     `json:"ScoreOriginacionMicro"`
	OverindebtednessScore int     `json:"Score_Sobreendeudamiento"`
	TotalAssets           float64 `json:"Bal_TotalActivosNormalizado"`
	BusinessNetIncome     float64 `json:"NetoIngresosNegocioNormalizado"`
	AvailableLiquidity    float64 `json:"LiquidezDisponibleNormalizado"`
	PortfolioSegment      int     `json:"SegmentoCartera"`
	GovernmentSupport     int     `json:"apoyogobierno"`
	CovidIntensity        float64 `json:"covid_intensity"`
	TemperatureAnomaly    float64 `json:"temperatura_anomalia"`
}

// PredictionResult is one classification from any of the three model variants.
// A variant that reports no confidence decodes to a zero Confidence.
type PredictionResult struct {
	Class               RiskClass             `json:"clase"`
	Confidence          float64               `json:"confianza"`
	FuzzyScore          float64               `json:"score_difuso"`
	FuzzyInterpretation string                `json:"interpretacion_difusa"`
	Probabilities       map[RiskClass]float64 `json:"probabilidades"`
	Input               *PredictionInput      `json:"datos_entrada"`
}

// ExampleCase is a named sample applicant served by the API for one-click form fill.
type ExampleCase struct {
	Name string          `json:"nombre"`
	Data PredictionInput `json:"datos"`
}

// FeedbackEntry asserts the real-world outcome of a past prediction.
type FeedbackEntry struct {
	EvaluationID string            `json:"id_evaluacion"`
	Predicted    RiskClass         `json:"prediccion"`
	Actual       RiskClass         `json:"resultado_real"`
	Original     *PredictionResult `json:"datos_evaluacion"`
}

type FeedbackMetrics struct {
	Total        int               `json:"total"`
	Correct      int               `json:"correctos"`
	Incorrect    int               `json:"incorrectos"`
	Accuracy     float64           `json:"accuracy_real"`
	Distribution map[RiskClass]int `json:"distribucion_real"`
}

type HealthStatus struct {
	Status       string `json:"status"`
	ModelTrained bool   `json:"modelo_entrenado"`
}

type ModelMetrics struct {
	Accuracy float64 `json:"accuracy"`
	F1Score  float64 `json:"f1_score"`
}

type ModelInfo struct {
	Trained  bool         `json:"entrenado"`
	Features int          `json:"features"`
	Metrics  ModelMetrics `json:"metricas"`
}

type CovidStats struct {
	TotalCases int     `json:"casos_totales"`
	Intensity  float64 `json:"intensidad"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type TemperatureStats struct {
	Anomaly float64     `json:"anomalia"`
	Current float64     `json:"temp_actual"`
	Average float64     `json:"temp_promedio"`
	Coords  Coordinates `json:"coords"`
}

// CovidMap is the case/intensity dataset keyed by region. Simulated marks a
// fallback-backed response; it is advisory only, not an error.
type CovidMap struct {
	Simulated bool
	Regions   map[string]CovidStats
}

type TemperatureMap struct {
	Simulated bool
	Regions   map[string]TemperatureStats
}

type ExternalFactors struct {
	CovidIntensity     float64 `json:"covid_intensity"`
	TemperatureAnomaly float64 `json:"temperatura_anomalia"`
	Region             string  `json:"departamento"`
	Timestamp          string  `json:"timestamp"`
}
