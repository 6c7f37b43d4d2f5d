package responders

import (
	"html/template"
	"net/http"

	"github.com/hybridcredit/credit-risk-frontend/controllers"
)

var evaluateTemplate = template.Must(template.New("evaluate").Parse(
	`<html>
<head>
	<meta charset="utf-8">
	<title>Evaluación de Riesgo Crediticio</title>
	<link rel="stylesheet" type="text/css" href="/static/risk.css" />
</head>
<body class="evaluate-page">
<h1>Sistema Híbrido de Riesgo Crediticio</h1>
{{if .Status.Degraded}}<div class="status-banner status-degraded">Servicio degradado: sin conexión con el API de riesgo</div>
{{else if not .Status.ModelTrained}}<div class="status-banner status-warning">Modelo no entrenado</div>{{end}}
{{if .Status.Factors}}<div class="live-factors">Factores en vivo ({{.Status.Factors.Region}}): COVID {{printf "%.2f" .Status.Factors.CovidIntensity}}, anomalía {{printf "%+.1f" .Status.Factors.TemperatureAnomaly}}°C</div>{{end}}
<form id="evaluation-form" method="POST" action="/">
	<input type="text" name="monto" placeholder="Monto solicitado" {{if .Input}}value="{{.Input.Amount}}"{{end}}>
	<input type="text" name="SalarioNormalizado" placeholder="Ingreso mensual" {{if .Input}}value="{{.Input.Income}}"{{end}}>
	<input type="text" name="PlazoReal" placeholder="Plazo (meses)" {{if .Input}}value="{{.Input.TermMonths}}"{{end}}>
	<input type="text" name="TasaEfectiva" placeholder="Tasa efectiva">
	<input type="text" name="EdadDesembolsoNormalizada" placeholder="Edad">
	<input type="text" name="Dependientes" placeholder="Dependientes">
	<input type="text" name="EstadoCivil" placeholder="Estado civil">
	<input type="text" name="Sexo" placeholder="Sexo">
	<input type="text" name="iAntiguedadBancarizado" placeholder="Antigüedad bancaria (meses)">
	<input type="text" name="MaxMontoInterno" placeholder="Máximo monto interno">
	<input type="text" name="ScoreOriginacionMicro" placeholder="Score de originación">
	<input type="text" name="Score_Sobreendeudamiento" placeholder="Score sobreendeudamiento">
	<input type="text" name="Bal_TotalActivosNormalizado" placeholder="Total activos">
	<input type="text" name="NetoIngresosNegocioNormalizado" placeholder="Ingresos del negocio">
	<input type="text" name="LiquidezDisponibleNormalizado" placeholder="Liquidez disponible">
	<input type="text" name="SegmentoCartera" placeholder="Segmento de cartera">
	<input type="text" name="apoyogobierno" placeholder="Apoyo de gobierno">
	<button type="submit">Evaluar</button>
</form>
{{if .PredictionErr}}<div class="notification notification-error">Fallo al evaluar la solicitud<div class="notification-detail">{{.PredictionErr}}</div></div>{{end}}
{{if .View}}<div class="result-panel tone-{{.View.Tone}}">
	<div class="result-class">{{.View.Icon}} {{.View.Label}}</div>
	<div class="result-confidence">Confianza: {{printf "%.1f" .View.Confidence}}%</div>
	<div class="result-fuzzy">Score difuso: {{printf "%.2f" .View.FuzzyScore}}/100 ({{.View.FuzzyInterpretation}})</div>
	<div class="result-amount">Monto: {{.View.AmountDisplay}}</div>
	<div class="result-income">Ingreso: {{.View.IncomeDisplay}}</div>
	<div class="result-ratio">Ratio deuda/ingreso: {{.View.DebtIncomeRatio}}</div>
	<div class="probability-bars">
	{{range .View.Probabilities}}
		<div class="probability-bar tone-{{.Tone}}"><span>{{.Label}}</span><span>{{printf "%.1f" .Percent}}%</span></div>
	{{end}}
	</div>
	<div class="result-actions">
		<a href="/compare">Comparar modelos</a>
		<a href="/report">Descargar reporte</a>
	</div>
	<form method="POST" action="/feedback" class="feedback-form">
		<select name="resultado_real">
			<option value="BAJO_RIESGO">Bajo riesgo</option>
			<option value="MEDIO_RIESGO">Medio riesgo</option>
			<option value="ALTO_RIESGO">Alto riesgo</option>
		</select>
		<button type="submit">Registrar resultado real</button>
	</form>
</div>{{end}}
{{if .Examples}}<div class="example-list">
	<h2>Casos de ejemplo</h2>
	{{range .Examples}}
		<div class="example">{{.Name}}: monto {{.Data.Amount}}, ingreso {{.Data.Income}}, score {{.Data.OriginationScore}}</div>
	{{end}}
</div>{{end}}
{{if .ExamplesErr}}<div class="example-list-fault">{{.ExamplesErr}}</div>{{end}}
</body>
</html>`))

type WebEvaluateResponder struct{}

func (_ *WebEvaluateResponder) OnContextError(w http.ResponseWriter, err error) {
	http.Error(w, "Internal Server Error", 500)
}

func (_ *WebEvaluateResponder) OnResult(w http.ResponseWriter, r *controllers.EvaluateResult) {
	evaluateTemplate.Execute(w, r)
}
