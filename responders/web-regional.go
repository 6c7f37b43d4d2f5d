package responders

import (
	"html/template"
	"net/http"

	"github.com/hybridcredit/credit-risk-frontend/controllers"
)

var regionalTemplate = template.Must(template.New("regional").Parse(
	`<html>
<head>
	<meta charset="utf-8">
	<title>Factores de Riesgo Regionales</title>
	<link rel="stylesheet" type="text/css" href="/static/risk.css" />
</head>
<body class="regional-page">
<h1>Factores de Riesgo Regionales</h1>
{{if .Err}}<div class="notification notification-error">No se pudieron cargar los datos regionales<div class="notification-detail">{{.Err}}</div></div>{{end}}
{{if .View}}
{{range .View.Advisories}}<div class="notification notification-advisory">{{.}}</div>{{end}}
<div class="chart-toggles">
	<a href="/regional?covid_chart=bar&temp_chart=bar">Barras</a>
	<a href="/regional?covid_chart=pie&temp_chart=bar">COVID circular</a>
	<a href="/regional?covid_chart=bar&temp_chart=scatter">Temperatura dispersión</a>
	<a href="/regional.csv">Exportar CSV</a>
</div>
<div class="chart chart-{{.CovidChart.Kind}}">
	<h2>{{.CovidChart.Title}}</h2>
	{{range .CovidChart.Points}}<div class="chart-point"><span>{{.Label}}</span><span>{{printf "%.1f" .Value}}%</span></div>{{end}}
</div>
<div class="chart chart-{{.TemperatureChart.Kind}}">
	<h2>{{.TemperatureChart.Title}}</h2>
	{{range .TemperatureChart.Points}}<div class="chart-point"><span>{{.Label}}</span><span>{{printf "%+.1f" .Value}}°C</span></div>{{end}}
</div>
<table class="regional-table">
	<tr><th>Departamento</th><th>COVID Intensidad (%)</th><th>Casos Totales</th><th>Temp Anomalía (°C)</th><th>Temp Actual (°C)</th><th>Impacto</th></tr>
	{{range .View.Rows}}
	<tr>
		<td>{{.Region}}</td>
		<td>{{printf "%.1f" .CovidIntensityPercent}}</td>
		<td>{{.TotalCases}}</td>
		<td>{{printf "%+.1f" .TempAnomaly}}</td>
		<td>{{printf "%.1f" .TempCurrent}}</td>
		<td>{{.Impact}}</td>
	</tr>
	{{end}}
</table>
<div class="regional-stats">
	<div>Departamentos: {{.View.Stats.Regions}}</div>
	<div>Casos totales: {{.View.Stats.TotalCases}}</div>
	<div>Intensidad media: {{printf "%.2f" .View.Stats.MeanIntensity}} (mín {{printf "%.2f" .View.Stats.MinIntensity}}, máx {{printf "%.2f" .View.Stats.MaxIntensity}})</div>
	<div>Anomalía media: {{printf "%+.2f" .View.Stats.MeanAnomaly}}°C (mín {{printf "%+.2f" .View.Stats.MinAnomaly}}, máx {{printf "%+.2f" .View.Stats.MaxAnomaly}})</div>
</div>
{{end}}
<a href="/">Volver</a>
</body>
</html>`))

type WebRegionalResponder struct{}

func (_ *WebRegionalResponder) OnContextError(w http.ResponseWriter, err error) {
	http.Error(w, "Internal Server Error", 500)
}

func (_ *WebRegionalResponder) OnResult(w http.ResponseWriter, r *controllers.RegionalResult) {
	regionalTemplate.Execute(w, r)
}
