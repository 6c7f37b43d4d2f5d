package responders

import (
	"html/template"
	"net/http"

	"github.com/hybridcredit/credit-risk-frontend/controllers"
)

var compareTemplate = template.Must(template.New("compare").Parse(
	`<html>
<head>
	<meta charset="utf-8">
	<title>Comparación de Modelos</title>
	<link rel="stylesheet" type="text/css" href="/static/risk.css" />
</head>
<body class="compare-page">
<h1>Comparación de Modelos</h1>
{{if .Err}}<div class="notification notification-error">No se pudo completar la comparación<div class="notification-detail">{{.Err}}</div></div>{{end}}
{{if .Comparison}}
<div class="comparison-grid">
	<div class="comparison-panel">
		<h2>Híbrido</h2>
		<div>{{.Comparison.Hybrid.Class}}</div>
		<div>Confianza: {{printf "%.1f" .Comparison.Hybrid.Confidence}}%</div>
		<div>Score difuso: {{printf "%.2f" .Comparison.Hybrid.FuzzyScore}}</div>
	</div>
	<div class="comparison-panel">
		<h2>Solo ML</h2>
		<div>{{.Comparison.MLOnly.Class}}</div>
		<div>Confianza: {{printf "%.1f" .Comparison.MLOnly.Confidence}}%</div>
	</div>
	<div class="comparison-panel">
		<h2>Solo Difuso</h2>
		<div>{{.Comparison.FuzzyOnly.Class}}</div>
		<div>Score difuso: {{printf "%.2f" .Comparison.FuzzyOnly.FuzzyScore}}</div>
	</div>
</div>
<div class="comparison-bars">
	{{range .Comparison.Bars}}
	<div class="comparison-bar"><span>{{.Label}}</span><span>{{printf "%.1f" .Confidence}}%</span></div>
	{{end}}
</div>
{{end}}
<a href="/">Volver</a>
</body>
</html>`))

type WebCompareResponder struct{}

func (_ *WebCompareResponder) OnContextError(w http.ResponseWriter, err error) {
	http.Error(w, "Internal Server Error", 500)
}

func (_ *WebCompareResponder) OnResult(w http.ResponseWriter, r *controllers.CompareResult) {
	compareTemplate.Execute(w, r)
}
