package responders

import (
	"html/template"
	"net/http"

	"github.com/hybridcredit/credit-risk-frontend/controllers"
)

var analyticsTemplate = template.Must(template.New("analytics").Parse(
	`<html>
<head>
	<meta charset="utf-8">
	<title>Analítica del Sistema</title>
	<link rel="stylesheet" type="text/css" href="/static/risk.css" />
</head>
<body class="analytics-page">
<h1>Analítica del Sistema</h1>
{{if .StatsErr}}<div class="notification notification-error">No se pudieron obtener las estadísticas de feedback<div class="notification-detail">{{.StatsErr}}</div></div>{{end}}
{{if .Stats}}<div class="feedback-stats">
	<h2>Feedback</h2>
	<div>Total evaluaciones con feedback: {{.Stats.Total}}</div>
	<div>Correctas: {{.Stats.Correct}} / Incorrectas: {{.Stats.Incorrect}}</div>
	<div>Accuracy real: {{printf "%.1f" .Stats.Accuracy}}%</div>
	{{if .Stats.Distribution}}<div class="feedback-distribution">
		{{range $class, $count := .Stats.Distribution}}<div>{{$class}}: {{$count}}</div>{{end}}
	</div>{{end}}
</div>{{end}}
{{if .ModelErr}}<div class="notification notification-error">No se pudo obtener la información del modelo<div class="notification-detail">{{.ModelErr}}</div></div>{{end}}
{{if .Model}}<div class="model-info">
	<h2>Modelo</h2>
	{{if .Model.Trained}}
	<div>Features: {{.Model.Features}}</div>
	<div>Accuracy: {{printf "%.3f" .Model.Metrics.Accuracy}}</div>
	<div>F1: {{printf "%.3f" .Model.Metrics.F1Score}}</div>
	<form method="POST" action="/model/delete"><button type="submit">Eliminar modelo</button></form>
	{{else}}
	<div>Modelo no entrenado</div>
	{{end}}
</div>{{end}}
<a href="/">Volver</a>
</body>
</html>`))

type WebAnalyticsResponder struct{}

func (_ *WebAnalyticsResponder) OnContextError(w http.ResponseWriter, err error) {
	http.Error(w, "Internal Server Error", 500)
}

func (_ *WebAnalyticsResponder) OnResult(w http.ResponseWriter, r *controllers.AnalyticsResult) {
	analyticsTemplate.Execute(w, r)
}
