package responders

import (
	"html/template"
	"net/http"

	"github.com/hybridcredit/credit-risk-frontend/controllers"
)

var feedbackTemplate = template.Must(template.New("feedback").Parse(
	`<html>
<head>
	<meta charset="utf-8">
	<title>Feedback Registrado</title>
	<link rel="stylesheet" type="text/css" href="/static/risk.css" />
</head>
<body class="feedback-page">
<h1>Feedback</h1>
{{if .Err}}<div class="notification notification-error">No se pudo registrar el feedback<div class="notification-detail">{{.Err}}</div></div>{{end}}
{{if .Receipt}}<div class="feedback-receipt">
	<div>Evaluación: {{.Receipt.EvaluationID}}</div>
	<div>Predicción: {{.Receipt.Predicted}}</div>
	<div>Resultado real: {{.Receipt.Actual}}</div>
	{{if .Receipt.Matched}}<div class="feedback-match">La predicción fue correcta</div>
	{{else}}<div class="feedback-mismatch">La predicción fue incorrecta</div>{{end}}
</div>{{end}}
<a href="/">Volver</a> <a href="/analytics">Ver analítica</a>
</body>
</html>`))

type WebFeedbackResponder struct{}

func (_ *WebFeedbackResponder) OnContextError(w http.ResponseWriter, err error) {
	http.Error(w, "Internal Server Error", 500)
}

func (_ *WebFeedbackResponder) OnResult(w http.ResponseWriter, r *controllers.FeedbackResult) {
	feedbackTemplate.Execute(w, r)
}
