package controllers

import (
	"context"
	"net/http"

	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/sirupsen/logrus"

	"github.com/hybridcredit/credit-risk-frontend/projector"
)

// Regional serves the joined regional risk-factor table with its chart
// projections. The chart kinds are a presentation toggle carried in query
// parameters.
type Regional struct {
	Loader RegionalLoader
}

type RegionalResult struct {
	View             *projector.RegionalView
	CovidChart       projector.ChartSeries
	TemperatureChart projector.ChartSeries
	Err              error
}

type WebRegionalResponder interface {
	OnContextError(w http.ResponseWriter, err error)
	OnResult(w http.ResponseWriter, r *RegionalResult)
}

func (c *Regional) HandleFunc(cm ContextMaker, resp WebRegionalResponder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, err := cm.MakeContext(r)
		if err != nil {
			resp.OnContextError(w, err)
			return
		}

		covidKind := projector.ChartKind(r.FormValue("covid_chart"))
		tempKind := projector.ChartKind(r.FormValue("temp_chart"))
		result := c.handle(ctx, covidKind, tempKind)
		resp.OnResult(w, result)
	}
}

func (c *Regional) handle(ctx context.Context, covidKind, tempKind projector.ChartKind) *RegionalResult {
	ctx = ctxlogrus.WithFields(ctx, logrus.Fields{
		"controller": "Regional",
	})
	l := ctxlogrus.Get(ctx)

	view, err := c.Loader.Load(ctx)
	if err != nil {
		l.Errorf("Unable to load regional datasets: %s", err)
		return &RegionalResult{Err: err}
	}

	return &RegionalResult{
		View:             view,
		CovidChart:       view.CovidSeries(covidKind),
		TemperatureChart: view.TemperatureSeries(tempKind),
	}
}
