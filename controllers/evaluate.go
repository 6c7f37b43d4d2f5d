package controllers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/sirupsen/logrus"

	"github.com/hybridcredit/credit-risk-frontend/data"
	"github.com/hybridcredit/credit-risk-frontend/poller"
	"github.com/hybridcredit/credit-risk-frontend/projector"
)

// Evaluate serves the main page: the applicant form, the projected result of
// the latest submission, and the example applicants.
type Evaluate struct {
	Predictor     Predictor
	ExampleLister ExampleLister
	Session       Session
	Status        StatusReader
}

type EvaluateResult struct {
	Input         *data.PredictionInput
	View          *projector.ResultView
	PredictionErr error
	Examples      []data.ExampleCase
	ExamplesErr   error
	Status        poller.Snapshot
}

type WebEvaluateResponder interface {
	OnContextError(w http.ResponseWriter, err error)
	OnResult(w http.ResponseWriter, r *EvaluateResult)
}

func (c *Evaluate) HandleFunc(cm ContextMaker, resp WebEvaluateResponder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, err := cm.MakeContext(r)
		if err != nil {
			resp.OnContextError(w, err)
			return
		}

		r.ParseForm()
		result := c.handle(ctx, r.Form)
		resp.OnResult(w, result)
	}
}

func (c *Evaluate) handle(ctx context.Context, form url.Values) *EvaluateResult {
	ctx = ctxlogrus.WithFields(ctx, logrus.Fields{
		"controller": "Evaluate",
	})
	l := ctxlogrus.Get(ctx)

	result := &EvaluateResult{Status: c.Status.Snapshot()}

	if form.Get("monto") != "" {
		in, err := ParseInput(form)
		if err != nil {
			result.PredictionErr = err
		} else {
			result.Input = in
			// Recorded before calling out, so comparison can be retried
			// even when this submission fails downstream.
			c.Session.SetInput(in)

			res, err := c.Predictor.Predict(ctx, in)
			if err != nil {
				l.Errorf("Unable to evaluate applicant: %s", err)
				result.PredictionErr = err
			} else {
				c.Session.SetResult(res)
				result.View = projector.ProjectResult(res)
			}
		}
	}

	examples, listErr := c.ExampleLister.GetExamples(ctx)
	if listErr != nil {
		l.Errorf("Unable to get example applicants: %s", listErr)
		result.ExamplesErr = listErr
	} else {
		result.Examples = examples
	}

	return result
}
