package controllers

import (
	"context"
	"net/http"

	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/sirupsen/logrus"

	"github.com/hybridcredit/credit-risk-frontend/data"
	"github.com/hybridcredit/credit-risk-frontend/feedback"
)

// Feedback captures the asserted real-world outcome for the last evaluation.
type Feedback struct {
	Recorder FeedbackRecorder
	Session  Session
}

type FeedbackResult struct {
	Receipt *feedback.Receipt
	Err     error
}

type WebFeedbackResponder interface {
	OnContextError(w http.ResponseWriter, err error)
	OnResult(w http.ResponseWriter, r *FeedbackResult)
}

func (c *Feedback) HandleFunc(cm ContextMaker, resp WebFeedbackResponder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, err := cm.MakeContext(r)
		if err != nil {
			resp.OnContextError(w, err)
			return
		}

		result := c.handle(ctx, data.RiskClass(r.FormValue("resultado_real")))
		resp.OnResult(w, result)
	}
}

func (c *Feedback) handle(ctx context.Context, actual data.RiskClass) *FeedbackResult {
	ctx = ctxlogrus.WithFields(ctx, logrus.Fields{
		"controller": "Feedback",
	})
	l := ctxlogrus.Get(ctx)

	receipt, err := c.Recorder.Record(ctx, c.Session.LastResult(), actual)
	if err != nil {
		l.Errorf("Unable to record feedback: %s", err)
		return &FeedbackResult{Err: err}
	}
	return &FeedbackResult{Receipt: receipt}
}
