package controllers

import (
	"context"
	"net/http"
	"sync"

	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/sirupsen/logrus"

	"github.com/hybridcredit/credit-risk-frontend/data"
)

// Analytics shows the server-computed feedback accuracy alongside the model's
// training metrics. The two fetches run concurrently and fail independently;
// one failing still renders the other.
type Analytics struct {
	Source AnalyticsSource
}

type AnalyticsResult struct {
	Stats    *data.FeedbackMetrics
	StatsErr error
	Model    *data.ModelInfo
	ModelErr error
}

type WebAnalyticsResponder interface {
	OnContextError(w http.ResponseWriter, err error)
	OnResult(w http.ResponseWriter, r *AnalyticsResult)
}

func (c *Analytics) HandleFunc(cm ContextMaker, resp WebAnalyticsResponder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, err := cm.MakeContext(r)
		if err != nil {
			resp.OnContextError(w, err)
			return
		}

		result := c.handle(ctx)
		resp.OnResult(w, result)
	}
}

func (c *Analytics) handle(ctx context.Context) *AnalyticsResult {
	ctx = ctxlogrus.WithFields(ctx, logrus.Fields{
		"controller": "Analytics",
	})
	l := ctxlogrus.Get(ctx)

	result := new(AnalyticsResult)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		result.Stats, result.StatsErr = c.Source.FeedbackStats(ctx)
	}()
	go func() {
		defer wg.Done()
		result.Model, result.ModelErr = c.Source.ModelInfo(ctx)
	}()
	wg.Wait()

	if result.StatsErr != nil {
		l.Errorf("Unable to get feedback stats: %s", result.StatsErr)
	}
	if result.ModelErr != nil {
		l.Errorf("Unable to get model info: %s", result.ModelErr)
	}
	return result
}
