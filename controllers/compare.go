package controllers

import (
	"context"
	"net/http"

	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/sirupsen/logrus"

	"github.com/hybridcredit/credit-risk-frontend/projector"
)

type Compare struct {
	Comparer Comparer
}

type CompareResult struct {
	Comparison *projector.Comparison
	Err        error
}

type WebCompareResponder interface {
	OnContextError(w http.ResponseWriter, err error)
	OnResult(w http.ResponseWriter, r *CompareResult)
}

func (c *Compare) HandleFunc(cm ContextMaker, resp WebCompareResponder) http.HandlerFunc {
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

func (c *Compare) handle(ctx context.Context) *CompareResult {
	ctx = ctxlogrus.WithFields(ctx, logrus.Fields{
		"controller": "Compare",
	})
	l := ctxlogrus.Get(ctx)

	cmp, err := c.Comparer.Compare(ctx)
	if err != nil {
		l.Errorf("Unable to compare model variants: %s", err)
		return &CompareResult{Err: err}
	}
	return &CompareResult{Comparison: cmp}
}
