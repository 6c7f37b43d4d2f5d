package controllers

import (
	"context"
	"net/http"

	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/sirupsen/logrus"
)

const regionalArtifactName = "factores_regionales.csv"

// RegionalCSV exports the joined regional dataset as a CSV download.
type RegionalCSV struct {
	Loader    RegionalLoader
	Generator ReportGenerator
}

func (c *RegionalCSV) HandleFunc(cm ContextMaker, resp DownloadResponder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, err := cm.MakeContext(r)
		if err != nil {
			resp.OnContextError(w, err)
			return
		}

		content, err := c.handle(ctx)
		if err != nil {
			resp.OnError(ctx, w, err)
			return
		}
		resp.OnFile(w, regionalArtifactName, "text/csv; charset=utf-8", content)
	}
}

func (c *RegionalCSV) handle(ctx context.Context) ([]byte, error) {
	ctx = ctxlogrus.WithFields(ctx, logrus.Fields{
		"controller": "RegionalCSV",
	})
	l := ctxlogrus.Get(ctx)

	view, err := c.Loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	encoded, err := c.Generator.RegionalCSV(view.Rows)
	if err != nil {
		return nil, err
	}

	if err := c.Generator.WriteArtifact(ctx, regionalArtifactName, encoded); err != nil {
		l.Warnf("Couldn't keep csv copy: %s", err)
	}

	return []byte(encoded), nil
}
