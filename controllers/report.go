package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/sirupsen/logrus"
)

const reportArtifactName = "reporte_riesgo.txt"

// Report produces the plain-text risk report for the last successful
// evaluation and offers it as a download.
type Report struct {
	Generator ReportGenerator
	Session   Session
	Now       func() time.Time
}

type DownloadResponder interface {
	OnContextError(w http.ResponseWriter, err error)
	OnError(ctx context.Context, w http.ResponseWriter, err error)
	OnFile(w http.ResponseWriter, filename, contentType string, content []byte)
}

func (c *Report) HandleFunc(cm ContextMaker, resp DownloadResponder) http.HandlerFunc {
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
		resp.OnFile(w, reportArtifactName, "text/plain; charset=utf-8", content)
	}
}

func (c *Report) handle(ctx context.Context) ([]byte, error) {
	ctx = ctxlogrus.WithFields(ctx, logrus.Fields{
		"controller": "Report",
	})
	l := ctxlogrus.Get(ctx)

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	text, err := c.Generator.Text(c.Session.LastResult(), now())
	if err != nil {
		return nil, err
	}

	// The download is the artifact; the local copy is best-effort.
	if err := c.Generator.WriteArtifact(ctx, reportArtifactName, text); err != nil {
		l.Warnf("Couldn't keep report copy: %s", err)
	}

	return []byte(text), nil
}
