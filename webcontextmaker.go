package main

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/sirupsen/logrus"
)

// WebContextMaker scopes each request's context with a request id for log
// correlation.
type WebContextMaker struct{}

func (cm *WebContextMaker) MakeContext(r *http.Request) (context.Context, error) {
	ctx := ctxlogrus.WithFields(r.Context(), logrus.Fields{
		"request_id": uuid.NewString(),
		"path":       r.URL.Path,
	})
	return ctx, nil
}
