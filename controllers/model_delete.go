package controllers

import (
	"context"
	"net/http"

	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/sirupsen/logrus"
)

// ModelDelete asks the API to discard its trained model and clears the local
// session, since any held result came from the deleted model.
type ModelDelete struct {
	Admin   ModelAdmin
	Session Session
}

type WebActionResponder interface {
	OnContextError(w http.ResponseWriter, err error)
	OnError(ctx context.Context, w http.ResponseWriter, err error)
	OnSuccess(w http.ResponseWriter)
}

func (c *ModelDelete) HandleFunc(cm ContextMaker, resp WebActionResponder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, err := cm.MakeContext(r)
		if err != nil {
			resp.OnContextError(w, err)
			return
		}

		err = c.handle(ctx)
		if err != nil {
			resp.OnError(ctx, w, err)
		} else {
			resp.OnSuccess(w)
		}
	}
}

func (c *ModelDelete) handle(ctx context.Context) error {
	ctx = ctxlogrus.WithFields(ctx, logrus.Fields{
		"controller": "ModelDelete",
	})

	if err := c.Admin.DeleteModel(ctx); err != nil {
		ctxlogrus.Get(ctx).Errorf("Unable to delete model: %s", err)
		return err
	}

	c.Session.Clear()
	return nil
}
