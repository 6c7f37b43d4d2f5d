package responders

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"

	"github.com/hybridcredit/credit-risk-frontend/data"
)

// DownloadResponder streams a generated artifact as a file attachment.
// Precondition failures come back as a client error with the "nothing to act
// on yet" message rather than a server fault.
type DownloadResponder struct {
	ExposeErrors bool
}

func (r *DownloadResponder) OnContextError(w http.ResponseWriter, err error) {
	if r.ExposeErrors {
		http.Error(w, fmt.Sprintf("Internal Server Error: %s", err), 500)
	} else {
		http.Error(w, "Internal Server Error", 500)
	}
}

func (r *DownloadResponder) OnError(ctx context.Context, w http.ResponseWriter, err error) {
	l := ctxlogrus.Get(ctx)
	l.Error(err)

	switch err.(type) {
	case *data.PreconditionError, *data.EmptyDatasetError:
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		if r.ExposeErrors {
			http.Error(w, fmt.Sprintf("Internal Server Error: %s", err), 500)
		} else {
			http.Error(w, "Internal Server Error", 500)
		}
	}
}

func (r *DownloadResponder) OnFile(w http.ResponseWriter, filename, contentType string, content []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(content)
}
