package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"github.com/hybridcredit/credit-risk-frontend/data"
)

// Client issues JSON requests against the risk API's common path prefix.
// One attempt per call; callers decide whether to retry.
type Client struct {
	BaseURL string
	Doer    Doer
	Limiter *rate.Limiter
}

func (c *Client) call(ctx context.Context, method, path string, body, out interface{}) error {
	l := ctxlogrus.Get(ctx)

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return errors.Wrap(err, "call couldn't acquire rate limit slot")
		}
	}

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "call couldn't marshal request body")
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, payload)
	if err != nil {
		return errors.Wrap(err, "call couldn't create request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	l.Debugf("Calling risk API: %s %s", method, path)
	resp, err := c.Doer.Do(req)
	if err != nil {
		return &data.RequestError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var detail struct {
			Detail string `json:"detail"`
		}
		raw, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(raw, &detail)
		msg := detail.Detail
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &data.RequestError{Message: msg, StatusCode: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "call couldn't decode response")
	}
	return nil
}
