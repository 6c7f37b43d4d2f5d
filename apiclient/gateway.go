package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/hybridcredit/credit-risk-frontend/data"
)

type predictResponse struct {
	Success bool                   `json:"success"`
	Result  *data.PredictionResult `json:"resultado"`
}

type examplesResponse struct {
	Success  bool               `json:"success"`
	Examples []data.ExampleCase `json:"ejemplos"`
}

type feedbackStatsResponse struct {
	Success bool                  `json:"success"`
	Metrics *data.FeedbackMetrics `json:"metricas"`
}

type factorsResponse struct {
	Success bool                  `json:"success"`
	Factors *data.ExternalFactors `json:"factores"`
}

type covidMapResponse struct {
	Success bool                       `json:"success"`
	Regions map[string]data.CovidStats `json:"departamentos"`
}

type temperatureMapResponse struct {
	Success bool                             `json:"success"`
	Regions map[string]data.TemperatureStats `json:"departamentos"`
}

func (c *Client) Health(ctx context.Context) (*data.HealthStatus, error) {
	status := new(data.HealthStatus)
	if err := c.call(ctx, http.MethodGet, "/health", nil, status); err != nil {
		return nil, err
	}
	return status, nil
}

func (c *Client) Predict(ctx context.Context, in *data.PredictionInput) (*data.PredictionResult, error) {
	return c.predict(ctx, "/predict", in)
}

func (c *Client) PredictOnlyML(ctx context.Context, in *data.PredictionInput) (*data.PredictionResult, error) {
	return c.predict(ctx, "/predict-only-ml", in)
}

func (c *Client) PredictOnlyFuzzy(ctx context.Context, in *data.PredictionInput) (*data.PredictionResult, error) {
	return c.predict(ctx, "/predict-only-fuzzy", in)
}

func (c *Client) predict(ctx context.Context, path string, in *data.PredictionInput) (*data.PredictionResult, error) {
	var resp predictResponse
	if err := c.call(ctx, http.MethodPost, path, in, &resp); err != nil {
		return nil, err
	}
	if resp.Result == nil {
		return nil, errors.Errorf("predict got malformed response from %s: no result", path)
	}
	return resp.Result, nil
}

func (c *Client) Examples(ctx context.Context) ([]data.ExampleCase, error) {
	var resp examplesResponse
	if err := c.call(ctx, http.MethodGet, "/examples", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Examples, nil
}

func (c *Client) SubmitFeedback(ctx context.Context, entry *data.FeedbackEntry) error {
	return c.call(ctx, http.MethodPost, "/feedback", entry, nil)
}

func (c *Client) FeedbackStats(ctx context.Context) (*data.FeedbackMetrics, error) {
	var resp feedbackStatsResponse
	if err := c.call(ctx, http.MethodGet, "/feedback/stats", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Metrics == nil {
		return nil, errors.New("feedback stats got malformed response: no metrics")
	}
	return resp.Metrics, nil
}

func (c *Client) ModelInfo(ctx context.Context) (*data.ModelInfo, error) {
	info := new(data.ModelInfo)
	if err := c.call(ctx, http.MethodGet, "/model/info", nil, info); err != nil {
		return nil, err
	}
	return info, nil
}

func (c *Client) DeleteModel(ctx context.Context) error {
	return c.call(ctx, http.MethodDelete, "/model/delete", nil, nil)
}

// CovidMap fetches the case/intensity dataset. A success=false payload that
// still carries regions marks simulated fallback data, not a failure.
func (c *Client) CovidMap(ctx context.Context) (*data.CovidMap, error) {
	var resp covidMapResponse
	if err := c.call(ctx, http.MethodGet, "/realtime/mapa-covid", nil, &resp); err != nil {
		return nil, err
	}
	return &data.CovidMap{Simulated: !resp.Success, Regions: resp.Regions}, nil
}

func (c *Client) TemperatureMap(ctx context.Context) (*data.TemperatureMap, error) {
	var resp temperatureMapResponse
	if err := c.call(ctx, http.MethodGet, "/realtime/mapa-temperatura", nil, &resp); err != nil {
		return nil, err
	}
	return &data.TemperatureMap{Simulated: !resp.Success, Regions: resp.Regions}, nil
}

func (c *Client) ExternalFactors(ctx context.Context, region string) (*data.ExternalFactors, error) {
	var resp factorsResponse
	path := "/realtime/factores?departamento=" + url.QueryEscape(region)
	if err := c.call(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Factors == nil {
		return nil, errors.New("external factors got malformed response: no factors")
	}
	return resp.Factors, nil
}
