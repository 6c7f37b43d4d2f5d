package projector

import (
	"context"
	"testing"

	"github.com/hybridcredit/credit-risk-frontend/data"
)

type testSession struct {
	LastInputFunc func() *data.PredictionInput
}

func newTestSession(t *testing.T) *testSession {
	return &testSession{
		LastInputFunc: func() *data.PredictionInput {
			t.Error("LastInput should not be called")
			return nil
		},
	}
}

func (s *testSession) LastInput() *data.PredictionInput {
	return s.LastInputFunc()
}

type testRegionalSource struct {
	CovidMapFunc       func(ctx context.Context) (*data.CovidMap, error)
	TemperatureMapFunc func(ctx context.Context) (*data.TemperatureMap, error)
}

func newTestRegionalSource(t *testing.T) *testRegionalSource {
	return &testRegionalSource{
		CovidMapFunc: func(ctx context.Context) (*data.CovidMap, error) {
			t.Error("CovidMap should not be called")
			return nil, nil
		},
		TemperatureMapFunc: func(ctx context.Context) (*data.TemperatureMap, error) {
			t.Error("TemperatureMap should not be called")
			return nil, nil
		},
	}
}

func (s *testRegionalSource) CovidMap(ctx context.Context) (*data.CovidMap, error) {
	return s.CovidMapFunc(ctx)
}

func (s *testRegionalSource) TemperatureMap(ctx context.Context) (*data.TemperatureMap, error) {
	return s.TemperatureMapFunc(ctx)
}
