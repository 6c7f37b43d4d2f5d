package projector

import (
	"context"

	"github.com/hybridcredit/credit-risk-frontend/data"
)

type Predictor interface {
	Predict(ctx context.Context, in *data.PredictionInput) (*data.PredictionResult, error)
	PredictOnlyML(ctx context.Context, in *data.PredictionInput) (*data.PredictionResult, error)
	PredictOnlyFuzzy(ctx context.Context, in *data.PredictionInput) (*data.PredictionResult, error)
}

type RegionalSource interface {
	CovidMap(ctx context.Context) (*data.CovidMap, error)
	TemperatureMap(ctx context.Context) (*data.TemperatureMap, error)
}

type SessionReader interface {
	LastInput() *data.PredictionInput
}
