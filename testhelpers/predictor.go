package testhelpers

import (
	"context"
	"testing"

	"github.com/hybridcredit/credit-risk-frontend/data"
)

type Predictor struct {
	PredictFunc          func(ctx context.Context, in *data.PredictionInput) (*data.PredictionResult, error)
	PredictOnlyMLFunc    func(ctx context.Context, in *data.PredictionInput) (*data.PredictionResult, error)
	PredictOnlyFuzzyFunc func(ctx context.Context, in *data.PredictionInput) (*data.PredictionResult, error)
}

func NewPredictor(t *testing.T) *Predictor {
	return &Predictor{
		PredictFunc: func(ctx context.Context, in *data.PredictionInput) (*data.PredictionResult, error) {
			t.Error("Predict should not be called")
			return nil, nil
		},
		PredictOnlyMLFunc: func(ctx context.Context, in *data.PredictionInput) (*data.PredictionResult, error) {
			t.Error("PredictOnlyML should not be called")
			return nil, nil
		},
		PredictOnlyFuzzyFunc: func(ctx context.Context, in *data.PredictionInput) (*data.PredictionResult, error) {
			t.Error("PredictOnlyFuzzy should not be called")
			return nil, nil
		},
	}
}

func (p *Predictor) Predict(ctx context.Context, in *data.PredictionInput) (*data.PredictionResult, error) {
	return p.PredictFunc(ctx, in)
}

func (p *Predictor) PredictOnlyML(ctx context.Context, in *data.PredictionInput) (*data.PredictionResult, error) {
	return p.PredictOnlyMLFunc(ctx, in)
}

func (p *Predictor) PredictOnlyFuzzy(ctx context.Context, in *data.PredictionInput) (*data.PredictionResult, error) {
	return p.PredictOnlyFuzzyFunc(ctx, in)
}
