package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/hybridcredit/credit-risk-frontend/data"
	"github.com/hybridcredit/credit-risk-frontend/feedback"
	"github.com/hybridcredit/credit-risk-frontend/poller"
	"github.com/hybridcredit/credit-risk-frontend/projector"
)

type ContextMaker interface {
	MakeContext(r *http.Request) (context.Context, error)
}

type Predictor interface {
	Predict(ctx context.Context, in *data.PredictionInput) (*data.PredictionResult, error)
}

type ExampleLister interface {
	GetExamples(ctx context.Context) ([]data.ExampleCase, error)
}

type Comparer interface {
	Compare(ctx context.Context) (*projector.Comparison, error)
}

type RegionalLoader interface {
	Load(ctx context.Context) (*projector.RegionalView, error)
}

type ReportGenerator interface {
	Text(r *data.PredictionResult, now time.Time) (string, error)
	RegionalCSV(rows []projector.RegionRow) (string, error)
	WriteArtifact(ctx context.Context, name, content string) error
}

type FeedbackRecorder interface {
	Record(ctx context.Context, result *data.PredictionResult, actual data.RiskClass) (*feedback.Receipt, error)
}

type AnalyticsSource interface {
	FeedbackStats(ctx context.Context) (*data.FeedbackMetrics, error)
	ModelInfo(ctx context.Context) (*data.ModelInfo, error)
}

type ModelAdmin interface {
	DeleteModel(ctx context.Context) error
}

type StatusReader interface {
	Snapshot() poller.Snapshot
}

type Session interface {
	SetInput(in *data.PredictionInput)
	SetResult(r *data.PredictionResult)
	LastInput() *data.PredictionInput
	LastResult() *data.PredictionResult
	Clear()
}
