package controllers

import (
	"context"
	"testing"
	"time"

	"github.com/hybridcredit/credit-risk-frontend/data"
	"github.com/hybridcredit/credit-risk-frontend/feedback"
	"github.com/hybridcredit/credit-risk-frontend/poller"
	"github.com/hybridcredit/credit-risk-frontend/projector"
)

type testExampleLister struct {
	GetExamplesFunc func(ctx context.Context) ([]data.ExampleCase, error)
}

func newTestExampleLister(t *testing.T) *testExampleLister {
	return &testExampleLister{
		GetExamplesFunc: func(ctx context.Context) ([]data.ExampleCase, error) {
			t.Error("GetExamples should not be called")
			return nil, nil
		},
	}
}

func (l *testExampleLister) GetExamples(ctx context.Context) ([]data.ExampleCase, error) {
	return l.GetExamplesFunc(ctx)
}

type testSession struct {
	SetInputFunc   func(in *data.PredictionInput)
	SetResultFunc  func(r *data.PredictionResult)
	LastInputFunc  func() *data.PredictionInput
	LastResultFunc func() *data.PredictionResult
	ClearFunc      func()
}

func newTestSession(t *testing.T) *testSession {
	return &testSession{
		SetInputFunc: func(in *data.PredictionInput) {
			t.Error("SetInput should not be called")
		},
		SetResultFunc: func(r *data.PredictionResult) {
			t.Error("SetResult should not be called")
		},
		LastInputFunc: func() *data.PredictionInput {
			t.Error("LastInput should not be called")
			return nil
		},
		LastResultFunc: func() *data.PredictionResult {
			t.Error("LastResult should not be called")
			return nil
		},
		ClearFunc: func() {
			t.Error("Clear should not be called")
		},
	}
}

func (s *testSession) SetInput(in *data.PredictionInput) {
	s.SetInputFunc(in)
}

func (s *testSession) SetResult(r *data.PredictionResult) {
	s.SetResultFunc(r)
}

func (s *testSession) LastInput() *data.PredictionInput {
	return s.LastInputFunc()
}

func (s *testSession) LastResult() *data.PredictionResult {
	return s.LastResultFunc()
}

func (s *testSession) Clear() {
	s.ClearFunc()
}

type testStatusReader struct {
	SnapshotFunc func() poller.Snapshot
}

func newTestStatusReader(t *testing.T) *testStatusReader {
	return &testStatusReader{
		SnapshotFunc: func() poller.Snapshot {
			t.Error("Snapshot should not be called")
			return poller.Snapshot{}
		},
	}
}

func (s *testStatusReader) Snapshot() poller.Snapshot {
	return s.SnapshotFunc()
}

type testComparer struct {
	CompareFunc func(ctx context.Context) (*projector.Comparison, error)
}

func newTestComparer(t *testing.T) *testComparer {
	return &testComparer{
		CompareFunc: func(ctx context.Context) (*projector.Comparison, error) {
			t.Error("Compare should not be called")
			return nil, nil
		},
	}
}

func (c *testComparer) Compare(ctx context.Context) (*projector.Comparison, error) {
	return c.CompareFunc(ctx)
}

type testRegionalLoader struct {
	LoadFunc func(ctx context.Context) (*projector.RegionalView, error)
}

func newTestRegionalLoader(t *testing.T) *testRegionalLoader {
	return &testRegionalLoader{
		LoadFunc: func(ctx context.Context) (*projector.RegionalView, error) {
			t.Error("Load should not be called")
			return nil, nil
		},
	}
}

func (l *testRegionalLoader) Load(ctx context.Context) (*projector.RegionalView, error) {
	return l.LoadFunc(ctx)
}

type testReportGenerator struct {
	TextFunc          func(r *data.PredictionResult, now time.Time) (string, error)
	RegionalCSVFunc   func(rows []projector.RegionRow) (string, error)
	WriteArtifactFunc func(ctx context.Context, name, content string) error
}

func newTestReportGenerator(t *testing.T) *testReportGenerator {
	return &testReportGenerator{
		TextFunc: func(r *data.PredictionResult, now time.Time) (string, error) {
			t.Error("Text should not be called")
			return "", nil
		},
		RegionalCSVFunc: func(rows []projector.RegionRow) (string, error) {
			t.Error("RegionalCSV should not be called")
			return "", nil
		},
		WriteArtifactFunc: func(ctx context.Context, name, content string) error {
			t.Error("WriteArtifact should not be called")
			return nil
		},
	}
}

func (g *testReportGenerator) Text(r *data.PredictionResult, now time.Time) (string, error) {
	return g.TextFunc(r, now)
}

func (g *testReportGenerator) RegionalCSV(rows []projector.RegionRow) (string, error) {
	return g.RegionalCSVFunc(rows)
}

func (g *testReportGenerator) WriteArtifact(ctx context.Context, name, content string) error {
	return g.WriteArtifactFunc(ctx, name, content)
}

type testFeedbackRecorder struct {
	RecordFunc func(ctx context.Context, result *data.PredictionResult, actual data.RiskClass) (*feedback.Receipt, error)
}

func newTestFeedbackRecorder(t *testing.T) *testFeedbackRecorder {
	return &testFeedbackRecorder{
		RecordFunc: func(ctx context.Context, result *data.PredictionResult, actual data.RiskClass) (*feedback.Receipt, error) {
			t.Error("Record should not be called")
			return nil, nil
		},
	}
}

func (r *testFeedbackRecorder) Record(ctx context.Context, result *data.PredictionResult, actual data.RiskClass) (*feedback.Receipt, error) {
	return r.RecordFunc(ctx, result, actual)
}

type testModelAdmin struct {
	DeleteModelFunc func(ctx context.Context) error
}

func newTestModelAdmin(t *testing.T) *testModelAdmin {
	return &testModelAdmin{
		DeleteModelFunc: func(ctx context.Context) error {
			t.Error("DeleteModel should not be called")
			return nil
		},
	}
}

func (a *testModelAdmin) DeleteModel(ctx context.Context) error {
	return a.DeleteModelFunc(ctx)
}

type testAnalyticsSource struct {
	FeedbackStatsFunc func(ctx context.Context) (*data.FeedbackMetrics, error)
	ModelInfoFunc     func(ctx context.Context) (*data.ModelInfo, error)
}

func newTestAnalyticsSource(t *testing.T) *testAnalyticsSource {
	return &testAnalyticsSource{
		FeedbackStatsFunc: func(ctx context.Context) (*data.FeedbackMetrics, error) {
			t.Error("FeedbackStats should not be called")
			return nil, nil
		},
		ModelInfoFunc: func(ctx context.Context) (*data.ModelInfo, error) {
			t.Error("ModelInfo should not be called")
			return nil, nil
		},
	}
}

func (s *testAnalyticsSource) FeedbackStats(ctx context.Context) (*data.FeedbackMetrics, error) {
	return s.FeedbackStatsFunc(ctx)
}

func (s *testAnalyticsSource) ModelInfo(ctx context.Context) (*data.ModelInfo, error) {
	return s.ModelInfoFunc(ctx)
}
