package feedback

import (
	"context"
	"testing"

	"github.com/hybridcredit/credit-risk-frontend/data"
)

type testSubmitter struct {
	SubmitFeedbackFunc func(ctx context.Context, entry *data.FeedbackEntry) error
}

func newTestSubmitter(t *testing.T) *testSubmitter {
	return &testSubmitter{
		SubmitFeedbackFunc: func(ctx context.Context, entry *data.FeedbackEntry) error {
			t.Error("SubmitFeedback should not be called")
			return nil
		},
	}
}

func (s *testSubmitter) SubmitFeedback(ctx context.Context, entry *data.FeedbackEntry) error {
	return s.SubmitFeedbackFunc(ctx, entry)
}
