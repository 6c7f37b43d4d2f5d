package feedback

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/hybridcredit/credit-risk-frontend/data"
)

// Recorder captures a user-asserted ground-truth label against a prior
// prediction and forwards it to the risk API. Nothing is retained locally
// after submission.
type Recorder struct {
	Submitter Submitter
	Now       func() time.Time
}

// Receipt reports whether the asserted outcome matched the original
// prediction. Aggregate accuracy stays server-side.
type Receipt struct {
	EvaluationID string
	Predicted    data.RiskClass
	Actual       data.RiskClass
	Matched      bool
}

func (rec *Recorder) Record(ctx context.Context, result *data.PredictionResult, actual data.RiskClass) (*Receipt, error) {
	if result == nil {
		return nil, &data.PreconditionError{Action: "recording feedback"}
	}
	if !actual.Known() {
		return nil, errors.Errorf("unknown risk class %q", actual)
	}

	now := time.Now
	if rec.Now != nil {
		now = rec.Now
	}

	// Time-based, not guaranteed globally unique.
	entry := &data.FeedbackEntry{
		EvaluationID: fmt.Sprintf("EVAL-%d", now().UnixMilli()),
		Predicted:    result.Class,
		Actual:       actual,
		Original:     result,
	}

	if err := rec.Submitter.SubmitFeedback(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "couldn't submit feedback")
	}

	return &Receipt{
		EvaluationID: entry.EvaluationID,
		Predicted:    result.Class,
		Actual:       actual,
		Matched:      result.Class == actual,
	}, nil
}
