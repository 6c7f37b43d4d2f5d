package feedback

import (
	"context"

	"github.com/hybridcredit/credit-risk-frontend/data"
)

type Submitter interface {
	SubmitFeedback(ctx context.Context, entry *data.FeedbackEntry) error
}
