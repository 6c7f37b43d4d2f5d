package projector

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/hybridcredit/credit-risk-frontend/data"
)

// ComparisonProjector contrasts the hybrid model against its two single-method
// variants for the last submitted input.
type ComparisonProjector struct {
	Predictor Predictor
	Session   SessionReader
}

type ComparisonBar struct {
	Label      string
	Confidence float64
}

type Comparison struct {
	Hybrid    *data.PredictionResult
	MLOnly    *data.PredictionResult
	FuzzyOnly *data.PredictionResult
	Bars      []ComparisonBar
}

// Compare runs the three variants concurrently against the last submitted
// input and joins them once all settle. If any variant fails the whole
// comparison fails; no partial result is produced.
func (p *ComparisonProjector) Compare(ctx context.Context) (*Comparison, error) {
	in := p.Session.LastInput()
	if in == nil {
		return nil, &data.PreconditionError{Action: "comparing models"}
	}

	cmp := new(Comparison)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := p.Predictor.Predict(gctx, in)
		if err != nil {
			return errors.Wrap(err, "hybrid prediction failed")
		}
		cmp.Hybrid = r
		return nil
	})
	g.Go(func() error {
		r, err := p.Predictor.PredictOnlyML(gctx, in)
		if err != nil {
			return errors.Wrap(err, "ML-only prediction failed")
		}
		cmp.MLOnly = r
		return nil
	})
	g.Go(func() error {
		r, err := p.Predictor.PredictOnlyFuzzy(gctx, in)
		if err != nil {
			return errors.Wrap(err, "fuzzy-only prediction failed")
		}
		cmp.FuzzyOnly = r
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cmp.Bars = []ComparisonBar{
		{Label: "Híbrido", Confidence: barConfidence(cmp.Hybrid)},
		{Label: "Solo ML", Confidence: barConfidence(cmp.MLOnly)},
		{Label: "Solo Difuso", Confidence: barConfidence(cmp.FuzzyOnly)},
	}
	return cmp, nil
}

// A variant lacking a defined confidence charts as an empty bar, never a full one.
func barConfidence(r *data.PredictionResult) float64 {
	if r == nil || math.IsNaN(r.Confidence) || r.Confidence < 0 {
		return 0
	}
	return r.Confidence
}
