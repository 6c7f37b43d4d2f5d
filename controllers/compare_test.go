package controllers

import (
	"context"
	"testing"

	"github.com/hybridcredit/credit-risk-frontend/data"
	"github.com/hybridcredit/credit-risk-frontend/projector"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	comparer := newTestComparer(t)
	comparer.CompareFunc = func(ctx context.Context) (*projector.Comparison, error) {
		return &projector.Comparison{
			Bars: []projector.ComparisonBar{
				{Label: "Híbrido", Confidence: 84.5},
				{Label: "Solo ML", Confidence: 79.2},
				{Label: "Solo Difuso", Confidence: 61.0},
			},
		}, nil
	}

	c := &Compare{Comparer: comparer}
	result := c.handle(context.Background())

	if result.Err != nil {
		t.Errorf("Unexpected error: %s", result.Err)
	}
	if result.Comparison == nil || len(result.Comparison.Bars) != 3 {
		t.Errorf("Incorrect comparison; was %+v", result.Comparison)
	}
}

func TestCompare_NoPriorInput(t *testing.T) {
	t.Parallel()

	comparer := newTestComparer(t)
	comparer.CompareFunc = func(ctx context.Context) (*projector.Comparison, error) {
		return nil, &data.PreconditionError{Action: "comparing models"}
	}

	c := &Compare{Comparer: comparer}
	result := c.handle(context.Background())

	if _, ok := result.Err.(*data.PreconditionError); !ok {
		t.Errorf("Expected PreconditionError, was %T: %v", result.Err, result.Err)
	}
	if result.Comparison != nil {
		t.Errorf("Expected nil comparison, got comparison")
	}
}
