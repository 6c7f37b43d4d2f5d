package session

import (
	"testing"

	"github.com/hybridcredit/credit-risk-frontend/data"
)

func TestStore_InputAndResult(t *testing.T) {
	t.Parallel()

	s := NewStore()
	if s.LastInput() != nil || s.LastResult() != nil {
		t.Errorf("Expected empty initial state")
	}

	in := &data.PredictionInput{Amount: 15000}
	r := &data.PredictionResult{Class: data.RiskLow}
	s.SetInput(in)
	s.SetResult(r)

	if s.LastInput() != in {
		t.Errorf("Incorrect last input; was %+v", s.LastInput())
	}
	if s.LastResult() != r {
		t.Errorf("Incorrect last result; was %+v", s.LastResult())
	}
}

func TestStore_InputReplacedWithoutResult(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.SetInput(&data.PredictionInput{Amount: 15000})
	s.SetResult(&data.PredictionResult{Class: data.RiskLow})

	// A failed submission records the input but keeps the prior result.
	second := &data.PredictionInput{Amount: 99000}
	s.SetInput(second)

	if s.LastInput() != second {
		t.Errorf("Incorrect last input; was %+v", s.LastInput())
	}
	if s.LastResult() == nil || s.LastResult().Class != data.RiskLow {
		t.Errorf("Prior result should survive a new input; was %+v", s.LastResult())
	}
}

func TestStore_Clear(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.SetInput(&data.PredictionInput{})
	s.SetResult(&data.PredictionResult{})
	s.Clear()

	if s.LastInput() != nil || s.LastResult() != nil {
		t.Errorf("Expected cleared state")
	}
}
