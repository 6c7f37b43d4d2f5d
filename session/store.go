// Package session holds the most recent submitted input and result for the
// single active user session. The frontend serves one operator at a time;
// state is process-wide, reset only by explicit user action, and never
// mutated by background refreshes.
package session

import (
	"sync"

	"github.com/hybridcredit/credit-risk-frontend/data"
)

type Store struct {
	mu         sync.Mutex
	lastInput  *data.PredictionInput
	lastResult *data.PredictionResult
}

func NewStore() *Store {
	return &Store{}
}

// SetInput records the submitted input. It is called on every submission,
// whether or not the prediction downstream succeeds.
func (s *Store) SetInput(in *data.PredictionInput) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastInput = in
}

// SetResult records a successful prediction. Failed submissions leave the
// previous result in place.
func (s *Store) SetResult(r *data.PredictionResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastResult = r
}

func (s *Store) LastInput() *data.PredictionInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastInput
}

func (s *Store) LastResult() *data.PredictionResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastResult
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastInput = nil
	s.lastResult = nil
}
