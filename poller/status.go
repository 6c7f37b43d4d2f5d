package poller

import (
	"sync"
	"time"

	"github.com/hybridcredit/credit-risk-frontend/data"
)

// Status is the shared holder the background refresh writes and views read.
// Failures degrade it quietly; they never reach the notification channel.
type Status struct {
	mu           sync.RWMutex
	modelTrained bool
	degraded     bool
	lastChecked  time.Time
	factors      *data.ExternalFactors
}

type Snapshot struct {
	ModelTrained bool
	Degraded     bool
	LastChecked  time.Time
	Factors      *data.ExternalFactors
}

func NewStatus() *Status {
	return &Status{}
}

func (s *Status) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		ModelTrained: s.modelTrained,
		Degraded:     s.degraded,
		LastChecked:  s.lastChecked,
		Factors:      s.factors,
	}
}

func (s *Status) SetHealthy(modelTrained bool, factors *data.ExternalFactors) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modelTrained = modelTrained
	s.degraded = false
	s.lastChecked = time.Now()
	if factors != nil {
		s.factors = factors
	}
}

func (s *Status) SetDegraded() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.degraded = true
	s.lastChecked = time.Now()
}
