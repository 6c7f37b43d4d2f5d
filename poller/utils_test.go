package poller

import (
	"context"
	"testing"

	"github.com/hybridcredit/credit-risk-frontend/data"
)

type testHealthSource struct {
	HealthFunc func(ctx context.Context) (*data.HealthStatus, error)
}

func newTestHealthSource(t *testing.T) *testHealthSource {
	return &testHealthSource{
		HealthFunc: func(ctx context.Context) (*data.HealthStatus, error) {
			t.Error("Health should not be called")
			return nil, nil
		},
	}
}

func (s *testHealthSource) Health(ctx context.Context) (*data.HealthStatus, error) {
	return s.HealthFunc(ctx)
}

type testFactorSource struct {
	ExternalFactorsFunc func(ctx context.Context, region string) (*data.ExternalFactors, error)
}

func newTestFactorSource(t *testing.T) *testFactorSource {
	return &testFactorSource{
		ExternalFactorsFunc: func(ctx context.Context, region string) (*data.ExternalFactors, error) {
			t.Error("ExternalFactors should not be called")
			return nil, nil
		},
	}
}

func (s *testFactorSource) ExternalFactors(ctx context.Context, region string) (*data.ExternalFactors, error) {
	return s.ExternalFactorsFunc(ctx, region)
}
