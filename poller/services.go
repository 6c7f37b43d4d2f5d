package poller

import (
	"context"

	"github.com/hybridcredit/credit-risk-frontend/data"
)

type HealthSource interface {
	Health(ctx context.Context) (*data.HealthStatus, error)
}

type FactorSource interface {
	ExternalFactors(ctx context.Context, region string) (*data.ExternalFactors, error)
}
