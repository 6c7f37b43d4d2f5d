package poller

import (
	"context"
	"time"

	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"

	"github.com/hybridcredit/credit-risk-frontend/data"
)

// Poller refreshes the API health and the live external factors on a fixed
// interval, independent of user actions. It stops when its context is
// cancelled at shutdown.
type Poller struct {
	Health   HealthSource
	Factors  FactorSource
	Status   *Status
	Region   string
	Interval time.Duration
}

func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	p.Refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Refresh(ctx)
		}
	}
}

// Refresh performs one poll. Failures are swallowed into degraded status
// rather than surfaced as notifications.
func (p *Poller) Refresh(ctx context.Context) {
	l := ctxlogrus.Get(ctx)

	health, err := p.Health.Health(ctx)
	if err != nil {
		l.Warnf("Health refresh failed: %s", err)
		p.Status.SetDegraded()
		return
	}

	var factors *data.ExternalFactors
	if p.Factors != nil && p.Region != "" {
		factors, err = p.Factors.ExternalFactors(ctx, p.Region)
		if err != nil {
			l.Warnf("Live factor refresh failed: %s", err)
			factors = nil
		}
	}

	p.Status.SetHealthy(health.ModelTrained, factors)
}
