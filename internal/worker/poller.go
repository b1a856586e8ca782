// Package worker drives poll-based status reconciliation for hosts whose
// gateways deliver webhooks unreliably. The worker owns no session storage:
// the host supplies the pending sessions, the gateway supplies the truth.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/commercekit/payment-gateways/internal/provider"
)

// SessionRef identifies one host payment session awaiting settlement.
type SessionRef struct {
	SessionID     string
	ExternalID    string
	ProviderToken string
}

// SessionSource yields the host's pending sessions, most stale first.
type SessionSource interface {
	PendingSessions(ctx context.Context, limit int) ([]SessionRef, error)
}

// ResultSink receives the re-derived status for a session. The host applies
// its own state transition; the poller never interprets the status further.
type ResultSink interface {
	Apply(ctx context.Context, ref SessionRef, status provider.SessionStatus) error
}

type Poller struct {
	registry  *provider.Registry
	source    SessionSource
	sink      ResultSink
	interval  time.Duration
	batchSize int
	logger    *slog.Logger
}

func NewPoller(
	registry *provider.Registry,
	source SessionSource,
	sink ResultSink,
	interval time.Duration,
	batchSize int,
	logger *slog.Logger,
) *Poller {
	return &Poller{
		registry:  registry,
		source:    source,
		sink:      sink,
		interval:  interval,
		batchSize: batchSize,
		logger:    logger,
	}
}

func (p *Poller) Start(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info("starting status poller", "interval", p.interval, "batch_size", p.batchSize)

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("stopping status poller")
			return
		case <-ticker.C:
			p.run(ctx)
		}
	}
}

// RunOnce executes a single reconciliation cycle.
func (p *Poller) RunOnce(ctx context.Context) {
	p.run(ctx)
}

func (p *Poller) run(ctx context.Context) {
	refs, err := p.source.PendingSessions(ctx, p.batchSize)
	if err != nil {
		p.logger.Error("failed to fetch pending sessions", "error", err)
		return
	}

	if len(refs) == 0 {
		return
	}

	p.logger.Info("reconciling pending sessions", "count", len(refs))

	for _, ref := range refs {
		prov, ok := p.registry.Resolve(ref.ProviderToken)
		if !ok {
			p.logger.Error("pending session names unknown provider",
				"session_id", ref.SessionID,
				"token", ref.ProviderToken,
			)
			continue
		}

		// GetStatus degrades to ERROR instead of failing, so a gateway
		// outage surfaces to the host as a status, never as a crash.
		status := prov.GetStatus(ctx, ref.ExternalID)

		if err := p.sink.Apply(ctx, ref, status); err != nil {
			p.logger.Error("failed to apply reconciled status",
				"session_id", ref.SessionID,
				"status", status,
				"error", err,
			)
		}
	}
}
