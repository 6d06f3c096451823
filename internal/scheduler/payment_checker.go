package scheduler

import (
	"context"
	"log"
	"time"

	"lomba_backend/internal/domain/entities"
	"lomba_backend/internal/usecase/interfaces"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/metricz"
)

const (
	defaultInterval       = 10 * time.Minute
	defaultPerItemTimeout = 30 * time.Second
	repairPageSize        = 100
)

// Sweep metric keys.
const (
	SweepsTotal          = metricz.Key("checker.sweeps.total")
	PaymentsCheckedTotal = metricz.Key("checker.payments.checked.total")
	ReconcileErrorsTotal = metricz.Key("checker.reconcile.errors.total")
	TeamsRepairedTotal   = metricz.Key("checker.teams.repaired.total")
)

// Reconciler drives a single payment through the lifecycle engine.
type Reconciler interface {
	Reconcile(ctx context.Context, p entities.Payment) error
}

// PaymentChecker is the recurring reconciliation sweep.
//
// Each run fetches every non-terminal payment and reconciles it against the
// provider independently: a failing item is logged and counted but never
// aborts the rest of the sweep, and each item runs under its own timeout so a
// hung provider call cannot stall the loop. A second pass re-marks teams
// whose COMPLETED payment landed but whose paid-flag write was lost.

type PaymentChecker struct {
	repo     interfaces.IPaymentRepository
	teamRepo interfaces.ITeamRepository
	engine   Reconciler

	interval       time.Duration
	perItemTimeout time.Duration
	clock          clockz.Clock
	metrics        *metricz.Registry
}

func NewPaymentChecker(repo interfaces.IPaymentRepository, teamRepo interfaces.ITeamRepository, engine Reconciler, interval time.Duration) *PaymentChecker {
	if interval <= 0 {
		interval = defaultInterval
	}
	registry := metricz.New()
	registry.Counter(SweepsTotal)
	registry.Counter(PaymentsCheckedTotal)
	registry.Counter(ReconcileErrorsTotal)
	registry.Counter(TeamsRepairedTotal)

	return &PaymentChecker{
		repo:           repo,
		teamRepo:       teamRepo,
		engine:         engine,
		interval:       interval,
		perItemTimeout: defaultPerItemTimeout,
		metrics:        registry,
	}
}

// WithClock sets a custom clock for testing.
func (c *PaymentChecker) WithClock(clock clockz.Clock) *PaymentChecker {
	c.clock = clock
	return c
}

func (c *PaymentChecker) getClock() clockz.Clock {
	if c.clock == nil {
		return clockz.RealClock
	}
	return c.clock
}

// Metrics returns the sweep counters.
func (c *PaymentChecker) Metrics() *metricz.Registry {
	return c.metrics
}

// Run loops until ctx is cancelled, sweeping once per interval.
func (c *PaymentChecker) Run(ctx context.Context) {
	log.Printf("[checker] started interval=%s", c.interval)
	clock := c.getClock()
	for {
		select {
		case <-ctx.Done():
			log.Printf("[checker] stopped: %v", ctx.Err())
			return
		case <-clock.After(c.interval):
			c.RunOnce(ctx)
		}
	}
}

// RunOnce executes a single reconciliation sweep.
func (c *PaymentChecker) RunOnce(ctx context.Context) {
	c.metrics.Counter(SweepsTotal).Inc()

	payments, err := c.repo.ListNonTerminal(ctx)
	if err != nil {
		log.Printf("[checker] listing non-terminal payments failed err=%v", err)
		return
	}
	log.Printf("[checker] sweep start payments=%d", len(payments))

	for _, p := range payments {
		c.metrics.Counter(PaymentsCheckedTotal).Inc()
		itemCtx, cancel := context.WithTimeout(ctx, c.perItemTimeout)
		if err := c.engine.Reconcile(itemCtx, p); err != nil {
			c.metrics.Counter(ReconcileErrorsTotal).Inc()
			log.Printf("[checker] reconcile failed payment_id=%s err=%v", p.ID, err)
		}
		cancel()
	}

	c.repairUnpaidTeams(ctx)
	log.Printf("[checker] sweep done")
}

// repairUnpaidTeams re-applies the team paid flag for COMPLETED payments. The
// flag write at completion time is best-effort; this pass makes it converge.
func (c *PaymentChecker) repairUnpaidTeams(ctx context.Context) {
	completed, _, err := c.repo.List(ctx, entities.PaymentStatusCompleted, 1, repairPageSize)
	if err != nil {
		log.Printf("[checker] listing completed payments failed err=%v", err)
		return
	}

	for _, p := range completed {
		team, err := c.teamRepo.GetByID(ctx, p.TeamID)
		if err != nil || team.ID == "" || team.Paid {
			continue
		}
		if err := c.teamRepo.MarkPaid(ctx, team.ID); err != nil {
			log.Printf("[checker] repairing paid flag failed team_id=%s err=%v", team.ID, err)
			continue
		}
		c.metrics.Counter(TeamsRepairedTotal).Inc()
		log.Printf("[checker] repaired paid flag team_id=%s payment_id=%s", team.ID, p.ID)
	}
}
