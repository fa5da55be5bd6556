package session

import (
	"context"
	"log"
	"time"

	"restroomfinder/pkg/client"
)

// PollOutcome is the terminal state of one payment-status polling run.
type PollOutcome int

const (
	// PollConfirmed: the payment was confirmed and start-using was
	// attempted.
	PollConfirmed PollOutcome = iota
	// PollTimedOut: the attempt budget ran out with no confirmation.
	PollTimedOut
	// PollCancelled: the context was cancelled before a terminal state.
	PollCancelled
)

const (
	defaultPollInterval = 10 * time.Second
	defaultPollAttempts = 12
)

// StatusPoller waits for a transfer payment to be confirmed: one check
// immediately, then one per interval, at most maxAttempts requests in
// total. On confirmation it starts the usage session itself.
type StatusPoller struct {
	client      *client.Client
	userID      int64
	restroomID  int64
	interval    time.Duration
	maxAttempts int

	attempts int
}

type StatusPollerOption func(*StatusPoller)

// WithPollInterval overrides the 10 s default.
func WithPollInterval(d time.Duration) StatusPollerOption {
	return func(p *StatusPoller) { p.interval = d }
}

// WithMaxAttempts overrides the budget of 12 checks.
func WithMaxAttempts(n int) StatusPollerOption {
	return func(p *StatusPoller) { p.maxAttempts = n }
}

func NewStatusPoller(c *client.Client, userID, restroomID int64, opts ...StatusPollerOption) *StatusPoller {
	p := &StatusPoller{
		client:      c,
		userID:      userID,
		restroomID:  restroomID,
		interval:    defaultPollInterval,
		maxAttempts: defaultPollAttempts,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Attempts reports how many status requests have been sent.
func (p *StatusPoller) Attempts() int { return p.attempts }

// Run blocks until a terminal state. Cancelling the context stops polling
// immediately and yields PollCancelled. A failed status check is logged
// and counts against the budget; it is not terminal on its own.
// When the payment confirms, Run calls start-using itself: the returned
// error carries a start-using failure alongside PollConfirmed.
func (p *StatusPoller) Run(ctx context.Context) (PollOutcome, error) {
	if p.check(ctx) {
		return PollConfirmed, p.client.StartUsing(ctx, p.userID, p.restroomID)
	}
	if ctx.Err() != nil {
		return PollCancelled, nil
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for p.attempts < p.maxAttempts {
		select {
		case <-ctx.Done():
			return PollCancelled, nil
		case <-ticker.C:
			if p.check(ctx) {
				return PollConfirmed, p.client.StartUsing(ctx, p.userID, p.restroomID)
			}
			if ctx.Err() != nil {
				return PollCancelled, nil
			}
		}
	}

	return PollTimedOut, nil
}

func (p *StatusPoller) check(ctx context.Context) bool {
	p.attempts++
	status, err := p.client.PaymentStatus(ctx, p.userID, p.restroomID)
	if err != nil {
		if ctx.Err() == nil {
			log.Printf("payment_status_check_failed attempt=%d err=%v", p.attempts, err)
		}
		return false
	}
	return status.PaymentConfirmed
}
