package session

import (
	"context"
	"log"
	"sync"

	"restroomfinder/internal/pkg/geo"
	"restroomfinder/pkg/client"
)

// ArrivalThresholdMeters is the distance at which arrival is declared.
const ArrivalThresholdMeters = 50.0

// LocationProvider yields live positions. The channel closes when the
// provider stops (permission revoked, watch torn down).
type LocationProvider interface {
	Positions(ctx context.Context) (<-chan geo.Point, error)
}

// Tracker watches the distance to a target restroom and declares arrival
// exactly once, either when the position crosses the threshold or when the
// user says so manually.
type Tracker struct {
	client    *client.Client
	restroom  client.Restroom
	target    geo.Point
	threshold float64
	onArrival func()

	mu      sync.Mutex
	arrived bool
}

type TrackerOption func(*Tracker)

// WithArrivalThreshold overrides the 50 m default.
func WithArrivalThreshold(meters float64) TrackerOption {
	return func(t *Tracker) { t.threshold = meters }
}

// NewTracker builds a tracker for one navigation session. onArrival runs at
// most once, from whichever trigger fires first.
func NewTracker(c *client.Client, restroom client.Restroom, onArrival func(), opts ...TrackerOption) *Tracker {
	t := &Tracker{
		client:    c,
		restroom:  restroom,
		target:    geo.Point{Latitude: restroom.Latitude, Longitude: restroom.Longitude},
		threshold: ArrivalThresholdMeters,
		onArrival: onArrival,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NotifyNavigationStarted is the fire-and-forget owner ping sent on screen
// entry. Failures are logged and never block the flow.
func (t *Tracker) NotifyNavigationStarted(ctx context.Context, userID *int64) {
	if err := t.client.NotifyNavigation(ctx, t.restroom.ID, userID); err != nil {
		log.Printf("navigation_notify_failed restroom_id=%d err=%v", t.restroom.ID, err)
	}
}

// Update feeds one position and returns the distance to the target.
func (t *Tracker) Update(p geo.Point) float64 {
	distance := geo.Distance(p, t.target)
	if distance <= t.threshold {
		t.declareArrival()
	}
	return distance
}

// ManualArrive is the "I have arrived" affordance: same downstream effect
// as crossing the threshold.
func (t *Tracker) ManualArrive() {
	t.declareArrival()
}

func (t *Tracker) declareArrival() {
	t.mu.Lock()
	if t.arrived {
		t.mu.Unlock()
		return
	}
	t.arrived = true
	t.mu.Unlock()

	if t.onArrival != nil {
		t.onArrival()
	}
}

func (t *Tracker) Arrived() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.arrived
}

// Track consumes positions from the provider until the context is done or
// the provider's channel closes. It returns the provider error, if any,
// without starting tracking.
func (t *Tracker) Track(ctx context.Context, provider LocationProvider) error {
	positions, err := provider.Positions(ctx)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case p, ok := <-positions:
			if !ok {
				return nil
			}
			t.Update(p)
		}
	}
}

// NotifyArrived is the fire-and-forget owner ping once arrival happened.
func (t *Tracker) NotifyArrived(ctx context.Context, userID *int64) {
	if err := t.client.NotifyArrival(ctx, t.restroom.ID, userID); err != nil {
		log.Printf("arrival_notify_failed restroom_id=%d err=%v", t.restroom.ID, err)
	}
}
