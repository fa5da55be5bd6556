package session

import (
	"context"
	"log"
	"sync"
	"time"

	"restroomfinder/pkg/client"
)

const defaultNotificationInterval = 30 * time.Second

// NotificationPoller keeps an owner's notification feed fresh. Marking an
// item read flips it locally at once; the remote call is fire and forget.
type NotificationPoller struct {
	client   *client.Client
	email    string
	interval time.Duration
	onUpdate func([]client.Notification)

	mu    sync.Mutex
	items []client.Notification
}

type NotificationPollerOption func(*NotificationPoller)

// WithNotificationInterval overrides the 30 s cadence.
func WithNotificationInterval(d time.Duration) NotificationPollerOption {
	return func(p *NotificationPoller) { p.interval = d }
}

func WithOnNotificationsUpdate(fn func([]client.Notification)) NotificationPollerOption {
	return func(p *NotificationPoller) { p.onUpdate = fn }
}

func NewNotificationPoller(c *client.Client, email string, opts ...NotificationPollerOption) *NotificationPoller {
	p := &NotificationPoller{
		client:   c,
		email:    email,
		interval: defaultNotificationInterval,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run fetches immediately, then on every interval, until the context ends.
func (p *NotificationPoller) Run(ctx context.Context) {
	p.Refresh(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Refresh(ctx)
		}
	}
}

// Refresh is also the screen-focus hook.
func (p *NotificationPoller) Refresh(ctx context.Context) {
	items, err := p.client.OwnerNotifications(ctx, p.email)
	if err != nil {
		if ctx.Err() == nil {
			log.Printf("notifications_refresh_failed email=%s err=%v", p.email, err)
		}
		return
	}

	p.mu.Lock()
	p.items = items
	snapshot := append([]client.Notification(nil), items...)
	onUpdate := p.onUpdate
	p.mu.Unlock()

	if onUpdate != nil {
		onUpdate(snapshot)
	}
}

// MarkRead updates the local copy immediately and issues the remote call
// in the background.
func (p *NotificationPoller) MarkRead(ctx context.Context, id int64) {
	p.mu.Lock()
	for i := range p.items {
		if p.items[i].ID == id {
			p.items[i].IsRead = true
		}
	}
	snapshot := append([]client.Notification(nil), p.items...)
	onUpdate := p.onUpdate
	p.mu.Unlock()

	if onUpdate != nil {
		onUpdate(snapshot)
	}

	go func() {
		if err := p.client.MarkNotificationRead(ctx, id); err != nil {
			log.Printf("notification_mark_read_failed id=%d err=%v", id, err)
		}
	}()
}

// Items returns the current feed snapshot.
func (p *NotificationPoller) Items() []client.Notification {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]client.Notification(nil), p.items...)
}
