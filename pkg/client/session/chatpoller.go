package session

import (
	"context"
	"log"
	"sync"
	"time"

	"restroomfinder/pkg/client"
)

const (
	defaultChatInterval   = 3 * time.Second
	defaultReconcileDelay = time.Second
)

// ChatPoller keeps a chat transcript approximately fresh. Sending appends
// an optimistic local message immediately and schedules a re-fetch shortly
// after; the server copy then supersedes the optimistic one wholesale.
type ChatPoller struct {
	client     *client.Client
	restroomID int64
	userID     int64

	interval       time.Duration
	reconcileDelay time.Duration
	onUpdate       func([]client.ChatMessage)

	mu         sync.Mutex
	messages   []client.ChatMessage
	optimistic []client.ChatMessage
	nextTempID int64
}

type ChatPollerOption func(*ChatPoller)

// WithChatInterval overrides the 3 s refresh cadence.
func WithChatInterval(d time.Duration) ChatPollerOption {
	return func(p *ChatPoller) { p.interval = d }
}

// WithReconcileDelay overrides the post-send re-fetch delay.
func WithReconcileDelay(d time.Duration) ChatPollerOption {
	return func(p *ChatPoller) { p.reconcileDelay = d }
}

// WithOnChatUpdate registers a snapshot callback fired after every refresh
// and every optimistic append.
func WithOnChatUpdate(fn func([]client.ChatMessage)) ChatPollerOption {
	return func(p *ChatPoller) { p.onUpdate = fn }
}

func NewChatPoller(c *client.Client, restroomID, userID int64, opts ...ChatPollerOption) *ChatPoller {
	p := &ChatPoller{
		client:         c,
		restroomID:     restroomID,
		userID:         userID,
		interval:       defaultChatInterval,
		reconcileDelay: defaultReconcileDelay,
		nextTempID:     -1,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run fetches immediately, then on every interval, until the context ends.
func (p *ChatPoller) Run(ctx context.Context) {
	p.refresh(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.refresh(ctx)
		}
	}
}

func (p *ChatPoller) refresh(ctx context.Context) {
	messages, err := p.client.ChatMessages(ctx, p.restroomID)
	if err != nil {
		if ctx.Err() == nil {
			log.Printf("chat_refresh_failed restroom_id=%d err=%v", p.restroomID, err)
		}
		return
	}

	p.mu.Lock()
	p.messages = messages
	// Server-assigned rows supersede the optimistic copies.
	p.optimistic = nil
	snapshot := p.snapshotLocked()
	onUpdate := p.onUpdate
	p.mu.Unlock()

	if onUpdate != nil {
		onUpdate(snapshot)
	}
}

// Send posts a message, showing it locally right away with a temporary
// negative id, then re-fetches after a short delay to reconcile.
func (p *ChatPoller) Send(ctx context.Context, text, messageType string) error {
	if messageType == "" {
		messageType = "normal"
	}

	p.mu.Lock()
	temp := client.ChatMessage{
		ID:          p.nextTempID,
		UserID:      p.userID,
		Message:     text,
		MessageType: messageType,
		CreatedAt:   time.Now(),
	}
	p.nextTempID--
	p.optimistic = append(p.optimistic, temp)
	snapshot := p.snapshotLocked()
	onUpdate := p.onUpdate
	p.mu.Unlock()

	if onUpdate != nil {
		onUpdate(snapshot)
	}

	err := p.client.SendChatMessage(ctx, client.SendChatMessageRequest{
		RestroomID:  p.restroomID,
		UserID:      p.userID,
		Message:     text,
		MessageType: messageType,
	})
	if err != nil {
		return err
	}

	timer := time.NewTimer(p.reconcileDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil
	case <-timer.C:
		p.refresh(ctx)
	}
	return nil
}

// Messages returns the merged server + optimistic transcript.
func (p *ChatPoller) Messages() []client.ChatMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

func (p *ChatPoller) snapshotLocked() []client.ChatMessage {
	out := make([]client.ChatMessage, 0, len(p.messages)+len(p.optimistic))
	out = append(out, p.messages...)
	out = append(out, p.optimistic...)
	return out
}
