package session

import (
	"context"
	"log"

	"restroomfinder/pkg/client"
)

// UsageSession wraps an active occupancy window: the countdown plus the
// in-session actions (supplies, SOS, chat) and the finish transition.
type UsageSession struct {
	client   *client.Client
	store    *Store
	restroom client.Restroom

	Countdown *Countdown

	// blockOnStopFailure controls the finish semantics: when false the
	// session always ends client-side and a failed stop-using call is only
	// logged; when true the failure is returned and the session stays open.
	blockOnStopFailure bool
}

type UsageOption func(*UsageSession)

// WithBlockOnStopFailure makes Finish return stop-using errors instead of
// swallowing them.
func WithBlockOnStopFailure() UsageOption {
	return func(s *UsageSession) { s.blockOnStopFailure = true }
}

// WithCountdown substitutes a custom-configured countdown.
func WithCountdown(c *Countdown) UsageOption {
	return func(s *UsageSession) { s.Countdown = c }
}

func NewUsageSession(c *client.Client, store *Store, restroom client.Restroom, opts ...UsageOption) *UsageSession {
	s := &UsageSession{
		client:    c,
		store:     store,
		restroom:  restroom,
		Countdown: NewCountdown(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *UsageSession) userID() *int64 {
	if u := s.store.Current(); u != nil {
		id := u.ID
		return &id
	}
	return nil
}

// RequestPaper sends a paper-request chat message and pings the owner.
// Both calls are best effort.
func (s *UsageSession) RequestPaper(ctx context.Context) {
	if u := s.store.Current(); u != nil {
		err := s.client.SendChatMessage(ctx, client.SendChatMessageRequest{
			RestroomID:  s.restroom.ID,
			UserID:      u.ID,
			Message:     "Cần giấy vệ sinh",
			MessageType: "paper_request",
		})
		if err != nil {
			log.Printf("paper_request_chat_failed restroom_id=%d err=%v", s.restroom.ID, err)
		}
	}
	if err := s.client.NotifyOwner(ctx, s.restroom.ID, s.userID(), "paper_request", "Cần giấy vệ sinh"); err != nil {
		log.Printf("paper_request_notify_failed restroom_id=%d err=%v", s.restroom.ID, err)
	}
}

// SOS sends an sos chat message and an urgent owner notification. The
// confirmation dialog is the caller's responsibility.
func (s *UsageSession) SOS(ctx context.Context) {
	if u := s.store.Current(); u != nil {
		err := s.client.SendChatMessage(ctx, client.SendChatMessageRequest{
			RestroomID:  s.restroom.ID,
			UserID:      u.ID,
			Message:     "SOS - Cần hỗ trợ khẩn cấp!",
			MessageType: "sos",
		})
		if err != nil {
			log.Printf("sos_chat_failed restroom_id=%d err=%v", s.restroom.ID, err)
		}
	}
	if err := s.client.NotifyOwner(ctx, s.restroom.ID, s.userID(), "sos", "SOS - Cần hỗ trợ khẩn cấp!"); err != nil {
		log.Printf("sos_notify_failed restroom_id=%d err=%v", s.restroom.ID, err)
	}
}

// OpenChat pings the owner that a conversation started. The caller then
// attaches a ChatPoller.
func (s *UsageSession) OpenChat(ctx context.Context) {
	if err := s.client.NotifyOwner(ctx, s.restroom.ID, s.userID(), "chat_started", "Đã bắt đầu trò chuyện"); err != nil {
		log.Printf("chat_started_notify_failed restroom_id=%d err=%v", s.restroom.ID, err)
	}
}

// Finish stops the countdown and calls stop-using. With the default
// configuration the session ends client-side even when the remote call
// fails.
func (s *UsageSession) Finish(ctx context.Context) error {
	s.Countdown.Stop()

	u := s.store.Current()
	if u == nil {
		return nil
	}

	if err := s.client.StopUsing(ctx, u.ID); err != nil {
		if s.blockOnStopFailure {
			return err
		}
		log.Printf("stop_using_failed user_id=%d err=%v", u.ID, err)
	}
	return nil
}

// DeclineExtension ends the session exactly like a manual finish.
func (s *UsageSession) DeclineExtension(ctx context.Context) error {
	return s.Finish(ctx)
}
