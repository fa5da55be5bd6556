// Package session implements the restroom-usage workflow on top of the API
// client: anonymous identity, navigation and arrival detection, the payment
// gate, payment-status polling, the usage countdown and the chat and
// notification polling loops.
package session

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"

	"restroomfinder/pkg/client"
)

var (
	nameAdjectives = []string{"Happy", "Lucky", "Brave", "Smart", "Kind", "Cool", "Swift", "Bright"}
	nameNouns      = []string{"Lion", "Eagle", "Tiger", "Bear", "Wolf", "Fox", "Hawk", "Deer"}
)

// RandomName builds an anonymous display name like "SwiftHawk42".
func RandomName() string {
	adjective := nameAdjectives[rand.Intn(len(nameAdjectives))]
	noun := nameNouns[rand.Intn(len(nameNouns))]
	return fmt.Sprintf("%s%s%d", adjective, noun, rand.Intn(1000))
}

// Store owns the single user identity for a workflow run. Mutations happen
// only through explicit calls; there is no ambient global.
type Store struct {
	client *client.Client

	mu        sync.Mutex
	user      *client.User
	localOnly bool
}

func NewStore(c *client.Client) *Store {
	return &Store{client: c}
}

// Current returns the identity or nil when none exists yet.
func (s *Store) Current() *client.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// LocalOnly reports whether the identity was assigned without server
// acknowledgment.
func (s *Store) LocalOnly() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.localOnly
}

// Set installs an identity obtained elsewhere (login, registration).
func (s *Store) Set(u *client.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
	s.localOnly = false
}

// Clear drops the identity (logout).
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.localOnly = false
}

// EnsureUser returns the current identity, creating an anonymous one when
// absent. If the server is unreachable a purely local identity with a
// negative id is used so the workflow can continue offline and the
// fallback never collides with a server-assigned id.
func (s *Store) EnsureUser(ctx context.Context) (*client.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user != nil {
		u := *s.user
		return &u, nil
	}

	username := RandomName()
	u, err := s.client.CreateUser(ctx, username)
	if err != nil {
		log.Printf("random_user_create_failed username=%s err=%v", username, err)
		u = &client.User{
			ID:           -int64(rand.Intn(10000) + 1),
			Username:     username,
			IsRandomUser: true,
		}
		s.localOnly = true
	}
	s.user = u

	out := *u
	return &out, nil
}
