package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"restroomfinder/pkg/client"
)

func TestRandomName_Shape(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z][a-z]+[A-Z][a-z]+\d{1,3}$`)
	for i := 0; i < 50; i++ {
		assert.Regexp(t, pattern, RandomName())
	}
}

func TestEnsureUser_CreatesOnServer(t *testing.T) {
	var received string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users", r.URL.Path)
		var body struct {
			Username string `json:"username"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		received = body.Username
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 42, "username": body.Username})
	}))
	defer srv.Close()

	store := NewStore(client.New(srv.URL))

	u, err := store.EnsureUser(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(42), u.ID)
	assert.Equal(t, received, u.Username)
	assert.False(t, store.LocalOnly())

	// A second call reuses the identity instead of creating another.
	again, err := store.EnsureUser(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, u.ID, again.ID)
}

func TestEnsureUser_FallsBackLocally(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	srv.Close() // unreachable on purpose

	store := NewStore(client.New(srv.URL))

	u, err := store.EnsureUser(context.Background())
	assert.NoError(t, err)
	assert.NotEmpty(t, u.Username)
	assert.Negative(t, u.ID)
	assert.True(t, store.LocalOnly())
}

func TestStore_SetAndClear(t *testing.T) {
	store := NewStore(client.New("http://localhost:0"))

	store.Set(&client.User{ID: 7, Username: "alice"})
	assert.Equal(t, int64(7), store.Current().ID)

	store.Clear()
	assert.Nil(t, store.Current())
}
