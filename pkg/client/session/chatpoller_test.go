package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"restroomfinder/pkg/client"
)

type chatServer struct {
	*httptest.Server

	mu       sync.Mutex
	nextID   int64
	messages []client.ChatMessage
}

func newChatServer(t *testing.T) *chatServer {
	cs := &chatServer{nextID: 1}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat/messages/", func(w http.ResponseWriter, r *http.Request) {
		cs.mu.Lock()
		defer cs.mu.Unlock()
		_ = json.NewEncoder(w).Encode(cs.messages)
	})
	mux.HandleFunc("/api/chat/messages", func(w http.ResponseWriter, r *http.Request) {
		var req client.SendChatMessageRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		cs.mu.Lock()
		cs.messages = append(cs.messages, client.ChatMessage{
			ID:          cs.nextID,
			UserID:      req.UserID,
			Message:     req.Message,
			MessageType: req.MessageType,
			CreatedAt:   time.Now(),
		})
		cs.nextID++
		cs.mu.Unlock()

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	cs.Server = httptest.NewServer(mux)
	t.Cleanup(cs.Server.Close)
	return cs
}

func TestChatPoller_SendShowsOptimisticCopyImmediately(t *testing.T) {
	cs := newChatServer(t)

	var firstSnapshot []client.ChatMessage
	var once sync.Once
	captured := make(chan struct{})
	p := NewChatPoller(client.New(cs.URL), 2, 1,
		WithReconcileDelay(time.Hour),
		WithOnChatUpdate(func(msgs []client.ChatMessage) {
			once.Do(func() {
				firstSnapshot = msgs
				close(captured)
			})
		}))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		_ = p.Send(ctx, "xin chào", "")
	}()

	select {
	case <-captured:
	case <-time.After(time.Second):
		t.Fatal("optimistic update never fired")
	}
	cancel()

	assert.Len(t, firstSnapshot, 1)
	assert.Equal(t, int64(-1), firstSnapshot[0].ID)
	assert.Equal(t, "xin chào", firstSnapshot[0].Message)
	assert.Equal(t, "normal", firstSnapshot[0].MessageType)
}

func TestChatPoller_ReconcileReplacesOptimisticEntries(t *testing.T) {
	cs := newChatServer(t)
	p := NewChatPoller(client.New(cs.URL), 2, 1,
		WithReconcileDelay(10*time.Millisecond))

	err := p.Send(context.Background(), "xin chào", "")
	assert.NoError(t, err)

	msgs := p.Messages()
	assert.Len(t, msgs, 1)
	assert.Equal(t, int64(1), msgs[0].ID)
	assert.Equal(t, "xin chào", msgs[0].Message)
}

func TestChatPoller_TempIDsDescend(t *testing.T) {
	cs := newChatServer(t)
	p := NewChatPoller(client.New(cs.URL), 2, 1,
		WithReconcileDelay(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{}, 2)
	for _, text := range []string{"một", "hai"} {
		text := text
		go func() {
			_ = p.Send(ctx, text, "")
			done <- struct{}{}
		}()
	}

	assert.Eventually(t, func() bool {
		return len(p.Messages()) == 2
	}, time.Second, 5*time.Millisecond)

	ids := map[int64]bool{}
	for _, m := range p.Messages() {
		ids[m.ID] = true
	}
	assert.True(t, ids[-1])
	assert.True(t, ids[-2])
	cancel()
	<-done
	<-done
}

func TestChatPoller_RunPollsTranscript(t *testing.T) {
	cs := newChatServer(t)
	cs.mu.Lock()
	cs.messages = []client.ChatMessage{
		{ID: 1, UserID: 9, Message: "chủ nhà đây", MessageType: "normal"},
	}
	cs.mu.Unlock()

	p := NewChatPoller(client.New(cs.URL), 2, 1,
		WithChatInterval(5*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	assert.Eventually(t, func() bool {
		return len(p.Messages()) == 1
	}, time.Second, 5*time.Millisecond)

	cs.mu.Lock()
	cs.messages = append(cs.messages, client.ChatMessage{
		ID: 2, UserID: 9, Message: "có ngay", MessageType: "normal",
	})
	cs.mu.Unlock()

	assert.Eventually(t, func() bool {
		return len(p.Messages()) == 2
	}, time.Second, 5*time.Millisecond)
}
