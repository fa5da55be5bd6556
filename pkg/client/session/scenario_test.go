package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"restroomfinder/pkg/client"
)

// scenarioServer is a stateful fake covering the whole user workflow:
// transfer payments stay pending until the owner confirms them, and
// start-using enforces the payment gate.
type scenarioServer struct {
	*httptest.Server

	mu             sync.Mutex
	nextUserID     int64
	nextPaymentID  int64
	pendingPayment int64
	confirmed      bool
	usingUserID    int64
}

func newScenarioServer(t *testing.T) *scenarioServer {
	ss := &scenarioServer{nextUserID: 100, nextPaymentID: 1}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/users", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Username string `json:"username"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		ss.mu.Lock()
		id := ss.nextUserID
		ss.nextUserID++
		ss.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": id, "username": body.Username})
	})
	mux.HandleFunc("/api/users/", func(w http.ResponseWriter, r *http.Request) {
		ss.mu.Lock()
		defer ss.mu.Unlock()
		switch {
		case strings.Contains(r.URL.Path, "/start-using/"):
			if !ss.confirmed {
				w.WriteHeader(http.StatusPaymentRequired)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"error": "Payment required", "requires_payment": true,
				})
				return
			}
			parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/api/users/"), "/")
			userID, _ := strconv.ParseInt(parts[0], 10, 64)
			ss.usingUserID = userID
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
		case strings.Contains(r.URL.Path, "/payment-status/"):
			_ = json.NewEncoder(w).Encode(map[string]any{
				"payment_confirmed":   ss.confirmed,
				"payment_id":          ss.pendingPayment,
				"has_pending_payment": ss.pendingPayment != 0 && !ss.confirmed,
			})
		default:
			http.NotFound(w, r)
		}
	})
	mux.HandleFunc("/api/payments", func(w http.ResponseWriter, r *http.Request) {
		var req client.CreatePaymentRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		ss.mu.Lock()
		id := ss.nextPaymentID
		ss.nextPaymentID++
		status := "confirmed"
		if req.Method == "transfer" {
			status = "pending"
			ss.pendingPayment = id
		} else {
			ss.confirmed = true
		}
		ss.mu.Unlock()
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true, "payment_id": id, "status": status,
		})
	})

	ss.Server = httptest.NewServer(mux)
	t.Cleanup(ss.Server.Close)
	return ss
}

func (ss *scenarioServer) ownerConfirms() {
	ss.mu.Lock()
	ss.confirmed = true
	ss.mu.Unlock()
}

func TestScenario_TransferPaymentConfirmedMidPoll(t *testing.T) {
	ss := newScenarioServer(t)
	c := client.New(ss.URL)
	store := NewStore(c)
	store.Set(&client.User{ID: 7, Username: "HappyLion42"})
	ctl := NewController(c, store, nil)

	paid := client.Restroom{ID: 3, Name: "Phúc Long", IsFree: false, Price: 3000}

	decision, err := ctl.BeginUsage(context.Background(), paid)
	assert.NoError(t, err)
	assert.Equal(t, DecisionPaymentRequired, decision)

	outcome, err := ctl.SubmitPayment(context.Background(), paid,
		"transfer", "data:image/jpeg;base64,abc", "")
	assert.NoError(t, err)
	assert.True(t, outcome.AwaitingConfirmation)
	assert.Equal(t, "pending", outcome.Status)

	// The owner confirms while the poller is waiting.
	go func() {
		time.Sleep(20 * time.Millisecond)
		ss.ownerConfirms()
	}()

	poller := NewStatusPoller(c, 7, paid.ID,
		WithPollInterval(5*time.Millisecond))
	result, err := poller.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, PollConfirmed, result)

	ss.mu.Lock()
	defer ss.mu.Unlock()
	assert.Equal(t, int64(7), ss.usingUserID)
}

func TestScenario_AnonymousUserOnFreeRestroom(t *testing.T) {
	ss := newScenarioServer(t)
	ss.confirmed = true // free restrooms have no gate to trip
	c := client.New(ss.URL)
	store := NewStore(c)
	ctl := NewController(c, store, nil)

	free := client.Restroom{ID: 1, Name: "TTTM", IsFree: true}

	decision, err := ctl.BeginUsage(context.Background(), free)
	assert.NoError(t, err)
	assert.Equal(t, DecisionUsageStarted, decision)

	user := store.Current()
	assert.NotNil(t, user)
	assert.Equal(t, int64(100), user.ID)
	assert.Regexp(t, `^[A-Z][a-z]+[A-Z][a-z]+\d{1,3}$`, user.Username)

	ss.mu.Lock()
	defer ss.mu.Unlock()
	assert.Equal(t, int64(100), ss.usingUserID)
}
