package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateUser registers an anonymous account for the given display name.
func (c *Client) CreateUser(ctx context.Context, username string) (*User, error) {
	var u User
	err := c.do(ctx, http.MethodPost, "/api/users", map[string]string{"username": username}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Register(ctx context.Context, username, password string) (*User, error) {
	var u User
	err := c.do(ctx, http.MethodPost, "/api/auth/register",
		map[string]string{"username": username, "password": password}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var res LoginResult
	err := c.do(ctx, http.MethodPost, "/api/auth/login",
		map[string]string{"username": username, "password": password}, &res)
	if err != nil {
		return nil, err
	}
	if res.Token != "" {
		c.token = res.Token
	}
	return &res, nil
}

func (c *Client) CheckUsername(ctx context.Context, username string) (bool, error) {
	var out struct {
		Available bool `json:"available"`
	}
	err := c.do(ctx, http.MethodGet, "/api/auth/check-username/"+url.PathEscape(username), nil, &out)
	if err != nil {
		return false, err
	}
	return out.Available, nil
}

func (c *Client) ListRestrooms(ctx context.Context) ([]Restroom, error) {
	var out []Restroom
	if err := c.do(ctx, http.MethodGet, "/api/restrooms", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetRestroom(ctx context.Context, id int64) (*RestroomDetail, error) {
	var out RestroomDetail
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/restrooms/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type notifyBody struct {
	UserID *int64 `json:"user_id"`
}

// NotifyNavigation tells the owner the user started navigating here.
func (c *Client) NotifyNavigation(ctx context.Context, restroomID int64, userID *int64) error {
	return c.do(ctx, http.MethodPost,
		fmt.Sprintf("/api/restrooms/%d/navigation", restroomID), notifyBody{UserID: userID}, nil)
}

// NotifyArrival tells the owner the user is at the door.
func (c *Client) NotifyArrival(ctx context.Context, restroomID int64, userID *int64) error {
	return c.do(ctx, http.MethodPost,
		fmt.Sprintf("/api/restrooms/%d/arrival", restroomID), notifyBody{UserID: userID}, nil)
}

// NotifyOwner forwards a typed in-session event to the owner.
func (c *Client) NotifyOwner(ctx context.Context, restroomID int64, userID *int64, notifType, message string) error {
	body := struct {
		UserID  *int64 `json:"user_id"`
		Type    string `json:"type"`
		Message string `json:"message"`
	}{userID, notifType, message}
	return c.do(ctx, http.MethodPost,
		fmt.Sprintf("/api/restrooms/%d/notify-owner", restroomID), body, nil)
}

// StartUsing opens a usage session. A 402 response surfaces as
// ErrPaymentRequired.
func (c *Client) StartUsing(ctx context.Context, userID, restroomID int64) error {
	return c.do(ctx, http.MethodPost,
		fmt.Sprintf("/api/users/%d/start-using/%d", userID, restroomID), struct{}{}, nil)
}

func (c *Client) StopUsing(ctx context.Context, userID int64) error {
	return c.do(ctx, http.MethodPost,
		fmt.Sprintf("/api/users/%d/stop-using", userID), struct{}{}, nil)
}

func (c *Client) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*PaymentResult, error) {
	var out PaymentResult
	if err := c.do(ctx, http.MethodPost, "/api/payments", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResolvePayment confirms or rejects a pending transfer (owner side).
func (c *Client) ResolvePayment(ctx context.Context, paymentID int64, action string) error {
	return c.do(ctx, http.MethodPost,
		fmt.Sprintf("/api/payments/%d/confirm", paymentID),
		map[string]string{"action": action}, nil)
}

func (c *Client) PaymentStatus(ctx context.Context, userID, restroomID int64) (*PaymentStatus, error) {
	var out PaymentStatus
	err := c.do(ctx, http.MethodGet,
		fmt.Sprintf("/api/users/%d/payment-status/%d", userID, restroomID), nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ChatMessages(ctx context.Context, restroomID int64) ([]ChatMessage, error) {
	var out []ChatMessage
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/chat/messages/%d", restroomID), nil, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SendChatMessage(ctx context.Context, req SendChatMessageRequest) error {
	return c.do(ctx, http.MethodPost, "/api/chat/messages", req, nil)
}

func (c *Client) CreateReview(ctx context.Context, req CreateReviewRequest) error {
	return c.do(ctx, http.MethodPost, "/api/reviews", req, nil)
}

// History returns the profile screen data: past sessions plus the user's
// reviews, newest first.
func (c *Client) History(ctx context.Context, userID int64) (*History, error) {
	var out History
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d/history", userID), nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UserPayments(ctx context.Context, userID int64) ([]UserPayment, error) {
	var out []UserPayment
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d/payments", userID), nil, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// OwnerRestrooms lists the restrooms an owner manages. Requires a token
// from Login.
func (c *Client) OwnerRestrooms(ctx context.Context, email string) ([]Restroom, error) {
	var out []Restroom
	err := c.do(ctx, http.MethodGet,
		"/api/owner/"+url.PathEscape(email)+"/restrooms", nil, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// OwnerNotifications returns the owner's newest notifications. Requires a
// token from Login.
func (c *Client) OwnerNotifications(ctx context.Context, email string) ([]Notification, error) {
	var out []Notification
	err := c.do(ctx, http.MethodGet,
		"/api/owner/"+url.PathEscape(email)+"/notifications", nil, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPut,
		fmt.Sprintf("/api/owner/notifications/%d/read", id), struct{}{}, nil)
}
