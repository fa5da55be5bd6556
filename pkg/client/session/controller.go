package session

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"restroomfinder/pkg/client"
)

// Decision is the outcome of the usage-start gate.
type Decision int

const (
	// DecisionUsageStarted means the server accepted start-using.
	DecisionUsageStarted Decision = iota
	// DecisionPaymentRequired means the flow must go through Payment first.
	DecisionPaymentRequired
	// DecisionDegraded means start-using failed but the user chose to
	// continue in an explicitly offline, server-unconfirmed session.
	DecisionDegraded
	// DecisionAborted means start-using failed and the user declined the
	// degraded mode.
	DecisionAborted
)

var ErrTransferImageRequired = errors.New("transfer payments require a proof image")

// OfflineDecider is consulted when start-using fails for a reason other
// than payment-required. Returning true continues into a degraded session.
type OfflineDecider func(err error) bool

// Controller drives Navigation -> Payment -> Usage transitions.
type Controller struct {
	client  *client.Client
	store   *Store
	offline OfflineDecider
}

func NewController(c *client.Client, store *Store, offline OfflineDecider) *Controller {
	return &Controller{client: c, store: store, offline: offline}
}

// BeginUsage applies the payment gate. Free restrooms go straight to
// start-using; paid ones are routed to Payment without touching the
// session endpoint. A 402 from start-using is routed to Payment as well.
func (ctl *Controller) BeginUsage(ctx context.Context, restroom client.Restroom) (Decision, error) {
	user, err := ctl.store.EnsureUser(ctx)
	if err != nil {
		return DecisionAborted, err
	}

	if !restroom.IsFree && restroom.Price > 0 {
		return DecisionPaymentRequired, nil
	}

	err = ctl.client.StartUsing(ctx, user.ID, restroom.ID)
	if err == nil {
		return DecisionUsageStarted, nil
	}
	if errors.Is(err, client.ErrPaymentRequired) {
		return DecisionPaymentRequired, nil
	}
	if ctl.offline != nil && ctl.offline(err) {
		return DecisionDegraded, nil
	}
	return DecisionAborted, err
}

// PaymentOutcome reports what happened after submitting a payment.
type PaymentOutcome struct {
	PaymentID int64
	Status    string
	// UsageStarted is set for cash payments that were settled and started
	// in one step.
	UsageStarted bool
	// AwaitingConfirmation is set for transfers: the caller should poll
	// with a StatusPoller.
	AwaitingConfirmation bool
}

// SubmitPayment validates and creates a payment. Cash settles immediately
// and attempts start-using in the same call; a failure there is returned
// so the caller stays on the payment step. Transfers return with
// AwaitingConfirmation set.
func (ctl *Controller) SubmitPayment(ctx context.Context, restroom client.Restroom, method, imagePath, note string) (*PaymentOutcome, error) {
	if method == "transfer" && imagePath == "" {
		return nil, ErrTransferImageRequired
	}

	user, err := ctl.store.EnsureUser(ctx)
	if err != nil {
		return nil, err
	}

	transferImage := ""
	if method == "transfer" {
		transferImage, err = EncodeImage(imagePath)
		if err != nil {
			return nil, err
		}
	}

	res, err := ctl.client.CreatePayment(ctx, client.CreatePaymentRequest{
		UserID:            user.ID,
		RestroomID:        restroom.ID,
		Method:            method,
		Amount:            restroom.Price,
		TransferImagePath: transferImage,
		Note:              note,
	})
	if err != nil {
		return nil, err
	}

	outcome := &PaymentOutcome{PaymentID: res.PaymentID, Status: res.Status}
	if method == "cash" {
		if err := ctl.client.StartUsing(ctx, user.ID, restroom.ID); err != nil {
			return outcome, err
		}
		outcome.UsageStarted = true
		return outcome, nil
	}

	outcome.AwaitingConfirmation = true
	return outcome, nil
}

// EncodeImage turns a local file reference into an inline data URI. Values
// that are already remote URLs or data URIs pass through untouched.
func EncodeImage(path string) (string, error) {
	if strings.HasPrefix(path, "data:") ||
		strings.HasPrefix(path, "http://") ||
		strings.HasPrefix(path, "https://") {
		return path, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	mimeType := "image/jpeg"
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".png" {
		mimeType = "image/png"
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(raw)), nil
}
