// Package payment implements the gateway handshake for non-wallet checkout
// and the bridge that reports the asynchronous payment result.
package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/huynhtuanvt18/pah-mobile-client/internal/metrics"
	"github.com/huynhtuanvt18/pah-mobile-client/internal/patterns"
)

// Gateway return codes reported by the bridge.
const (
	ReturnCodeSuccess   = 1
	ReturnCodeFailed    = -1
	ReturnCodeCancelled = 4
)

// Session is one ephemeral gateway transaction: it lives for a single
// checkout attempt and is never persisted.
type Session struct {
	ID         uuid.UUID
	AppTransID string
	Amount     int64
	Token      string
}

// GatewayClient creates signed transactions on the payment gateway.
type GatewayClient struct {
	client  *resty.Client
	circuit *patterns.CircuitBreakerWrapper
	appID   int
	appUser string
	key     string
}

func NewGatewayClient(baseURL string, appID int, appUser, key string) *GatewayClient {
	return &GatewayClient{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(patterns.GatewayTimeout).
			SetRetryCount(0),
		circuit: patterns.NewCircuitBreaker("Payment"),
		appID:   appID,
		appUser: appUser,
		key:     key,
	}
}

// transID builds the gateway transaction id: yymmdd date prefix plus a
// millisecond timestamp, unique enough for one device.
func transID(now time.Time) string {
	return now.UTC().Format("060102") + "_" + strconv.FormatInt(now.UnixMilli(), 10)
}

func (c *GatewayClient) sign(input string) string {
	mac := hmac.New(sha256.New, []byte(c.key))
	mac.Write([]byte(input))
	return hex.EncodeToString(mac.Sum(nil))
}

// TransactionMAC signs the create-transaction request over the pipe-joined
// order fields.
func (c *GatewayClient) TransactionMAC(appTransID string, amount, appTime int64, embedData, item string) string {
	input := fmt.Sprintf("%d|%s|%s|%d|%d|%s|%s",
		c.appID, appTransID, c.appUser, amount, appTime, embedData, item)
	return c.sign(input)
}

// QueryMAC signs the status-query capability for the same transaction.
func (c *GatewayClient) QueryMAC(appTransID string) string {
	return c.sign(fmt.Sprintf("%d|%s|%s", c.appID, appTransID, c.key))
}

// CreateTransaction submits a signed form-encoded create request and
// returns the session carrying the gateway's transaction token.
func (c *GatewayClient) CreateTransaction(ctx context.Context, amount int64) (Session, error) {
	now := time.Now()
	session := Session{
		ID:         uuid.New(),
		AppTransID: transID(now),
		Amount:     amount,
	}
	appTime := now.UnixMilli()

	// No embedded data or item breakdown is sent; the backend rebuilds the
	// order from the checkout payload after payment succeeds.
	embedData := "{}"
	item := "[]"

	form := map[string]string{
		"app_id":       strconv.Itoa(c.appID),
		"app_user":     c.appUser,
		"app_time":     strconv.FormatInt(appTime, 10),
		"amount":       strconv.FormatInt(amount, 10),
		"app_trans_id": session.AppTransID,
		"embed_data":   embedData,
		"item":         item,
		"description":  fmt.Sprintf("Thanh toan don hang %s", session.AppTransID),
		"mac":          c.TransactionMAC(session.AppTransID, amount, appTime, embedData, item),
	}

	result, err := c.circuit.Execute(func() (interface{}, error) {
		var payload struct {
			ReturnCode    int    `json:"return_code"`
			ReturnMessage string `json:"return_message"`
			Token         string `json:"zp_trans_token"`
		}
		resp, httpErr := c.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/x-www-form-urlencoded;charset=UTF-8").
			SetFormData(form).
			SetResult(&payload).
			Post("/create")

		if httpErr != nil {
			return nil, fmt.Errorf("HTTP error: %w", httpErr)
		}
		if resp.StatusCode() != http.StatusOK {
			return nil, fmt.Errorf("gateway returned status %d: %s", resp.StatusCode(), resp.String())
		}
		if payload.Token == "" {
			return nil, fmt.Errorf("gateway rejected transaction: %s", payload.ReturnMessage)
		}
		return payload.Token, nil
	})
	if err != nil {
		return Session{}, patterns.FormatError("Payment", err)
	}

	session.Token = result.(string)
	metrics.PaymentAmount.Observe(float64(amount))

	log.WithFields(log.Fields{
		"session_id":   session.ID.String(),
		"app_trans_id": session.AppTransID,
		"amount":       amount,
	}).Info("Gateway transaction created")

	return session, nil
}
