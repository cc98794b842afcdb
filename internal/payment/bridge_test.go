package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBridgeServer(t *testing.T) (*CallbackBridge, *httptest.Server) {
	t.Helper()
	bridge := NewCallbackBridge("127.0.0.1:0")
	server := httptest.NewServer(bridge.server.Handler)
	t.Cleanup(server.Close)
	return bridge, server
}

func postReturn(t *testing.T, server *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(server.URL+"/payment/return", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestBridgeDeliversCallbackToPay(t *testing.T) {
	bridge, server := newBridgeServer(t)

	done := make(chan Event, 1)
	go func() {
		event, err := bridge.Pay(context.Background(), "zp-token")
		if err == nil {
			done <- event
		}
	}()

	// Give Pay a moment to drain and block on the channel.
	time.Sleep(20 * time.Millisecond)
	resp := postReturn(t, server, `{"return_code":1}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	select {
	case event := <-done:
		assert.Equal(t, ReturnCodeSuccess, event.ReturnCode)
	case <-time.After(time.Second):
		t.Fatal("Pay did not observe the callback")
	}
}

func TestBridgeRejectsSecondCallback(t *testing.T) {
	_, server := newBridgeServer(t)

	first := postReturn(t, server, `{"return_code":4}`)
	assert.Equal(t, http.StatusOK, first.StatusCode)

	// The buffer holds one event; without a Pay in progress a second
	// callback has nowhere to go.
	second := postReturn(t, server, `{"return_code":1}`)
	assert.Equal(t, http.StatusConflict, second.StatusCode)
}

func TestBridgeDropsStaleEvent(t *testing.T) {
	bridge, server := newBridgeServer(t)

	// A callback from an abandoned attempt sits in the buffer.
	postReturn(t, server, `{"return_code":4}`)

	// A fresh Pay must not consume it.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := bridge.Pay(ctx, "zp-token")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestBridgePayHonorsContext(t *testing.T) {
	bridge, _ := newBridgeServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bridge.Pay(ctx, "zp-token")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBridgeHealth(t *testing.T) {
	_, server := newBridgeServer(t)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
