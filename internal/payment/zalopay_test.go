package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "PcY4iZIKFCIdgZvA6ueMcMHHUbRLYjPL"

func TestTransIDFormat(t *testing.T) {
	now := time.Date(2024, 3, 7, 15, 4, 5, 0, time.UTC)
	id := transID(now)

	assert.Regexp(t, regexp.MustCompile(`^240307_\d+$`), id)
	assert.Equal(t, fmt.Sprintf("240307_%d", now.UnixMilli()), id)
}

func TestTransactionMAC(t *testing.T) {
	c := NewGatewayClient("http://gateway", 2553, "PAHUser", testKey)

	got := c.TransactionMAC("240307_1709823845000", 290000, 1709823845000, "{}", "[]")

	mac := hmac.New(sha256.New, []byte(testKey))
	mac.Write([]byte("2553|240307_1709823845000|PAHUser|290000|1709823845000|{}|[]"))
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), got)
}

func TestQueryMAC(t *testing.T) {
	c := NewGatewayClient("http://gateway", 2553, "PAHUser", testKey)

	got := c.QueryMAC("240307_1709823845000")

	mac := hmac.New(sha256.New, []byte(testKey))
	mac.Write([]byte(fmt.Sprintf("2553|240307_1709823845000|%s", testKey)))
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), got)
}

func TestCreateTransaction(t *testing.T) {
	var form url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/create", r.URL.Path)
		require.NoError(t, r.ParseForm())
		form = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"return_code":1,"return_message":"success","zp_trans_token":"ACbln0DTCxjuLLRA"}`)
	}))
	defer server.Close()

	c := NewGatewayClient(server.URL, 2553, "PAHUser", testKey)
	session, err := c.CreateTransaction(context.Background(), 290000)
	require.NoError(t, err)

	assert.Equal(t, "ACbln0DTCxjuLLRA", session.Token)
	assert.Equal(t, int64(290000), session.Amount)
	assert.NotEqual(t, "", session.ID.String())

	require.NotNil(t, form)
	assert.Equal(t, "2553", form.Get("app_id"))
	assert.Equal(t, "PAHUser", form.Get("app_user"))
	assert.Equal(t, "290000", form.Get("amount"))
	assert.Equal(t, session.AppTransID, form.Get("app_trans_id"))
	assert.Equal(t, "{}", form.Get("embed_data"))
	assert.Equal(t, "[]", form.Get("item"))
	assert.NotEmpty(t, form.Get("mac"))

	// The sent MAC must verify against the sent fields.
	appTime, err := strconv.ParseInt(form.Get("app_time"), 10, 64)
	require.NoError(t, err)
	assert.Equal(t, c.TransactionMAC(session.AppTransID, 290000, appTime, "{}", "[]"), form.Get("mac"))
}

func TestCreateTransactionRejectedByGateway(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"return_code":2,"return_message":"invalid mac"}`)
	}))
	defer server.Close()

	c := NewGatewayClient(server.URL, 2553, "PAHUser", testKey)
	_, err := c.CreateTransaction(context.Background(), 290000)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mac")
}

func TestCreateTransactionServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := NewGatewayClient(server.URL, 2553, "PAHUser", testKey)
	_, err := c.CreateTransaction(context.Background(), 290000)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
