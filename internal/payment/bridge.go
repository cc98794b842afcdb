package payment

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// Event is the single asynchronous result of one payment attempt.
type Event struct {
	ReturnCode int `json:"return_code"`
}

// Bridge hands the transaction token to the payment UI and reports its
// result. The mobile app used a native SDK bridge for this; the headless
// client listens for the gateway callback over HTTP instead.
type Bridge interface {
	// Pay blocks until the payment UI reports a return code or ctx ends.
	Pay(ctx context.Context, token string) (Event, error)
}

// CallbackBridge is a localhost listener the gateway (or the person driving
// the CLI) posts the payment result to. It also serves /metrics.
type CallbackBridge struct {
	addr   string
	server *http.Server
	events chan Event
}

func NewCallbackBridge(addr string) *CallbackBridge {
	b := &CallbackBridge{
		addr:   addr,
		events: make(chan Event, 1),
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.POST("/payment/return", func(c *gin.Context) {
		var event Event
		if err := c.ShouldBind(&event); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "return_code is required"})
			return
		}
		select {
		case b.events <- event:
			c.JSON(http.StatusOK, gin.H{"received": true})
		default:
			c.JSON(http.StatusConflict, gin.H{"error": "no payment in progress"})
		}
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	b.server = &http.Server{Addr: addr, Handler: router}
	return b
}

// Start runs the listener. Blocks; call in a goroutine.
func (b *CallbackBridge) Start() error {
	log.WithField("addr", b.addr).Info("Payment bridge listening")
	if err := b.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop shuts the listener down.
func (b *CallbackBridge) Stop(ctx context.Context) error {
	return b.server.Shutdown(ctx)
}

// Pay waits for the gateway callback carrying the return code.
func (b *CallbackBridge) Pay(ctx context.Context, token string) (Event, error) {
	log.WithField("token", token).Info("Awaiting payment result on bridge")

	// Drain a stale event from an abandoned attempt.
	select {
	case <-b.events:
	default:
	}

	select {
	case event := <-b.events:
		return event, nil
	case <-ctx.Done():
		return Event{}, ctx.Err()
	}
}
