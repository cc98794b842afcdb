package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds everything the client needs to reach the backend API,
// the shipping-rate provider and the payment gateway.
type Config struct {
	APIBaseURL string

	GatewayURL     string
	GatewayAppID   int
	GatewayAppUser string
	GatewayKey     string

	ShippingURL    string
	ShippingToken  string
	ShippingShopID int

	// Local address for the payment bridge callback listener.
	BridgeAddr string

	LogLevel string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads .env if present, then the environment, with defaults
// pointing at the sandbox endpoints.
func Load() Config {
	_ = godotenv.Load()

	shopID, err := strconv.Atoi(getenv("GHN_SHOP_ID", "0"))
	if err != nil {
		log.WithField("value", os.Getenv("GHN_SHOP_ID")).Warn("GHN_SHOP_ID is not a number, using 0")
		shopID = 0
	}

	cfg := Config{
		APIBaseURL:     getenv("PAH_API_BASE_URL", "https://pahapi.azurewebsites.net/api"),
		GatewayURL:     getenv("ZALOPAY_SB_API", "https://sb-openapi.zalopay.vn/v2"),
		GatewayAppID:   2553,
		GatewayAppUser: getenv("ZALOPAY_APP_USER", "PAHUser"),
		GatewayKey:     getenv("ZALOPAY_APP_KEY", ""),
		ShippingURL:    getenv("GHN_API_BASE_URL", "https://dev-online-gateway.ghn.vn/shiip/public-api/v2"),
		ShippingToken:  getenv("GHN_TOKEN", ""),
		ShippingShopID: shopID,
		BridgeAddr:     getenv("PAH_BRIDGE_ADDR", "127.0.0.1:8765"),
		LogLevel:       getenv("PAH_LOG_LEVEL", "info"),
	}

	log.WithFields(log.Fields{
		"api_base":    cfg.APIBaseURL,
		"gateway":     cfg.GatewayURL,
		"bridge_addr": cfg.BridgeAddr,
	}).Info("Configuration loaded")

	return cfg
}
