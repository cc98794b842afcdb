package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	"github.com/huynhtuanvt18/pah-mobile-client/internal/patterns"
)

// CostRequest asks the shipping-rate provider for the delivery fee of one
// seller group. Weight is the chargeable weight in grams.
type CostRequest struct {
	ServiceTypeID  int    `json:"service_type_id"`
	FromDistrictID int    `json:"from_district_id"`
	FromWardCode   string `json:"from_ward_code"`
	ToDistrictID   int    `json:"to_district_id"`
	ToWardCode     string `json:"to_ward_code"`
	Weight         int    `json:"weight"`
}

// LeadTimeRequest asks for the estimated delivery time of one seller group.
type LeadTimeRequest struct {
	ServiceID      int    `json:"service_id"`
	FromDistrictID int    `json:"from_district_id"`
	FromWardCode   string `json:"from_ward_code"`
	ToDistrictID   int    `json:"to_district_id"`
	ToWardCode     string `json:"to_ward_code"`
}

// Fixed provider service identifiers used by the checkout flow.
const (
	StandardServiceType = 2
	StandardServiceID   = 53320
)

// ShippingRepo talks to the external shipping-rate provider. It is the only
// repository not going through the backend gateway, so it keeps its own
// client and a circuit breaker.
type ShippingRepo struct {
	client  *resty.Client
	circuit *patterns.CircuitBreakerWrapper
}

func NewShippingRepo(baseURL, token string, shopID int) *ShippingRepo {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(patterns.ShippingQuoteTimeout).
		SetRetryCount(0).
		SetHeader("Token", token).
		SetHeader("ShopId", fmt.Sprintf("%d", shopID))

	return &ShippingRepo{
		client:  client,
		circuit: patterns.NewCircuitBreaker("Shipping"),
	}
}

// Cost returns the delivery fee for one request.
func (r *ShippingRepo) Cost(ctx context.Context, req CostRequest) (decimal.Decimal, error) {
	var payload struct {
		Total decimal.Decimal `json:"total"`
	}
	if err := r.post(ctx, "/shipping-order/fee", req, &payload); err != nil {
		return decimal.Zero, err
	}
	return payload.Total, nil
}

// LeadTime returns the estimated delivery time as a unix timestamp.
func (r *ShippingRepo) LeadTime(ctx context.Context, req LeadTimeRequest) (int64, error) {
	var payload struct {
		LeadTime int64 `json:"leadtime"`
	}
	if err := r.post(ctx, "/shipping-order/leadtime", req, &payload); err != nil {
		return 0, err
	}
	return payload.LeadTime, nil
}

func (r *ShippingRepo) post(ctx context.Context, path string, body, out interface{}) error {
	_, err := r.circuit.Execute(func() (interface{}, error) {
		resp, httpErr := r.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(body).
			Post(path)

		if httpErr != nil {
			return nil, fmt.Errorf("HTTP error: %w", httpErr)
		}

		if resp.StatusCode() != http.StatusOK {
			return nil, fmt.Errorf("shipping provider returned status %d: %s", resp.StatusCode(), resp.String())
		}

		var env struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(resp.Body(), &env); err != nil {
			return nil, fmt.Errorf("failed to parse response: %w", err)
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("failed to parse response payload: %w", err)
		}
		return nil, nil
	})
	return patterns.FormatError("Shipping", err)
}
