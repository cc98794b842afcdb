package patterns

import "time"

// DefaultTimeout is the default timeout for backend API requests
const DefaultTimeout = 10 * time.Second

// GatewayTimeout covers the payment gateway create-transaction call
const GatewayTimeout = 15 * time.Second

// ShippingQuoteTimeout covers a single shipping cost/lead-time quote
const ShippingQuoteTimeout = 5 * time.Second
