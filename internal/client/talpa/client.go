package talpa

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	clienthttp "github.com/citypermits/permits-api/internal/client/http"
)

// OrderItem is one line of a checkout order sent to the payment
// platform. Prices are sent as strings so the platform does not lose
// decimal precision.
type OrderItem struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Unit        string `json:"unit"`
	UnitPrice   string `json:"unit_price"`
	VATPercent  string `json:"vat_percentage"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// CreateOrderRequest is the checkout order payload.
type CreateOrderRequest struct {
	Namespace  string      `json:"namespace"`
	CustomerID string      `json:"customer_id"`
	Email      string      `json:"email"`
	Items      []OrderItem `json:"items"`
	PriceTotal string      `json:"price_total"`
}

// Order is the payment platform's view of a created checkout order.
type Order struct {
	OrderID     uuid.UUID `json:"order_id"`
	CheckoutURL string    `json:"checkout_url"`
	ReceiptURL  string    `json:"receipt_url"`
}

// Client talks to the city's payment platform.
type Client struct {
	http      *clienthttp.Client
	namespace string
}

// NewClient creates a payment platform client for the given namespace.
func NewClient(baseURL, apiKey, namespace string) *Client {
	return &Client{
		http: clienthttp.NewClient(
			clienthttp.WithBaseURL(baseURL),
			clienthttp.WithDefaultHeader("api-key", apiKey),
		),
		namespace: namespace,
	}
}

// CreateOrder sends a checkout order and returns the platform order id
// with the checkout URL the customer is redirected to.
func (c *Client) CreateOrder(ctx context.Context, customerID uuid.UUID, email string, items []OrderItem, priceTotal decimal.Decimal) (*Order, error) {
	request := CreateOrderRequest{
		Namespace:  c.namespace,
		CustomerID: customerID.String(),
		Email:      email,
		Items:      items,
		PriceTotal: priceTotal.StringFixed(2),
	}

	resp, err := c.http.Post(ctx, "/order", request)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create checkout order")
	}

	var order Order
	if err := c.http.ProcessJSONResponse(resp, &order); err != nil {
		return nil, errors.Wrap(err, "failed to decode checkout order response")
	}
	return &order, nil
}

// CancelOrder cancels a checkout order that was never paid.
func (c *Client) CancelOrder(ctx context.Context, orderID uuid.UUID) error {
	_, err := c.http.Post(ctx, "/order/"+orderID.String()+"/cancel", nil)
	if err != nil {
		return errors.Wrap(err, "failed to cancel checkout order")
	}
	return nil
}
