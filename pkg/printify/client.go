package printify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lowkeylegends/storefront-backend/pkg/config"
	pkgerrors "github.com/lowkeylegends/storefront-backend/pkg/errors"
	"github.com/lowkeylegends/storefront-backend/pkg/logger"
)

const defaultTimeout = 30 * time.Second

var (
	errAPITokenRequired = errors.New("printify api token is required")
	errShopIDRequired   = errors.New("printify shop id is required")
	errLoggerRequired   = errors.New("printify logger is required")
)

// Client wraps the provider REST API with centralized auth, timeouts, logging,
// and error mapping. Every failure comes back wrapped with the dependency
// error code so callers can decide whether to fall back to the local cache.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiToken   string
	shopID     string
	logger     *logger.Logger
}

// NewClient initializes the provider wrapper and validates the credentials.
func NewClient(ctx context.Context, cfg config.PrintifyConfig, logg *logger.Logger) (*Client, error) {
	if logg == nil {
		return nil, errLoggerRequired
	}

	apiToken := strings.TrimSpace(cfg.APIToken)
	if apiToken == "" {
		return nil, errAPITokenRequired
	}
	shopID := strings.TrimSpace(cfg.ShopID)
	if shopID == "" {
		return nil, errShopIDRequired
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.printify.com/v1"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiToken:   apiToken,
		shopID:     shopID,
		logger:     logg,
	}

	logg.Info(ctx, "printify client initialized")
	return c, nil
}

// ShopID reports the configured provider shop identifier.
func (c *Client) ShopID() string {
	if c == nil {
		return ""
	}
	return c.shopID
}

// ListProducts fetches the full shop catalog.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	c.log(ctx, "request", "list_products", nil)

	var resp productListResponse
	if err := c.do(ctx, http.MethodGet, c.shopPath("products.json"), nil, &resp); err != nil {
		c.log(ctx, "error", "list_products", map[string]any{"error": err.Error()})
		return nil, err
	}

	c.log(ctx, "response", "list_products", map[string]any{"count": len(resp.Data)})
	return resp.Data, nil
}

// GetProduct fetches a single product by provider id.
func (c *Client) GetProduct(ctx context.Context, productID string) (*Product, error) {
	c.log(ctx, "request", "get_product", map[string]any{"product_id": productID})

	var product Product
	if err := c.do(ctx, http.MethodGet, c.shopPath("products/"+productID+".json"), nil, &product); err != nil {
		c.log(ctx, "error", "get_product", map[string]any{"error": err.Error()})
		return nil, err
	}

	c.log(ctx, "response", "get_product", map[string]any{"product_id": product.ID})
	return &product, nil
}

// CreateOrder submits a fulfillment order for production and shipping.
func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	c.log(ctx, "request", "create_order", map[string]any{
		"external_id": req.ExternalID,
		"line_items":  len(req.LineItems),
	})

	var order Order
	if err := c.do(ctx, http.MethodPost, c.shopPath("orders.json"), req, &order); err != nil {
		c.log(ctx, "error", "create_order", map[string]any{"error": err.Error()})
		return nil, err
	}

	c.log(ctx, "response", "create_order", map[string]any{"order_id": order.ID})
	return &order, nil
}

// GetOrder fetches a fulfillment order by provider id.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	c.log(ctx, "request", "get_order", map[string]any{"order_id": orderID})

	var order Order
	if err := c.do(ctx, http.MethodGet, c.shopPath("orders/"+orderID+".json"), nil, &order); err != nil {
		c.log(ctx, "error", "get_order", map[string]any{"error": err.Error()})
		return nil, err
	}

	c.log(ctx, "response", "get_order", map[string]any{"order_id": order.ID, "status": order.Status})
	return &order, nil
}

// CancelOrder cancels a submitted fulfillment order.
func (c *Client) CancelOrder(ctx context.Context, orderID string) (*Order, error) {
	c.log(ctx, "request", "cancel_order", map[string]any{"order_id": orderID})

	var order Order
	if err := c.do(ctx, http.MethodPost, c.shopPath("orders/"+orderID+"/cancel.json"), nil, &order); err != nil {
		c.log(ctx, "error", "cancel_order", map[string]any{"error": err.Error()})
		return nil, err
	}

	c.log(ctx, "response", "cancel_order", map[string]any{"order_id": order.ID, "status": order.Status})
	return &order, nil
}

// ShippingCost quotes shipping for a prospective order payload.
func (c *Client) ShippingCost(ctx context.Context, req OrderRequest) (*ShippingQuote, error) {
	c.log(ctx, "request", "shipping_cost", map[string]any{"line_items": len(req.LineItems)})

	var quote ShippingQuote
	if err := c.do(ctx, http.MethodPost, c.shopPath("orders/shipping.json"), req, &quote); err != nil {
		c.log(ctx, "error", "shipping_cost", map[string]any{"error": err.Error()})
		return nil, err
	}

	c.log(ctx, "response", "shipping_cost", map[string]any{"standard": quote.Standard})
	return &quote, nil
}

// FindVariantID resolves a size string to an available variant id on the given
// provider product. The lookup is best-effort: fetch failures and misses both
// report not-found instead of an error.
func (c *Client) FindVariantID(ctx context.Context, productID, size string) (int64, bool) {
	product, err := c.GetProduct(ctx, productID)
	if err != nil {
		c.log(ctx, "error", "find_variant", map[string]any{"error": err.Error(), "product_id": productID})
		return 0, false
	}
	return MatchVariant(product.Variants, size)
}

func (c *Client) shopPath(suffix string) string {
	return fmt.Sprintf("%s/shops/%s/%s", c.baseURL, c.shopID, suffix)
}

func (c *Client) do(ctx context.Context, method, url string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode provider payload")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build provider request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Timeouts are not distinguished from other provider failures.
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "provider request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return pkgerrors.Wrap(
			pkgerrors.CodeDependency,
			fmt.Errorf("provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet))),
			"provider request failed",
		)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode provider response")
	}
	return nil
}

func (c *Client) log(ctx context.Context, phase, op string, fields map[string]any) {
	if c == nil || c.logger == nil {
		return
	}
	logFields := map[string]any{
		"operation": op,
		"phase":     phase,
	}
	for k, v := range fields {
		logFields[k] = v
	}
	ctx = c.logger.WithFields(ctx, logFields)
	switch phase {
	case "error":
		c.logger.Error(ctx, fmt.Sprintf("printify %s", op), errors.New(fmt.Sprint(fields["error"])))
	default:
		c.logger.Info(ctx, fmt.Sprintf("printify %s", phase))
	}
}
