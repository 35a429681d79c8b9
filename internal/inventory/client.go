package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/distrimed/order-service/internal/config"
	"github.com/distrimed/order-service/internal/entities"
)

var ErrProductNotFound = errors.New("product not found")

// InsufficientStockError reports an availability check or decrement that the
// inventory service rejected for lack of stock.
type InsufficientStockError struct {
	ProductID int64
	Available int
	Required  int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: available %d, required %d",
		e.ProductID, e.Available, e.Required)
}

// Client talks to the inventory service over HTTP. It performs no retries:
// decrement/increment calls are part of the order saga, and replaying them
// blindly could double-apply a movement.
type Client struct {
	logger  *slog.Logger
	baseURL string
	http    *http.Client
}

func NewClient(logger *slog.Logger, cfg config.Collaborator) *Client {
	return &Client{
		logger:  logger.With(slog.String("client", "inventory")),
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

type stockResponse struct {
	ProductID         int64   `json:"product_id"`
	SKU               string  `json:"sku"`
	Name              string  `json:"name"`
	Price             float64 `json:"price"`
	AvailableQuantity int     `json:"available_quantity"`
	RequiredQuantity  int     `json:"required_quantity"`
}

type movementResponse struct {
	ProductID        int64 `json:"product_id"`
	PreviousQuantity int   `json:"previous_quantity"`
	NewQuantity      int   `json:"new_quantity"`
}

type productResponse struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url"`
}

type errorResponse struct {
	Message           string `json:"message"`
	AvailableQuantity int    `json:"available_quantity"`
	RequiredQuantity  int    `json:"required_quantity"`
}

func (c *Client) CheckAvailability(ctx context.Context, productID int64, quantity int) (entities.ProductStock, error) {
	url := fmt.Sprintf("%s/stock/%d/availability?quantity=%d", c.baseURL, productID, quantity)

	var res stockResponse
	if err := c.do(ctx, http.MethodGet, url, nil, &res, productID, quantity); err != nil {
		return entities.ProductStock{}, err
	}

	return entities.ProductStock{
		ProductID:         res.ProductID,
		SKU:               res.SKU,
		Name:              res.Name,
		Price:             res.Price,
		AvailableQuantity: res.AvailableQuantity,
		RequiredQuantity:  res.RequiredQuantity,
	}, nil
}

func (c *Client) DecrementStock(ctx context.Context, productID int64, quantity int) (entities.StockMovement, error) {
	url := fmt.Sprintf("%s/stock/%d/decrement", c.baseURL, productID)
	body := map[string]any{"quantity": quantity}

	var res movementResponse
	if err := c.do(ctx, http.MethodPost, url, body, &res, productID, quantity); err != nil {
		return entities.StockMovement{}, err
	}

	return entities.StockMovement{
		ProductID:        res.ProductID,
		PreviousQuantity: res.PreviousQuantity,
		NewQuantity:      res.NewQuantity,
	}, nil
}

func (c *Client) IncrementStock(ctx context.Context, productID int64, quantity int, reason string) error {
	url := fmt.Sprintf("%s/stock/%d/increment", c.baseURL, productID)
	body := map[string]any{"quantity": quantity, "reason": reason}

	return c.do(ctx, http.MethodPost, url, body, nil, productID, quantity)
}

func (c *Client) GetProduct(ctx context.Context, productID int64) (entities.Product, error) {
	url := fmt.Sprintf("%s/products/%d", c.baseURL, productID)

	var res productResponse
	if err := c.do(ctx, http.MethodGet, url, nil, &res, productID, 0); err != nil {
		return entities.Product{}, err
	}

	return entities.Product{
		ProductID: res.ProductID,
		Name:      res.Name,
		SKU:       res.SKU,
		Price:     res.Price,
		ImageURL:  res.ImageURL,
	}, nil
}

func (c *Client) do(ctx context.Context, method, url string, body any, out any, productID int64, quantity int) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("inventory service unreachable: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("product %d: %w", productID, ErrProductNotFound)
	case resp.StatusCode == http.StatusConflict:
		var er errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
			return &InsufficientStockError{ProductID: productID, Required: quantity}
		}
		return &InsufficientStockError{
			ProductID: productID,
			Available: er.AvailableQuantity,
			Required:  er.RequiredQuantity,
		}
	case resp.StatusCode >= 400:
		var er errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&er); err != nil || er.Message == "" {
			return fmt.Errorf("inventory service returned status %d", resp.StatusCode)
		}
		return fmt.Errorf("inventory service error: %s", er.Message)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode inventory response: %w", err)
	}
	return nil
}
