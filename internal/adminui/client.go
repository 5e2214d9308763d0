package adminui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"solar-catalog-be/internal/dto"
	"solar-catalog-be/internal/pkg/serverutils"

	"github.com/google/uuid"
)

// APIError is a non-2xx envelope returned by the catalog API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return e.Message
}

// Client talks to the catalog API as an admin.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Token() string {
	return c.token
}

func (c *Client) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	res, err := call[dto.LoginResponse](ctx, c, http.MethodPost, "/api/admin/login", dto.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	c.token = res.AccessToken
	return &res, nil
}

func (c *Client) ListSeries(ctx context.Context) ([]dto.SeriesResponse, error) {
	return call[[]dto.SeriesResponse](ctx, c, http.MethodGet, "/api/series", nil)
}

func (c *Client) CreateSeries(ctx context.Context, req dto.CreateSeriesRequest) (*dto.SeriesResponse, error) {
	res, err := call[dto.SeriesResponse](ctx, c, http.MethodPost, "/api/series", req)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateSeries(ctx context.Context, id uuid.UUID, req dto.UpdateSeriesRequest) (*dto.SeriesResponse, error) {
	res, err := call[dto.SeriesResponse](ctx, c, http.MethodPatch, "/api/series/"+id.String(), req)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteSeries(ctx context.Context, id uuid.UUID) error {
	_, err := call[dto.MessageResponse](ctx, c, http.MethodDelete, "/api/series/"+id.String(), nil)
	return err
}

// ListProducts returns every product, inactive ones included.
func (c *Client) ListProducts(ctx context.Context) ([]*dto.ProductResponse, error) {
	q := url.Values{}
	q.Set("includeInactive", "true")
	q.Set("limit", "500")
	res, err := call[dto.ProductListResponse](ctx, c, http.MethodGet, "/api/admin/products?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	return res.Products, nil
}

func (c *Client) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	res, err := call[dto.ProductResponse](ctx, c, http.MethodPost, "/api/products", req)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	res, err := call[dto.ProductResponse](ctx, c, http.MethodPatch, "/api/products/"+id.String(), req)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	_, err := call[dto.MessageResponse](ctx, c, http.MethodDelete, "/api/products/"+id.String(), nil)
	return err
}

// call sends body as JSON and decodes the envelope's data into T.
func call[T any](ctx context.Context, c *Client, method, path string, body interface{}) (T, error) {
	var zero T

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return zero, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return zero, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zero, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, err
	}

	var envelope serverutils.BaseResponse[json.RawMessage]
	if err := json.Unmarshal(raw, &envelope); err != nil {
		if resp.StatusCode >= 300 {
			return zero, &APIError{Status: resp.StatusCode}
		}
		return zero, fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode >= 300 || !envelope.Success {
		return zero, &APIError{Status: resp.StatusCode, Message: envelope.Message}
	}

	var out T
	if len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		if err := json.Unmarshal(envelope.Data, &out); err != nil {
			return zero, fmt.Errorf("decode data: %w", err)
		}
	}
	return out, nil
}
