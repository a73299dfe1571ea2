// Package zooapi es el cliente HTTP del registro del zoo, usado por el CLI
// para hablar con un server corriendo.
package zooapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultTimeout = 10 * time.Second

	maxBody int64 = 1 << 20 // 1MB
)

type Client struct {
	HTTP    *http.Client
	BaseURL string
}

// New valida baseURL y arma el cliente con timeout.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("zooapi: base url required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("zooapi: invalid base url: %w", err)
	}
	return &Client{
		HTTP:    &http.Client{Timeout: timeout},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// ErrBodyTooLarge: la respuesta supera maxBody; no devolvemos cuerpos truncados.
var ErrBodyTooLarge = errors.New("zooapi: response exceeds 1MB")

// HTTPError representa una respuesta no-2xx.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("zooapi: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("zooapi: status=%d body=%s", e.StatusCode, e.Body)
}

type Animal struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Species   string    `json:"species"`
	Diet      string    `json:"diet"`
	Habitat   string    `json:"habitat"`
	CreatedAt time.Time `json:"created_at"`
}

type AdmitRequest struct {
	Kind    string `json:"kind"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Diet    string `json:"diet"`
	Habitat string `json:"habitat"`
}

func (c *Client) Admit(ctx context.Context, in AdmitRequest) (Animal, error) {
	var out Animal
	err := c.doJSON(ctx, http.MethodPost, "/animals", in, &out)
	return out, err
}

func (c *Client) List(ctx context.Context) ([]Animal, error) {
	var out []Animal
	if err := c.doJSON(ctx, http.MethodGet, "/animals", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Sounds(ctx context.Context) ([]string, error) {
	var out struct {
		Sounds []string `json:"sounds"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/animals/sounds", nil, &out); err != nil {
		return nil, err
	}
	return out.Sounds, nil
}

func (c *Client) Report(ctx context.Context) (string, error) {
	raw, err := c.do(ctx, http.MethodGet, "/report", "text/plain", nil)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("zooapi: marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	raw, err := c.do(ctx, method, path, "application/json", body)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("zooapi: unmarshal json: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path, accept string, body io.Reader) ([]byte, error) {
	if c == nil || c.HTTP == nil {
		return nil, errors.New("zooapi: nil client")
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("zooapi: new request: %w", err)
	}
	req.Header.Set("Accept", accept)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("zooapi: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("zooapi: read body: %w", err)
	}
	if int64(len(raw)) > maxBody {
		return nil, ErrBodyTooLarge
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}
	return raw, nil
}
