package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/osse101/GreenMap_Go/internal/domain"
	"github.com/osse101/GreenMap_Go/internal/logger"
	"github.com/osse101/GreenMap_Go/internal/metrics"
)

// Client calls a model server over HTTP. The model is warmed up lazily on
// first use through a shared ModelLoader.
type Client struct {
	baseURL string
	model   string
	http    *http.Client
	loader  *ModelLoader
}

// NewClient builds a client for the model service at baseURL.
func NewClient(baseURL, model string, timeout time.Duration) *Client {
	c := &Client{
		baseURL: baseURL,
		model:   model,
		http:    &http.Client{Timeout: timeout},
	}
	c.loader = NewModelLoader(c.loadModel)
	return c
}

type classifyResponse struct {
	Predictions []Prediction `json:"predictions"`
}

// EnsureLoaded warms the model once per process.
func (c *Client) EnsureLoaded(ctx context.Context) error {
	return c.loader.EnsureLoaded(ctx)
}

// Loaded reports whether the model has warmed up.
func (c *Client) Loaded() bool { return c.loader.Loaded() }

// Preload starts the warm-up in the background and only logs failures.
func (c *Client) Preload(ctx context.Context) {
	go func() {
		if err := c.EnsureLoaded(ctx); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPreloadFailed, "error", err)
		}
	}()
}

// Classify ensures the model is loaded, then scores image.
func (c *Client) Classify(ctx context.Context, image []byte) ([]Prediction, error) {
	if err := c.EnsureLoaded(ctx); err != nil {
		metrics.ClassifierErrors.WithLabelValues("load").Inc()
		return nil, fmt.Errorf("%w: load: %v", domain.ErrClassifierFailed, err)
	}

	start := time.Now()
	var out classifyResponse
	err := c.post(ctx, fmt.Sprintf(pathClassifyFormat, c.baseURL, c.model), "image/jpeg", image, &out)
	metrics.ClassifierDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ClassifierErrors.WithLabelValues("classify").Inc()
		logger.FromContext(ctx).Warn(LogMsgClassifyFailed, "error", err)
		return nil, fmt.Errorf("%w: classify: %v", domain.ErrClassifierFailed, err)
	}
	return out.Predictions, nil
}

func (c *Client) loadModel(ctx context.Context) error {
	return c.post(ctx, fmt.Sprintf(pathLoadFormat, c.baseURL, c.model), "application/json", nil, nil)
}

func (c *Client) post(ctx context.Context, url, contentType string, body []byte, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set(contentTypeHeader, contentType)
	if id := logger.GetRequestID(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("model service returned %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out)
}
