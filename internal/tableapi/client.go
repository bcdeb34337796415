package tableapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/grh-water/water-console/internal/config"
	"github.com/grh-water/water-console/internal/logging"
	"go.uber.org/zap"
)

// Client issues record requests against the low-code table backend. One
// client serves every table under the configured base.
type Client struct {
	baseURL string
	baseID  string
	token   string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates a new table API client
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	return &Client{
		baseURL: cfg.API.BaseURL,
		baseID:  cfg.Tables.BaseID,
		token:   cfg.API.Token,
		http:    &http.Client{},
		logger:  logger,
	}
}

func (c *Client) recordsURL(tableID string, query url.Values) string {
	u := fmt.Sprintf("%s/api/v3/data/%s/%s/records", c.baseURL, c.baseID, tableID)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// The backend accepts either auth scheme depending on deployment, so both
// headers are always sent.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xc-token", c.token)
	req.Header.Set("Authorization", "Bearer "+c.token)
}

// Do performs a single call against a table and decodes the response
// envelope. op names the operation for error reporting, payload is
// marshaled as the JSON body when non-nil.
func (c *Client) Do(ctx context.Context, op, method, tableID string, query url.Values, payload interface{}) (*RecordsResponse, error) {
	reqLogger := logging.WithRequestID(c.logger, uuid.NewString())

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.recordsURL(tableID, query), body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	c.setHeaders(req)

	reqLogger.Debug("table api request",
		zap.String("op", op),
		zap.String("method", method),
		zap.String("table", tableID),
	)

	resp, err := c.http.Do(req)
	if err != nil {
		reqLogger.Error("table api request failed", zap.String("op", op), zap.Error(err))
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest {
		apiErr := &BadRequestError{Msg: "invalid data provided"}
		var detail struct {
			Msg string `json:"msg"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&detail); err == nil && detail.Msg != "" {
			apiErr.Msg = detail.Msg
		}
		reqLogger.Error("table api bad request", zap.String("op", op), zap.String("msg", apiErr.Msg))
		return nil, apiErr
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reqLogger.Error("table api unexpected status",
			zap.String("op", op),
			zap.Int("status", resp.StatusCode),
		)
		return nil, &RequestFailedError{Op: op, StatusCode: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var envelope RecordsResponse
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return nil, fmt.Errorf("decoding response: %w", err)
		}
	}

	reqLogger.Debug("table api response",
		zap.String("op", op),
		zap.Int("records", len(envelope.Records)),
	)

	return &envelope, nil
}
