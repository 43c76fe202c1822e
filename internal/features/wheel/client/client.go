// Package client talks to the wheelspin REST API.
package client

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

	"github.com/rs/zerolog"

	"wheelspin-backend/internal/common/middleware"
	"wheelspin-backend/internal/features/wheel/mapper"
	"wheelspin-backend/internal/features/wheel/models"
	"wheelspin-backend/internal/features/wheel/models/dto"
	"wheelspin-backend/internal/features/wheel/selector"
)

var (
	// ErrBackend wraps every non-2xx answer and transport failure.
	ErrBackend       = errors.New("wheelspin backend error")
	ErrWheelNotFound = errors.New("wheel not found")
)

// Client implements run.Drawer over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     zerolog.Logger
}

func NewClient(httpClient *http.Client, baseURL string, logger zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

func (c *Client) GetWheel(ctx context.Context, wheelID string) (models.Wheel, error) {
	var resp dto.WheelResponse
	if err := c.do(ctx, http.MethodGet, wheelPath(wheelID), nil, http.StatusOK, &resp); err != nil {
		return models.Wheel{}, err
	}
	return mapper.FromWheelResponse(&resp), nil
}

func (c *Client) CreateWheel(ctx context.Context, req *dto.WheelCreateRequest) (models.Wheel, error) {
	var resp dto.WheelResponse
	if err := c.do(ctx, http.MethodPost, "/wheelspin", req, http.StatusCreated, &resp); err != nil {
		return models.Wheel{}, err
	}
	return mapper.FromWheelResponse(&resp), nil
}

func (c *Client) UpdateWheel(ctx context.Context, wheelID string, req *dto.WheelUpdateRequest) (models.Wheel, error) {
	var resp dto.WheelResponse
	if err := c.do(ctx, http.MethodPatch, wheelPath(wheelID), req, http.StatusOK, &resp); err != nil {
		return models.Wheel{}, err
	}
	return mapper.FromWheelResponse(&resp), nil
}

// Spin requests one draw. A null winner is reported as
// selector.ErrNoEligibleCandidates.
func (c *Client) Spin(ctx context.Context, wheelID string, excludeIDs []string) (models.Entry, error) {
	if excludeIDs == nil {
		excludeIDs = []string{}
	}

	var resp dto.SpinResponse
	body := dto.SpinRequest{ExcludeEntryIDs: excludeIDs}
	if err := c.do(ctx, http.MethodPost, wheelPath(wheelID)+"/spin", body, http.StatusOK, &resp); err != nil {
		return models.Entry{}, err
	}

	if resp.Winner == nil {
		return models.Entry{}, selector.ErrNoEligibleCandidates
	}
	return models.Entry{ID: resp.Winner.ID, Label: resp.Winner.Label}, nil
}

func wheelPath(wheelID string) string {
	return "/wheelspin/" + url.PathEscape(wheelID)
}

func (c *Client) do(ctx context.Context, method, path string, in interface{}, wantStatus int, out interface{}) error {
	var reader io.Reader
	if in != nil {
		body, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: http call: %w", ErrBackend, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %w", ErrBackend, err)
	}

	if resp.StatusCode != wantStatus {
		return c.statusError(method, path, resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: decode response: %w", ErrBackend, err)
	}
	return nil
}

func (c *Client) statusError(method, path string, status int, body []byte) error {
	msg := strings.TrimSpace(string(body))

	var errResp middleware.ErrorResponse
	if json.Unmarshal(body, &errResp) == nil && errResp.Error != nil {
		msg = fmt.Sprintf("%s: %s", errResp.Error.Code, errResp.Error.Message)
	}

	c.logger.Warn().
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Str("error", msg).
		Msg("Backend request failed")

	if status == http.StatusNotFound {
		return fmt.Errorf("%w: %w: %s", ErrBackend, ErrWheelNotFound, msg)
	}
	return fmt.Errorf("%w: status %d: %s", ErrBackend, status, msg)
}
