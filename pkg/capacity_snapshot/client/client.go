// Copyright 2025 NVIDIA CORPORATION
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/NVIDIA/kai-queue-snapshot/pkg/capacity_snapshot"
	"github.com/NVIDIA/kai-queue-snapshot/pkg/common/constants"
	"github.com/NVIDIA/kai-queue-snapshot/pkg/scheduler/api/common_info"
)

const (
	defaultTimeout = 30 * time.Second
	maxErrorBody   = 8 << 10
)

// APIError is a non-2xx response of the snapshot server.
type APIError struct {
	StatusCode int
	Exception  string
	Message    string
	Queue      string
}

func (e *APIError) Error() string {
	if e.Queue != "" {
		return fmt.Sprintf("%d %s: queue <%s>: %s", e.StatusCode, e.Exception, e.Queue, e.Message)
	}
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Exception, e.Message)
}

// Unwrap maps the server's error kind back to the matching sentinel.
func (e *APIError) Unwrap() error {
	switch e.Exception {
	case common_info.UnknownLabelKind:
		return common_info.ErrUnknownLabel
	case common_info.InvalidQueueReferenceKind:
		return common_info.ErrInvalidQueueReference
	default:
		return nil
	}
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(c *Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetSnapshot fetches the scheduler snapshot of label.
func (c *Client) GetSnapshot(ctx context.Context, label string) (*capacity_snapshot.SchedulerSnapshot, error) {
	requestURL, err := c.snapshotURL(label)
	if err != nil {
		return nil, err
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create request for %s", requestURL)
	}
	request.Header.Set("Accept", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", requestURL)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, decodeAPIError(response)
	}

	snapshot := &capacity_snapshot.SchedulerSnapshot{}
	if err := json.NewDecoder(response.Body).Decode(snapshot); err != nil {
		return nil, errors.Wrap(err, "failed to decode scheduler snapshot")
	}
	return snapshot, nil
}

func (c *Client) snapshotURL(label string) (string, error) {
	base, err := url.Parse(c.baseURL + constants.SchedulerAPIPath)
	if err != nil {
		return "", errors.Wrapf(err, "invalid server url %q", c.baseURL)
	}
	if label != "" {
		query := base.Query()
		query.Set(constants.LabelQueryParam, label)
		base.RawQuery = query.Encode()
	}
	return base.String(), nil
}

func decodeAPIError(response *http.Response) error {
	apiErr := &APIError{StatusCode: response.StatusCode}
	body, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBody))

	payload := &capacity_snapshot.ErrorResponse{}
	if err := json.Unmarshal(body, payload); err != nil || payload.Exception == "" {
		apiErr.Exception = common_info.InternalErrorKind
		apiErr.Message = strings.TrimSpace(string(body))
		if apiErr.Message == "" {
			apiErr.Message = response.Status
		}
		return apiErr
	}

	apiErr.Exception = payload.Exception
	apiErr.Message = payload.Message
	apiErr.Queue = payload.Queue
	return apiErr
}
