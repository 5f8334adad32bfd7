// Package client talks to the exception log HTTP API.
package client

import (
	"context"
	"fmt"
	"strconv"

	"exceptionlogger/src/model"
	"exceptionlogger/src/response"

	"github.com/go-resty/resty/v2"
)

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("exception api: status %d: %s", e.StatusCode, e.Detail)
}

type Client struct {
	http *resty.Client
}

func New(config Config) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(config.BaseURL).
			SetTimeout(config.Timeout).
			SetHeader("Accept", "application/json"),
	}
}

type exceptionsEnvelope struct {
	Status string                  `json:"status"`
	Data   []model.ExceptionRecord `json:"data"`
}

type detailsEnvelope struct {
	Status string                   `json:"status"`
	Data   model.ApplicationDetails `json:"data"`
}

// SaveException posts report and returns the acknowledgment message.
func (c *Client) SaveException(ctx context.Context, report model.ExceptionReport) (string, error) {
	var result response.MessageEnvelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(report).
		SetResult(&result).
		SetError(&response.ErrorBody{}).
		Post("/save-application-exception/")
	if err := checkResponse(resp, err); err != nil {
		return "", err
	}
	return result.Message, nil
}

// GetExceptions lists the exceptions of applicationID filed under category.
func (c *Client) GetExceptions(ctx context.Context, category string, applicationID int64) ([]model.ExceptionRecord, error) {
	var result exceptionsEnvelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"type":           category,
			"application_id": strconv.FormatInt(applicationID, 10),
		}).
		SetResult(&result).
		SetError(&response.ErrorBody{}).
		Get("/get-application-exceptions/")
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}
	if result.Data == nil {
		result.Data = []model.ExceptionRecord{}
	}
	return result.Data, nil
}

// GetApplicationDetails fetches the registry entry of applicationID.
func (c *Client) GetApplicationDetails(ctx context.Context, applicationID int64) (*model.ApplicationDetails, error) {
	var result detailsEnvelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("app_id", strconv.FormatInt(applicationID, 10)).
		SetResult(&result).
		SetError(&response.ErrorBody{}).
		Get("/get-application-details/")
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

func checkResponse(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("exception api request failed: %w", err)
	}
	if !resp.IsError() {
		return nil
	}
	apiErr := &APIError{StatusCode: resp.StatusCode(), Detail: resp.Status()}
	if body, ok := resp.Error().(*response.ErrorBody); ok && body.Detail != "" {
		apiErr.Detail = body.Detail
	}
	return apiErr
}
