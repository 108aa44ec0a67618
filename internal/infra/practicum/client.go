package practicum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/go-resty/resty/v2"
)

var (
	ErrRequestFailed     = errors.New("homework statuses request failed")
	ErrBadStatusCode     = errors.New("homework statuses request returned a non-200 status")
	ErrMalformedResponse = errors.New("homework statuses response could not be decoded")
)

// Client queries the Practicum homework-statuses endpoint.
type Client struct {
	client   *resty.Client
	endpoint string
	token    string
}

func NewClient(endpoint, token string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetTimeout(timeout)

	return &Client{
		client:   client,
		endpoint: endpoint,
		token:    token,
	}
}

// Pointer fields distinguish a key that is absent from the payload from one
// that carries a zero value.
type statusesResponse struct {
	Homeworks   *[]homeworkEntry `json:"homeworks"`
	CurrentDate *int64           `json:"current_date"`
}

type homeworkEntry struct {
	Name   *string `json:"homework_name"`
	Status *string `json:"status"`
}

// HomeworkStatuses fetches homeworks updated since the given unix timestamp
// and validates the response shape into domain types. All failures map to
// the recoverable error family; the caller decides only whether to log them.
func (c *Client) HomeworkStatuses(ctx context.Context, from int64) (*homework.StatusPage, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "OAuth "+c.token).
		SetQueryParam("from_date", strconv.FormatInt(from, 10)).
		Get(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrBadStatusCode, resp.StatusCode())
	}

	var decoded statusesResponse
	if err := json.Unmarshal(resp.Body(), &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if decoded.Homeworks == nil || decoded.CurrentDate == nil {
		return nil, homework.ErrEmptyResponse
	}

	page := &homework.StatusPage{
		Homeworks:   make([]homework.Homework, 0, len(*decoded.Homeworks)),
		CurrentDate: *decoded.CurrentDate,
	}
	for _, entry := range *decoded.Homeworks {
		if entry.Name == nil || entry.Status == nil {
			return nil, homework.ErrIncompleteHomework
		}
		page.Homeworks = append(page.Homeworks, homework.Homework{
			Name:   *entry.Name,
			Status: homework.Status(*entry.Status),
		})
	}

	return page, nil
}
