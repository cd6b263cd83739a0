// Package github provides a ProfileSearcher backed by the GitHub user search API.
package github

import (
	"context"
	"errors"
	"net/url"

	"github.com/ersonp/nearby/internal/domain/entities"
	"github.com/ersonp/nearby/internal/domain/ports"
	"github.com/ersonp/nearby/internal/infrastructure/config"
	"github.com/ersonp/nearby/internal/infrastructure/httpjson"
)

const (
	searchPath = "/search/users"
	mediaType  = "application/vnd.github+json"
)

// Client implements ports.ProfileSearcher using GitHub.
type Client struct {
	http *httpjson.Client
}

var _ ports.ProfileSearcher = (*Client)(nil)

// NewClient creates a new GitHub search client.
func NewClient(cfg config.GitHubConfig, httpCfg config.HTTPConfig) (*Client, error) {
	c, err := httpjson.New(cfg.BaseURL, mediaType, httpCfg)
	if err != nil {
		return nil, err
	}
	return &Client{http: c}, nil
}

// searchResponse is the subset of the search payload we consume. Items is a
// pointer so that a body without the field is rejected.
type searchResponse struct {
	TotalCount int                `json:"total_count"`
	Items      *[]entities.Entity `json:"items"`
}

// SearchByLocation returns the first page of users whose profile location
// matches location. Blank input returns ports.ErrInvalidInput without a request.
func (c *Client) SearchByLocation(ctx context.Context, location string) ([]entities.Entity, error) {
	location = entities.NormalizeLocation(location)
	if location == "" {
		return nil, ports.ErrInvalidInput
	}

	var resp searchResponse
	query := url.Values{"q": {"location:" + location}}
	if err := c.http.GetJSON(ctx, searchPath, query, &resp); err != nil {
		return nil, err
	}

	if resp.Items == nil {
		return nil, &ports.FetchError{
			Status:  200,
			Message: "decoding response",
			Err:     errors.New("missing items field"),
		}
	}

	return *resp.Items, nil
}
