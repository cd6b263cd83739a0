// Package genderize provides a Classifier backed by the genderize.io API.
package genderize

import (
	"context"
	"net/url"
	"strings"

	"github.com/ersonp/nearby/internal/domain/entities"
	"github.com/ersonp/nearby/internal/domain/ports"
	"github.com/ersonp/nearby/internal/infrastructure/config"
	"github.com/ersonp/nearby/internal/infrastructure/httpjson"
)

// Client implements ports.Classifier using genderize.io.
type Client struct {
	http *httpjson.Client
}

var _ ports.Classifier = (*Client)(nil)

// NewClient creates a new genderize client.
func NewClient(cfg config.GenderizeConfig, httpCfg config.HTTPConfig) (*Client, error) {
	c, err := httpjson.New(cfg.BaseURL, "application/json", httpCfg)
	if err != nil {
		return nil, err
	}
	return &Client{http: c}, nil
}

// prediction is the genderize.io response. Gender is null for names the
// service cannot classify.
type prediction struct {
	Name        string  `json:"name"`
	Gender      *string `json:"gender"`
	Probability float64 `json:"probability"`
	Count       int     `json:"count"`
}

// Classify guesses the gender for handle.
func (c *Client) Classify(ctx context.Context, handle string) (entities.Attribute, error) {
	if strings.TrimSpace(handle) == "" {
		return entities.Attribute{}, ports.ErrInvalidInput
	}

	var p prediction
	if err := c.http.GetJSON(ctx, "/", url.Values{"name": {handle}}, &p); err != nil {
		return entities.Attribute{}, err
	}

	attr := entities.Attribute{
		Probability: p.Probability,
		Count:       p.Count,
	}
	if p.Gender != nil {
		attr.Label = *p.Gender
	}
	return attr, nil
}
