// Package armyforge fetches exported army lists and common rules from
// Army Forge.
package armyforge

//go:generate mockgen -destination=mock/mock_client.go -package=armyforgemock github.com/KirkDiggler/opr-tts-api/internal/clients/armyforge Client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/KirkDiggler/opr-tts-api/internal/entities/armyforge"
	"github.com/KirkDiggler/opr-tts-api/internal/errors"
	"github.com/KirkDiggler/opr-tts-api/internal/pkg/clock"
)

// Default hosts
const (
	DefaultBaseURL     = "https://army-forge.onepagerules.com"
	DefaultBetaBaseURL = "https://army-forge-beta.onepagerules.com"
)

// Client defines the Army Forge calls the importer needs
type Client interface {
	// GetArmyList fetches the tabletop export of a shared list
	GetArmyList(ctx context.Context, armyID string, beta bool) (*armyforge.ListState, error)

	// GetCommonRules fetches the rules shared by every army of a game system
	GetCommonRules(ctx context.Context, system armyforge.GameSystem) ([]armyforge.RuleDefinition, error)
}

// Config contains configuration options for the Army Forge client.
type Config struct {
	// BaseURL (optional, defaults to DefaultBaseURL)
	BaseURL string
	// BetaBaseURL is used for lists shared from the beta site (optional)
	BetaBaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for common rules (optional, defaults to 1 hour)
	CacheTTL time.Duration
	// HTTPClient overrides the client built from HTTPTimeout (optional)
	HTTPClient *http.Client
	// Clock drives cache expiry (optional)
	Clock clock.Clock
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.BetaBaseURL == "" {
		cfg.BetaBaseURL = DefaultBetaBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = time.Hour
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateAbsoluteURL("BaseURL", cfg.BaseURL, vb)
	errors.ValidateAbsoluteURL("BetaBaseURL", cfg.BetaBaseURL, vb)
	errors.ValidateNonNegative("HTTPTimeout", cfg.HTTPTimeout, vb)
	errors.ValidateNonNegative("CacheTTL", cfg.CacheTTL, vb)
	return vb.Build()
}

// New creates a new Army Forge client. Common rules are cached for CacheTTL.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	base := &client{
		http:    httpClient,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		betaURL: strings.TrimRight(cfg.BetaBaseURL, "/"),
	}

	return newCachedClient(base, cfg.CacheTTL, cfg.Clock), nil
}

type client struct {
	http    *http.Client
	baseURL string
	betaURL string
}

type listResponse struct {
	armyforge.ListState
	Error string `json:"error,omitempty"`
}

func (c *client) GetArmyList(ctx context.Context, armyID string, beta bool) (*armyforge.ListState, error) {
	if strings.TrimSpace(armyID) == "" {
		return nil, errors.InvalidArgument("army id is required")
	}

	host := c.baseURL
	if beta {
		host = c.betaURL
	}
	endpoint := fmt.Sprintf("%s/api/tts?id=%s", host, url.QueryEscape(armyID))

	var resp listResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, errors.Wrapf(err, "failed to fetch army list %s", armyID)
	}
	if resp.Error != "" {
		return nil, errors.NotFoundf("army forge could not export list %s: %s", armyID, resp.Error).
			WithMeta("army_id", armyID)
	}

	list := resp.ListState
	return &list, nil
}

func (c *client) GetCommonRules(ctx context.Context, system armyforge.GameSystem) ([]armyforge.RuleDefinition, error) {
	id, ok := system.CommonRulesID()
	if !ok {
		return nil, errors.InvalidArgumentf("unknown game system %q", system)
	}

	var resp armyforge.CommonRules
	endpoint := fmt.Sprintf("%s/api/rules/common/%d", c.baseURL, id)
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, errors.Wrapf(err, "failed to fetch common rules for %s", system)
	}

	return resp.Rules, nil
}

func (c *client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return errors.WrapWithCode(err, errors.CodeDeadlineExceeded, "army forge request cancelled")
		}
		return errors.WrapWithCode(err, errors.CodeUnavailable, "army forge request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errors.NotFound("army forge returned not found")
	case resp.StatusCode != http.StatusOK:
		return errors.Unavailablef("army forge returned status %d", resp.StatusCode).
			WithMeta("status", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "army forge returned malformed json")
	}
	return nil
}
