package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-artist-guesser/internal/config"
	"github.com/MKhiriev/go-artist-guesser/internal/logger"
	"github.com/MKhiriev/go-artist-guesser/internal/utils"
	"github.com/MKhiriev/go-artist-guesser/models"
	"github.com/go-resty/resty/v2"
)

const (
	traceIDHeader = "X-Trace-ID"

	pathNewGame = "/new-game"
	pathGuess   = "/guess"
	pathSearch  = "/musicbrain/search"
)

type httpGameAdapter struct {
	client    *utils.HTTPClient
	ids       *utils.UUIDGenerator
	userAgent string

	logger *logger.Logger
}

// NewHTTPGameAdapter constructs the HTTP/JSON implementation of
// [GameAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and the optional request timeout.
//
// userAgent is sent with every request; appCfg.UserAgent overrides it.
// Returns an error if adapterCfg.HTTPAddress is empty or not a valid URL.
func NewHTTPGameAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, userAgent string, logger *logger.Logger) (GameAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)
	if adapterCfg.RequestTimeout > 0 {
		client.SetTimeout(adapterCfg.RequestTimeout)
	}

	if appCfg.UserAgent != "" {
		userAgent = appCfg.UserAgent
	}

	return &httpGameAdapter{
		client:    client,
		ids:       utils.NewUUIDGenerator(),
		userAgent: userAgent,
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// NewGame implements [GameAdapter]. Any 2xx status is a success; the body is
// not inspected.
func (h *httpGameAdapter) NewGame(ctx context.Context) error {
	resp, err := h.request(ctx).Get(pathNewGame)
	h.logResponse(resp, err)
	if err != nil {
		return fmt.Errorf("new game request: %w: %w", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

// Guess implements [GameAdapter]. The body is decoded before the status is
// checked: a body that is not JSON is [ErrMalformedResponse] whatever the
// status, otherwise a non-2xx status or a flagged body is an [*APIError]
// carrying the backend message.
func (h *httpGameAdapter) Guess(ctx context.Context, guess string) (models.GuessResponse, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.GuessRequest{Guess: guess}).
		Post(pathGuess)
	h.logResponse(resp, err)
	if err != nil {
		return models.GuessResponse{}, fmt.Errorf("guess request: %w: %w", ErrNetwork, err)
	}

	var result models.GuessResponse
	if err = decodeBody(resp, &result); err != nil {
		return models.GuessResponse{}, fmt.Errorf("decode guess response: %w", err)
	}

	if !isSuccess(resp) || result.Failed() {
		return models.GuessResponse{}, newAPIError(resp.StatusCode(), result.ErrorPayload)
	}

	return result, nil
}

type searchResponse struct {
	models.Artist
	models.ErrorPayload
}

// Search implements [GameAdapter]. Error handling follows Guess.
func (h *httpGameAdapter) Search(ctx context.Context, query string) (models.Artist, error) {
	resp, err := h.request(ctx).
		SetQueryParam("q", query).
		Get(pathSearch)
	h.logResponse(resp, err)
	if err != nil {
		return models.Artist{}, fmt.Errorf("search request: %w: %w", ErrNetwork, err)
	}

	var result searchResponse
	if err = decodeBody(resp, &result); err != nil {
		return models.Artist{}, fmt.Errorf("decode search response: %w", err)
	}

	if !isSuccess(resp) || result.Failed() {
		return models.Artist{}, newAPIError(resp.StatusCode(), result.ErrorPayload)
	}

	return result.Artist, nil
}

func (h *httpGameAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader(traceIDHeader, h.ids.Generate())
	if h.userAgent != "" {
		req.SetHeader("User-Agent", h.userAgent)
	}
	return req
}

func (h *httpGameAdapter) logResponse(resp *resty.Response, err error) {
	if resp == nil || resp.Request == nil {
		h.logger.Error().Err(err).Msg("request failed without response")
		return
	}

	event := h.logger.Debug()
	if err != nil || !isSuccess(resp) {
		event = h.logger.Warn().Err(err)
	}

	event.
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Str("trace_id", resp.Request.Header.Get(traceIDHeader)).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("backend request")
}

func decodeBody(resp *resty.Response, v any) error {
	body := resp.Body()
	if len(body) == 0 {
		return fmt.Errorf("%w: empty body (http %d)", ErrMalformedResponse, resp.StatusCode())
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return nil
}
