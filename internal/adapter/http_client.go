package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/centavohq/centavo/internal/config"
	"github.com/centavohq/centavo/internal/logger"
	"github.com/centavohq/centavo/models"
)

type httpRemoteAuthority struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPRemoteAuthority constructs the resty-backed authority client. The
// user scope travels in the bearer token; the per-call userID parameters are
// used for logging and sanity checks only.
func NewHTTPRemoteAuthority(cfg config.ClientRemote, log *logger.Logger) RemoteAuthority {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout)

	h := &httpRemoteAuthority{client: cli, logger: log}
	if cfg.Token != "" {
		h.SetToken(cfg.Token)
	}
	return h
}

func (h *httpRemoteAuthority) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpRemoteAuthority) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// UserIDFromToken extracts the user scope from a bearer token's "sub" claim.
// The token is not verified here; verification is the authority's job.
func UserIDFromToken(rawToken string) (int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(rawToken, jwt.MapClaims{})
	if err != nil {
		return 0, fmt.Errorf("parse bearer token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse user id from token subject: %w", err)
	}
	return id, nil
}

func (h *httpRemoteAuthority) CheckForChanges(ctx context.Context, userID, sinceVersion int64) (models.CheckChangesResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("since", strconv.FormatInt(sinceVersion, 10)).
		Get("/api/sync/check")
	if err != nil {
		return models.CheckChangesResponse{}, fmt.Errorf("check for changes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CheckChangesResponse{}, err
	}

	var out models.CheckChangesResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.CheckChangesResponse{}, fmt.Errorf("decode check response: %w", err)
	}

	return out, nil
}

func (h *httpRemoteAuthority) GetChangesSince(ctx context.Context, table models.TableName, userID, sinceVersion int64, limit int) ([]models.RemoteRecord, error) {
	spec, err := models.Spec(table)
	if err != nil {
		return nil, err
	}

	resp, err := h.authedRequest(ctx).
		SetQueryParam("since", strconv.FormatInt(sinceVersion, 10)).
		SetQueryParam("limit", strconv.Itoa(limit)).
		Get("/api/sync/" + spec.Endpoint + "/changes")
	if err != nil {
		return nil, fmt.Errorf("get changes request (table=%s): %w", table, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var page models.ChangesPage
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return nil, fmt.Errorf("decode changes page (table=%s): %w", table, err)
	}

	return page.Records, nil
}

func (h *httpRemoteAuthority) BatchUpsert(ctx context.Context, table models.TableName, userID int64, records []models.PushRecord) (models.BatchUpsertResponse, error) {
	spec, err := models.Spec(table)
	if err != nil {
		return models.BatchUpsertResponse{}, err
	}

	req := models.BatchUpsertRequest{Records: records}
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/sync/" + spec.Endpoint + "/batch")
	if err != nil {
		return models.BatchUpsertResponse{}, fmt.Errorf("batch upsert request (table=%s): %w", table, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BatchUpsertResponse{}, err
	}

	var out models.BatchUpsertResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.BatchUpsertResponse{}, fmt.Errorf("decode batch upsert response (table=%s): %w", table, err)
	}

	return out, nil
}

func (h *httpRemoteAuthority) DeleteWithVersion(ctx context.Context, table models.TableName, userID int64, id string, expectedVersion int64) (models.DeleteOutcome, error) {
	spec, err := models.Spec(table)
	if err != nil {
		return models.DeleteOutcome{}, err
	}

	resp, err := h.authedRequest(ctx).
		SetQueryParam("version", strconv.FormatInt(expectedVersion, 10)).
		Delete("/api/sync/" + spec.Endpoint + "/" + id)
	if err != nil {
		return models.DeleteOutcome{}, fmt.Errorf("delete with version request (table=%s, id=%s): %w", table, id, err)
	}
	// A conflict outcome arrives as a structured body, not an HTTP error,
	// so decode before mapping non-2xx statuses.
	if resp.StatusCode() == http.StatusConflict || (resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices) {
		var out models.DeleteOutcome
		if err = json.Unmarshal(resp.Body(), &out); err != nil {
			return models.DeleteOutcome{}, fmt.Errorf("decode delete outcome (table=%s, id=%s): %w", table, id, err)
		}
		return out, nil
	}

	return models.DeleteOutcome{}, mapHTTPError(resp)
}

func (h *httpRemoteAuthority) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	bodyLower := strings.ToLower(body)

	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode() == http.StatusConflict || strings.Contains(bodyLower, "version conflict") {
		return ErrVersionConflict
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
