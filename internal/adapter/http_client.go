package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-vault-keeper/internal/config"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/utils"
	"github.com/MKhiriev/go-vault-keeper/models"
)

type httpAdminAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAdminAdapter constructs the REST implementation of [AdminAdapter]
// for the server at cfg.HTTPAddress. An address without a scheme is taken as
// plain http.
func NewHTTPAdminAdapter(cfg config.ClientAdapter, logger *logger.Logger) (AdminAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &httpAdminAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if strings.HasPrefix(raw, ":") {
		raw = "localhost" + raw
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

func (h *httpAdminAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAdminAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAdminAdapter) Version(ctx context.Context) (string, error) {
	var body struct {
		Version string `json:"version"`
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&body).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return body.Version, nil
}

func (h *httpAdminAdapter) ListVaults(ctx context.Context, owner string) ([]int, error) {
	var body models.VaultListResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("owner", owner).
		SetResult(&body).
		Get("/api/owners/{owner}/vaults")
	if err != nil {
		return nil, fmt.Errorf("list vaults request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return body.Numbers, nil
}

func (h *httpAdminAdapter) ShowVault(ctx context.Context, owner string, number int) (models.VaultResponse, error) {
	var body models.VaultResponse

	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"owner": owner, "number": strconv.Itoa(number)}).
		SetResult(&body).
		SetError(&body).
		Get("/api/owners/{owner}/vaults/{number}")
	if err != nil {
		return models.VaultResponse{}, fmt.Errorf("show vault request: %w", err)
	}
	// 404 carries a regular VaultResponse with Exists == false
	if resp.StatusCode() == http.StatusNotFound && body.Number == number {
		return body, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultResponse{}, err
	}

	return body, nil
}

func (h *httpAdminAdapter) DeleteVault(ctx context.Context, owner string, number int) error {
	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"owner": owner, "number": strconv.Itoa(number)}).
		Delete("/api/owners/{owner}/vaults/{number}")
	if err != nil {
		return fmt.Errorf("delete vault request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAdminAdapter) DeleteAllVaults(ctx context.Context, owner string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("owner", owner).
		Delete("/api/owners/{owner}/vaults")
	if err != nil {
		return fmt.Errorf("delete all vaults request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAdminAdapter) Failures(ctx context.Context) ([]models.SaveFailure, error) {
	var body models.FailuresResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&body).
		Get("/api/diagnostics/failures")
	if err != nil {
		return nil, fmt.Errorf("failures request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return body.Failures, nil
}

func (h *httpAdminAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
