package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gorilla/websocket"

	"github.com/dterekhov/go-mem-sync/internal/config"
	"github.com/dterekhov/go-mem-sync/internal/utils"
	"github.com/dterekhov/go-mem-sync/models"
)

const defaultRequestTimeout = 15 * time.Second

type httpRelayAdapter struct {
	client  *resty.Client
	baseURL string
	hashKey string
	dialer  *websocket.Dialer

	mu    sync.RWMutex
	token string
}

func NewHTTPRelayAdapter(cfg config.AgentRelay) RelayAdapter {
	if cfg.URL == "" {
		cfg.URL = "http://localhost:8080"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}

	baseURL := strings.TrimRight(cfg.URL, "/")

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpRelayAdapter{
		client:  cli,
		baseURL: baseURL,
		hashKey: cfg.HashKey,
		dialer: &websocket.Dialer{
			HandshakeTimeout: cfg.RequestTimeout,
		},
	}
}

func (h *httpRelayAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpRelayAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpRelayAdapter) Register(ctx context.Context, req models.RegisterDeviceRequest) (models.Device, error) {
	r, err := h.signedJSONRequest(ctx, req)
	if err != nil {
		return models.Device{}, fmt.Errorf("register request: %w", err)
	}

	resp, err := r.Post("/api/device/register")
	if err != nil {
		return models.Device{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Device{}, err
	}

	var device models.Device
	if err = json.Unmarshal(resp.Body(), &device); err != nil {
		return models.Device{}, fmt.Errorf("decode register response: %w", err)
	}
	if device.ID == "" {
		return models.Device{}, errors.New("relay returned no device id")
	}

	return device, nil
}

func (h *httpRelayAdapter) Login(ctx context.Context, req models.LoginDeviceRequest) (string, error) {
	r, err := h.signedJSONRequest(ctx, req)
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}

	resp, err := r.Post("/api/device/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return token, nil
}

func (h *httpRelayAdapter) ListDevices(ctx context.Context) (models.DeviceListResponse, error) {
	resp, err := h.authedRequest(ctx).Get("/api/devices")
	if err != nil {
		return models.DeviceListResponse{}, fmt.Errorf("list devices request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeviceListResponse{}, err
	}

	var list models.DeviceListResponse
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return models.DeviceListResponse{}, fmt.Errorf("decode device list response: %w", err)
	}

	return list, nil
}

func (h *httpRelayAdapter) RelayVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("relay version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpRelayAdapter) DialSync(ctx context.Context) (*websocket.Conn, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrUnauthorized
	}

	wsURL, err := syncEndpointURL(h.baseURL)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	conn, resp, err := h.dialer.DialContext(ctx, wsURL, header)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		return nil, fmt.Errorf("dial sync endpoint: %w", err)
	}

	return conn, nil
}

// signedJSONRequest serialises the payload once so the HashSHA256 signature
// and the transmitted body are computed over identical bytes. Signing is
// skipped when no hash key is configured.
func (h *httpRelayAdapter) signedJSONRequest(ctx context.Context, payload any) (*resty.Request, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	r := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if h.hashKey != "" {
		r.SetHeader("HashSHA256", utils.HashString(string(body), h.hashKey))
	}

	return r, nil
}

func (h *httpRelayAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// syncEndpointURL rewrites the relay's HTTP base URL into the ws/wss URL of
// the /ws sync endpoint.
func syncEndpointURL(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse relay url: %w", err)
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("unsupported relay url scheme %q", u.Scheme)
	}

	u.Path = strings.TrimRight(u.Path, "/") + "/ws"
	return u.String(), nil
}

func parseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
