package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-rm-cloud/internal/config"
	"github.com/MKhiriev/go-rm-cloud/internal/logger"
	"github.com/MKhiriev/go-rm-cloud/internal/utils"
	"github.com/MKhiriev/go-rm-cloud/models"
)

const (
	documentListPath = "document-storage/json/2/docs"
	uploadPath       = "document-storage/json/2/upload/request"
	updateStatusPath = "document-storage/json/2/upload/update-status"
)

type httpCloudAdapter struct {
	client *utils.HTTPClient
	blobs  *utils.HTTPClient

	registerURL  string
	tokenURL     string
	discoveryURL string

	mu      sync.RWMutex
	token   string
	storage string

	logger *logger.Logger
}

// NewHTTPCloudAdapter constructs an HTTP/REST implementation of
// [CloudAdapter]. Endpoint URLs come from adapterCfg; a configured
// StorageHost is applied right away so discovery can be skipped.
//
// Returns an error if any configured endpoint is not an absolute URL.
func NewHTTPCloudAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (CloudAdapter, error) {
	a := &httpCloudAdapter{
		client: utils.NewHTTPClient(),
		blobs:  utils.NewBlobHTTPClient(adapterCfg.RequestTimeout),
		logger: logger,
	}
	a.client.SetTimeout(adapterCfg.RequestTimeout)
	if adapterCfg.UserAgent != "" {
		a.client.SetHeader("User-Agent", adapterCfg.UserAgent)
		a.blobs.SetHeader("User-Agent", adapterCfg.UserAgent)
	}

	var err error
	if a.registerURL, err = normalizeBaseURL(adapterCfg.RegisterURL); err != nil {
		return nil, fmt.Errorf("invalid register url: %w", err)
	}
	if a.tokenURL, err = normalizeBaseURL(adapterCfg.TokenURL); err != nil {
		return nil, fmt.Errorf("invalid token url: %w", err)
	}
	if a.discoveryURL, err = normalizeBaseURL(adapterCfg.DiscoveryURL); err != nil {
		return nil, fmt.Errorf("invalid discovery url: %w", err)
	}
	if adapterCfg.StorageHost != "" {
		if err = a.SetStorageHost(adapterCfg.StorageHost); err != nil {
			return nil, fmt.Errorf("invalid storage host: %w", err)
		}
	}

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
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

// SetToken implements [CloudAdapter].
func (h *httpCloudAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [CloudAdapter].
func (h *httpCloudAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// SetStorageHost implements [CloudAdapter]. A bare host name is taken as an
// https endpoint.
func (h *httpCloudAdapter) SetStorageHost(endpoint string) error {
	normalized, err := normalizeBaseURL(endpoint)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.storage = normalized
	return nil
}

// StorageHost implements [CloudAdapter].
func (h *httpCloudAdapter) StorageHost() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.storage
}

// RegisterDevice implements [CloudAdapter]. The device token is the plain
// text body of the response.
func (h *httpCloudAdapter) RegisterDevice(ctx context.Context, reg models.DeviceRegistration) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(reg).
		Post(h.registerURL)
	if err != nil {
		return "", transportError("register device", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token := strings.TrimSpace(string(resp.Body()))
	if token == "" {
		return "", fmt.Errorf("register device: %w: empty token", ErrDecode)
	}
	return token, nil
}

// RefreshUserToken implements [CloudAdapter]. The request body is empty; the
// device token travels as the bearer.
func (h *httpCloudAdapter) RefreshUserToken(ctx context.Context, deviceToken string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(deviceToken).
		Post(h.tokenURL)
	if err != nil {
		return "", transportError("refresh user token", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token := strings.TrimSpace(string(resp.Body()))
	if token == "" {
		return "", fmt.Errorf("refresh user token: %w: empty token", ErrDecode)
	}
	return token, nil
}

// DiscoverStorageHost implements [CloudAdapter].
func (h *httpCloudAdapter) DiscoverStorageHost(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(h.discoveryURL)
	if err != nil {
		return "", transportError("discover storage host", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var host models.StorageHost
	if err = json.Unmarshal(resp.Body(), &host); err != nil {
		return "", decodeError("discovery", err)
	}
	if host.Status != models.StorageHostOK || host.Host == "" {
		h.logger.Error().
			Str("func", "httpCloudAdapter.DiscoverStorageHost").
			Str("status", host.Status).
			Str("host", host.Host).
			Msg("bad response from service discovery")
		return "", fmt.Errorf("%w: status %q", ErrDiscoveryNotOK, host.Status)
	}

	return "https://" + host.Host, nil
}

// ListDocuments implements [CloudAdapter]. GET /document-storage/json/2/docs.
func (h *httpCloudAdapter) ListDocuments(ctx context.Context, withBlob bool) ([]models.Document, error) {
	req, endpoint, err := h.storageRequest(ctx, documentListPath)
	if err != nil {
		return nil, err
	}
	if withBlob {
		req.SetQueryParam("withBlob", "1")
	}

	resp, err := req.Get(endpoint)
	if err != nil {
		return nil, transportError("list documents", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var docs []models.Document
	if err = json.Unmarshal(resp.Body(), &docs); err != nil {
		return nil, decodeError("document list", err)
	}
	return docs, nil
}

// GetDocument implements [CloudAdapter]. It is the document list narrowed to
// one id, always with a blob URL.
func (h *httpCloudAdapter) GetDocument(ctx context.Context, id uuid.UUID) ([]models.Document, error) {
	req, endpoint, err := h.storageRequest(ctx, documentListPath)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetQueryParam("withBlob", "1").
		SetQueryParam("doc", id.String()).
		Get(endpoint)
	if err != nil {
		return nil, transportError("get document", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var docs []models.Document
	if err = json.Unmarshal(resp.Body(), &docs); err != nil {
		return nil, decodeError("document", err)
	}
	return docs, nil
}

// RequestUpload implements [CloudAdapter]. PUT /document-storage/json/2/upload/request.
func (h *httpCloudAdapter) RequestUpload(ctx context.Context, reqs []models.UploadRequest) ([]models.UploadRequestResponse, error) {
	req, endpoint, err := h.storageRequest(ctx, uploadPath)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(reqs).
		Put(endpoint)
	if err != nil {
		return nil, transportError("upload", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var slots []models.UploadRequestResponse
	if err = json.Unmarshal(resp.Body(), &slots); err != nil {
		return nil, decodeError("upload request", err)
	}
	return slots, nil
}

// PutBlob implements [CloudAdapter]. The blob client strips the content type
// resty would otherwise detect.
func (h *httpCloudAdapter) PutBlob(ctx context.Context, blobURL string, data []byte) error {
	resp, err := h.blobs.R().
		SetContext(ctx).
		SetBody(data).
		Put(blobURL)
	if err != nil {
		return transportError("put blob", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%w %d: blob upload not accepted", ErrUnexpectedStatus, resp.StatusCode())
	}
	return nil
}

// UpdateStatus implements [CloudAdapter]. PUT /document-storage/json/2/upload/update-status.
func (h *httpCloudAdapter) UpdateStatus(ctx context.Context, reqs []models.UpdateStatusRequest) ([]models.UpdateStatusResponse, error) {
	req, endpoint, err := h.storageRequest(ctx, updateStatusPath)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(reqs).
		Put(endpoint)
	if err != nil {
		return nil, transportError("update status", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var statuses []models.UpdateStatusResponse
	if err = json.Unmarshal(resp.Body(), &statuses); err != nil {
		return nil, decodeError("update status", err)
	}
	return statuses, nil
}

// GetBlob implements [CloudAdapter].
func (h *httpCloudAdapter) GetBlob(ctx context.Context, blobURL string) ([]byte, error) {
	resp, err := h.blobs.R().
		SetContext(ctx).
		Get(blobURL)
	if err != nil {
		return nil, transportError("get blob", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// storageRequest prepares an authenticated request against the
// document-storage host.
func (h *httpCloudAdapter) storageRequest(ctx context.Context, path string) (*resty.Request, string, error) {
	base := h.StorageHost()
	if base == "" {
		return nil, "", ErrNoStorageHost
	}

	return h.authedRequest(ctx), base + "/" + path, nil
}

func (h *httpCloudAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
