package api

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/photoupload/photoctl/internal/client/models"
)

const defaultTimeout = 30 * time.Second

// quoteEscaper sanitizes file names placed into multipart headers.
var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, `\"`)

// HTTPClient is the HTTP/JSON implementation of Client.
//
// Auth: when a bearer token has been installed via SetToken it is sent as
// "Authorization: Bearer <token>"; otherwise the configured basic-auth
// credentials are used as a fallback. 401/403 responses are classified
// but never auto-retried.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	username   string
	password   string

	mu    sync.RWMutex
	token string
}

// NewHTTPClient builds a client for the service rooted at baseURL
// (e.g. "http://localhost:8080/api"). username/password are the basic-auth
// fallback used until a bearer token is set. A non-positive timeout selects
// the default of 30s.
func NewHTTPClient(baseURL, username, password string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		username:   username,
		password:   password,
	}
}

// SetToken installs or clears the bearer token. Safe for concurrent use.
func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Close releases idle transport connections.
func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("X-Correlation-Id", uuid.NewString())

	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	} else if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	return req, nil
}

// do executes the request and returns the response body on 2xx. Transport
// failures surface as ErrNetwork; non-2xx responses as *APIError.
func (c *HTTPClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %w", ErrNetwork, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, newStatusError(resp.StatusCode, body)
	}
	return body, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	body, err := c.do(req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// Upload streams a multipart request with fields "file" and "userId".
// Progress is derived from bytes handed to the transport and capped at 99
// until the server confirms the upload; the final 100 is reported only on
// success.
func (c *HTTPClient) Upload(ctx context.Context, in UploadInput, onProgress ProgressFunc) (*models.Photo, error) {
	tracker := newProgressTracker(in.Size, onProgress)

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := newFilePart(mw, in.FileName, in.ContentType)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, tracker.wrap(in.Body)); err != nil {
			pw.CloseWithError(err)
			return
		}
		if err := mw.WriteField("userId", in.UserID); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := c.newRequest(ctx, http.MethodPost, "/photos/upload", pr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var photo models.Photo
	if err := json.Unmarshal(body, &photo); err != nil {
		return nil, fmt.Errorf("decoding upload response: %w", err)
	}

	tracker.complete()
	return &photo, nil
}

// List fetches one page of photos. The sort order is fixed to uploadedAt desc.
func (c *HTTPClient) List(ctx context.Context, q models.ListQuery) (*models.Page[models.Photo], error) {
	q = q.Normalize()

	params := url.Values{}
	if q.UserID != "" {
		params.Set("userId", q.UserID)
	}
	if q.Status != "" {
		params.Set("status", string(q.Status))
	}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("size", strconv.Itoa(q.Size))
	params.Set("sort", models.SortUploadedAtDesc)

	var page models.Page[models.Photo]
	if err := c.getJSON(ctx, "/photos?"+params.Encode(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get fetches a single photo by id.
func (c *HTTPClient) Get(ctx context.Context, id int64) (*models.Photo, error) {
	var photo models.Photo
	if err := c.getJSON(ctx, fmt.Sprintf("/photos/%d", id), &photo); err != nil {
		return nil, err
	}
	return &photo, nil
}

// Delete removes a photo. Repeated deletes surface ErrNotFound.
func (c *HTTPClient) Delete(ctx context.Context, id int64) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/photos/%d", id), nil)
	if err != nil {
		return err
	}
	_, err = c.do(req)
	return err
}

// Retry asks the server to reprocess a failed photo.
func (c *HTTPClient) Retry(ctx context.Context, id int64) error {
	req, err := c.newRequest(ctx, http.MethodPost, fmt.Sprintf("/photos/%d/retry", id), nil)
	if err != nil {
		return err
	}
	_, err = c.do(req)
	return err
}

// Events fetches the photo's lifecycle audit trail.
func (c *HTTPClient) Events(ctx context.Context, id int64) ([]models.PhotoEvent, error) {
	var events []models.PhotoEvent
	if err := c.getJSON(ctx, fmt.Sprintf("/photos/%d/events", id), &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Stats fetches collection-wide counters.
func (c *HTTPClient) Stats(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats
	if err := c.getJSON(ctx, "/photos/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// newFilePart opens the "file" form part with an explicit content type.
func newFilePart(mw *multipart.Writer, fileName, contentType string) (io.Writer, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(fileName)))
	h.Set("Content-Type", contentType)
	return mw.CreatePart(h)
}
