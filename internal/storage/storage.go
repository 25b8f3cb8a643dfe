// Package storage talks to the file-storage API that holds product images
// and 3D models.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	apperrors "github.com/TVAexe/ar-fe-admin/pkg/errors"
	"github.com/TVAexe/ar-fe-admin/pkg/httpclient"
	"github.com/TVAexe/ar-fe-admin/pkg/middleware"

	"github.com/TVAexe/ar-fe-admin/internal/domain"
)

const serviceName = "files"

// FileStorage is the storage surface the product service depends on.
type FileStorage interface {
	// UploadMany uploads all files in one batch and returns their public URLs
	// in upload order. It is all-or-nothing from the caller's perspective.
	UploadMany(ctx context.Context, files []domain.FileUpload) ([]string, error)
	// Delete removes a single stored object by its public URL.
	Delete(ctx context.Context, fileURL string) error
}

// Doer is the interface for executing HTTP requests.
type Doer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// Client calls the file-storage endpoints of the backend API, forwarding the
// caller's bearer token. Returned object keys are normalized into absolute
// URLs against the public storage base.
type Client struct {
	http          Doer
	baseURL       string
	publicBaseURL string
	logger        *slog.Logger
}

// NewClient creates a file-storage client. baseURL is the API origin,
// publicBaseURL the object-storage origin used to absolutize bare keys.
func NewClient(httpClient Doer, baseURL, publicBaseURL string, logger *slog.Logger) *Client {
	return &Client{
		http:          httpClient,
		baseURL:       strings.TrimRight(baseURL, "/"),
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

var _ FileStorage = (*Client)(nil)

// UploadMany uploads the given files under the `files` multipart field and
// returns their normalized public URLs in upload order.
func (c *Client) UploadMany(ctx context.Context, files []domain.FileUpload) ([]string, error) {
	token := middleware.TokenFromContext(ctx)
	if token == "" {
		return nil, apperrors.Unauthorized("missing bearer token")
	}
	if len(files) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, file := range files {
		part, err := createFilePart(writer, "files", file)
		if err != nil {
			return nil, fmt.Errorf("create form file %s: %w", file.Name, err)
		}
		if _, err := io.Copy(part, file.Data); err != nil {
			return nil, fmt.Errorf("read upload %s: %w", file.Name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/files/multiple", &buf)
	if err != nil {
		return nil, fmt.Errorf("create upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("call %s upload: %w", serviceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, httpclient.ParseResponseError(resp, serviceName)
	}

	var env struct {
		Data struct {
			FileURLs []string `json:"fileUrls"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode upload response: %w", err)
	}
	if len(env.Data.FileURLs) != len(files) {
		return nil, fmt.Errorf("%s upload returned %d urls for %d files", serviceName, len(env.Data.FileURLs), len(files))
	}

	urls := make([]string, len(env.Data.FileURLs))
	for i, u := range env.Data.FileURLs {
		urls[i] = c.NormalizeURL(u)
	}

	c.logger.DebugContext(ctx, "files uploaded", slog.Int("count", len(urls)))
	return urls, nil
}

// Delete removes one stored object addressed by its public URL.
func (c *Client) Delete(ctx context.Context, fileURL string) error {
	token := middleware.TokenFromContext(ctx)
	if token == "" {
		return apperrors.Unauthorized("missing bearer token")
	}

	target := c.baseURL + "/api/v1/files?" + url.Values{"fileUrl": {fileURL}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, target, nil)
	if err != nil {
		return fmt.Errorf("create delete request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("call %s delete: %w", serviceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return httpclient.ParseResponseError(resp, serviceName)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

var partQuoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, `\"`)

// createFilePart opens a form-data section carrying the upload's own content
// type, falling back to application/octet-stream when the client sent none.
func createFilePart(w *multipart.Writer, field string, file domain.FileUpload) (io.Writer, error) {
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		partQuoteEscaper.Replace(field), partQuoteEscaper.Replace(file.Name)))
	h.Set("Content-Type", contentType)
	return w.CreatePart(h)
}

// NormalizeURL prefixes bare object keys with the public storage base URL.
// Already-absolute http(s) URLs pass through unchanged.
func (c *Client) NormalizeURL(u string) string {
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return c.publicBaseURL + "/" + strings.TrimLeft(u, "/")
}
