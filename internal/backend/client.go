package backend

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
	"github.com/TVAexe/ar-fe-admin/pkg/pagination"

	"github.com/TVAexe/ar-fe-admin/internal/domain"
)

const serviceName = "catalog"

// Doer is the interface for executing HTTP requests.
// Both httpclient.Client and httpclient.CircuitBreakerClient satisfy this.
type Doer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// Client calls the catalog backend REST API. Every request forwards the
// caller's bearer token; a request without a token fails before any network
// call is made.
type Client struct {
	http    Doer
	baseURL string
	logger  *slog.Logger
}

// NewClient creates a catalog backend client. baseURL is the backend origin
// without the /api/v1 prefix.
func NewClient(httpClient Doer, baseURL string, logger *slog.Logger) *Client {
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// envelope is the backend's response wrapper. Data is kept raw so each call
// site can decode its own payload shape.
type envelope struct {
	StatusCode int             `json:"statusCode"`
	Error      *string         `json:"error"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

// listData is the nested payload of every paginated list endpoint.
type listData[T any] struct {
	Meta   pagination.Meta `json:"meta"`
	Result []T             `json:"result"`
}

func (c *Client) token(ctx context.Context) (string, error) {
	token := middleware.TokenFromContext(ctx)
	if token == "" {
		return "", apperrors.Unauthorized("missing bearer token")
	}
	return token, nil
}

// doJSON performs an authenticated JSON request against the backend and
// decodes the envelope's data into out (when out is non-nil).
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, payload, out any) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal %s %s request: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}

	target := c.baseURL + "/api/v1" + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("create %s %s request: %w", method, path, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.execute(ctx, req, method, path, out)
}

// doMultipart performs an authenticated multipart/form-data request and
// decodes the envelope's data into out. Uploads within one field keep their
// slice order; the backend relies on it for image ordering.
func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, files map[string][]domain.FileUpload, out any) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("write form field %s: %w", name, err)
		}
	}
	for field, uploads := range files {
		for _, upload := range uploads {
			part, err := createFilePart(writer, field, upload)
			if err != nil {
				return fmt.Errorf("create form file %s: %w", field, err)
			}
			if _, err := io.Copy(part, upload.Data); err != nil {
				return fmt.Errorf("copy form file %s: %w", upload.Name, err)
			}
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api/v1"+path, &buf)
	if err != nil {
		return fmt.Errorf("create %s %s request: %w", method, path, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.execute(ctx, req, method, path, out)
}

var partQuoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, `\"`)

// createFilePart opens a form-data section carrying the upload's own content
// type, falling back to application/octet-stream when the client sent none.
func createFilePart(w *multipart.Writer, field string, upload domain.FileUpload) (io.Writer, error) {
	contentType := upload.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		partQuoteEscaper.Replace(field), partQuoteEscaper.Replace(upload.Name)))
	h.Set("Content-Type", contentType)
	return w.CreatePart(h)
}

func (c *Client) execute(ctx context.Context, req *http.Request, method, path string, out any) error {
	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("call %s %s %s: %w", serviceName, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return httpclient.ParseResponseError(resp, serviceName)
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return fmt.Errorf("%s %s returned empty data", method, path)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode %s %s data: %w", method, path, err)
	}

	c.logger.DebugContext(ctx, "catalog call succeeded",
		slog.String("method", method),
		slog.String("path", path),
	)
	return nil
}
