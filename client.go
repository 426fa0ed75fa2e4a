package lakefs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/go-openapi/swag"
	"github.com/google/uuid"

	"github.com/treeverse/lakefs-go/generated"
	"github.com/treeverse/lakefs-go/internal/schema"
	"github.com/treeverse/lakefs-go/model"
)

// DefaultEndpoint is the API endpoint of a local lakeFS installation.
//
// Convenience methods use paths like "/repositories/{repository}/branches" under this base.
const DefaultEndpoint = "http://localhost:8000/api/v1"

// RequestIDHeader carries the per-request identifier sent with every call.
const RequestIDHeader = "X-Request-ID"

// Options configure a Client.
type Options struct {
	// Endpoint is the API base URL. Defaults to LAKEFS_ENDPOINT if set, else DefaultEndpoint.
	Endpoint string

	// AccessKeyID and SecretAccessKey are sent as HTTP basic auth. They default to
	// LAKEFS_ACCESS_KEY_ID and LAKEFS_SECRET_ACCESS_KEY. Either both or neither must be set.
	AccessKeyID     string
	SecretAccessKey string

	// HTTPClient is used for requests. Defaults to a client with a 30s timeout.
	HTTPClient *http.Client

	// Logger receives a debug record per request. Defaults to discarding.
	Logger *slog.Logger

	// StrictValidation validates every typed response body against the embedded
	// OpenAPI document before decoding it.
	StrictValidation bool
}

// Client is the lakeFS Go SDK client. It is safe for concurrent use.
type Client struct {
	endpoint        *url.URL
	accessKeyID     string
	secretAccessKey string
	httpClient      generated.HttpRequestDoer
	schemas         *schema.Registry

	generated *generated.ClientWithResponses
}

// NewClient constructs a new Client.
//
// Returns ConfigurationError if the endpoint is invalid or if only one of the credentials is set.
func NewClient(opts Options) (*Client, error) {
	endpoint := strings.TrimSpace(opts.Endpoint)
	if endpoint == "" {
		endpoint = strings.TrimSpace(os.Getenv("LAKEFS_ENDPOINT"))
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, &ConfigurationError{Message: fmt.Sprintf("invalid endpoint: %v", err)}
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, &ConfigurationError{Message: fmt.Sprintf("invalid endpoint %q: scheme and host are required", endpoint)}
	}

	keyID := strings.TrimSpace(opts.AccessKeyID)
	if keyID == "" {
		keyID = strings.TrimSpace(os.Getenv("LAKEFS_ACCESS_KEY_ID"))
	}
	secret := strings.TrimSpace(opts.SecretAccessKey)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("LAKEFS_SECRET_ACCESS_KEY"))
	}
	if (keyID == "") != (secret == "") {
		return nil, &ConfigurationError{Message: "incomplete credentials: set both access key ID and secret access key, or neither"}
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c := &Client{
		endpoint:        parsed,
		accessKeyID:     keyID,
		secretAccessKey: secret,
		httpClient:      &loggingDoer{doer: hc, logger: logger},
	}

	if opts.StrictValidation {
		reg, err := schema.Load(context.Background())
		if err != nil {
			return nil, &ConfigurationError{Message: fmt.Sprintf("failed to load API schema: %v", err)}
		}
		c.schemas = reg
	}

	gen, err := generated.NewClientWithResponses(parsed.String(),
		generated.WithHTTPClient(c.httpClient),
		generated.WithRequestEditorFn(c.editRequest),
	)
	if err != nil {
		return nil, &ConfigurationError{Message: fmt.Sprintf("failed to construct generated client: %v", err)}
	}
	c.generated = gen

	return c, nil
}

// Generated returns the underlying OpenAPI-generated client.
//
// It shares the credentials, request IDs and logging of c but performs no
// schema validation of its own.
func (c *Client) Generated() *generated.ClientWithResponses {
	if c == nil {
		return nil
	}
	return c.generated
}

func (c *Client) editRequest(ctx context.Context, req *http.Request) error {
	if c.accessKeyID != "" {
		req.SetBasicAuth(c.accessKeyID, c.secretAccessKey)
	}
	if req.Header.Get(RequestIDHeader) == "" {
		req.Header.Set(RequestIDHeader, uuid.NewString())
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	return nil
}

// Do makes a low-level request to the lakeFS API.
//
// For JSON responses, out is decoded from JSON when non-nil; a model type as
// out reports *ValidationError or *DeserializationError like the typed methods.
// For non-2xx responses, an *APIStatusError is returned.
func (c *Client) Do(ctx context.Context, method, apiPath string, query map[string]string, body any, headers map[string]string, out any) error {
	if ctx == nil {
		ctx = context.Background()
	}

	reqURL := c.buildURL(apiPath, query)

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		if strings.TrimSpace(k) == "" {
			continue
		}
		req.Header.Set(k, v)
	}
	if err := c.editRequest(ctx, req); err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	raw, err := readResponse(resp)
	if err != nil {
		return err
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	return model.Unmarshal(raw, out)
}

// ListOptions select one page of a listing. Zero values are not sent.
type ListOptions struct {
	// Prefix returns only items whose ID starts with it.
	Prefix string
	// After returns items strictly after this ID, usually the previous page's NextOffset.
	After string
	// Amount caps the page size; the server applies its default when zero.
	Amount int
}

func (o *ListOptions) params() (prefix *string, after *string, amount *int) {
	if o == nil {
		return nil, nil, nil
	}
	if o.Prefix != "" {
		prefix = swag.String(o.Prefix)
	}
	if o.After != "" {
		after = swag.String(o.After)
	}
	if o.Amount > 0 {
		amount = swag.Int(o.Amount)
	}
	return prefix, after, amount
}

// HealthCheck reports whether the lakeFS server is up. A nil error means it
// answered with a 2xx status.
func (c *Client) HealthCheck(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	resp, err := c.generated.HealthCheck(ctx)
	if err != nil {
		return err
	}
	_, err = readResponse(resp)
	return err
}

// ListBranches lists one page of branches of a repository.
func (c *Client) ListBranches(ctx context.Context, repository string, opts *ListOptions) (*RefList, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := requireArgs("list branches", "repository", repository); err != nil {
		return nil, err
	}
	var params generated.ListBranchesParams
	params.Prefix, params.After, params.Amount = opts.params()

	resp, err := c.generated.ListBranches(ctx, repository, &params)
	if err != nil {
		return nil, err
	}
	var out RefList
	if err := c.decode(resp, "RefList", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTags lists one page of tags of a repository.
func (c *Client) ListTags(ctx context.Context, repository string, opts *ListOptions) (*RefList, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := requireArgs("list tags", "repository", repository); err != nil {
		return nil, err
	}
	var params generated.ListTagsParams
	params.Prefix, params.After, params.Amount = opts.params()

	resp, err := c.generated.ListTags(ctx, repository, &params)
	if err != nil {
		return nil, err
	}
	var out RefList
	if err := c.decode(resp, "RefList", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOTFDiffs lists the Open Table Format diff types the server supports.
func (c *Client) GetOTFDiffs(ctx context.Context) (*OTFDiffs, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	resp, err := c.generated.GetOtfDiffs(ctx)
	if err != nil {
		return nil, err
	}
	var out OTFDiffs
	if err := c.decode(resp, "OTFDiffs", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OTFDiff compares the table at tablePath between two refs using the diff
// type named by otfType (one of the names GetOTFDiffs returns).
func (c *Client) OTFDiff(ctx context.Context, repository, leftRef, rightRef, tablePath, otfType string) (*OtfDiffList, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := requireArgs("otf diff",
		"repository", repository,
		"left ref", leftRef,
		"right ref", rightRef,
		"table path", tablePath,
		"type", otfType,
	); err != nil {
		return nil, err
	}

	resp, err := c.generated.OtfDiff(ctx, repository, leftRef, rightRef, &generated.OtfDiffParams{
		TablePath: tablePath,
		Type:      otfType,
	})
	if err != nil {
		return nil, err
	}
	var out OtfDiffList
	if err := c.decode(resp, "OtfDiffList", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// decode reads a typed response body, validating it against the named schema
// first in strict mode.
func (c *Client) decode(resp *http.Response, schemaName string, out any) error {
	raw, err := readResponse(resp)
	if err != nil {
		return err
	}
	if c.schemas != nil {
		if err := c.schemas.Validate(schemaName, raw); err != nil {
			return err
		}
	}
	return model.Unmarshal(raw, out)
}

// readResponse drains and closes resp, converting non-2xx statuses to *APIStatusError.
func readResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIStatusError(resp, raw)
	}
	return raw, nil
}

func requireArgs(op string, pairs ...string) error {
	var missing []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			missing = append(missing, pairs[i])
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &ConfigurationError{Message: fmt.Sprintf("%s requires %s", op, strings.Join(missing, ", "))}
}

func (c *Client) buildURL(apiPath string, query map[string]string) *url.URL {
	// Ensure path join doesn't drop base path.
	u := *c.endpoint
	joined := apiPath
	if !strings.HasPrefix(joined, "/") {
		joined = "/" + joined
	}
	hadTrailingSlash := joined != "/" && strings.HasSuffix(joined, "/")
	cleaned := path.Clean(strings.TrimSuffix(u.Path, "/") + joined)
	if hadTrailingSlash && !strings.HasSuffix(cleaned, "/") {
		cleaned += "/"
	}
	u.Path = cleaned
	q := u.Query()
	for k, v := range query {
		if strings.TrimSpace(k) == "" {
			continue
		}
		if v == "" {
			continue
		}
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return &u
}

// loggingDoer records one debug entry per round trip.
type loggingDoer struct {
	doer   generated.HttpRequestDoer
	logger *slog.Logger
}

func (d *loggingDoer) Do(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := d.doer.Do(req)
	attrs := []any{
		"method", req.Method,
		"path", req.URL.Path,
		"request_id", req.Header.Get(RequestIDHeader),
		"took", time.Since(start),
	}
	if err != nil {
		d.logger.DebugContext(req.Context(), "lakefs request failed", append(attrs, "error", err)...)
		return nil, err
	}
	d.logger.DebugContext(req.Context(), "lakefs request", append(attrs, "status", resp.StatusCode)...)
	return resp, nil
}
