// Package cas is the content-addressed storage client. Documents are pinned
// through a Pinata-style pinning API and fetched back through an IPFS gateway;
// the content identifier returned by the pin call is the only handle the rest
// of the system keeps.
package cas

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	dErrors "github.com/Muhammad-Masood/ssi-system-backend/pkg/domain-errors"
)

// Client uploads JSON documents to the blob store and fetches them by content
// identifier. It is safe for concurrent use.
type Client struct {
	pinEndpoint string
	gatewayURL  string
	token       string
	httpClient  *http.Client
	tracer      trace.Tracer
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient injects a custom HTTP client (tests use httptest servers).
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithTimeout overrides the default per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		cl.httpClient.Timeout = d
	}
}

// New builds a content-addressing client for the given pin endpoint and
// gateway base URL. The token authenticates pin calls.
func New(pinEndpoint, gatewayURL, token string, opts ...Option) *Client {
	c := &Client{
		pinEndpoint: pinEndpoint,
		gatewayURL:  strings.TrimSuffix(gatewayURL, "/"),
		token:       token,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   15 * time.Second,
		},
		tracer: otel.Tracer("ssi-backend/cas"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// pinResponse is the pin API's success body.
type pinResponse struct {
	IpfsHash string `json:"IpfsHash"`
}

// Put stores a JSON-serializable document and returns its content identifier.
func (c *Client) Put(ctx context.Context, doc any) (string, error) {
	ctx, span := c.tracer.Start(ctx, "cas.Put")
	var err error
	defer func() { endSpan(span, err) }()

	body, err := json.Marshal(doc)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeStorage, "document is not serializable")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.pinEndpoint, bytes.NewReader(body))
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeStorage, "building pin request failed")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			err = dErrors.Wrap(err, dErrors.CodeTimeout, "pin call timed out")
			return "", err
		}
		err = dErrors.Wrap(err, dErrors.CodeStorage, "pin call failed")
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = dErrors.New(dErrors.CodeStorage, fmt.Sprintf("pin call returned status %d", resp.StatusCode))
		return "", err
	}

	var pinned pinResponse
	if err = json.NewDecoder(resp.Body).Decode(&pinned); err != nil {
		err = dErrors.Wrap(err, dErrors.CodeStorage, "invalid pin response")
		return "", err
	}
	if pinned.IpfsHash == "" {
		err = dErrors.New(dErrors.CodeStorage, "pin response missing content id")
		return "", err
	}

	span.SetAttributes(attribute.String("cas.cid", pinned.IpfsHash))
	return pinned.IpfsHash, nil
}

// Get fetches the raw document bytes stored under a content identifier.
func (c *Client) Get(ctx context.Context, cid string) ([]byte, error) {
	ctx, span := c.tracer.Start(ctx, "cas.Get", trace.WithAttributes(attribute.String("cas.cid", cid)))
	var err error
	defer func() { endSpan(span, err) }()

	if cid == "" {
		err = dErrors.New(dErrors.CodeMalformedInput, "content id is empty")
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.gatewayURL+"/"+cid, nil)
	if err != nil {
		err = dErrors.Wrap(err, dErrors.CodeStorage, "building gateway request failed")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			err = dErrors.Wrap(err, dErrors.CodeTimeout, "gateway fetch timed out")
			return nil, err
		}
		err = dErrors.Wrap(err, dErrors.CodeStorage, "gateway fetch failed")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		err = dErrors.New(dErrors.CodeNotFound, "document not found: "+cid)
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		err = dErrors.New(dErrors.CodeStorage, fmt.Sprintf("gateway returned status %d", resp.StatusCode))
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		err = dErrors.Wrap(err, dErrors.CodeStorage, "reading document failed")
		return nil, err
	}
	return body, nil
}

// GetJSON fetches a document and unmarshals it into out.
func (c *Client) GetJSON(ctx context.Context, cid string, out any) error {
	body, err := c.Get(ctx, cid)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return dErrors.Wrap(err, dErrors.CodeStorage, "document is not valid JSON")
	}
	return nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
	}
	span.End()
}
