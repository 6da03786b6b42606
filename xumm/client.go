package xumm

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DefaultEndpoint is the platform API base of the signing network.
const DefaultEndpoint = "https://xumm.app/api/v1/platform"

var errNotFound = errors.New("not_found")

// Client talks to the signing network's platform API.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	apiSecret  string
	l          *zap.Logger
}

func NewClient(apiKey, apiSecret string) *Client {
	return &Client{
		httpClient: &http.Client{},
		endpoint:   DefaultEndpoint,
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		l:          zap.L().Named("xumm_client"),
	}
}

// SetEndpoint overrides the API base, for tests.
func (c *Client) SetEndpoint(endpoint string) {
	c.endpoint = endpoint
}

// Ping verifies the configured API credentials.
func (c *Client) Ping(ctx context.Context) (bool, error) {
	var pong Pong
	if err := c.getAndUnmarshalJSON(ctx, c.endpoint+"/ping", &pong); err != nil {
		return false, err
	}
	return pong.Pong, nil
}

// CreatePayload submits a sign-request and returns the wallet-facing URL.
func (c *Client) CreatePayload(ctx context.Context, in *CreatePayloadRequest) (*CreatedPayload, error) {
	var created CreatedPayload
	if err := c.postAndUnmarshalJSON(ctx, c.endpoint+"/payload", in, &created); err != nil {
		return nil, err
	}
	if created.Next.Always == "" {
		return nil, errors.New("Failed to get payload response")
	}
	return &created, nil
}

// GetPayloadByIdentifier fetches a sign-request by the custom
// identifier it was submitted with. A sign-request that does not exist
// is a nil payload, not an error.
func (c *Client) GetPayloadByIdentifier(ctx context.Context, identifier string) (*Payload, error) {
	if identifier == "" {
		return nil, nil
	}
	var payload Payload
	err := c.getAndUnmarshalJSON(ctx, c.endpoint+"/payload/ci/"+url.PathEscape(identifier), &payload)
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if payload.Meta.UUID == "" {
		return nil, nil
	}
	return &payload, nil
}

// GetTransaction fetches a settled ledger transaction with its balance
// changes. Unknown hashes return nil.
func (c *Client) GetTransaction(ctx context.Context, txid string) (*Transaction, error) {
	var tx Transaction
	err := c.getAndUnmarshalJSON(ctx, c.endpoint+"/xrpl-tx/"+url.PathEscape(txid), &tx)
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (c *Client) getAndUnmarshalJSON(ctx context.Context, link string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", link, nil)
	if err != nil {
		return errors.Wrap(err, "Failed new request")
	}
	return c.do(req, out)
}

func (c *Client) postAndUnmarshalJSON(ctx context.Context, link string, in, out interface{}) error {
	b, err := json.Marshal(in)
	if err != nil {
		return errors.Wrap(err, "Failed marshal")
	}
	req, err := http.NewRequestWithContext(ctx, "POST", link, bytes.NewReader(b))
	if err != nil {
		return errors.Wrap(err, "Failed new request")
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("X-API-Secret", c.apiSecret)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "Failed do request")
	}
	defer resp.Body.Close()
	b, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "Failed read all body")
	}
	if resp.StatusCode == 404 {
		return errNotFound
	}
	if resp.StatusCode >= 400 {
		c.l.Warn("Platform API request failed.",
			zap.String("url", req.URL.String()),
			zap.Int("status_code", resp.StatusCode),
		)
		return errors.Errorf("unexpected status code %d", resp.StatusCode)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return errors.Wrap(err, "Failed unmarshal")
	}
	return nil
}
