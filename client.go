package mailapi

import (
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

const requestIDHeader = "X-Request-Id"

// Client is a MailAPI client bound to one API key. It is safe for
// concurrent use; create one per key and share it.
type Client struct {
	baseURL    string
	options    *Options
	restClient *resty.Client

	// Emails groups the email sending, verification and contact operations.
	Emails *Emails
}

// New creates a client authenticating with apiKey. It returns
// [ErrMissingAPIKey] if apiKey is empty, and an error if any option
// produced an invalid configuration. No network calls are made.
func New(apiKey string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	options := newClientOptions()

	for _, o := range opts {
		o(options)
	}

	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	c := &Client{
		baseURL:    options.baseURL,
		options:    options,
		restClient: newRestClient(apiKey, options),
	}
	c.Emails = &Emails{client: c}

	return c, nil
}

// BaseURL returns the API root the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func newRestClient(apiKey string, options *Options) *resty.Client {
	var rc *resty.Client
	if options.httpClient != nil {
		rc = resty.NewWithClient(options.httpClient)
	} else {
		rc = resty.New()
	}

	rc.SetBaseURL(options.baseURL).
		SetRetryCount(0).
		SetLogger(options.requestLogger).
		SetHeaders(options.requestHeaders).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetAuthScheme("Bearer").
		SetAuthToken(apiKey)

	return rc
}
