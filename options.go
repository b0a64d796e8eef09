package mailapi

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// DefaultBaseURL is the MailAPI v1 endpoint used unless [WithBaseURL] is given.
const DefaultBaseURL = "https://api.mailapi.dev/v1"

type Option func(*Options)

type Options struct {
	baseURL        string
	requestLogger  RequestLogger
	requestHeaders map[string]string
	httpClient     *http.Client
}

func newClientOptions() *Options {
	return &Options{
		baseURL:        DefaultBaseURL,
		requestLogger:  &NoopLogger{},
		requestHeaders: map[string]string{},
	}
}

// Validate reports the first configuration problem found, if any.
func (o *Options) Validate() error {
	if o.baseURL == "" {
		return errors.New("baseURL must be set")
	}

	u, err := url.Parse(o.baseURL)
	if err != nil {
		return fmt.Errorf("baseURL is not a valid URL: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("baseURL scheme must be http or https, got %q", u.Scheme)
	}

	if u.Host == "" {
		return errors.New("baseURL must include a host")
	}

	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}

	return nil
}

// WithBaseURL points the client at another MailAPI deployment, such as a
// staging environment or a test server.
func WithBaseURL(baseURL string) Option {
	return func(o *Options) {
		baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

// WithRequestHeader adds a header to every request. The Authorization,
// Content-Type and Accept headers are managed by the client and cannot be
// overridden.
func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || isReservedHeader(header) {
			return
		}

		o.requestHeaders[header] = value
	}
}

// WithHTTPClient makes the client send requests through hc. Timeouts,
// proxies and connection pooling are configured on hc itself.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *Options) {
		if hc != nil {
			o.httpClient = hc
		}
	}
}

func isReservedHeader(header string) bool {
	for _, h := range []string{"Authorization", "Content-Type", "Accept", requestIDHeader} {
		if strings.EqualFold(header, h) {
			return true
		}
	}

	return false
}
