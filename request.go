package mailapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"reflect"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

var errNilClient = errors.New("mailapi client is nil")

// apiErrorBody holds the fields MailAPI may put in an error response. Any of
// them may be missing or of an unexpected type.
type apiErrorBody struct {
	Error   json.RawMessage `json:"error"`
	Code    json.RawMessage `json:"code"`
	Message json.RawMessage `json:"message"`
}

// Do performs one API call against path, relative to the client's base URL,
// and decodes a successful response into T. POST payloads are sent as a JSON
// body and GET payloads as query parameters; any other method fails with
// [CodeUnsupportedMethod] without sending a request. A nil payload sends no
// body.
//
// Every outcome is normalized into the returned Result: API error responses,
// network failures and local failures all end up in Result.Error. A 2xx
// response is always a success; if its body does not fit T, Data holds
// whatever could be decoded and Result.DecodeError says why.
func Do[T any](ctx context.Context, c *Client, method, path string, payload any) Result[T] {
	if c == nil || c.restClient == nil {
		return failure[T](newInternalError(errNilClient))
	}

	if ctx == nil {
		ctx = context.Background()
	}

	requestID := uuid.NewString()

	req := c.restClient.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, requestID)

	switch method {
	case http.MethodPost:
		if !isNilPayload(payload) {
			body, err := json.Marshal(payload)
			if err != nil {
				return failure[T](newInternalError(fmt.Errorf("failed to encode request body: %w", err)))
			}
			req.SetBody(body)
		}
	case http.MethodGet:
		params, err := queryParams(payload)
		if err != nil {
			return failure[T](newInternalError(err))
		}
		req.SetQueryParams(params)
	default:
		return failure[T](&Error{
			Message: fmt.Sprintf("HTTP method %q is not supported, use GET or POST", method),
			Code:    CodeUnsupportedMethod,
		})
	}

	c.options.requestLogger.Debugf("%s %s (request %s)", method, path, requestID)

	resp, err := req.Execute(method, path)
	if err != nil {
		return failure[T](classifyTransportError(err))
	}

	if !resp.IsSuccess() {
		return failure[T](c.remoteError(resp, requestID))
	}

	res := decodeSuccess[T](resp.Body())
	if res.DecodeError != nil {
		c.options.requestLogger.Warnf("%s %s (request %s): %v", method, path, requestID, res.DecodeError)
	}

	return res
}

func decodeSuccess[T any](body []byte) Result[T] {
	data := new(T)

	if len(body) == 0 {
		return success(data, nil)
	}

	res := success(data, body)

	if err := json.Unmarshal(body, data); err != nil {
		res.DecodeError = fmt.Errorf("failed to decode response body: %w", err)
	}

	return res
}

func (c *Client) remoteError(resp *resty.Response, requestID string) *Error {
	body := resp.Body()

	c.options.requestLogger.Errorf("API error response (status %d, request %s): %s", resp.StatusCode(), requestID, body)

	apiErr := &Error{
		Message:    genericErrorMessage,
		StatusCode: resp.StatusCode(),
	}

	var parsed apiErrorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return apiErr
	}

	if msg := stringField(parsed.Error); msg != "" {
		apiErr.Message = msg
	} else if msg := stringField(parsed.Message); msg != "" {
		apiErr.Message = msg
	}

	apiErr.Code = codeField(parsed.Code)

	return apiErr
}

// classifyTransportError decides whether err means the request never got a
// response from the API or failed locally for some other reason.
func classifyTransportError(err error) *Error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return newNetworkError()
	}

	// *url.Error, *net.OpError and *net.DNSError all implement net.Error
	var netErr net.Error
	if errors.As(err, &netErr) {
		return newNetworkError()
	}

	// Connection closed before a full response was read
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return newNetworkError()
	}

	return newInternalError(err)
}

// stringField returns raw as a string if it is a JSON string, and "" for
// anything else including an absent field.
func stringField(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}

	return s
}

// codeField returns raw as a string if it is a JSON string, its JSON text
// for any other non-null value, and "" when absent or null.
func codeField(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	return string(raw)
}

func isNilPayload(payload any) bool {
	if payload == nil {
		return true
	}

	v := reflect.ValueOf(payload)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}

	return false
}

// queryParams flattens a payload into query parameters. String values are
// used as is, other values by their JSON text, and null values are dropped.
func queryParams(payload any) (map[string]string, error) {
	params := map[string]string{}

	if payload == nil {
		return params, nil
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query parameters: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(encoded, &fields); err != nil {
		return nil, fmt.Errorf("query payload must be a JSON object: %w", err)
	}

	for key, raw := range fields {
		if string(raw) == "null" {
			continue
		}

		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			params[key] = s
			continue
		}

		params[key] = string(raw)
	}

	return params, nil
}
