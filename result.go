package mailapi

import "encoding/json"

// Result is returned by every API call. Exactly one of Data and Error is
// non-nil.
type Result[T any] struct {
	Data  *T
	Error *Error

	// Raw holds the unmodified response body of a successful call.
	Raw json.RawMessage

	// DecodeError is set when a successful response body could not be fully
	// decoded into T. The call itself succeeded; Data holds the fields that
	// were decoded and Raw the complete body.
	DecodeError error
}

// Unwrap converts r into the conventional Go (value, error) pair.
func (r Result[T]) Unwrap() (*T, error) {
	if r.Error != nil {
		return nil, r.Error
	}
	return r.Data, nil
}

func success[T any](data *T, raw []byte) Result[T] {
	return Result[T]{Data: data, Raw: raw}
}

func failure[T any](err *Error) Result[T] {
	return Result[T]{Error: err}
}
