// Package rpc carries dispatched operations over HTTP as JSON
// request/response pairs. A call is the operation name plus its
// positional argument list; a response is either a result value or an
// error description tagged with a kind, so the client reconstructs the
// same error taxonomy the local path produces. Values on the wire are
// limited to numbers, strings, and null; records are flat objects.
package rpc

import (
	"errors"
	"fmt"

	"github.com/mkarpinski/eventcal/pkg/eventcal/dispatch"
	"github.com/mkarpinski/eventcal/pkg/eventcal/domain"
)

// Error kinds on the wire.
const (
	kindValidation = "validation"
	kindNotFound   = "not_found"
	kindDispatch   = "dispatch"
	kindTransport  = "transport"
	kindInternal   = "internal"
)

type request struct {
	ID   string `json:"id"`
	Op   string `json:"op"`
	Args []any  `json:"args"`
}

type response struct {
	ID     string     `json:"id"`
	Result any        `json:"result"`
	Error  *wireError `json:"error,omitempty"`
}

type wireError struct {
	Kind    string `json:"kind"`
	Entity  string `json:"entity,omitempty"`
	Field   string `json:"field,omitempty"`
	Op      string `json:"op,omitempty"`
	Message string `json:"message"`
}

// encodeError maps a typed error to its wire form.
func encodeError(err error) *wireError {
	var v *domain.ValidationError
	if errors.As(err, &v) {
		return &wireError{Kind: kindValidation, Field: v.Field, Message: v.Message}
	}
	var n *domain.NotFoundError
	if errors.As(err, &n) {
		return &wireError{Kind: kindNotFound, Entity: n.Entity, Message: n.Error()}
	}
	var u *dispatch.UnknownOpError
	if errors.As(err, &u) {
		return &wireError{Kind: kindDispatch, Op: u.Op, Message: u.Error()}
	}
	return &wireError{Kind: kindInternal, Message: err.Error()}
}

// decodeError reconstructs the typed error for a wire error.
func decodeError(we *wireError) error {
	switch we.Kind {
	case kindValidation:
		return &domain.ValidationError{Field: we.Field, Message: we.Message}
	case kindNotFound:
		return &domain.NotFoundError{Entity: we.Entity}
	case kindDispatch:
		return &dispatch.UnknownOpError{Op: we.Op}
	default:
		return fmt.Errorf("server error: %s", we.Message)
	}
}

// TransportError indicates that a remote call could not be completed:
// the endpoint was unreachable or its answer was not a protocol
// response. The operation's outcome is unknown; the core does not
// retry.
type TransportError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error calling %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err is (or wraps) a TransportError.
func IsTransport(err error) bool {
	var t *TransportError
	return errors.As(err, &t)
}

// normalizeResult rebuilds the transport-agnostic result shapes after
// JSON decoding: integral numbers become int64 and record lists become
// []map[string]any, matching what local execution returns.
func normalizeResult(v any) any {
	switch val := v.(type) {
	case float64:
		if val == float64(int64(val)) {
			return int64(val)
		}
		return val
	case []any:
		records := make([]map[string]any, 0, len(val))
		for _, item := range val {
			m, ok := item.(map[string]any)
			if !ok {
				return v
			}
			for k, f := range m {
				m[k] = normalizeResult(f)
			}
			records = append(records, m)
		}
		return records
	default:
		return v
	}
}
