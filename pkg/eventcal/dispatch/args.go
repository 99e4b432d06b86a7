package dispatch

import (
	"fmt"

	"github.com/mkarpinski/eventcal/pkg/eventcal/domain"
)

// Args is a positional argument list. Values are restricted to the
// three wire kinds: integers, strings, and nil. Decoding failures are
// validation errors, so both transports reject malformed argument
// lists the same way.
type Args []any

// arity checks the exact argument count.
func (a Args) arity(n int) error {
	if len(a) != n {
		return &domain.ValidationError{
			Field:   "args",
			Message: fmt.Sprintf("want %d arguments, got %d", n, len(a)),
		}
	}
	return nil
}

// str decodes the argument at index i as a string.
func (a Args) str(i int) (string, error) {
	s, ok := a[i].(string)
	if !ok {
		return "", &domain.ValidationError{
			Field:   fmt.Sprintf("arg %d", i),
			Message: "want a string",
		}
	}
	return s, nil
}

// id decodes the argument at index i as an integer identifier. JSON
// decoding hands numbers over as float64; integral values are accepted.
func (a Args) id(i int) (int64, error) {
	switch v := a[i].(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case float64:
		if v == float64(int64(v)) {
			return int64(v), nil
		}
	}
	return 0, &domain.ValidationError{
		Field:   fmt.Sprintf("arg %d", i),
		Message: "want an integer identifier",
	}
}

// optStr decodes the argument at index i as a string or nil. nil means
// "leave unchanged" for modify operations and "absent" elsewhere.
func (a Args) optStr(i int) (*string, error) {
	if a[i] == nil {
		return nil, nil
	}
	s, err := a.str(i)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
