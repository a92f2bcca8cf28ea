package weather

import "errors"

var (
	// ErrMalformedResponse is returned when an upstream payload lacks a field
	// the view depends on.
	ErrMalformedResponse = errors.New("malformed upstream response")

	// ErrUpstream covers unreachable upstreams and non-success responses.
	ErrUpstream = errors.New("weather upstream unavailable")

	// ErrEmptyQuery is returned for a blank search.
	ErrEmptyQuery = errors.New("empty location query")
)
