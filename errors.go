package courseplanner

import "errors"

// Every producer wraps one of these with %w so callers can tell failures apart with errors.Is.
// Nothing is recovered internally, a failure aborts the whole assembly.
var (
	// the term, after alias conversion, is not in the upstream term catalog
	ErrInvalidTerm = errors.New("invalid term")

	// year outside the range the upstream holds data for
	ErrInvalidYear = errors.New("invalid year")

	// an upstream field did not have the micro-format a converter expects
	ErrMalformedField = errors.New("malformed upstream field")

	// network failure, non-2xx status or an undecodable body
	ErrUpstream = errors.New("upstream fetch failed")

	// the upstream answered but had no row for the request
	ErrNotFound = errors.New("not found")
)
