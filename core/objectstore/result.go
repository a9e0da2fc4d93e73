package objectstore

import (
	"encoding/json"
	"strings"
)

// Error is a normalized failure carried by a failed Result.
type Error struct {
	// Code is a provider status name or a sentinel such as NotFound.
	Code string `json:"code"`
	// Description is the human readable cause.
	Description string `json:"description"`
}

// Result is the outcome of every Client operation. A Result is immutable.
type Result struct {
	succeeded bool
	errors    []Error
}

var success = &Result{succeeded: true}

// Success returns the shared successful result.
func Success() *Result {
	return success
}

// Failed returns a failed result holding errs in order. Calling it without
// errors still yields a failed result, just one with nothing to report.
func Failed(errs ...Error) *Result {
	r := &Result{}
	if len(errs) > 0 {
		r.errors = append([]Error(nil), errs...)
	}
	return r
}

// Succeeded reports whether the operation completed.
func (r *Result) Succeeded() bool {
	return r.succeeded
}

// Errors returns a copy of the errors in insertion order.
func (r *Result) Errors() []Error {
	if len(r.errors) == 0 {
		return []Error{}
	}
	return append([]Error(nil), r.errors...)
}

// Codes returns the error codes in insertion order.
func (r *Result) Codes() []string {
	codes := make([]string, len(r.errors))
	for i, e := range r.errors {
		codes[i] = e.Code
	}
	return codes
}

// String returns "Succeeded", or "Failed : " followed by the comma separated
// error codes.
func (r *Result) String() string {
	if r.succeeded {
		return "Succeeded"
	}
	return "Failed : " + strings.Join(r.Codes(), ",")
}

// MarshalJSON encodes the result as {"succeeded": bool, "errors": [...]}.
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Succeeded bool    `json:"succeeded"`
		Errors    []Error `json:"errors"`
	}{
		Succeeded: r.succeeded,
		Errors:    r.Errors(),
	})
}
