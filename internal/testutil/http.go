package testutil

import "net/http"

// RoundTripperFunc adapts a function into an http.RoundTripper.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// NewStubClient returns an http.Client whose transport is the given function.
func NewStubClient(fn RoundTripperFunc) *http.Client {
	return &http.Client{Transport: fn}
}
