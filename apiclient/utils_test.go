package apiclient

import (
	"net/http"
)

type testRoundTripper struct {
	RoundTripFunc func(*http.Request) (*http.Response, error)
}

func (rt *testRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	return rt.RoundTripFunc(r)
}

func newTestClient(rt func(*http.Request) (*http.Response, error)) *Client {
	return &Client{
		BaseURL: "http://risk.test/api",
		Doer:    &http.Client{Transport: &testRoundTripper{RoundTripFunc: rt}},
	}
}
