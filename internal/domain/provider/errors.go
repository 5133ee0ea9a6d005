package provider

import "fmt"

// UpstreamError reports a non-success HTTP status from a provider API.
type UpstreamError struct {
	Provider   string
	StatusCode int
	URL        string
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: failed to fetch %s: status %d", e.Provider, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s: failed to fetch %s: status %d: %s", e.Provider, e.URL, e.StatusCode, e.Body)
}

// NotImplementedError is returned by providers that have no integration yet.
type NotImplementedError struct {
	Provider string
	Reason   string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s adapter not implemented: %s", e.Provider, e.Reason)
}
