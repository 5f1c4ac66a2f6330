package provider

import "fmt"

// MissingCredentialError is returned when an adapter requires an API key
// but the configured environment variable is unset or no variable is
// configured at all. It is raised at adapter construction, before any
// network call.
type MissingCredentialError struct {
	EnvVar string // Name of the environment variable that was consulted.
}

func (e *MissingCredentialError) Error() string {
	if e.EnvVar == "" {
		return "missing credential: no api_key_env configured"
	}
	return fmt.Sprintf("missing credential: environment variable %s is not set", e.EnvVar)
}

// RemoteError is returned when the vendor responds with a non-success HTTP
// status. The status code and response body are preserved for diagnostics.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote returned status %d: %s", e.StatusCode, e.Body)
}

// TransportError is returned when the HTTP exchange itself fails: connection
// refused, DNS failure, TLS error, or timeout. Timeouts are distinguished so
// callers can report them more clearly.
type TransportError struct {
	Err     error
	Timeout bool
}

func (e *TransportError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("request timed out: %v", e.Err)
	}
	return fmt.Sprintf("transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// MalformedResponseError is returned when a response body cannot be decoded
// or lacks a field the adapter treats as required.
type MalformedResponseError struct {
	Field string // Missing required field, empty when the body failed to decode.
	Err   error  // Decode error, nil for a missing field.
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed response: %v", e.Err)
	}
	return fmt.Sprintf("malformed response: missing %s", e.Field)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
