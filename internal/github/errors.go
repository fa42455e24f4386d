package github

import "fmt"

// TransportError reports a failure to talk to the GraphQL endpoint: network
// errors, non-2xx responses and undecodable bodies.
type TransportError struct {
	// StatusCode is the HTTP status of a non-2xx response, 0 otherwise.
	StatusCode int
	Cause      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("graphql transport: %v", e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// MissingDataError reports a response envelope without a data payload, or a
// payload whose root object is null.
type MissingDataError struct {
	Field string
}

func (e *MissingDataError) Error() string {
	if e.Field == "" {
		return "missing response data"
	}
	return fmt.Sprintf("missing %s in response data", e.Field)
}

// GraphQLError is a single entry of the response "errors" list.
type GraphQLError struct {
	Message string        `json:"message"`
	Type    string        `json:"type,omitempty"`
	Path    []interface{} `json:"path,omitempty"`
}

// ErrorFilter decides whether a server-reported error is worth surfacing.
// Returning false drops the error silently.
type ErrorFilter func(GraphQLError) bool

// IgnoreMessages returns an ErrorFilter that drops errors with any of the
// given messages.
func IgnoreMessages(messages ...string) ErrorFilter {
	ignored := make(map[string]struct{}, len(messages))
	for _, m := range messages {
		ignored[m] = struct{}{}
	}
	return func(e GraphQLError) bool {
		_, skip := ignored[e.Message]
		return !skip
	}
}
