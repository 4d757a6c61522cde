package stash

import (
	"errors"
	"fmt"

	graphql "github.com/hasura/go-graphql-client"
)

// ErrNotFound is returned when a find query resolves to null.
var ErrNotFound = errors.New("stash: entity not found")

// isRetryable reports whether an execution error is worth retrying.
// GraphQL-level errors mean the server received and rejected the request,
// so retrying would only repeat the rejection. The client library wraps
// transport failures as errors carrying the "request_error" extension code.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	var gqlErrs graphql.Errors
	if errors.As(err, &gqlErrs) {
		for _, gqlErr := range gqlErrs {
			if code, ok := gqlErr.Extensions["code"]; ok && code == "request_error" {
				return true
			}
		}
		return false
	}
	// Anything outside the client library's error type is transport-level
	return true
}

// queryError wraps an execution failure with the operation name for context.
func queryError(op string, err error) error {
	return fmt.Errorf("stash: %s: %w", op, err)
}
