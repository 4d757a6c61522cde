// Package stash implements the typed GraphQL client for the Stash media
// organizer API.
//
// The client wraps hasura/go-graphql-client with API key authentication,
// strict transport timeouts, retry with exponential backoff for transport
// failures, and a TTL-based response cache for find queries.
//
// # Components
//
//   - Client: Connection handling and schema-less query execution.
//   - Entity accessors: Typed wrappers per Stash type (Scene, Performer,
//     Studio, Tag, Gallery, Image, SceneMarker), one file each.
//   - Fragments: Shared GraphQL fragment strings composed into find queries.
//   - findCache: TTL cache with singleflight, invalidated per entity type
//     on any mutation of that type.
//
// # Error Handling
//
// GraphQL-level errors are never retried. A find query resolving to null is
// surfaced as ErrNotFound so callers can branch without string matching.
package stash
