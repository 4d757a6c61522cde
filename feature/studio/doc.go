// Package studio maps the content platform and its accounts onto Stash
// studios.
//
// The platform itself becomes a parent studio ("Fansly"); each account
// becomes a child studio named "<display name> (<Platform>)" whose URL is
// the account's profile link. Dedup checks the exact child name first and
// falls back to a URL hit, so renamed accounts still resolve to their
// existing studio.
package studio
