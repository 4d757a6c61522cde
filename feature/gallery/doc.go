// Package gallery maps image posts onto Stash galleries.
//
// Each post carrying downloaded images becomes one gallery. Matching an
// existing gallery checks the code first (the source post ID, authoritative
// once stamped), then exact title plus date, then the post URL. Images
// already scanned by Stash are attached by file basename.
package gallery
