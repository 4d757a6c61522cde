// Package tagging maps post hashtags onto Stash tags.
//
// Tags are found or created by exact name/alias match. A per-service cache
// keeps a bulk run from re-querying the same hashtag for every post that
// carries it.
package tagging
