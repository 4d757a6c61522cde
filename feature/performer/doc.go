// Package performer maps platform accounts onto Stash performers.
//
// Matching is deliberately conservative: an account is linked to an existing
// performer only on an exact normalized name hit, an alias-set hit (in either
// direction), or a profile URL hit. Anything weaker creates a new performer
// rather than risking a wrong merge, and nothing is ever destructive.
//
// # Match order
//
//  1. Normalized display name or username equals the performer name.
//  2. Username appears in the performer's alias list, or the performer name
//     appears among the account's known usernames.
//  3. The account's profile URL matches one of the performer's URLs.
package performer
