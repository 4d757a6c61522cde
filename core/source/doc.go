// Package source provides read access to the content platform's metadata
// database: the accounts, posts, messages and media rows that the processing
// features translate into Stash entities.
//
// The database normally ships as a sqlite file produced by the platform
// downloader; a mysql driver switch is kept for hosted deployments.
//
// # Components
//
//   - Connect: gorm connection with pooling and a ping probe.
//   - Models: column-tagged gorm structs mirroring the downloader schema.
//   - Repository: the lookups the processing features need (accounts,
//     media per account, posts/messages carrying media, hashtags).
package source
