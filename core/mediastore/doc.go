// Package mediastore wraps the object storage bucket holding the downloaded
// media archive.
//
// Scene and gallery processing verify that a media row's object actually
// exists in the archive (and that its size matches the metadata row) before
// pushing the corresponding entity at Stash. The interface is narrow on
// purpose: existence and stat checks, nothing destructive.
package mediastore
