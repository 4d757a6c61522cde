// Package status exposes the operational HTTP surface of the bridge.
//
// # HTTP Endpoints
//
//   - GET /healthz : connectivity of Stash, the source database and the
//     media archive.
//   - GET /runs : all sync runs, newest first.
//   - GET /runs/:id : one sync run with its item errors.
package status
