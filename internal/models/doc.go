// Package models defines the domain entities of the operator console.
//
// Two categories of types:
//
// 1. Service monitoring DTOs deserialized from the dashboard status API:
//   - [Service] : A named backend process with liveness and restart metadata
//   - [ServiceStatus] : The reported lifecycle state of a service
//
// 2. Library catalog rows aggregated from the bot's database:
//   - [LibraryItem] : One song record with usage statistics and provenance tags
//
// Both are plain value types. Service lists are replaced wholesale on every
// successful poll; library items are an immutable snapshot and all filtering
// and sorting operates on derived copies.
package models
