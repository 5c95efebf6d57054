// Package server implements the embedded dashboard API.
//
// # Router Infrastructure
//
// [Router] wraps [http.ServeMux] with a middleware stack. Patterns use
// the method-qualified ServeMux syntax.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// # Service Registry
//
// [Registry] tracks the managed services, computes uptimes, and drives
// restart cycles: a restarted service passes through restarting and
// starting before coming back online with a fresh start time.
//
// # Endpoints
//
// GET /api/bot/services lists the services. POST
// /api/bot/services/{id}/restart begins a restart and is protected by
// [AdminGuard]: requests must carry the configured admin token in the
// X-Admin-Token header or a token query parameter, or originate from
// loopback when no token is set. GET /api/bot/library serves the song
// catalog with aggregates. GET /api/bot/status reports resource usage.
package server
