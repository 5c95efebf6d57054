// Package services implements HTTP clients for the external APIs the console talks to.
//
// # Status API
//
// [StatusClient] implements [StatusAPI] against the dashboard status API
// (base path /api/bot): fetching the service list and issuing restart
// commands. The client only reports errors; degrading to the fallback
// service list is the monitor's job.
//
// # Spotify Web API
//
// [SpotifyClient] searches the Spotify catalog for metadata enrichment using
// the client-credentials flow. Tokens are acquired and refreshed by the
// oauth2 transport; no user authorization is involved.
//
// # Error Handling
//
// Clients use typed errors from the shared package:
//   - [shared.ErrAPIRequest] : request failed or returned a non-2xx status
//   - [shared.ErrRestartFailed] : restart command rejected, with the server's reason when it sent one
//   - [shared.ErrNoMatch] : a catalog search returned no results
package services
