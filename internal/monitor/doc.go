// Package monitor tracks the state of the bot's managed services. It
// polls the status API, falls back to a static service list when the API
// is unreachable, and drives the restart sequence for restartable
// services.
package monitor
