package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// API and service errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrUnknownService     = fmt.Errorf("unknown service")
	ErrNotRestartable     = fmt.Errorf("service is not restartable")
	ErrRestartInProgress  = fmt.Errorf("restart already in progress")
	ErrRestartFailed      = fmt.Errorf("restart failed")
	ErrUnauthorized       = fmt.Errorf("unauthorized")

	// Library errors
	ErrLibraryUnavailable = fmt.Errorf("library unavailable")
	ErrSongNotFound       = fmt.Errorf("song not found")
	ErrNoMatch            = fmt.Errorf("no match found")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
