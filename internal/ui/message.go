package ui

import (
	"time"

	"github.com/JamesABrownlee/vexo2-5/internal/models"
)

// pollTickMsg fires on the status poll interval.
type pollTickMsg time.Time

// servicesFetchedMsg carries the result of a service list fetch.
type servicesFetchedMsg struct {
	services []models.Service
	err      error
}

// restartSettledMsg carries the refetch that follows a restart command
// and its grace period.
type restartSettledMsg struct {
	id       string
	services []models.Service
	err      error
}
