package services

import (
	"context"

	"github.com/JamesABrownlee/vexo2-5/internal/models"
)

// StatusAPI defines the operations the Services panel needs from the dashboard status API.
type StatusAPI interface {
	// FetchServices retrieves the full service list.
	FetchServices(ctx context.Context) ([]models.Service, error)

	// RestartService issues a restart command for the given service id.
	RestartService(ctx context.Context, id string) error
}

// servicesResponse is the wire shape of GET /services.
type servicesResponse struct {
	Services []models.Service `json:"services"`
}

// apiError is the optional error body of a non-2xx response.
type apiError struct {
	Error string `json:"error"`
}
