package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ledger/internal/delivery/http/response"
)

// EventHandler holds the event routes. The event pipeline itself is not
// implemented yet; every route answers with a fixed message.
type EventHandler struct{}

// NewEventHandler is the constructor for EventHandler.
func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// Ping answers a liveness probe on the events group.
func (h *EventHandler) Ping(c echo.Context) error {
	return response.Success(c, http.StatusOK, nil, "pong")
}

// Create records a new event.
func (h *EventHandler) Create(c echo.Context) error {
	return response.Success(c, http.StatusCreated, nil, "created event")
}

// List returns all events.
func (h *EventHandler) List(c echo.Context) error {
	return response.Success(c, http.StatusOK, nil, "get events")
}

// GetByID returns a single event.
func (h *EventHandler) GetByID(c echo.Context) error {
	return response.Success(c, http.StatusOK, nil, "get event")
}

// ListByProject returns the events belonging to one project.
func (h *EventHandler) ListByProject(c echo.Context) error {
	return response.Success(c, http.StatusOK, nil, "get events by project")
}
