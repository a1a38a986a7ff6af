package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ledger/internal/delivery/http/response"
)

// ProjectHandler holds the project routes, currently fixed-message stubs.
type ProjectHandler struct{}

// NewProjectHandler is the constructor for ProjectHandler.
func NewProjectHandler() *ProjectHandler {
	return &ProjectHandler{}
}

// Create registers a new project.
func (h *ProjectHandler) Create(c echo.Context) error {
	return response.Success(c, http.StatusCreated, nil, "created project")
}

// List returns all projects.
func (h *ProjectHandler) List(c echo.Context) error {
	return response.Success(c, http.StatusOK, nil, "get projects")
}

// GetByID returns a single project.
func (h *ProjectHandler) GetByID(c echo.Context) error {
	return response.Success(c, http.StatusOK, nil, "get project")
}

// Update modifies a project.
func (h *ProjectHandler) Update(c echo.Context) error {
	return response.Success(c, http.StatusNonAuthoritativeInfo, nil, "update project")
}

// Delete removes a project.
func (h *ProjectHandler) Delete(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
