package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devfolio/portfolio-api/internal/api/metrics"
	"github.com/devfolio/portfolio-api/internal/core/ports"
	"github.com/devfolio/portfolio-api/internal/core/service"
)

// ProjectHandler handles public listing and admin CRUD for projects.
type ProjectHandler struct {
	content ports.ContentService
}

func NewProjectHandler(content ports.ContentService) *ProjectHandler {
	return &ProjectHandler{content: content}
}

type projectRequest struct {
	Title       string `form:"title" validate:"required,max=100"`
	Description string `form:"description" validate:"required"`
	Link        string `form:"link" validate:"omitempty,max=200"`
}

// List returns all projects.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Success      200  {array}  domain.Project
// @Router       /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.content.ListProjects(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Create adds a project. Multipart form; the "image" file is optional.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       mpfd
// @Produce      json
// @Success      201  {object}  domain.Project
// @Failure      400  {object}  map[string]string
// @Router       /admin/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	in, closeUpload, err := h.bindInput(c)
	if err != nil {
		return err
	}
	defer closeUpload()

	project, err := h.content.CreateProject(c.Request().Context(), in)
	if err != nil {
		return err
	}

	if in.Image != nil {
		metrics.UploadsTotal.WithLabelValues(service.CategoryProjects).Inc()
	}
	return c.JSON(http.StatusCreated, project)
}

// Update replaces a project's fields and, optionally, its image.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       mpfd
// @Produce      json
// @Param        id  path  string  true  "Project ID"
// @Success      200  {object}  domain.Project
// @Failure      404  {object}  map[string]string
// @Router       /admin/projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	in, closeUpload, err := h.bindInput(c)
	if err != nil {
		return err
	}
	defer closeUpload()

	project, err := h.content.UpdateProject(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}

	if in.Image != nil {
		metrics.UploadsTotal.WithLabelValues(service.CategoryProjects).Inc()
	}
	return c.JSON(http.StatusOK, project)
}

// Delete removes a project and its stored image.
//
// @Summary      Delete a project
// @Tags         projects
// @Param        id  path  string  true  "Project ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	if err := h.content.DeleteProject(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ProjectHandler) bindInput(c echo.Context) (ports.ProjectInput, func(), error) {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return ports.ProjectInput{}, func() {}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.ProjectInput{}, func() {}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	upload, closeUpload, err := formUpload(c, "image")
	if err != nil {
		return ports.ProjectInput{}, closeUpload, err
	}

	return ports.ProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		Image:       upload,
	}, closeUpload, nil
}
