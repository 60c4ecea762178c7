package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devfolio/portfolio-api/internal/api/metrics"
	"github.com/devfolio/portfolio-api/internal/core/ports"
	"github.com/devfolio/portfolio-api/internal/core/service"
)

// TimelineHandler handles the education and experience entries shown on the
// about page.
type TimelineHandler struct {
	content ports.ContentService
}

func NewTimelineHandler(content ports.ContentService) *TimelineHandler {
	return &TimelineHandler{content: content}
}

type educationRequest struct {
	Degree      string `form:"degree" validate:"required,max=200"`
	Institution string `form:"institution" validate:"required,max=200"`
	StartDate   string `form:"start_date" validate:"required,max=20"`
	EndDate     string `form:"end_date" validate:"required,max=20"`
	Description string `form:"description"`
	Order       int    `form:"order" validate:"min=0"`
}

type experienceRequest struct {
	Position    string `form:"position" validate:"required,max=200"`
	Company     string `form:"company" validate:"required,max=200"`
	StartDate   string `form:"start_date" validate:"required,max=20"`
	EndDate     string `form:"end_date" validate:"required,max=20"`
	Description string `form:"description"`
	Order       int    `form:"order" validate:"min=0"`
}

// ListEducation returns education entries in timeline order.
//
// @Summary      List education entries
// @Tags         about
// @Produce      json
// @Success      200  {array}  domain.Education
// @Router       /education [get]
func (h *TimelineHandler) ListEducation(c echo.Context) error {
	entries, err := h.content.ListEducation(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// CreateEducation adds an education entry. Multipart form; "image" optional.
//
// @Summary      Create an education entry
// @Tags         about
// @Accept       mpfd
// @Produce      json
// @Success      201  {object}  domain.Education
// @Router       /admin/education [post]
func (h *TimelineHandler) CreateEducation(c echo.Context) error {
	in, closeUpload, err := h.bindEducation(c)
	if err != nil {
		return err
	}
	defer closeUpload()

	entry, err := h.content.CreateEducation(c.Request().Context(), in)
	if err != nil {
		return err
	}

	if in.Image != nil {
		metrics.UploadsTotal.WithLabelValues(service.CategoryEducation).Inc()
	}
	return c.JSON(http.StatusCreated, entry)
}

// UpdateEducation replaces an education entry.
//
// @Summary      Update an education entry
// @Tags         about
// @Accept       mpfd
// @Produce      json
// @Param        id  path  string  true  "Entry ID"
// @Success      200  {object}  domain.Education
// @Router       /admin/education/{id} [put]
func (h *TimelineHandler) UpdateEducation(c echo.Context) error {
	in, closeUpload, err := h.bindEducation(c)
	if err != nil {
		return err
	}
	defer closeUpload()

	entry, err := h.content.UpdateEducation(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}

	if in.Image != nil {
		metrics.UploadsTotal.WithLabelValues(service.CategoryEducation).Inc()
	}
	return c.JSON(http.StatusOK, entry)
}

// DeleteEducation removes an education entry.
//
// @Summary      Delete an education entry
// @Tags         about
// @Param        id  path  string  true  "Entry ID"
// @Success      204
// @Router       /admin/education/{id} [delete]
func (h *TimelineHandler) DeleteEducation(c echo.Context) error {
	if err := h.content.DeleteEducation(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListExperience returns experience entries in timeline order.
//
// @Summary      List experience entries
// @Tags         about
// @Produce      json
// @Success      200  {array}  domain.Experience
// @Router       /experience [get]
func (h *TimelineHandler) ListExperience(c echo.Context) error {
	entries, err := h.content.ListExperience(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// CreateExperience adds an experience entry.
//
// @Summary      Create an experience entry
// @Tags         about
// @Accept       mpfd
// @Produce      json
// @Success      201  {object}  domain.Experience
// @Router       /admin/experience [post]
func (h *TimelineHandler) CreateExperience(c echo.Context) error {
	in, err := h.bindExperience(c)
	if err != nil {
		return err
	}

	entry, err := h.content.CreateExperience(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, entry)
}

// UpdateExperience replaces an experience entry.
//
// @Summary      Update an experience entry
// @Tags         about
// @Accept       mpfd
// @Produce      json
// @Param        id  path  string  true  "Entry ID"
// @Success      200  {object}  domain.Experience
// @Router       /admin/experience/{id} [put]
func (h *TimelineHandler) UpdateExperience(c echo.Context) error {
	in, err := h.bindExperience(c)
	if err != nil {
		return err
	}

	entry, err := h.content.UpdateExperience(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

// DeleteExperience removes an experience entry.
//
// @Summary      Delete an experience entry
// @Tags         about
// @Param        id  path  string  true  "Entry ID"
// @Success      204
// @Router       /admin/experience/{id} [delete]
func (h *TimelineHandler) DeleteExperience(c echo.Context) error {
	if err := h.content.DeleteExperience(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *TimelineHandler) bindEducation(c echo.Context) (ports.EducationInput, func(), error) {
	var req educationRequest
	if err := c.Bind(&req); err != nil {
		return ports.EducationInput{}, func() {}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.EducationInput{}, func() {}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	upload, closeUpload, err := formUpload(c, "image")
	if err != nil {
		return ports.EducationInput{}, closeUpload, err
	}

	return ports.EducationInput{
		Degree:      req.Degree,
		Institution: req.Institution,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
		Order:       req.Order,
		Image:       upload,
	}, closeUpload, nil
}

func (h *TimelineHandler) bindExperience(c echo.Context) (ports.ExperienceInput, error) {
	var req experienceRequest
	if err := c.Bind(&req); err != nil {
		return ports.ExperienceInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.ExperienceInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return ports.ExperienceInput{
		Position:    req.Position,
		Company:     req.Company,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
		Order:       req.Order,
	}, nil
}
