package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devfolio/portfolio-api/internal/api/metrics"
	"github.com/devfolio/portfolio-api/internal/core/ports"
	"github.com/devfolio/portfolio-api/internal/core/service"
)

// SkillHandler handles public listing and admin CRUD for skills.
type SkillHandler struct {
	content ports.ContentService
}

func NewSkillHandler(content ports.ContentService) *SkillHandler {
	return &SkillHandler{content: content}
}

type skillRequest struct {
	Name string `form:"name" validate:"required,max=100"`
}

// List returns all skills.
//
// @Summary      List skills
// @Tags         skills
// @Produce      json
// @Success      200  {array}  domain.Skill
// @Router       /skills [get]
func (h *SkillHandler) List(c echo.Context) error {
	skills, err := h.content.ListSkills(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skills)
}

// Create adds a skill. Multipart form; the "image" file is optional.
//
// @Summary      Create a skill
// @Tags         skills
// @Accept       mpfd
// @Produce      json
// @Success      201  {object}  domain.Skill
// @Router       /admin/skills [post]
func (h *SkillHandler) Create(c echo.Context) error {
	in, closeUpload, err := h.bindInput(c)
	if err != nil {
		return err
	}
	defer closeUpload()

	skill, err := h.content.CreateSkill(c.Request().Context(), in)
	if err != nil {
		return err
	}

	if in.Image != nil {
		metrics.UploadsTotal.WithLabelValues(service.CategorySkills).Inc()
	}
	return c.JSON(http.StatusCreated, skill)
}

// Update replaces a skill's fields and, optionally, its image.
//
// @Summary      Update a skill
// @Tags         skills
// @Accept       mpfd
// @Produce      json
// @Param        id  path  string  true  "Skill ID"
// @Success      200  {object}  domain.Skill
// @Router       /admin/skills/{id} [put]
func (h *SkillHandler) Update(c echo.Context) error {
	in, closeUpload, err := h.bindInput(c)
	if err != nil {
		return err
	}
	defer closeUpload()

	skill, err := h.content.UpdateSkill(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}

	if in.Image != nil {
		metrics.UploadsTotal.WithLabelValues(service.CategorySkills).Inc()
	}
	return c.JSON(http.StatusOK, skill)
}

// Delete removes a skill and its stored image.
//
// @Summary      Delete a skill
// @Tags         skills
// @Param        id  path  string  true  "Skill ID"
// @Success      204
// @Router       /admin/skills/{id} [delete]
func (h *SkillHandler) Delete(c echo.Context) error {
	if err := h.content.DeleteSkill(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *SkillHandler) bindInput(c echo.Context) (ports.SkillInput, func(), error) {
	var req skillRequest
	if err := c.Bind(&req); err != nil {
		return ports.SkillInput{}, func() {}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.SkillInput{}, func() {}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	upload, closeUpload, err := formUpload(c, "image")
	if err != nil {
		return ports.SkillInput{}, closeUpload, err
	}

	return ports.SkillInput{Name: req.Name, Image: upload}, closeUpload, nil
}
