package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devfolio/portfolio-api/internal/api/metrics"
	"github.com/devfolio/portfolio-api/internal/core/ports"
	"github.com/devfolio/portfolio-api/internal/core/service"
)

// SiteHandler manages named image slots and the resume file.
type SiteHandler struct {
	site ports.SiteService
}

func NewSiteHandler(site ports.SiteService) *SiteHandler {
	return &SiteHandler{site: site}
}

// ListImages returns every occupied image slot.
//
// @Summary      List site images
// @Tags         site
// @Produce      json
// @Success      200  {array}  domain.SiteImage
// @Router       /admin/images [get]
func (h *SiteHandler) ListImages(c echo.Context) error {
	images, err := h.site.ListSiteImages(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, images)
}

// UploadImage binds an uploaded file to the named slot, replacing any
// previous image in that slot.
//
// @Summary      Upload a site image
// @Tags         site
// @Accept       mpfd
// @Produce      json
// @Param        name  path  string  true  "Slot name, e.g. profile"
// @Success      200   {object}  domain.SiteImage
// @Failure      400   {object}  map[string]string
// @Router       /admin/images/{name} [put]
func (h *SiteHandler) UploadImage(c echo.Context) error {
	upload, closeUpload, err := formUpload(c, "image")
	if err != nil {
		return err
	}
	defer closeUpload()
	if upload == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image file is required")
	}

	img, err := h.site.UploadSiteImage(c.Request().Context(), c.Param("name"), *upload)
	if err != nil {
		return err
	}

	metrics.UploadsTotal.WithLabelValues(service.CategorySite).Inc()
	return c.JSON(http.StatusOK, img)
}

// DeleteImage clears the named slot and removes its file.
//
// @Summary      Delete a site image
// @Tags         site
// @Param        name  path  string  true  "Slot name"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/images/{name} [delete]
func (h *SiteHandler) DeleteImage(c echo.Context) error {
	if err := h.site.DeleteSiteImage(c.Request().Context(), c.Param("name")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UploadResume stores a new resume file; it becomes the download target.
//
// @Summary      Upload the resume
// @Tags         site
// @Accept       mpfd
// @Produce      json
// @Success      200  {object}  domain.Resume
// @Failure      400  {object}  map[string]string
// @Router       /admin/resume [post]
func (h *SiteHandler) UploadResume(c echo.Context) error {
	upload, closeUpload, err := formUpload(c, "resume")
	if err != nil {
		return err
	}
	defer closeUpload()
	if upload == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "resume file is required")
	}

	resume, err := h.site.UploadResume(c.Request().Context(), *upload)
	if err != nil {
		return err
	}

	metrics.UploadsTotal.WithLabelValues(service.CategoryFiles).Inc()
	return c.JSON(http.StatusOK, resume)
}

// DownloadResume streams the latest uploaded resume as an attachment.
//
// @Summary      Download the resume
// @Tags         site
// @Produce      octet-stream
// @Success      200
// @Failure      404  {object}  map[string]string
// @Router       /resume [get]
func (h *SiteHandler) DownloadResume(c echo.Context) error {
	path, err := h.site.ResumePath(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Attachment(path, "resume.pdf")
}
