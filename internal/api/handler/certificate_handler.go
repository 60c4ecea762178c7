package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devfolio/portfolio-api/internal/api/metrics"
	"github.com/devfolio/portfolio-api/internal/core/ports"
	"github.com/devfolio/portfolio-api/internal/core/service"
)

// CertificateHandler handles public listing and admin CRUD for certificates.
type CertificateHandler struct {
	content ports.ContentService
}

func NewCertificateHandler(content ports.ContentService) *CertificateHandler {
	return &CertificateHandler{content: content}
}

type certificateRequest struct {
	Title string `form:"title" validate:"required,max=100"`
}

// List returns all certificates.
//
// @Summary      List certificates
// @Tags         certificates
// @Produce      json
// @Success      200  {array}  domain.Certificate
// @Router       /certificates [get]
func (h *CertificateHandler) List(c echo.Context) error {
	certs, err := h.content.ListCertificates(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, certs)
}

// Create adds a certificate. Multipart form; the "image" file is optional.
//
// @Summary      Create a certificate
// @Tags         certificates
// @Accept       mpfd
// @Produce      json
// @Success      201  {object}  domain.Certificate
// @Router       /admin/certificates [post]
func (h *CertificateHandler) Create(c echo.Context) error {
	in, closeUpload, err := h.bindInput(c)
	if err != nil {
		return err
	}
	defer closeUpload()

	cert, err := h.content.CreateCertificate(c.Request().Context(), in)
	if err != nil {
		return err
	}

	if in.Image != nil {
		metrics.UploadsTotal.WithLabelValues(service.CategoryCertificates).Inc()
	}
	return c.JSON(http.StatusCreated, cert)
}

// Update replaces a certificate's fields and, optionally, its image.
//
// @Summary      Update a certificate
// @Tags         certificates
// @Accept       mpfd
// @Produce      json
// @Param        id  path  string  true  "Certificate ID"
// @Success      200  {object}  domain.Certificate
// @Router       /admin/certificates/{id} [put]
func (h *CertificateHandler) Update(c echo.Context) error {
	in, closeUpload, err := h.bindInput(c)
	if err != nil {
		return err
	}
	defer closeUpload()

	cert, err := h.content.UpdateCertificate(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}

	if in.Image != nil {
		metrics.UploadsTotal.WithLabelValues(service.CategoryCertificates).Inc()
	}
	return c.JSON(http.StatusOK, cert)
}

// Delete removes a certificate and its stored image.
//
// @Summary      Delete a certificate
// @Tags         certificates
// @Param        id  path  string  true  "Certificate ID"
// @Success      204
// @Router       /admin/certificates/{id} [delete]
func (h *CertificateHandler) Delete(c echo.Context) error {
	if err := h.content.DeleteCertificate(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CertificateHandler) bindInput(c echo.Context) (ports.CertificateInput, func(), error) {
	var req certificateRequest
	if err := c.Bind(&req); err != nil {
		return ports.CertificateInput{}, func() {}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.CertificateInput{}, func() {}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	upload, closeUpload, err := formUpload(c, "image")
	if err != nil {
		return ports.CertificateInput{}, closeUpload, err
	}

	return ports.CertificateInput{Title: req.Title, Image: upload}, closeUpload, nil
}
