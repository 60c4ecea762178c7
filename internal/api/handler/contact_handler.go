package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devfolio/portfolio-api/internal/api/metrics"
	"github.com/devfolio/portfolio-api/internal/core/domain"
	"github.com/devfolio/portfolio-api/internal/core/ports"
)

// ContactHandler serves the contact page data, accepts visitor messages, and
// exposes the admin side of both.
type ContactHandler struct {
	site ports.SiteService
}

func NewContactHandler(site ports.SiteService) *ContactHandler {
	return &ContactHandler{site: site}
}

type messageRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type contactInfoRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	MapEmbedURL string `json:"map_embed_url"`
}

// Info returns the contact-page record, creating the default on first read.
//
// @Summary      Contact info
// @Tags         contact
// @Produce      json
// @Success      200  {object}  domain.ContactInfo
// @Router       /contact [get]
func (h *ContactHandler) Info(c echo.Context) error {
	info, err := h.site.ContactInfo(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, info)
}

// SubmitMessage accepts a visitor message from the contact form.
//
// @Summary      Submit a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      messageRequest  true  "Message"
// @Success      201   {object}  domain.Message
// @Failure      409   {object}  map[string]string
// @Router       /contact/messages [post]
func (h *ContactHandler) SubmitMessage(c echo.Context) error {
	var req messageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	message, err := h.site.SubmitMessage(c.Request().Context(), req.Name, req.Email, req.Message)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateMessage) {
			metrics.MessagesReceivedTotal.WithLabelValues("duplicate").Inc()
		}
		return err
	}

	metrics.MessagesReceivedTotal.WithLabelValues("accepted").Inc()
	return c.JSON(http.StatusCreated, message)
}

// ListMessages returns all received messages, newest first.
//
// @Summary      List contact messages
// @Tags         contact
// @Produce      json
// @Success      200  {array}  domain.Message
// @Router       /admin/messages [get]
func (h *ContactHandler) ListMessages(c echo.Context) error {
	messages, err := h.site.ListMessages(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}

// UpdateInfo replaces the contact-page record.
//
// @Summary      Update contact info
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactInfoRequest  true  "Contact info"
// @Success      200   {object}  domain.ContactInfo
// @Router       /admin/contact [put]
func (h *ContactHandler) UpdateInfo(c echo.Context) error {
	var req contactInfoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	info, err := h.site.UpdateContactInfo(c.Request().Context(), domain.ContactInfo{
		Email:       req.Email,
		Phone:       req.Phone,
		Location:    req.Location,
		MapEmbedURL: req.MapEmbedURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, info)
}
