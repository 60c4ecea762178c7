package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devfolio/portfolio-api/internal/core/ports"
)

// DashboardHandler serves the admin landing page counters.
type DashboardHandler struct {
	content ports.ContentService
}

func NewDashboardHandler(content ports.ContentService) *DashboardHandler {
	return &DashboardHandler{content: content}
}

type dashboardResponse struct {
	Projects     int64 `json:"projects"`
	Skills       int64 `json:"skills"`
	Certificates int64 `json:"certificates"`
	Messages     int64 `json:"messages"`
}

// Counts returns entity totals for the admin dashboard.
//
// @Summary      Admin dashboard counters
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dashboardResponse
// @Router       /admin/dashboard [get]
func (h *DashboardHandler) Counts(c echo.Context) error {
	projects, skills, certificates, messages, err := h.content.DashboardCounts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboardResponse{
		Projects:     projects,
		Skills:       skills,
		Certificates: certificates,
		Messages:     messages,
	})
}
