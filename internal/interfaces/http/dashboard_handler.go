package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/vcrm-app/vcrm-api/internal/application/analytics"
	"github.com/vcrm-app/vcrm-api/internal/application/dto"
)

// DashboardHandler espone il forecast commerciale (JSON e PDF) e le
// statistiche del dashboard.
type DashboardHandler struct {
	forecastUC *analytics.ForecastUseCase
	statsUC    *analytics.StatsUseCase
}

// NewDashboardHandler costruisce il handler del dashboard.
func NewDashboardHandler(forecastUC *analytics.ForecastUseCase, statsUC *analytics.StatsUseCase) *DashboardHandler {
	return &DashboardHandler{forecastUC: forecastUC, statsUC: statsUC}
}

// Forecast godoc
// @Summary      Report di forecast commerciale
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        year  query  int  false  "anno di riferimento (default: corrente)"
// @Success      200   {object}  forecast.Report
// @Router       /api/dashboard/forecast [get]
func (h *DashboardHandler) Forecast(c *fiber.Ctx) error {
	year := c.QueryInt("year", 0)
	report, err := h.forecastUC.Compute(c.UserContext(), year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(report)
}

// ForecastPDF godoc
// @Summary      Report di forecast in PDF
// @Tags         dashboard
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        year  query  int  false  "anno di riferimento (default: corrente)"
// @Success      200   {file}  binary
// @Router       /api/dashboard/forecast/pdf [get]
func (h *DashboardHandler) ForecastPDF(c *fiber.Ctx) error {
	year := c.QueryInt("year", 0)
	if year <= 0 {
		year = time.Now().Year()
	}
	raw, err := h.forecastUC.ComputePDF(c.UserContext(), year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="forecast-%d.pdf"`, year))
	return c.Send(raw)
}

// Stats godoc
// @Summary      Statistiche globali del CRM
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.StatsDTO
// @Router       /api/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.statsUC.Compute(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
