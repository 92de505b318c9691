package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/vcrm-app/vcrm-api/internal/application/analytics"
	"github.com/vcrm-app/vcrm-api/internal/application/dto"
	"github.com/vcrm-app/vcrm-api/internal/domain"
)

// ExportHandler espone il backup completo del dataset.
type ExportHandler struct {
	uc *analytics.ExportUseCase
}

// NewExportHandler costruisce il handler di export.
func NewExportHandler(uc *analytics.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Export godoc
// @Summary      Esporta l'intero dataset (json, csv o xml)
// @Tags         export
// @Produce      json
// @Security     BearerAuth
// @Param        format  query  string  false  "json | csv | xml (default: json)"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/export [get]
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	format := c.Query("format", analytics.FormatJSON)
	if err := analytics.ValidateFormat(format); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formato non supportato: usare json, csv o xml"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	switch format {
	case analytics.FormatCSV:
		out, err := h.uc.ExportCSV(c.UserContext())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(out)
	case analytics.FormatXML:
		raw, err := h.uc.ExportXML(c.UserContext())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="vcrm-export.xml"`)
		return c.Send(raw)
	default:
		out, err := h.uc.ExportJSON(c.UserContext())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(out)
	}
}
