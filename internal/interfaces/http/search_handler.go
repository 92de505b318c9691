package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/vcrm-app/vcrm-api/internal/application/analytics"
	"github.com/vcrm-app/vcrm-api/internal/application/dto"
	"github.com/vcrm-app/vcrm-api/internal/domain"
)

// SearchHandler espone la ricerca globale.
type SearchHandler struct {
	uc *analytics.SearchUseCase
}

// NewSearchHandler costruisce il handler di ricerca.
func NewSearchHandler(uc *analytics.SearchUseCase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

// Search godoc
// @Summary      Ricerca globale su contatti, opportunità e attività
// @Tags         search
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  true  "testo da cercare (minimo 2 caratteri)"
// @Success      200  {object}  dto.SearchResultsDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/search [get]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.UserContext(), c.Query("q"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la query deve avere almeno 2 caratteri"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
