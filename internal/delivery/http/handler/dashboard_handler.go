package handler

import (
	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type DashboardHandler struct {
	uc usecase.OrganizationUsecase
}

func NewDashboardHandler(uc usecase.OrganizationUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/dashboard")
	grp.Get("/organization", h.GetOrganization)
	grp.Get("/skill-coverage", h.GetSkillCoverage)
}

func (h *DashboardHandler) GetOrganization(c fiber.Ctx) error {
	report, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromDashboardReport(report))
}

func (h *DashboardHandler) GetSkillCoverage(c fiber.Ctx) error {
	coverage, err := h.uc.SkillCoverage(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSkillCoverages(coverage))
}
