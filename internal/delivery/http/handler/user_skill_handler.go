package handler

import (
	"errors"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserSkillHandler struct {
	uc usecase.UserSkillUsecase
}

func NewUserSkillHandler(uc usecase.UserSkillUsecase) *UserSkillHandler {
	return &UserSkillHandler{uc: uc}
}

func (h *UserSkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/users/me/skills")
	grp.Get("/", h.List)
	grp.Put("/", h.Upsert)
	grp.Delete("/:skill_id", h.Delete)
}

func (h *UserSkillHandler) List(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListByUser(c.Context(), userID)
	if err != nil {
		return mapUserSkillError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromPossessions(items))
}

func (h *UserSkillHandler) Upsert(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.UpsertSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	saved, err := h.uc.Upsert(c.Context(), userID, usecase.SkillInput{
		SkillID:     req.SkillID,
		Proficiency: req.Proficiency,
		Verified:    req.Verified,
		Source:      req.Source,
	})
	if err != nil {
		return mapUserSkillError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromPossession(saved))
}

func (h *UserSkillHandler) Delete(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	skillID, err := int64Param(c, "skill_id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), userID, skillID); err != nil {
		return mapUserSkillError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapUserSkillError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidProficiency):
		return middleware.NewAppError(fiber.StatusBadRequest, usecase.ErrInvalidProficiency.Error(), nil, err)
	case errors.Is(err, usecase.ErrInvalidSource):
		return middleware.NewAppError(fiber.StatusBadRequest, usecase.ErrInvalidSource.Error(), nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
