package handler

import (
	"context"
	"errors"
	"strconv"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	matching usecase.MatchingUsecase
	ranking  usecase.RankingUsecase
}

func NewMatchHandler(matching usecase.MatchingUsecase, ranking usecase.RankingUsecase) *MatchHandler {
	return &MatchHandler{matching: matching, ranking: ranking}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/match")
	grp.Get("/candidate/:candidate_id/role/:role_id", h.GetMatch)
	grp.Get("/role-candidates/:role_id", h.GetRoleCandidates)
	grp.Get("/candidate-roles/:candidate_id", h.GetCandidateRoles)
}

func (h *MatchHandler) GetMatch(c fiber.Ctx) error {
	candidateID, err := int64Param(c, "candidate_id")
	if err != nil {
		return err
	}
	roleID, err := int64Param(c, "role_id")
	if err != nil {
		return err
	}

	report, err := h.matching.CalculateMatch(c.Context(), candidateID, roleID)
	if err != nil {
		return mapMatchError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromMatchReport(report))
}

func (h *MatchHandler) GetRoleCandidates(c fiber.Ctx) error {
	roleID, err := int64Param(c, "role_id")
	if err != nil {
		return err
	}

	report, err := h.ranking.RankCandidatesForRole(c.Context(), roleID, rankOptions(c))
	if err != nil {
		return mapMatchError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRoleCandidatesReport(report))
}

func (h *MatchHandler) GetCandidateRoles(c fiber.Ctx) error {
	candidateID, err := int64Param(c, "candidate_id")
	if err != nil {
		return err
	}

	report, err := h.ranking.RankRolesForCandidate(c.Context(), candidateID, rankOptions(c))
	if err != nil {
		return mapMatchError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCandidateRolesReport(report))
}

func rankOptions(c fiber.Ctx) usecase.RankOptions {
	opts := usecase.RankOptions{Department: c.Query("department")}
	if raw := c.Query("min_match_percentage"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 && v <= 100 {
			opts.MinMatchPercentage = v
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			opts.Limit = v
		}
	}
	return opts
}

func int64Param(c fiber.Ctx, key string) (int64, error) {
	v, err := strconv.ParseInt(c.Params(key), 10, 64)
	if err != nil || v <= 0 {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	return v, nil
}

func mapMatchError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrRoleNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Role not found", nil, err)
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	case errors.Is(err, usecase.ErrNoSkillsRecorded):
		return middleware.NewAppError(fiber.StatusBadRequest, "Candidate has no skills recorded", nil, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return middleware.NewAppError(fiber.StatusRequestTimeout, "Request cancelled", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
