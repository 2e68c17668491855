package handler

import (
	"errors"
	"strconv"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RoleHandler struct {
	uc usecase.RoleUsecase
}

func NewRoleHandler(uc usecase.RoleUsecase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

func (h *RoleHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/roles")
	grp.Get("/", h.List)
	grp.Get("/:role_id", h.Detail)
}

func (h *RoleHandler) List(c fiber.Ctx) error {
	department := c.Query("department")
	limit := queryInt(c, "limit", 50)
	offset := queryInt(c, "offset", 0)

	roles, err := h.uc.List(c.Context(), department, limit, offset)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRoles(roles))
}

func (h *RoleHandler) Detail(c fiber.Ctx) error {
	roleID, err := int64Param(c, "role_id")
	if err != nil {
		return err
	}

	detail, err := h.uc.Detail(c.Context(), roleID)
	if err != nil {
		if errors.Is(err, usecase.ErrRoleNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Role not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRoleDetail(detail))
}

func queryInt(c fiber.Ctx, key string, fallback int) int {
	s := c.Query(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
