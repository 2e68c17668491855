package usecase

import (
	"context"

	"talent-match/internal/repository"
)

type RoleDetail struct {
	Role         repository.JobRole
	Requirements []repository.RoleRequirement
}

type RoleUsecase interface {
	List(ctx context.Context, department string, limit, offset int) ([]repository.JobRole, error)
	Detail(ctx context.Context, roleID int64) (RoleDetail, error)
}

type Role struct {
	roles repository.RoleRepository
}

func NewRoleUsecase(roles repository.RoleRepository) *Role {
	return &Role{roles: roles}
}

func (u *Role) List(ctx context.Context, department string, limit, offset int) ([]repository.JobRole, error) {
	items, err := u.roles.List(ctx, department, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Role) Detail(ctx context.Context, roleID int64) (RoleDetail, error) {
	role, err := u.roles.FindByID(ctx, roleID)
	if err != nil {
		if err == repository.ErrRoleNotFound {
			return RoleDetail{}, ErrRoleNotFound
		}
		return RoleDetail{}, ErrInternal
	}

	reqs, err := u.roles.RequirementsByRoleID(ctx, roleID)
	if err != nil {
		return RoleDetail{}, ErrInternal
	}

	return RoleDetail{Role: role, Requirements: reqs}, nil
}
