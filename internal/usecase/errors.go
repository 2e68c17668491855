package usecase

import "errors"

var (
	ErrInternal           = errors.New("Internal server error")
	ErrUnauthorized       = errors.New("Unauthorized")
	ErrInvalidCredentials = errors.New("Invalid email or password")

	ErrRoleNotFound      = errors.New("Role not found")
	ErrCandidateNotFound = errors.New("Candidate not found")
	ErrSkillNotFound     = errors.New("Skill not found")

	ErrNoSkillsRecorded = errors.New("Candidate has no skills recorded")

	ErrInvalidProficiency = errors.New("Proficiency must be between 1 and 5")
	ErrInvalidSource      = errors.New("Unknown skill source")
)
