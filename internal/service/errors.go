package service

import "errors"

var (
	ErrNameRequired     = errors.New("name is required")
	ErrTeamNotFound     = errors.New("team not found")
	ErrTeamNameTaken    = errors.New("a team with that name already exists")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrVacationNotFound = errors.New("vacation not found")
	ErrInvalidRange     = errors.New("end date must not be before start date")
	ErrVacationOverlap  = errors.New("period overlaps an existing vacation")
)
