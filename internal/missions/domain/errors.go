package domain

import "errors"

var (
	ErrMissionTitleRequired = errors.New("mission title is required")
	ErrMissionKindInvalid   = errors.New("mission kind must be mission or exercise")
	ErrMissionDateRequired  = errors.New("mission date is required")
)
