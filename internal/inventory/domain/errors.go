package domain

import "errors"

var (
	ErrEquipmentNameRequired = errors.New("equipment name is required")
	ErrCategoryNameRequired  = errors.New("category name is required")
	ErrLocationNameRequired  = errors.New("location name is required")
	ErrPersonNameRequired    = errors.New("person name is required")
)
