package domain

import "errors"

var (
	ErrTemplateNameRequired    = errors.New("template name is required")
	ErrTemplateIntervalInvalid = errors.New("interval months must be a positive integer")
	ErrRecordEquipmentRequired = errors.New("record equipment is required")
	ErrRecordTemplateRequired  = errors.New("record template is required")
	ErrRecordDueDateRequired   = errors.New("record due date is required")
	ErrRunLogJobNameRequired   = errors.New("run log job name is required")
)
