package services

import "errors"

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrStageNotFound      = errors.New("stage not found")
	ErrProductionNotFound = errors.New("production not found")
	ErrInvalidStatus      = errors.New("invalid status")
)
