package domain

import "errors"

// Common domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInternalServer = errors.New("internal server error")
)

// User errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserInactive = errors.New("user is inactive")
)

// Savings and loan errors
var (
	ErrAporteNotFound  = errors.New("aporte not found")
	ErrCuotaNotFound   = errors.New("cuota not found")
	ErrCreditoNotFound = errors.New("credito not found")
	ErrInvalidEnum     = errors.New("value is not one of the enumerated literals")
)

// Dashboard errors
var (
	ErrDashboardUnavailable = errors.New("dashboard data unavailable")
)
