package service

import "errors"

var (
	// Tenant errors
	ErrTenantNotFound = errors.New("tenant not found")
	ErrInvalidPlan    = errors.New("invalid tenant plan")

	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrUserInactive = errors.New("user is inactive")

	// Device errors
	ErrDeviceNotFound      = errors.New("device not found")
	ErrInvalidDeviceStatus = errors.New("invalid device status")

	// Dashboard errors
	ErrDashboardNotFound = errors.New("dashboard not found")
	ErrInvalidWidgetType = errors.New("invalid widget type")

	// Billing errors
	ErrNoSubscription = errors.New("tenant has no subscription")
)
