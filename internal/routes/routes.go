package routes

const (
	// Health
	Health = "/health"

	// Auth endpoints
	AuthLogin    = "/api/v1/auth/login"
	AuthRegister = "/api/v1/auth/register"
	AuthLogout   = "/api/v1/auth/logout"

	// Task endpoints
	Tasks      = "/api/v1/tasks"
	TaskByID   = "/api/v1/tasks/{id}"
	TaskToggle = "/api/v1/tasks/{id}/toggle"

	// Property endpoints
	Properties      = "/api/v1/properties"
	PropertySearch  = "/api/v1/properties/search"
	PropertyByID    = "/api/v1/properties/{id}"
	PropertyApprove = "/api/v1/properties/{id}/approve"

	// Booking endpoints
	Bookings      = "/api/v1/bookings"
	BookingsOwner = "/api/v1/bookings/owner"
	BookingStatus = "/api/v1/bookings/{id}/status"
	BookingCancel = "/api/v1/bookings/{id}/cancel"
)
