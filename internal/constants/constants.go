package constants

// Context keys
const (
	ContextKeyUserID = "user_id"
)

// Validation limits
const (
	MinPasswordLength = 8
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Billing unit prices (per seat / per project, in USD)
const (
	SeatUnitPrice    = 10
	ProjectUnitPrice = 20
)
