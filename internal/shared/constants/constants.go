package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Context keys
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"

	// Database table names
	TableUsers              = "users"
	TableMenuItems          = "menu_items"
	TableAddOns             = "add_ons"
	TableOrders             = "orders"
	TableSubscriptions      = "subscriptions"
	TableSubscriptionPauses = "subscription_pauses"
	TableDeliveryLogs       = "delivery_logs"
	TableNotifications      = "notifications"
	TableSystemSettings     = "system_settings"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
)
