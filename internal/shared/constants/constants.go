package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// Context keys
	ContextKeyRequestID = "request_id"
	ContextKeySubject   = "auth_subject"
	ContextKeyRole      = "auth_role"

	// Roles
	RoleAdmin  = "admin"
	RoleClient = "client"

	// Request defaults
	RequestSourceWebsite = "website"

	// Database table names
	TableRequests        = "requests"
	TableCompanySettings = "company_settings"
	TableCasbinRules     = "casbin_rule"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgValidationFailed    = "Validation failed"
)
