package global

const (
	AppVersion = "1.1.0" // project version shown in logs or health endpoint

	// Gin context key for storing the authenticated user ID.
	// Using a string constant reduces risk of typos and collisions.
	CtxUserIDKey = "uid"

	// DefaultAuditor is written into created_by/updated_by when no auditor is configured.
	DefaultAuditor = "system"

	// DefaultTablePattern wraps the underscored entity name; "{}" is the placeholder.
	DefaultTablePattern = "T_{}"
)
