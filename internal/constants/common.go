package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// User roles
	AdminRole           = "admin"
	PreparatorRole      = "preparator"
	InspectorRole       = "inspector"
	CustomerServiceRole = "customer_service"
	RefundsRole         = "refunds"
)
