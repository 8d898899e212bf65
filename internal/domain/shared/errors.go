package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound         = NewDomainError("NOT_FOUND", "Resource not found")
	ErrInvalidInput     = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrNotAuthorized    = NewDomainError("NOT_AUTHORIZED", "Project not found or not owned by caller")
	ErrStageNotFound    = NewDomainError("STAGE_NOT_FOUND", "Stage not found")
	ErrUnknownCheckItem = NewDomainError("UNKNOWN_CHECK_ITEM", "Check item not found in the catalog")
	ErrStorageFailure   = NewDomainError("STORAGE_FAILURE", "Storage operation failed")
)
