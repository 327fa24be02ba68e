package storage

// StoreError represents persistence errors with enough context to report
// which file and operation failed
type StoreError struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *StoreError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

// Common error codes
const (
	ErrCodeWrite  = "WRITE_FAILED"
	ErrCodeRead   = "READ_FAILED"
	ErrCodeFormat = "INVALID_FORMAT"
)

// NewStoreError creates a new storage error
func NewStoreError(path, code, message string, cause error) *StoreError {
	return &StoreError{
		Path:    path,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
