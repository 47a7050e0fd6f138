package errors

// Error codes for standardized error responses
const (
	// Validation errors
	ErrCodeInvalidRequest   = "invalid_request"
	ErrCodeValidationFailed = "validation_failed"
	ErrCodeMissingField     = "missing_field"

	// Question-set errors
	ErrCodeLoadFailed     = "load_failed"
	ErrCodeSetNotFound    = "set_not_found"
	ErrCodeSetMalformed   = "set_malformed"
	ErrCodeUploadTooLarge = "upload_too_large"

	// Session errors
	ErrCodeSessionNotFound  = "session_not_found"
	ErrCodeInvalidSessionID = "invalid_session_id"
	ErrCodeOutOfSequence    = "out_of_sequence"
	ErrCodeAlreadyFinished  = "already_finished"
	ErrCodeNotFinished      = "not_finished"

	// Server errors
	ErrCodeInternalError = "internal_error"
)
