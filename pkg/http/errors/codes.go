package errors

// Error codes for standardized error responses
const (
	// Validation errors
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeMissingField   = "missing_field"

	// Model output errors
	ErrCodeUnparseableOutput = "unparseable_model_output"
	ErrCodeInvalidOutput     = "invalid_model_output"

	// Server errors
	ErrCodeInternalError = "internal_error"
	ErrCodeUpstreamError = "upstream_error"
)
