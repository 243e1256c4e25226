package httperr

const (
	CodeInvalidRequest   = "invalid_request"
	CodeValidationFailed = "validation_failed"
	CodeClientNotFound   = "client_not_found"
	CodeLookupNotFound   = "lookup_not_found"
	CodeLookupFailed     = "lookup_unavailable"
)
