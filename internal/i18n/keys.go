package i18n

// Message keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyConflict           = "error.conflict"
	ErrKeyTimeout            = "error.timeout"
	ErrKeyUnknownItem        = "error.unknown_item"
	ErrKeyInvalidQuantity    = "error.invalid_quantity"
	// ErrKeyOrderRejected heads a 422 answer; the precise reason travels in the snapshot notice.
	ErrKeyOrderRejected = "error.order_rejected"
)
