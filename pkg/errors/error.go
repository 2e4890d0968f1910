package errors

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalError represents a generic internal error.
	GeneralInternalError ErrorCode = "general_internal_error"
	// GeneralValidationError represents a generic validation error.
	GeneralValidationError ErrorCode = "general_validation_error"

	// OrderInvalidQuantity represents an error when an order is created with a non-positive quantity.
	OrderInvalidQuantity ErrorCode = "order_invalid_quantity"
	// OrderMissingLimitPrice represents an error when a limit order is created without a positive limit price.
	OrderMissingLimitPrice ErrorCode = "order_missing_limit_price"
	// OrderNil represents an error when a nil order is submitted.
	OrderNil ErrorCode = "order_nil"

	// FeedMissingTimestamp represents an error when an event carries no extractable timestamp.
	FeedMissingTimestamp ErrorCode = "feed_missing_timestamp"
	// FeedOpenError represents an error when an event source cannot be opened.
	FeedOpenError ErrorCode = "feed_open_error"
	// FeedReadError represents an error when reading from an event source fails.
	FeedReadError ErrorCode = "feed_read_error"

	// EngineAlreadyRun represents an error when Run is invoked on an engine that already ran.
	EngineAlreadyRun ErrorCode = "engine_already_run"
	// StrategyNotAttached represents an error when a strategy submits an order without being attached to an engine.
	StrategyNotAttached ErrorCode = "strategy_not_attached"

	// PortfolioUnpricedSymbol represents an error when a held symbol has no current price during valuation.
	PortfolioUnpricedSymbol ErrorCode = "portfolio_unpriced_symbol"

	// ResultMarshalError represents an error when serializing a run result.
	ResultMarshalError ErrorCode = "result_marshal_error"
	// ResultStoreError represents an error when persisting a run result.
	ResultStoreError ErrorCode = "result_store_error"
	// ResultLoadError represents an error when loading a run result.
	ResultLoadError ErrorCode = "result_load_error"
	// ResultUnmarshalError represents an error when deserializing a run result.
	ResultUnmarshalError ErrorCode = "result_unmarshal_error"

	// RedisConfigError represents an error when the Redis configuration is invalid or nil.
	RedisConfigError ErrorCode = "redis_config_error"
	// RedisConnectionError represents an error when connecting to Redis.
	RedisConnectionError ErrorCode = "redis_connection_error"
	// RedisPingError represents an error when pinging Redis.
	RedisPingError ErrorCode = "redis_pinging_error"
	// RedisGetError represents an error when getting a value from Redis.
	RedisGetError ErrorCode = "redis_get_error"
	// RedisSetError represents an error when setting a value in Redis.
	RedisSetError ErrorCode = "redis_set_error"
	// RedisDelError represents an error when deleting a value from Redis.
	RedisDelError ErrorCode = "redis_del_error"
)

// ErrorDetails represents detailed information about an error.
type ErrorDetails struct {
	// Message (required) is the user-defined error message.
	// E.g. "order quantity must be positive".
	Message string

	// Code (required) is the user-defined error code string.
	// E.g. "order_invalid_quantity".
	Code string

	// Field (optional) is the related field or operation the error occurred on, if any.
	Field string

	// Object (optional) is the related object the error occurred on, if any.
	Object interface{}
}

// NewErrorDetails creates a new ErrorDetails struct with the given parameters.
func NewErrorDetails(message, code, field string) *ErrorDetails {
	return &ErrorDetails{
		Message: message,
		Code:    code,
		Field:   field,
	}
}

// NewErrorDetailsWithObject creates a new ErrorDetails struct with an associated object.
func NewErrorDetailsWithObject(message, code, field string, object interface{}) *ErrorDetails {
	return &ErrorDetails{
		Message: message,
		Code:    code,
		Field:   field,
		Object:  object,
	}
}

// Error is used to implement the Golang `error` interface.
func (e *ErrorDetails) Error() string {
	return e.Message
}

// ErrorCodeEquals checks whether a given `error` has a specific code.
func ErrorCodeEquals(err error, code ErrorCode) bool {
	errDetails, ok := err.(*ErrorDetails)
	if !ok {
		return false
	}

	return errDetails.Code == string(code)
}
