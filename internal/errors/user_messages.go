package errors

// User-facing messages. The store-unavailable and auth messages mirror the
// API contract exactly; clients match on them.
const (
	MsgStoreUnavailable   = "Database not configured"
	MsgPhoneRequired      = "Phone is required"
	MsgInvalidOTP         = "Invalid OTP"
	MsgUserNotFound       = "User not found"
	MsgRestaurantNotFound = "Restaurant not found"
	MsgProductNotFound    = "Product not found"
	MsgInvalidParameters  = "Invalid request parameters"
	MsgInternalError      = "Something went wrong. Please try again later."
)
