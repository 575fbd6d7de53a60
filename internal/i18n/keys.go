package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyUnauthorized       = "error.unauthorized"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyConflict           = "error.conflict"
	// ErrKeyInvalidToken indicates an invalid or expired session token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a session token is required.
	ErrKeyTokenRequired = "error.token_required"
	ErrKeyTimeout       = "error.timeout"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
)

// Cart notice keys.
const (
	NoticeKeyItemAdded         = "notice.item_added"
	NoticeKeyAddFailed         = "notice.add_failed"
	NoticeKeyLoginRequired     = "notice.login_required"
	NoticeKeyInsufficientStock = "notice.insufficient_stock"
	NoticeKeyUpdateFailed      = "notice.update_failed"
	NoticeKeyDeleteFailed      = "notice.delete_failed"
	NoticeKeyItemRemoved       = "notice.item_removed"
	NoticeKeyCartEmpty         = "notice.cart_empty"
	NoticeKeyUnknownLine       = "notice.unknown_line"
	NoticeKeyInvalidChange     = "notice.invalid_change"
	NoticeKeyUpstreamRejected  = "notice.upstream_rejected"
)

// Delivery workflow notice keys.
const (
	NoticeKeyWorkflowClosed        = "notice.delivery_closed"
	NoticeKeyMethodRequired        = "notice.delivery_method_required"
	NoticeKeyRequiredField         = "notice.delivery_field_required"
	NoticeKeyPaymentRequired       = "notice.payment_method_required"
	NoticeKeyPaymentNotOffered     = "notice.payment_method_not_offered"
	NoticeKeyDeliverySaved         = "notice.delivery_saved"
	NoticeKeyDeliveryCancelled     = "notice.delivery_cancelled"
	NoticeKeyInvalidDeliveryMethod = "notice.delivery_method_invalid"
)

// Checkout notice keys.
const (
	NoticeKeySelectionRequired    = "notice.selection_required"
	NoticeKeyDeliveryInfoRequired = "notice.delivery_info_required"
	NoticeKeyOrderPlaced          = "notice.order_placed"
	NoticeKeyOrderFailed          = "notice.order_failed"
)

// fieldKey returns the translation key of a delivery form field label.
func fieldKey(field string) string {
	return "field." + field
}
