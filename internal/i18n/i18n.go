// Package i18n translates user-facing notices and error messages.
package i18n

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Supports reports whether the translator has messages for locale.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale, then to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// TranslateField translates a notice that names a delivery form field.
func (t *Translator) TranslateField(key, field, locale string) string {
	msg := t.Translate(key, locale)
	if field == "" || !strings.Contains(msg, "%s") {
		return msg
	}
	return fmt.Sprintf(msg, t.Translate(fieldKey(field), locale))
}

// GetLocale extracts the locale from the Accept-Language header of the request.
func GetLocale(c *gin.Context) string {
	return ParseLocale(c.GetHeader(AcceptLanguageHeader))
}

// ParseLocale picks the first language of an Accept-Language value
// (e.g. "vi-VN,vi;q=0.9,en;q=0.8") when it is supported.
func ParseLocale(acceptLang string) string {
	if acceptLang == "" {
		return DefaultLocale
	}

	lang := strings.TrimSpace(strings.Split(strings.Split(acceptLang, ",")[0], ";")[0])
	if idx := strings.Index(lang, "-"); idx > 0 {
		lang = lang[:idx]
	}
	lang = strings.ToLower(lang)
	if GetTranslator().Supports(lang) {
		return lang
	}
	return DefaultLocale
}

func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":      "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.internal_error":       "An unexpected error occurred",
			"error.unauthorized":         "Unauthorized",
			"error.not_found":            "Not found",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.conflict":             "Conflict",
			"error.invalid_token":        "Invalid or expired session",
			"error.token_required":       "A session token is required",
			"error.timeout":              "Request timeout",
			"error.api_key_required":     "An API key is required",
			"error.invalid_api_key":      "Invalid API key",

			"notice.item_added":         "Product added to cart!",
			"notice.add_failed":         "Could not add the product, please try again",
			"notice.login_required":     "Please sign in to continue",
			"notice.insufficient_stock": "Not enough stock for this product",
			"notice.update_failed":      "An error occurred while updating the cart",
			"notice.delete_failed":      "An error occurred while removing the product",
			"notice.item_removed":       "Product removed from cart",
			"notice.cart_empty":         "Your cart is empty",
			"notice.unknown_line":       "This product is no longer in your cart",
			"notice.invalid_change":     "Quantity can only change by one at a time",
			"notice.upstream_rejected":  "The store rejected the request",

			"notice.delivery_closed":            "Open the delivery method dialog first",
			"notice.delivery_method_required":   "Please choose a delivery method!",
			"notice.delivery_field_required":    "Please fill in all required information: %s",
			"notice.payment_method_required":    "Please choose a payment method!",
			"notice.payment_method_not_offered": "This payment method is not available for the chosen delivery method",
			"notice.delivery_saved":             "Delivery information saved!",
			"notice.delivery_cancelled":         "Delivery changes discarded",
			"notice.delivery_method_invalid":    "Unknown delivery method",

			"notice.selection_required":     "Please select at least one product to check out!",
			"notice.delivery_info_required": "Please choose a delivery method before paying!",
			"notice.order_placed":           "Order placed successfully!",
			"notice.order_failed":           "An error occurred while placing the order!",

			"field.street":   "street address",
			"field.ward":     "ward",
			"field.district": "district",
			"field.province": "province",
			"field.phone":    "phone",
			"field.email":    "email",
		},
		"vi": {
			"error.invalid_request":      "Yêu cầu không hợp lệ",
			"error.invalid_request_body": "Dữ liệu yêu cầu không hợp lệ",
			"error.internal_error":       "Đã có lỗi xảy ra",
			"error.unauthorized":         "Chưa xác thực",
			"error.not_found":            "Không tìm thấy",
			"error.rate_limit_exceeded":  "Quá nhiều yêu cầu, vui lòng thử lại sau",
			"error.conflict":             "Xung đột dữ liệu",
			"error.invalid_token":        "Phiên làm việc không hợp lệ hoặc đã hết hạn",
			"error.token_required":       "Cần có mã phiên làm việc",
			"error.timeout":              "Hết thời gian chờ",
			"error.api_key_required":     "Cần có API key",
			"error.invalid_api_key":      "API key không hợp lệ",

			"notice.item_added":         "Thêm sản phẩm vào giỏ hàng thành công!",
			"notice.add_failed":         "Không thể thêm sản phẩm, vui lòng thử lại",
			"notice.login_required":     "Vui lòng đăng nhập để tiếp tục",
			"notice.insufficient_stock": "Số lượng sản phẩm trong kho không đủ",
			"notice.update_failed":      "Đã có lỗi xảy ra khi cập nhật giỏ hàng",
			"notice.delete_failed":      "Đã có lỗi xảy ra khi xóa sản phẩm",
			"notice.item_removed":       "Đã xóa sản phẩm khỏi giỏ hàng",
			"notice.cart_empty":         "Giỏ hàng trống",
			"notice.unknown_line":       "Sản phẩm không còn trong giỏ hàng",
			"notice.invalid_change":     "Mỗi lần chỉ thay đổi một sản phẩm",
			"notice.upstream_rejected":  "Cửa hàng từ chối yêu cầu",

			"notice.delivery_closed":            "Vui lòng mở hộp thoại phương thức nhận hàng",
			"notice.delivery_method_required":   "Vui lòng chọn phương thức nhận hàng!",
			"notice.delivery_field_required":    "Vui lòng điền đầy đủ thông tin bắt buộc: %s",
			"notice.payment_method_required":    "Vui lòng chọn phương thức thanh toán!",
			"notice.payment_method_not_offered": "Phương thức thanh toán không áp dụng cho hình thức nhận hàng này",
			"notice.delivery_saved":             "Thêm thông tin thành công!",
			"notice.delivery_cancelled":         "Đã hủy thay đổi",
			"notice.delivery_method_invalid":    "Phương thức nhận hàng không hợp lệ",

			"notice.selection_required":     "Vui lòng chọn sản phẩm để thanh toán!",
			"notice.delivery_info_required": "Vui lòng chọn phương thức nhận hàng trước khi thanh toán!",
			"notice.order_placed":           "Đặt hàng thành công!",
			"notice.order_failed":           "Có lỗi xảy ra khi đặt hàng!",

			"field.street":   "Địa chỉ cụ thể",
			"field.ward":     "Xã/phường",
			"field.district": "Quận/huyện",
			"field.province": "Tỉnh/thành phố",
			"field.phone":    "Số điện thoại",
			"field.email":    "Email",
		},
	}
}
