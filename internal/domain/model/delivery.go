package model

import (
	"fmt"
	"slices"
	"strings"
)

// DeliveryMethod is how the shopper receives the order.
type DeliveryMethod string

const (
	// DeliveryHome ships the order to a composed street address.
	DeliveryHome DeliveryMethod = "home"
	// DeliveryStore lets the shopper collect the order in store.
	DeliveryStore DeliveryMethod = "store"
)

// ParseDeliveryMethod validates a delivery method string.
func ParseDeliveryMethod(s string) (DeliveryMethod, error) {
	switch m := DeliveryMethod(strings.ToLower(strings.TrimSpace(s))); m {
	case DeliveryHome, DeliveryStore:
		return m, nil
	default:
		return "", fmt.Errorf("unknown delivery method %q", s)
	}
}

// DeliveryForm holds the in-progress fields of one delivery method's form.
type DeliveryForm struct {
	Phone         string `json:"phone,omitempty" example:"0901234567"`
	Email         string `json:"email,omitempty" example:"shopper@example.com"`
	Street        string `json:"street,omitempty" example:"12 Nguyễn Huệ"`
	Ward          string `json:"ward,omitempty" example:"Bến Nghé"`
	District      string `json:"district,omitempty" example:"Quận 1"`
	Province      string `json:"province,omitempty" example:"TP. Hồ Chí Minh"`
	PaymentMethod string `json:"payment_method,omitempty" example:"cod"`
} // @name DeliveryForm

// FormField names a required input of a delivery form.
type FormField string

// Form fields in the order they are validated.
const (
	FieldStreet   FormField = "street"
	FieldWard     FormField = "ward"
	FieldDistrict FormField = "district"
	FieldProvince FormField = "province"
	FieldPhone    FormField = "phone"
	FieldEmail    FormField = "email"
)

// RequiredFields returns the fields that must be non-empty for the method.
func RequiredFields(method DeliveryMethod) []FormField {
	if method == DeliveryHome {
		return []FormField{FieldStreet, FieldWard, FieldDistrict, FieldProvince, FieldPhone, FieldEmail}
	}
	return []FormField{FieldPhone, FieldEmail}
}

// Value returns the trimmed value of a field.
func (f DeliveryForm) Value(field FormField) string {
	var v string
	switch field {
	case FieldStreet:
		v = f.Street
	case FieldWard:
		v = f.Ward
	case FieldDistrict:
		v = f.District
	case FieldProvince:
		v = f.Province
	case FieldPhone:
		v = f.Phone
	case FieldEmail:
		v = f.Email
	}
	return strings.TrimSpace(v)
}

// ComposeAddress joins street, ward, district and province, comma-separated.
func (f DeliveryForm) ComposeAddress() string {
	return strings.Join([]string{
		f.Value(FieldStreet),
		f.Value(FieldWard),
		f.Value(FieldDistrict),
		f.Value(FieldProvince),
	}, ", ")
}

// DeliveryInfo is the confirmed delivery and payment record used at checkout.
//
// @Description Saved delivery information
type DeliveryInfo struct {
	Method        DeliveryMethod `json:"delivery_method" bson:"delivery_method" example:"home"`
	PaymentMethod string         `json:"payment_method" bson:"payment_method" example:"cod"`
	Phone         string         `json:"phone" bson:"phone" example:"0901234567"`
	Email         string         `json:"email" bson:"email" example:"shopper@example.com"`
	Address       string         `json:"delivery_address,omitempty" bson:"delivery_address,omitempty" example:"12 Nguyễn Huệ, Bến Nghé, Quận 1, TP. Hồ Chí Minh"`
} // @name DeliveryInfo

// PaymentOptions lists the payment choices offered per delivery method.
type PaymentOptions map[DeliveryMethod][]string

// DefaultPaymentOptions returns the storefront's standard payment choices.
func DefaultPaymentOptions() PaymentOptions {
	return PaymentOptions{
		DeliveryHome:  {"cod", "bank_transfer", "e_wallet"},
		DeliveryStore: {"pay_at_store", "bank_transfer"},
	}
}

// Allows reports whether option is offered for method.
func (p PaymentOptions) Allows(method DeliveryMethod, option string) bool {
	return slices.Contains(p[method], option)
}

// WorkflowState is the state of the delivery modal.
type WorkflowState string

const (
	// WorkflowClosed means the modal is hidden.
	WorkflowClosed WorkflowState = "closed"
	// WorkflowMethodUnselected means the modal is open with no method chosen.
	WorkflowMethodUnselected WorkflowState = "open:method-unselected"
	// WorkflowMethodSelected means the modal is open with a method chosen.
	WorkflowMethodSelected WorkflowState = "open:method-selected"
)

// IsOpen reports whether the modal is showing.
func (s WorkflowState) IsOpen() bool {
	return s == WorkflowMethodUnselected || s == WorkflowMethodSelected
}

// DeliveryView is the rendered state of the delivery workflow.
type DeliveryView struct {
	State          WorkflowState  `json:"state" example:"open:method-selected"`
	Method         DeliveryMethod `json:"method,omitempty" example:"home"`
	VisibleFields  []FormField    `json:"visible_fields,omitempty"`
	PaymentOptions []string       `json:"payment_options,omitempty"`
	Form           *DeliveryForm  `json:"form,omitempty"`
	Saved          *DeliveryInfo  `json:"saved,omitempty"`
} // @name DeliveryView
