package service

import (
	"context"
	"strings"

	"github.com/guttosm/cart-sync/internal/domain/model"
	"github.com/guttosm/cart-sync/internal/i18n"
	"github.com/guttosm/cart-sync/internal/metrics"
)

// DeliveryWorkflow is the delivery modal state machine. It never calls the
// network; a successful confirm persists DeliveryInfo to the checkout store.
type DeliveryWorkflow struct {
	state   model.WorkflowState
	method  model.DeliveryMethod
	forms   map[model.DeliveryMethod]model.DeliveryForm
	options model.PaymentOptions
	store   *CheckoutStore
}

// NewDeliveryWorkflow creates a closed workflow.
func NewDeliveryWorkflow(store *CheckoutStore, options model.PaymentOptions) *DeliveryWorkflow {
	if options == nil {
		options = model.DefaultPaymentOptions()
	}
	return &DeliveryWorkflow{
		state:   model.WorkflowClosed,
		forms:   make(map[model.DeliveryMethod]model.DeliveryForm),
		options: options,
		store:   store,
	}
}

// State returns the current workflow state.
func (w *DeliveryWorkflow) State() model.WorkflowState {
	return w.state
}

// Open shows the modal with no method chosen. Opening an open modal keeps it as is.
func (w *DeliveryWorkflow) Open() model.Outcome {
	if !w.state.IsOpen() {
		w.state = model.WorkflowMethodUnselected
		w.method = ""
	}
	return model.Outcome{Status: model.OutcomeApplied}
}

// Select chooses the delivery method, showing its fields and payment options.
func (w *DeliveryWorkflow) Select(method string) model.Outcome {
	if !w.state.IsOpen() {
		return invalid(i18n.NoticeKeyWorkflowClosed, "")
	}
	m, err := model.ParseDeliveryMethod(method)
	if err != nil {
		return invalid(i18n.NoticeKeyInvalidDeliveryMethod, "")
	}
	w.method = m
	w.state = model.WorkflowMethodSelected
	return model.Outcome{Status: model.OutcomeApplied}
}

// UpdateForm stores in-progress edits for a method's form. An empty method
// means the currently selected one.
func (w *DeliveryWorkflow) UpdateForm(method string, form model.DeliveryForm) model.Outcome {
	if !w.state.IsOpen() {
		return invalid(i18n.NoticeKeyWorkflowClosed, "")
	}
	m := w.method
	if strings.TrimSpace(method) != "" {
		parsed, err := model.ParseDeliveryMethod(method)
		if err != nil {
			return invalid(i18n.NoticeKeyInvalidDeliveryMethod, "")
		}
		m = parsed
	}
	if m == "" {
		return invalid(i18n.NoticeKeyMethodRequired, "")
	}
	w.forms[m] = form
	return model.Outcome{Status: model.OutcomeApplied}
}

// Confirm validates the selected method's form and persists the resulting
// DeliveryInfo. Validation stops at the first problem: no method, then the
// required fields in order, then the payment choice.
func (w *DeliveryWorkflow) Confirm(ctx context.Context) (model.Outcome, error) {
	outcome, info := w.validate()
	if outcome.Status != model.OutcomeApplied {
		metrics.RecordDeliveryConfirmation(string(outcome.Status))
		return outcome, nil
	}

	if err := w.store.SaveDeliveryInfo(ctx, info); err != nil {
		return model.Outcome{}, err
	}

	w.close()
	metrics.RecordDeliveryConfirmation(string(model.OutcomeApplied))
	return model.Outcome{
		Status: model.OutcomeApplied,
		Notice: model.NewNotice(model.NoticeSuccess, i18n.NoticeKeyDeliverySaved),
	}, nil
}

func (w *DeliveryWorkflow) validate() (model.Outcome, model.DeliveryInfo) {
	if !w.state.IsOpen() {
		return invalid(i18n.NoticeKeyWorkflowClosed, ""), model.DeliveryInfo{}
	}
	if w.state != model.WorkflowMethodSelected || w.method == "" {
		return invalid(i18n.NoticeKeyMethodRequired, ""), model.DeliveryInfo{}
	}

	form := w.forms[w.method]
	for _, field := range model.RequiredFields(w.method) {
		if form.Value(field) == "" {
			return invalid(i18n.NoticeKeyRequiredField, string(field)), model.DeliveryInfo{}
		}
	}

	payment := strings.TrimSpace(form.PaymentMethod)
	if payment == "" {
		return invalid(i18n.NoticeKeyPaymentRequired, ""), model.DeliveryInfo{}
	}
	if !w.options.Allows(w.method, payment) {
		return invalid(i18n.NoticeKeyPaymentNotOffered, ""), model.DeliveryInfo{}
	}

	info := model.DeliveryInfo{
		Method:        w.method,
		PaymentMethod: payment,
		Phone:         form.Value(model.FieldPhone),
		Email:         form.Value(model.FieldEmail),
	}
	if w.method == model.DeliveryHome {
		info.Address = form.ComposeAddress()
	}
	return model.Outcome{Status: model.OutcomeApplied}, info
}

// Cancel discards unsaved edits and closes the modal. A saved DeliveryInfo is kept.
func (w *DeliveryWorkflow) Cancel() model.Outcome {
	if !w.state.IsOpen() {
		return model.Outcome{Status: model.OutcomeApplied}
	}
	w.close()
	return model.Outcome{
		Status: model.OutcomeApplied,
		Notice: model.NewNotice(model.NoticeInfo, i18n.NoticeKeyDeliveryCancelled),
	}
}

func (w *DeliveryWorkflow) close() {
	w.state = model.WorkflowClosed
	w.method = ""
	clear(w.forms)
}

// View renders the modal together with the saved delivery info.
func (w *DeliveryWorkflow) View(ctx context.Context) (model.DeliveryView, error) {
	saved, err := w.store.DeliveryInfo(ctx)
	if err != nil {
		return model.DeliveryView{}, err
	}

	view := model.DeliveryView{State: w.state, Saved: saved}
	if w.state == model.WorkflowMethodSelected {
		form := w.forms[w.method]
		view.Method = w.method
		view.VisibleFields = model.RequiredFields(w.method)
		view.PaymentOptions = w.options[w.method]
		view.Form = &form
	}
	return view, nil
}

func invalid(key, field string) model.Outcome {
	notice := model.NewNotice(model.NoticeWarning, key)
	notice.Blocking = true
	notice.Field = field
	return model.Outcome{Status: model.OutcomeInvalid, Notice: notice}
}
