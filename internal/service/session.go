package service

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"

	"github.com/guttosm/cart-sync/internal/client"
	"github.com/guttosm/cart-sync/internal/domain/model"
	"github.com/guttosm/cart-sync/internal/i18n"
	"github.com/guttosm/cart-sync/internal/money"
	"github.com/guttosm/cart-sync/internal/repository"
	"github.com/shopspring/decimal"
)

// SessionOptions are the settings shared by every session.
type SessionOptions struct {
	Formatter      *money.Formatter
	PaymentOptions model.PaymentOptions
	LoginPath      string
	LandingPath    string
	Audit          AuditRecorder
}

// Session is one shopper's cart engine: a registry, a selection tracker, a
// delivery workflow, a mutator and a checkout orchestrator sharing one lock
// and one upstream cookie jar.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	jar       http.CookieJar
	formatter *money.Formatter
	audit     auditor

	registry  *Registry
	selection *SelectionTracker
	delivery  *DeliveryWorkflow
	mutator   *Mutator
	checkout  *CheckoutOrchestrator
	store     *CheckoutStore
}

// NewSession wires a session's components.
func NewSession(id string, clients client.CartClientFactory, repo repository.CheckoutStateRepositoryInterface, opts SessionOptions) (*Session, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	if opts.Formatter == nil {
		opts.Formatter = money.Default()
	}

	s := &Session{
		ID:        id,
		CreatedAt: time.Now(),
		jar:       jar,
		formatter: opts.Formatter,
		audit:     auditor{recorder: opts.Audit, sessionID: id},
	}

	cartClient := clients.ForSession(jar)
	s.store = NewCheckoutStore(repo, id)
	s.registry = NewRegistry()
	s.selection = NewSelectionTracker(s.registry, s.store)
	s.delivery = NewDeliveryWorkflow(s.store, opts.PaymentOptions)
	s.mutator = NewMutator(&s.mu, cartClient, s.registry, s.selection, opts.LoginPath)
	s.mutator.audit = s.audit
	s.checkout = NewCheckoutOrchestrator(&s.mu, cartClient, s.store, s.selection, opts.LoginPath, opts.LandingPath)
	s.checkout.audit = s.audit

	return s, nil
}

// View renders the cart.
func (s *Session) View() model.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view()
}

func (s *Session) view() model.CartView {
	v := s.registry.View(s.formatter)
	v.Selection = s.selection.View(s.formatter)
	v.SelectedProducts = s.selection.SelectedIDs()
	return v
}

// Reload hydrates the registry from a server-rendered listing. A reload
// starts a fresh checkout: the selection and the persisted state are cleared.
func (s *Session) Reload(ctx context.Context, lines []model.CartLine) (model.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.registry.Load(lines)
	s.selection.Reset()
	if err := s.store.Clear(ctx); err != nil {
		return model.CartView{}, err
	}
	return s.view(), nil
}

// AddItem adds one unit of a product.
func (s *Session) AddItem(ctx context.Context, productID, name string, price decimal.Decimal) (model.Outcome, error) {
	return s.mutator.AddItem(ctx, productID, name, price)
}

// AdjustQuantity changes a line's quantity by +1 or -1.
func (s *Session) AdjustQuantity(ctx context.Context, productID string, change int) (model.Outcome, error) {
	return s.mutator.AdjustQuantity(ctx, productID, change)
}

// DeleteItem removes a line.
func (s *Session) DeleteItem(ctx context.Context, productID string) (model.Outcome, error) {
	return s.mutator.DeleteItem(ctx, productID)
}

// ToggleLine marks or unmarks one line for checkout.
func (s *Session) ToggleLine(ctx context.Context, productID string, selected bool) (model.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok, err := s.selection.ToggleLine(ctx, productID, selected)
	if err != nil {
		return model.Outcome{}, err
	}
	if !ok {
		return invalid(i18n.NoticeKeyUnknownLine, ""), nil
	}
	return model.Outcome{Status: model.OutcomeApplied}, nil
}

// ToggleAll marks or unmarks every line.
func (s *Session) ToggleAll(ctx context.Context, selected bool) (model.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.selection.ToggleAll(ctx, selected); err != nil {
		return model.Outcome{}, err
	}
	return model.Outcome{Status: model.OutcomeApplied}, nil
}

// DeliveryView renders the delivery workflow.
func (s *Session) DeliveryView(ctx context.Context) (model.DeliveryView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.delivery.View(ctx)
}

// OpenDelivery opens the delivery modal.
func (s *Session) OpenDelivery() model.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.delivery.Open()
}

// SelectDeliveryMethod chooses home or store delivery.
func (s *Session) SelectDeliveryMethod(method string) model.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.delivery.Select(method)
}

// UpdateDeliveryForm stores in-progress form edits.
func (s *Session) UpdateDeliveryForm(method string, form model.DeliveryForm) model.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.delivery.UpdateForm(method, form)
}

// ConfirmDelivery validates and saves the delivery info. A non-nil form is
// applied to the given method first.
func (s *Session) ConfirmDelivery(ctx context.Context, method string, form *model.DeliveryForm) (model.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if form != nil {
		if method != "" && s.delivery.State().IsOpen() {
			if outcome := s.delivery.Select(method); outcome.Status != model.OutcomeApplied {
				return outcome, nil
			}
		}
		if outcome := s.delivery.UpdateForm(method, *form); outcome.Status != model.OutcomeApplied {
			return outcome, nil
		}
	}

	outcome, err := s.delivery.Confirm(ctx)
	if err != nil {
		return model.Outcome{}, err
	}
	fields := map[string]interface{}{}
	if outcome.Notice != nil && outcome.Notice.Field != "" {
		fields["field"] = outcome.Notice.Field
	}
	s.audit.record(ctx, ActionConfirmDelivery, outcome, fields)
	return outcome, nil
}

// CancelDelivery closes the modal, discarding unsaved edits.
func (s *Session) CancelDelivery() model.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.delivery.Cancel()
}

// Checkout submits the order.
func (s *Session) Checkout(ctx context.Context) (model.Outcome, error) {
	return s.checkout.Submit(ctx)
}
