package service

import (
	"context"
	"strings"
	"sync"

	"github.com/guttosm/cart-sync/internal/client"
	"github.com/guttosm/cart-sync/internal/domain/model"
	"github.com/guttosm/cart-sync/internal/i18n"
	"github.com/guttosm/cart-sync/internal/metrics"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Mutator sends add, adjust and delete requests upstream and applies the
// confirmed results to the registry.
//
// The session lock is held while issuing and while applying, and released
// across the upstream call. Every request takes the next sequence number.
// Adjust and delete also record it per line, and their responses are
// discarded as superseded unless the tag is still the latest for the line.
// Adds change no line figures locally, so they never supersede one.
// Cart-wide figures are only taken from a response newer than the last one
// whose figures were applied.
type Mutator struct {
	mu        sync.Locker
	client    client.CartClient
	registry  *Registry
	selection *SelectionTracker
	audit     auditor
	loginPath string

	seq        uint64
	latest     map[string]uint64
	summaryTag uint64
}

// NewMutator creates a mutator. mu is the owning session's lock.
func NewMutator(mu sync.Locker, c client.CartClient, registry *Registry, selection *SelectionTracker, loginPath string) *Mutator {
	return &Mutator{
		mu:        mu,
		client:    c,
		registry:  registry,
		selection: selection,
		loginPath: loginPath,
		latest:    make(map[string]uint64),
	}
}

// next must be called with the lock held.
func (m *Mutator) next() uint64 {
	m.seq++
	return m.seq
}

// issue tags a request for productID. It must be called with the lock held.
func (m *Mutator) issue(productID string) uint64 {
	tag := m.next()
	m.latest[productID] = tag
	return tag
}

// newestSummary reports whether tag is newer than the cart-wide figures on
// display and, if so, claims them. It must be called with the lock held.
func (m *Mutator) newestSummary(tag uint64) bool {
	if tag <= m.summaryTag {
		return false
	}
	m.summaryTag = tag
	return true
}

// current must be called with the lock held.
func (m *Mutator) current(productID string, tag uint64) bool {
	return m.latest[productID] == tag
}

// AddItem adds one unit of a product. The badge takes the server total.
func (m *Mutator) AddItem(ctx context.Context, productID, name string, price decimal.Decimal) (model.Outcome, error) {
	productID = strings.TrimSpace(productID)

	m.mu.Lock()
	tag := m.next()
	m.mu.Unlock()

	res := m.client.AddItem(ctx, productID, name, price)

	m.mu.Lock()
	defer m.mu.Unlock()

	var outcome model.Outcome
	switch res.Outcome {
	case model.OutcomeApplied:
		m.registry.ApplyAdded(productID, name, price)
		if m.newestSummary(tag) {
			m.registry.ApplyCounter(res.TotalQuantity)
		}
		outcome = model.Outcome{
			Status: model.OutcomeApplied,
			Notice: model.NewNotice(model.NoticeSuccess, i18n.NoticeKeyItemAdded),
		}
	case model.OutcomeAuthRequired:
		outcome = m.authRequired()
	default:
		logFailure(ctx, client.OperationAdd, productID, res.Err)
		outcome = failed(res.Message, i18n.NoticeKeyAddFailed)
	}

	m.finish(ctx, client.OperationAdd, ActionAddItem, outcome, map[string]interface{}{
		"product_id": productID,
		"price":      price.String(),
	})
	return outcome, nil
}

// AdjustQuantity changes a line's quantity by +1 or -1.
func (m *Mutator) AdjustQuantity(ctx context.Context, productID string, change int) (model.Outcome, error) {
	if change != 1 && change != -1 {
		outcome := invalid(i18n.NoticeKeyInvalidChange, "")
		m.finish(ctx, client.OperationAdjust, ActionAdjustQuantity, outcome, map[string]interface{}{"product_id": productID})
		return outcome, nil
	}

	m.mu.Lock()
	if !m.registry.Has(productID) {
		m.mu.Unlock()
		outcome := invalid(i18n.NoticeKeyUnknownLine, "")
		m.finish(ctx, client.OperationAdjust, ActionAdjustQuantity, outcome, map[string]interface{}{"product_id": productID})
		return outcome, nil
	}
	tag := m.issue(productID)
	m.mu.Unlock()

	res := m.client.AdjustQuantity(ctx, productID, change)

	m.mu.Lock()
	defer m.mu.Unlock()

	fields := map[string]interface{}{"product_id": productID, "change": change}

	if !m.current(productID, tag) {
		outcome := superseded()
		m.finish(ctx, client.OperationAdjust, ActionAdjustQuantity, outcome, fields)
		return outcome, nil
	}

	var outcome model.Outcome
	wasSelected := m.selection.IsSelected(productID)

	switch res.Outcome {
	case model.OutcomeApplied:
		removed := m.registry.ApplyAdjusted(productID, res.Quantity, res.LineTotal)
		if m.newestSummary(tag) && m.registry.ApplySummary(res.CartQuantity, res.CartPrice) {
			removed = true
		}
		outcome = model.Outcome{Status: model.OutcomeApplied}
		switch {
		case m.registry.IsEmpty():
			outcome.Notice = model.NewNotice(model.NoticeInfo, i18n.NoticeKeyCartEmpty)
		case removed:
			outcome.Notice = model.NewNotice(model.NoticeInfo, i18n.NoticeKeyItemRemoved)
		}
		if wasSelected || removed {
			if err := m.selection.Recompute(ctx); err != nil {
				return model.Outcome{}, err
			}
		}
		fields["quantity"] = res.Quantity

	case model.OutcomeRejected:
		line, _ := m.registry.Get(productID)
		revertTo := line.Quantity
		if res.CurrentQuantity != nil && *res.CurrentQuantity > 0 {
			revertTo = *res.CurrentQuantity
		}
		m.registry.RevertQuantity(productID, revertTo)
		if wasSelected {
			if err := m.selection.Recompute(ctx); err != nil {
				return model.Outcome{}, err
			}
		}
		notice := model.NewNotice(model.NoticeError, i18n.NoticeKeyInsufficientStock)
		notice.Blocking = true
		notice.Message = res.Message
		outcome = model.Outcome{Status: model.OutcomeRejected, Notice: notice}
		fields["quantity"] = revertTo

	case model.OutcomeAuthRequired:
		outcome = m.authRequired()

	default:
		logFailure(ctx, client.OperationAdjust, productID, res.Err)
		outcome = failed(res.Message, i18n.NoticeKeyUpdateFailed)
	}

	m.finish(ctx, client.OperationAdjust, ActionAdjustQuantity, outcome, fields)
	return outcome, nil
}

// DeleteItem removes a line from the cart.
func (m *Mutator) DeleteItem(ctx context.Context, productID string) (model.Outcome, error) {
	m.mu.Lock()
	if !m.registry.Has(productID) {
		m.mu.Unlock()
		outcome := invalid(i18n.NoticeKeyUnknownLine, "")
		m.finish(ctx, client.OperationDelete, ActionDeleteItem, outcome, map[string]interface{}{"product_id": productID})
		return outcome, nil
	}
	tag := m.issue(productID)
	m.mu.Unlock()

	res := m.client.DeleteItem(ctx, productID)

	m.mu.Lock()
	defer m.mu.Unlock()

	var outcome model.Outcome
	switch {
	case !m.current(productID, tag):
		outcome = superseded()
	case res.Outcome == model.OutcomeApplied:
		m.registry.ApplyDeleted(productID)
		if m.newestSummary(tag) {
			m.registry.ApplySummary(res.CartQuantity, res.CartPrice)
		}
		emptied := m.registry.IsEmpty()
		if err := m.selection.Drop(ctx, productID); err != nil {
			return model.Outcome{}, err
		}
		notice := model.NewNotice(model.NoticeSuccess, i18n.NoticeKeyItemRemoved)
		if emptied {
			notice = model.NewNotice(model.NoticeInfo, i18n.NoticeKeyCartEmpty)
		}
		outcome = model.Outcome{Status: model.OutcomeApplied, Notice: notice}
	case res.Outcome == model.OutcomeAuthRequired:
		outcome = m.authRequired()
	default:
		logFailure(ctx, client.OperationDelete, productID, res.Err)
		outcome = failed(res.Message, i18n.NoticeKeyDeleteFailed)
	}

	m.finish(ctx, client.OperationDelete, ActionDeleteItem, outcome, map[string]interface{}{"product_id": productID})
	return outcome, nil
}

func (m *Mutator) authRequired() model.Outcome {
	return authRequired(m.loginPath)
}

func (m *Mutator) finish(ctx context.Context, operation, action string, outcome model.Outcome, fields map[string]interface{}) {
	metrics.RecordCartMutation(operation, string(outcome.Status))
	m.audit.record(ctx, action, outcome, fields)
}

func superseded() model.Outcome {
	return model.Outcome{Status: model.OutcomeSuperseded}
}

func authRequired(loginPath string) model.Outcome {
	notice := model.NewNotice(model.NoticeWarning, i18n.NoticeKeyLoginRequired)
	notice.Blocking = true
	return model.Outcome{
		Status:   model.OutcomeAuthRequired,
		Notice:   notice,
		Redirect: loginPath,
	}
}

// failed surfaces the upstream message verbatim when there is one.
func failed(message, key string) model.Outcome {
	notice := model.NewNotice(model.NoticeError, key)
	notice.Blocking = true
	notice.Message = message
	return model.Outcome{Status: model.OutcomeFailed, Notice: notice}
}

func logFailure(ctx context.Context, operation, productID string, err error) {
	if err == nil {
		return
	}
	zerolog.Ctx(ctx).Warn().
		Err(err).
		Str("operation", operation).
		Str("product_id", productID).
		Msg("Upstream cart request failed")
}
